package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/teknology-hub/tek-game-runtime/layout"
	"github.com/teknology-hub/tek-game-runtime/steamapi"
	"github.com/teknology-hub/tek-game-runtime/version"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#2B6CB0")).
			Padding(0, 1)

	kindStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#2B6CB0"))

	currentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type browserState int

const (
	stateInputVersion browserState = iota
	stateSelectKind
	stateShowBands
)

type browserModel struct {
	state    browserState
	input    textinput.Model
	v        version.Packed
	parseErr error
	selected int
}

func newBrowserModel() *browserModel {
	ti := textinput.New()
	ti.Prompt = "version: "
	ti.Placeholder = layout.Ceiling.String()
	ti.Width = 24
	ti.Focus()
	return &browserModel{
		state: stateInputVersion,
		input: ti,
		v:     layout.Ceiling,
	}
}

func (m *browserModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.state != stateInputVersion {
				return m, tea.Quit
			}

		case "up", "k":
			if m.state == stateSelectKind && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelectKind && m.selected < len(layout.Kinds)-1 {
				m.selected++
			}

		case "enter":
			switch m.state {
			case stateInputVersion:
				raw := m.input.Value()
				if raw == "" {
					raw = layout.Ceiling.String()
				}
				v, err := parseVersion(raw)
				if err != nil {
					m.parseErr = err
					break
				}
				m.v = v
				m.parseErr = nil
				m.input.Blur()
				m.state = stateSelectKind

			case stateSelectKind:
				m.state = stateShowBands
			}

		case "v":
			if m.state == stateSelectKind {
				m.input.Focus()
				m.state = stateInputVersion
			}

		case "esc":
			switch m.state {
			case stateShowBands:
				m.state = stateSelectKind
			case stateSelectKind:
				m.input.Focus()
				m.state = stateInputVersion
			}
		}
	}

	if m.state == stateInputVersion {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *browserModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("tek-game-runtime layout catalog"))
	b.WriteString("\n\n")

	switch m.state {
	case stateInputVersion:
		b.WriteString("Target library version (dotted quad or 0x hex):\n\n")
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		if m.parseErr != nil {
			b.WriteString(errorStyle.Render(m.parseErr.Error()))
			b.WriteString("\n\n")
		}
		b.WriteString(helpStyle.Render("enter browse • ctrl+c quit"))

	case stateSelectKind:
		b.WriteString(m.header())
		b.WriteString("\n\n")
		for i, kind := range layout.Kinds {
			line := m.formatKind(kind)
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter bands • v version • q quit"))

	case stateShowBands:
		kind := layout.Kinds[m.selected]
		table := layout.For(kind)
		current := table.Select(m.v)
		b.WriteString(m.header())
		b.WriteString("\n\n")
		b.WriteString(kindStyle.Render(kind.String()))
		b.WriteString(fmt.Sprintf("  (max %d methods)\n\n", table.MaxMethods))
		for _, band := range table.Entries {
			line := fmt.Sprintf("since %s: %3d methods", band.MinVersion, band.NumMethods)
			if band.MinVersion == current.MinVersion {
				b.WriteString(currentStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("esc back • q quit"))
	}

	return b.String()
}

func (m *browserModel) header() string {
	if !layout.Supported(m.v) {
		return fmt.Sprintf("Version %s — %s", m.v,
			errorStyle.Render("above catalog ceiling "+layout.Ceiling.String()))
	}
	acquisition := "named getter exports"
	if steamapi.FactoryAcquisition(m.v) {
		acquisition = "generic factory"
	}
	return fmt.Sprintf("Version %s — %s", m.v, valueStyle.Render(acquisition))
}

func (m *browserModel) formatKind(kind layout.Kind) string {
	table := layout.For(kind)
	entry := table.Select(m.v)
	line := fmt.Sprintf("%-24s %3d methods", kindStyle.Render(kind.String()), entry.NumMethods)
	if steamapi.FactoryAcquisition(m.v) {
		line += "  " + valueStyle.Render(steamapi.InterfaceVersionFor(kind, m.v))
	}
	return line
}

func runInteractive() error {
	p := tea.NewProgram(newBrowserModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
