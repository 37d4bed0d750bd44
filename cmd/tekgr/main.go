package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/teknology-hub/tek-game-runtime/layout"
	"github.com/teknology-hub/tek-game-runtime/settings"
	"github.com/teknology-hub/tek-game-runtime/steamapi"
	"github.com/teknology-hub/tek-game-runtime/version"
)

func main() {
	var (
		versionStr   = flag.String("version", "", "Target library version (AA.BB.CC.DD or 0x hex)")
		kindName     = flag.String("kind", "", "Restrict output to one object kind (e.g. ISteamUGC)")
		settingsFile = flag.String("settings", "", "Inspect a settings file")
		interactive  = flag.Bool("i", false, "Interactive catalog browser")
	)
	flag.Parse()

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode needs a terminal")
			os.Exit(1)
		}
		if err := runInteractive(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	switch {
	case *settingsFile != "":
		if err := inspectSettings(*settingsFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case *versionStr != "":
		v, err := parseVersion(*versionStr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if err := inspectLayout(v, *kindName); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintln(os.Stderr, "Usage: tekgr -version <AA.BB.CC.DD> [-kind name]")
		fmt.Fprintln(os.Stderr, "       tekgr -settings <file.json>")
		fmt.Fprintln(os.Stderr, "       tekgr -i  (interactive catalog browser)")
		os.Exit(1)
	}
}

// parseVersion accepts the dotted quad the library's file metadata displays
// or a raw packed hex value.
func parseVersion(s string) (version.Packed, error) {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		raw, err := strconv.ParseUint(s[2:], 16, 64)
		if err != nil {
			return 0, fmt.Errorf("parse version %q: %w", s, err)
		}
		return version.Packed(raw), nil
	}
	parts := strings.Split(s, ".")
	if len(parts) != 4 {
		return 0, fmt.Errorf("version %q: want four dotted fields", s)
	}
	var fields [4]uint16
	for i, p := range parts {
		f, err := strconv.ParseUint(p, 10, 16)
		if err != nil {
			return 0, fmt.Errorf("version field %q: %w", p, err)
		}
		fields[i] = uint16(f)
	}
	return version.Packed(uint64(fields[0])<<48 | uint64(fields[1])<<32 |
		uint64(fields[2])<<16 | uint64(fields[3])), nil
}

func inspectLayout(v version.Packed, kindName string) error {
	fmt.Printf("Version: %s (%#016x)\n", v, uint64(v))
	if !layout.Supported(v) {
		fmt.Printf("Unsupported: above catalog ceiling %s\n", layout.Ceiling)
		return nil
	}
	if steamapi.FactoryAcquisition(v) {
		fmt.Println("Acquisition: generic factory")
	} else {
		fmt.Println("Acquisition: named getter exports")
	}
	fmt.Println()

	for _, kind := range layout.Kinds {
		if kindName != "" && kind.String() != kindName {
			continue
		}
		table := layout.For(kind)
		entry := table.Select(v)
		fmt.Printf("%-24s %3d methods (max %d)", kind, entry.NumMethods, table.MaxMethods)
		if steamapi.FactoryAcquisition(v) {
			fmt.Printf("  %s", steamapi.InterfaceVersionFor(kind, v))
		}
		fmt.Println()
		if kindName != "" {
			fmt.Println()
			for _, band := range table.Entries {
				mark := "  "
				if band.MinVersion == entry.MinVersion {
					mark = "> "
				}
				fmt.Printf("%ssince %s: %d methods\n", mark, band.MinVersion, band.NumMethods)
			}
		}
	}
	return nil
}

func inspectSettings(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	s, err := settings.Parse(data)
	if err != nil {
		return err
	}

	fmt.Printf("Store:           %s\n", s.Store)
	fmt.Printf("App ID:          %d\n", s.Steam.AppID)
	if s.Steam.SpoofAppID != 0 {
		fmt.Printf("Spoof App ID:    %d\n", s.Steam.SpoofAppID)
	}
	fmt.Printf("Effective ID:    %d\n", s.EffectiveAppID())
	fmt.Printf("Auto-update DLC: %v\n", s.Steam.AutoUpdateDLC)
	if s.Steam.TekSCPath != "" {
		fmt.Printf("Client library:  %s\n", s.Steam.TekSCPath)
	}
	fmt.Printf("DLC:             %d entries\n", s.DLCCount())
	for i := 0; ; i++ {
		entry, ok := s.DLCByIndex(i)
		if !ok {
			break
		}
		state := " "
		if s.DLCInstalled(entry.ID) {
			state = "*"
		}
		fmt.Printf("  %s %-10d %s\n", state, entry.ID, entry.Name)
	}
	return nil
}
