package steamapi

import (
	"encoding/json"
	"io"

	"go.uber.org/zap"

	"github.com/teknology-hub/tek-game-runtime/errors"
	"github.com/teknology-hub/tek-game-runtime/hook"
	"github.com/teknology-hub/tek-game-runtime/image"
	"github.com/teknology-hub/tek-game-runtime/settings"
	"github.com/teknology-hub/tek-game-runtime/titles"
)

// Attach runs the process-attach sequence: settings load from the framed
// source, title process-attach veto, runtime creation, and initializer
// redirection in the host image. A non-nil error or veto means the process
// must not proceed with this runtime.
func Attach(reg *image.Registry, settingsSource io.Reader, cfg *Config) (*Runtime, error) {
	s, err := settings.Load(settingsSource, func(s *settings.Settings, doc json.RawMessage) {
		if cbs, ok := titles.ForSettings(s); ok && cbs.SettingsLoad != nil {
			cbs.SettingsLoad(s, doc)
		}
	})
	if err != nil {
		return nil, err
	}

	if cbs, ok := titles.ForSettings(s); ok && cbs.ProcessAttach != nil {
		if !cbs.ProcessAttach(s) {
			return nil, errors.New(errors.PhaseConfig, errors.KindUnsupported).
				Value(s.Steam.AppID).
				Detail("title extension vetoed process attach").
				Build()
		}
	}

	r := NewWithConfig(reg, s, cfg)
	r.WrapInit(reg.Host())
	return r, nil
}

// WrapInit redirects the host image's initializer import at this runtime.
// A host that never imports the symbol through either linkage style is left
// unmodified; that is not an error for the attach sequence.
func (r *Runtime) WrapInit(host image.Module) {
	wrapped := func() bool { return r.Init() }
	if err := hook.PatchImport(host, LibraryName, InitSymbol, wrapped); err != nil {
		Logger().Debug("initializer import absent from host image",
			zap.String("library", LibraryName),
			zap.String("symbol", InitSymbol),
			zap.Error(err))
	}
}

// SaveSettings persists the runtime's settings, letting the title extension
// contribute its fields.
func (r *Runtime) SaveSettings() {
	cbs, _ := titles.ForSettings(r.settings)
	r.settings.Save(cbs.SettingsSave)
}
