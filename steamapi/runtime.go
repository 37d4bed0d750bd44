package steamapi

import (
	"sync"

	"github.com/teknology-hub/tek-game-runtime/dispatch"
	"github.com/teknology-hub/tek-game-runtime/image"
	"github.com/teknology-hub/tek-game-runtime/layout"
	"github.com/teknology-hub/tek-game-runtime/settings"
	"github.com/teknology-hub/tek-game-runtime/steamclient"
	"github.com/teknology-hub/tek-game-runtime/version"
)

// Config carries optional runtime knobs.
type Config struct {
	// RefreshEndpoint is the CM websocket endpoint the DLC refresh connects
	// to when auto_update_dlc is set. Empty disables the refresh.
	RefreshEndpoint string

	// WorkshopRunner is the content delivery backend handed to title
	// extensions for workshop item installs. Nil means installs are
	// rejected.
	WorkshopRunner steamclient.JobRunner
}

// Runtime owns the process-wide interception state: the loaded-module
// registry, the driving settings, and everything the one-shot
// initialization derives from them.
type Runtime struct {
	registry *image.Registry
	settings *settings.Settings
	config   Config

	once sync.Once
	ok   bool

	version     version.Packed
	enhanced    bool
	userID      uint64
	descriptors map[layout.Kind]*dispatch.Descriptor
}

// New creates a runtime over the given module registry and settings.
func New(reg *image.Registry, s *settings.Settings) *Runtime {
	return NewWithConfig(reg, s, nil)
}

// NewWithConfig creates a runtime with explicit configuration.
func NewWithConfig(reg *image.Registry, s *settings.Settings, cfg *Config) *Runtime {
	r := &Runtime{
		registry: reg,
		settings: s,
	}
	if cfg != nil {
		r.config = *cfg
	}
	return r
}

// Init runs the wrapped initializer sequence exactly once and returns its
// result. Later invocations return the first run's result without touching
// the library again.
func (r *Runtime) Init() bool {
	r.once.Do(func() {
		r.ok = r.initialize()
	})
	return r.ok
}

// Settings returns the settings driving this runtime.
func (r *Runtime) Settings() *settings.Settings {
	return r.settings
}

// Version returns the detected target-library version, zero when version
// resolution failed.
func (r *Runtime) Version() version.Packed {
	return r.version
}

// Enhanced reports whether the override catalog was installed. False after
// a successful Init means the library runs unmodified.
func (r *Runtime) Enhanced() bool {
	return r.enhanced
}

// UserID returns the account id captured through the original user object
// before patching took effect.
func (r *Runtime) UserID() uint64 {
	return r.userID
}

// Descriptor returns the interception state for one capability-object kind,
// or nil when that kind was not acquired.
func (r *Runtime) Descriptor(kind layout.Kind) *dispatch.Descriptor {
	return r.descriptors[kind]
}

// Descriptors returns the full installed descriptor set.
func (r *Runtime) Descriptors() map[layout.Kind]*dispatch.Descriptor {
	return r.descriptors
}
