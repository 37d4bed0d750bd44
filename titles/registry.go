package titles

import (
	"sync"

	"go.uber.org/zap"

	"github.com/teknology-hub/tek-game-runtime/dispatch"
	"github.com/teknology-hub/tek-game-runtime/layout"
	"github.com/teknology-hub/tek-game-runtime/settings"
	"github.com/teknology-hub/tek-game-runtime/steamclient"
)

// Env is what a post-initialization callback sees: the installed descriptor
// set, by reference, plus the settings that drove installation. Extensions
// patch through the descriptors exactly like the baseline catalog does.
type Env struct {
	Settings    *settings.Settings
	Descriptors map[layout.Kind]*dispatch.Descriptor

	// UserID is the account id captured through the original user object
	// before any patching took effect.
	UserID uint64

	// WorkshopRunner is the content delivery backend for workshop item
	// installs. Nil means no backend is available.
	WorkshopRunner steamclient.JobRunner
}

// Descriptor returns the installed descriptor for a capability-object kind,
// or nil when that kind was not acquired.
func (e *Env) Descriptor(kind layout.Kind) *dispatch.Descriptor {
	return e.Descriptors[kind]
}

// Callbacks is the set of extension points one title may register. Any
// field may be nil.
type Callbacks struct {
	// SettingsLoad post-processes the parsed settings document.
	SettingsLoad settings.LoadHook

	// SettingsSave contributes title-specific fields to the persisted
	// document.
	SettingsSave settings.SaveHook

	// ProcessAttach runs at process attach, right after settings load.
	// Returning false vetoes initialization and the runtime never starts.
	ProcessAttach func(s *settings.Settings) bool

	// PostInit runs after the baseline override catalog is installed.
	PostInit func(env *Env)
}

// Key identifies one title across stores.
type Key struct {
	Store settings.StoreType
	AppID uint32
}

var (
	registryMu sync.RWMutex
	registry   = make(map[Key]Callbacks)
)

// Register adds a title's callbacks. Later registrations for the same key
// replace earlier ones; built-in titles register from init functions in
// this package.
func Register(key Key, cbs Callbacks) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[key] = cbs
}

// For returns the callbacks registered for a title, if any.
func For(store settings.StoreType, appID uint32) (Callbacks, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	cbs, ok := registry[Key{Store: store, AppID: appID}]
	return cbs, ok
}

// ForSettings resolves callbacks from loaded settings.
func ForSettings(s *settings.Settings) (Callbacks, bool) {
	if s == nil || s.Steam == nil {
		return Callbacks{}, false
	}
	cbs, ok := For(s.Store, s.Steam.AppID)
	if ok {
		Logger().Debug("title extension resolved",
			zap.String("store", string(s.Store)),
			zap.Uint32("app_id", s.Steam.AppID))
	}
	return cbs, ok
}
