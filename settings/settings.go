package settings

import (
	"sort"
	"strconv"
	"sync"
)

// StoreType identifies the store a title is distributed on.
type StoreType string

const (
	// StoreSteam is the only store currently supported.
	StoreSteam StoreType = "steam"
)

// DefaultFileName is read from the current directory when file-path loading
// is requested with an empty path.
const DefaultFileName = "tek-gr-settings.json"

// FallbackAppID initializes the target library when the configured identity
// is rejected and no spoof identity was set. It is the id of the library
// vendor's own test title, accepted for any account.
const FallbackAppID uint32 = 480

// DLCEntry is one "owned" DLC: its application id and display name.
type DLCEntry struct {
	ID   uint32
	Name string
}

// SteamOptions are the store-specific options for StoreSteam.
type SteamOptions struct {
	// AppID is the title's application id.
	AppID uint32

	// SpoofAppID, when non-zero, is the identity handed to the real
	// initializer instead of AppID. After initialization it receives the
	// identity that actually succeeded.
	SpoofAppID uint32

	// DLC lists owned DLC ids and names, in the order they enumerate.
	DLC []DLCEntry

	// InstalledDLC is the set of ids reported as installed. Defaults to the
	// ids of DLC when the settings document omits it.
	InstalledDLC map[uint32]struct{}

	// TekSCPath locates the tek-steamclient library used for DLC list
	// refreshes and workshop installs. Empty means default search behavior.
	TekSCPath string

	// ExtensionPath locates a wasm extension module run after the baseline
	// override catalog and title callbacks. Empty means none.
	ExtensionPath string

	// AutoUpdateDLC requests an asynchronous DLC list refresh after
	// initialization.
	AutoUpdateDLC bool
}

// Settings is the runtime's full configuration.
//
// The refresh collaborator mutates the DLC sets from its own goroutine while
// overrides read them on host threads, so access goes through the embedded
// lock.
type Settings struct {
	mu sync.RWMutex

	// Store selects which store-specific option block is present.
	Store StoreType

	// Steam is set when Store is StoreSteam.
	Steam *SteamOptions

	// filePath is where Save writes. Empty for inline-loaded settings.
	filePath string
}

// FilePath returns the path Save persists to, or "" when the settings were
// received inline and never persist.
func (s *Settings) FilePath() string {
	return s.filePath
}

// Lock acquires the settings write lock for a multi-field mutation.
func (s *Settings) Lock() { s.mu.Lock() }

// Unlock releases the settings write lock.
func (s *Settings) Unlock() { s.mu.Unlock() }

// RLock acquires the settings read lock.
func (s *Settings) RLock() { s.mu.RLock() }

// RUnlock releases the settings read lock.
func (s *Settings) RUnlock() { s.mu.RUnlock() }

// OwnsDLC reports whether id is in the owned DLC list.
func (s *Settings) OwnsDLC(id uint32) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.Steam == nil {
		return false
	}
	for _, entry := range s.Steam.DLC {
		if entry.ID == id {
			return true
		}
	}
	return false
}

// DLCInstalled reports whether id is in the installed set.
func (s *Settings) DLCInstalled(id uint32) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.Steam == nil {
		return false
	}
	_, ok := s.Steam.InstalledDLC[id]
	return ok
}

// DLCCount returns the number of owned DLC entries.
func (s *Settings) DLCCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.Steam == nil {
		return 0
	}
	return len(s.Steam.DLC)
}

// DLCByIndex returns the owned DLC entry at index, in enumeration order.
func (s *Settings) DLCByIndex(index int) (DLCEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.Steam == nil || index < 0 || index >= len(s.Steam.DLC) {
		return DLCEntry{}, false
	}
	return s.Steam.DLC[index], true
}

// SetEffectiveAppID records the identity that actually initialized the
// target library, for persistence and later policy checks.
func (s *Settings) SetEffectiveAppID(id uint32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Steam != nil {
		s.Steam.SpoofAppID = id
	}
}

// EffectiveAppID returns the identity the target library was initialized
// with: the spoof identity when set, else the title's own id.
func (s *Settings) EffectiveAppID() uint32 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.Steam == nil {
		return 0
	}
	if s.Steam.SpoofAppID != 0 {
		return s.Steam.SpoofAppID
	}
	return s.Steam.AppID
}

// ReplaceDLC swaps in a refreshed owned-DLC list and resets the installed
// set to match it.
func (s *Settings) ReplaceDLC(entries []DLCEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Steam == nil {
		return
	}
	s.Steam.DLC = entries
	installed := make(map[uint32]struct{}, len(entries))
	for _, entry := range entries {
		installed[entry.ID] = struct{}{}
	}
	s.Steam.InstalledDLC = installed
}

// sortedInstalled returns the installed set in ascending id order for
// deterministic persistence. Callers hold the read lock.
func (o *SteamOptions) sortedInstalled() []uint32 {
	ids := make([]uint32, 0, len(o.InstalledDLC))
	for id := range o.InstalledDLC {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func parseDLCKey(key string) (uint32, bool) {
	id, err := strconv.ParseUint(key, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint32(id), true
}

func formatDLCKey(id uint32) string {
	return strconv.FormatUint(uint64(id), 10)
}
