package layout

import (
	"github.com/teknology-hub/tek-game-runtime/dispatch"
	"github.com/teknology-hub/tek-game-runtime/version"
)

// Ceiling is the highest target-library file version the catalog has layout
// data for: 09.60.44.10 from Steamworks SDK v1.62. Versions above it are an
// unsupported-version failure.
const Ceiling version.Packed = 0x0009003C002C000A

// Entry is one revision band of a kind's layout: the lowest version the
// layout applies to, the method count of that revision, and the slot map
// from logical method ID to table index.
type Entry struct {
	MinVersion version.Packed
	NumMethods int
	Slots      []int
}

// Table is the ordered layout list for one capability-object kind, highest
// threshold first. MaxMethods is the largest method count ever observed for
// the kind; owned table buffers are sized to it.
type Table struct {
	Kind       Kind
	MaxMethods int
	Entries    []Entry
}

// Select picks the layout for the detected version: the first entry whose
// threshold is at or below v. Below the lowest listed threshold the earliest
// layout applies. Selection at a version exactly equal to a threshold picks
// that threshold's entry.
func (t *Table) Select(v version.Packed) *Entry {
	for i := range t.Entries {
		if t.Entries[i].MinVersion <= v {
			return &t.Entries[i]
		}
	}
	return &t.Entries[len(t.Entries)-1]
}

// For returns the layout table for the given kind.
func For(k Kind) *Table {
	switch k {
	case KindApps:
		return &appsTable
	case KindMatchmaking:
		return &matchmakingTable
	case KindMatchmakingServers:
		return &matchmakingServersTable
	case KindUGC:
		return &ugcTable
	case KindUser:
		return &userTable
	case KindUtils:
		return &utilsTable
	default:
		return nil
	}
}

// Supported reports whether the catalog has layout data for the detected
// version.
func Supported(v version.Packed) bool {
	return v <= Ceiling
}

// identity builds a slot map where the first n logical IDs map to their own
// index and the rest resolve to the sentinel.
func identity(max, n int) []int {
	s := make([]int, max)
	for i := range s {
		if i < n {
			s[i] = i
		} else {
			s[i] = dispatch.SlotAbsent
		}
	}
	return s
}

// sparse builds a slot map from explicit logical-ID-to-slot pairs; every ID
// not listed resolves to the sentinel.
func sparse(max int, m map[int]int) []int {
	s := make([]int, max)
	for i := range s {
		s[i] = dispatch.SlotAbsent
	}
	for id, slot := range m {
		s[id] = slot
	}
	return s
}
