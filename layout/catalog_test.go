package layout

import (
	"testing"

	"github.com/teknology-hub/tek-game-runtime/dispatch"
	"github.com/teknology-hub/tek-game-runtime/version"
)

func TestSelect_InclusiveAtEveryThreshold(t *testing.T) {
	for _, k := range Kinds {
		table := For(k)
		for i := range table.Entries {
			want := &table.Entries[i]
			v := want.MinVersion
			if v == 0 {
				continue
			}
			got := table.Select(v)
			if got != want {
				t.Fatalf("%v: Select(%s) picked entry with %d methods, want %d",
					k, v, got.NumMethods, want.NumMethods)
			}
			// One below the threshold must fall through to the next band.
			below := table.Select(v - 1)
			if below == want {
				t.Fatalf("%v: Select just below %s still picked that threshold's entry", k, v)
			}
		}
	}
}

func TestSelect_BelowLowestThresholdUsesEarliest(t *testing.T) {
	for _, k := range Kinds {
		table := For(k)
		earliest := &table.Entries[len(table.Entries)-1]
		if got := table.Select(1); got != earliest {
			t.Fatalf("%v: Select(1) did not pick the earliest layout", k)
		}
	}
}

func TestSelect_FactoryTransitionGeneration(t *testing.T) {
	// 03.42.61.66 marks the transition to generic-factory acquisition.
	const v version.Packed = 0x0003002A003D0042
	want := map[Kind]int{
		KindApps:               33,
		KindMatchmaking:        38,
		KindMatchmakingServers: 17,
		KindUGC:                63,
		KindUser:               29,
		KindUtils:              28,
	}
	for k, methods := range want {
		got := For(k).Select(v)
		if got.NumMethods != methods {
			t.Fatalf("%v at 03.42.61.66: got %d methods, want %d", k, got.NumMethods, methods)
		}
	}
}

func TestSelect_CeilingCounts(t *testing.T) {
	want := map[Kind]int{
		KindApps:               33,
		KindMatchmaking:        38,
		KindMatchmakingServers: 17,
		KindUGC:                96,
		KindUser:               33,
		KindUtils:              39,
	}
	for k, methods := range want {
		got := For(k).Select(Ceiling)
		if got.NumMethods != methods {
			t.Fatalf("%v at ceiling: got %d methods, want %d", k, got.NumMethods, methods)
		}
	}
}

func TestSupported(t *testing.T) {
	if !Supported(Ceiling) {
		t.Fatal("Ceiling itself must be supported")
	}
	if Supported(Ceiling + 1) {
		t.Fatal("Versions above the ceiling must be unsupported")
	}
}

func TestUserFallbackSlotMap(t *testing.T) {
	// Below the lowest ISteamUser threshold the "SteamUser014" layout applies:
	// 21 methods, with later additions absent.
	entry := For(KindUser).Select(1)
	if entry.NumMethods != 21 {
		t.Fatalf("Expected 21 methods, got %d", entry.NumMethods)
	}
	if entry.Slots[UserGetHSteamUser] != 0 {
		t.Fatalf("GetHSteamUser slot = %d, want 0", entry.Slots[UserGetHSteamUser])
	}
	if entry.Slots[UserGetEncryptedAppTicket] != 20 {
		t.Fatalf("GetEncryptedAppTicket slot = %d, want 20", entry.Slots[UserGetEncryptedAppTicket])
	}
	if entry.Slots[UserUserHasLicenseForApp] != 16 {
		t.Fatalf("UserHasLicenseForApp slot = %d, want 16", entry.Slots[UserUserHasLicenseForApp])
	}
	// Voice sample-rate query and web-API tickets arrived in later revisions.
	if entry.Slots[UserGetVoiceOptimalSampleRate] != dispatch.SlotAbsent {
		t.Fatal("GetVoiceOptimalSampleRate must be absent")
	}
	if entry.Slots[UserGetAuthTicketForWebApi] != dispatch.SlotAbsent {
		t.Fatal("GetAuthTicketForWebApi must be absent")
	}
}

func TestUGCFallbackSlotMap(t *testing.T) {
	// "STEAMUGC_INTERFACE_VERSION001": 14 methods.
	entry := For(KindUGC).Select(1)
	if entry.NumMethods != 14 {
		t.Fatalf("Expected 14 methods, got %d", entry.NumMethods)
	}
	if entry.Slots[UGCCreateQueryUserUGCRequest] != 0 {
		t.Fatal("CreateQueryUserUGCRequest must be slot 0")
	}
	if entry.Slots[UGCRequestUGCDetails] != 13 {
		t.Fatalf("RequestUGCDetails slot = %d, want 13", entry.Slots[UGCRequestUGCDetails])
	}
	if entry.Slots[UGCCreateQueryAllUGCRequestCursor] != dispatch.SlotAbsent {
		t.Fatal("Cursor-based queries must be absent")
	}
	if entry.Slots[UGCSetSubscriptionsLoadOrder] != dispatch.SlotAbsent {
		t.Fatal("SetSubscriptionsLoadOrder must be absent")
	}
}

func TestMatchmakingFallbackSlotMap(t *testing.T) {
	// "SteamMatchMaking008": the compatible-members filter and linked-lobby
	// operations do not exist yet.
	entry := For(KindMatchmaking).Select(1)
	if entry.NumMethods != 36 {
		t.Fatalf("Expected 36 methods, got %d", entry.NumMethods)
	}
	if entry.Slots[MatchmakingGetFavoriteGameCount] != 0 {
		t.Fatal("GetFavoriteGameCount must be slot 0")
	}
	if entry.Slots[MatchmakingGetLobbyByIndex] != 11 {
		t.Fatalf("GetLobbyByIndex slot = %d, want 11", entry.Slots[MatchmakingGetLobbyByIndex])
	}
	if entry.Slots[MatchmakingSetLobbyOwner] != 35 {
		t.Fatalf("SetLobbyOwner slot = %d, want 35", entry.Slots[MatchmakingSetLobbyOwner])
	}
	if entry.Slots[MatchmakingAddRequestLobbyListCompatibleMembersFilter] != dispatch.SlotAbsent {
		t.Fatal("CompatibleMembersFilter must be absent")
	}
	if entry.Slots[MatchmakingSetLinkedLobby] != dispatch.SlotAbsent {
		t.Fatal("SetLinkedLobby must be absent")
	}
}

func TestTables_Consistency(t *testing.T) {
	for _, k := range Kinds {
		table := For(k)
		if len(table.Entries) == 0 {
			t.Fatalf("%v: empty table", k)
		}
		prev := version.Packed(1<<63 - 1)
		for i, e := range table.Entries {
			if e.MinVersion >= prev && i > 0 {
				t.Fatalf("%v: entries not strictly ordered at index %d", k, i)
			}
			prev = e.MinVersion
			if e.NumMethods > table.MaxMethods {
				t.Fatalf("%v: entry %d method count %d exceeds kind maximum %d",
					k, i, e.NumMethods, table.MaxMethods)
			}
			if len(e.Slots) != table.MaxMethods {
				t.Fatalf("%v: entry %d slot map has %d IDs, want %d",
					k, i, len(e.Slots), table.MaxMethods)
			}
			seen := make(map[int]bool)
			for id, slot := range e.Slots {
				if slot == dispatch.SlotAbsent {
					continue
				}
				if slot < 0 || slot >= e.NumMethods {
					t.Fatalf("%v: entry %d maps ID %d to out-of-range slot %d", k, i, id, slot)
				}
				if seen[slot] {
					t.Fatalf("%v: entry %d maps two IDs to slot %d", k, i, slot)
				}
				seen[slot] = true
			}
		}
		if table.Entries[len(table.Entries)-1].MinVersion != 0 {
			t.Fatalf("%v: earliest entry must have no lower bound", k)
		}
	}
}
