package wasmext

import (
	"github.com/teknology-hub/tek-game-runtime/dispatch"
	"github.com/teknology-hub/tek-game-runtime/layout"
)

// Canned override factories. A guest patches by (kind, logical id, value);
// the factory produces an override with the arity the slot's calling
// convention expects, returning the constant. Only methods listed here are
// patchable from a guest.

var boolOverrides = map[layout.Kind]map[int]func(value bool) dispatch.Entry{
	layout.KindApps: {
		layout.AppsBIsSubscribed: func(v bool) dispatch.Entry {
			return func() bool { return v }
		},
		layout.AppsBIsLowViolence: func(v bool) dispatch.Entry {
			return func() bool { return v }
		},
		layout.AppsBIsCybercafe: func(v bool) dispatch.Entry {
			return func() bool { return v }
		},
		layout.AppsBIsVACBanned: func(v bool) dispatch.Entry {
			return func() bool { return v }
		},
		layout.AppsBIsSubscribedApp: func(v bool) dispatch.Entry {
			return func(appID uint32) bool { return v }
		},
		layout.AppsBIsDlcInstalled: func(v bool) dispatch.Entry {
			return func(appID uint32) bool { return v }
		},
		layout.AppsBIsAppInstalled: func(v bool) dispatch.Entry {
			return func(appID uint32) bool { return v }
		},
		layout.AppsBIsSubscribedFromFreeWeekend: func(v bool) dispatch.Entry {
			return func() bool { return v }
		},
		layout.AppsBIsSubscribedFromFamilySharing: func(v bool) dispatch.Entry {
			return func() bool { return v }
		},
	},
	layout.KindUser: {
		layout.UserBLoggedOn: func(v bool) dispatch.Entry {
			return func() bool { return v }
		},
		layout.UserBIsBehindNAT: func(v bool) dispatch.Entry {
			return func() bool { return v }
		},
	},
	layout.KindUtils: {
		layout.UtilsIsOverlayEnabled: func(v bool) dispatch.Entry {
			return func() bool { return v }
		},
		layout.UtilsIsSteamRunningOnSteamDeck: func(v bool) dispatch.Entry {
			return func() bool { return v }
		},
		layout.UtilsIsSteamInBigPictureMode: func(v bool) dispatch.Entry {
			return func() bool { return v }
		},
	},
}

var u32Overrides = map[layout.Kind]map[int]func(value uint32) dispatch.Entry{
	layout.KindApps: {
		layout.AppsGetDLCCount: func(v uint32) dispatch.Entry {
			return func() int32 { return int32(v) }
		},
		layout.AppsGetEarliestPurchaseUnixTime: func(v uint32) dispatch.Entry {
			return func(appID uint32) uint32 { return v }
		},
	},
	layout.KindUtils: {
		layout.UtilsGetAppID: func(v uint32) dispatch.Entry {
			return func() uint32 { return v }
		},
		layout.UtilsGetSecondsSinceAppActive: func(v uint32) dispatch.Entry {
			return func() uint32 { return v }
		},
		layout.UtilsGetServerRealTime: func(v uint32) dispatch.Entry {
			return func() uint32 { return v }
		},
	},
}

func kindFromGuest(kind uint32) (layout.Kind, bool) {
	k := layout.Kind(kind)
	for _, known := range layout.Kinds {
		if k == known {
			return k, true
		}
	}
	return 0, false
}
