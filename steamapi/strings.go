package steamapi

import (
	"github.com/teknology-hub/tek-game-runtime/layout"
	"github.com/teknology-hub/tek-game-runtime/version"
)

// Target library linkage identity.
const (
	// LibraryName is the file name of the target library whose initializer
	// the runtime wraps.
	LibraryName = "steam_api64.dll"

	// InitSymbol is the initializer export the bootstrap hook redirects.
	InitSymbol = "SteamAPI_Init"
)

// Exports used by factory-based acquisition.
const (
	symbolCreateInterface = "SteamInternal_CreateInterface"
	symbolGetHSteamPipe   = "SteamAPI_GetHSteamPipe"
	symbolGetHSteamUser   = "SteamAPI_GetHSteamUser"
)

// identityEnv is the environment variable the real initializer reads the
// application identity from when no identity file is present.
const identityEnv = "SteamAppId"

// factoryMinVersion is the first library build that acquires capability
// objects through the generic factory. Older builds export one named getter
// per object.
const factoryMinVersion version.Packed = 0x0003002A003D0042

// legacyUGCMinVersion is the first legacy build whose UGC getter export
// exists. Below it the UGC object is simply not acquired.
const legacyUGCMinVersion version.Packed = 0x00010062001F0049

// genericInterfaceSlot is the factory object's table index of the method
// that resolves a versioned interface identifier for a session.
const genericInterfaceSlot = 12

// Interface identifiers whose accepted revision never changed across the
// supported version range.
const (
	appsInterfaceVersion               = "STEAMAPPS_INTERFACE_VERSION008"
	matchmakingInterfaceVersion        = "SteamMatchMaking009"
	matchmakingServersInterfaceVersion = "SteamMatchMakingServers002"
)

// legacyGetterSymbols maps each capability-object kind to its named getter
// export in pre-factory builds.
var legacyGetterSymbols = map[layout.Kind]string{
	layout.KindApps:               "SteamApps",
	layout.KindMatchmaking:        "SteamMatchmaking",
	layout.KindMatchmakingServers: "SteamMatchmakingServers",
	layout.KindUGC:                "SteamUGC",
	layout.KindUser:               "SteamUser",
	layout.KindUtils:              "SteamUtils",
}

// clientInterfaceVersion returns the factory-object identifier the detected
// build registers.
func clientInterfaceVersion(v version.Packed) string {
	switch {
	case v >= 0x0008003F000B0054:
		return "SteamClient021"
	case v >= 0x000500350021004E:
		return "SteamClient020"
	case v >= 0x0005001900410015:
		return "SteamClient019"
	case v >= 0x0004005F0014001E:
		return "SteamClient018"
	default:
		return "SteamClient017"
	}
}

func ugcInterfaceVersion(v version.Packed) string {
	switch {
	case v >= 0x0009003C002C000A:
		return "STEAMUGC_INTERFACE_VERSION021"
	case v >= 0x0008006100630046:
		return "STEAMUGC_INTERFACE_VERSION020"
	case v >= 0x0008002100090017:
		return "STEAMUGC_INTERFACE_VERSION018"
	case v >= 0x000700600000002C:
		return "STEAMUGC_INTERFACE_VERSION017"
	case v >= 0x0006005B00150039:
		return "STEAMUGC_INTERFACE_VERSION016"
	case v >= 0x0006001C00120056:
		return "STEAMUGC_INTERFACE_VERSION015"
	case v >= 0x000500350021004E:
		return "STEAMUGC_INTERFACE_VERSION014"
	case v >= 0x000500130026003E:
		return "STEAMUGC_INTERFACE_VERSION013"
	case v >= 0x0004005F0014001E:
		return "STEAMUGC_INTERFACE_VERSION012"
	case v >= 0x0003005C0048003A:
		return "STEAMUGC_INTERFACE_VERSION010"
	case v >= 0x0003003E00520052:
		return "STEAMUGC_INTERFACE_VERSION009"
	default:
		return "STEAMUGC_INTERFACE_VERSION008"
	}
}

func userInterfaceVersion(v version.Packed) string {
	switch {
	case v >= 0x000800020015005F:
		return "SteamUser023"
	case v >= 0x000700600000002C:
		return "SteamUser022"
	case v >= 0x0005005C0024004B:
		return "SteamUser021"
	case v >= 0x0004005F0014001E:
		return "SteamUser020"
	default:
		return "SteamUser019"
	}
}

func utilsInterfaceVersion(v version.Packed) string {
	switch {
	case v >= 0x000600060063003B:
		return "SteamUtils010"
	case v >= 0x0003005C0048003A:
		return "SteamUtils009"
	default:
		return "SteamUtils008"
	}
}

// FactoryAcquisition reports whether the detected build acquires capability
// objects through the generic factory rather than named getter exports.
func FactoryAcquisition(v version.Packed) bool {
	return v >= factoryMinVersion
}

// InterfaceVersionFor returns the versioned identifier passed to the generic
// factory for one capability-object kind at the detected version.
func InterfaceVersionFor(kind layout.Kind, v version.Packed) string {
	switch kind {
	case layout.KindApps:
		return appsInterfaceVersion
	case layout.KindMatchmaking:
		return matchmakingInterfaceVersion
	case layout.KindMatchmakingServers:
		return matchmakingServersInterfaceVersion
	case layout.KindUGC:
		return ugcInterfaceVersion(v)
	case layout.KindUser:
		return userInterfaceVersion(v)
	case layout.KindUtils:
		return utilsInterfaceVersion(v)
	default:
		return ""
	}
}
