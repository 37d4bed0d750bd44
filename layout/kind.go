package layout

// Kind identifies one of the capability-object kinds the target library
// exposes.
type Kind int

const (
	KindApps Kind = iota
	KindMatchmaking
	KindMatchmakingServers
	KindUGC
	KindUser
	KindUtils
)

// Kinds lists all capability-object kinds in installation order.
var Kinds = [...]Kind{
	KindApps,
	KindMatchmaking,
	KindMatchmakingServers,
	KindUGC,
	KindUser,
	KindUtils,
}

func (k Kind) String() string {
	switch k {
	case KindApps:
		return "ISteamApps"
	case KindMatchmaking:
		return "ISteamMatchmaking"
	case KindMatchmakingServers:
		return "ISteamMatchmakingServers"
	case KindUGC:
		return "ISteamUGC"
	case KindUser:
		return "ISteamUser"
	case KindUtils:
		return "ISteamUtils"
	default:
		return "unknown"
	}
}
