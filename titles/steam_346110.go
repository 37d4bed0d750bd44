package titles

import (
	"context"
	"encoding/json"
	"os"
	"strconv"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/teknology-hub/tek-game-runtime/layout"
	"github.com/teknology-hub/tek-game-runtime/settings"
	"github.com/teknology-hub/tek-game-runtime/steamclient"
)

// ARK: Survival Evolved. Filters server search results the title cannot use
// and backs the workshop item list with a local directory so mod loading
// works without a subscription.

const arkAppID = 346110

// DLC map names keyed by the id whose ownership gates them. Genesis covers
// both of its maps.
var arkDLCMaps = map[uint32][]string{
	473850:  {"TheCenter"},
	512540:  {"ScorchedEarth"},
	642250:  {"Ragnarok"},
	708770:  {"Aberration"},
	887380:  {"Extinction"},
	1100810: {"Valguero_P"},
	1113410: {"Genesis", "Gen2"},
	1270830: {"CrystalIsles"},
	1691800: {"LostIsland"},
	1887560: {"Fjordur"},
	3537070: {"Aquatica"},
}

type arkState struct {
	showBEServers          bool
	showUnavailableServers bool
	workshopDirPath        string
	workshopAMPath         string

	// unavailableMaps is built at post-init from DLC ownership.
	unavailableMaps map[string]bool

	// workshop runs installation jobs for items subscribed through the
	// UGC object.
	workshop *steamclient.Manager

	mu   sync.Mutex
	mods []uint64
}

// subscribedItems returns the installed item ids followed by the ids with a
// running installation job, the set the title sees as subscribed.
func (st *arkState) subscribedItems() []uint64 {
	st.mu.Lock()
	items := append([]uint64(nil), st.mods...)
	st.mu.Unlock()
	if st.workshop != nil {
		items = append(items, st.workshop.Pending()...)
	}
	return items
}

var ark arkState

// RulesResponse is the server-rules query handler contract: the runtime
// forwards each rule key/value pair to the title's handler object.
type RulesResponse interface {
	RulesResponded(key, value string)
	RulesFailedToRespond()
	RulesRefreshComplete()
}

// arkRulesFilter sits between the target library and the title's handler,
// failing the query early when a rule reveals a server the user cannot join.
type arkRulesFilter struct {
	base  RulesResponse
	st    *arkState
	spoof bool // effective identity is the title's own id

	// cancel aborts the in-flight query through the original table.
	cancel func(query int32)
	query  int32
}

func (f *arkRulesFilter) reject(key, value string) bool {
	if !f.st.showBEServers && key == "SERVERUSESBATTLEYE_b" && value != "false" {
		return true
	}
	if !f.st.showUnavailableServers {
		if !f.spoof && key == "SEARCHKEYWORDS_s" && !strings.HasPrefix(value, "TEKWrapper") {
			return true
		}
		if f.spoof && key == "MAPNAME_s" && f.st.unavailableMaps[value] {
			return true
		}
	}
	return false
}

func (f *arkRulesFilter) RulesResponded(key, value string) {
	if f.reject(key, value) {
		f.cancel(f.query)
		f.base.RulesFailedToRespond()
		return
	}
	f.base.RulesResponded(key, value)
}

func (f *arkRulesFilter) RulesFailedToRespond() { f.base.RulesFailedToRespond() }
func (f *arkRulesFilter) RulesRefreshComplete() { f.base.RulesRefreshComplete() }

// scanWorkshopDir lists installed workshop items: child directories whose
// names are numeric item ids.
func (st *arkState) scanWorkshopDir() {
	entries, err := os.ReadDir(st.workshopDirPath)
	if err != nil {
		Logger().Debug("workshop directory unreadable",
			zap.String("path", st.workshopDirPath), zap.Error(err))
		return
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	st.mods = st.mods[:0]
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		id, err := strconv.ParseUint(entry.Name(), 10, 64)
		if err == nil && id != 0 {
			st.mods = append(st.mods, id)
		}
	}
}

func arkSettingsLoad(s *settings.Settings, doc json.RawMessage) {
	var fields struct {
		ShowBEServers          *bool   `json:"show_be_servers"`
		ShowUnavailableServers *bool   `json:"show_unavailable_servers"`
		WorkshopDirPath        *string `json:"workshop_dir_path"`
		WorkshopAMPath         *string `json:"workshop_am_path"`
	}
	if json.Unmarshal(doc, &fields) != nil {
		return
	}
	if fields.ShowBEServers != nil {
		ark.showBEServers = *fields.ShowBEServers
	}
	if fields.ShowUnavailableServers != nil {
		ark.showUnavailableServers = *fields.ShowUnavailableServers
	}
	if fields.WorkshopDirPath != nil {
		ark.workshopDirPath = *fields.WorkshopDirPath
	}
	if fields.WorkshopAMPath != nil {
		ark.workshopAMPath = *fields.WorkshopAMPath
	} else {
		ark.workshopAMPath = ark.workshopDirPath
	}
}

func arkSettingsSave(s *settings.Settings) []settings.Field {
	fields := []settings.Field{
		{Key: "show_be_servers", Value: ark.showBEServers},
		{Key: "show_unavailable_servers", Value: ark.showUnavailableServers},
	}
	if ark.workshopDirPath != "" {
		fields = append(fields, settings.Field{Key: "workshop_dir_path", Value: ark.workshopDirPath})
	}
	if ark.workshopAMPath != "" {
		fields = append(fields, settings.Field{Key: "workshop_am_path", Value: ark.workshopAMPath})
	}
	return fields
}

func arkPostInit(env *Env) {
	spoofed := env.Settings.EffectiveAppID() == arkAppID
	if !ark.showBEServers || !ark.showUnavailableServers {
		if !ark.showUnavailableServers && spoofed {
			// Build the unowned-map list through the original apps object so
			// baseline subscription overrides do not mask real ownership.
			apps := env.Descriptor(layout.KindApps)
			if apps != nil {
				if orig, ok := apps.Original(layout.AppsBIsSubscribedApp).(func(appID uint32) bool); ok {
					ark.unavailableMaps = make(map[string]bool)
					for id, maps := range arkDLCMaps {
						if !orig(id) {
							for _, name := range maps {
								ark.unavailableMaps[name] = true
							}
						}
					}
				}
			}
		}
		servers := env.Descriptor(layout.KindMatchmakingServers)
		if servers != nil {
			rulesOrig, okRules := servers.Original(layout.MatchmakingServersServerRules).(func(ip uint32, port uint16, response RulesResponse) int32)
			cancelOrig, okCancel := servers.Original(layout.MatchmakingServersCancelServerQuery).(func(query int32))
			if okRules && okCancel {
				servers.Patch(layout.MatchmakingServersServerRules,
					func(ip uint32, port uint16, response RulesResponse) int32 {
						filter := &arkRulesFilter{
							base:   response,
							st:     &ark,
							spoof:  spoofed,
							cancel: cancelOrig,
						}
						filter.query = rulesOrig(ip, port, filter)
						return filter.query
					})
			}
		}
	}
	if !spoofed {
		if ark.workshopDirPath != "" {
			ark.scanWorkshopDir()
		}
		ark.workshop = steamclient.NewManager(arkAppID, env.WorkshopRunner)
		// Back the subscribed-item list with the workshop directory contents
		// plus any in-flight installation jobs.
		ugc := env.Descriptor(layout.KindUGC)
		if ugc != nil {
			ugc.Patch(layout.UGCGetNumSubscribedItems, func() uint32 {
				return uint32(len(ark.subscribedItems()))
			})
			ugc.Patch(layout.UGCGetSubscribedItems, func(out []uint64) uint32 {
				return uint32(copy(out, ark.subscribedItems()))
			})
			ugc.Patch(layout.UGCGetItemInstallInfo,
				func(id uint64, sizeOnDisk *uint64, folder *string, timestamp *uint32) bool {
					ark.mu.Lock()
					defer ark.mu.Unlock()
					for _, mod := range ark.mods {
						if mod != id {
							continue
						}
						if sizeOnDisk != nil {
							*sizeOnDisk = 0
						}
						if folder != nil {
							*folder = ark.workshopDirPath + "/" + strconv.FormatUint(id, 10)
						}
						if timestamp != nil {
							*timestamp = 0
						}
						return true
					}
					return false
				})
			// Subscribing starts an installation job; the item id doubles as
			// the async-call handle the title polls.
			ugc.Patch(layout.UGCSubscribeItem, func(id uint64) uint64 {
				ark.workshop.InstallItem(context.Background(), id, arkItemInstalled)
				return id
			})
			ugc.Patch(layout.UGCGetItemUpdateInfo,
				func(id uint64, needsUpdate, isDownloading *bool, bytesDownloaded, bytesTotal *uint64) bool {
					desc, ok := ark.workshop.Item(id)
					if !ok || desc.Status&steamclient.StatusJob == 0 {
						return false
					}
					if needsUpdate != nil {
						*needsUpdate = true
					}
					if isDownloading != nil {
						*isDownloading = true
					}
					if bytesDownloaded != nil {
						*bytesDownloaded = uint64(desc.CurrentBytes)
					}
					if bytesTotal != nil {
						*bytesTotal = uint64(desc.TotalBytes)
					}
					return true
				})
		}
		arkPatchAsyncCalls(env)
	}
}

// arkItemInstalled moves a completed installation into the subscribed mod
// list, at which point async-call polls for its handle fall through to the
// original table again.
func arkItemInstalled(desc steamclient.ItemDesc) {
	if desc.Status&steamclient.StatusInstalled == 0 {
		return
	}
	ark.mu.Lock()
	defer ark.mu.Unlock()
	for _, mod := range ark.mods {
		if mod == desc.ID {
			return
		}
	}
	ark.mods = append(ark.mods, desc.ID)
}

// RemoteStorageSubscribeResult is the async-call payload the title reads
// back after subscribing to a workshop item.
type RemoteStorageSubscribeResult struct {
	Result int32
	ItemID uint64
}

// subscribeResultCallback is the callback index the title passes when
// polling for a subscription result.
const subscribeResultCallback int32 = 1313

// resultOK is the library's generic success code.
const resultOK int32 = 1

// arkPatchAsyncCalls emulates async-call completion for the handles
// SubscribeItem hands out. Handles the workshop manager does not know are
// forwarded to the original table.
func arkPatchAsyncCalls(env *Env) {
	utils := env.Descriptor(layout.KindUtils)
	if utils == nil {
		return
	}
	completedOrig, okCompleted := utils.Original(layout.UtilsIsAPICallCompleted).(func(call uint64, failed *bool) bool)
	resultOrig, okResult := utils.Original(layout.UtilsGetAPICallResult).(func(call uint64, result any, size int32, callbackIndex int32, failed *bool) bool)
	if !okCompleted || !okResult {
		return
	}
	utils.Patch(layout.UtilsIsAPICallCompleted, func(call uint64, failed *bool) bool {
		if desc, ok := ark.workshop.Item(call); ok && desc.Status&steamclient.StatusJob != 0 {
			if failed != nil {
				*failed = false
			}
			return true
		}
		return completedOrig(call, failed)
	})
	utils.Patch(layout.UtilsGetAPICallResult,
		func(call uint64, result any, size int32, callbackIndex int32, failed *bool) bool {
			if callbackIndex == subscribeResultCallback {
				if desc, ok := ark.workshop.Item(call); ok && desc.Status&steamclient.StatusJob != 0 {
					if out, ok := result.(*RemoteStorageSubscribeResult); ok {
						out.Result = resultOK
						out.ItemID = call
					}
					if failed != nil {
						*failed = false
					}
					return true
				}
			}
			return resultOrig(call, result, size, callbackIndex, failed)
		})
}

func init() {
	Register(Key{Store: settings.StoreSteam, AppID: arkAppID}, Callbacks{
		SettingsLoad: arkSettingsLoad,
		SettingsSave: arkSettingsSave,
		PostInit:     arkPostInit,
	})
}
