package titles

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/teknology-hub/tek-game-runtime/dispatch"
	"github.com/teknology-hub/tek-game-runtime/layout"
	"github.com/teknology-hub/tek-game-runtime/settings"
	"github.com/teknology-hub/tek-game-runtime/steamclient"
)

// construct builds a descriptor for a kind at the catalog ceiling over a
// live table seeded by fill.
func construct(t *testing.T, kind layout.Kind, fill func(slot int) dispatch.Entry) *dispatch.Descriptor {
	t.Helper()
	table := layout.For(kind)
	entry := table.Select(layout.Ceiling)
	live := make([]dispatch.Entry, entry.NumMethods)
	for i := range live {
		live[i] = fill(i)
	}
	object := &dispatch.Object{}
	object.SetVTable(live)
	d, err := dispatch.Construct(kind.String(), object, entry.NumMethods, table.MaxMethods, entry.Slots)
	if err != nil {
		t.Fatalf("constructing %v descriptor: %v", kind, err)
	}
	return d
}

func call(t *testing.T, d *dispatch.Descriptor, id int) dispatch.Entry {
	t.Helper()
	slot := d.Slot(id)
	if slot == dispatch.SlotAbsent {
		t.Fatalf("logical id %d absent", id)
	}
	return d.Object().Entry(slot)
}

func TestRegistry(t *testing.T) {
	key := Key{Store: settings.StoreSteam, AppID: 999999}
	Register(key, Callbacks{ProcessAttach: func(*settings.Settings) bool { return false }})
	cbs, ok := For(settings.StoreSteam, 999999)
	if !ok || cbs.ProcessAttach == nil {
		t.Fatal("registered callbacks not found")
	}
	if _, ok := For(settings.StoreSteam, 123); ok {
		t.Fatal("unregistered title resolved")
	}

	s, err := settings.Parse([]byte(`{"store":"steam","app_id":999999}`))
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := ForSettings(s); !ok {
		t.Fatal("ForSettings did not resolve")
	}
}

func TestBuiltinTitlesRegistered(t *testing.T) {
	for _, id := range []uint32{arkAppID, asaAppID} {
		if _, ok := For(settings.StoreSteam, id); !ok {
			t.Fatalf("built-in title %d not registered", id)
		}
	}
}

func TestARKSettingsLoad(t *testing.T) {
	defer func() { ark = arkState{} }()
	s, _ := settings.Parse([]byte(`{"store":"steam","app_id":346110}`))
	arkSettingsLoad(s, json.RawMessage(`{
		"show_be_servers": true,
		"workshop_dir_path": "D:/ws"
	}`))
	if !ark.showBEServers || ark.showUnavailableServers {
		t.Fatal("boolean fields not decoded")
	}
	if ark.workshopAMPath != "D:/ws" {
		t.Fatal("workshop_am_path must default to workshop_dir_path")
	}

	fields := arkSettingsSave(s)
	if len(fields) != 4 || fields[0].Key != "show_be_servers" || fields[2].Key != "workshop_dir_path" {
		t.Fatalf("save fields = %+v", fields)
	}
}

type recordingRules struct {
	responded [][2]string
	failed    bool
	complete  bool
}

func (r *recordingRules) RulesResponded(key, value string) {
	r.responded = append(r.responded, [2]string{key, value})
}
func (r *recordingRules) RulesFailedToRespond() { r.failed = true }
func (r *recordingRules) RulesRefreshComplete() { r.complete = true }

func TestARKPostInit_ServerRulesFilter(t *testing.T) {
	defer func() { ark = arkState{} }()

	var libHandler RulesResponse
	var cancelled []int32
	servers := reconstructServers(t, &libHandler, &cancelled)

	s, _ := settings.Parse([]byte(`{"store":"steam","app_id":346110,"spoof_app_id":480}`))
	env := &Env{
		Settings: s,
		Descriptors: map[layout.Kind]*dispatch.Descriptor{
			layout.KindMatchmakingServers: servers,
		},
	}
	arkPostInit(env)

	rec := &recordingRules{}
	patched := call(t, servers, layout.MatchmakingServersServerRules).(func(ip uint32, port uint16, response RulesResponse) int32)
	if query := patched(0x7F000001, 27015, rec); query != 42 {
		t.Fatalf("query handle = %d", query)
	}
	if libHandler == nil {
		t.Fatal("original never saw the wrapped handler")
	}

	// A harmless rule passes through.
	libHandler.RulesResponded("MAXPLAYERS_i", "70")
	if len(rec.responded) != 1 || rec.failed {
		t.Fatal("pass-through rule lost")
	}
	// A BattlEye server is rejected: the query is cancelled through the
	// original table and the handler sees a failure.
	libHandler.RulesResponded("SERVERUSESBATTLEYE_b", "true")
	if !rec.failed {
		t.Fatal("filter did not fail the query")
	}
	if len(cancelled) != 1 || cancelled[0] != 42 {
		t.Fatalf("cancelled = %v", cancelled)
	}
	if len(rec.responded) != 1 {
		t.Fatal("rejected rule leaked to the handler")
	}
}

// reconstructServers builds a matchmaking-servers descriptor whose rules and
// cancel entries behave like the target library: the rules call retains the
// handler and returns a handle, cancel records the handle.
func reconstructServers(t *testing.T, handler *RulesResponse, cancelled *[]int32) *dispatch.Descriptor {
	t.Helper()
	table := layout.For(layout.KindMatchmakingServers)
	entry := table.Select(layout.Ceiling)
	live := make([]dispatch.Entry, entry.NumMethods)
	for i := range live {
		live[i] = func() {}
	}
	live[entry.Slots[layout.MatchmakingServersServerRules]] = func(ip uint32, port uint16, response RulesResponse) int32 {
		*handler = response
		return 42
	}
	live[entry.Slots[layout.MatchmakingServersCancelServerQuery]] = func(query int32) {
		*cancelled = append(*cancelled, query)
	}
	object := &dispatch.Object{}
	object.SetVTable(live)
	d, err := dispatch.Construct("ISteamMatchmakingServers", object, entry.NumMethods, table.MaxMethods, entry.Slots)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func TestARKPostInit_WorkshopItems(t *testing.T) {
	defer func() { ark = arkState{} }()

	dir := t.TempDir()
	for _, name := range []string{"731604991", "2447186973", "not-a-mod"} {
		if err := os.Mkdir(filepath.Join(dir, name), 0o755); err != nil {
			t.Fatal(err)
		}
	}
	ark.showBEServers = true
	ark.showUnavailableServers = true
	ark.workshopDirPath = dir

	ugc := construct(t, layout.KindUGC, func(slot int) dispatch.Entry { return func() {} })
	s, _ := settings.Parse([]byte(`{"store":"steam","app_id":346110,"spoof_app_id":480}`))
	arkPostInit(&Env{
		Settings:    s,
		Descriptors: map[layout.Kind]*dispatch.Descriptor{layout.KindUGC: ugc},
	})

	count := call(t, ugc, layout.UGCGetNumSubscribedItems).(func() uint32)()
	if count != 2 {
		t.Fatalf("subscribed items = %d", count)
	}
	out := make([]uint64, 8)
	n := call(t, ugc, layout.UGCGetSubscribedItems).(func(out []uint64) uint32)(out)
	if n != 2 {
		t.Fatalf("returned items = %d", n)
	}
	var folder string
	ok := call(t, ugc, layout.UGCGetItemInstallInfo).(func(id uint64, sizeOnDisk *uint64, folder *string, timestamp *uint32) bool)(out[0], nil, &folder, nil)
	if !ok || folder == "" {
		t.Fatal("install info missing for an installed item")
	}
	if ok := call(t, ugc, layout.UGCGetItemInstallInfo).(func(id uint64, sizeOnDisk *uint64, folder *string, timestamp *uint32) bool)(1, nil, nil, nil); ok {
		t.Fatal("install info reported for an unknown item")
	}
}

// reconstructUtils builds a utils descriptor whose async-call entries behave
// like the target library: no handle is ever known to it.
func reconstructUtils(t *testing.T) *dispatch.Descriptor {
	t.Helper()
	table := layout.For(layout.KindUtils)
	entry := table.Select(layout.Ceiling)
	live := make([]dispatch.Entry, entry.NumMethods)
	for i := range live {
		live[i] = func() {}
	}
	live[entry.Slots[layout.UtilsIsAPICallCompleted]] = func(call uint64, failed *bool) bool {
		return false
	}
	live[entry.Slots[layout.UtilsGetAPICallResult]] = func(call uint64, result any, size int32, callbackIndex int32, failed *bool) bool {
		return false
	}
	object := &dispatch.Object{}
	object.SetVTable(live)
	d, err := dispatch.Construct("ISteamUtils", object, entry.NumMethods, table.MaxMethods, entry.Slots)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func TestARKSubscribeItem(t *testing.T) {
	defer func() { ark = arkState{} }()
	ark.showBEServers = true
	ark.showUnavailableServers = true

	const itemID uint64 = 731604991
	var runs int32
	started := make(chan struct{}, 2)
	release := make(chan struct{})
	runner := func(ctx context.Context, item steamclient.ItemID, progress func(current, total int64)) error {
		atomic.AddInt32(&runs, 1)
		if item.AppID != arkAppID || item.ItemID != itemID {
			t.Errorf("job for %d/%d", item.AppID, item.ItemID)
		}
		progress(50, 100)
		started <- struct{}{}
		<-release
		progress(100, 100)
		return nil
	}

	ugc := construct(t, layout.KindUGC, func(slot int) dispatch.Entry { return func() {} })
	utils := reconstructUtils(t)
	s, _ := settings.Parse([]byte(`{"store":"steam","app_id":346110,"spoof_app_id":480}`))
	arkPostInit(&Env{
		Settings: s,
		Descriptors: map[layout.Kind]*dispatch.Descriptor{
			layout.KindUGC:   ugc,
			layout.KindUtils: utils,
		},
		WorkshopRunner: runner,
	})

	subscribe := call(t, ugc, layout.UGCSubscribeItem).(func(id uint64) uint64)
	if handle := subscribe(itemID); handle != itemID {
		t.Fatalf("handle = %d, want the item id", handle)
	}
	select {
	case <-started:
	case <-time.After(5 * time.Second):
		t.Fatal("installation job never started")
	}

	// The in-flight item counts as subscribed and reports its download
	// progress.
	if n := call(t, ugc, layout.UGCGetNumSubscribedItems).(func() uint32)(); n != 1 {
		t.Fatalf("subscribed items = %d", n)
	}
	updateInfo := call(t, ugc, layout.UGCGetItemUpdateInfo).(func(id uint64, needsUpdate, isDownloading *bool, bytesDownloaded, bytesTotal *uint64) bool)
	var needsUpdate, isDownloading bool
	var current, total uint64
	if !updateInfo(itemID, &needsUpdate, &isDownloading, &current, &total) {
		t.Fatal("no update info while the job runs")
	}
	if !needsUpdate || !isDownloading || current != 50 || total != 100 {
		t.Fatalf("update info = (%v, %v, %d/%d)", needsUpdate, isDownloading, current, total)
	}

	// The handle polls as a completed async call carrying the subscription
	// result; handles the manager does not know forward to the library.
	completed := call(t, utils, layout.UtilsIsAPICallCompleted).(func(call uint64, failed *bool) bool)
	var failed bool
	if !completed(itemID, &failed) || failed {
		t.Fatal("pending subscription must poll as a completed call")
	}
	if completed(999, &failed) {
		t.Fatal("unknown handle must forward to the original table")
	}
	getResult := call(t, utils, layout.UtilsGetAPICallResult).(func(call uint64, result any, size int32, callbackIndex int32, failed *bool) bool)
	var result RemoteStorageSubscribeResult
	if !getResult(itemID, &result, 16, subscribeResultCallback, &failed) || failed {
		t.Fatal("subscription result unavailable")
	}
	if result.Result != resultOK || result.ItemID != itemID {
		t.Fatalf("result = %+v", result)
	}
	if getResult(999, &result, 16, subscribeResultCallback, &failed) {
		t.Fatal("unknown handle must forward to the original table")
	}

	// Re-subscribing while the job runs must not start a second job.
	subscribe(itemID)

	close(release)
	deadline := time.Now().Add(5 * time.Second)
	for {
		ark.mu.Lock()
		installed := len(ark.mods) == 1 && ark.mods[0] == itemID
		ark.mu.Unlock()
		if installed {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("completed item never reached the mod list")
		}
		time.Sleep(time.Millisecond)
	}
	if got := atomic.LoadInt32(&runs); got != 1 {
		t.Fatalf("jobs started = %d", got)
	}

	// The finished item stays subscribed, stops reporting a download, and
	// its handle falls through to the original table again.
	if n := call(t, ugc, layout.UGCGetNumSubscribedItems).(func() uint32)(); n != 1 {
		t.Fatalf("subscribed items after install = %d", n)
	}
	if updateInfo(itemID, &needsUpdate, &isDownloading, &current, &total) {
		t.Fatal("finished job must not report a download")
	}
	if completed(itemID, &failed) {
		t.Fatal("finished handle must forward to the original table")
	}
}

func TestASAProcessAttachVeto(t *testing.T) {
	defer func() { asa = asaState{} }()
	s, _ := settings.Parse([]byte(`{"store":"steam","app_id":2399830}`))

	asa.cfAPIWrapper = "wrap.example.org"
	if !asaProcessAttach(s) {
		t.Fatal("wrapper within the length limit must not veto")
	}
	asa.cfAPIWrapper = "a-wrapper-domain-longer-than-the-embedded-one.example.org"
	if asaProcessAttach(s) {
		t.Fatal("over-long wrapper must veto initialization")
	}
}

func TestASAPostInit(t *testing.T) {
	defer func() { asa = asaState{} }()
	s, _ := settings.Parse([]byte(`{"store":"steam","app_id":2399830}`))
	asaPostInit(&Env{Settings: s, UserID: 76561197960287930})
	if asa.accountIDStr != "76561197960287930" {
		t.Fatalf("accountIDStr = %q", asa.accountIDStr)
	}
}
