package steamapi

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/teknology-hub/tek-game-runtime/dispatch"
	"github.com/teknology-hub/tek-game-runtime/image"
	"github.com/teknology-hub/tek-game-runtime/layout"
	"github.com/teknology-hub/tek-game-runtime/settings"
	"github.com/teknology-hub/tek-game-runtime/titles"
	"github.com/teknology-hub/tek-game-runtime/version"
)

// marker is a recognizable placeholder for table slots the tests leave
// unpatched.
type marker struct {
	kind layout.Kind
	slot int
}

// fakeLib is an in-process stand-in for the target library at one detected
// version: a working initializer gated on licensed identities, a version
// resource, and capability objects behind whichever acquisition style the
// version calls for.
type fakeLib struct {
	lib *image.Memory

	initCalls int
	envSeen   []string
	licensed  map[string]bool

	requested []string
	userID    uint64
	objects   map[layout.Kind]*dispatch.Object

	// identities the original BIsSubscribedApp reports as owned
	realSubscribed map[uint32]bool
}

func newFakeLib(t *testing.T, v version.Packed, licensed ...uint32) *fakeLib {
	t.Helper()
	f := &fakeLib{
		lib:            image.NewMemory(LibraryName),
		licensed:       make(map[string]bool, len(licensed)),
		userID:         76561198000000001,
		objects:        make(map[layout.Kind]*dispatch.Object),
		realSubscribed: make(map[uint32]bool),
	}
	for _, id := range licensed {
		f.licensed[fmt.Sprint(id)] = true
	}
	f.lib.SetExport(InitSymbol, func() bool {
		f.initCalls++
		id := os.Getenv(identityEnv)
		f.envSeen = append(f.envSeen, id)
		return f.licensed[id]
	})
	f.lib.SetVersionInfo(image.FixedFileInfo{
		FileVersionMS: uint32(v >> 32),
		FileVersionLS: uint32(v),
	})

	for _, kind := range layout.Kinds {
		f.objects[kind] = f.buildObject(kind, v)
	}

	if v < factoryMinVersion {
		for _, kind := range layout.Kinds {
			if kind == layout.KindUGC && v < legacyUGCMinVersion {
				continue
			}
			obj := f.objects[kind]
			f.lib.SetExport(legacyGetterSymbols[kind], func() *dispatch.Object { return obj })
		}
		return f
	}

	byName := make(map[string]*dispatch.Object, len(layout.Kinds))
	for _, kind := range layout.Kinds {
		byName[InterfaceVersionFor(kind, v)] = f.objects[kind]
	}
	clientTable := make([]dispatch.Entry, genericInterfaceSlot+1)
	clientTable[genericInterfaceSlot] = func(user, pipe int32, name string) *dispatch.Object {
		f.requested = append(f.requested, name)
		return byName[name]
	}
	client := dispatch.NewObject(clientTable)
	wantClient := clientInterfaceVersion(v)
	f.lib.SetExport(symbolCreateInterface, func(name string) *dispatch.Object {
		if name != wantClient {
			return nil
		}
		return client
	})
	f.lib.SetExport(symbolGetHSteamPipe, func() int32 { return 1 })
	f.lib.SetExport(symbolGetHSteamUser, func() int32 { return 1 })
	return f
}

// buildObject seeds one capability object's live table with markers, then
// places callable originals at the slots the override catalog forwards
// through.
func (f *fakeLib) buildObject(kind layout.Kind, v version.Packed) *dispatch.Object {
	table := layout.For(kind)
	entry := table.Select(v)
	live := make([]dispatch.Entry, entry.NumMethods)
	for i := range live {
		live[i] = marker{kind: kind, slot: i}
	}
	set := func(id int, fn dispatch.Entry) {
		if id < len(entry.Slots) && entry.Slots[id] >= 0 {
			live[entry.Slots[id]] = fn
		}
	}
	switch kind {
	case layout.KindUser:
		set(layout.UserGetSteamID, func() uint64 { return f.userID })
	case layout.KindApps:
		set(layout.AppsBIsSubscribedApp, func(appID uint32) bool { return f.realSubscribed[appID] })
		set(layout.AppsBIsAppInstalled, func(appID uint32) bool { return false })
	}
	return dispatch.NewObject(live)
}

func newRegistry(f *fakeLib, host image.Module) *image.Registry {
	reg := image.NewRegistry(host)
	reg.Add(f.lib)
	return reg
}

func parseSettings(t *testing.T, doc string) *settings.Settings {
	t.Helper()
	s, err := settings.Parse([]byte(doc))
	if err != nil {
		t.Fatalf("parsing settings: %v", err)
	}
	return s
}

// call dispatches a logical method through the object's live table, the way
// host code would.
func call(t *testing.T, d *dispatch.Descriptor, id int) dispatch.Entry {
	t.Helper()
	if d == nil {
		t.Fatal("descriptor not installed")
	}
	slot := d.Slot(id)
	if slot == dispatch.SlotAbsent {
		t.Fatalf("logical id %d absent", id)
	}
	return d.Object().Entry(slot)
}

func TestInterfaceVersionStrings(t *testing.T) {
	cases := []struct {
		v    version.Packed
		fn   func(version.Packed) string
		want string
	}{
		{0x0008003F000B0054, clientInterfaceVersion, "SteamClient021"},
		{0x0008003F000B0054 - 1, clientInterfaceVersion, "SteamClient020"},
		{0x000500350021004E, clientInterfaceVersion, "SteamClient020"},
		{0x0005001900410015, clientInterfaceVersion, "SteamClient019"},
		{0x0004005F0014001E, clientInterfaceVersion, "SteamClient018"},
		{0x0004005F0014001E - 1, clientInterfaceVersion, "SteamClient017"},
		{0x0009003C002C000A, ugcInterfaceVersion, "STEAMUGC_INTERFACE_VERSION021"},
		{0x0009003C002C000A - 1, ugcInterfaceVersion, "STEAMUGC_INTERFACE_VERSION020"},
		{0x0008006100630046, ugcInterfaceVersion, "STEAMUGC_INTERFACE_VERSION020"},
		{0x0008002100090017, ugcInterfaceVersion, "STEAMUGC_INTERFACE_VERSION018"},
		{0x000700600000002C, ugcInterfaceVersion, "STEAMUGC_INTERFACE_VERSION017"},
		{0x0006005B00150039, ugcInterfaceVersion, "STEAMUGC_INTERFACE_VERSION016"},
		{0x0006001C00120056, ugcInterfaceVersion, "STEAMUGC_INTERFACE_VERSION015"},
		{0x000500350021004E, ugcInterfaceVersion, "STEAMUGC_INTERFACE_VERSION014"},
		{0x000500130026003E, ugcInterfaceVersion, "STEAMUGC_INTERFACE_VERSION013"},
		{0x0004005F0014001E, ugcInterfaceVersion, "STEAMUGC_INTERFACE_VERSION012"},
		{0x0003005C0048003A, ugcInterfaceVersion, "STEAMUGC_INTERFACE_VERSION010"},
		{0x0003003E00520052, ugcInterfaceVersion, "STEAMUGC_INTERFACE_VERSION009"},
		{0x0003003E00520052 - 1, ugcInterfaceVersion, "STEAMUGC_INTERFACE_VERSION008"},
		{0x000800020015005F, userInterfaceVersion, "SteamUser023"},
		{0x000700600000002C, userInterfaceVersion, "SteamUser022"},
		{0x0005005C0024004B, userInterfaceVersion, "SteamUser021"},
		{0x0004005F0014001E, userInterfaceVersion, "SteamUser020"},
		{0x0004005F0014001E - 1, userInterfaceVersion, "SteamUser019"},
		{0x000600060063003B, utilsInterfaceVersion, "SteamUtils010"},
		{0x0003005C0048003A, utilsInterfaceVersion, "SteamUtils009"},
		{0x0003005C0048003A - 1, utilsInterfaceVersion, "SteamUtils008"},
	}
	for _, c := range cases {
		if got := c.fn(c.v); got != c.want {
			t.Errorf("at %#016x: got %q, want %q", uint64(c.v), got, c.want)
		}
	}
	if got := InterfaceVersionFor(layout.KindApps, layout.Ceiling); got != "STEAMAPPS_INTERFACE_VERSION008" {
		t.Errorf("apps identifier = %q", got)
	}
	if got := InterfaceVersionFor(layout.KindMatchmaking, layout.Ceiling); got != "SteamMatchMaking009" {
		t.Errorf("matchmaking identifier = %q", got)
	}
	if got := InterfaceVersionFor(layout.KindMatchmakingServers, layout.Ceiling); got != "SteamMatchMakingServers002" {
		t.Errorf("matchmaking-servers identifier = %q", got)
	}
}

func TestInit_FactoryAcquisitionAtTransition(t *testing.T) {
	f := newFakeLib(t, factoryMinVersion, 440)
	s := parseSettings(t, `{"store":"steam","app_id":440}`)
	r := New(newRegistry(f, nil), s)

	if !r.Init() {
		t.Fatal("Init failed")
	}
	if !r.Enhanced() {
		t.Fatal("override catalog not installed")
	}
	if len(f.requested) != len(layout.Kinds) {
		t.Fatalf("factory requests = %v", f.requested)
	}

	want := map[layout.Kind]int{
		layout.KindApps:               33,
		layout.KindMatchmaking:        38,
		layout.KindMatchmakingServers: 17,
		layout.KindUGC:                63,
		layout.KindUser:               29,
		layout.KindUtils:              28,
	}
	for kind, n := range want {
		d := r.Descriptor(kind)
		if d == nil {
			t.Fatalf("%v descriptor not installed", kind)
		}
		if d.NumMethods() != n {
			t.Errorf("%v method count = %d, want %d", kind, d.NumMethods(), n)
		}
	}
}

func TestInit_LegacyAcquisition(t *testing.T) {
	// A build old enough for named getters but new enough to have the UGC
	// getter export.
	const v = version.Packed(0x0002003B0033002B)
	f := newFakeLib(t, v, 440)
	s := parseSettings(t, `{"store":"steam","app_id":440}`)
	r := New(newRegistry(f, nil), s)

	if !r.Init() {
		t.Fatal("Init failed")
	}
	if f.requested != nil {
		t.Fatal("legacy build must not touch the factory")
	}
	for _, kind := range layout.Kinds {
		if r.Descriptor(kind) == nil {
			t.Fatalf("%v descriptor not installed", kind)
		}
	}
	if got := r.Descriptor(layout.KindApps).NumMethods(); got != 24 {
		t.Fatalf("apps method count = %d", got)
	}
}

func TestInit_LegacyWithoutUGCGetter(t *testing.T) {
	const v = version.Packed(0x0001001E0032002E) // predates the UGC export
	f := newFakeLib(t, v, 440)
	s := parseSettings(t, `{"store":"steam","app_id":440}`)
	r := New(newRegistry(f, nil), s)

	if !r.Init() {
		t.Fatal("Init failed")
	}
	if r.Descriptor(layout.KindUGC) != nil {
		t.Fatal("UGC must not be acquired below its getter's first build")
	}
	if r.Descriptor(layout.KindApps) == nil {
		t.Fatal("remaining objects must still be acquired")
	}
}

func TestInit_OneShot(t *testing.T) {
	f := newFakeLib(t, layout.Ceiling, 440)
	s := parseSettings(t, `{"store":"steam","app_id":440}`)
	r := New(newRegistry(f, nil), s)

	if !r.Init() {
		t.Fatal("Init failed")
	}
	calls := f.initCalls
	origSubscribed := r.Descriptor(layout.KindApps).Original(layout.AppsBIsSubscribed)
	if !r.Init() {
		t.Fatal("second Init must repeat the first result")
	}
	if f.initCalls != calls {
		t.Fatalf("real initializer ran again: %d calls", f.initCalls)
	}
	// The captured original table must not have been re-derived from the
	// patched live table.
	if _, patched := origSubscribed.(func() bool); patched {
		t.Fatal("original entry replaced by an override")
	}
}

func TestInit_OneShotFailure(t *testing.T) {
	f := newFakeLib(t, layout.Ceiling) // no licensed identity at all
	s := parseSettings(t, `{"store":"steam","app_id":570}`)
	r := New(newRegistry(f, nil), s)

	if r.Init() {
		t.Fatal("Init must fail when both identities are rejected")
	}
	if f.initCalls != 2 {
		t.Fatalf("expected primary + fallback attempts, got %d", f.initCalls)
	}
	if r.Init() {
		t.Fatal("failure must be memoized")
	}
	if f.initCalls != 2 {
		t.Fatal("second Init must not retry the initializer")
	}
}

func TestInit_FallbackIdentity(t *testing.T) {
	f := newFakeLib(t, layout.Ceiling, 480)
	s := parseSettings(t, `{"store":"steam","app_id":570}`)
	r := New(newRegistry(f, nil), s)

	if !r.Init() {
		t.Fatal("Init failed")
	}
	if f.initCalls != 2 {
		t.Fatalf("initializer calls = %d", f.initCalls)
	}
	if got := f.envSeen; len(got) != 2 || got[0] != "570" || got[1] != "480" {
		t.Fatalf("identity signals = %v", got)
	}
	if got := s.EffectiveAppID(); got != 480 {
		t.Fatalf("effective identity = %d, want 480", got)
	}

	// Ownership checks now compare against the fallback: the configured
	// identity falls through to default behavior.
	apps := r.Descriptor(layout.KindApps)
	subscribed := call(t, apps, layout.AppsBIsSubscribedApp).(func(appID uint32) bool)
	if subscribed(570) {
		t.Fatal("configured identity must no longer auto-pass")
	}
	if !subscribed(480) {
		t.Fatal("fallback identity must pass the ownership check")
	}

	// The identity reported to the title stays the configured one.
	getAppID := call(t, r.Descriptor(layout.KindUtils), layout.UtilsGetAppID).(func() uint32)
	if got := getAppID(); got != 570 {
		t.Fatalf("reported app id = %d, want 570", got)
	}
}

func TestInit_ConfiguredSpoofNeverRetries(t *testing.T) {
	f := newFakeLib(t, layout.Ceiling) // spoof identity rejected too
	s := parseSettings(t, `{"store":"steam","app_id":570,"spoof_app_id":271590}`)
	r := New(newRegistry(f, nil), s)

	if r.Init() {
		t.Fatal("Init must fail")
	}
	if f.initCalls != 1 {
		t.Fatalf("configured spoof must not trigger the fallback retry, got %d calls", f.initCalls)
	}
	if got := f.envSeen[0]; got != "271590" {
		t.Fatalf("identity signal = %q", got)
	}
}

func TestInit_VersionResolveFailureIsNonFatal(t *testing.T) {
	f := newFakeLib(t, layout.Ceiling, 440)
	f.lib = image.NewMemory(LibraryName) // rebuild without a version resource
	f.lib.SetExport(InitSymbol, func() bool {
		f.initCalls++
		return true
	})
	s := parseSettings(t, `{"store":"steam","app_id":440}`)
	r := New(newRegistry(f, nil), s)

	if !r.Init() {
		t.Fatal("resolver failure must not fail the wrapped initializer")
	}
	if r.Enhanced() {
		t.Fatal("no override catalog without a detected version")
	}
	if r.Descriptors() != nil {
		t.Fatal("no descriptors without a detected version")
	}
}

func TestInit_VersionAboveCeilingIsFatal(t *testing.T) {
	f := newFakeLib(t, layout.Ceiling+1, 440)
	s := parseSettings(t, `{"store":"steam","app_id":440}`)
	r := New(newRegistry(f, nil), s)

	if r.Init() {
		t.Fatal("a version above the catalog ceiling must fail Init")
	}
	if r.Enhanced() {
		t.Fatal("no enhancement above the ceiling")
	}
}

func TestOverrides_Catalog(t *testing.T) {
	f := newFakeLib(t, layout.Ceiling, 252490)
	f.realSubscribed[333310] = true
	s := parseSettings(t, `{
		"store": "steam",
		"app_id": 252490,
		"dlc": {"1223350": "MyM", "1623550": "Sunburn"},
		"installed_dlc": [1223350]
	}`)
	r := New(newRegistry(f, nil), s)
	if !r.Init() {
		t.Fatal("Init failed")
	}

	apps := r.Descriptor(layout.KindApps)
	if !call(t, apps, layout.AppsBIsSubscribed).(func() bool)() {
		t.Fatal("BIsSubscribed must report true")
	}

	subscribed := call(t, apps, layout.AppsBIsSubscribedApp).(func(appID uint32) bool)
	for id, want := range map[uint32]bool{
		252490:  true,  // the title itself
		1223350: true,  // owned DLC
		1623550: true,  // owned DLC, not installed
		333310:  true,  // forwarded to the library's own answer
		99:      false, // unknown everywhere
	} {
		if got := subscribed(id); got != want {
			t.Errorf("BIsSubscribedApp(%d) = %v, want %v", id, got, want)
		}
	}

	installed := call(t, apps, layout.AppsBIsDlcInstalled).(func(appID uint32) bool)
	if !installed(1223350) || installed(1623550) {
		t.Fatal("BIsDlcInstalled must reflect the installed set")
	}

	if got := call(t, apps, layout.AppsGetDLCCount).(func() int32)(); got != 2 {
		t.Fatalf("GetDLCCount = %d", got)
	}

	getData := call(t, apps, layout.AppsBGetDLCDataByIndex).(func(index int32, appID *uint32, available *bool, name *string) bool)
	var (
		id        uint32
		available bool
		name      string
	)
	if !getData(0, &id, &available, &name) {
		t.Fatal("BGetDLCDataByIndex(0) failed")
	}
	if id != 1223350 || !available || name != "MyM" {
		t.Fatalf("entry 0 = (%d, %v, %q)", id, available, name)
	}
	if getData(2, &id, &available, &name) {
		t.Fatal("index at the entry count must be rejected")
	}
	if getData(-1, &id, &available, &name) {
		t.Fatal("negative index must be rejected")
	}

	isAppInstalled := call(t, apps, layout.AppsBIsAppInstalled).(func(appID uint32) bool)
	if !isAppInstalled(252490) || !isAppInstalled(1223350) || isAppInstalled(1623550) {
		t.Fatal("BIsAppInstalled must accept the title and installed DLC only")
	}

	var owner uint64
	ret := call(t, apps, layout.AppsGetAppOwner).(func(id *uint64) *uint64)(&owner)
	if owner != f.userID || ret != &owner {
		t.Fatalf("GetAppOwner wrote %d", owner)
	}

	if call(t, apps, layout.AppsBIsSubscribedFromFreeWeekend).(func() bool)() {
		t.Fatal("free-weekend flag must be false")
	}
	if call(t, apps, layout.AppsBIsSubscribedFromFamilySharing).(func() bool)() {
		t.Fatal("family-sharing flag must be false")
	}
	var allowed, played uint32
	if call(t, apps, layout.AppsBIsTimedTrial).(func(allowed, played *uint32) bool)(&allowed, &played) {
		t.Fatal("timed-trial flag must be false")
	}

	hasLicense := call(t, r.Descriptor(layout.KindUser), layout.UserUserHasLicenseForApp).(func(userID uint64, appID uint32) int32)
	if got := hasLicense(f.userID, 99); got != LicenseResultHasLicense {
		t.Fatalf("UserHasLicenseForApp = %d", got)
	}

	if r.UserID() != f.userID {
		t.Fatalf("captured user id = %d", r.UserID())
	}
}

// extensionGuest is a wasm module whose post_init reads the effective
// identity and the owned-DLC count through the host namespace, then
// installs them as constant returns on the utils object:
//
//	patch_return_u32(utils, GetAppID, effective_app_id())
//	patch_return_u32(utils, GetServerRealTime, dlc_count())
var extensionGuest = []byte{
	0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00, 0x01, 0x0f, 0x03, 0x60,
	0x03, 0x7f, 0x7f, 0x7f, 0x01, 0x7f, 0x60, 0x00, 0x01, 0x7f, 0x60, 0x00,
	0x00, 0x02, 0x48, 0x03, 0x06, 0x74, 0x65, 0x6b, 0x5f, 0x67, 0x72, 0x10,
	0x70, 0x61, 0x74, 0x63, 0x68, 0x5f, 0x72, 0x65, 0x74, 0x75, 0x72, 0x6e,
	0x5f, 0x75, 0x33, 0x32, 0x00, 0x00, 0x06, 0x74, 0x65, 0x6b, 0x5f, 0x67,
	0x72, 0x10, 0x65, 0x66, 0x66, 0x65, 0x63, 0x74, 0x69, 0x76, 0x65, 0x5f,
	0x61, 0x70, 0x70, 0x5f, 0x69, 0x64, 0x00, 0x01, 0x06, 0x74, 0x65, 0x6b,
	0x5f, 0x67, 0x72, 0x09, 0x64, 0x6c, 0x63, 0x5f, 0x63, 0x6f, 0x75, 0x6e,
	0x74, 0x00, 0x01, 0x03, 0x02, 0x01, 0x02, 0x07, 0x0d, 0x01, 0x09, 0x70,
	0x6f, 0x73, 0x74, 0x5f, 0x69, 0x6e, 0x69, 0x74, 0x00, 0x03, 0x0a, 0x16,
	0x01, 0x14, 0x00, 0x41, 0x05, 0x41, 0x09, 0x10, 0x01, 0x10, 0x00, 0x1a,
	0x41, 0x05, 0x41, 0x03, 0x10, 0x02, 0x10, 0x00, 0x1a, 0x0b,
}

func TestInit_WasmExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ext.wasm")
	if err := os.WriteFile(path, extensionGuest, 0o644); err != nil {
		t.Fatal(err)
	}

	// Fallback scenario: the effective identity (480) differs from the
	// configured one (570), so a guest patch built from effective_app_id is
	// distinguishable from the baseline catalog's GetAppID override.
	f := newFakeLib(t, layout.Ceiling, 480)
	s := parseSettings(t, fmt.Sprintf(`{
		"store": "steam",
		"app_id": 570,
		"dlc": {"1": "A", "2": "B", "3": "C"},
		"extension_path": %q
	}`, path))
	r := New(newRegistry(f, nil), s)
	if !r.Init() {
		t.Fatal("Init failed")
	}

	utils := r.Descriptor(layout.KindUtils)
	getAppID := call(t, utils, layout.UtilsGetAppID).(func() uint32)
	if got := getAppID(); got != 480 {
		t.Fatalf("reported app id = %d, want the guest's effective identity 480", got)
	}
	realTime := call(t, utils, layout.UtilsGetServerRealTime).(func() uint32)
	if got := realTime(); got != 3 {
		t.Fatalf("GetServerRealTime = %d, want the guest's DLC count 3", got)
	}
}

func TestInit_WasmExtensionMissingFile(t *testing.T) {
	f := newFakeLib(t, layout.Ceiling, 440)
	s := parseSettings(t, fmt.Sprintf(`{
		"store": "steam",
		"app_id": 440,
		"extension_path": %q
	}`, filepath.Join(t.TempDir(), "absent.wasm")))
	r := New(newRegistry(f, nil), s)

	if !r.Init() {
		t.Fatal("a missing extension module must not fail initialization")
	}
	if !r.Enhanced() {
		t.Fatal("override catalog must still be installed")
	}
}

// frameInline wraps a settings document in the framed inline header.
func frameInline(doc string) *bytes.Buffer {
	buf := &bytes.Buffer{}
	binary.Write(buf, binary.LittleEndian, uint32(settings.LoadInline))
	binary.Write(buf, binary.LittleEndian, uint32(len(doc)))
	buf.WriteString(doc)
	return buf
}

func TestAttach_WrapsHostImport(t *testing.T) {
	host := image.NewMemory("game.exe")
	host.AddImport(&image.ImportDescriptor{
		Library: LibraryName,
		Names:   []string{"SteamAPI_Shutdown", InitSymbol},
		Addrs:   []image.Export{marker{}, marker{}},
	})
	f := newFakeLib(t, layout.Ceiling, 440)

	r, err := Attach(newRegistry(f, host), frameInline(`{"store":"steam","app_id":440}`), nil)
	if err != nil {
		t.Fatalf("Attach: %v", err)
	}

	slot, ok := host.ImportAddress(LibraryName, InitSymbol)
	if !ok {
		t.Fatal("import slot unreadable")
	}
	wrapped, ok := slot.(func() bool)
	if !ok {
		t.Fatal("import slot not redirected")
	}
	if !wrapped() {
		t.Fatal("wrapped initializer failed")
	}
	if !r.Enhanced() {
		t.Fatal("host call through the import must run the full sequence")
	}
	if neighbor, _ := host.ImportAddress(LibraryName, "SteamAPI_Shutdown"); neighbor != (marker{}) {
		t.Fatal("adjacent import slot modified")
	}
}

func TestAttach_HostWithoutImport(t *testing.T) {
	host := image.NewMemory("game.exe")
	f := newFakeLib(t, layout.Ceiling, 440)

	r, err := Attach(newRegistry(f, host), frameInline(`{"store":"steam","app_id":440}`), nil)
	if err != nil {
		t.Fatalf("Attach: %v", err)
	}

	// The target library behaves exactly as unmodified: its own export is
	// untouched and nothing was intercepted.
	exp, _ := f.lib.Export(InitSymbol)
	if !exp.(func() bool)() {
		t.Fatal("direct initializer call must still work")
	}
	if r.Enhanced() || f.initCalls != 1 {
		t.Fatal("no interception may happen without the import")
	}
}

func TestAttach_TitleVeto(t *testing.T) {
	const appID = 777000
	titles.Register(titles.Key{Store: settings.StoreSteam, AppID: appID}, titles.Callbacks{
		ProcessAttach: func(*settings.Settings) bool { return false },
	})
	host := image.NewMemory("game.exe")
	f := newFakeLib(t, layout.Ceiling, appID)

	_, err := Attach(newRegistry(f, host), frameInline(`{"store":"steam","app_id":777000}`), nil)
	if err == nil {
		t.Fatal("vetoed attach must fail")
	}
}
