package steamapi

import (
	"context"
	"os"
	"strconv"

	"go.uber.org/zap"

	"github.com/teknology-hub/tek-game-runtime/dispatch"
	"github.com/teknology-hub/tek-game-runtime/errors"
	"github.com/teknology-hub/tek-game-runtime/image"
	"github.com/teknology-hub/tek-game-runtime/layout"
	"github.com/teknology-hub/tek-game-runtime/settings"
	"github.com/teknology-hub/tek-game-runtime/steamclient"
	"github.com/teknology-hub/tek-game-runtime/titles"
	"github.com/teknology-hub/tek-game-runtime/titles/wasmext"
	"github.com/teknology-hub/tek-game-runtime/version"
)

// initialize is the body of the one-shot sequence: identity selection, real
// initializer invocation with fallback retry, version resolution, capability
// object acquisition, dispatch table interception, the baseline override
// catalog, and the title extension point.
func (r *Runtime) initialize() bool {
	s := r.settings
	s.RLock()
	appID := s.Steam.AppID
	spoof := s.Steam.SpoofAppID
	autoUpdate := s.Steam.AutoUpdateDLC
	extension := s.Steam.ExtensionPath
	s.RUnlock()

	lib, ok := r.registry.Lookup(LibraryName)
	if !ok {
		Logger().Error("target library not loaded",
			zap.String("library", LibraryName))
		return false
	}
	exp, ok := lib.Export(InitSymbol)
	if !ok {
		Logger().Error("initializer export missing",
			zap.Error(errors.SymbolNotFound(errors.PhaseInit, LibraryName, InitSymbol)))
		return false
	}
	realInit, ok := exp.(func() bool)
	if !ok {
		Logger().Error("initializer export has unexpected shape",
			zap.String("symbol", InitSymbol))
		return false
	}

	// The real initializer reads the application identity from the
	// environment. Signal the spoof identity when one is configured,
	// otherwise the title's own.
	identity := spoof
	if identity == 0 {
		identity = appID
	}
	os.Setenv(identityEnv, strconv.FormatUint(uint64(identity), 10))

	initOK := realInit()
	if spoof == 0 {
		if initOK {
			s.SetEffectiveAppID(appID)
		} else {
			// The account probably has no license for the title; retry
			// under the shared test identity.
			identity = settings.FallbackAppID
			os.Setenv(identityEnv, strconv.FormatUint(uint64(identity), 10))
			if initOK = realInit(); initOK {
				s.SetEffectiveAppID(settings.FallbackAppID)
			}
		}
	}
	if !initOK {
		Logger().Error("real initializer failed",
			zap.Error(errors.InitializerFailure(InitSymbol, identity)))
		return false
	}

	v, err := version.Resolve(lib)
	if err != nil {
		// The host still gets a working, unmodified library.
		Logger().Warn("version resolution failed, skipping enhancement",
			zap.Error(err))
		return true
	}
	if !layout.Supported(v) {
		Logger().Error("target library version unsupported",
			zap.String("version", v.String()),
			zap.Error(errors.UnsupportedVersion(LibraryName, uint64(v), uint64(layout.Ceiling))))
		return false
	}
	r.version = v

	objects, err := acquire(lib, v)
	if err != nil {
		Logger().Warn("capability object acquisition failed, skipping enhancement",
			zap.Error(err))
		return true
	}

	descriptors := make(map[layout.Kind]*dispatch.Descriptor, len(objects))
	for _, kind := range layout.Kinds {
		obj := objects[kind]
		if obj == nil {
			continue
		}
		table := layout.For(kind)
		entry := table.Select(v)
		d, err := dispatch.Construct(kind.String(), obj, entry.NumMethods, table.MaxMethods, entry.Slots)
		if err != nil {
			Logger().Warn("dispatch interception failed, skipping enhancement",
				zap.String("object", kind.String()),
				zap.Error(err))
			return true
		}
		descriptors[kind] = d
	}
	r.descriptors = descriptors

	// Capture the account id through the pre-interception table before any
	// override can shadow it.
	if user := descriptors[layout.KindUser]; user != nil {
		if getID, ok := user.Original(layout.UserGetSteamID).(func() uint64); ok {
			r.userID = getID()
		}
	}

	r.installOverrides()
	r.enhanced = true

	cbs, haveTitle := titles.ForSettings(s)

	if autoUpdate && r.config.RefreshEndpoint != "" {
		err := steamclient.UpdateDLC(context.Background(), r.config.RefreshEndpoint, s, func() {
			s.Save(cbs.SettingsSave)
		})
		if err != nil {
			Logger().Warn("dlc refresh abandoned", zap.Error(err))
		}
	}

	env := &titles.Env{
		Settings:       s,
		Descriptors:    descriptors,
		UserID:         r.userID,
		WorkshopRunner: r.config.WorkshopRunner,
	}
	if haveTitle && cbs.PostInit != nil {
		cbs.PostInit(env)
	}

	if extension != "" {
		ctx := context.Background()
		host := wasmext.NewHost(ctx)
		if err := host.RunFile(ctx, extension, env); err != nil {
			Logger().Warn("wasm extension failed",
				zap.String("path", extension), zap.Error(err))
		}
		host.Close(ctx)
	}

	Logger().Info("runtime initialized",
		zap.String("version", v.String()),
		zap.Uint32("app_id", appID),
		zap.Uint32("effective_app_id", s.EffectiveAppID()),
		zap.Uint64("user_id", r.userID))
	return true
}

// acquire fetches the six capability objects using the strategy the
// detected build expects.
func acquire(lib image.Module, v version.Packed) (map[layout.Kind]*dispatch.Object, error) {
	if v < factoryMinVersion {
		return acquireLegacy(lib, v)
	}
	return acquireFactory(lib, v)
}

// acquireLegacy resolves one named getter export per capability object.
func acquireLegacy(lib image.Module, v version.Packed) (map[layout.Kind]*dispatch.Object, error) {
	objects := make(map[layout.Kind]*dispatch.Object, len(layout.Kinds))
	for _, kind := range layout.Kinds {
		if kind == layout.KindUGC && v < legacyUGCMinVersion {
			continue
		}
		symbol := legacyGetterSymbols[kind]
		exp, ok := lib.Export(symbol)
		if !ok {
			return nil, errors.SymbolNotFound(errors.PhaseAcquire, lib.Name(), symbol)
		}
		getter, ok := exp.(func() *dispatch.Object)
		if !ok {
			return nil, errors.New(errors.PhaseAcquire, errors.KindInvalidData).
				Library(lib.Name()).Symbol(symbol).
				Detail("getter export has unexpected shape").Build()
		}
		obj := getter()
		if obj == nil {
			return nil, errors.New(errors.PhaseAcquire, errors.KindInvalidData).
				Object(kind.String()).Detail("getter returned nil").Build()
		}
		objects[kind] = obj
	}
	return objects, nil
}

// acquireFactory resolves the versioned factory object, then fetches every
// capability object through its generic-interface method under the current
// session handles.
func acquireFactory(lib image.Module, v version.Packed) (map[layout.Kind]*dispatch.Object, error) {
	createInterface, err := exportAs[func(name string) *dispatch.Object](lib, symbolCreateInterface)
	if err != nil {
		return nil, err
	}
	getPipe, err := exportAs[func() int32](lib, symbolGetHSteamPipe)
	if err != nil {
		return nil, err
	}
	getUser, err := exportAs[func() int32](lib, symbolGetHSteamUser)
	if err != nil {
		return nil, err
	}

	clientVersion := clientInterfaceVersion(v)
	client := createInterface(clientVersion)
	if client == nil {
		return nil, errors.New(errors.PhaseAcquire, errors.KindInvalidData).
			Object(clientVersion).Detail("factory object unavailable").Build()
	}
	factory, ok := client.Entry(genericInterfaceSlot).(func(user, pipe int32, name string) *dispatch.Object)
	if !ok {
		return nil, errors.New(errors.PhaseAcquire, errors.KindInvalidData).
			Object(clientVersion).
			Detail("generic-interface slot %d has unexpected shape", genericInterfaceSlot).
			Build()
	}
	pipe := getPipe()
	user := getUser()

	objects := make(map[layout.Kind]*dispatch.Object, len(layout.Kinds))
	for _, kind := range layout.Kinds {
		name := InterfaceVersionFor(kind, v)
		obj := factory(user, pipe, name)
		if obj == nil {
			return nil, errors.New(errors.PhaseAcquire, errors.KindInvalidData).
				Object(kind.String()).
				Detail("factory rejected %q", name).Build()
		}
		objects[kind] = obj
	}
	return objects, nil
}

// exportAs resolves an export and asserts its raw-convention signature.
func exportAs[F any](lib image.Module, symbol string) (F, error) {
	var zero F
	exp, ok := lib.Export(symbol)
	if !ok {
		return zero, errors.SymbolNotFound(errors.PhaseAcquire, lib.Name(), symbol)
	}
	fn, ok := exp.(F)
	if !ok {
		return zero, errors.New(errors.PhaseAcquire, errors.KindInvalidData).
			Library(lib.Name()).Symbol(symbol).
			Detail("export has unexpected shape").Build()
	}
	return fn, nil
}
