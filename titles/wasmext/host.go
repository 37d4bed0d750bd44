package wasmext

import (
	"context"
	"os"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"

	"github.com/teknology-hub/tek-game-runtime/errors"
	"github.com/teknology-hub/tek-game-runtime/titles"
)

// hostModule is the import namespace guests bind against.
const hostModule = "tek_gr"

// entryPoint is the exported function a guest must provide.
const entryPoint = "post_init"

// Host owns a wazero runtime that executes title extension modules. One
// Host runs one extension: the host-function namespace binds to a single
// environment at Run time.
type Host struct {
	runtime wazero.Runtime
}

// NewHost creates an extension host with an interpreter-backed runtime.
// Extensions run once at initialization, so compilation speed wins over
// execution speed.
func NewHost(ctx context.Context) *Host {
	cfg := wazero.NewRuntimeConfigInterpreter()
	return &Host{runtime: wazero.NewRuntimeWithConfig(ctx, cfg)}
}

// Close releases the runtime and every module instantiated in it.
func (h *Host) Close(ctx context.Context) error {
	return h.runtime.Close(ctx)
}

// Run instantiates a guest module and invokes its post_init export against
// the given environment. The guest is closed before Run returns; any state
// it wants to persist must go through the patch host functions.
func (h *Host) Run(ctx context.Context, wasmBytes []byte, env *titles.Env) error {
	if err := h.instantiateHostModule(ctx, env); err != nil {
		return err
	}
	guest, err := h.runtime.InstantiateWithConfig(ctx, wasmBytes,
		wazero.NewModuleConfig().WithName("extension"))
	if err != nil {
		return errors.New(errors.PhaseExtend, errors.KindInvalidData).
			Cause(err).Detail("instantiating extension module").Build()
	}
	defer guest.Close(ctx)

	fn := guest.ExportedFunction(entryPoint)
	if fn == nil {
		return errors.SymbolNotFound(errors.PhaseExtend, "extension", entryPoint)
	}
	if _, err := fn.Call(ctx); err != nil {
		return errors.New(errors.PhaseExtend, errors.KindInvalidData).
			Cause(err).Detail("extension post_init trapped").Build()
	}
	return nil
}

// RunFile loads a guest module from disk and runs it. A missing file is not
// an error: the title simply has no wasm extension installed.
func (h *Host) RunFile(ctx context.Context, path string, env *titles.Env) error {
	wasmBytes, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.New(errors.PhaseExtend, errors.KindIO).
			Cause(err).Detail("reading extension module %s", path).Build()
	}
	return h.Run(ctx, wasmBytes, env)
}

func (h *Host) instantiateHostModule(ctx context.Context, env *titles.Env) error {
	builder := h.runtime.NewHostModuleBuilder(hostModule)

	builder.NewFunctionBuilder().
		WithFunc(func(kind, id, value uint32) uint32 {
			k, ok := kindFromGuest(kind)
			if !ok {
				return 0
			}
			desc := env.Descriptor(k)
			factory, ok := boolOverrides[k][int(id)]
			if desc == nil || !ok {
				return 0
			}
			desc.Patch(int(id), factory(value != 0))
			return 1
		}).Export("patch_return_bool")

	builder.NewFunctionBuilder().
		WithFunc(func(kind, id, value uint32) uint32 {
			k, ok := kindFromGuest(kind)
			if !ok {
				return 0
			}
			desc := env.Descriptor(k)
			factory, ok := u32Overrides[k][int(id)]
			if desc == nil || !ok {
				return 0
			}
			desc.Patch(int(id), factory(value))
			return 1
		}).Export("patch_return_u32")

	builder.NewFunctionBuilder().
		WithFunc(func(kind, id uint32) uint32 {
			k, ok := kindFromGuest(kind)
			if !ok {
				return 0
			}
			desc := env.Descriptor(k)
			if desc == nil || desc.Slot(int(id)) < 0 {
				return 0
			}
			return 1
		}).Export("method_present")

	builder.NewFunctionBuilder().
		WithFunc(func() uint32 {
			if env.Settings == nil || env.Settings.Steam == nil {
				return 0
			}
			return env.Settings.Steam.AppID
		}).Export("app_id")

	builder.NewFunctionBuilder().
		WithFunc(func() uint32 {
			if env.Settings == nil {
				return 0
			}
			return env.Settings.EffectiveAppID()
		}).Export("effective_app_id")

	builder.NewFunctionBuilder().
		WithFunc(func() uint64 { return env.UserID }).
		Export("user_id")

	builder.NewFunctionBuilder().
		WithFunc(func() uint32 {
			if env.Settings == nil {
				return 0
			}
			return uint32(env.Settings.DLCCount())
		}).Export("dlc_count")

	builder.NewFunctionBuilder().
		WithFunc(func(id uint32) uint32 {
			if env.Settings != nil && env.Settings.OwnsDLC(id) {
				return 1
			}
			return 0
		}).Export("owns_dlc")

	builder.NewFunctionBuilder().
		WithFunc(func(id uint32) uint32 {
			if env.Settings != nil && env.Settings.DLCInstalled(id) {
				return 1
			}
			return 0
		}).Export("dlc_installed")

	builder.NewFunctionBuilder().
		WithFunc(func(ctx context.Context, m api.Module, ptr, size uint32) {
			data, ok := m.Memory().Read(ptr, size)
			if !ok {
				return
			}
			Logger().Info("extension log", zap.ByteString("message", data))
		}).Export("log")

	if _, err := builder.Instantiate(ctx); err != nil {
		return errors.New(errors.PhaseExtend, errors.KindInvalidData).
			Cause(err).Detail("instantiating host module").Build()
	}
	return nil
}
