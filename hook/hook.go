package hook

import (
	"go.uber.org/zap"

	"github.com/teknology-hub/tek-game-runtime/errors"
	"github.com/teknology-hub/tek-game-runtime/image"
)

// PatchImport overwrites the host image's import-address slot for the given
// library and symbol with replacement, so the next host call through that
// linkage lands on the replacement instead of the library's real export.
//
// Static import descriptors are searched first, then the deferred-load
// descriptor array. Within a matching descriptor the name table and address
// table are walked in lockstep; the address slot at the matched name's
// position is rewritten in place. Only the first match is patched.
//
// A miss returns a KindHookNotFound error. Callers treat it as a silent
// no-op: the host loaded the library through some other mechanism and keeps
// the unmodified behavior.
func PatchImport(host image.Module, library, symbol string, replacement image.Export) error {
	if host == nil {
		return errors.HookNotFound(library, symbol)
	}
	for _, descs := range [][]*image.ImportDescriptor{host.Imports(), host.DelayImports()} {
		for _, desc := range descs {
			if desc.Library != library {
				continue
			}
			for i, name := range desc.Names {
				if name != symbol || i >= len(desc.Addrs) {
					continue
				}
				desc.Addrs[i] = replacement
				Logger().Debug("patched import slot",
					zap.String("host", host.Name()),
					zap.String("library", library),
					zap.String("symbol", symbol))
				return nil
			}
		}
	}
	Logger().Debug("import slot not found",
		zap.String("host", host.Name()),
		zap.String("library", library),
		zap.String("symbol", symbol))
	return errors.HookNotFound(library, symbol)
}
