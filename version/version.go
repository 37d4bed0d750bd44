package version

import (
	"fmt"

	"github.com/teknology-hub/tek-game-runtime/errors"
	"github.com/teknology-hub/tek-game-runtime/image"
)

// Packed is a detected library version: four 16-bit fields {major, minor,
// build, revision} folded into one 64-bit integer, ordered so that plain
// unsigned comparison matches release order.
type Packed uint64

// Pack folds a fixed file-version block into a Packed value:
// low 32 bits from FileVersionLS, high 32 bits from FileVersionMS.
func Pack(info image.FixedFileInfo) Packed {
	return Packed(uint64(info.FileVersionLS) | uint64(info.FileVersionMS)<<32)
}

// Fields returns the four 16-bit version fields, most significant first.
func (v Packed) Fields() (major, minor, build, revision uint16) {
	return uint16(v >> 48), uint16(v >> 32), uint16(v >> 16), uint16(v)
}

// String formats the version the way the target library's file metadata
// displays it, e.g. "09.60.44.10".
func (v Packed) String() string {
	major, minor, build, revision := v.Fields()
	return fmt.Sprintf("%02d.%02d.%02d.%02d", major, minor, build, revision)
}

// Resolve reads the version-information resource of the given module and
// packs its fixed file-version fields.
//
// Failure is non-fatal to the host: callers must leave the library
// completely unmodified and report enhancement failure only.
func Resolve(m image.Module) (Packed, error) {
	if m == nil {
		return 0, errors.New(errors.PhaseResolve, errors.KindModuleNotLoaded).
			Detail("target library not loaded").
			Build()
	}
	info, ok := m.VersionInfo()
	if !ok {
		return 0, errors.VersionInfoUnavailable(m.Name(), "version resource absent or unreadable")
	}
	return Pack(info), nil
}
