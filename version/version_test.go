package version

import (
	stderrors "errors"
	"testing"

	"github.com/teknology-hub/tek-game-runtime/errors"
	"github.com/teknology-hub/tek-game-runtime/image"
)

func TestPack(t *testing.T) {
	// 09.60.44.10 from Steamworks SDK v1.62
	info := image.FixedFileInfo{FileVersionMS: 0x0009003C, FileVersionLS: 0x002C000A}
	v := Pack(info)
	if v != 0x0009003C002C000A {
		t.Fatalf("Expected 0x0009003C002C000A, got %#016x", uint64(v))
	}

	major, minor, build, revision := v.Fields()
	if major != 9 || minor != 60 || build != 44 || revision != 10 {
		t.Fatalf("Wrong fields: %d.%d.%d.%d", major, minor, build, revision)
	}
	if v.String() != "09.60.44.10" {
		t.Fatalf("Expected 09.60.44.10, got %s", v.String())
	}
}

func TestPack_ComparesInReleaseOrder(t *testing.T) {
	older := Pack(image.FixedFileInfo{FileVersionMS: 0x0003002A, FileVersionLS: 0x003D0042})
	newer := Pack(image.FixedFileInfo{FileVersionMS: 0x0008003F, FileVersionLS: 0x000B0054})
	if !(older < newer) {
		t.Fatal("Expected plain unsigned comparison to match release order")
	}
}

func TestResolve(t *testing.T) {
	m := image.NewMemory("steam_api64.dll")

	_, err := Resolve(m)
	if err == nil {
		t.Fatal("Expected error for missing version resource")
	}
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseResolve, Kind: errors.KindVersionInfoUnavailable}) {
		t.Fatalf("Expected version_info_unavailable, got %v", err)
	}
	var e *errors.Error
	if !stderrors.As(err, &e) || e.Fatal() {
		t.Fatal("Resolver failure must be non-fatal")
	}

	m.SetVersionInfo(image.FixedFileInfo{FileVersionMS: 0x0006001C, FileVersionLS: 0x00120056})
	v, err := Resolve(m)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if v != 0x0006001C00120056 {
		t.Fatalf("Expected 0x0006001C00120056, got %#016x", uint64(v))
	}
}

func TestResolve_NilModule(t *testing.T) {
	if _, err := Resolve(nil); err == nil {
		t.Fatal("Expected error for nil module")
	}
}
