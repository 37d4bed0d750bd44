package settings

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/teknology-hub/tek-game-runtime/errors"
)

const sampleDoc = `{
  "store": "steam",
  "app_id": 346110,
  "spoof_app_id": 480,
  "dlc": {
    "473850": "The Center - ARK Expansion Map",
    "512540": "Scorched Earth - ARK Expansion Pack",
    "bogus": "skipped",
    "708770": "Aberration - ARK Expansion Pack"
  },
  "installed_dlc": [473850, "nope", 708770],
  "tek_sc_path": "C:\\tek\\libtek-steamclient-1.dll",
  "extension_path": "extensions/ark.wasm",
  "auto_update_dlc": true
}`

func frame(t *testing.T, loadType LoadType, payload string) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	if err := binary.Write(&buf, binary.LittleEndian, header{Type: loadType, Size: uint32(len(payload))}); err != nil {
		t.Fatal(err)
	}
	buf.WriteString(payload)
	return &buf
}

func TestParse(t *testing.T) {
	s, err := Parse([]byte(sampleDoc))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if s.Store != StoreSteam {
		t.Fatalf("store = %q", s.Store)
	}
	if s.Steam.AppID != 346110 || s.Steam.SpoofAppID != 480 {
		t.Fatalf("identity = %d/%d", s.Steam.AppID, s.Steam.SpoofAppID)
	}
	// Malformed keys are skipped; order of the rest is preserved.
	want := []DLCEntry{
		{473850, "The Center - ARK Expansion Map"},
		{512540, "Scorched Earth - ARK Expansion Pack"},
		{708770, "Aberration - ARK Expansion Pack"},
	}
	if len(s.Steam.DLC) != len(want) {
		t.Fatalf("dlc count = %d", len(s.Steam.DLC))
	}
	for i, entry := range want {
		if s.Steam.DLC[i] != entry {
			t.Fatalf("dlc[%d] = %+v, want %+v", i, s.Steam.DLC[i], entry)
		}
	}
	// Non-number array elements are skipped too.
	if !s.DLCInstalled(473850) || !s.DLCInstalled(708770) || s.DLCInstalled(512540) {
		t.Fatal("installed set mismatch")
	}
	if !s.Steam.AutoUpdateDLC || s.Steam.TekSCPath == "" {
		t.Fatal("optional fields not decoded")
	}
	if s.Steam.ExtensionPath != "extensions/ark.wasm" {
		t.Fatalf("extension_path = %q", s.Steam.ExtensionPath)
	}
}

func TestParse_InstalledDefaultsToOwned(t *testing.T) {
	s, err := Parse([]byte(`{"store":"steam","app_id":10,"dlc":{"20":"a","30":"b"}}`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if !s.DLCInstalled(20) || !s.DLCInstalled(30) {
		t.Fatal("installed set must default to owned ids")
	}
}

func TestParse_Rejections(t *testing.T) {
	for _, doc := range []string{
		`[]`,
		`{"app_id":10}`,
		`{"store":"epic","app_id":10}`,
		`{"store":"steam"}`,
	} {
		_, err := Parse([]byte(doc))
		if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseConfig, Kind: errors.KindInvalidData}) {
			t.Fatalf("Parse(%s): expected invalid-data, got %v", doc, err)
		}
	}
}

func TestLoad_Inline(t *testing.T) {
	s, err := Load(frame(t, LoadInline, sampleDoc), nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.FilePath() != "" {
		t.Fatal("inline settings must not have a persistence path")
	}
	// Inline mode never persists; Save is a no-op.
	s.Save(nil)
}

func TestLoad_FilePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte(sampleDoc), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := Load(frame(t, LoadFilePath, path), nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.FilePath() != path {
		t.Fatalf("path = %q", s.FilePath())
	}
	if s.Steam.AppID != 346110 {
		t.Fatalf("app_id = %d", s.Steam.AppID)
	}
}

func TestLoad_UnknownType(t *testing.T) {
	_, err := Load(frame(t, LoadType(9), ""), nil)
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseConfig, Kind: errors.KindInvalidData}) {
		t.Fatalf("expected invalid-data, got %v", err)
	}
}

func TestLoad_Hook(t *testing.T) {
	var sawExtra bool
	hook := func(s *Settings, doc json.RawMessage) {
		var fields struct {
			Extra string `json:"extra"`
		}
		if json.Unmarshal(doc, &fields) == nil && fields.Extra == "keep" {
			sawExtra = true
		}
	}
	_, err := Load(frame(t, LoadInline, `{"store":"steam","app_id":10,"extra":"keep"}`), hook)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !sawExtra {
		t.Fatal("load hook did not see the raw document")
	}
}

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte(sampleDoc), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := Load(frame(t, LoadFilePath, path), nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	s.SetEffectiveAppID(480)
	s.Save(func(s *Settings) []Field {
		return []Field{{Key: "title_flag", Value: true}}
	})

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	reloaded, err := Parse(data)
	if err != nil {
		t.Fatalf("reparsing saved settings: %v", err)
	}
	if reloaded.Steam.SpoofAppID != 480 {
		t.Fatalf("spoof_app_id = %d", reloaded.Steam.SpoofAppID)
	}
	if len(reloaded.Steam.DLC) != 3 || reloaded.Steam.DLC[0].ID != 473850 {
		t.Fatal("dlc list did not survive the round trip")
	}
	if !strings.Contains(string(data), `"title_flag": true`) {
		t.Fatal("save hook fields missing from the document")
	}
	if reloaded.Steam.ExtensionPath != "extensions/ark.wasm" {
		t.Fatal("extension path did not survive the round trip")
	}
	// Field order is part of the format.
	text := string(data)
	if strings.Index(text, `"store"`) > strings.Index(text, `"app_id"`) {
		t.Fatal("store must precede app_id")
	}
}

func TestSave_OmitsRedundantSpoof(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte(`{"store":"steam","app_id":480}`), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := Load(frame(t, LoadFilePath, path), nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	s.SetEffectiveAppID(480)
	s.Save(nil)
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "spoof_app_id") {
		t.Fatal("spoof identity equal to app_id must not persist")
	}
}

func TestEffectiveAppID(t *testing.T) {
	s, _ := Parse([]byte(`{"store":"steam","app_id":346110}`))
	if got := s.EffectiveAppID(); got != 346110 {
		t.Fatalf("EffectiveAppID = %d", got)
	}
	s.SetEffectiveAppID(480)
	if got := s.EffectiveAppID(); got != 480 {
		t.Fatalf("EffectiveAppID after write-back = %d", got)
	}
}

func TestReplaceDLC(t *testing.T) {
	s, _ := Parse([]byte(`{"store":"steam","app_id":10,"dlc":{"20":"a"},"installed_dlc":[]}`))
	s.ReplaceDLC([]DLCEntry{{20, "a"}, {40, "b"}})
	if s.DLCCount() != 2 {
		t.Fatalf("count = %d", s.DLCCount())
	}
	if !s.DLCInstalled(40) {
		t.Fatal("refresh must reset the installed set to the new list")
	}
	if entry, ok := s.DLCByIndex(1); !ok || entry.ID != 40 {
		t.Fatal("enumeration order lost")
	}
}
