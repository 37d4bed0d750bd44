package settings

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/teknology-hub/tek-game-runtime/errors"
)

// LoadType selects the settings loading method announced by the header.
type LoadType uint32

const (
	// LoadFilePath means the payload is a path to a settings file, or empty
	// for DefaultFileName in the current directory.
	LoadFilePath LoadType = iota

	// LoadInline means the payload is the settings JSON content itself.
	LoadInline
)

// header frames the settings channel: loading method plus payload size.
// Wire layout is two little-endian 32-bit words.
type header struct {
	Type LoadType
	Size uint32
}

// A LoadHook post-processes the parsed settings document for one title. It
// receives the raw JSON so titles can read fields the runtime does not know
// about.
type LoadHook func(s *Settings, doc json.RawMessage)

// A Field is one extra key appended to the persisted document by a SaveHook,
// in order.
type Field struct {
	Key   string
	Value any
}

// A SaveHook contributes title-specific fields to the persisted document.
type SaveHook func(s *Settings) []Field

// Load reads the framed header and payload from r, then parses the settings
// document named by them. File-path payloads remember their path so Save can
// persist; inline payloads never persist.
func Load(r io.Reader, hook LoadHook) (*Settings, error) {
	var hdr header
	if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
		return nil, errors.New(errors.PhaseConfig, errors.KindIO).
			Cause(err).Detail("reading settings header").Build()
	}
	payload := make([]byte, hdr.Size)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, errors.New(errors.PhaseConfig, errors.KindIO).
			Cause(err).Detail("reading settings payload").Build()
	}

	var data []byte
	var path string
	switch hdr.Type {
	case LoadFilePath:
		path = string(payload)
		if path == "" {
			path = DefaultFileName
		}
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, errors.New(errors.PhaseConfig, errors.KindIO).
				Cause(err).Detail("opening settings file %s", path).Build()
		}
	case LoadInline:
		data = payload
	default:
		return nil, errors.New(errors.PhaseConfig, errors.KindInvalidData).
			Detail("unknown load type %d in settings header", hdr.Type).Build()
	}

	s, err := Parse(data)
	if err != nil {
		return nil, err
	}
	s.filePath = path
	if hook != nil {
		hook(s, json.RawMessage(data))
	}
	Logger().Info("settings loaded",
		zap.String("path", path),
		zap.Uint32("app_id", s.Steam.AppID),
		zap.Int("dlc", len(s.Steam.DLC)))
	return s, nil
}

// Parse decodes a settings JSON document. Required fields are "store" and,
// for the steam store, "app_id"; everything else is optional and malformed
// optional entries are skipped rather than rejected.
func Parse(data []byte) (*Settings, error) {
	var doc struct {
		Store        *string           `json:"store"`
		AppID        *uint32           `json:"app_id"`
		SpoofAppID   uint32            `json:"spoof_app_id"`
		DLC          json.RawMessage   `json:"dlc"`
		InstalledDLC []json.RawMessage `json:"installed_dlc"`
		TekSCPath    string            `json:"tek_sc_path"`
		Extension    string            `json:"extension_path"`
		AutoUpdate   bool              `json:"auto_update_dlc"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.New(errors.PhaseConfig, errors.KindInvalidData).
			Cause(err).Detail("parsing settings JSON").Build()
	}
	if doc.Store == nil {
		return nil, errors.New(errors.PhaseConfig, errors.KindInvalidData).
			Detail(`"store" field not found or is not a string`).Build()
	}
	if StoreType(*doc.Store) != StoreSteam {
		return nil, errors.New(errors.PhaseConfig, errors.KindInvalidData).
			Detail("unknown store %q", *doc.Store).Build()
	}
	if doc.AppID == nil {
		return nil, errors.New(errors.PhaseConfig, errors.KindInvalidData).
			Detail(`"app_id" field not found or is not a number`).Build()
	}

	opts := &SteamOptions{
		AppID:         *doc.AppID,
		SpoofAppID:    doc.SpoofAppID,
		TekSCPath:     doc.TekSCPath,
		ExtensionPath: doc.Extension,
	}
	opts.DLC = parseDLCObject(doc.DLC)
	opts.InstalledDLC = make(map[uint32]struct{})
	if doc.InstalledDLC != nil {
		for _, raw := range doc.InstalledDLC {
			var id uint32
			if json.Unmarshal(raw, &id) == nil {
				opts.InstalledDLC[id] = struct{}{}
			}
		}
	} else {
		for _, entry := range opts.DLC {
			opts.InstalledDLC[entry.ID] = struct{}{}
		}
	}
	opts.AutoUpdateDLC = doc.AutoUpdate
	return &Settings{Store: StoreSteam, Steam: opts}, nil
}

// parseDLCObject decodes the "dlc" object preserving key order. Keys that do
// not parse as 32-bit ids and values that are not strings are skipped.
func parseDLCObject(raw json.RawMessage) []DLCEntry {
	if raw == nil {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil
	}
	var entries []DLCEntry
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return entries
		}
		key, _ := tok.(string)
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return entries
		}
		id, ok := parseDLCKey(key)
		if !ok {
			continue
		}
		var name string
		if json.Unmarshal(value, &name) != nil {
			continue
		}
		entries = append(entries, DLCEntry{ID: id, Name: name})
	}
	return entries
}

// Save persists the settings as pretty JSON to the path they were loaded
// from. Inline-loaded settings have no path and Save is a no-op. The spoof
// identity is only persisted when it differs from the title's own id.
func (s *Settings) Save(hook SaveHook) {
	s.mu.RLock()
	path := s.filePath
	if path == "" || s.Steam == nil {
		s.mu.RUnlock()
		return
	}
	fields := []Field{
		{Key: "store", Value: string(s.Store)},
		{Key: "app_id", Value: s.Steam.AppID},
	}
	if s.Steam.SpoofAppID != 0 && s.Steam.SpoofAppID != s.Steam.AppID {
		fields = append(fields, Field{Key: "spoof_app_id", Value: s.Steam.SpoofAppID})
	}
	if len(s.Steam.DLC) > 0 {
		fields = append(fields, Field{Key: "dlc", Value: dlcObject(s.Steam.DLC)})
	}
	if len(s.Steam.InstalledDLC) > 0 {
		fields = append(fields, Field{Key: "installed_dlc", Value: s.Steam.sortedInstalled()})
	}
	if s.Steam.TekSCPath != "" {
		fields = append(fields, Field{Key: "tek_sc_path", Value: s.Steam.TekSCPath})
	}
	if s.Steam.ExtensionPath != "" {
		fields = append(fields, Field{Key: "extension_path", Value: s.Steam.ExtensionPath})
	}
	fields = append(fields, Field{Key: "auto_update_dlc", Value: s.Steam.AutoUpdateDLC})
	s.mu.RUnlock()

	if hook != nil {
		fields = append(fields, hook(s)...)
	}
	data, err := json.MarshalIndent(object(fields), "", "  ")
	if err != nil {
		Logger().Warn("settings encoding failed", zap.Error(err))
		return
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		Logger().Warn("settings save failed", zap.String("path", path), zap.Error(err))
		return
	}
	Logger().Debug("settings saved", zap.String("path", path))
}

// object is an ordered JSON object: fields marshal in slice order, unlike a
// Go map.
type object []Field

func (o object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		value, err := json.Marshal(f.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// dlcObject renders the owned DLC list as an ordered id→name object.
func dlcObject(entries []DLCEntry) object {
	fields := make(object, 0, len(entries))
	for _, entry := range entries {
		fields = append(fields, Field{Key: formatDLCKey(entry.ID), Value: entry.Name})
	}
	return fields
}
