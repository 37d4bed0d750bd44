package steamclient

import (
	"context"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/teknology-hub/tek-game-runtime/settings"
)

// UpdateDLC refreshes the settings' DLC list from a CM endpoint: discover
// the title's DLC ids from its appinfo, fetch names for ids the settings do
// not know yet, append them to the owned and installed sets, and persist
// through saveFn.
//
// The whole flow is bounded by OverallTimeout; any failure degrades
// silently, leaving the settings as they were. The returned error is
// informational.
func UpdateDLC(ctx context.Context, endpoint string, s *settings.Settings, saveFn func()) error {
	ctx, cancel := context.WithTimeout(ctx, OverallTimeout)
	defer cancel()

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		return refresh(ctx, endpoint, s, saveFn)
	})
	if err := group.Wait(); err != nil {
		Logger().Warn("DLC refresh abandoned", zap.Error(err))
		return err
	}
	return nil
}

func refresh(ctx context.Context, endpoint string, s *settings.Settings, saveFn func()) error {
	s.RLock()
	appID := s.Steam.AppID
	s.RUnlock()

	client, err := Dial(ctx, endpoint)
	if err != nil {
		return err
	}
	defer client.Close()

	if err := client.SignInAnon(ctx); err != nil {
		return err
	}
	if err := client.GetAccessTokens(ctx, []uint32{appID}); err != nil {
		return err
	}
	entries, err := client.GetProductInfo(ctx, []uint32{appID})
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return nil
	}

	newIDs := discoverDLC(entries[0].Data, s)
	if len(newIDs) == 0 {
		return nil
	}
	if err := client.GetAccessTokens(ctx, newIDs); err != nil {
		return err
	}
	dlcEntries, err := client.GetProductInfo(ctx, newIDs)
	if err != nil {
		return err
	}

	var added int
	s.Lock()
	for _, entry := range dlcEntries {
		vdf, err := ParseVDF([]byte(entry.Data))
		if err != nil {
			continue
		}
		name, ok := vdf.Attrib("common", "name")
		if !ok {
			continue
		}
		s.Steam.DLC = append(s.Steam.DLC, settings.DLCEntry{ID: entry.ID, Name: name})
		s.Steam.InstalledDLC[entry.ID] = struct{}{}
		added++
	}
	s.Unlock()

	if added > 0 {
		Logger().Info("DLC list refreshed", zap.Int("added", added))
		if saveFn != nil {
			saveFn()
		}
	}
	return nil
}

// discoverDLC reads the comma-separated DLC id list from the title's
// appinfo and filters out ids the settings already own.
func discoverDLC(appinfo string, s *settings.Settings) []uint32 {
	vdf, err := ParseVDF([]byte(appinfo))
	if err != nil {
		return nil
	}
	list, ok := vdf.Attrib("extended", "listofdlc")
	if !ok {
		return nil
	}

	s.RLock()
	known := make(map[uint32]bool, len(s.Steam.DLC))
	for _, entry := range s.Steam.DLC {
		known[entry.ID] = true
	}
	s.RUnlock()

	var ids []uint32
	for _, field := range strings.Split(list, ",") {
		id, err := strconv.ParseUint(strings.TrimSpace(field), 10, 32)
		if err != nil || known[uint32(id)] {
			continue
		}
		ids = append(ids, uint32(id))
	}
	return ids
}
