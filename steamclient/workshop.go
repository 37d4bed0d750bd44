package steamclient

import (
	"context"
	"sort"
	"sync"

	"go.uber.org/zap"
)

// ItemStatus is a workshop item's state bit set.
type ItemStatus uint32

const (
	// StatusInstalled means the item's files are present on disk.
	StatusInstalled ItemStatus = 1 << iota

	// StatusJob means an installation job currently owns the item.
	StatusJob

	// StatusFailed means the last job for the item did not complete.
	StatusFailed
)

// ItemID addresses one workshop item: the title's app id doubles as the
// depot id for workshop content.
type ItemID struct {
	AppID  uint32
	ItemID uint64
}

// ItemDesc is the live descriptor of a workshop item and its job progress.
// Fields are guarded by the owning Manager's lock; JobUpdateFunc callers
// receive a snapshot.
type ItemDesc struct {
	ID           uint64
	Status       ItemStatus
	CurrentBytes int64
	TotalBytes   int64
}

// JobUpdateFunc receives descriptor snapshots as an installation job makes
// progress.
type JobUpdateFunc func(desc ItemDesc)

// JobRunner performs the actual download and install of one item,
// reporting progress through the callback. It is the binding to whatever
// content delivery backend is available.
type JobRunner func(ctx context.Context, item ItemID, progress func(current, total int64)) error

// Manager tracks workshop items and their installation jobs for one title.
type Manager struct {
	appID  uint32
	runner JobRunner

	mu    sync.Mutex
	items map[uint64]*ItemDesc
}

// NewManager creates a workshop manager. A nil runner means no content
// delivery backend is available and installs are rejected.
func NewManager(appID uint32, runner JobRunner) *Manager {
	return &Manager{
		appID:  appID,
		runner: runner,
		items:  make(map[uint64]*ItemDesc),
	}
}

// Item returns a snapshot of an item's descriptor.
func (m *Manager) Item(id uint64) (ItemDesc, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	desc, ok := m.items[id]
	if !ok {
		return ItemDesc{}, false
	}
	return *desc, true
}

// Pending returns the ids of items that currently have a running job, in
// ascending order.
func (m *Manager) Pending() []uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	var ids []uint64
	for id, desc := range m.items {
		if desc.Status&StatusJob != 0 {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// InstallItem starts an installation job for the item and returns
// immediately; progress is reported through upd. Returns false when no
// backend is available. An item that already has a running job is not
// restarted.
func (m *Manager) InstallItem(ctx context.Context, id uint64, upd JobUpdateFunc) bool {
	if m.runner == nil {
		return false
	}
	m.mu.Lock()
	desc, ok := m.items[id]
	if ok && desc.Status&StatusJob != 0 {
		m.mu.Unlock()
		return true
	}
	if !ok {
		desc = &ItemDesc{ID: id}
		m.items[id] = desc
	}
	desc.Status = StatusJob
	m.mu.Unlock()

	go m.runJob(ctx, ItemID{AppID: m.appID, ItemID: id}, desc, upd)
	return true
}

func (m *Manager) runJob(ctx context.Context, item ItemID, desc *ItemDesc, upd JobUpdateFunc) {
	notify := func() {
		if upd != nil {
			m.mu.Lock()
			snapshot := *desc
			m.mu.Unlock()
			upd(snapshot)
		}
	}
	err := m.runner(ctx, item, func(current, total int64) {
		m.mu.Lock()
		desc.CurrentBytes = current
		desc.TotalBytes = total
		m.mu.Unlock()
		notify()
	})

	m.mu.Lock()
	if err != nil {
		desc.Status = StatusFailed
	} else {
		desc.Status = StatusInstalled
	}
	m.mu.Unlock()
	if err != nil {
		Logger().Warn("workshop item job failed",
			zap.Uint64("item", item.ItemID), zap.Error(err))
	}
	notify()
}
