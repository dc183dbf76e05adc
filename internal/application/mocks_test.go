package application

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/powerboxizm12/stremio-au-addon/internal/channel"
	"github.com/powerboxizm12/stremio-au-addon/internal/port/driven"
	"github.com/powerboxizm12/stremio-au-addon/internal/region"
)

// mockPlaylistFetcher is a mock implementation of driven.PlaylistFetcher for testing.
type mockPlaylistFetcher struct {
	fetchFunc func(ctx context.Context, r region.Region) ([]channel.Record, error)
	calls     atomic.Int32
}

func (m *mockPlaylistFetcher) FetchChannels(ctx context.Context, r region.Region) ([]channel.Record, error) {
	m.calls.Add(1)
	if m.fetchFunc != nil {
		return m.fetchFunc(ctx, r)
	}
	return []channel.Record{}, nil
}

// fakeChannelCache is a map-backed driven.ChannelCache with a one hour window.
type fakeChannelCache struct {
	mu      sync.Mutex
	entries map[region.Region]driven.Snapshot
}

func newFakeChannelCache() *fakeChannelCache {
	return &fakeChannelCache{entries: make(map[region.Region]driven.Snapshot)}
}

func (c *fakeChannelCache) Get(r region.Region, now time.Time) ([]channel.Record, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[r]
	if !ok || now.Sub(e.FetchedAt) >= time.Hour {
		return nil, false
	}
	return e.Records, true
}

func (c *fakeChannelCache) Put(r region.Region, records []channel.Record, fetchedAt time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[r] = driven.Snapshot{Region: r, Records: records, FetchedAt: fetchedAt}
}

func (c *fakeChannelCache) FetchedAt(r region.Region) (time.Time, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[r]
	return e.FetchedAt, ok
}

func (c *fakeChannelCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *fakeChannelCache) entry(r region.Region) (driven.Snapshot, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[r]
	return e, ok
}

// mockSnapshotStore is a mock implementation of driven.SnapshotStore for testing.
type mockSnapshotStore struct {
	saveFunc    func(ctx context.Context, s driven.Snapshot) error
	loadAllFunc func(ctx context.Context) ([]driven.Snapshot, error)
	pingFunc    func(ctx context.Context) error
}

func (m *mockSnapshotStore) Save(ctx context.Context, s driven.Snapshot) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, s)
	}
	return nil
}

func (m *mockSnapshotStore) LoadAll(ctx context.Context) ([]driven.Snapshot, error) {
	if m.loadAllFunc != nil {
		return m.loadAllFunc(ctx)
	}
	return []driven.Snapshot{}, nil
}

func (m *mockSnapshotStore) Ping(ctx context.Context) error {
	if m.pingFunc != nil {
		return m.pingFunc(ctx)
	}
	return nil
}

// stubChannelLister returns fixed channel lists per region and counts calls.
type stubChannelLister struct {
	mu       sync.Mutex
	channels map[region.Region][]channel.Record
	calls    []region.Region
}

func (s *stubChannelLister) Channels(ctx context.Context, r region.Region) []channel.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, r)
	if records, ok := s.channels[r]; ok {
		return records
	}
	return []channel.Record{}
}

// testClock is a manually advanced clock.
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}
