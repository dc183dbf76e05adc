package driven

import (
	"slices"
	"sync"
	"time"

	"github.com/powerboxizm12/stremio-au-addon/internal/channel"
	"github.com/powerboxizm12/stremio-au-addon/internal/region"
)

// FreshnessWindow is how long a fetched channel list is served before it is re-fetched.
const FreshnessWindow = time.Hour

type cacheEntry struct {
	records   []channel.Record
	fetchedAt time.Time
}

// ChannelMemoryCache implements the ChannelCache port with an in-process map.
// Entries are never deleted; a stale entry stays until a Put replaces it.
type ChannelMemoryCache struct {
	mu      sync.RWMutex
	window  time.Duration
	entries map[region.Region]cacheEntry
}

// NewChannelMemoryCache creates an empty cache. A non-positive window selects FreshnessWindow.
func NewChannelMemoryCache(window time.Duration) *ChannelMemoryCache {
	if window <= 0 {
		window = FreshnessWindow
	}
	return &ChannelMemoryCache{
		window:  window,
		entries: make(map[region.Region]cacheEntry),
	}
}

// Get returns the region's records when its entry is younger than the window at now.
func (c *ChannelMemoryCache) Get(r region.Region, now time.Time) ([]channel.Record, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[r]
	if !ok || now.Sub(entry.fetchedAt) >= c.window {
		return nil, false
	}
	return slices.Clone(entry.records), true
}

// Put replaces the region's entry with records fetched at fetchedAt.
func (c *ChannelMemoryCache) Put(r region.Region, records []channel.Record, fetchedAt time.Time) {
	stored := slices.Clone(records)
	if stored == nil {
		stored = []channel.Record{}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[r] = cacheEntry{records: stored, fetchedAt: fetchedAt}
}

// Len returns the number of regions holding an entry.
func (c *ChannelMemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// FetchedAt returns when the region's entry was fetched. ok is false when there is no entry.
func (c *ChannelMemoryCache) FetchedAt(r region.Region) (time.Time, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[r]
	return entry.fetchedAt, ok
}
