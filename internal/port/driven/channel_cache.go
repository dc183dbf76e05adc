package driven

import (
	"time"

	"github.com/powerboxizm12/stremio-au-addon/internal/channel"
	"github.com/powerboxizm12/stremio-au-addon/internal/region"
)

// ChannelCache defines the interface for the per-region channel list cache.
// Implementations own the freshness window and must be safe for concurrent use.
type ChannelCache interface {
	// Get returns the cached records of a region and true when an entry exists
	// and is still fresh at now. A stale or missing entry reports false.
	Get(r region.Region, now time.Time) ([]channel.Record, bool)

	// Put replaces the region's entry wholesale with records fetched at fetchedAt.
	Put(r region.Region, records []channel.Record, fetchedAt time.Time)

	// FetchedAt returns when the region's entry was fetched, fresh or stale.
	// ok is false when the region has no entry.
	FetchedAt(r region.Region) (fetchedAt time.Time, ok bool)

	// Len returns the number of regions holding an entry, fresh or stale.
	Len() int
}
