package driven

import (
	"context"
	"time"

	"github.com/powerboxizm12/stremio-au-addon/internal/channel"
	"github.com/powerboxizm12/stremio-au-addon/internal/region"
)

// SnapshotStore defines the interface for persisting cache entries across restarts.
// This is a driven port that will be implemented by concrete adapters (e.g., BoltDB).
type SnapshotStore interface {
	// Save replaces the stored snapshot of s.Region.
	Save(ctx context.Context, s Snapshot) error

	// LoadAll retrieves every readable stored snapshot.
	LoadAll(ctx context.Context) ([]Snapshot, error)

	// Ping checks if the store is accessible and operational.
	Ping(ctx context.Context) error
}

// Snapshot is a persisted cache entry.
type Snapshot struct {
	Region    region.Region
	Records   []channel.Record
	FetchedAt time.Time
}
