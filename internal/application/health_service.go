package application

import (
	"context"
	"time"

	"github.com/powerboxizm12/stremio-au-addon/internal/port/driven"
	"github.com/powerboxizm12/stremio-au-addon/internal/region"
)

// HealthService orchestrates health checks for the application and its dependencies.
type HealthService struct {
	snapshots driven.SnapshotStore
	cache     driven.ChannelCache
	now       func() time.Time
}

// NewHealthService creates a new health check service. snapshots may be nil
// when persistence is disabled; a nil now uses time.Now.
func NewHealthService(snapshots driven.SnapshotStore, cache driven.ChannelCache, now func() time.Time) *HealthService {
	if now == nil {
		now = time.Now
	}
	return &HealthService{
		snapshots: snapshots,
		cache:     cache,
		now:       now,
	}
}

// ComponentHealth represents the health status of a single component.
type ComponentHealth struct {
	Status string // "ok", "error" or "disabled"
	Error  string // empty unless status is "error"
}

// RegionHealth describes the cache entry of one region.
type RegionHealth struct {
	Region    region.Region
	FetchedAt time.Time
	Fresh     bool // false once the entry is older than the freshness window
}

// HealthStatus represents the overall health status of the application.
type HealthStatus struct {
	Status        string          // "ok" if all components are healthy, "degraded" otherwise
	SnapshotStore ComponentHealth // snapshot persistence health
	CachedRegions int             // regions holding a cache entry, fresh or stale
	Regions       []RegionHealth  // cached regions in display order
}

// Check performs health checks on all dependencies.
// The upstream playlist source is not probed; fetch failures surface in metrics.
func (s *HealthService) Check(ctx context.Context) HealthStatus {
	status := HealthStatus{
		Status:        "ok",
		CachedRegions: s.cache.Len(),
		Regions:       s.regions(),
	}

	if s.snapshots == nil {
		status.SnapshotStore = ComponentHealth{Status: "disabled"}
		return status
	}

	if err := s.snapshots.Ping(ctx); err != nil {
		status.SnapshotStore = ComponentHealth{
			Status: "error",
			Error:  err.Error(),
		}
		status.Status = "degraded"
	} else {
		status.SnapshotStore = ComponentHealth{
			Status: "ok",
		}
	}

	return status
}

func (s *HealthService) regions() []RegionHealth {
	now := s.now()
	out := []RegionHealth{}
	for _, r := range region.All() {
		fetchedAt, ok := s.cache.FetchedAt(r)
		if !ok {
			continue
		}
		_, fresh := s.cache.Get(r, now)
		out = append(out, RegionHealth{Region: r, FetchedAt: fetchedAt, Fresh: fresh})
	}
	return out
}
