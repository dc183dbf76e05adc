package application

import (
	"context"
	"errors"
	"slices"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/powerboxizm12/stremio-au-addon/internal/channel"
	"github.com/powerboxizm12/stremio-au-addon/internal/port/driven"
	"github.com/powerboxizm12/stremio-au-addon/internal/region"
	"github.com/powerboxizm12/stremio-au-addon/logging"
	"github.com/powerboxizm12/stremio-au-addon/metrics"
)

// ChannelService serves regional channel lists from the cache, fetching a
// region's playlist on a miss. It never fails: fetch errors are logged and
// reported to callers as an empty list.
type ChannelService struct {
	fetcher   driven.PlaylistFetcher
	cache     driven.ChannelCache
	snapshots driven.SnapshotStore
	logger    zerolog.Logger
	now       func() time.Time
	group     singleflight.Group
}

// NewChannelService creates a new ChannelService.
// snapshots may be nil to disable persistence; a nil now uses time.Now.
func NewChannelService(
	fetcher driven.PlaylistFetcher,
	cache driven.ChannelCache,
	snapshots driven.SnapshotStore,
	logger zerolog.Logger,
	now func() time.Time,
) *ChannelService {
	if now == nil {
		now = time.Now
	}
	return &ChannelService{
		fetcher:   fetcher,
		cache:     cache,
		snapshots: snapshots,
		logger:    logging.WithComponent(logger, "channel_service"),
		now:       now,
	}
}

// Channels returns the channel list of a region. An empty region selects
// region.Default. Concurrent misses for the same region share one fetch.
func (s *ChannelService) Channels(ctx context.Context, r region.Region) []channel.Record {
	if r == "" {
		r = region.Default
	}
	if !r.Valid() {
		s.logger.Warn().Str(logging.FieldRegion, string(r)).Msg("channels requested for unknown region")
		return []channel.Record{}
	}

	if records, ok := s.cache.Get(r, s.now()); ok {
		metrics.RecordCacheLookup(string(r), true)
		return records
	}
	metrics.RecordCacheLookup(string(r), false)

	// Fetches run to completion even if the request that started them goes away.
	fetchCtx := context.WithoutCancel(ctx)
	v, err, _ := s.group.Do(string(r), func() (any, error) {
		return s.refresh(fetchCtx, r)
	})
	if err != nil {
		event := s.logger.Error().Err(err).Str(logging.FieldRegion, string(r))
		var fetchErr *driven.FetchError
		if errors.As(err, &fetchErr) {
			event = event.Str(logging.FieldURL, fetchErr.URL).Int(logging.FieldStatus, fetchErr.StatusCode)
		}
		event.Msg("failed to fetch channels")
		return []channel.Record{}
	}

	return slices.Clone(v.([]channel.Record))
}

// refresh fetches a region's playlist and replaces its cache entry.
func (s *ChannelService) refresh(ctx context.Context, r region.Region) ([]channel.Record, error) {
	start := time.Now()
	records, err := s.fetcher.FetchChannels(ctx, r)
	metrics.RecordPlaylistFetch(string(r), time.Since(start), err)
	if err != nil {
		return nil, err
	}

	fetchedAt := s.now()
	s.cache.Put(r, records, fetchedAt)
	metrics.SetChannels(string(r), len(records))

	s.logger.Info().
		Str(logging.FieldRegion, string(r)).
		Int("channels", len(records)).
		Msg("channel list refreshed")

	if s.snapshots != nil {
		snap := driven.Snapshot{Region: r, Records: records, FetchedAt: fetchedAt}
		if err := s.snapshots.Save(ctx, snap); err != nil {
			metrics.RecordSnapshotError("save")
			s.logger.Warn().Err(err).Str(logging.FieldRegion, string(r)).Msg("failed to save snapshot")
		}
	}

	return records, nil
}

// Restore loads persisted snapshots into the cache, keeping their original
// fetch times so the freshness window continues across restarts.
// It returns the number of regions restored.
func (s *ChannelService) Restore(ctx context.Context) (int, error) {
	if s.snapshots == nil {
		return 0, nil
	}

	snaps, err := s.snapshots.LoadAll(ctx)
	if err != nil {
		metrics.RecordSnapshotError("load")
		return 0, err
	}

	for _, snap := range snaps {
		s.cache.Put(snap.Region, snap.Records, snap.FetchedAt)
		metrics.SetChannels(string(snap.Region), len(snap.Records))
	}

	return len(snaps), nil
}
