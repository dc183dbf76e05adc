package driven

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.etcd.io/bbolt"

	"github.com/powerboxizm12/stremio-au-addon/internal/channel"
	"github.com/powerboxizm12/stremio-au-addon/internal/port/driven"
	"github.com/powerboxizm12/stremio-au-addon/internal/region"
	"github.com/powerboxizm12/stremio-au-addon/metrics"
)

const (
	snapshotsBucket = "snapshots"
)

// SnapshotBoltDBStore implements the SnapshotStore port using BoltDB.
// Each region is stored under its own key as a JSON document.
type SnapshotBoltDBStore struct {
	db     *bbolt.DB
	logger zerolog.Logger
}

// NewSnapshotBoltDBStore creates a new BoltDB-backed snapshot store.
// It initializes the required bucket if it doesn't exist.
func NewSnapshotBoltDBStore(db *bbolt.DB, logger zerolog.Logger) (*SnapshotBoltDBStore, error) {
	if db == nil {
		return nil, errors.New("db cannot be nil")
	}

	err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(snapshotsBucket))
		return err
	})
	if err != nil {
		return nil, err
	}

	return &SnapshotBoltDBStore{db: db, logger: logger}, nil
}

// snapshotDTO is used for JSON serialization.
type snapshotDTO struct {
	Region    string      `json:"region"`
	FetchedAt string      `json:"fetched_at"`
	Channels  []recordDTO `json:"channels"`
}

// recordDTO is used for JSON serialization of a channel record.
type recordDTO struct {
	Name      string `json:"name"`
	Logo      string `json:"logo,omitempty"`
	StreamURL string `json:"stream_url"`
}

func snapshotToDTO(s driven.Snapshot) snapshotDTO {
	dto := snapshotDTO{
		Region:    string(s.Region),
		FetchedAt: s.FetchedAt.UTC().Format(time.RFC3339Nano),
		Channels:  make([]recordDTO, 0, len(s.Records)),
	}
	for _, r := range s.Records {
		dto.Channels = append(dto.Channels, recordDTO{
			Name:      r.Name(),
			Logo:      r.Logo(),
			StreamURL: r.StreamURL(),
		})
	}
	return dto
}

func decodeSnapshot(data []byte) (driven.Snapshot, error) {
	var dto snapshotDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return driven.Snapshot{}, fmt.Errorf("decoding snapshot: %w", err)
	}
	return dtoToSnapshot(dto)
}

func dtoToSnapshot(dto snapshotDTO) (driven.Snapshot, error) {
	r, err := region.Parse(dto.Region)
	if err != nil {
		return driven.Snapshot{}, fmt.Errorf("snapshot region %q: %w", dto.Region, err)
	}

	fetchedAt, err := time.Parse(time.RFC3339Nano, dto.FetchedAt)
	if err != nil {
		return driven.Snapshot{}, err
	}

	records := make([]channel.Record, 0, len(dto.Channels))
	for _, c := range dto.Channels {
		rec, err := channel.NewRecord(c.Name, c.Logo, c.StreamURL)
		if err != nil {
			return driven.Snapshot{}, fmt.Errorf("snapshot %s channel %q: %w", dto.Region, c.Name, err)
		}
		records = append(records, rec)
	}

	return driven.Snapshot{Region: r, Records: records, FetchedAt: fetchedAt}, nil
}

// Save persists a snapshot to BoltDB, replacing any previous one for the region.
func (s *SnapshotBoltDBStore) Save(ctx context.Context, snap driven.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(snapshotToDTO(snap))
	if err != nil {
		return err
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(snapshotsBucket))
		if bucket == nil {
			return errors.New("snapshots bucket not found")
		}
		return bucket.Put([]byte(snap.Region), data)
	})
}

// LoadAll retrieves all snapshots from BoltDB. Entries that cannot be
// decoded, or that belong to an unknown region, are logged, counted and
// skipped so the remaining regions still restore.
func (s *SnapshotBoltDBStore) LoadAll(ctx context.Context) ([]driven.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var snapshots []driven.Snapshot

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(snapshotsBucket))
		if bucket == nil {
			return errors.New("snapshots bucket not found")
		}

		return bucket.ForEach(func(k, v []byte) error {
			snap, err := decodeSnapshot(v)
			if err != nil {
				metrics.RecordSnapshotError("decode")
				s.logger.Warn().Err(err).Str("key", string(k)).Msg("skipping unreadable snapshot")
				return nil
			}

			snapshots = append(snapshots, snap)
			return nil
		})
	})

	if err != nil {
		return nil, err
	}

	if snapshots == nil {
		snapshots = []driven.Snapshot{}
	}

	return snapshots, nil
}

// Ping checks if the BoltDB database is accessible and operational.
func (s *SnapshotBoltDBStore) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.db.View(func(tx *bbolt.Tx) error {
		if tx.Bucket([]byte(snapshotsBucket)) == nil {
			return errors.New("snapshots bucket not found")
		}
		return nil
	})
}
