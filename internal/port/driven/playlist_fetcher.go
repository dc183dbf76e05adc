package driven

import (
	"context"
	"fmt"

	"github.com/powerboxizm12/stremio-au-addon/internal/channel"
	"github.com/powerboxizm12/stremio-au-addon/internal/region"
)

// PlaylistFetcher defines the interface for retrieving a region's channel playlist.
// This is a driven port that will be implemented by concrete adapters (e.g., HTTP client).
type PlaylistFetcher interface {
	// FetchChannels retrieves and parses the playlist of the given region.
	// Records are returned in document order. Transport failures and non-success
	// responses are reported as *FetchError.
	FetchChannels(ctx context.Context, r region.Region) ([]channel.Record, error)
}

// FetchError reports a failed playlist retrieval.
type FetchError struct {
	Region     region.Region
	URL        string
	StatusCode int // 0 when no response was received
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetching %s playlist from %s: unexpected HTTP status %d: %v", e.Region, e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("fetching %s playlist from %s: %v", e.Region, e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
