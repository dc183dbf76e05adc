package driven

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/powerboxizm12/stremio-au-addon/internal/channel"
	"github.com/powerboxizm12/stremio-au-addon/internal/m3u"
	"github.com/powerboxizm12/stremio-au-addon/internal/port/driven"
	"github.com/powerboxizm12/stremio-au-addon/internal/region"
	"github.com/powerboxizm12/stremio-au-addon/logging"
)

const (
	defaultTimeout      = 30 * time.Second
	defaultBaseURL      = "https://i.mjh.nz/au"
	defaultPlaylistFile = "raw-tv.m3u8"
)

// PlaylistHTTPFetcher fetches regional M3U playlists via HTTP.
// It implements the driven.PlaylistFetcher port.
type PlaylistHTTPFetcher struct {
	baseURL  string
	fileName string
	client   *http.Client
	logger   zerolog.Logger
}

// NewPlaylistHTTPFetcher creates a new playlist fetcher.
// Empty baseURL or fileName select the default playlist source.
// If client is nil, it creates a default HTTP client with a 30-second timeout.
func NewPlaylistHTTPFetcher(baseURL, fileName string, client *http.Client, logger zerolog.Logger) *PlaylistHTTPFetcher {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if fileName == "" {
		fileName = defaultPlaylistFile
	}
	if client == nil {
		client = &http.Client{
			Timeout: defaultTimeout,
		}
	}
	return &PlaylistHTTPFetcher{
		baseURL:  strings.TrimRight(baseURL, "/"),
		fileName: fileName,
		client:   client,
		logger:   logger,
	}
}

// URL returns the playlist location of a region: {base}/{region}/{file}.
func (f *PlaylistHTTPFetcher) URL(r region.Region) string {
	return f.baseURL + "/" + url.PathEscape(string(r)) + "/" + f.fileName
}

// FetchChannels retrieves the region's playlist and parses it into records.
// Returns *driven.FetchError if the request fails or the status is not 2xx.
func (f *PlaylistHTTPFetcher) FetchChannels(ctx context.Context, r region.Region) ([]channel.Record, error) {
	playlistURL := f.URL(r)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, playlistURL, nil)
	if err != nil {
		return nil, &driven.FetchError{Region: r, URL: playlistURL, Err: fmt.Errorf("creating HTTP request: %w", err)}
	}

	start := time.Now()
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &driven.FetchError{Region: r, URL: playlistURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &driven.FetchError{
			Region:     r,
			URL:        playlistURL,
			StatusCode: resp.StatusCode,
			Err:        errors.New(resp.Status),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &driven.FetchError{Region: r, URL: playlistURL, StatusCode: resp.StatusCode, Err: fmt.Errorf("reading response body: %w", err)}
	}

	records := m3u.Parse(string(body))

	f.logger.Debug().
		Str(logging.FieldRegion, string(r)).
		Str(logging.FieldURL, playlistURL).
		Int("bytes", len(body)).
		Int("channels", len(records)).
		Dur("elapsed", time.Since(start)).
		Msg("playlist fetched")

	return records, nil
}
