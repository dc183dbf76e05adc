package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CacheLookups tracks channel cache lookups per region and result (hit or miss)
	CacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "autv_cache_lookups_total",
		Help: "Total number of channel cache lookups",
	}, []string{"region", "result"})

	// PlaylistFetches tracks upstream playlist fetches per region and result (success or error)
	PlaylistFetches = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "autv_playlist_fetches_total",
		Help: "Total number of upstream playlist fetches",
	}, []string{"region", "result"})

	// PlaylistFetchDuration tracks how long upstream playlist fetches take
	PlaylistFetchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "autv_playlist_fetch_duration_seconds",
		Help:    "Duration of upstream playlist fetches",
		Buckets: prometheus.DefBuckets,
	}, []string{"region"})

	// Channels tracks the number of channels in the latest successful fetch per region
	Channels = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "autv_channels",
		Help: "Number of channels in the latest playlist per region",
	}, []string{"region"})

	// SnapshotErrors tracks snapshot store failures by operation
	SnapshotErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "autv_snapshot_errors_total",
		Help: "Total number of snapshot store errors",
	}, []string{"operation"})

	// HTTPRequests tracks served add-on requests by route pattern and status code
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "autv_http_requests_total",
		Help: "Total number of HTTP requests served",
	}, []string{"route", "status"})
)

// RecordCacheLookup increments the lookup counter for a region
func RecordCacheLookup(region string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	CacheLookups.WithLabelValues(region, result).Inc()
}

// RecordPlaylistFetch records the outcome and duration of one upstream fetch
func RecordPlaylistFetch(region string, elapsed time.Duration, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	PlaylistFetches.WithLabelValues(region, result).Inc()
	PlaylistFetchDuration.WithLabelValues(region).Observe(elapsed.Seconds())
}

// SetChannels sets the channel count for a region
func SetChannels(region string, count int) {
	Channels.WithLabelValues(region).Set(float64(count))
}

// RecordSnapshotError increments the snapshot error counter for an operation ("save" or "load")
func RecordSnapshotError(operation string) {
	SnapshotErrors.WithLabelValues(operation).Inc()
}

// RecordHTTPRequest increments the request counter for a route pattern and status code
func RecordHTTPRequest(route string, status int) {
	HTTPRequests.WithLabelValues(route, strconv.Itoa(status)).Inc()
}
