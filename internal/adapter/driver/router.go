package driver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/powerboxizm12/stremio-au-addon/internal/application"
	"github.com/powerboxizm12/stremio-au-addon/logging"
)

// RouterConfig holds the services and settings the HTTP surface is built from.
type RouterConfig struct {
	Catalog  *application.CatalogService
	Playlist *application.PlaylistService
	Health   *application.HealthService
	Logger   zerolog.Logger

	// RateLimitRequests per client IP within RateLimitWindow; zero disables limiting.
	RateLimitRequests int
	RateLimitWindow   time.Duration
}

// NewRouter builds the add-on HTTP handler.
//
// Add-on resources are served both at the root and below a configuration
// segment, so clients can install the add-on with a preselected region:
//
//	/manifest.json
//	/{config}/catalog/tv/au-tv-catalog.json
//	/{config}/stream/tv/au-tv-Sydney:7.json
func NewRouter(cfg RouterConfig) http.Handler {
	manifest := NewManifestHTTPHandler()
	catalogHandler := NewCatalogHTTPHandler(cfg.Catalog)
	streamHandler := NewStreamHTTPHandler(cfg.Catalog)

	r := chi.NewRouter()
	r.Use(logging.Middleware(logging.WithComponent(cfg.Logger, "http")))
	r.Use(instrument)
	r.Use(cors)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	r.Method(http.MethodGet, "/health", NewHealthHTTPHandler(cfg.Health))
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		if cfg.RateLimitRequests > 0 && cfg.RateLimitWindow > 0 {
			r.Use(rateLimit(cfg.RateLimitRequests, cfg.RateLimitWindow))
		}

		r.Method(http.MethodGet, "/manifest.json", manifest)
		r.Method(http.MethodGet, "/catalog/{type}/{id}", catalogHandler)
		r.Method(http.MethodGet, "/stream/{type}/{id}", streamHandler)

		r.Method(http.MethodGet, "/{"+configParam+"}/manifest.json", manifest)
		r.Method(http.MethodGet, "/{"+configParam+"}/catalog/{type}/{id}", catalogHandler)
		r.Method(http.MethodGet, "/{"+configParam+"}/stream/{type}/{id}", streamHandler)

		r.Method(http.MethodGet, "/playlist/{region}.m3u", NewPlaylistHTTPHandler(cfg.Playlist))
	})

	return r
}
