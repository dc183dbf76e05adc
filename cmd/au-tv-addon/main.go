package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.etcd.io/bbolt"

	"github.com/powerboxizm12/stremio-au-addon/config"
	"github.com/powerboxizm12/stremio-au-addon/internal/adapter/driven"
	"github.com/powerboxizm12/stremio-au-addon/internal/adapter/driver"
	"github.com/powerboxizm12/stremio-au-addon/internal/application"
	port "github.com/powerboxizm12/stremio-au-addon/internal/port/driven"
	"github.com/powerboxizm12/stremio-au-addon/logging"
)

const serviceName = "au-tv-addon"

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLogger := logging.New(logging.Config{Service: serviceName})
		bootLogger.Fatal().Err(err).Msg("failed to load configuration")
	}

	logger := logging.New(cfg.LoggingConfig(serviceName))

	logger.Info().
		Str("address", cfg.HTTP.Address).
		Str("port", cfg.HTTP.Port).
		Str("playlist_base_url", cfg.Playlist.BaseURL).
		Str("snapshot_path", cfg.Snapshot.Path).
		Msg("starting " + serviceName)

	// Snapshot persistence is optional. The store stays a nil interface when
	// disabled so services can tell the two cases apart.
	var snapshots port.SnapshotStore
	if cfg.Snapshot.Path != "" {
		db, err := bbolt.Open(cfg.Snapshot.Path, 0600, &bbolt.Options{Timeout: 1 * time.Second})
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to open snapshot database")
		}
		defer func() {
			if err := db.Close(); err != nil {
				logger.Error().Err(err).Msg("error closing snapshot database")
			}
		}()

		store, err := driven.NewSnapshotBoltDBStore(db, logging.WithComponent(logger, "snapshot_store"))
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to create snapshot store")
		}
		snapshots = store
	}

	// Create driven adapters
	fetcher := driven.NewPlaylistHTTPFetcher(
		cfg.Playlist.BaseURL,
		cfg.Playlist.FileName,
		&http.Client{Timeout: cfg.Playlist.Timeout},
		logging.WithComponent(logger, "playlist_fetcher"),
	)
	cache := driven.NewChannelMemoryCache(driven.FreshnessWindow)

	// Create application services
	channelService := application.NewChannelService(fetcher, cache, snapshots, logger, time.Now)
	catalogService := application.NewCatalogService(channelService, cfg.Logos)
	playlistService := application.NewPlaylistService(channelService)
	healthService := application.NewHealthService(snapshots, cache, time.Now)

	if n, err := channelService.Restore(context.Background()); err != nil {
		logger.Warn().Err(err).Msg("failed to restore snapshots")
	} else if n > 0 {
		logger.Info().Int("regions", n).Msg("restored channel snapshots")
	}

	server := newServer(cfg, driver.NewRouter(driver.RouterConfig{
		Catalog:           catalogService,
		Playlist:          playlistService,
		Health:            healthService,
		Logger:            logger,
		RateLimitRequests: cfg.RateLimit.Requests,
		RateLimitWindow:   cfg.RateLimit.Window,
	}))

	// Start server in a goroutine
	go func() {
		logger.Info().Str("addr", server.Addr).Msg("http server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	// Graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	logger.Info().Msg("shutdown signal received, shutting down gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("server shutdown error")
	}

	logger.Info().Msg("server stopped")
}

// newServer builds the HTTP server. The write timeout leaves room for a
// request that has to wait for an upstream playlist fetch.
func newServer(cfg *config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         net.JoinHostPort(cfg.HTTP.Address, cfg.HTTP.Port),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.Playlist.Timeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}
}
