package driver

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/powerboxizm12/stremio-au-addon/internal/application"
	"github.com/powerboxizm12/stremio-au-addon/internal/region"
	"github.com/powerboxizm12/stremio-au-addon/logging"
)

// PlaylistHTTPHandler handles HTTP requests for playlist generation.
type PlaylistHTTPHandler struct {
	service *application.PlaylistService
}

// NewPlaylistHTTPHandler creates a new HTTP handler for playlists.
func NewPlaylistHTTPHandler(service *application.PlaylistService) *PlaylistHTTPHandler {
	return &PlaylistHTTPHandler{service: service}
}

// ServeHTTP handles GET /playlist/{region}.m3u
func (h *PlaylistHTTPHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	reg, err := region.Parse(chi.URLParam(r, "region"))
	if err != nil {
		writeError(w, http.StatusNotFound, "unknown region")
		return
	}

	m3u, err := h.service.GenerateM3U(r.Context(), reg)
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Str(logging.FieldRegion, string(reg)).Msg("failed to encode playlist")
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	w.Header().Set("Content-Type", "audio/mpegurl")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(m3u))
}
