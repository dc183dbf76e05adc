package driver

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/powerboxizm12/stremio-au-addon/internal/application"
	"github.com/powerboxizm12/stremio-au-addon/internal/catalog"
)

// StreamHTTPHandler handles stream requests.
type StreamHTTPHandler struct {
	service *application.CatalogService
}

// NewStreamHTTPHandler creates a new HTTP handler for streams.
func NewStreamHTTPHandler(service *application.CatalogService) *StreamHTTPHandler {
	return &StreamHTTPHandler{service: service}
}

// streamResponse represents a playable stream in JSON format.
type streamResponse struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

type streamsResponse struct {
	Streams []streamResponse `json:"streams"`
}

// ServeHTTP handles GET /stream/{type}/{id}.json, optionally prefixed by a
// configuration segment. The region comes from the item id, not from the
// configuration.
func (h *StreamHTTPHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	resp := streamsResponse{Streams: []streamResponse{}}

	id, ok := resourceName(pathParam(r, "id"))
	if !ok || chi.URLParam(r, "type") != catalog.Type {
		writeJSON(w, http.StatusOK, resp)
		return
	}

	for _, s := range h.service.Streams(r.Context(), id) {
		resp.Streams = append(resp.Streams, streamResponse{Title: s.Title, URL: s.URL})
	}
	if len(resp.Streams) == 0 {
		zerolog.Ctx(r.Context()).Debug().Str("id", id).Msg("no stream for item")
	}

	writeJSON(w, http.StatusOK, resp)
}
