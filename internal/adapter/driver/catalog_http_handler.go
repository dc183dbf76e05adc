package driver

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/powerboxizm12/stremio-au-addon/internal/application"
	"github.com/powerboxizm12/stremio-au-addon/internal/catalog"
)

// CatalogHTTPHandler handles catalog requests.
type CatalogHTTPHandler struct {
	service *application.CatalogService
}

// NewCatalogHTTPHandler creates a new HTTP handler for catalogs.
func NewCatalogHTTPHandler(service *application.CatalogService) *CatalogHTTPHandler {
	return &CatalogHTTPHandler{service: service}
}

// metaResponse represents a catalog item in JSON format.
type metaResponse struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Name        string `json:"name"`
	Poster      string `json:"poster,omitempty"`
	PosterShape string `json:"posterShape"`
	Description string `json:"description"`
}

type catalogResponse struct {
	Metas []metaResponse `json:"metas"`
}

// ServeHTTP handles GET /catalog/{type}/{id}.json, optionally prefixed by a
// configuration segment. Unknown catalogs answer with an empty list.
func (h *CatalogHTTPHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	resp := catalogResponse{Metas: []metaResponse{}}

	id, ok := resourceName(pathParam(r, "id"))
	if !ok || chi.URLParam(r, "type") != catalog.Type || id != catalog.ID {
		writeJSON(w, http.StatusOK, resp)
		return
	}

	for _, item := range h.service.Catalog(r.Context(), regionFromRequest(r)) {
		resp.Metas = append(resp.Metas, metaResponse{
			ID:          item.ID,
			Type:        item.Type,
			Name:        item.Name,
			Poster:      item.Poster,
			PosterShape: item.PosterShape,
			Description: item.Description,
		})
	}

	writeJSON(w, http.StatusOK, resp)
}
