package driver

import (
	"net/http"
	"time"

	"github.com/powerboxizm12/stremio-au-addon/internal/application"
)

// HealthHTTPHandler handles HTTP requests for health checks.
type HealthHTTPHandler struct {
	service *application.HealthService
}

// NewHealthHTTPHandler creates a new HTTP handler for health checks.
func NewHealthHTTPHandler(service *application.HealthService) *HealthHTTPHandler {
	return &HealthHTTPHandler{service: service}
}

// regionHealthResponse describes one cached region.
type regionHealthResponse struct {
	Region    string `json:"region"`
	FetchedAt string `json:"fetched_at"`
	Fresh     bool   `json:"fresh"`
}

// healthResponse represents the JSON response for health check endpoint.
type healthResponse struct {
	Status        string                 `json:"status"`
	SnapshotStore string                 `json:"snapshot_store"`
	CachedRegions int                    `json:"cached_regions"`
	Regions       []regionHealthResponse `json:"regions"`
}

// ServeHTTP handles GET /health
func (h *HealthHTTPHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	status := h.service.Check(r.Context())

	resp := healthResponse{
		Status:        status.Status,
		SnapshotStore: status.SnapshotStore.Status,
		CachedRegions: status.CachedRegions,
		Regions:       make([]regionHealthResponse, 0, len(status.Regions)),
	}
	for _, rh := range status.Regions {
		resp.Regions = append(resp.Regions, regionHealthResponse{
			Region:    string(rh.Region),
			FetchedAt: rh.FetchedAt.UTC().Format(time.RFC3339),
			Fresh:     rh.Fresh,
		})
	}

	httpStatus := http.StatusOK
	if status.Status != "ok" {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, resp)
}
