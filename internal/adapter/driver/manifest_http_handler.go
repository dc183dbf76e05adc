package driver

import (
	"net/http"

	"github.com/powerboxizm12/stremio-au-addon/internal/catalog"
	"github.com/powerboxizm12/stremio-au-addon/internal/region"
)

// Add-on identity published in the manifest.
const (
	ManifestID          = "community.australia.tv.powerbox.web"
	ManifestVersion     = "5.0.0"
	ManifestName        = "Australian TV by Powerbox (Web)"
	ManifestDescription = "Publicly hosted add-on for Australian TV with region selection."
)

type manifestCatalog struct {
	Type string `json:"type"`
	ID   string `json:"id"`
	Name string `json:"name"`
}

type manifestConfigField struct {
	Key     string   `json:"key"`
	Type    string   `json:"type"`
	Title   string   `json:"title"`
	Options []string `json:"options"`
	Default string   `json:"default"`
}

type behaviorHints struct {
	Configurable bool `json:"configurable"`
}

// manifestResponse is the add-on description clients install from.
type manifestResponse struct {
	ID            string                `json:"id"`
	Version       string                `json:"version"`
	Name          string                `json:"name"`
	Description   string                `json:"description"`
	Resources     []string              `json:"resources"`
	Types         []string              `json:"types"`
	Catalogs      []manifestCatalog     `json:"catalogs"`
	BehaviorHints behaviorHints         `json:"behaviorHints"`
	Config        []manifestConfigField `json:"config"`
	IDPrefixes    []string              `json:"idPrefixes"`
}

func newManifest() manifestResponse {
	return manifestResponse{
		ID:          ManifestID,
		Version:     ManifestVersion,
		Name:        ManifestName,
		Description: ManifestDescription,
		Resources:   []string{"catalog", "stream"},
		Types:       []string{catalog.Type},
		Catalogs: []manifestCatalog{
			{Type: catalog.Type, ID: catalog.ID, Name: "Australian TV"},
		},
		BehaviorHints: behaviorHints{Configurable: true},
		Config: []manifestConfigField{
			{
				Key:     "region",
				Type:    "select",
				Title:   "Select Your Region",
				Options: region.Names(),
				Default: string(region.Default),
			},
		},
		IDPrefixes: []string{catalog.IDPrefix},
	}
}

// ManifestHTTPHandler serves the add-on manifest.
type ManifestHTTPHandler struct {
	manifest manifestResponse
}

// NewManifestHTTPHandler creates a new HTTP handler for the manifest.
func NewManifestHTTPHandler() *ManifestHTTPHandler {
	return &ManifestHTTPHandler{manifest: newManifest()}
}

// ServeHTTP handles GET /manifest.json and GET /{config}/manifest.json.
// The manifest is the same for every configuration.
func (h *ManifestHTTPHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.manifest)
}
