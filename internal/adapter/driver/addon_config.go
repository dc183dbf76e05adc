package driver

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/powerboxizm12/stremio-au-addon/internal/region"
)

// configParam is the route parameter carrying the user configuration.
const configParam = "config"

// userConfig is the configuration a client embeds in its install URL.
type userConfig struct {
	Region string `json:"region"`
}

// regionFromRequest reads the region from the URL-encoded JSON configuration
// segment. A missing or unreadable configuration, or a region outside the
// known set, selects region.Default.
func regionFromRequest(r *http.Request) region.Region {
	raw := pathParam(r, configParam)
	if raw == "" {
		return region.Default
	}

	var cfg userConfig
	if err := json.Unmarshal([]byte(raw), &cfg); err != nil {
		return region.Default
	}

	return region.OrDefault(cfg.Region)
}

// pathParam returns a decoded route parameter. chi matches against
// r.URL.RawPath when it is set, leaving parameters percent-encoded; otherwise
// they come from the already decoded r.URL.Path and are returned as is.
// Values that are not valid escapes are returned unchanged.
func pathParam(r *http.Request, key string) string {
	raw := chi.URLParam(r, key)
	if r.URL.RawPath == "" {
		return raw
	}

	decoded, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}
	return decoded
}
