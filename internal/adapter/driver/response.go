package driver

import (
	"encoding/json"
	"net/http"
	"strings"
)

const jsonSuffix = ".json"

// errorResponse represents a JSON error response.
type errorResponse struct {
	Error string `json:"error"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// resourceName strips the .json extension from a resource path segment.
// ok is false when the segment has no such extension.
func resourceName(segment string) (string, bool) {
	name, found := strings.CutSuffix(segment, jsonSuffix)
	if !found || name == "" {
		return "", false
	}
	return name, true
}
