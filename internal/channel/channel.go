package channel

import (
	"errors"
	"strings"
)

// Domain errors
var (
	ErrEmptyName      = errors.New("channel name cannot be empty")
	ErrEmptyStreamURL = errors.New("channel stream URL cannot be empty")
)

// Record is a single live channel parsed from a regional playlist.
// Records carry no identity beyond their name within one region's list.
type Record struct {
	name      string
	logo      string
	streamURL string
}

// NewRecord creates a Record with the given name, optional logo URL and stream URL.
// Name and stream URL are trimmed and must not be empty.
// Returns ErrEmptyName or ErrEmptyStreamURL when validation fails.
func NewRecord(name, logo, streamURL string) (Record, error) {
	trimmedName := strings.TrimSpace(name)
	if trimmedName == "" {
		return Record{}, ErrEmptyName
	}

	trimmedURL := strings.TrimSpace(streamURL)
	if trimmedURL == "" {
		return Record{}, ErrEmptyStreamURL
	}

	return Record{
		name:      trimmedName,
		logo:      strings.TrimSpace(logo),
		streamURL: trimmedURL,
	}, nil
}

// Name returns the channel's display name.
func (r Record) Name() string {
	return r.name
}

// Logo returns the logo URL declared by the playlist, or "" when absent.
func (r Record) Logo() string {
	return r.logo
}

// HasLogo reports whether the playlist declared a logo for the channel.
func (r Record) HasLogo() bool {
	return r.logo != ""
}

// StreamURL returns the URL the channel is played from.
func (r Record) StreamURL() string {
	return r.streamURL
}

// FindByName returns the first record whose name equals name exactly.
func FindByName(records []Record, name string) (Record, bool) {
	for _, r := range records {
		if r.name == name {
			return r, true
		}
	}
	return Record{}, false
}
