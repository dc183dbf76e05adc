// Package catalog projects channel records into the items and streams served
// by the add-on protocol.
package catalog

import (
	"strings"

	"github.com/powerboxizm12/stremio-au-addon/internal/channel"
	"github.com/powerboxizm12/stremio-au-addon/internal/region"
)

const (
	// IDPrefix starts every item identifier this add-on issues.
	IDPrefix = "au-tv-"
	// ID of the single catalog this add-on publishes.
	ID = "au-tv-catalog"
	// Type of every item and catalog.
	Type = "tv"

	idSeparator = ":"
	posterShape = "square"
)

// Item is a display-oriented projection of a channel record.
type Item struct {
	ID          string
	Type        string
	Name        string
	Poster      string
	PosterShape string
	Description string
}

// Stream describes one playable source for an item.
type Stream struct {
	Title string
	URL   string
}

// FormatID builds the identifier of a channel within a region.
func FormatID(r region.Region, name string) string {
	return IDPrefix + string(r) + idSeparator + name
}

// ParseID splits an identifier into its region and channel name parts.
// The name is everything after the first separator, so names may contain ':'.
// ok is false when either part is missing or empty.
func ParseID(id string) (regionPart, name string, ok bool) {
	rest := strings.TrimPrefix(id, IDPrefix)
	regionPart, name, found := strings.Cut(rest, idSeparator)
	if !found || regionPart == "" || name == "" {
		return "", "", false
	}
	return regionPart, name, true
}

// Projector turns channel records into catalog items.
type Projector struct {
	logos LogoTable
}

// NewProjector creates a Projector using the given fallback logo table.
// A nil table falls back to DefaultLogos.
func NewProjector(logos LogoTable) *Projector {
	if logos == nil {
		logos = DefaultLogos()
	}
	return &Projector{logos: logos}
}

// Item projects a single record of region r.
func (p *Projector) Item(r region.Region, rec channel.Record) Item {
	return Item{
		ID:          FormatID(r, rec.Name()),
		Type:        Type,
		Name:        rec.Name(),
		Poster:      ProxyLogo(p.logos.Resolve(rec)),
		PosterShape: posterShape,
		Description: "Region: " + string(r),
	}
}

// Items projects records in order. It returns an empty, non-nil slice for no records.
func (p *Projector) Items(r region.Region, records []channel.Record) []Item {
	items := make([]Item, 0, len(records))
	for _, rec := range records {
		items = append(items, p.Item(r, rec))
	}
	return items
}

// StreamFor returns the stream descriptor for a record of region r.
func StreamFor(r region.Region, rec channel.Record) Stream {
	return Stream{
		Title: string(r) + " Stream",
		URL:   rec.StreamURL(),
	}
}
