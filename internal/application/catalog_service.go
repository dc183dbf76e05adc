package application

import (
	"context"

	"github.com/powerboxizm12/stremio-au-addon/internal/catalog"
	"github.com/powerboxizm12/stremio-au-addon/internal/channel"
	"github.com/powerboxizm12/stremio-au-addon/internal/region"
)

// ChannelLister returns the channel list of a region. It never fails.
type ChannelLister interface {
	Channels(ctx context.Context, r region.Region) []channel.Record
}

// CatalogService answers catalog and stream queries over regional channel lists.
type CatalogService struct {
	channels  ChannelLister
	projector *catalog.Projector
}

// NewCatalogService creates a new CatalogService. A nil logos table uses the defaults.
func NewCatalogService(channels ChannelLister, logos catalog.LogoTable) *CatalogService {
	return &CatalogService{
		channels:  channels,
		projector: catalog.NewProjector(logos),
	}
}

// Catalog lists one item per channel of the region, in playlist order.
// An empty region selects region.Default.
func (s *CatalogService) Catalog(ctx context.Context, r region.Region) []catalog.Item {
	if r == "" {
		r = region.Default
	}
	return s.projector.Items(r, s.channels.Channels(ctx, r))
}

// Streams resolves an item identifier to its stream. It returns an empty
// list when the identifier is malformed, names an unknown region, or no
// channel of that region has exactly the requested name.
func (s *CatalogService) Streams(ctx context.Context, id string) []catalog.Stream {
	regionPart, name, ok := catalog.ParseID(id)
	if !ok {
		return []catalog.Stream{}
	}

	r, err := region.Parse(regionPart)
	if err != nil {
		return []catalog.Stream{}
	}

	rec, found := channel.FindByName(s.channels.Channels(ctx, r), name)
	if !found {
		return []catalog.Stream{}
	}

	return []catalog.Stream{catalog.StreamFor(r, rec)}
}
