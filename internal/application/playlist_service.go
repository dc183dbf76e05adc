package application

import (
	"context"
	"strings"

	"github.com/powerboxizm12/stremio-au-addon/internal/m3u"
	"github.com/powerboxizm12/stremio-au-addon/internal/region"
)

// PlaylistService re-publishes a region's cached channel list as an M3U playlist.
type PlaylistService struct {
	channels ChannelLister
}

// NewPlaylistService creates a new PlaylistService.
func NewPlaylistService(channels ChannelLister) *PlaylistService {
	return &PlaylistService{
		channels: channels,
	}
}

// GenerateM3U generates an M3U playlist with every channel of the region.
// Returns a playlist with only the #EXTM3U header if the region has no channels.
func (p *PlaylistService) GenerateM3U(ctx context.Context, r region.Region) (string, error) {
	enc := m3u.NewEncoder()
	enc.Add(p.channels.Channels(ctx, r)...)

	var builder strings.Builder
	if err := enc.Encode(&builder); err != nil {
		return "", err
	}

	return builder.String(), nil
}
