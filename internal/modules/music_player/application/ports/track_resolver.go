package ports

import (
	"context"
)

// TrackResolver defines the interface for loading/searching tracks.
type TrackResolver interface {
	// LoadTracks resolves a Lavalink query, either a search or a direct link.
	LoadTracks(ctx context.Context, query string) (*LoadResult, error)
}
