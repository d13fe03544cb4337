package usecases

import (
	"context"
	"fmt"

	"github.com/disgoorg/snowflake/v2"
	"github.com/sglre6355/avbot/internal/modules/music_player/application/ports"
	"github.com/sglre6355/avbot/internal/modules/music_player/domain"
)

// SearchStatus is the outcome of resolving a query.
type SearchStatus int

const (
	SearchNotFound SearchStatus = iota
	SearchFound
)

// SearchInput contains the input for the Search use case.
type SearchInput struct {
	Query              string
	RequesterID        snowflake.ID
	RequesterName      string
	RequesterAvatarURL string
}

// SearchOutput contains the result of the Search use case.
// Backend failures are reported as errors, never as SearchNotFound.
type SearchOutput struct {
	Status SearchStatus
	Track  *domain.Track
}

// Found reports whether a track was resolved.
func (o *SearchOutput) Found() bool {
	return o.Status == SearchFound && o.Track != nil
}

// TrackLoaderService handles track loading operations.
type TrackLoaderService struct {
	trackResolver ports.TrackResolver
}

// NewTrackLoaderService creates a new TrackLoaderService.
func NewTrackLoaderService(trackResolver ports.TrackResolver) *TrackLoaderService {
	return &TrackLoaderService{
		trackResolver: trackResolver,
	}
}

// Search resolves the query to a single track. Playlists resolve to their first track.
func (s *TrackLoaderService) Search(ctx context.Context, input SearchInput) (*SearchOutput, error) {
	query := domain.NewSearchQuery(input.Query)
	if !query.IsValid() {
		return &SearchOutput{Status: SearchNotFound}, nil
	}

	result, err := s.trackResolver.LoadTracks(ctx, query.LavalinkQuery())
	if err != nil {
		return nil, fmt.Errorf("failed to load tracks: %w", err)
	}

	if result.Type == ports.LoadTypeEmpty || result.Type == ports.LoadTypeError ||
		len(result.Tracks) == 0 {
		return &SearchOutput{Status: SearchNotFound}, nil
	}

	// Loaded tracks may be shared; copy before setting the requester.
	track := *result.Tracks[0]
	track.RequesterID = input.RequesterID
	track.RequesterName = input.RequesterName
	track.RequesterAvatarURL = input.RequesterAvatarURL

	return &SearchOutput{Status: SearchFound, Track: &track}, nil
}

// SuggestInput contains the input for the Suggest use case.
type SuggestInput struct {
	Query string
	Limit int
}

// SuggestOutput contains the result of the Suggest use case.
type SuggestOutput struct {
	Tracks []*domain.Track
}

// Suggest returns search results for autocomplete.
func (s *TrackLoaderService) Suggest(ctx context.Context, input SuggestInput) (*SuggestOutput, error) {
	query := domain.NewSearchQuery(input.Query)
	if !query.IsValid() {
		return &SuggestOutput{}, nil
	}

	result, err := s.trackResolver.LoadTracks(ctx, query.LavalinkQuery())
	if err != nil {
		return nil, fmt.Errorf("failed to load tracks: %w", err)
	}

	if result.Type == ports.LoadTypeEmpty || result.Type == ports.LoadTypeError {
		return &SuggestOutput{}, nil
	}

	limit := input.Limit
	if limit <= 0 || limit > len(result.Tracks) {
		limit = len(result.Tracks)
	}

	return &SuggestOutput{Tracks: result.Tracks[:limit]}, nil
}
