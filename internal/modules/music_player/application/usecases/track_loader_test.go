package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/disgoorg/snowflake/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sglre6355/avbot/internal/modules/music_player/application/ports"
	"github.com/sglre6355/avbot/internal/modules/music_player/domain"
)

func TestTrackLoaderService_Search(t *testing.T) {
	requesterID := snowflake.ID(123)

	tests := []struct {
		name       string
		query      string
		result     *ports.LoadResult
		loadErr    error
		wantFound  bool
		wantTitle  string
		wantQuery  string
		wantErr    bool
		wantNoCall bool
	}{
		{
			name:      "search returns first result",
			query:     "never gonna",
			result:    &ports.LoadResult{Type: ports.LoadTypeSearch, Tracks: []*domain.Track{mockTrack("1"), mockTrack("2")}},
			wantFound: true,
			wantTitle: "Track 1",
			wantQuery: "ytsearch:never gonna",
		},
		{
			name:      "direct url is passed through",
			query:     "https://youtu.be/abc",
			result:    &ports.LoadResult{Type: ports.LoadTypeTrack, Tracks: []*domain.Track{mockTrack("abc")}},
			wantFound: true,
			wantTitle: "Track abc",
			wantQuery: "https://youtu.be/abc",
		},
		{
			name:  "playlist resolves to first track",
			query: "https://youtube.com/playlist?list=x",
			result: &ports.LoadResult{
				Type:         ports.LoadTypePlaylist,
				Tracks:       []*domain.Track{mockTrack("p1"), mockTrack("p2")},
				PlaylistName: "mix",
			},
			wantFound: true,
			wantTitle: "Track p1",
			wantQuery: "https://youtube.com/playlist?list=x",
		},
		{
			name:      "empty result",
			query:     "nothing",
			result:    &ports.LoadResult{Type: ports.LoadTypeEmpty},
			wantQuery: "ytsearch:nothing",
		},
		{
			name:      "load error result",
			query:     "broken",
			result:    &ports.LoadResult{Type: ports.LoadTypeError},
			wantQuery: "ytsearch:broken",
		},
		{
			name:      "search with no tracks",
			query:     "odd",
			result:    &ports.LoadResult{Type: ports.LoadTypeSearch},
			wantQuery: "ytsearch:odd",
		},
		{
			name:       "blank query",
			query:      "   ",
			wantNoCall: true,
		},
		{
			name:      "backend error",
			query:     "x",
			loadErr:   errors.New("connection refused"),
			wantQuery: "ytsearch:x",
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := &mockTrackResolver{loadResult: tt.result, loadErr: tt.loadErr}
			service := NewTrackLoaderService(resolver)

			output, err := service.Search(context.Background(), SearchInput{
				Query:              tt.query,
				RequesterID:        requesterID,
				RequesterName:      "TestUser",
				RequesterAvatarURL: "https://example.com/avatar.png",
			})

			if tt.wantNoCall {
				assert.Empty(t, resolver.queries)
			} else {
				assert.Equal(t, []string{tt.wantQuery}, resolver.queries)
			}

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.loadErr)
				return
			}
			require.NoError(t, err)

			if !tt.wantFound {
				assert.False(t, output.Found())
				assert.Equal(t, SearchNotFound, output.Status)
				return
			}

			require.True(t, output.Found())
			assert.Equal(t, tt.wantTitle, output.Track.Title)
			assert.Equal(t, requesterID, output.Track.RequesterID)
			assert.Equal(t, "TestUser", output.Track.RequesterName)
			assert.Equal(t, "https://example.com/avatar.png", output.Track.RequesterAvatarURL)
		})
	}
}

func TestTrackLoaderService_Search_DoesNotMutateLoadedTrack(t *testing.T) {
	loaded := mockTrack("shared")
	loaded.RequesterID = 0
	resolver := &mockTrackResolver{}
	resolver.returns(loaded)
	service := NewTrackLoaderService(resolver)

	output, err := service.Search(context.Background(), SearchInput{
		Query:         "shared",
		RequesterID:   snowflake.ID(7),
		RequesterName: "someone",
	})
	require.NoError(t, err)

	assert.Equal(t, snowflake.ID(7), output.Track.RequesterID)
	assert.Equal(t, snowflake.ID(0), loaded.RequesterID)
	assert.Empty(t, loaded.RequesterName)
}

func TestTrackLoaderService_Suggest(t *testing.T) {
	tracks := []*domain.Track{mockTrack("1"), mockTrack("2"), mockTrack("3")}

	tests := []struct {
		name      string
		query     string
		limit     int
		result    *ports.LoadResult
		wantCount int
	}{
		{
			name:      "limits results",
			query:     "song",
			limit:     2,
			result:    &ports.LoadResult{Type: ports.LoadTypeSearch, Tracks: tracks},
			wantCount: 2,
		},
		{
			name:      "limit larger than results",
			query:     "song",
			limit:     25,
			result:    &ports.LoadResult{Type: ports.LoadTypeSearch, Tracks: tracks},
			wantCount: 3,
		},
		{
			name:      "zero limit returns everything",
			query:     "song",
			result:    &ports.LoadResult{Type: ports.LoadTypeSearch, Tracks: tracks},
			wantCount: 3,
		},
		{
			name:      "empty result",
			query:     "song",
			limit:     5,
			result:    &ports.LoadResult{Type: ports.LoadTypeEmpty},
			wantCount: 0,
		},
		{
			name:      "blank query",
			query:     "",
			limit:     5,
			wantCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewTrackLoaderService(&mockTrackResolver{loadResult: tt.result})

			output, err := service.Suggest(context.Background(), SuggestInput{
				Query: tt.query,
				Limit: tt.limit,
			})
			require.NoError(t, err)
			assert.Len(t, output.Tracks, tt.wantCount)
		})
	}
}

func TestTrackLoaderService_Suggest_BackendError(t *testing.T) {
	service := NewTrackLoaderService(&mockTrackResolver{loadErr: errors.New("down")})

	_, err := service.Suggest(context.Background(), SuggestInput{Query: "song", Limit: 5})
	assert.Error(t, err)
}
