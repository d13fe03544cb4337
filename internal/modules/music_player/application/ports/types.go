package ports

import (
	"time"

	"github.com/sglre6355/avbot/internal/i18n"
	"github.com/sglre6355/avbot/internal/modules/music_player/domain"
)

// LoadResult represents the result of loading tracks.
type LoadResult struct {
	Type         LoadType
	Tracks       []*domain.Track
	PlaylistName string
}

// LoadType represents the type of load result.
type LoadType string

const (
	LoadTypeTrack    LoadType = "track"
	LoadTypePlaylist LoadType = "playlist"
	LoadTypeSearch   LoadType = "search"
	LoadTypeEmpty    LoadType = "empty"
	LoadTypeError    LoadType = "error"
)

// PlayerState is the phase a player message renders.
type PlayerState int

const (
	// PlayerPlaying shows the current track with full controls.
	PlayerPlaying PlayerState = iota
	// PlayerWaiting shows that the queue drained, controls kept.
	PlayerWaiting
	// PlayerDestroyed shows the idle teardown, controls removed.
	PlayerDestroyed
	// PlayerChannelEmpty shows the empty-channel teardown, controls removed.
	PlayerChannelEmpty
	// PlayerEnded shows the last track after Stop, controls disabled.
	PlayerEnded
)

// PlayerView is everything needed to render a player message.
type PlayerView struct {
	State             PlayerState
	Language          i18n.Language
	Track             *domain.Track
	Paused            bool
	LoopEnabled       bool
	NotificationLevel domain.NotificationLevel
	Volume            int
	QueueLength       int
	IdleTimeout       time.Duration
}
