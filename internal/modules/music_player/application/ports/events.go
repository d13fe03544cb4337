package ports

import (
	"github.com/disgoorg/snowflake/v2"
	"github.com/sglre6355/avbot/internal/modules/music_player/domain"
)

// TrackEndReason is why the backend stopped a track.
type TrackEndReason string

const (
	TrackEndFinished   TrackEndReason = "finished"
	TrackEndLoadFailed TrackEndReason = "loadFailed"
	TrackEndStopped    TrackEndReason = "stopped"
	TrackEndReplaced   TrackEndReason = "replaced"
	TrackEndCleanup    TrackEndReason = "cleanup"
)

// MayAdvance reports whether the queue should move on after a track ended for this reason.
func (r TrackEndReason) MayAdvance() bool {
	return r == TrackEndFinished || r == TrackEndLoadFailed
}

// TrackStartedEvent is published when the backend starts playing a track.
type TrackStartedEvent struct {
	GuildID snowflake.ID
	Track   *domain.Track
}

// TrackEndedEvent is published when the backend ends a track.
type TrackEndedEvent struct {
	GuildID snowflake.ID
	Track   *domain.Track
	Reason  TrackEndReason
}
