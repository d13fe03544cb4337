package events

import (
	"github.com/sglre6355/avbot/internal/modules/music_player/application/ports"
)

// Re-export event types from ports for use by event handlers.
type (
	TrackStartedEvent = ports.TrackStartedEvent
	TrackEndedEvent   = ports.TrackEndedEvent
	TrackEndReason    = ports.TrackEndReason
)

// Re-export TrackEndReason constants.
const (
	TrackEndFinished   = ports.TrackEndFinished
	TrackEndLoadFailed = ports.TrackEndLoadFailed
	TrackEndStopped    = ports.TrackEndStopped
	TrackEndReplaced   = ports.TrackEndReplaced
	TrackEndCleanup    = ports.TrackEndCleanup
)
