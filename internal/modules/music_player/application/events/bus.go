package events

import (
	"log/slog"
	"sync"

	"github.com/disgoorg/snowflake/v2"
	"github.com/sglre6355/avbot/internal/modules/music_player/application/ports"
)

// DefaultEventBufferSize is the default buffer size for the event channel.
const DefaultEventBufferSize = 100

// Compile-time check that Bus implements ports.EventPublisher.
var _ ports.EventPublisher = (*Bus)(nil)

// Event is a TrackStartedEvent or a TrackEndedEvent.
type Event any

// Bus decouples the Lavalink event reader from session handling.
// Publishing never blocks; events are consumed by a TrackLifecycleHandler.
// All event kinds share one channel so they are consumed in publish order.
type Bus struct {
	events chan Event

	closed bool
	mu     sync.RWMutex
}

// NewBus creates a new Bus with the given buffer size.
func NewBus(bufferSize int) *Bus {
	if bufferSize <= 0 {
		bufferSize = DefaultEventBufferSize
	}

	return &Bus{
		events: make(chan Event, bufferSize),
	}
}

// PublishTrackStarted publishes a TrackStartedEvent.
// Non-blocking: if the channel buffer is full, the event is dropped with a warning.
func (b *Bus) PublishTrackStarted(event TrackStartedEvent) {
	b.publish(event, "TrackStarted", event.GuildID)
}

// PublishTrackEnded publishes a TrackEndedEvent.
// Non-blocking: if the channel buffer is full, the event is dropped with a warning.
func (b *Bus) PublishTrackEnded(event TrackEndedEvent) {
	b.publish(event, "TrackEnded", event.GuildID)
}

func (b *Bus) publish(event Event, kind string, guildID snowflake.ID) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		slog.Warn("attempted to publish to closed event bus", "type", kind)
		return
	}

	select {
	case b.events <- event:
		slog.Debug("published event", "type", kind, "guild", guildID)
	default:
		slog.Warn("event buffer full, dropping event", "type", kind, "guild", guildID)
	}
}

// Events returns the channel carrying every published event.
func (b *Bus) Events() <-chan Event {
	return b.events
}

// Close closes the event channel.
// After calling Close, publishing will no longer send events.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}

	b.closed = true
	close(b.events)

	slog.Debug("event bus closed")
}
