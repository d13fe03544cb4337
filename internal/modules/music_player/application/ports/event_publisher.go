package ports

// EventPublisher defines the interface for publishing backend playback events.
// Implementations must not block the caller.
type EventPublisher interface {
	PublishTrackStarted(event TrackStartedEvent)
	PublishTrackEnded(event TrackEndedEvent)
}
