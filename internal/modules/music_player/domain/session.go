package domain

import (
	"github.com/disgoorg/snowflake/v2"
	"github.com/sglre6355/avbot/internal/i18n"
)

// Volume bounds.
const (
	MinVolume     = 0
	MaxVolume     = 200
	DefaultVolume = 100
)

// DefaultQueueCapacity is the maximum number of tracks a session holds, including the playing one.
const DefaultQueueCapacity = 25

// MessageRef identifies a message in a channel.
type MessageRef struct {
	ChannelID snowflake.ID
	MessageID snowflake.ID
}

// Session is the playback state of one guild's voice connection.
type Session struct {
	GuildID        snowflake.ID
	VoiceChannelID snowflake.ID

	// Owner context used for rendering the player.
	TextChannelID snowflake.ID
	Language      i18n.Language

	NowPlaying    *Track
	PreviousTrack *Track
	Queue         Queue

	LoopEnabled       bool
	Paused            bool
	NotificationLevel NotificationLevel
	Volume            int

	PlayerMessage *MessageRef

	capacity int
}

// NewSession creates an idle session for a freshly joined voice channel.
func NewSession(
	guildID, voiceChannelID, textChannelID snowflake.ID,
	language i18n.Language,
	capacity int,
) *Session {
	if capacity <= 0 {
		capacity = DefaultQueueCapacity
	}
	return &Session{
		GuildID:           guildID,
		VoiceChannelID:    voiceChannelID,
		TextChannelID:     textChannelID,
		Language:          language,
		Queue:             NewQueue(),
		NotificationLevel: DefaultNotificationLevel,
		Volume:            DefaultVolume,
		capacity:          capacity,
	}
}

// Capacity returns the maximum number of tracks, including the playing one.
func (s *Session) Capacity() int {
	return s.capacity
}

// IsPlaying returns true if a track is loaded, paused or not.
func (s *Session) IsPlaying() bool {
	return s.NowPlaying != nil
}

// TrackCount returns the queued tracks plus the playing one.
func (s *Session) TrackCount() int {
	n := s.Queue.Len()
	if s.NowPlaying != nil {
		n++
	}
	return n
}

// IsFull reports whether no more tracks can be added.
func (s *Session) IsFull() bool {
	return s.TrackCount() >= s.capacity
}

// Start makes track the playing one.
func (s *Session) Start(track *Track) {
	s.NowPlaying = track
	s.Paused = false
}

// Enqueue appends track to the queue and returns its 1-based position.
// It returns 0 and leaves the queue untouched when the session is full.
func (s *Session) Enqueue(track *Track) int {
	if s.IsFull() {
		return 0
	}
	s.Queue.PushBack(track)
	return s.Queue.Len()
}

// Advance moves to the next queued track, remembering the current one as previous.
// It returns the new playing track, or nil if the queue was empty.
func (s *Session) Advance() *Track {
	next := s.Queue.PopFront()
	if next == nil {
		return nil
	}
	if s.NowPlaying != nil {
		s.PreviousTrack = s.NowPlaying
	}
	s.Start(next)
	return next
}

// CanRewind reports whether going back fits within capacity.
func (s *Session) CanRewind() bool {
	return s.PreviousTrack != nil && s.TrackCount()+1 <= s.capacity
}

// Rewind re-queues the current and previous tracks at the front, previous first,
// then advances onto the previous track. The previous pointer is consumed.
// It returns the new playing track, or nil if there was no previous track.
func (s *Session) Rewind() *Track {
	previous := s.PreviousTrack
	if previous == nil {
		return nil
	}
	if s.NowPlaying != nil {
		s.Queue.PushFront(s.NowPlaying)
	}
	s.Queue.PushFront(previous)
	s.PreviousTrack = nil
	s.Start(s.Queue.PopFront())
	return s.NowPlaying
}

// Idle clears the playing track.
func (s *Session) Idle() {
	s.NowPlaying = nil
	s.Paused = false
}

// ValidVolume reports whether v is an accepted volume.
func ValidVolume(v int) bool {
	return v >= MinVolume && v <= MaxVolume
}
