package usecases

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/sglre6355/avbot/internal/i18n"
	"github.com/sglre6355/avbot/internal/modules/music_player/application/ports"
	"github.com/sglre6355/avbot/internal/modules/music_player/domain"
)

// DefaultMaxTrackDuration is the longest track that may be played.
const DefaultMaxTrackDuration = time.Hour

// Limits bounds what a session accepts.
type Limits struct {
	QueueCapacity    int
	MaxTrackDuration time.Duration
}

// PlayInput contains the input for the Play use case.
type PlayInput struct {
	ActorInput
	Query              string
	Language           i18n.Language // owner language for a new session
	RequesterName      string
	RequesterAvatarURL string
}

// PlayOutput contains the result of the Play use case.
type PlayOutput struct {
	Track             *domain.Track
	Started           bool // false if the track was queued
	Position          int  // 1-based queue position when queued
	NotificationLevel domain.NotificationLevel
}

// QueueListOutput contains the result of the QueueList use case.
type QueueListOutput struct {
	NowPlaying *domain.Track
	Tracks     []*domain.Track
	Capacity   int
}

// QueueService handles adding tracks and reading the queue.
type QueueService struct {
	sessions    *SessionManager
	trackLoader *TrackLoaderService
	limits      Limits
}

// NewQueueService creates a new QueueService.
func NewQueueService(
	sessions *SessionManager,
	trackLoader *TrackLoaderService,
	limits Limits,
) *QueueService {
	if limits.QueueCapacity <= 0 {
		limits.QueueCapacity = domain.DefaultQueueCapacity
	}
	if limits.MaxTrackDuration <= 0 {
		limits.MaxTrackDuration = DefaultMaxTrackDuration
	}
	return &QueueService{
		sessions:    sessions,
		trackLoader: trackLoader,
		limits:      limits,
	}
}

// MaxTrackDuration returns the duration ceiling.
func (q *QueueService) MaxTrackDuration() time.Duration {
	return q.limits.MaxTrackDuration
}

// Capacity returns the session track capacity.
func (q *QueueService) Capacity() int {
	return q.limits.QueueCapacity
}

// Play joins the actor's channel if needed, resolves the query, and either starts it
// or appends it to the queue.
func (q *QueueService) Play(ctx context.Context, input PlayInput) (*PlayOutput, error) {
	m := q.sessions
	unlock := m.locks.Lock(input.GuildID)
	defer unlock()

	voiceChannelID, err := m.actorChannel(input.ActorInput)
	if err != nil {
		return nil, err
	}

	session := m.repo.Get(input.GuildID)
	if session == nil {
		if err := m.voiceConn.JoinChannel(ctx, input.GuildID, voiceChannelID); err != nil {
			return nil, fmt.Errorf("failed to join voice channel: %w", err)
		}
		session = domain.NewSession(
			input.GuildID,
			voiceChannelID,
			input.ChannelID,
			input.Language,
			q.limits.QueueCapacity,
		)
		m.repo.Save(session)
		slog.Info("created session", "guild", input.GuildID, "channel", voiceChannelID)
	}

	output, err := q.enqueue(ctx, session, input)
	if err != nil && !session.IsPlaying() && !m.watchdog.Armed(session.GuildID) {
		// Nothing to play; let the idle timer close the session.
		m.armIdle(session)
	}
	return output, err
}

func (q *QueueService) enqueue(
	ctx context.Context,
	session *domain.Session,
	input PlayInput,
) (*PlayOutput, error) {
	m := q.sessions

	if session.IsFull() {
		return nil, ErrQueueFull
	}

	result, err := q.trackLoader.Search(ctx, SearchInput{
		Query:              input.Query,
		RequesterID:        input.UserID,
		RequesterName:      input.RequesterName,
		RequesterAvatarURL: input.RequesterAvatarURL,
	})
	if err != nil {
		return nil, err
	}
	if !result.Found() {
		return nil, ErrTrackNotFound
	}

	track := result.Track
	if track.Exceeds(q.limits.MaxTrackDuration) {
		return nil, ErrTrackTooLong
	}

	if session.IsPlaying() {
		position := session.Enqueue(track)
		if position == 0 {
			return nil, ErrQueueFull
		}
		m.render(ctx, session, ports.PlayerPlaying)
		return &PlayOutput{
			Track:             track,
			Position:          position,
			NotificationLevel: session.NotificationLevel,
		}, nil
	}

	if err := m.startTrack(ctx, session, track); err != nil {
		return nil, err
	}
	m.render(ctx, session, ports.PlayerPlaying)

	return &PlayOutput{
		Track:             track,
		Started:           true,
		NotificationLevel: session.NotificationLevel,
	}, nil
}

// List returns a snapshot of the queue.
func (q *QueueService) List(_ context.Context, input ActorInput) (*QueueListOutput, error) {
	session, unlock, err := q.sessions.acquire(input)
	if err != nil {
		return nil, err
	}
	defer unlock()

	if session.Queue.IsEmpty() {
		return nil, ErrQueueEmpty
	}

	return &QueueListOutput{
		NowPlaying: session.NowPlaying,
		Tracks:     session.Queue.List(),
		Capacity:   session.Capacity(),
	}, nil
}
