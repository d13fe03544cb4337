package usecases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/sglre6355/avbot/internal/modules/music_player/application/ports"
	"github.com/sglre6355/avbot/internal/modules/music_player/domain"
)

// PauseOutput contains the result of the Pause, Resume and TogglePause use cases.
type PauseOutput struct {
	Paused            bool
	NotificationLevel domain.NotificationLevel
}

// TrackOutput contains the track a playback use case switched to.
type TrackOutput struct {
	Track             *domain.Track
	NotificationLevel domain.NotificationLevel
}

// LoopOutput contains the result of the ToggleLoop use case.
type LoopOutput struct {
	Enabled           bool
	NotificationLevel domain.NotificationLevel
}

// SetVolumeInput contains the input for the SetVolume use case.
type SetVolumeInput struct {
	ActorInput
	Volume int
}

// VolumeOutput contains the result of the SetVolume use case.
type VolumeOutput struct {
	Volume            int
	NotificationLevel domain.NotificationLevel
}

// PlaybackService handles playback operations.
type PlaybackService struct {
	sessions *SessionManager
}

// NewPlaybackService creates a new PlaybackService.
func NewPlaybackService(sessions *SessionManager) *PlaybackService {
	return &PlaybackService{
		sessions: sessions,
	}
}

// TogglePause pauses a playing track or resumes a paused one.
func (p *PlaybackService) TogglePause(ctx context.Context, input ActorInput) (*PauseOutput, error) {
	session, unlock, err := p.sessions.acquire(input)
	if err != nil {
		return nil, err
	}
	defer unlock()

	if !session.IsPlaying() {
		return nil, ErrNothingPlaying
	}

	return p.setPaused(ctx, session, !session.Paused)
}

// Pause pauses the current playback.
func (p *PlaybackService) Pause(ctx context.Context, input ActorInput) (*PauseOutput, error) {
	session, unlock, err := p.sessions.acquire(input)
	if err != nil {
		return nil, err
	}
	defer unlock()

	if !session.IsPlaying() {
		return nil, ErrNothingPlaying
	}
	if session.Paused {
		return nil, ErrAlreadyPaused
	}

	return p.setPaused(ctx, session, true)
}

// Resume resumes the paused playback.
func (p *PlaybackService) Resume(ctx context.Context, input ActorInput) (*PauseOutput, error) {
	session, unlock, err := p.sessions.acquire(input)
	if err != nil {
		return nil, err
	}
	defer unlock()

	if !session.IsPlaying() {
		return nil, ErrNothingPlaying
	}
	if !session.Paused {
		return nil, ErrNotPaused
	}

	return p.setPaused(ctx, session, false)
}

func (p *PlaybackService) setPaused(
	ctx context.Context,
	session *domain.Session,
	paused bool,
) (*PauseOutput, error) {
	m := p.sessions

	if paused {
		if err := m.audioPlayer.Pause(ctx, session.GuildID); err != nil {
			return nil, fmt.Errorf("failed to pause playback: %w", err)
		}
	} else {
		if err := m.audioPlayer.Resume(ctx, session.GuildID); err != nil {
			return nil, fmt.Errorf("failed to resume playback: %w", err)
		}
	}

	session.Paused = paused
	m.render(ctx, session, ports.PlayerPlaying)

	return &PauseOutput{
		Paused:            paused,
		NotificationLevel: session.NotificationLevel,
	}, nil
}

// Skip advances to the next queued track, remembering the current one as previous.
func (p *PlaybackService) Skip(ctx context.Context, input ActorInput) (*TrackOutput, error) {
	m := p.sessions
	session, unlock, err := m.acquire(input)
	if err != nil {
		return nil, err
	}
	defer unlock()

	if session.Queue.IsEmpty() {
		return nil, ErrQueueEmpty
	}
	if session.LoopEnabled {
		return nil, ErrLoopActive
	}

	next := session.Queue.Peek()
	if err := m.audioPlayer.Play(ctx, session.GuildID, next); err != nil {
		return nil, fmt.Errorf("failed to play next track: %w", err)
	}

	m.watchdog.Cancel(session.GuildID)
	session.Advance()
	m.render(ctx, session, ports.PlayerPlaying)

	return &TrackOutput{
		Track:             session.NowPlaying,
		NotificationLevel: session.NotificationLevel,
	}, nil
}

// Previous goes back to the previous track. The current track is re-queued right after it.
func (p *PlaybackService) Previous(ctx context.Context, input ActorInput) (*TrackOutput, error) {
	m := p.sessions
	session, unlock, err := m.acquire(input)
	if err != nil {
		return nil, err
	}
	defer unlock()

	if session.LoopEnabled {
		return nil, ErrLoopActive
	}
	if session.PreviousTrack == nil {
		return nil, ErrNoPreviousTrack
	}
	if !session.CanRewind() {
		return nil, ErrQueueFull
	}

	if err := m.audioPlayer.Play(ctx, session.GuildID, session.PreviousTrack); err != nil {
		return nil, fmt.Errorf("failed to play previous track: %w", err)
	}

	m.watchdog.Cancel(session.GuildID)
	session.Rewind()
	m.render(ctx, session, ports.PlayerPlaying)

	return &TrackOutput{
		Track:             session.NowPlaying,
		NotificationLevel: session.NotificationLevel,
	}, nil
}

// Replay restarts the current track.
func (p *PlaybackService) Replay(ctx context.Context, input ActorInput) (*TrackOutput, error) {
	m := p.sessions
	session, unlock, err := m.acquire(input)
	if err != nil {
		return nil, err
	}
	defer unlock()

	if !session.IsPlaying() {
		return nil, ErrNothingPlaying
	}

	if err := m.audioPlayer.Seek(ctx, session.GuildID, 0); err != nil {
		return nil, fmt.Errorf("failed to seek: %w", err)
	}

	return &TrackOutput{
		Track:             session.NowPlaying,
		NotificationLevel: session.NotificationLevel,
	}, nil
}

// ToggleLoop flips looping of the current track.
func (p *PlaybackService) ToggleLoop(ctx context.Context, input ActorInput) (*LoopOutput, error) {
	session, unlock, err := p.sessions.acquire(input)
	if err != nil {
		return nil, err
	}
	defer unlock()

	if !session.IsPlaying() {
		return nil, ErrNothingPlaying
	}

	session.LoopEnabled = !session.LoopEnabled
	p.sessions.render(ctx, session, ports.PlayerPlaying)

	return &LoopOutput{
		Enabled:           session.LoopEnabled,
		NotificationLevel: session.NotificationLevel,
	}, nil
}

// SetVolume sets the player volume.
func (p *PlaybackService) SetVolume(ctx context.Context, input SetVolumeInput) (*VolumeOutput, error) {
	m := p.sessions
	session, unlock, err := m.acquire(input.ActorInput)
	if err != nil {
		return nil, err
	}
	defer unlock()

	if !domain.ValidVolume(input.Volume) {
		return nil, ErrInvalidVolume
	}

	if err := m.audioPlayer.SetVolume(ctx, session.GuildID, input.Volume); err != nil {
		return nil, fmt.Errorf("failed to set volume: %w", err)
	}

	session.Volume = input.Volume
	if session.IsPlaying() {
		m.render(ctx, session, ports.PlayerPlaying)
	}

	return &VolumeOutput{
		Volume:            session.Volume,
		NotificationLevel: session.NotificationLevel,
	}, nil
}

// HandleTrackStarted cancels a pending idle timer once the backend starts playing.
// A start event for a track that is no longer current is ignored.
func (p *PlaybackService) HandleTrackStarted(_ context.Context, event ports.TrackStartedEvent) {
	unlock := p.sessions.locks.Lock(event.GuildID)
	defer unlock()

	session := p.sessions.repo.Get(event.GuildID)
	if session == nil || !session.IsPlaying() {
		return
	}
	if event.Track != nil && event.Track.Encoded != session.NowPlaying.Encoded {
		slog.Debug("ignoring start of a track that is no longer current", "guild", event.GuildID)
		return
	}
	p.sessions.watchdog.Cancel(event.GuildID)
}

// HandleTrackEnded moves the session on after the backend finished a track.
// Loop replays the track; otherwise the queue advances, or the session waits for new tracks.
// Queued tracks that fail to start are dropped until one plays.
func (p *PlaybackService) HandleTrackEnded(ctx context.Context, event ports.TrackEndedEvent) error {
	if !event.Reason.MayAdvance() {
		return nil
	}

	m := p.sessions
	unlock := m.locks.Lock(event.GuildID)
	defer unlock()

	session := m.repo.Get(event.GuildID)
	if session == nil || !session.IsPlaying() {
		return nil
	}
	if event.Track != nil && event.Track.Encoded != session.NowPlaying.Encoded {
		slog.Debug("ignoring end of a track that is no longer current", "guild", event.GuildID)
		return nil
	}

	var errs []error
	if session.LoopEnabled {
		err := m.audioPlayer.Play(ctx, session.GuildID, session.NowPlaying)
		if err == nil {
			return nil
		}
		// The looped track can't be played again; move on without it.
		session.LoopEnabled = false
		errs = append(errs, fmt.Errorf("failed to replay looped track: %w", err))
	}

	for next := session.Queue.Peek(); next != nil; next = session.Queue.Peek() {
		if err := m.audioPlayer.Play(ctx, session.GuildID, next); err != nil {
			slog.Warn("dropping track that failed to start",
				"guild", session.GuildID,
				"track", next.Title,
				"error", err,
			)
			session.Queue.PopFront()
			errs = append(errs, fmt.Errorf("failed to play next track: %w", err))
			continue
		}
		session.Advance()
		m.render(ctx, session, ports.PlayerPlaying)
		return errors.Join(errs...)
	}

	p.wait(ctx, session)
	return errors.Join(errs...)
}

// wait shows the waiting state and arms the idle timer.
func (p *PlaybackService) wait(ctx context.Context, session *domain.Session) {
	session.Idle()
	p.sessions.render(ctx, session, ports.PlayerWaiting)
	p.sessions.armIdle(session)
}
