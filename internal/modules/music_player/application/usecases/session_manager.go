package usecases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/disgoorg/snowflake/v2"
	"github.com/sglre6355/avbot/internal/modules/music_player/application/ports"
	"github.com/sglre6355/avbot/internal/modules/music_player/domain"
)

// ActorInput identifies who issued a command and where.
type ActorInput struct {
	GuildID   snowflake.ID
	UserID    snowflake.ID
	ChannelID snowflake.ID // text channel the command was issued in
}

// SessionSummary is a read-only view of a session for status reporting.
type SessionSummary struct {
	GuildID           snowflake.ID `json:"guild_id"`
	VoiceChannelID    snowflake.ID `json:"voice_channel_id"`
	NowPlaying        string       `json:"now_playing,omitempty"`
	QueueLength       int          `json:"queue_length"`
	Paused            bool         `json:"paused"`
	LoopEnabled       bool         `json:"loop_enabled"`
	Volume            int          `json:"volume"`
	NotificationLevel string       `json:"notification_level"`
	IdleTimerArmed    bool         `json:"idle_timer_armed"`
	// Busy is set when an operation held the session; only GuildID is filled in then.
	Busy bool `json:"busy,omitempty"`
}

// SessionManager owns the session registry and the transitions shared by the services:
// precondition checks, player rendering, the idle timer and teardown.
type SessionManager struct {
	repo        domain.SessionRepository
	locks       *SessionLocks
	audioPlayer ports.AudioPlayer
	voiceConn   ports.VoiceConnection
	voiceState  ports.VoiceStateProvider
	presenter   ports.PlayerPresenter
	watchdog    *IdleWatchdog
}

// NewSessionManager creates a new SessionManager.
func NewSessionManager(
	repo domain.SessionRepository,
	locks *SessionLocks,
	audioPlayer ports.AudioPlayer,
	voiceConn ports.VoiceConnection,
	voiceState ports.VoiceStateProvider,
	presenter ports.PlayerPresenter,
	watchdog *IdleWatchdog,
) *SessionManager {
	return &SessionManager{
		repo:        repo,
		locks:       locks,
		audioPlayer: audioPlayer,
		voiceConn:   voiceConn,
		voiceState:  voiceState,
		presenter:   presenter,
		watchdog:    watchdog,
	}
}

// acquire locks the guild and checks, in order, that a session exists and that the
// actor is in a voice channel. On error the lock is already released.
func (m *SessionManager) acquire(input ActorInput) (*domain.Session, func(), error) {
	unlock := m.locks.Lock(input.GuildID)

	session := m.repo.Get(input.GuildID)
	if session == nil {
		unlock()
		return nil, nil, ErrNoActiveSession
	}

	if _, err := m.actorChannel(input); err != nil {
		unlock()
		return nil, nil, err
	}

	return session, unlock, nil
}

// actorChannel returns the voice channel the actor is in.
func (m *SessionManager) actorChannel(input ActorInput) (snowflake.ID, error) {
	channelID, err := m.voiceState.GetUserVoiceChannel(input.GuildID, input.UserID)
	if err != nil {
		return 0, fmt.Errorf("failed to get user voice channel: %w", err)
	}
	if channelID == 0 {
		return 0, ErrActorNotInVoice
	}
	return channelID, nil
}

// startTrack plays track and makes it the session's current one.
// The session is only mutated after the backend accepted the track.
func (m *SessionManager) startTrack(
	ctx context.Context,
	session *domain.Session,
	track *domain.Track,
) error {
	if err := m.audioPlayer.Play(ctx, session.GuildID, track); err != nil {
		return fmt.Errorf("failed to play track: %w", err)
	}
	m.watchdog.Cancel(session.GuildID)
	session.Start(track)
	return nil
}

// view builds the player view of a session.
func (m *SessionManager) view(session *domain.Session, state ports.PlayerState) ports.PlayerView {
	return ports.PlayerView{
		State:             state,
		Language:          session.Language,
		Track:             session.NowPlaying,
		Paused:            session.Paused,
		LoopEnabled:       session.LoopEnabled,
		NotificationLevel: session.NotificationLevel,
		Volume:            session.Volume,
		QueueLength:       session.Queue.Len(),
		IdleTimeout:       m.watchdog.Timeout(),
	}
}

// render re-renders the session's player message.
// Rendering failures are logged and never fail the operation that triggered them.
func (m *SessionManager) render(
	ctx context.Context,
	session *domain.Session,
	state ports.PlayerState,
) {
	m.renderView(ctx, session, m.view(session, state))
}

func (m *SessionManager) renderView(
	ctx context.Context,
	session *domain.Session,
	view ports.PlayerView,
) {
	if session.PlayerMessage != nil {
		err := m.presenter.EditPlayer(ctx, *session.PlayerMessage, view)
		if err == nil {
			return
		}
		slog.Warn("failed to edit player message, sending a new one",
			"guild", session.GuildID,
			"message", session.PlayerMessage.MessageID,
			"error", err,
		)
		session.PlayerMessage = nil
	}

	// Terminal states only update an existing message.
	if view.State != ports.PlayerPlaying && view.State != ports.PlayerWaiting {
		return
	}

	messageID, err := m.presenter.SendPlayer(ctx, session.TextChannelID, view)
	if err != nil {
		slog.Warn("failed to send player message", "guild", session.GuildID, "error", err)
		return
	}
	session.PlayerMessage = &domain.MessageRef{
		ChannelID: session.TextChannelID,
		MessageID: messageID,
	}
}

// armIdle starts the idle timer for a session with nothing to play.
func (m *SessionManager) armIdle(session *domain.Session) {
	guildID := session.GuildID
	m.watchdog.Arm(guildID, func(gen uint64) {
		m.expireIdle(context.Background(), guildID, gen)
	})
}

// expireIdle tears the session down if it is still idle when its timer fires.
func (m *SessionManager) expireIdle(ctx context.Context, guildID snowflake.ID, gen uint64) {
	unlock := m.locks.Lock(guildID)
	defer unlock()

	if !m.watchdog.Release(guildID, gen) {
		return
	}

	session := m.repo.Get(guildID)
	if session == nil || session.IsPlaying() || !session.Queue.IsEmpty() {
		return
	}

	slog.Info("closing idle session", "guild", guildID)
	if err := m.teardown(ctx, session, ports.PlayerDestroyed, true); err != nil {
		slog.Error("failed to close idle session", "guild", guildID, "error", err)
	}
}

// teardown renders a terminal state and discards the session.
// When disconnect is set the backend player is stopped and the voice connection released.
// The session is removed even if the backend calls fail.
func (m *SessionManager) teardown(
	ctx context.Context,
	session *domain.Session,
	state ports.PlayerState,
	disconnect bool,
) error {
	m.watchdog.Cancel(session.GuildID)
	m.render(ctx, session, state)
	m.repo.Delete(session.GuildID)

	if !disconnect {
		return nil
	}

	var errs []error
	if session.IsPlaying() {
		if err := m.audioPlayer.Stop(ctx, session.GuildID); err != nil {
			errs = append(errs, fmt.Errorf("failed to stop playback: %w", err))
		}
	}
	if err := m.voiceConn.LeaveChannel(ctx, session.GuildID); err != nil {
		errs = append(errs, fmt.Errorf("failed to leave voice channel: %w", err))
	}
	return errors.Join(errs...)
}

// Summaries returns a snapshot of every live session.
// It never waits on a session lock; sessions in the middle of an operation are reported as busy.
func (m *SessionManager) Summaries() []SessionSummary {
	sessions := m.repo.List()
	summaries := make([]SessionSummary, 0, len(sessions))

	for _, s := range sessions {
		unlock, ok := m.locks.TryLock(s.GuildID)
		if !ok {
			summaries = append(summaries, SessionSummary{GuildID: s.GuildID, Busy: true})
			continue
		}
		if m.repo.Get(s.GuildID) != s {
			unlock()
			continue
		}
		summary := SessionSummary{
			GuildID:           s.GuildID,
			VoiceChannelID:    s.VoiceChannelID,
			QueueLength:       s.Queue.Len(),
			Paused:            s.Paused,
			LoopEnabled:       s.LoopEnabled,
			Volume:            s.Volume,
			NotificationLevel: s.NotificationLevel.String(),
			IdleTimerArmed:    m.watchdog.Armed(s.GuildID),
		}
		if s.NowPlaying != nil {
			summary.NowPlaying = s.NowPlaying.Title
		}
		unlock()
		summaries = append(summaries, summary)
	}

	return summaries
}
