package usecases

import (
	"context"
	"log/slog"

	"github.com/disgoorg/snowflake/v2"
	"github.com/sglre6355/avbot/internal/modules/music_player/application/ports"
	"github.com/sglre6355/avbot/internal/modules/music_player/domain"
)

// StopOutput contains the result of the Stop use case.
type StopOutput struct {
	NotificationLevel domain.NotificationLevel
}

// VoicePresenceInput describes a voice state change in a guild.
type VoicePresenceInput struct {
	GuildID   snowflake.ID
	UserID    snowflake.ID
	ChannelID snowflake.ID // 0 means the user left voice
	BotID     snowflake.ID
}

// VoiceChannelService handles disconnecting and reacting to voice presence changes.
type VoiceChannelService struct {
	sessions *SessionManager
}

// NewVoiceChannelService creates a new VoiceChannelService.
func NewVoiceChannelService(sessions *SessionManager) *VoiceChannelService {
	return &VoiceChannelService{
		sessions: sessions,
	}
}

// Stop ends the session: playback stops, the queue is dropped and the bot leaves voice.
func (v *VoiceChannelService) Stop(ctx context.Context, input ActorInput) (*StopOutput, error) {
	session, unlock, err := v.sessions.acquire(input)
	if err != nil {
		return nil, err
	}
	defer unlock()

	level := session.NotificationLevel
	if err := v.sessions.teardown(ctx, session, ports.PlayerEnded, true); err != nil {
		// The session is gone either way.
		slog.Warn("failed to disconnect cleanly", "guild", input.GuildID, "error", err)
	}

	return &StopOutput{NotificationLevel: level}, nil
}

// HandleVoicePresence closes the session when the bot is left without listeners.
func (v *VoiceChannelService) HandleVoicePresence(ctx context.Context, input VoicePresenceInput) error {
	m := v.sessions
	unlock := m.locks.Lock(input.GuildID)
	defer unlock()

	session := m.repo.Get(input.GuildID)
	if session == nil {
		return nil
	}

	if input.UserID == input.BotID {
		if input.ChannelID == 0 {
			slog.Info("bot was disconnected from voice", "guild", input.GuildID)
			return m.teardown(ctx, session, ports.PlayerChannelEmpty, false)
		}
		if input.ChannelID != session.VoiceChannelID {
			slog.Info("bot was moved", "guild", input.GuildID, "channel", input.ChannelID)
			session.VoiceChannelID = input.ChannelID
		}
	}

	members, err := m.voiceState.CountChannelMembers(input.GuildID, session.VoiceChannelID)
	if err != nil {
		return err
	}
	if members >= 2 {
		return nil
	}

	slog.Info("voice channel is empty, leaving", "guild", input.GuildID)
	return m.teardown(ctx, session, ports.PlayerChannelEmpty, true)
}
