package discord

import (
	"context"
	"log/slog"

	"github.com/bwmarrin/discordgo"
	"github.com/disgoorg/snowflake/v2"
	"github.com/sglre6355/avbot/internal/modules/music_player/application/usecases"
)

// EventHandlers handles Discord gateway events for the music player.
type EventHandlers struct {
	voiceChannel *usecases.VoiceChannelService
}

// NewEventHandlers creates a new EventHandlers.
func NewEventHandlers(voiceChannel *usecases.VoiceChannelService) *EventHandlers {
	return &EventHandlers{
		voiceChannel: voiceChannel,
	}
}

// HandleVoiceStateUpdate checks whether the bot was left alone, moved or disconnected.
func (h *EventHandlers) HandleVoiceStateUpdate(s *discordgo.Session, event *discordgo.VoiceStateUpdate) {
	if s == nil || s.State == nil || s.State.User == nil || event.VoiceState == nil {
		return
	}

	input, err := voicePresenceInput(s.State.User.ID, event.VoiceState)
	if err != nil {
		slog.Error("failed to parse voice state update", "error", err)
		return
	}

	h.handlePresence(input)
}

func (h *EventHandlers) handlePresence(input usecases.VoicePresenceInput) {
	if err := h.voiceChannel.HandleVoicePresence(context.Background(), input); err != nil {
		slog.Error("failed to handle voice presence",
			"guild", input.GuildID,
			"user", input.UserID,
			"error", err,
		)
	}
}

func voicePresenceInput(botID string, state *discordgo.VoiceState) (usecases.VoicePresenceInput, error) {
	guildID, err := snowflake.Parse(state.GuildID)
	if err != nil {
		return usecases.VoicePresenceInput{}, err
	}
	userID, err := snowflake.Parse(state.UserID)
	if err != nil {
		return usecases.VoicePresenceInput{}, err
	}
	bot, err := snowflake.Parse(botID)
	if err != nil {
		return usecases.VoicePresenceInput{}, err
	}

	// An empty channel ID means the user left voice.
	var channelID snowflake.ID
	if state.ChannelID != "" {
		if channelID, err = snowflake.Parse(state.ChannelID); err != nil {
			return usecases.VoicePresenceInput{}, err
		}
	}

	return usecases.VoicePresenceInput{
		GuildID:   guildID,
		UserID:    userID,
		ChannelID: channelID,
		BotID:     bot,
	}, nil
}
