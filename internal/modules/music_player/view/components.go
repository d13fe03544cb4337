package view

import (
	"github.com/bwmarrin/discordgo"
	"github.com/sglre6355/avbot/internal/modules/music_player/application/ports"
	"github.com/sglre6355/avbot/internal/modules/music_player/domain"
)

// Controls returns the two rows of player buttons, mirroring the view's state.
func Controls(v ports.PlayerView) []discordgo.MessageComponent {
	return controls(v, false)
}

// DisabledControls returns the player layout with every button disabled and a red stop button.
func DisabledControls(v ports.PlayerView) []discordgo.MessageComponent {
	return controls(v, true)
}

func controls(v ports.PlayerView, disabled bool) []discordgo.MessageComponent {
	pauseEmoji, pauseStyle := "⏸️", discordgo.SecondaryButton
	if v.Paused {
		pauseEmoji, pauseStyle = "▶️", discordgo.PrimaryButton
	}

	loopStyle := discordgo.SecondaryButton
	if v.LoopEnabled {
		loopStyle = discordgo.PrimaryButton
	}

	stopStyle := discordgo.SecondaryButton
	if disabled {
		stopStyle = discordgo.DangerButton
	}

	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				button(PreviousButtonID, "⏮️", discordgo.SecondaryButton, disabled),
				button(PauseButtonID, pauseEmoji, pauseStyle, disabled),
				button(NextButtonID, "⏭️", discordgo.SecondaryButton, disabled),
				button(StopButtonID, "⏹️", stopStyle, disabled),
				button(AddSongButtonID, "➕", discordgo.SecondaryButton, disabled),
			},
		},
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				button(ReplayButtonID, "🔄", discordgo.SecondaryButton, disabled),
				button(LoopButtonID, "🔂", loopStyle, disabled),
				button(QueueButtonID, "📜", discordgo.SecondaryButton, disabled),
				button(VolumeButtonID, "🔊", discordgo.SecondaryButton, disabled),
				button(NotificationsButtonID, NotificationEmoji(v.NotificationLevel),
					discordgo.SecondaryButton, disabled),
			},
		},
	}
}

func button(id, emoji string, style discordgo.ButtonStyle, disabled bool) discordgo.Button {
	return discordgo.Button{
		CustomID: id,
		Style:    style,
		Emoji:    &discordgo.ComponentEmoji{Name: emoji},
		Disabled: disabled,
	}
}

// NotificationEmoji returns the icon of the notifications button.
func NotificationEmoji(level domain.NotificationLevel) string {
	switch level {
	case domain.NotificationSilent:
		return "🔕"
	case domain.NotificationPrivate:
		return "🔒"
	default:
		return "🔔"
	}
}
