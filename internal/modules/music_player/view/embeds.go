package view

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/sglre6355/avbot/internal/i18n"
	"github.com/sglre6355/avbot/internal/modules/music_player/application/ports"
	"github.com/sglre6355/avbot/internal/modules/music_player/domain"
)

// Embed colors.
const (
	ColorSuccess = 0x08c404
	ColorError   = 0xE74C3C
	ColorNeutral = 0x5865F2
	ColorEnded   = 0xdd5f65
)

// maxTitleLength is the longest track title shown in a queue line.
const maxTitleLength = 80

// Player renders the player message for a view.
// A zero accent falls back to the track source's color.
// Components are never nil; states without controls return an empty slice.
func Player(v ports.PlayerView, accent int) (*discordgo.MessageEmbed, []discordgo.MessageComponent) {
	lang := v.Language

	switch v.State {
	case ports.PlayerWaiting:
		return &discordgo.MessageEmbed{
			Title:       i18n.T(lang, "player.waiting_title"),
			Description: i18n.T(lang, "player.waiting", int(v.IdleTimeout.Seconds())),
			Color:       ColorNeutral,
		}, Controls(v)

	case ports.PlayerDestroyed:
		return &discordgo.MessageEmbed{
			Title:       i18n.T(lang, "player.destroyed_title"),
			Description: i18n.T(lang, "player.destroyed"),
			Color:       ColorNeutral,
		}, []discordgo.MessageComponent{}

	case ports.PlayerChannelEmpty:
		return &discordgo.MessageEmbed{
			Title:       i18n.T(lang, "player.channel_empty_title"),
			Description: i18n.T(lang, "player.channel_empty"),
			Color:       ColorNeutral,
		}, []discordgo.MessageComponent{}

	case ports.PlayerEnded:
		if v.Track == nil {
			return &discordgo.MessageEmbed{
				Title: i18n.T(lang, "player.ended"),
				Color: ColorEnded,
			}, DisabledControls(v)
		}
		embed := trackEmbed(v, ColorEnded)
		embed.Author.Name = i18n.T(lang, "player.ended")
		return embed, DisabledControls(v)

	default:
		if v.Track == nil {
			return &discordgo.MessageEmbed{
				Title: i18n.T(lang, "player.waiting_title"),
				Color: ColorNeutral,
			}, Controls(v)
		}
		if accent == 0 {
			accent = v.Track.Source().Color()
		}
		return trackEmbed(v, accent), Controls(v)
	}
}

func trackEmbed(v ports.PlayerView, color int) *discordgo.MessageEmbed {
	lang := v.Language
	track := v.Track

	duration := track.FormattedDuration()
	if track.IsStream {
		duration = i18n.T(lang, "player.live")
	}

	embed := &discordgo.MessageEmbed{
		Author: &discordgo.MessageEmbedAuthor{
			Name: i18n.T(lang, "player.title"),
		},
		Title: track.Title,
		URL:   track.URI,
		Color: color,
		Fields: []*discordgo.MessageEmbedField{
			{Name: i18n.T(lang, "player.field_artist"), Value: orDash(track.Artist), Inline: true},
			{Name: i18n.T(lang, "player.field_duration"), Value: duration, Inline: true},
			{Name: i18n.T(lang, "player.field_requester"), Value: requester(track), Inline: true},
			{Name: i18n.T(lang, "player.field_volume"), Value: fmt.Sprintf("%d%%", v.Volume), Inline: true},
			{Name: i18n.T(lang, "player.field_queue"), Value: fmt.Sprint(v.QueueLength), Inline: true},
		},
	}

	if track.ArtworkURL != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: track.ArtworkURL}
	}
	if v.LoopEnabled {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: i18n.T(lang, "player.footer_loop")}
	}

	return embed
}

func requester(track *domain.Track) string {
	if track.RequesterID != 0 {
		return fmt.Sprintf("<@%d>", track.RequesterID)
	}
	return orDash(track.RequesterName)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// Confirmation renders a successful command result.
func Confirmation(description string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Description: description,
		Color:       ColorSuccess,
	}
}

// Error renders a failed command result.
func Error(lang i18n.Language, description string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       i18n.T(lang, "error.title"),
		Description: description,
		Color:       ColorError,
	}
}

// Queue renders the queued tracks, not including the playing one.
func Queue(lang i18n.Language, tracks []*domain.Track) *discordgo.MessageEmbed {
	lines := make([]string, 0, len(tracks))
	for i, track := range tracks {
		duration := track.FormattedDuration()
		if track.IsStream {
			duration = i18n.T(lang, "player.live")
		}
		lines = append(lines, i18n.T(lang, "queue.entry", i+1, Truncate(track.Title, maxTitleLength), duration))
	}

	return &discordgo.MessageEmbed{
		Title:       i18n.T(lang, "queue.title"),
		Description: strings.Join(lines, "\n"),
		Color:       ColorNeutral,
		Footer: &discordgo.MessageEmbedFooter{
			Text: i18n.T(lang, "queue.footer", len(tracks)),
		},
	}
}

// Truncate shortens s to at most n runes, marking the cut with an ellipsis.
func Truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 1 {
		return string(runes[:n])
	}
	return string(runes[:n-1]) + "…"
}
