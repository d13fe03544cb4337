package discord

import (
	"context"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"
	"github.com/sglre6355/avbot/internal/bot"
	"github.com/sglre6355/avbot/internal/modules/music_player/application/usecases"
	"github.com/sglre6355/avbot/internal/modules/music_player/domain"
	"github.com/sglre6355/avbot/internal/modules/music_player/view"
)

const (
	maxChoices          = 25
	maxChoiceNameLength = 100
	autocompleteTimeout = 2500 * time.Millisecond
)

// AutocompleteHandlers returns the autocomplete handlers keyed by command name.
func (h *Handlers) AutocompleteHandlers() map[string]bot.InteractionHandler {
	return map[string]bot.InteractionHandler{
		musicCommand: h.HandleMusicAutocomplete,
	}
}

// HandleMusicAutocomplete suggests tracks for /music play.
// Search failures are logged and answered with no choices.
func (h *Handlers) HandleMusicAutocomplete(
	_ *discordgo.Session,
	i *discordgo.InteractionCreate,
	r bot.Responder,
) error {
	query, ok := focusedSong(i.ApplicationCommandData())
	if !ok || utf8.RuneCountInString(strings.TrimSpace(query)) < view.SongMinLength {
		return respondChoices(r, nil)
	}

	ctx, cancel := context.WithTimeout(context.Background(), autocompleteTimeout)
	defer cancel()

	output, err := h.trackLoader.Suggest(ctx, usecases.SuggestInput{
		Query: query,
		Limit: maxChoices,
	})
	if err != nil {
		slog.Warn("failed to load autocomplete suggestions", "query", query, "error", err)
		return respondChoices(r, nil)
	}

	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(output.Tracks))
	for _, track := range output.Tracks {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  view.Truncate(choiceName(track), maxChoiceNameLength),
			Value: choiceValue(track),
		})
	}
	return respondChoices(r, choices)
}

// focusedSong returns the song being typed in /music play.
func focusedSong(data discordgo.ApplicationCommandInteractionData) (string, bool) {
	for _, sub := range data.Options {
		if sub.Name != playSubcommand {
			continue
		}
		for _, opt := range sub.Options {
			if opt.Name == songOption && opt.Focused {
				return opt.StringValue(), true
			}
		}
	}
	return "", false
}

func choiceName(track *domain.Track) string {
	name := track.Title
	if track.Artist != "" {
		name += " - " + track.Artist
	}
	if d := track.FormattedDuration(); d != "" {
		name += " (" + d + ")"
	}
	return name
}

// choiceValue must satisfy the song option's length limit, so long URLs fall back to the title.
func choiceValue(track *domain.Track) string {
	if track.URI != "" && utf8.RuneCountInString(track.URI) <= view.SongMaxLength {
		return track.URI
	}
	return view.Truncate(track.Title, view.SongMaxLength)
}

func respondChoices(r bot.Responder, choices []*discordgo.ApplicationCommandOptionChoice) error {
	if choices == nil {
		choices = []*discordgo.ApplicationCommandOptionChoice{}
	}
	return r.Respond(&discordgo.InteractionResponse{
		Type: discordgo.InteractionApplicationCommandAutocompleteResult,
		Data: &discordgo.InteractionResponseData{
			Choices: choices,
		},
	})
}
