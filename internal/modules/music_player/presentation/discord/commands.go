package discord

import (
	"github.com/bwmarrin/discordgo"
	"github.com/sglre6355/avbot/internal/i18n"
	"github.com/sglre6355/avbot/internal/modules/music_player/domain"
	"github.com/sglre6355/avbot/internal/modules/music_player/view"
)

// Slash command and subcommand names.
const (
	musicCommand = "music"

	playSubcommand     = "play"
	pauseSubcommand    = "pause"
	resumeSubcommand   = "resume"
	skipSubcommand     = "skip"
	stopSubcommand     = "stop"
	previousSubcommand = "previous"
	loopSubcommand     = "loop"
	queueSubcommand    = "queue"
	volumeSubcommand   = "volume"
	replaySubcommand   = "replay"

	songOption   = "song"
	volumeOption = "volume"
)

// Commands returns all slash commands for the music player module.
func Commands() []*discordgo.ApplicationCommand {
	dmPermission := false

	return []*discordgo.ApplicationCommand{
		{
			Name:                     musicCommand,
			NameLocalizations:        i18n.Localizations("command.music"),
			Description:              i18n.T(i18n.DefaultLanguage, "command.music.description"),
			DescriptionLocalizations: i18n.Localizations("command.music.description"),
			DMPermission:             &dmPermission,
			Options: []*discordgo.ApplicationCommandOption{
				subcommand(playSubcommand, &discordgo.ApplicationCommandOption{
					Type:                     discordgo.ApplicationCommandOptionString,
					Name:                     songOption,
					NameLocalizations:        *i18n.Localizations("command.play.song"),
					Description:              i18n.T(i18n.DefaultLanguage, "command.play.song.description"),
					DescriptionLocalizations: *i18n.Localizations("command.play.song.description"),
					Required:                 true,
					Autocomplete:             true,
					MinLength:                intPtr(view.SongMinLength),
					MaxLength:                view.SongMaxLength,
				}),
				subcommand(pauseSubcommand),
				subcommand(resumeSubcommand),
				subcommand(skipSubcommand),
				subcommand(stopSubcommand),
				subcommand(previousSubcommand),
				subcommand(loopSubcommand),
				subcommand(queueSubcommand),
				subcommand(volumeSubcommand, &discordgo.ApplicationCommandOption{
					Type:                     discordgo.ApplicationCommandOptionInteger,
					Name:                     volumeOption,
					NameLocalizations:        *i18n.Localizations("command.volume.volume"),
					Description:              i18n.T(i18n.DefaultLanguage, "command.volume.volume.description"),
					DescriptionLocalizations: *i18n.Localizations("command.volume.volume.description"),
					Required:                 true,
					MinValue:                 floatPtr(domain.MinVolume),
					MaxValue:                 domain.MaxVolume,
				}),
				subcommand(replaySubcommand),
			},
		},
	}
}

// subcommand builds a localized subcommand of /music.
func subcommand(name string, options ...*discordgo.ApplicationCommandOption) *discordgo.ApplicationCommandOption {
	key := "command." + name
	return &discordgo.ApplicationCommandOption{
		Type:                     discordgo.ApplicationCommandOptionSubCommand,
		Name:                     name,
		NameLocalizations:        *i18n.Localizations(key),
		Description:              i18n.T(i18n.DefaultLanguage, key+".description"),
		DescriptionLocalizations: *i18n.Localizations(key + ".description"),
		Options:                  options,
	}
}

func floatPtr(f float64) *float64 {
	return &f
}

func intPtr(i int) *int {
	return &i
}
