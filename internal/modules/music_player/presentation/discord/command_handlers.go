package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/sglre6355/avbot/internal/bot"
)

// HandleMusic handles the /music command group.
func (h *Handlers) HandleMusic(
	_ *discordgo.Session,
	i *discordgo.InteractionCreate,
	r bot.Responder,
) error {
	req, err := interactionRequest(i)
	if err != nil {
		return err
	}

	options := i.ApplicationCommandData().Options
	if len(options) == 0 {
		return fmt.Errorf("missing /%s subcommand", musicCommand)
	}
	sub := options[0]
	out := &interactionReply{r: r}

	var fn intent
	switch sub.Name {
	case playSubcommand:
		// Joining voice and searching can outlast the interaction deadline.
		if err := out.acknowledge(); err != nil {
			return err
		}
		fn = h.play(stringOption(sub.Options, songOption))
	case pauseSubcommand:
		fn = h.pause
	case resumeSubcommand:
		fn = h.resume
	case skipSubcommand:
		fn = h.skip
	case stopSubcommand:
		fn = h.stop
	case previousSubcommand:
		fn = h.previous
	case loopSubcommand:
		fn = h.loop
	case queueSubcommand:
		fn = h.viewQueue
	case volumeSubcommand:
		fn = h.volume(intOption(sub.Options, volumeOption))
	case replaySubcommand:
		fn = h.replay
	default:
		return fmt.Errorf("unknown /%s subcommand %q", musicCommand, sub.Name)
	}

	return h.run(req, out, fn)
}

func stringOption(options []*discordgo.ApplicationCommandInteractionDataOption, name string) string {
	for _, opt := range options {
		if opt.Name == name {
			return opt.StringValue()
		}
	}
	return ""
}

// intOption returns -1 when the option is missing so the value fails validation.
func intOption(options []*discordgo.ApplicationCommandInteractionDataOption, name string) int {
	for _, opt := range options {
		if opt.Name == name {
			return int(opt.IntValue())
		}
	}
	return -1
}
