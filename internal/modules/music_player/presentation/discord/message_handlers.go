package discord

import (
	"context"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/sglre6355/avbot/internal/bot"
	"github.com/sglre6355/avbot/internal/modules/music_player/application/usecases"
)

// MessageCommands returns the prefix command handlers, named like the /music subcommands.
func (h *Handlers) MessageCommands() map[string]bot.MessageHandler {
	return map[string]bot.MessageHandler{
		playSubcommand:     h.handleMessage(h.playFromArgs),
		pauseSubcommand:    h.handleMessage(simple(h.pause)),
		resumeSubcommand:   h.handleMessage(simple(h.resume)),
		skipSubcommand:     h.handleMessage(simple(h.skip)),
		stopSubcommand:     h.handleMessage(simple(h.stop)),
		previousSubcommand: h.handleMessage(simple(h.previous)),
		loopSubcommand:     h.handleMessage(simple(h.loop)),
		queueSubcommand:    h.handleMessage(simple(h.viewQueue)),
		volumeSubcommand:   h.handleMessage(h.volumeFromArgs),
		replaySubcommand:   h.handleMessage(simple(h.replay)),
	}
}

// simple adapts an intent that takes no arguments.
func simple(fn intent) func(string) intent {
	return func(string) intent { return fn }
}

func (h *Handlers) handleMessage(build func(args string) intent) bot.MessageHandler {
	return func(_ *discordgo.Session, c *bot.MessageCommand, r bot.MessageResponder) error {
		req, err := messageRequest(c)
		if err != nil {
			return err
		}
		return h.run(req, &messageReply{r: r}, build(c.Args))
	}
}

func (h *Handlers) playFromArgs(args string) intent {
	query := strings.TrimSpace(args)
	if query == "" {
		return rejected(usecases.ErrTrackNotFound)
	}
	return h.play(query)
}

func (h *Handlers) volumeFromArgs(args string) intent {
	return h.volume(parseVolume(args))
}

// parseVolume returns -1 for anything but an integer, which fails validation
// after the session preconditions.
func parseVolume(s string) int {
	volume, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return -1
	}
	return volume
}

// rejected is an intent that fails with err before reaching the use cases.
func rejected(err error) intent {
	return func(_ context.Context, _ request, _ reply) error {
		return err
	}
}
