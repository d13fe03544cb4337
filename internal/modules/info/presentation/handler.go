package presentation

import (
	"github.com/bwmarrin/discordgo"
	"github.com/sglre6355/avbot/internal/bot"
	"github.com/sglre6355/avbot/internal/i18n"
	"github.com/sglre6355/avbot/internal/modules/info/application"
)

const colorNeutral = 0x5865F2

// PingHandler handles the ping slash and prefix commands.
type PingHandler struct {
	interactor *application.PingInteractor
}

// NewPingHandler creates a new PingHandler.
func NewPingHandler(interactor *application.PingInteractor) *PingHandler {
	return &PingHandler{
		interactor: interactor,
	}
}

// Handle processes the ping command and sends the response.
func (h *PingHandler) Handle(
	_ *discordgo.Session,
	i *discordgo.InteractionCreate,
	r bot.Responder,
) error {
	return r.Respond(&discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{h.embed(i18n.ResolveInteraction(i.Interaction))},
		},
	})
}

// HandleMessage processes the ping prefix command.
func (h *PingHandler) HandleMessage(
	_ *discordgo.Session,
	c *bot.MessageCommand,
	r bot.MessageResponder,
) error {
	return r.Reply(h.embed(c.Language))
}

func (h *PingHandler) embed(lang i18n.Language) *discordgo.MessageEmbed {
	result := h.interactor.Execute()
	return &discordgo.MessageEmbed{
		Description: i18n.T(lang, "info.ping", result.Milliseconds()),
		Color:       colorNeutral,
	}
}
