package discord

import (
	"github.com/bwmarrin/discordgo"
	"github.com/sglre6355/avbot/internal/bot"
	"github.com/sglre6355/avbot/internal/modules/music_player/domain"
)

// reply delivers the result of an intent on the surface it was issued from.
type reply interface {
	// confirm delivers a successful result at the session's notification level.
	confirm(embed *discordgo.MessageEmbed, level domain.NotificationLevel) error
	// private delivers a result only the actor should see.
	private(embed *discordgo.MessageEmbed) error
	// public delivers a result everyone in the channel should see.
	public(embed *discordgo.MessageEmbed) error
	// abort drops any pending placeholder before an unexpected error is reported.
	abort()
}

// interactionReply answers slash commands, buttons and modal submits.
type interactionReply struct {
	r bot.Responder

	// deferred is set once a DeferredChannelMessageWithSource placeholder was sent.
	deferred bool
	// update acknowledges silent results with a deferred message update.
	// Only valid for interactions attached to a message.
	update bool
}

func (ir *interactionReply) confirm(embed *discordgo.MessageEmbed, level domain.NotificationLevel) error {
	switch level {
	case domain.NotificationPublic:
		return ir.send(embed, false)
	case domain.NotificationPrivate:
		return ir.send(embed, true)
	default:
		return ir.silent()
	}
}

func (ir *interactionReply) private(embed *discordgo.MessageEmbed) error {
	return ir.send(embed, true)
}

func (ir *interactionReply) public(embed *discordgo.MessageEmbed) error {
	return ir.send(embed, false)
}

func (ir *interactionReply) abort() {
	if ir.deferred {
		_ = ir.r.DeleteResponse()
	}
}

// acknowledge sends a public "thinking" placeholder for slow intents.
func (ir *interactionReply) acknowledge() error {
	if err := ir.r.Respond(&discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	}); err != nil {
		return err
	}
	ir.deferred = true
	return nil
}

func (ir *interactionReply) send(embed *discordgo.MessageEmbed, ephemeral bool) error {
	embeds := []*discordgo.MessageEmbed{embed}

	if ir.deferred {
		if !ephemeral {
			return ir.r.EditResponse(&discordgo.WebhookEdit{Embeds: &embeds})
		}
		// The placeholder is public, so it can't turn ephemeral.
		if err := ir.r.DeleteResponse(); err != nil {
			return err
		}
		return ir.r.Followup(&discordgo.WebhookParams{
			Embeds: embeds,
			Flags:  discordgo.MessageFlagsEphemeral,
		})
	}

	var flags discordgo.MessageFlags
	if ephemeral {
		flags = discordgo.MessageFlagsEphemeral
	}
	return ir.r.Respond(&discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: embeds,
			Flags:  flags,
		},
	})
}

func (ir *interactionReply) silent() error {
	switch {
	case ir.deferred:
		return ir.r.DeleteResponse()
	case ir.update:
		return ir.r.Respond(&discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseDeferredMessageUpdate,
		})
	default:
		if err := ir.r.Respond(&discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Flags: discordgo.MessageFlagsEphemeral,
			},
		}); err != nil {
			return err
		}
		return ir.r.DeleteResponse()
	}
}

// messageReply answers prefix commands. Messages can't be ephemeral, so private
// results are replied in the channel as well.
type messageReply struct {
	r bot.MessageResponder
}

func (mr *messageReply) confirm(embed *discordgo.MessageEmbed, level domain.NotificationLevel) error {
	if level == domain.NotificationSilent {
		return nil
	}
	return mr.r.Reply(embed)
}

func (mr *messageReply) private(embed *discordgo.MessageEmbed) error {
	return mr.r.Reply(embed)
}

func (mr *messageReply) public(embed *discordgo.MessageEmbed) error {
	return mr.r.Reply(embed)
}

func (mr *messageReply) abort() {}
