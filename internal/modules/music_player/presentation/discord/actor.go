package discord

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/disgoorg/snowflake/v2"
	"github.com/sglre6355/avbot/internal/bot"
	"github.com/sglre6355/avbot/internal/i18n"
	"github.com/sglre6355/avbot/internal/modules/music_player/application/usecases"
)

var errNotInGuild = errors.New("command was not issued in a guild")

// interactionRequest identifies the member behind an interaction.
func interactionRequest(i *discordgo.InteractionCreate) (request, error) {
	if i.Member == nil || i.Member.User == nil {
		return request{}, errNotInGuild
	}

	actor, err := parseActor(i.GuildID, i.Member.User.ID, i.ChannelID)
	if err != nil {
		return request{}, err
	}

	return request{
		actor:       actor,
		lang:        i18n.ResolveInteraction(i.Interaction),
		displayName: displayName(i.Member, i.Member.User),
		avatarURL:   i.Member.User.AvatarURL(""),
	}, nil
}

// messageRequest identifies the author of a prefix command.
func messageRequest(c *bot.MessageCommand) (request, error) {
	m := c.Message
	if m.GuildID == "" || m.Author == nil {
		return request{}, errNotInGuild
	}

	actor, err := parseActor(m.GuildID, m.Author.ID, m.ChannelID)
	if err != nil {
		return request{}, err
	}

	return request{
		actor:       actor,
		lang:        c.Language,
		displayName: displayName(m.Member, m.Author),
		avatarURL:   m.Author.AvatarURL(""),
	}, nil
}

func parseActor(guildID, userID, channelID string) (usecases.ActorInput, error) {
	guild, err := snowflake.Parse(guildID)
	if err != nil {
		return usecases.ActorInput{}, fmt.Errorf("invalid guild ID: %w", err)
	}
	user, err := snowflake.Parse(userID)
	if err != nil {
		return usecases.ActorInput{}, fmt.Errorf("invalid user ID: %w", err)
	}
	channel, err := snowflake.Parse(channelID)
	if err != nil {
		return usecases.ActorInput{}, fmt.Errorf("invalid channel ID: %w", err)
	}

	return usecases.ActorInput{
		GuildID:   guild,
		UserID:    user,
		ChannelID: channel,
	}, nil
}

// displayName prefers the guild nickname, then the global name, then the username.
func displayName(member *discordgo.Member, user *discordgo.User) string {
	if member != nil && member.Nick != "" {
		return member.Nick
	}
	if user.GlobalName != "" {
		return user.GlobalName
	}
	return user.Username
}
