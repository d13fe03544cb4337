package infrastructure

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/disgoorg/snowflake/v2"
	"github.com/sglre6355/avbot/internal/modules/music_player/application/ports"
	"github.com/sglre6355/avbot/internal/modules/music_player/domain"
	"github.com/sglre6355/avbot/internal/modules/music_player/view"
)

// PlayerPresenter renders player messages through the Discord REST API.
type PlayerPresenter struct {
	session *discordgo.Session
	artwork *ArtworkResolver
}

// NewPlayerPresenter creates a new PlayerPresenter.
func NewPlayerPresenter(session *discordgo.Session, artwork *ArtworkResolver) *PlayerPresenter {
	return &PlayerPresenter{
		session: session,
		artwork: artwork,
	}
}

// SendPlayer posts a new player message to the channel and returns its ID.
func (p *PlayerPresenter) SendPlayer(
	ctx context.Context,
	channelID snowflake.ID,
	v ports.PlayerView,
) (snowflake.ID, error) {
	embed, components := p.render(ctx, v)

	msg, err := p.session.ChannelMessageSendComplex(channelID.String(), &discordgo.MessageSend{
		Embeds:     []*discordgo.MessageEmbed{embed},
		Components: components,
	}, discordgo.WithContext(ctx))
	if err != nil {
		return 0, fmt.Errorf("failed to send player message: %w", err)
	}

	messageID, err := snowflake.Parse(msg.ID)
	if err != nil {
		return 0, err
	}
	return messageID, nil
}

// EditPlayer replaces the embed and controls of an existing player message.
func (p *PlayerPresenter) EditPlayer(ctx context.Context, ref domain.MessageRef, v ports.PlayerView) error {
	embed, components := p.render(ctx, v)

	edit := discordgo.NewMessageEdit(ref.ChannelID.String(), ref.MessageID.String()).
		SetEmbeds([]*discordgo.MessageEmbed{embed})
	edit.Components = &components

	if _, err := p.session.ChannelMessageEditComplex(edit, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to edit player message: %w", err)
	}
	return nil
}

// render swaps in the best artwork for the track before building the message.
// The view's track is copied, never modified.
func (p *PlayerPresenter) render(
	ctx context.Context,
	v ports.PlayerView,
) (*discordgo.MessageEmbed, []discordgo.MessageComponent) {
	if v.Track == nil || p.artwork == nil {
		return view.Player(v, 0)
	}
	if v.State != ports.PlayerPlaying && v.State != ports.PlayerEnded {
		return view.Player(v, 0)
	}

	track := *v.Track
	track.ArtworkURL = p.artwork.Thumbnail(ctx, &track)
	v.Track = &track

	var accent int
	if v.State == ports.PlayerPlaying {
		accent = p.artwork.Accent(ctx, track.ArtworkURL)
	}
	return view.Player(v, accent)
}

var _ ports.PlayerPresenter = (*PlayerPresenter)(nil)
