package infrastructure

import (
	"github.com/bwmarrin/discordgo"
	"github.com/disgoorg/snowflake/v2"
	"github.com/sglre6355/avbot/internal/modules/music_player/application/ports"
)

// VoiceStateProvider reads voice presence from the gateway state cache.
type VoiceStateProvider struct {
	state *discordgo.State
}

// NewVoiceStateProvider creates a new VoiceStateProvider.
func NewVoiceStateProvider(state *discordgo.State) *VoiceStateProvider {
	return &VoiceStateProvider{
		state: state,
	}
}

// GetUserVoiceChannel returns the voice channel ID that the user is currently in.
// Returns 0 if the user is not in a voice channel.
func (v *VoiceStateProvider) GetUserVoiceChannel(
	guildID, userID snowflake.ID,
) (snowflake.ID, error) {
	guild, err := v.state.Guild(guildID.String())
	if err != nil {
		return 0, err
	}

	v.state.RLock()
	defer v.state.RUnlock()

	for _, vs := range guild.VoiceStates {
		if vs.UserID == userID.String() && vs.ChannelID != "" {
			return snowflake.Parse(vs.ChannelID)
		}
	}

	return 0, nil
}

// CountChannelMembers returns how many users, bots included, are connected to the channel.
func (v *VoiceStateProvider) CountChannelMembers(guildID, channelID snowflake.ID) (int, error) {
	guild, err := v.state.Guild(guildID.String())
	if err != nil {
		return 0, err
	}

	v.state.RLock()
	defer v.state.RUnlock()

	count := 0
	for _, vs := range guild.VoiceStates {
		if vs.ChannelID == channelID.String() {
			count++
		}
	}
	return count, nil
}

// Ensure VoiceStateProvider implements ports.VoiceStateProvider.
var _ ports.VoiceStateProvider = (*VoiceStateProvider)(nil)
