package view

import (
	"github.com/bwmarrin/discordgo"
	"github.com/sglre6355/avbot/internal/i18n"
)

// AddSongModal asks for a track to play.
func AddSongModal(lang i18n.Language) *discordgo.InteractionResponse {
	return modal(AddSongModalID, i18n.T(lang, "modal.song_title"), discordgo.TextInput{
		CustomID:    SongInputID,
		Label:       i18n.T(lang, "modal.song_label"),
		Style:       discordgo.TextInputShort,
		Placeholder: i18n.T(lang, "modal.song_placeholder"),
		Required:    true,
		MinLength:   SongMinLength,
		MaxLength:   SongMaxLength,
	})
}

// VolumeModal asks for a new volume.
func VolumeModal(lang i18n.Language) *discordgo.InteractionResponse {
	return modal(VolumeModalID, i18n.T(lang, "modal.volume_title"), discordgo.TextInput{
		CustomID:    VolumeInputID,
		Label:       i18n.T(lang, "modal.volume_label"),
		Style:       discordgo.TextInputShort,
		Placeholder: i18n.T(lang, "modal.volume_placeholder"),
		Required:    true,
		MinLength:   1,
		MaxLength:   3,
	})
}

func modal(id, title string, input discordgo.TextInput) *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID: id,
			Title:    title,
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{input},
				},
			},
		},
	}
}

// ModalValue returns the value of the text input with the given ID, or "" if absent.
func ModalValue(data discordgo.ModalSubmitInteractionData, inputID string) string {
	for _, component := range data.Components {
		row, ok := component.(*discordgo.ActionsRow)
		if !ok {
			continue
		}
		for _, c := range row.Components {
			if input, ok := c.(*discordgo.TextInput); ok && input.CustomID == inputID {
				return input.Value
			}
		}
	}
	return ""
}
