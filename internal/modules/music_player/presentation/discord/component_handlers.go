package discord

import (
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/sglre6355/avbot/internal/bot"
	"github.com/sglre6355/avbot/internal/i18n"
	"github.com/sglre6355/avbot/internal/modules/music_player/application/usecases"
	"github.com/sglre6355/avbot/internal/modules/music_player/view"
)

// ComponentHandlers returns the player button and modal handlers keyed by custom ID.
// Every control re-checks the session preconditions, since any member can press it.
func (h *Handlers) ComponentHandlers() map[string]bot.InteractionHandler {
	return map[string]bot.InteractionHandler{
		view.PreviousButtonID:      h.handleButton(h.previous),
		view.PauseButtonID:         h.handleButton(h.togglePause),
		view.NextButtonID:          h.handleButton(h.skip),
		view.StopButtonID:          h.handleButton(h.stop),
		view.ReplayButtonID:        h.handleButton(h.replay),
		view.LoopButtonID:          h.handleButton(h.loop),
		view.QueueButtonID:         h.handleButton(h.viewQueue),
		view.NotificationsButtonID: h.handleButton(h.cycleNotifications),
		view.AddSongButtonID:       openModal(view.AddSongModal),
		view.VolumeButtonID:        openModal(view.VolumeModal),
		view.AddSongModalID:        h.HandleAddSongModal,
		view.VolumeModalID:         h.HandleVolumeModal,
	}
}

func (h *Handlers) handleButton(fn intent) bot.InteractionHandler {
	return func(_ *discordgo.Session, i *discordgo.InteractionCreate, r bot.Responder) error {
		req, err := interactionRequest(i)
		if err != nil {
			return err
		}
		return h.run(req, &interactionReply{r: r, update: true}, fn)
	}
}

func openModal(modal func(i18n.Language) *discordgo.InteractionResponse) bot.InteractionHandler {
	return func(_ *discordgo.Session, i *discordgo.InteractionCreate, r bot.Responder) error {
		return r.Respond(modal(i18n.ResolveInteraction(i.Interaction)))
	}
}

// HandleAddSongModal plays the track entered in the add-song modal.
func (h *Handlers) HandleAddSongModal(
	_ *discordgo.Session,
	i *discordgo.InteractionCreate,
	r bot.Responder,
) error {
	req, err := interactionRequest(i)
	if err != nil {
		return err
	}

	query := strings.TrimSpace(view.ModalValue(i.ModalSubmitData(), view.SongInputID))
	out := &interactionReply{r: r, update: true}
	if query == "" {
		return h.run(req, out, rejected(usecases.ErrTrackNotFound))
	}

	if err := out.acknowledge(); err != nil {
		return err
	}
	return h.run(req, out, h.play(query))
}

// HandleVolumeModal applies the volume entered in the volume modal.
func (h *Handlers) HandleVolumeModal(
	_ *discordgo.Session,
	i *discordgo.InteractionCreate,
	r bot.Responder,
) error {
	req, err := interactionRequest(i)
	if err != nil {
		return err
	}

	volume := parseVolume(view.ModalValue(i.ModalSubmitData(), view.VolumeInputID))
	return h.run(req, &interactionReply{r: r, update: true}, h.volume(volume))
}
