// Package discord binds the music player use cases to Discord commands, buttons and events.
package discord

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/sglre6355/avbot/internal/i18n"
	"github.com/sglre6355/avbot/internal/modules/music_player/application/usecases"
	"github.com/sglre6355/avbot/internal/modules/music_player/domain"
	"github.com/sglre6355/avbot/internal/modules/music_player/view"
)

// maxConfirmTitleLength bounds track titles quoted in confirmations.
const maxConfirmTitleLength = 80

// commandTimeout bounds a single intent, including voice joins and searches.
const commandTimeout = 30 * time.Second

// Handlers runs player intents for every Discord surface.
type Handlers struct {
	queue         *usecases.QueueService
	playback      *usecases.PlaybackService
	voiceChannel  *usecases.VoiceChannelService
	notifications *usecases.NotificationService
	trackLoader   *usecases.TrackLoaderService
}

// NewHandlers creates new Handlers.
func NewHandlers(
	queue *usecases.QueueService,
	playback *usecases.PlaybackService,
	voiceChannel *usecases.VoiceChannelService,
	notifications *usecases.NotificationService,
	trackLoader *usecases.TrackLoaderService,
) *Handlers {
	return &Handlers{
		queue:         queue,
		playback:      playback,
		voiceChannel:  voiceChannel,
		notifications: notifications,
		trackLoader:   trackLoader,
	}
}

// request is an intent issued by a guild member.
type request struct {
	actor       usecases.ActorInput
	lang        i18n.Language
	displayName string
	avatarURL   string
}

// intent is a player action with its result delivery.
type intent func(ctx context.Context, req request, out reply) error

// run executes fn and reports known failures to the actor.
// Any other error is returned to the bot boundary.
func (h *Handlers) run(req request, out reply, fn intent) error {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	err := fn(ctx, req, out)
	if err == nil {
		return nil
	}

	if msg, ok := h.errorMessage(req.lang, err); ok {
		return out.private(view.Error(req.lang, msg))
	}

	out.abort()
	return err
}

func (h *Handlers) play(query string) intent {
	return func(ctx context.Context, req request, out reply) error {
		output, err := h.queue.Play(ctx, usecases.PlayInput{
			ActorInput:         req.actor,
			Query:              query,
			Language:           req.lang,
			RequesterName:      req.displayName,
			RequesterAvatarURL: req.avatarURL,
		})
		if err != nil {
			return err
		}

		title := view.Truncate(output.Track.Title, maxConfirmTitleLength)
		msg := i18n.T(req.lang, "confirm.started", title)
		if !output.Started {
			msg = i18n.T(req.lang, "confirm.queued", title, output.Position)
		}
		return out.confirm(view.Confirmation(msg), output.NotificationLevel)
	}
}

func (h *Handlers) togglePause(ctx context.Context, req request, out reply) error {
	output, err := h.playback.TogglePause(ctx, req.actor)
	if err != nil {
		return err
	}
	return out.confirm(pauseConfirmation(req.lang, output), output.NotificationLevel)
}

func (h *Handlers) pause(ctx context.Context, req request, out reply) error {
	output, err := h.playback.Pause(ctx, req.actor)
	if err != nil {
		return err
	}
	return out.confirm(pauseConfirmation(req.lang, output), output.NotificationLevel)
}

func (h *Handlers) resume(ctx context.Context, req request, out reply) error {
	output, err := h.playback.Resume(ctx, req.actor)
	if err != nil {
		return err
	}
	return out.confirm(pauseConfirmation(req.lang, output), output.NotificationLevel)
}

func pauseConfirmation(lang i18n.Language, output *usecases.PauseOutput) *discordgo.MessageEmbed {
	if output.Paused {
		return view.Confirmation(i18n.T(lang, "confirm.paused"))
	}
	return view.Confirmation(i18n.T(lang, "confirm.resumed"))
}

func (h *Handlers) skip(ctx context.Context, req request, out reply) error {
	output, err := h.playback.Skip(ctx, req.actor)
	if err != nil {
		return err
	}
	return out.confirm(trackConfirmation(req.lang, "confirm.skipped", output), output.NotificationLevel)
}

func (h *Handlers) previous(ctx context.Context, req request, out reply) error {
	output, err := h.playback.Previous(ctx, req.actor)
	if err != nil {
		return err
	}
	return out.confirm(trackConfirmation(req.lang, "confirm.previous", output), output.NotificationLevel)
}

func (h *Handlers) replay(ctx context.Context, req request, out reply) error {
	output, err := h.playback.Replay(ctx, req.actor)
	if err != nil {
		return err
	}
	return out.confirm(trackConfirmation(req.lang, "confirm.replay", output), output.NotificationLevel)
}

func trackConfirmation(lang i18n.Language, key string, output *usecases.TrackOutput) *discordgo.MessageEmbed {
	return view.Confirmation(i18n.T(lang, key, view.Truncate(output.Track.Title, maxConfirmTitleLength)))
}

func (h *Handlers) stop(ctx context.Context, req request, out reply) error {
	output, err := h.voiceChannel.Stop(ctx, req.actor)
	if err != nil {
		return err
	}
	return out.confirm(view.Confirmation(i18n.T(req.lang, "confirm.stopped")), output.NotificationLevel)
}

func (h *Handlers) loop(ctx context.Context, req request, out reply) error {
	output, err := h.playback.ToggleLoop(ctx, req.actor)
	if err != nil {
		return err
	}

	key := "confirm.loop_off"
	if output.Enabled {
		key = "confirm.loop_on"
	}
	return out.confirm(view.Confirmation(i18n.T(req.lang, key)), output.NotificationLevel)
}

func (h *Handlers) viewQueue(ctx context.Context, req request, out reply) error {
	output, err := h.queue.List(ctx, req.actor)
	if err != nil {
		return err
	}
	return out.private(view.Queue(req.lang, output.Tracks))
}

func (h *Handlers) volume(volume int) intent {
	return func(ctx context.Context, req request, out reply) error {
		output, err := h.playback.SetVolume(ctx, usecases.SetVolumeInput{
			ActorInput: req.actor,
			Volume:     volume,
		})
		if err != nil {
			return err
		}
		return out.confirm(view.Confirmation(i18n.T(req.lang, "confirm.volume", output.Volume)), output.NotificationLevel)
	}
}

func (h *Handlers) cycleNotifications(ctx context.Context, req request, out reply) error {
	output, err := h.notifications.Cycle(ctx, req.actor)
	if err != nil {
		return err
	}

	var key string
	switch output.Level {
	case domain.NotificationPublic:
		key = "confirm.notifications_public"
	case domain.NotificationPrivate:
		key = "confirm.notifications_private"
	default:
		key = "confirm.notifications_silent"
	}
	return out.public(view.Confirmation(i18n.T(req.lang, key)))
}

// errorMessage returns the localized description of a known failure.
func (h *Handlers) errorMessage(lang i18n.Language, err error) (string, bool) {
	switch {
	case errors.Is(err, usecases.ErrNoActiveSession):
		return i18n.T(lang, "error.no_active_session"), true
	case errors.Is(err, usecases.ErrActorNotInVoice):
		return i18n.T(lang, "error.actor_not_in_voice"), true
	case errors.Is(err, usecases.ErrQueueFull):
		return i18n.T(lang, "error.queue_full", h.queue.Capacity()), true
	case errors.Is(err, usecases.ErrTrackNotFound):
		return i18n.T(lang, "error.track_not_found"), true
	case errors.Is(err, usecases.ErrTrackTooLong):
		return i18n.T(lang, "error.track_too_long", domain.FormatDuration(h.queue.MaxTrackDuration())), true
	case errors.Is(err, usecases.ErrInvalidVolume):
		return i18n.T(lang, "error.invalid_volume"), true
	case errors.Is(err, usecases.ErrQueueEmpty):
		return i18n.T(lang, "error.queue_empty"), true
	case errors.Is(err, usecases.ErrNoPreviousTrack):
		return i18n.T(lang, "error.no_previous_track"), true
	case errors.Is(err, usecases.ErrLoopActive):
		return i18n.T(lang, "error.loop_active"), true
	case errors.Is(err, usecases.ErrNothingPlaying):
		return i18n.T(lang, "error.nothing_playing"), true
	case errors.Is(err, usecases.ErrAlreadyPaused):
		return i18n.T(lang, "error.already_paused"), true
	case errors.Is(err, usecases.ErrNotPaused):
		return i18n.T(lang, "error.not_paused"), true
	default:
		return "", false
	}
}
