package i18n

// englishMessages contains all English translations
var englishMessages = map[string]string{
	// Errors
	"error.title":              "Error",
	"error.generic":            "Something went wrong while processing your command. Please try again.",
	"error.unknown_command":    "This command is not recognized.",
	"error.rate_limited":       "You're going too fast. Please wait a moment.",
	"error.no_active_session":  "The bot is not connected to a voice channel.",
	"error.actor_not_in_voice": "You must be in a voice channel to do that.",
	"error.queue_full":         "The queue is full (up to %d tracks).",
	"error.track_not_found":    "Nothing was found for your query.",
	"error.track_too_long":     "Tracks longer than %s can't be played.",
	"error.invalid_volume":     "Volume must be an integer from 0 to 200.",
	"error.queue_empty":        "The queue is empty.",
	"error.no_previous_track":  "There is no previous track.",
	"error.loop_active":        "Turn off the loop first.",
	"error.nothing_playing":    "Nothing is playing right now.",
	"error.already_paused":     "Playback is already paused.",
	"error.not_paused":         "Playback is already running.",

	// Confirmations
	"confirm.started":               "Now playing **%s**.",
	"confirm.queued":                "**%s** added to the queue at position %d.",
	"confirm.paused":                "Playback paused.",
	"confirm.resumed":               "Playback resumed.",
	"confirm.skipped":               "Skipped to **%s**.",
	"confirm.previous":              "Back to **%s**.",
	"confirm.stopped":               "Playback stopped. See you!",
	"confirm.loop_on":               "Looping the current track.",
	"confirm.loop_off":              "Loop turned off.",
	"confirm.volume":                "Volume set to %d%%.",
	"confirm.replay":                "Playing **%s** from the start.",
	"confirm.notifications_public":  "Player notifications are now visible to everyone.",
	"confirm.notifications_private": "Player notifications are now sent only to whoever presses a button.",
	"confirm.notifications_silent":  "Player notifications are now off.",

	// Player
	"player.title":               "Now playing",
	"player.field_artist":        "Artist",
	"player.field_duration":      "Duration",
	"player.field_requester":     "Requested by",
	"player.field_volume":        "Volume",
	"player.field_queue":         "In queue",
	"player.footer_loop":         "Loop is on",
	"player.live":                "LIVE",
	"player.waiting_title":       "The queue is empty",
	"player.waiting":             "Waiting for new tracks. I'll leave in %d seconds if nothing is added.",
	"player.destroyed_title":     "Player closed",
	"player.destroyed":           "Nothing was added for a while, so I left the voice channel.",
	"player.channel_empty_title": "The channel is empty",
	"player.channel_empty":       "Everyone left the voice channel, so I disconnected.",
	"player.ended":               "Playback ended",

	// Queue
	"queue.title":  "Queue",
	"queue.entry":  "%d. %s `%s`",
	"queue.footer": "Tracks in queue: %d",

	// Modals
	"modal.song_title":         "Add track to the queue",
	"modal.song_label":         "Song",
	"modal.song_placeholder":   "Title or link",
	"modal.volume_title":       "Change player volume",
	"modal.volume_label":       "Volume",
	"modal.volume_placeholder": "Integer from 0 to 200",

	// Info
	"info.ping": "Pong! Current latency: `%dms`",

	// Command metadata
	"command.music":                     "music",
	"command.music.description":         "Music player commands",
	"command.play":                      "play",
	"command.play.description":          "Play a track or add it to the queue",
	"command.play.song":                 "song",
	"command.play.song.description":     "Title or link",
	"command.pause":                     "pause",
	"command.pause.description":         "Pause playback",
	"command.resume":                    "resume",
	"command.resume.description":        "Resume playback",
	"command.skip":                      "skip",
	"command.skip.description":          "Skip to the next track",
	"command.stop":                      "stop",
	"command.stop.description":          "Stop playback and leave the channel",
	"command.previous":                  "previous",
	"command.previous.description":      "Go back to the previous track",
	"command.loop":                      "loop",
	"command.loop.description":          "Toggle looping of the current track",
	"command.queue":                     "queue",
	"command.queue.description":         "Show the queue",
	"command.volume":                    "volume",
	"command.volume.description":        "Change the player volume",
	"command.volume.volume":             "volume",
	"command.volume.volume.description": "Integer from 0 to 200",
	"command.replay":                    "replay",
	"command.replay.description":        "Play the current track from the start",
	"command.ping":                      "ping",
	"command.ping.description":          "Show the bot latency",
}
