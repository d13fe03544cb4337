// Package view renders sessions and command results as Discord embeds, buttons and modals.
package view

// Player button custom IDs.
const (
	PreviousButtonID      = "av_previous"
	PauseButtonID         = "av_pause"
	NextButtonID          = "av_next"
	StopButtonID          = "av_stop"
	AddSongButtonID       = "av_add_song"
	ReplayButtonID        = "av_replay"
	LoopButtonID          = "av_loop"
	QueueButtonID         = "av_queue"
	VolumeButtonID        = "av_volume"
	NotificationsButtonID = "av_notifications"
)

// Modal and input custom IDs.
const (
	AddSongModalID = "av_add_song_modal"
	SongInputID    = "song"
	VolumeModalID  = "av_volume_modal"
	VolumeInputID  = "volume"
)

// Song input length bounds, shared with the slash command option.
const (
	SongMinLength = 2
	SongMaxLength = 50
)
