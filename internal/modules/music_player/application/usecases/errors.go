package usecases

import "errors"

// Domain errors for the music player module.
var (
	// ErrNoActiveSession is returned when the guild has no voice session.
	ErrNoActiveSession = errors.New("no active session")

	// ErrActorNotInVoice is returned when the user is not in a voice channel.
	ErrActorNotInVoice = errors.New("you must be in a voice channel")

	// ErrQueueFull is returned when the session already holds its maximum number of tracks.
	ErrQueueFull = errors.New("the queue is full")

	// ErrTrackNotFound is returned when a search yields no playable track.
	ErrTrackNotFound = errors.New("no track found")

	// ErrTrackTooLong is returned when a track exceeds the duration ceiling.
	ErrTrackTooLong = errors.New("track is too long")

	// ErrInvalidVolume is returned when the volume is outside 0..200.
	ErrInvalidVolume = errors.New("volume must be between 0 and 200")

	// ErrQueueEmpty is returned when the queue is empty.
	ErrQueueEmpty = errors.New("the queue is empty")

	// ErrNoPreviousTrack is returned when there is nothing to go back to.
	ErrNoPreviousTrack = errors.New("no previous track")

	// ErrLoopActive is returned when skipping or going back while loop is enabled.
	ErrLoopActive = errors.New("loop is enabled")

	// ErrNothingPlaying is returned when no track is currently playing.
	ErrNothingPlaying = errors.New("nothing is currently playing")

	// ErrAlreadyPaused is returned when trying to pause while already paused.
	ErrAlreadyPaused = errors.New("playback is already paused")

	// ErrNotPaused is returned when trying to resume while not paused.
	ErrNotPaused = errors.New("playback is not paused")
)
