package domain

import (
	"strconv"
	"time"

	"github.com/disgoorg/snowflake/v2"
)

// Track represents a resolved, playable audio track.
type Track struct {
	Encoded            string // Lavalink encoded track data
	Identifier         string
	Title              string
	Artist             string
	Duration           time.Duration
	URI                string
	ArtworkURL         string
	SourceName         string // e.g., "youtube", "soundcloud"
	IsStream           bool
	RequesterID        snowflake.ID
	RequesterName      string
	RequesterAvatarURL string
}

// Source returns the parsed TrackSource for this track.
func (t *Track) Source() TrackSource {
	return ParseTrackSource(t.SourceName)
}

// Exceeds reports whether the track cannot be played under the given duration ceiling.
// Streams have no finite length and always exceed it.
func (t *Track) Exceeds(ceiling time.Duration) bool {
	return t.IsStream || t.Duration > ceiling
}

// FormattedDuration returns the duration as mm:ss or hh:mm:ss.
// Streams return an empty string; callers render their own live label.
func (t *Track) FormattedDuration() string {
	if t.IsStream {
		return ""
	}
	return FormatDuration(t.Duration)
}

// FormatDuration formats d as mm:ss, or hh:mm:ss when it is an hour or longer.
func FormatDuration(d time.Duration) string {
	totalSeconds := int(d.Seconds())
	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	seconds := totalSeconds % 60

	if hours > 0 {
		return pad(hours) + ":" + pad(minutes) + ":" + pad(seconds)
	}
	return pad(minutes) + ":" + pad(seconds)
}

func pad(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
