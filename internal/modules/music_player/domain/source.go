package domain

// TrackSource represents the origin platform of a track.
type TrackSource string

const (
	TrackSourceYouTube    TrackSource = "youtube"
	TrackSourceSoundCloud TrackSource = "soundcloud"
	TrackSourceBandcamp   TrackSource = "bandcamp"
	TrackSourceTwitch     TrackSource = "twitch"
	TrackSourceHTTP       TrackSource = "http"
	TrackSourceOther      TrackSource = "other"
)

// ParseTrackSource converts a Lavalink source name to a TrackSource.
func ParseTrackSource(name string) TrackSource {
	switch TrackSource(name) {
	case TrackSourceYouTube, TrackSourceSoundCloud, TrackSourceBandcamp, TrackSourceTwitch,
		TrackSourceHTTP:
		return TrackSource(name)
	default:
		return TrackSourceOther
	}
}

// Color returns the brand color used for embeds when no artwork color is known.
func (s TrackSource) Color() int {
	switch s {
	case TrackSourceYouTube:
		return 0xFF0000
	case TrackSourceSoundCloud:
		return 0xFF5500
	case TrackSourceBandcamp:
		return 0x1DA0C3
	case TrackSourceTwitch:
		return 0x9146FF
	default:
		return 0x5865F2
	}
}
