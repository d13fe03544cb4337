package infrastructure

import (
	"context"
	"fmt"
	"image"
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/cenkalti/dominantcolor"
	"github.com/sglre6355/avbot/internal/modules/music_player/domain"
)

const defaultYouTubeThumbnailBase = "https://img.youtube.com/vi"

// ArtworkResolver picks the best thumbnail for a track and the accent color of an image.
// Results are cached for the lifetime of the process.
type ArtworkResolver struct {
	httpClient    *http.Client
	youTubeBase   string
	thumbnails    sync.Map // track identifier -> thumbnail URL
	accents       sync.Map // image URL -> color
	probeDeadline time.Duration
}

// NewArtworkResolver creates an ArtworkResolver using the public thumbnail hosts.
func NewArtworkResolver() *ArtworkResolver {
	return &ArtworkResolver{
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
		youTubeBase:   defaultYouTubeThumbnailBase,
		probeDeadline: 10 * time.Second,
	}
}

// Thumbnail returns the highest quality artwork URL available for the track.
// For YouTube, it tries different quality levels (maxresdefault, sddefault, etc.).
// For Twitch, it attempts to use a higher resolution version.
// For other sources, it returns the track's own artwork URL.
func (r *ArtworkResolver) Thumbnail(ctx context.Context, track *domain.Track) string {
	key := string(track.Source()) + ":" + track.Identifier
	if cached, ok := r.thumbnails.Load(key); ok {
		return cached.(string)
	}

	var url string
	switch track.Source() {
	case domain.TrackSourceYouTube:
		url = r.youTubeThumbnail(ctx, track.Identifier, track.ArtworkURL)
	case domain.TrackSourceTwitch:
		url = r.twitchThumbnail(ctx, track.ArtworkURL)
	default:
		return track.ArtworkURL
	}

	r.thumbnails.Store(key, url)
	return url
}

func (r *ArtworkResolver) youTubeThumbnail(ctx context.Context, videoID, fallbackURL string) string {
	if videoID == "" {
		return fallbackURL
	}

	ctx, cancel := context.WithTimeout(ctx, r.probeDeadline)
	defer cancel()

	for _, quality := range []string{"maxresdefault", "sddefault", "hqdefault", "mqdefault"} {
		url := fmt.Sprintf("%s/%s/%s.jpg", r.youTubeBase, videoID, quality)
		if r.urlExists(ctx, url) {
			return url
		}
	}

	return fallbackURL
}

func (r *ArtworkResolver) twitchThumbnail(ctx context.Context, artworkURL string) string {
	// Try to get 1280x720 instead of 440x248
	highResURL := strings.Replace(artworkURL, "440x248", "1280x720", 1)
	if highResURL == artworkURL {
		return artworkURL
	}

	ctx, cancel := context.WithTimeout(ctx, r.probeDeadline)
	defer cancel()

	if r.urlExists(ctx, highResURL) {
		return highResURL
	}
	return artworkURL
}

// urlExists checks if a URL returns a successful response using a HEAD request.
func (r *ArtworkResolver) urlExists(ctx context.Context, url string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return false
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return false
	}
	defer func() { _ = resp.Body.Close() }()

	return resp.StatusCode == http.StatusOK
}

// Accent returns the dominant color of a PNG or JPEG image as 0xRRGGBB.
// It returns 0 when the image can't be fetched or decoded, and keeps returning 0 for that URL.
func (r *ArtworkResolver) Accent(ctx context.Context, imageURL string) int {
	if imageURL == "" {
		return 0
	}
	if cached, ok := r.accents.Load(imageURL); ok {
		return cached.(int)
	}

	color, err := r.dominantColor(ctx, imageURL)
	if err != nil {
		slog.Debug("failed to compute artwork color", "url", imageURL, "error", err)
		if ctx.Err() != nil {
			return 0
		}
		// Remember the failure so later renders don't fetch the image again.
		color = 0
	}

	r.accents.Store(imageURL, color)
	return color
}

func (r *ArtworkResolver) dominantColor(ctx context.Context, imageURL string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return 0, err
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch image: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("failed to fetch image: status code %d", resp.StatusCode)
	}

	img, _, err := image.Decode(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("failed to decode image: %w", err)
	}

	rgb := dominantcolor.Find(img)
	return int(rgb.R)<<16 | int(rgb.G)<<8 | int(rgb.B), nil
}
