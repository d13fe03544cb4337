package music_player

import (
	"fmt"
	"time"
)

// Config holds the music player module configuration.
type Config struct {
	LavalinkAddress  string `env:"LAVALINK_ADDRESS,notEmpty"`
	LavalinkPassword string `env:"LAVALINK_PASSWORD,notEmpty"`
	LavalinkSecure   bool   `env:"LAVALINK_SECURE" envDefault:"false"`

	QueueCapacity    int           `env:"QUEUE_CAPACITY"     envDefault:"25"`
	MaxTrackDuration time.Duration `env:"MAX_TRACK_DURATION" envDefault:"1h"`
	IdleTimeout      time.Duration `env:"IDLE_TIMEOUT"       envDefault:"30s"`
}

// validate rejects limits the session model can't honor.
func (c *Config) validate() error {
	if c.QueueCapacity <= 0 {
		return fmt.Errorf("QUEUE_CAPACITY must be positive, got %d", c.QueueCapacity)
	}
	if c.MaxTrackDuration <= 0 {
		return fmt.Errorf("MAX_TRACK_DURATION must be positive, got %s", c.MaxTrackDuration)
	}
	if c.IdleTimeout <= 0 {
		return fmt.Errorf("IDLE_TIMEOUT must be positive, got %s", c.IdleTimeout)
	}
	return nil
}
