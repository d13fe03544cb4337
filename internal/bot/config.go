package bot

import (
	"errors"
	"io/fs"
	"log/slog"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the bot configuration loaded from environment variables.
type Config struct {
	DiscordToken  string `env:"DISCORD_TOKEN,notEmpty"`
	CommandPrefix string `env:"COMMAND_PREFIX"         envDefault:"!"`

	// StatusAddress is the listen address of the status server. Empty disables it.
	StatusAddress string `env:"STATUS_ADDRESS"`

	// Per-user throttling shared by interactions and prefix commands.
	InteractionRate  float64 `env:"INTERACTION_RATE"  envDefault:"2"`
	InteractionBurst int     `env:"INTERACTION_BURST" envDefault:"5"`
}

// LoadConfig loads configuration from environment variables.
// Variables from a .env file in the working directory are loaded first, if it exists.
// Returns an error if required fields are missing.
func LoadConfig() (*Config, error) {
	LoadDotEnv()

	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadDotEnv reads .env into the process environment without overriding set variables.
func LoadDotEnv() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("failed to load .env file", "error", err)
	}
}
