package music_player

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"
	"github.com/caarlos0/env/v11"
	"github.com/sglre6355/avbot/internal/bot"
	"github.com/sglre6355/avbot/internal/common/clock"
	"github.com/sglre6355/avbot/internal/modules/music_player/application/events"
	"github.com/sglre6355/avbot/internal/modules/music_player/application/usecases"
	"github.com/sglre6355/avbot/internal/modules/music_player/infrastructure"
	"github.com/sglre6355/avbot/internal/modules/music_player/presentation/discord"
)

func init() {
	bot.Register(&MusicPlayerModule{})
}

// Compile-time interface checks.
var (
	_ bot.ConfigurableModule   = (*MusicPlayerModule)(nil)
	_ bot.ComponentModule      = (*MusicPlayerModule)(nil)
	_ bot.AutocompleteModule   = (*MusicPlayerModule)(nil)
	_ bot.MessageCommandModule = (*MusicPlayerModule)(nil)
	_ bot.StatusReporter       = (*MusicPlayerModule)(nil)
)

// MusicPlayerModule provides music playback commands.
type MusicPlayerModule struct {
	config          *Config
	handlers        *discord.Handlers
	eventHandlers   *discord.EventHandlers
	lavalinkAdapter *infrastructure.LavalinkAdapter
	sessions        *usecases.SessionManager

	// Event-driven components
	eventBus  *events.Bus
	lifecycle *events.TrackLifecycleHandler
	cancel    context.CancelFunc
}

// Name returns the module name.
func (m *MusicPlayerModule) Name() string {
	return "music_player"
}

// Commands returns the slash commands for this module.
func (m *MusicPlayerModule) Commands() []*discordgo.ApplicationCommand {
	return discord.Commands()
}

// CommandHandlers returns the command handlers for this module.
func (m *MusicPlayerModule) CommandHandlers() map[string]bot.InteractionHandler {
	return map[string]bot.InteractionHandler{
		"music": m.handlers.HandleMusic,
	}
}

// ComponentHandlers returns the player button and modal handlers.
func (m *MusicPlayerModule) ComponentHandlers() map[string]bot.InteractionHandler {
	return m.handlers.ComponentHandlers()
}

// AutocompleteHandlers returns the autocomplete handlers for this module.
func (m *MusicPlayerModule) AutocompleteHandlers() map[string]bot.InteractionHandler {
	return m.handlers.AutocompleteHandlers()
}

// MessageCommands returns the prefix command handlers for this module.
func (m *MusicPlayerModule) MessageCommands() map[string]bot.MessageHandler {
	return m.handlers.MessageCommands()
}

// EventHandlers returns the event handlers for this module.
func (m *MusicPlayerModule) EventHandlers() []bot.EventHandler {
	return []bot.EventHandler{
		func(s *discordgo.Session, event *discordgo.VoiceServerUpdate) {
			m.handleVoiceServerUpdate(s, event)
		},
		func(s *discordgo.Session, event *discordgo.VoiceStateUpdate) {
			m.handleVoiceStateUpdate(s, event)
		},
	}
}

// LoadConfig loads module-specific configuration from environment variables.
func (m *MusicPlayerModule) LoadConfig() error {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return err
	}
	if err := cfg.validate(); err != nil {
		return err
	}
	m.config = cfg
	return nil
}

// Init initializes the module.
func (m *MusicPlayerModule) Init(deps bot.ModuleDependencies) error {
	if m.config == nil {
		return errors.New("music_player configuration is not loaded")
	}
	if deps.Session == nil || deps.Session.State == nil || deps.Session.State.User == nil {
		return errors.New("music_player requires a connected Discord session")
	}

	lavalinkAdapter, err := infrastructure.NewLavalinkAdapter(deps.Session, infrastructure.LavalinkConfig{
		Address:  m.config.LavalinkAddress,
		Password: m.config.LavalinkPassword,
		Secure:   m.config.LavalinkSecure,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to Lavalink: %w", err)
	}
	m.lavalinkAdapter = lavalinkAdapter

	// Lavalink events reach the sessions through the bus.
	m.eventBus = events.NewBus(events.DefaultEventBufferSize)
	lavalinkAdapter.SetEventPublisher(m.eventBus)

	presenter := infrastructure.NewPlayerPresenter(deps.Session, infrastructure.NewArtworkResolver())
	watchdog := usecases.NewIdleWatchdog(&clock.DefaultClock{}, m.config.IdleTimeout)

	m.sessions = usecases.NewSessionManager(
		infrastructure.NewMemoryRepository(),
		usecases.NewSessionLocks(),
		lavalinkAdapter,
		lavalinkAdapter,
		infrastructure.NewVoiceStateProvider(deps.Session.State),
		presenter,
		watchdog,
	)

	trackLoader := usecases.NewTrackLoaderService(lavalinkAdapter)
	queue := usecases.NewQueueService(m.sessions, trackLoader, usecases.Limits{
		QueueCapacity:    m.config.QueueCapacity,
		MaxTrackDuration: m.config.MaxTrackDuration,
	})
	playback := usecases.NewPlaybackService(m.sessions)
	voiceChannel := usecases.NewVoiceChannelService(m.sessions)
	notifications := usecases.NewNotificationService(m.sessions)

	var ctx context.Context
	ctx, m.cancel = context.WithCancel(context.Background())
	m.lifecycle = events.NewTrackLifecycleHandler(playback, m.eventBus)
	m.lifecycle.Start(ctx)

	m.handlers = discord.NewHandlers(queue, playback, voiceChannel, notifications, trackLoader)
	m.eventHandlers = discord.NewEventHandlers(voiceChannel)

	slog.Info("music_player module initialized",
		"queue_capacity", m.config.QueueCapacity,
		"max_track_duration", m.config.MaxTrackDuration,
		"idle_timeout", m.config.IdleTimeout,
	)

	return nil
}

// Status reports live sessions and Lavalink nodes.
func (m *MusicPlayerModule) Status() any {
	status := map[string]any{
		"sessions": []usecases.SessionSummary{},
		"nodes":    []infrastructure.NodeStatus{},
	}
	if m.sessions != nil {
		status["sessions"] = m.sessions.Summaries()
	}
	if m.lavalinkAdapter != nil {
		status["nodes"] = m.lavalinkAdapter.Nodes()
	}
	return status
}

// Shutdown cleans up module resources.
func (m *MusicPlayerModule) Shutdown() error {
	// Cancel context first to signal event handlers to stop
	if m.cancel != nil {
		m.cancel()
	}
	if m.lifecycle != nil {
		m.lifecycle.Stop()
	}

	if m.eventBus != nil {
		m.eventBus.Close()
	}

	if m.lavalinkAdapter != nil {
		m.lavalinkAdapter.Close()
	}

	return nil
}

// Event handlers.

func (m *MusicPlayerModule) handleVoiceServerUpdate(
	_ *discordgo.Session,
	event *discordgo.VoiceServerUpdate,
) {
	if m.lavalinkAdapter != nil {
		m.lavalinkAdapter.OnVoiceServerUpdate(event)
	}
}

func (m *MusicPlayerModule) handleVoiceStateUpdate(
	s *discordgo.Session,
	event *discordgo.VoiceStateUpdate,
) {
	// The adapter must see the update first: a pending join waits on it while
	// holding the guild lock that the presence check takes.
	if m.lavalinkAdapter != nil {
		m.lavalinkAdapter.OnVoiceStateUpdate(event)
	}
	if m.eventHandlers != nil {
		m.eventHandlers.HandleVoiceStateUpdate(s, event)
	}
}
