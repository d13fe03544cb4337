package bot

import "github.com/bwmarrin/discordgo"

// InteractionHandler handles a Discord interaction and returns a response.
type InteractionHandler func(s *discordgo.Session, i *discordgo.InteractionCreate, r Responder) error

// MessageHandler handles a prefix command.
type MessageHandler func(s *discordgo.Session, c *MessageCommand, r MessageResponder) error

// EventHandler is a generic handler for any Discord event.
// It should be a function matching one of discordgo's handler signatures,
// e.g., func(s *discordgo.Session, m *discordgo.VoiceStateUpdate)
type EventHandler any

// ModuleDependencies provides dependencies that modules may need during initialization.
type ModuleDependencies struct {
	// Session is connected; Session.State.User is the bot user.
	Session *discordgo.Session
	Config  *Config
}

// Module defines the interface that all bot modules must implement.
type Module interface {
	// Name returns the unique identifier for this module.
	Name() string

	// Commands returns the slash commands that this module provides.
	Commands() []*discordgo.ApplicationCommand

	// CommandHandlers returns a map of command names to their handlers.
	CommandHandlers() map[string]InteractionHandler

	// EventHandlers returns event handlers for this module.
	// Each handler should match a discordgo handler signature.
	EventHandlers() []EventHandler

	// Init initializes the module with the provided dependencies.
	Init(deps ModuleDependencies) error

	// Shutdown gracefully shuts down the module.
	Shutdown() error
}

// ConfigurableModule is an optional interface for modules that need configuration.
// Modules implementing this interface will have LoadConfig called before Init.
type ConfigurableModule interface {
	// LoadConfig loads and validates module-specific configuration.
	// Called before Init() and before Discord connection is established.
	// Should return an error if required configuration is missing or invalid.
	LoadConfig() error
}

// ComponentModule is an optional interface for modules handling buttons and modal submits.
type ComponentModule interface {
	// ComponentHandlers returns a map of custom IDs to their handlers.
	ComponentHandlers() map[string]InteractionHandler
}

// AutocompleteModule is an optional interface for modules that suggest option values.
type AutocompleteModule interface {
	// AutocompleteHandlers returns a map of command names to their handlers.
	// Handlers respond with InteractionApplicationCommandAutocompleteResult.
	AutocompleteHandlers() map[string]InteractionHandler
}

// MessageCommandModule is an optional interface for modules with prefix commands.
type MessageCommandModule interface {
	// MessageCommands returns a map of lowercase command names to their handlers.
	MessageCommands() map[string]MessageHandler
}

// StatusReporter is an optional interface for modules exposing state on the status server.
type StatusReporter interface {
	// Status returns a JSON-serializable snapshot.
	Status() any
}
