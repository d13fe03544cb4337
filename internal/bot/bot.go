package bot

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"
	"github.com/sglre6355/avbot/internal/i18n"
)

// Intents requested from the gateway. Message content is needed for prefix commands,
// voice states for the voice channel cache.
const intents = discordgo.IntentsGuilds |
	discordgo.IntentsGuildVoiceStates |
	discordgo.IntentsGuildMessages |
	discordgo.IntentsMessageContent

// Bot manages the Discord bot lifecycle and module coordination.
type Bot struct {
	config  *Config
	session *discordgo.Session
	modules []Module

	handlers        map[string]InteractionHandler
	components      map[string]InteractionHandler
	autocomplete    map[string]InteractionHandler
	messageHandlers map[string]MessageHandler

	limiter *UserLimiter
	status  *StatusServer

	newResponder        func(s *discordgo.Session, i *discordgo.Interaction) Responder
	newMessageResponder func(s *discordgo.Session, m *discordgo.Message) MessageResponder
}

// NewBot creates a new Bot instance with the given configuration.
func NewBot(cfg *Config) *Bot {
	return &Bot{
		config:          cfg,
		modules:         make([]Module, 0),
		handlers:        make(map[string]InteractionHandler),
		components:      make(map[string]InteractionHandler),
		autocomplete:    make(map[string]InteractionHandler),
		messageHandlers: make(map[string]MessageHandler),
		limiter:         NewUserLimiter(cfg.InteractionRate, cfg.InteractionBurst),
		newResponder: func(s *discordgo.Session, i *discordgo.Interaction) Responder {
			return NewDiscordResponder(s, i)
		},
		newMessageResponder: func(s *discordgo.Session, m *discordgo.Message) MessageResponder {
			return NewDiscordMessageResponder(s, m)
		},
	}
}

// LoadModules loads modules from the global registry.
func (b *Bot) LoadModules() {
	b.modules = Modules()
}

// Start loads module configuration, connects to Discord, initializes modules,
// and registers commands.
func (b *Bot) Start() error {
	if err := b.loadModuleConfigs(); err != nil {
		return fmt.Errorf("failed to load module config: %w", err)
	}

	// Create Discord session
	session, err := discordgo.New("Bot " + b.config.DiscordToken)
	if err != nil {
		return fmt.Errorf("failed to create Discord session: %w", err)
	}
	session.Identify.Intents = intents
	b.session = session

	// Open connection; modules need the bot user from the ready state
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	// Initialize modules
	if err := b.initModules(); err != nil {
		return fmt.Errorf("failed to initialize modules: %w", err)
	}

	// Build handler maps
	b.buildHandlerMap()

	// Register interaction and prefix command handlers
	b.session.AddHandler(b.handleInteraction)
	b.session.AddHandler(b.handleMessage)

	// Register module event handlers
	b.registerEventHandlers()

	// Register commands
	if err := b.registerCommands(); err != nil {
		return fmt.Errorf("failed to register commands: %w", err)
	}

	if b.config.StatusAddress != "" {
		b.status = NewStatusServer(b.config.StatusAddress, b.modules)
		b.status.Start()
	}

	slog.Info("started bot",
		"user_id", b.session.State.User.ID,
		"username", b.session.State.User.Username,
	)

	return nil
}

// Stop gracefully shuts down the bot.
func (b *Bot) Stop() error {
	if b.status != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := b.status.Shutdown(ctx); err != nil {
			slog.Warn("failed to shutdown status server", "error", err)
		}
		cancel()
	}

	// Shutdown modules
	for _, mod := range b.modules {
		if err := mod.Shutdown(); err != nil {
			slog.Warn("failed to shutdown module", "module", mod.Name(), "error", err)
		}
	}

	// Close Discord session
	if b.session != nil {
		return b.session.Close()
	}

	return nil
}

// loadModuleConfigs calls LoadConfig on every ConfigurableModule.
func (b *Bot) loadModuleConfigs() error {
	for _, mod := range b.modules {
		if cm, ok := mod.(ConfigurableModule); ok {
			if err := cm.LoadConfig(); err != nil {
				return fmt.Errorf("failed to load %s module config: %w", mod.Name(), err)
			}
		}
	}
	return nil
}

// initModules initializes all loaded modules.
func (b *Bot) initModules() error {
	deps := ModuleDependencies{
		Session: b.session,
		Config:  b.config,
	}

	for _, mod := range b.modules {
		if err := mod.Init(deps); err != nil {
			return fmt.Errorf("failed to initialize %s module: %w", mod.Name(), err)
		}
		slog.Debug("initialized module", "module", mod.Name())
	}

	moduleNames := make([]string, len(b.modules))
	for i, mod := range b.modules {
		moduleNames[i] = mod.Name()
	}
	slog.Info("initialized modules", "modules", moduleNames)

	return nil
}

// buildHandlerMap builds the command name and custom ID to handler mappings.
func (b *Bot) buildHandlerMap() {
	for _, mod := range b.modules {
		maps.Copy(b.handlers, mod.CommandHandlers())

		if cm, ok := mod.(ComponentModule); ok {
			maps.Copy(b.components, cm.ComponentHandlers())
		}
		if am, ok := mod.(AutocompleteModule); ok {
			maps.Copy(b.autocomplete, am.AutocompleteHandlers())
		}
		if mm, ok := mod.(MessageCommandModule); ok {
			maps.Copy(b.messageHandlers, mm.MessageCommands())
		}
	}
}

// registerEventHandlers registers all module event handlers with the session.
func (b *Bot) registerEventHandlers() {
	for _, mod := range b.modules {
		for _, handler := range mod.EventHandlers() {
			b.session.AddHandler(handler)
		}
	}
}

// collectCommands gathers all commands from loaded modules.
func (b *Bot) collectCommands() []*discordgo.ApplicationCommand {
	var commands []*discordgo.ApplicationCommand
	for _, mod := range b.modules {
		commands = append(commands, mod.Commands()...)
	}
	return commands
}

// registerCommands registers all module commands with Discord.
func (b *Bot) registerCommands() error {
	commands := b.collectCommands()

	for _, cmd := range commands {
		_, err := b.session.ApplicationCommandCreate(
			b.session.State.User.ID,
			"", // Empty string registers commands globally
			cmd,
		)
		if err != nil {
			return fmt.Errorf("failed to register command %s: %w", cmd.Name, err)
		}
		slog.Debug("registered command", "command", cmd.Name)
	}

	return nil
}

// Embed colors for responses.
const (
	colorYellow = 0xFFFF00
	colorRed    = 0xE74C3C
)

// handleInteraction routes incoming interactions to the appropriate handler.
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	var (
		name     string
		handler  InteractionHandler
		ok       bool
		handlers map[string]InteractionHandler
	)

	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		name = i.ApplicationCommandData().Name
		handlers = b.handlers
	case discordgo.InteractionMessageComponent:
		name = i.MessageComponentData().CustomID
		handlers = b.components
	case discordgo.InteractionModalSubmit:
		name = i.ModalSubmitData().CustomID
		handlers = b.components
	case discordgo.InteractionApplicationCommandAutocomplete:
		b.handleAutocomplete(s, i)
		return
	default:
		return
	}

	lang := i18n.ResolveInteraction(i.Interaction)
	responder := b.newResponder(s, i.Interaction)

	handler, ok = handlers[name]
	if !ok {
		slog.Warn("found no handler for command", "command", name)
		b.respond(responder, i18n.T(lang, "error.title"), i18n.T(lang, "error.unknown_command"), colorYellow)
		return
	}

	user := interactionUser(i.Interaction)
	logger := slog.With(
		"request_id", uuid.NewString(),
		"guild", i.GuildID,
		"command", name,
	)

	if user != nil && !b.limiter.Allow(user.ID) {
		logger.Debug("rate limited interaction", "user_id", user.ID)
		b.respond(responder, i18n.T(lang, "error.title"), i18n.T(lang, "error.rate_limited"), colorYellow)
		return
	}
	if user != nil {
		logger.Info("used command", "user", user.Username, "user_id", user.ID)
	}

	fail := func(err error) {
		logger.Error("failed to handle command", "error", err)
		b.respond(responder, i18n.T(lang, "error.title"), i18n.T(lang, "error.generic"), colorRed)
	}
	defer recoverHandler(fail)

	if err := handler(s, i, responder); err != nil {
		fail(err)
	}
}

// handleAutocomplete routes autocomplete requests. Failures are only logged,
// since an autocomplete response can't carry an error message.
func (b *Bot) handleAutocomplete(s *discordgo.Session, i *discordgo.InteractionCreate) {
	name := i.ApplicationCommandData().Name
	handler, ok := b.autocomplete[name]
	if !ok {
		return
	}

	fail := func(err error) {
		slog.Warn("failed to handle autocomplete", "guild", i.GuildID, "command", name, "error", err)
	}
	defer recoverHandler(fail)

	if err := handler(s, i, b.newResponder(s, i.Interaction)); err != nil {
		fail(err)
	}
}

// handleMessage routes prefix commands in guild channels.
func (b *Bot) handleMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot || m.GuildID == "" {
		return
	}

	name, args, ok := ParseMessageCommand(b.config.CommandPrefix, m.Content)
	if !ok {
		return
	}
	handler, ok := b.messageHandlers[name]
	if !ok {
		return
	}

	cmd := &MessageCommand{
		Message:  m,
		Name:     name,
		Args:     args,
		Language: guildLanguage(s, m.GuildID),
	}
	responder := b.newMessageResponder(s, m.Message)
	logger := slog.With(
		"request_id", uuid.NewString(),
		"guild", m.GuildID,
		"command", name,
	)

	if !b.limiter.Allow(m.Author.ID) {
		logger.Debug("rate limited message command", "user_id", m.Author.ID)
		b.reply(responder, i18n.T(cmd.Language, "error.title"), i18n.T(cmd.Language, "error.rate_limited"), colorYellow)
		return
	}
	logger.Info("used command", "user", m.Author.Username, "user_id", m.Author.ID)

	fail := func(err error) {
		logger.Error("failed to handle command", "error", err)
		b.reply(responder, i18n.T(cmd.Language, "error.title"), i18n.T(cmd.Language, "error.generic"), colorRed)
	}
	defer recoverHandler(fail)

	if err := handler(s, cmd, responder); err != nil {
		fail(err)
	}
}

// recoverHandler turns a handler panic into a failure. It must be deferred directly.
func recoverHandler(fail func(error)) {
	if r := recover(); r != nil {
		fail(fmt.Errorf("panic: %v", r))
	}
}

// interactionUser returns the invoking user in guilds and DMs.
func interactionUser(i *discordgo.Interaction) *discordgo.User {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User
	}
	return i.User
}

// respond sends an ephemeral embed to an interaction, as a followup if it was
// already acknowledged.
func (b *Bot) respond(r Responder, title, description string, color int) {
	embeds := []*discordgo.MessageEmbed{
		{
			Title:       title,
			Description: description,
			Color:       color,
		},
	}

	var err error
	if r.Acknowledged() {
		err = r.Followup(&discordgo.WebhookParams{
			Embeds: embeds,
			Flags:  discordgo.MessageFlagsEphemeral,
		})
	} else {
		err = r.Respond(&discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Embeds: embeds,
				Flags:  discordgo.MessageFlagsEphemeral,
			},
		})
	}
	if err != nil {
		slog.Error("failed to send embed response", "error", err)
	}
}

// reply answers a prefix command with an embed.
func (b *Bot) reply(r MessageResponder, title, description string, color int) {
	err := r.Reply(&discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       color,
	})
	if err != nil {
		slog.Error("failed to send embed reply", "error", err)
	}
}
