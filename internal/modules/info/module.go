// Package info provides bot diagnostics commands.
package info

import (
	"github.com/bwmarrin/discordgo"
	"github.com/sglre6355/avbot/internal/bot"
	"github.com/sglre6355/avbot/internal/i18n"
	"github.com/sglre6355/avbot/internal/modules/info/application"
	"github.com/sglre6355/avbot/internal/modules/info/presentation"
)

func init() {
	bot.Register(&InfoModule{})
}

// Compile-time interface checks.
var _ bot.MessageCommandModule = (*InfoModule)(nil)

// InfoModule provides the ping command.
type InfoModule struct {
	pingHandler *presentation.PingHandler
}

// Name returns the module name.
func (m *InfoModule) Name() string {
	return "info"
}

// Commands returns the slash commands for this module.
func (m *InfoModule) Commands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:                     i18n.T(i18n.English, "command.ping"),
			NameLocalizations:        i18n.Localizations("command.ping"),
			Description:              i18n.T(i18n.English, "command.ping.description"),
			DescriptionLocalizations: i18n.Localizations("command.ping.description"),
		},
	}
}

// CommandHandlers returns the command handlers for this module.
func (m *InfoModule) CommandHandlers() map[string]bot.InteractionHandler {
	return map[string]bot.InteractionHandler{
		"ping": m.pingHandler.Handle,
	}
}

// MessageCommands returns the prefix command handlers for this module.
func (m *InfoModule) MessageCommands() map[string]bot.MessageHandler {
	return map[string]bot.MessageHandler{
		"ping": m.pingHandler.HandleMessage,
	}
}

// EventHandlers returns the event handlers for this module.
func (m *InfoModule) EventHandlers() []bot.EventHandler {
	return nil
}

// Init initializes the module.
func (m *InfoModule) Init(deps bot.ModuleDependencies) error {
	m.pingHandler = presentation.NewPingHandler(application.NewPingInteractor(deps.Session))
	return nil
}

// Shutdown cleans up module resources.
func (m *InfoModule) Shutdown() error {
	return nil
}
