package bot

import (
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/sglre6355/avbot/internal/i18n"
)

// MessageCommand is a prefix command parsed from a guild message.
type MessageCommand struct {
	Message *discordgo.MessageCreate

	// Name is the lowercase command name without the prefix.
	Name string
	// Args is the trimmed remainder of the message.
	Args string
	// Language is the guild's preferred language.
	Language i18n.Language
}

// ParseMessageCommand splits content into a command name and its arguments.
// It returns false if content does not start with prefix followed by a name.
func ParseMessageCommand(prefix, content string) (name, args string, ok bool) {
	if prefix == "" || !strings.HasPrefix(content, prefix) {
		return "", "", false
	}

	rest := strings.TrimSpace(content[len(prefix):])
	if rest == "" {
		return "", "", false
	}

	name, args, _ = strings.Cut(rest, " ")
	if i := strings.IndexAny(name, "\n\t"); i >= 0 {
		args = name[i:] + " " + args
		name = name[:i]
	}
	return strings.ToLower(name), strings.TrimSpace(args), true
}

// guildLanguage returns the preferred language of a cached guild.
func guildLanguage(s *discordgo.Session, guildID string) i18n.Language {
	if s == nil || s.State == nil {
		return i18n.DefaultLanguage
	}
	guild, err := s.State.Guild(guildID)
	if err != nil {
		return i18n.DefaultLanguage
	}
	return i18n.Resolve(string(guild.PreferredLocale))
}
