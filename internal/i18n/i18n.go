// Package i18n resolves the language of an interaction and looks up localized messages.
package i18n

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// Language is a two-letter language tag.
type Language string

const (
	English Language = "en"
	Russian Language = "ru"
)

// DefaultLanguage is used when no locale is known or a key is missing.
const DefaultLanguage = English

var catalogs = map[Language]map[string]string{
	English: englishMessages,
	Russian: russianMessages,
}

// Resolve returns the language for the first non-empty locale.
// Locales are expected most specific first, e.g. the user's locale before the guild's.
func Resolve(locales ...string) Language {
	for _, locale := range locales {
		if locale == "" {
			continue
		}
		if strings.HasPrefix(strings.ToLower(locale), "ru") {
			return Russian
		}
		return English
	}
	return DefaultLanguage
}

// ResolveInteraction returns the language of an interaction.
func ResolveInteraction(i *discordgo.Interaction) Language {
	if i == nil {
		return DefaultLanguage
	}
	var guildLocale string
	if i.GuildLocale != nil {
		guildLocale = string(*i.GuildLocale)
	}
	return Resolve(string(i.Locale), guildLocale)
}

// T returns the message for key in lang, formatted with args.
// Missing keys fall back to the default language, then to the key itself.
func T(lang Language, key string, args ...any) string {
	msg, ok := catalogs[lang][key]
	if !ok {
		msg, ok = catalogs[DefaultLanguage][key]
	}
	if !ok {
		return key
	}
	if len(args) == 0 {
		return msg
	}
	return fmt.Sprintf(msg, args...)
}

// Localizations returns the non-default translations of key for command metadata.
func Localizations(key string) *map[discordgo.Locale]string {
	localized := map[discordgo.Locale]string{}
	if msg, ok := russianMessages[key]; ok {
		localized[discordgo.Russian] = msg
	}
	return &localized
}
