package i18n

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		locales []string
		want    Language
	}{
		{name: "russian", locales: []string{"ru"}, want: Russian},
		{name: "russian region", locales: []string{"ru-RU"}, want: Russian},
		{name: "english", locales: []string{"en-US"}, want: English},
		{name: "other language falls back to english", locales: []string{"de"}, want: English},
		{name: "first non-empty wins", locales: []string{"", "ru"}, want: Russian},
		{name: "user locale before guild locale", locales: []string{"en-GB", "ru"}, want: English},
		{name: "no locale", locales: nil, want: DefaultLanguage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.locales...))
		})
	}
}

func TestResolveInteraction(t *testing.T) {
	guildLocale := discordgo.Russian

	assert.Equal(t, DefaultLanguage, ResolveInteraction(nil))
	assert.Equal(t, Russian, ResolveInteraction(&discordgo.Interaction{GuildLocale: &guildLocale}))
	assert.Equal(t, English, ResolveInteraction(&discordgo.Interaction{
		Locale:      discordgo.EnglishUS,
		GuildLocale: &guildLocale,
	}))
}

func TestT(t *testing.T) {
	assert.Equal(t, "Volume set to 50%.", T(English, "confirm.volume", 50))
	assert.Equal(t, "Громкость установлена на 50%.", T(Russian, "confirm.volume", 50))
	assert.Equal(t, "Queue", T(Language("de"), "queue.title"))
	assert.Equal(t, "missing.key", T(English, "missing.key"))
}

func TestCatalogsHaveSameKeys(t *testing.T) {
	for key := range englishMessages {
		_, ok := russianMessages[key]
		assert.True(t, ok, "russian catalog is missing %q", key)
	}
	for key := range russianMessages {
		_, ok := englishMessages[key]
		assert.True(t, ok, "english catalog is missing %q", key)
	}
}

func TestLocalizations(t *testing.T) {
	localized := Localizations("command.music")
	require.NotNil(t, localized)
	assert.Equal(t, "музыка", (*localized)[discordgo.Russian])

	empty := Localizations("missing.key")
	require.NotNil(t, empty)
	assert.Empty(t, *empty)
}
