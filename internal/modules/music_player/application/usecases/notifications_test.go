package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sglre6355/avbot/internal/modules/music_player/application/ports"
	"github.com/sglre6355/avbot/internal/modules/music_player/domain"
)

func TestNotificationService_Cycle(t *testing.T) {
	f := newFixture()
	f.session(mockTrack("a"))

	want := []domain.NotificationLevel{
		domain.NotificationSilent,
		domain.NotificationPrivate,
		domain.NotificationPublic,
	}
	for _, level := range want {
		output, err := f.notifications.Cycle(context.Background(), f.actor())
		require.NoError(t, err)
		assert.Equal(t, level, output.Level)
		assert.Equal(t, level, f.repo.Get(testGuild).NotificationLevel)

		view, ok := f.presenter.last()
		require.True(t, ok)
		assert.Equal(t, level, view.NotificationLevel)
		assert.Equal(t, ports.PlayerPlaying, view.State)
	}
}

func TestNotificationService_Cycle_WaitingSession(t *testing.T) {
	f := newFixture()
	f.session(nil)

	_, err := f.notifications.Cycle(context.Background(), f.actor())
	require.NoError(t, err)

	view, ok := f.presenter.last()
	require.True(t, ok)
	assert.Equal(t, ports.PlayerWaiting, view.State)
}

func TestNotificationService_Cycle_NoSession(t *testing.T) {
	f := newFixture()

	_, err := f.notifications.Cycle(context.Background(), f.actor())
	assert.ErrorIs(t, err, ErrNoActiveSession)
}
