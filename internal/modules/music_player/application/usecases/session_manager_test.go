package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sglre6355/avbot/internal/modules/music_player/application/ports"
)

func TestSessionManager_Render_FallsBackToNewMessage(t *testing.T) {
	f := newFixture()
	s := f.session(mockTrack("a"))
	f.presenter.editErr = errors.New("unknown message")

	f.sessions.render(context.Background(), s, ports.PlayerPlaying)

	require.Len(t, f.presenter.sent, 1)
	require.NotNil(t, s.PlayerMessage)
	assert.NotEqual(t, uint64(999), uint64(s.PlayerMessage.MessageID))
}

func TestSessionManager_Render_TerminalStateNeverSends(t *testing.T) {
	f := newFixture()
	s := f.session(mockTrack("a"))
	s.PlayerMessage = nil

	f.sessions.render(context.Background(), s, ports.PlayerDestroyed)
	assert.Empty(t, f.presenter.rendered)
}

func TestSessionManager_Render_FailureIsNotFatal(t *testing.T) {
	f := newFixture()
	f.session(mockTrack("a"))
	f.presenter.editErr = errors.New("missing permissions")
	f.presenter.sendErr = errors.New("missing permissions")

	output, err := f.playback.ToggleLoop(context.Background(), f.actor())
	require.NoError(t, err)
	assert.True(t, output.Enabled)
	assert.Nil(t, f.repo.Get(testGuild).PlayerMessage)
}

func TestSessionManager_ExpireIdle_SkipsBusySession(t *testing.T) {
	f := newFixture()
	s := f.session(nil)
	f.sessions.armIdle(s)

	// A track was queued without cancelling the timer.
	s.Queue.PushBack(mockTrack("a"))
	f.clock.Advance(DefaultIdleTimeout)

	assert.NotNil(t, f.repo.Get(testGuild))
	assert.Zero(t, f.voiceConn.left)
}

func TestSessionManager_Summaries(t *testing.T) {
	f := newFixture()
	s := f.session(mockTrack("a"), mockTrack("b"))
	s.LoopEnabled = true

	summaries := f.sessions.Summaries()
	require.Len(t, summaries, 1)

	summary := summaries[0]
	assert.Equal(t, testGuild, summary.GuildID)
	assert.Equal(t, testVoice, summary.VoiceChannelID)
	assert.Equal(t, "Track a", summary.NowPlaying)
	assert.Equal(t, 1, summary.QueueLength)
	assert.True(t, summary.LoopEnabled)
	assert.Equal(t, "public", summary.NotificationLevel)
	assert.False(t, summary.IdleTimerArmed)
}

func TestSessionManager_Summaries_DoesNotWaitForBusySession(t *testing.T) {
	f := newFixture()
	f.session(mockTrack("a"))

	unlock := f.sessions.locks.Lock(testGuild)
	defer unlock()

	done := make(chan []SessionSummary, 1)
	go func() { done <- f.sessions.Summaries() }()

	select {
	case summaries := <-done:
		require.Len(t, summaries, 1)
		assert.Equal(t, testGuild, summaries[0].GuildID)
		assert.True(t, summaries[0].Busy)
		assert.Empty(t, summaries[0].NowPlaying)
	case <-time.After(time.Second):
		t.Fatal("Summaries blocked on a held session lock")
	}
}
