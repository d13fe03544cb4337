package usecases

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sglre6355/avbot/internal/modules/music_player/application/ports"
	"github.com/sglre6355/avbot/internal/modules/music_player/domain"
)

func TestPlaybackService_Pause(t *testing.T) {
	tests := []struct {
		name        string
		setup       func(*fixture)
		wantErr     error
		wantPaused  bool
		wantBackend int
	}{
		{
			name: "pause playing track",
			setup: func(f *fixture) {
				f.session(mockTrack("a"))
			},
			wantPaused:  true,
			wantBackend: 1,
		},
		{
			name: "already paused",
			setup: func(f *fixture) {
				f.session(mockTrack("a")).Paused = true
			},
			wantErr:    ErrAlreadyPaused,
			wantPaused: true,
		},
		{
			name: "nothing playing",
			setup: func(f *fixture) {
				f.session(nil)
			},
			wantErr: ErrNothingPlaying,
		},
		{
			name:    "no session",
			setup:   func(*fixture) {},
			wantErr: ErrNoActiveSession,
		},
		{
			name: "actor not in voice",
			setup: func(f *fixture) {
				f.session(mockTrack("a"))
				delete(f.voiceState.channels, testUser)
			},
			wantErr: ErrActorNotInVoice,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			tt.setup(f)

			output, err := f.playback.Pause(context.Background(), f.actor())
			assert.Equal(t, tt.wantBackend, f.audio.paused)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				if s := f.repo.Get(testGuild); s != nil {
					assert.Equal(t, tt.wantPaused, s.Paused)
				}
				return
			}
			require.NoError(t, err)
			assert.True(t, output.Paused)
			assert.True(t, f.repo.Get(testGuild).Paused)

			view, ok := f.presenter.last()
			require.True(t, ok)
			assert.True(t, view.Paused)
		})
	}
}

func TestPlaybackService_Resume(t *testing.T) {
	t.Run("resume paused track", func(t *testing.T) {
		f := newFixture()
		f.session(mockTrack("a")).Paused = true

		output, err := f.playback.Resume(context.Background(), f.actor())
		require.NoError(t, err)
		assert.False(t, output.Paused)
		assert.Equal(t, 1, f.audio.resumed)
		assert.False(t, f.repo.Get(testGuild).Paused)
	})

	t.Run("not paused", func(t *testing.T) {
		f := newFixture()
		f.session(mockTrack("a"))

		_, err := f.playback.Resume(context.Background(), f.actor())
		assert.ErrorIs(t, err, ErrNotPaused)
		assert.Zero(t, f.audio.resumed)
	})

	t.Run("backend failure leaves state unchanged", func(t *testing.T) {
		f := newFixture()
		f.session(mockTrack("a")).Paused = true
		f.audio.resumeErr = errors.New("node gone")

		_, err := f.playback.Resume(context.Background(), f.actor())
		require.Error(t, err)
		assert.True(t, f.repo.Get(testGuild).Paused)
		assert.Empty(t, f.presenter.rendered)
	})
}

func TestPlaybackService_TogglePause(t *testing.T) {
	f := newFixture()
	f.session(mockTrack("a"))

	output, err := f.playback.TogglePause(context.Background(), f.actor())
	require.NoError(t, err)
	assert.True(t, output.Paused)

	output, err = f.playback.TogglePause(context.Background(), f.actor())
	require.NoError(t, err)
	assert.False(t, output.Paused)

	assert.Equal(t, 1, f.audio.paused)
	assert.Equal(t, 1, f.audio.resumed)
}

func TestPlaybackService_Skip(t *testing.T) {
	t.Run("advances and remembers previous", func(t *testing.T) {
		f := newFixture()
		f.session(mockTrack("a"), mockTrack("b"), mockTrack("c"))

		output, err := f.playback.Skip(context.Background(), f.actor())
		require.NoError(t, err)
		assert.Equal(t, "Track b", output.Track.Title)

		s := f.repo.Get(testGuild)
		assert.Equal(t, "encoded-b", s.NowPlaying.Encoded)
		assert.Equal(t, "encoded-a", s.PreviousTrack.Encoded)
		assert.Equal(t, 1, s.Queue.Len())
		assert.Equal(t, "encoded-b", f.audio.lastPlayed().Encoded)
	})

	t.Run("empty queue", func(t *testing.T) {
		f := newFixture()
		f.session(mockTrack("a"))

		_, err := f.playback.Skip(context.Background(), f.actor())
		assert.ErrorIs(t, err, ErrQueueEmpty)
	})

	t.Run("loop active changes nothing", func(t *testing.T) {
		f := newFixture()
		s := f.session(mockTrack("a"), mockTrack("b"))
		s.LoopEnabled = true

		_, err := f.playback.Skip(context.Background(), f.actor())
		assert.ErrorIs(t, err, ErrLoopActive)
		assert.Equal(t, "encoded-a", s.NowPlaying.Encoded)
		assert.Equal(t, 1, s.Queue.Len())
		assert.Nil(t, s.PreviousTrack)
		assert.Empty(t, f.audio.played)
	})

	t.Run("backend failure leaves queue untouched", func(t *testing.T) {
		f := newFixture()
		s := f.session(mockTrack("a"), mockTrack("b"))
		f.audio.playErr = errors.New("node gone")

		_, err := f.playback.Skip(context.Background(), f.actor())
		require.Error(t, err)
		assert.Equal(t, "encoded-a", s.NowPlaying.Encoded)
		assert.Equal(t, 1, s.Queue.Len())
		assert.Nil(t, s.PreviousTrack)
	})
}

func TestPlaybackService_Previous(t *testing.T) {
	t.Run("goes back and requeues current", func(t *testing.T) {
		f := newFixture()
		f.session(mockTrack("a"), mockTrack("b"), mockTrack("c"))
		_, err := f.playback.Skip(context.Background(), f.actor())
		require.NoError(t, err)

		output, err := f.playback.Previous(context.Background(), f.actor())
		require.NoError(t, err)
		assert.Equal(t, "Track a", output.Track.Title)

		s := f.repo.Get(testGuild)
		assert.Equal(t, "encoded-a", s.NowPlaying.Encoded)
		assert.Nil(t, s.PreviousTrack)
		queued := s.Queue.List()
		require.Len(t, queued, 2)
		assert.Equal(t, "encoded-b", queued[0].Encoded)
		assert.Equal(t, "encoded-c", queued[1].Encoded)
	})

	t.Run("second previous has nothing to go back to", func(t *testing.T) {
		f := newFixture()
		f.session(mockTrack("a"), mockTrack("b"))
		_, err := f.playback.Skip(context.Background(), f.actor())
		require.NoError(t, err)
		_, err = f.playback.Previous(context.Background(), f.actor())
		require.NoError(t, err)

		_, err = f.playback.Previous(context.Background(), f.actor())
		assert.ErrorIs(t, err, ErrNoPreviousTrack)
	})

	t.Run("no previous track", func(t *testing.T) {
		f := newFixture()
		f.session(mockTrack("a"))

		_, err := f.playback.Previous(context.Background(), f.actor())
		assert.ErrorIs(t, err, ErrNoPreviousTrack)
	})

	t.Run("loop active", func(t *testing.T) {
		f := newFixture()
		s := f.session(mockTrack("b"))
		s.PreviousTrack = mockTrack("a")
		s.LoopEnabled = true

		_, err := f.playback.Previous(context.Background(), f.actor())
		assert.ErrorIs(t, err, ErrLoopActive)
		assert.NotNil(t, s.PreviousTrack)
	})

	t.Run("full session", func(t *testing.T) {
		f := newFixture()
		queued := make([]*domain.Track, 0, domain.DefaultQueueCapacity-1)
		for i := range domain.DefaultQueueCapacity - 1 {
			queued = append(queued, mockTrack(fmt.Sprint(i)))
		}
		s := f.session(mockTrack("current"), queued...)
		s.PreviousTrack = mockTrack("previous")

		_, err := f.playback.Previous(context.Background(), f.actor())
		assert.ErrorIs(t, err, ErrQueueFull)
		assert.Equal(t, "encoded-current", s.NowPlaying.Encoded)
	})

	t.Run("backend failure keeps previous", func(t *testing.T) {
		f := newFixture()
		s := f.session(mockTrack("b"))
		s.PreviousTrack = mockTrack("a")
		f.audio.playErr = errors.New("node gone")

		_, err := f.playback.Previous(context.Background(), f.actor())
		require.Error(t, err)
		assert.Equal(t, "encoded-b", s.NowPlaying.Encoded)
		assert.Equal(t, "encoded-a", s.PreviousTrack.Encoded)
	})
}

func TestPlaybackService_Replay(t *testing.T) {
	f := newFixture()
	f.session(mockTrack("a"))

	output, err := f.playback.Replay(context.Background(), f.actor())
	require.NoError(t, err)
	assert.Equal(t, "Track a", output.Track.Title)
	assert.Equal(t, []time.Duration{0}, f.audio.seeks)

	f.session(nil)
	_, err = f.playback.Replay(context.Background(), f.actor())
	assert.ErrorIs(t, err, ErrNothingPlaying)
}

func TestPlaybackService_ToggleLoop(t *testing.T) {
	f := newFixture()
	f.session(mockTrack("a"))

	output, err := f.playback.ToggleLoop(context.Background(), f.actor())
	require.NoError(t, err)
	assert.True(t, output.Enabled)

	view, ok := f.presenter.last()
	require.True(t, ok)
	assert.True(t, view.LoopEnabled)

	output, err = f.playback.ToggleLoop(context.Background(), f.actor())
	require.NoError(t, err)
	assert.False(t, output.Enabled)
}

func TestPlaybackService_SetVolume(t *testing.T) {
	tests := []struct {
		name    string
		volume  int
		wantErr error
	}{
		{name: "minimum", volume: 0},
		{name: "default", volume: 100},
		{name: "maximum", volume: 200},
		{name: "below range", volume: -1, wantErr: ErrInvalidVolume},
		{name: "above range", volume: 201, wantErr: ErrInvalidVolume},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			f.session(mockTrack("a"))

			output, err := f.playback.SetVolume(context.Background(), SetVolumeInput{
				ActorInput: f.actor(),
				Volume:     tt.volume,
			})

			s := f.repo.Get(testGuild)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, domain.DefaultVolume, s.Volume)
				assert.Empty(t, f.audio.volumes)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.volume, output.Volume)
			assert.Equal(t, tt.volume, s.Volume)
			assert.Equal(t, []int{tt.volume}, f.audio.volumes)
		})
	}
}

func TestPlaybackService_HandleTrackEnded(t *testing.T) {
	finished := func(track *domain.Track) ports.TrackEndedEvent {
		return ports.TrackEndedEvent{GuildID: testGuild, Track: track, Reason: ports.TrackEndFinished}
	}

	t.Run("advances to next track", func(t *testing.T) {
		f := newFixture()
		a := mockTrack("a")
		s := f.session(a, mockTrack("b"))

		err := f.playback.HandleTrackEnded(context.Background(), finished(a))
		require.NoError(t, err)
		assert.Equal(t, "encoded-b", s.NowPlaying.Encoded)
		assert.Equal(t, "encoded-a", s.PreviousTrack.Encoded)
		assert.Equal(t, "encoded-b", f.audio.lastPlayed().Encoded)
	})

	t.Run("loop replays the same track", func(t *testing.T) {
		f := newFixture()
		a := mockTrack("a")
		s := f.session(a, mockTrack("b"))
		s.LoopEnabled = true

		for range 3 {
			require.NoError(t, f.playback.HandleTrackEnded(context.Background(), finished(a)))
		}
		assert.Equal(t, "encoded-a", s.NowPlaying.Encoded)
		assert.Equal(t, 1, s.Queue.Len())
		require.Len(t, f.audio.played, 3)
		for _, played := range f.audio.played {
			assert.Equal(t, "encoded-a", played.Encoded)
		}
	})

	t.Run("drained queue waits then closes after timeout", func(t *testing.T) {
		f := newFixture()
		a := mockTrack("a")
		s := f.session(a)

		require.NoError(t, f.playback.HandleTrackEnded(context.Background(), finished(a)))
		assert.False(t, s.IsPlaying())
		assert.Nil(t, s.PreviousTrack)
		assert.True(t, f.watchdog.Armed(testGuild))

		view, ok := f.presenter.last()
		require.True(t, ok)
		assert.Equal(t, ports.PlayerWaiting, view.State)
		assert.Equal(t, DefaultIdleTimeout, view.IdleTimeout)

		f.clock.Advance(DefaultIdleTimeout - time.Second)
		require.NotNil(t, f.repo.Get(testGuild))

		f.clock.Advance(time.Second)
		assert.Nil(t, f.repo.Get(testGuild))
		assert.Equal(t, 1, f.voiceConn.left)

		view, _ = f.presenter.last()
		assert.Equal(t, ports.PlayerDestroyed, view.State)
	})

	t.Run("new track during grace period keeps the session", func(t *testing.T) {
		f := newFixture()
		a := mockTrack("a")
		f.session(a)
		require.NoError(t, f.playback.HandleTrackEnded(context.Background(), finished(a)))

		f.clock.Advance(10 * time.Second)
		f.resolver.returns(mockTrack("b"))
		_, err := f.play("b")
		require.NoError(t, err)

		f.clock.Advance(DefaultIdleTimeout)
		require.NotNil(t, f.repo.Get(testGuild))
		assert.Zero(t, f.voiceConn.left)
	})

	t.Run("ignores stopped and replaced tracks", func(t *testing.T) {
		for _, reason := range []ports.TrackEndReason{
			ports.TrackEndStopped,
			ports.TrackEndReplaced,
			ports.TrackEndCleanup,
		} {
			f := newFixture()
			a := mockTrack("a")
			s := f.session(a, mockTrack("b"))

			err := f.playback.HandleTrackEnded(context.Background(), ports.TrackEndedEvent{
				GuildID: testGuild,
				Track:   a,
				Reason:  reason,
			})
			require.NoError(t, err)
			assert.Equal(t, "encoded-a", s.NowPlaying.Encoded, reason)
			assert.Empty(t, f.audio.played, reason)
		}
	})

	t.Run("ignores stale track", func(t *testing.T) {
		f := newFixture()
		s := f.session(mockTrack("b"), mockTrack("c"))

		require.NoError(t, f.playback.HandleTrackEnded(context.Background(), finished(mockTrack("a"))))
		assert.Equal(t, "encoded-b", s.NowPlaying.Encoded)
		assert.Empty(t, f.audio.played)
	})

	t.Run("next track failing to start drops it and waits", func(t *testing.T) {
		f := newFixture()
		a := mockTrack("a")
		s := f.session(a, mockTrack("broken"))
		f.audio.playErr = errors.New("load failed")

		err := f.playback.HandleTrackEnded(context.Background(), finished(a))
		require.Error(t, err)
		assert.False(t, s.IsPlaying())
		assert.True(t, s.Queue.IsEmpty())
		assert.True(t, f.watchdog.Armed(testGuild))
	})

	t.Run("skips every queued track that fails to start", func(t *testing.T) {
		f := newFixture()
		a := mockTrack("a")
		s := f.session(a, mockTrack("broken"), mockTrack("c"))
		f.audio.trackErrs = map[string]error{"encoded-broken": errors.New("load failed")}

		err := f.playback.HandleTrackEnded(context.Background(), finished(a))
		require.Error(t, err)
		assert.Equal(t, "encoded-c", s.NowPlaying.Encoded)
		assert.Equal(t, "encoded-a", s.PreviousTrack.Encoded)
		assert.True(t, s.Queue.IsEmpty())
		assert.False(t, f.watchdog.Armed(testGuild))
	})

	t.Run("session closes when no queued track starts", func(t *testing.T) {
		f := newFixture()
		a := mockTrack("a")
		f.session(a, mockTrack("broken"), mockTrack("c"))
		f.audio.playErr = errors.New("load failed")

		require.Error(t, f.playback.HandleTrackEnded(context.Background(), finished(a)))
		s := f.repo.Get(testGuild)
		require.NotNil(t, s)
		assert.False(t, s.IsPlaying())
		assert.True(t, s.Queue.IsEmpty())

		f.clock.Advance(DefaultIdleTimeout)
		assert.Nil(t, f.repo.Get(testGuild))
		assert.Equal(t, 1, f.voiceConn.left)
	})

	t.Run("failed loop replay disables loop and advances", func(t *testing.T) {
		f := newFixture()
		a := mockTrack("a")
		s := f.session(a, mockTrack("b"))
		s.LoopEnabled = true
		f.audio.trackErrs = map[string]error{"encoded-a": errors.New("load failed")}

		require.Error(t, f.playback.HandleTrackEnded(context.Background(), finished(a)))
		assert.False(t, s.LoopEnabled)
		assert.Equal(t, "encoded-b", s.NowPlaying.Encoded)
	})

	t.Run("failed loop replay with empty queue waits", func(t *testing.T) {
		f := newFixture()
		a := mockTrack("a")
		s := f.session(a)
		s.LoopEnabled = true
		f.audio.playErr = errors.New("load failed")

		require.Error(t, f.playback.HandleTrackEnded(context.Background(), finished(a)))
		assert.False(t, s.IsPlaying())
		assert.True(t, f.watchdog.Armed(testGuild))

		f.clock.Advance(DefaultIdleTimeout)
		assert.Nil(t, f.repo.Get(testGuild))
	})

	t.Run("load failure advances", func(t *testing.T) {
		f := newFixture()
		a := mockTrack("a")
		s := f.session(a, mockTrack("b"))

		err := f.playback.HandleTrackEnded(context.Background(), ports.TrackEndedEvent{
			GuildID: testGuild,
			Track:   a,
			Reason:  ports.TrackEndLoadFailed,
		})
		require.NoError(t, err)
		assert.Equal(t, "encoded-b", s.NowPlaying.Encoded)
	})

	t.Run("no session", func(t *testing.T) {
		f := newFixture()
		assert.NoError(t, f.playback.HandleTrackEnded(context.Background(), finished(mockTrack("a"))))
	})
}

func TestPlaybackService_HandleTrackStarted_CancelsIdleTimer(t *testing.T) {
	f := newFixture()
	a := mockTrack("a")
	s := f.session(a)
	f.sessions.armIdle(s)
	require.True(t, f.watchdog.Armed(testGuild))

	f.playback.HandleTrackStarted(context.Background(), ports.TrackStartedEvent{
		GuildID: testGuild,
		Track:   a,
	})
	assert.False(t, f.watchdog.Armed(testGuild))
}

func TestPlaybackService_HandleTrackStarted_AfterTrackEnded(t *testing.T) {
	f := newFixture()
	a := mockTrack("a")
	f.session(a)

	require.NoError(t, f.playback.HandleTrackEnded(context.Background(), ports.TrackEndedEvent{
		GuildID: testGuild,
		Track:   a,
		Reason:  ports.TrackEndLoadFailed,
	}))
	require.True(t, f.watchdog.Armed(testGuild))

	// The start of the same track is delivered late.
	f.playback.HandleTrackStarted(context.Background(), ports.TrackStartedEvent{GuildID: testGuild, Track: a})
	assert.True(t, f.watchdog.Armed(testGuild))

	f.clock.Advance(DefaultIdleTimeout)
	assert.Nil(t, f.repo.Get(testGuild))
}

func TestPlaybackService_HandleTrackStarted_IgnoresStaleTrack(t *testing.T) {
	f := newFixture()
	s := f.session(mockTrack("b"))
	f.sessions.armIdle(s)

	f.playback.HandleTrackStarted(context.Background(), ports.TrackStartedEvent{
		GuildID: testGuild,
		Track:   mockTrack("a"),
	})
	assert.True(t, f.watchdog.Armed(testGuild))
}
