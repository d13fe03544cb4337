package usecases

import (
	"context"
	"sync"
	"time"

	"github.com/disgoorg/snowflake/v2"
	"github.com/sglre6355/avbot/internal/common/clock"
	"github.com/sglre6355/avbot/internal/i18n"
	"github.com/sglre6355/avbot/internal/modules/music_player/application/ports"
	"github.com/sglre6355/avbot/internal/modules/music_player/domain"
)

const (
	testGuild = snowflake.ID(1)
	testUser  = snowflake.ID(2)
	testText  = snowflake.ID(3)
	testVoice = snowflake.ID(4)
	testBot   = snowflake.ID(5)
)

func mockTrack(id string) *domain.Track {
	return &domain.Track{
		Encoded:     "encoded-" + id,
		Identifier:  id,
		Title:       "Track " + id,
		Artist:      "Artist",
		Duration:    3 * time.Minute,
		SourceName:  "youtube",
		RequesterID: testUser,
	}
}

type mockRepository struct {
	mu       sync.Mutex
	sessions map[snowflake.ID]*domain.Session
	deleted  []snowflake.ID
}

func newMockRepository() *mockRepository {
	return &mockRepository{
		sessions: make(map[snowflake.ID]*domain.Session),
	}
}

func (m *mockRepository) Get(guildID snowflake.ID) *domain.Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sessions[guildID]
}

func (m *mockRepository) Save(session *domain.Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[session.GuildID] = session
}

func (m *mockRepository) Delete(guildID snowflake.ID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deleted = append(m.deleted, guildID)
	delete(m.sessions, guildID)
}

func (m *mockRepository) List() []*domain.Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	sessions := make([]*domain.Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		sessions = append(sessions, s)
	}
	return sessions
}

type mockAudioPlayer struct {
	playErr      error
	stopErr      error
	pauseErr     error
	resumeErr    error
	seekErr      error
	setVolumeErr error
	// trackErrs fails Play for individual tracks, keyed by encoded payload.
	trackErrs map[string]error

	played  []*domain.Track
	stopped int
	paused  int
	resumed int
	seeks   []time.Duration
	volumes []int
}

func (m *mockAudioPlayer) Play(_ context.Context, _ snowflake.ID, track *domain.Track) error {
	if m.playErr != nil {
		return m.playErr
	}
	if err := m.trackErrs[track.Encoded]; err != nil {
		return err
	}
	m.played = append(m.played, track)
	return nil
}

func (m *mockAudioPlayer) Stop(_ context.Context, _ snowflake.ID) error {
	m.stopped++
	return m.stopErr
}

func (m *mockAudioPlayer) Pause(_ context.Context, _ snowflake.ID) error {
	if m.pauseErr != nil {
		return m.pauseErr
	}
	m.paused++
	return nil
}

func (m *mockAudioPlayer) Resume(_ context.Context, _ snowflake.ID) error {
	if m.resumeErr != nil {
		return m.resumeErr
	}
	m.resumed++
	return nil
}

func (m *mockAudioPlayer) Seek(_ context.Context, _ snowflake.ID, position time.Duration) error {
	if m.seekErr != nil {
		return m.seekErr
	}
	m.seeks = append(m.seeks, position)
	return nil
}

func (m *mockAudioPlayer) SetVolume(_ context.Context, _ snowflake.ID, volume int) error {
	if m.setVolumeErr != nil {
		return m.setVolumeErr
	}
	m.volumes = append(m.volumes, volume)
	return nil
}

// lastPlayed returns the most recently played track, or nil.
func (m *mockAudioPlayer) lastPlayed() *domain.Track {
	if len(m.played) == 0 {
		return nil
	}
	return m.played[len(m.played)-1]
}

type mockVoiceConnection struct {
	joinErr  error
	leaveErr error

	joined []snowflake.ID
	left   int
}

func (m *mockVoiceConnection) JoinChannel(_ context.Context, _, channelID snowflake.ID) error {
	if m.joinErr != nil {
		return m.joinErr
	}
	m.joined = append(m.joined, channelID)
	return nil
}

func (m *mockVoiceConnection) LeaveChannel(_ context.Context, _ snowflake.ID) error {
	m.left++
	return m.leaveErr
}

type mockTrackResolver struct {
	loadErr    error
	loadResult *ports.LoadResult
	queries    []string
}

func (m *mockTrackResolver) LoadTracks(_ context.Context, query string) (*ports.LoadResult, error) {
	m.queries = append(m.queries, query)
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	if m.loadResult == nil {
		return &ports.LoadResult{Type: ports.LoadTypeEmpty}, nil
	}
	return m.loadResult, nil
}

// returns makes the resolver answer every query with track.
func (m *mockTrackResolver) returns(track *domain.Track) {
	m.loadResult = &ports.LoadResult{
		Type:   ports.LoadTypeSearch,
		Tracks: []*domain.Track{track},
	}
}

type mockVoiceStateProvider struct {
	channels map[snowflake.ID]snowflake.ID // userID -> channelID
	members  map[snowflake.ID]int          // channelID -> member count
	err      error
}

func newMockVoiceStateProvider() *mockVoiceStateProvider {
	return &mockVoiceStateProvider{
		channels: make(map[snowflake.ID]snowflake.ID),
		members:  make(map[snowflake.ID]int),
	}
}

func (m *mockVoiceStateProvider) GetUserVoiceChannel(_, userID snowflake.ID) (snowflake.ID, error) {
	if m.err != nil {
		return 0, m.err
	}
	return m.channels[userID], nil
}

func (m *mockVoiceStateProvider) CountChannelMembers(_, channelID snowflake.ID) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	return m.members[channelID], nil
}

type mockPresenter struct {
	sendErr error
	editErr error

	sent     []ports.PlayerView
	edited   []ports.PlayerView
	rendered []ports.PlayerView
	nextID   snowflake.ID
}

func (m *mockPresenter) SendPlayer(_ context.Context, _ snowflake.ID, view ports.PlayerView) (snowflake.ID, error) {
	if m.sendErr != nil {
		return 0, m.sendErr
	}
	m.sent = append(m.sent, view)
	m.rendered = append(m.rendered, view)
	m.nextID++
	return 1000 + m.nextID, nil
}

func (m *mockPresenter) EditPlayer(_ context.Context, _ domain.MessageRef, view ports.PlayerView) error {
	if m.editErr != nil {
		return m.editErr
	}
	m.edited = append(m.edited, view)
	m.rendered = append(m.rendered, view)
	return nil
}

// last returns the most recently rendered view, edited or sent.
func (m *mockPresenter) last() (ports.PlayerView, bool) {
	if len(m.rendered) == 0 {
		return ports.PlayerView{}, false
	}
	return m.rendered[len(m.rendered)-1], true
}

// fixture wires every service against mocks, with the actor already in testVoice.
type fixture struct {
	repo       *mockRepository
	audio      *mockAudioPlayer
	voiceConn  *mockVoiceConnection
	resolver   *mockTrackResolver
	voiceState *mockVoiceStateProvider
	presenter  *mockPresenter
	clock      *clock.FakeClock
	watchdog   *IdleWatchdog

	sessions      *SessionManager
	queue         *QueueService
	playback      *PlaybackService
	voice         *VoiceChannelService
	notifications *NotificationService
}

func newFixture() *fixture {
	f := &fixture{
		repo:       newMockRepository(),
		audio:      &mockAudioPlayer{},
		voiceConn:  &mockVoiceConnection{},
		resolver:   &mockTrackResolver{},
		voiceState: newMockVoiceStateProvider(),
		presenter:  &mockPresenter{},
		clock:      clock.NewFakeClock(time.Unix(0, 0)),
	}
	f.voiceState.channels[testUser] = testVoice
	f.voiceState.members[testVoice] = 2

	f.watchdog = NewIdleWatchdog(f.clock, DefaultIdleTimeout)
	f.sessions = NewSessionManager(
		f.repo,
		NewSessionLocks(),
		f.audio,
		f.voiceConn,
		f.voiceState,
		f.presenter,
		f.watchdog,
	)
	f.queue = NewQueueService(f.sessions, NewTrackLoaderService(f.resolver), Limits{})
	f.playback = NewPlaybackService(f.sessions)
	f.voice = NewVoiceChannelService(f.sessions)
	f.notifications = NewNotificationService(f.sessions)
	return f
}

func (f *fixture) actor() ActorInput {
	return ActorInput{GuildID: testGuild, UserID: testUser, ChannelID: testText}
}

// session creates a connected session playing current with the given tracks queued.
// A nil current leaves the session idle.
func (f *fixture) session(current *domain.Track, queued ...*domain.Track) *domain.Session {
	s := domain.NewSession(testGuild, testVoice, testText, i18n.English, domain.DefaultQueueCapacity)
	if current != nil {
		s.Start(current)
	}
	for _, t := range queued {
		s.Queue.PushBack(t)
	}
	s.PlayerMessage = &domain.MessageRef{ChannelID: testText, MessageID: 999}
	f.repo.Save(s)
	return s
}

func (f *fixture) play(query string) (*PlayOutput, error) {
	return f.queue.Play(context.Background(), PlayInput{
		ActorInput:    f.actor(),
		Query:         query,
		Language:      i18n.English,
		RequesterName: "tester",
	})
}
