package usecases

import (
	"sync"

	"github.com/disgoorg/snowflake/v2"
)

// SessionLocks serializes all work on a guild's session.
// Commands, button presses, backend events and timers for the same guild run one at a time.
// The lock is held across the backend calls of a single operation.
type SessionLocks struct {
	mu    sync.Mutex
	locks map[snowflake.ID]*guildLock
}

type guildLock struct {
	mu   sync.Mutex
	refs int
}

// NewSessionLocks creates a new SessionLocks.
func NewSessionLocks() *SessionLocks {
	return &SessionLocks{
		locks: make(map[snowflake.ID]*guildLock),
	}
}

// Lock blocks until the guild's lock is held and returns the function that releases it.
func (l *SessionLocks) Lock(guildID snowflake.ID) (unlock func()) {
	l.mu.Lock()
	gl, ok := l.locks[guildID]
	if !ok {
		gl = &guildLock{}
		l.locks[guildID] = gl
	}
	gl.refs++
	l.mu.Unlock()

	gl.mu.Lock()
	return l.release(guildID, gl)
}

// TryLock takes the guild's lock only if it is free.
// It reports false, with a nil unlock, when another operation holds it.
func (l *SessionLocks) TryLock(guildID snowflake.ID) (unlock func(), ok bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	gl, exists := l.locks[guildID]
	if !exists {
		gl = &guildLock{}
		l.locks[guildID] = gl
	}
	if !gl.mu.TryLock() {
		return nil, false
	}
	gl.refs++
	return l.release(guildID, gl), true
}

func (l *SessionLocks) release(guildID snowflake.ID, gl *guildLock) func() {
	var once sync.Once
	return func() {
		once.Do(func() {
			gl.mu.Unlock()

			l.mu.Lock()
			gl.refs--
			if gl.refs == 0 {
				delete(l.locks, guildID)
			}
			l.mu.Unlock()
		})
	}
}

// held returns the number of guilds with a holder or waiter.
func (l *SessionLocks) held() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
