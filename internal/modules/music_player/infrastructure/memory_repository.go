package infrastructure

import (
	"sync"

	"github.com/disgoorg/snowflake/v2"
	"github.com/sglre6355/avbot/internal/modules/music_player/domain"
)

// MemoryRepository is an in-memory implementation of SessionRepository.
// Sessions do not survive a restart.
type MemoryRepository struct {
	mu       sync.RWMutex
	sessions map[snowflake.ID]*domain.Session
}

// NewMemoryRepository creates a new MemoryRepository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		sessions: make(map[snowflake.ID]*domain.Session),
	}
}

// Get returns the Session for the given guild, or nil if none exists.
func (r *MemoryRepository) Get(guildID snowflake.ID) *domain.Session {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sessions[guildID]
}

// Save stores the Session.
func (r *MemoryRepository) Save(session *domain.Session) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[session.GuildID] = session
}

// Delete removes the Session for the given guild.
func (r *MemoryRepository) Delete(guildID snowflake.ID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, guildID)
}

// List returns all sessions in no particular order.
func (r *MemoryRepository) List() []*domain.Session {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sessions := make([]*domain.Session, 0, len(r.sessions))
	for _, s := range r.sessions {
		sessions = append(sessions, s)
	}
	return sessions
}

// Count returns the number of sessions (for testing/monitoring).
func (r *MemoryRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.sessions)
}

// Ensure MemoryRepository implements SessionRepository.
var _ domain.SessionRepository = (*MemoryRepository)(nil)
