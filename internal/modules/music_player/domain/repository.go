package domain

import (
	"github.com/disgoorg/snowflake/v2"
)

// SessionRepository stores the live sessions, keyed by guild.
type SessionRepository interface {
	// Get returns the Session for the given guild, or nil if none exists.
	Get(guildID snowflake.ID) *Session

	// Save stores the Session.
	Save(session *Session)

	// Delete removes the Session for the given guild.
	Delete(guildID snowflake.ID)

	// List returns all sessions.
	List() []*Session
}
