package usecases

import (
	"context"

	"github.com/sglre6355/avbot/internal/modules/music_player/application/ports"
	"github.com/sglre6355/avbot/internal/modules/music_player/domain"
)

// NotificationOutput contains the level a session switched to.
type NotificationOutput struct {
	Level domain.NotificationLevel
}

// NotificationService handles how loudly a session confirms commands.
type NotificationService struct {
	sessions *SessionManager
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService(sessions *SessionManager) *NotificationService {
	return &NotificationService{
		sessions: sessions,
	}
}

// Cycle moves the session to the next notification level.
func (n *NotificationService) Cycle(ctx context.Context, input ActorInput) (*NotificationOutput, error) {
	session, unlock, err := n.sessions.acquire(input)
	if err != nil {
		return nil, err
	}
	defer unlock()

	session.NotificationLevel = session.NotificationLevel.Next()

	state := ports.PlayerWaiting
	if session.IsPlaying() {
		state = ports.PlayerPlaying
	}
	n.sessions.render(ctx, session, state)

	return &NotificationOutput{Level: session.NotificationLevel}, nil
}
