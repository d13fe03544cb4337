package ports

import (
	"context"

	"github.com/disgoorg/snowflake/v2"
	"github.com/sglre6355/avbot/internal/modules/music_player/domain"
)

// PlayerPresenter defines the interface for rendering the player message.
type PlayerPresenter interface {
	// SendPlayer posts a new player message and returns its ID.
	SendPlayer(ctx context.Context, channelID snowflake.ID, view PlayerView) (snowflake.ID, error)

	// EditPlayer re-renders an existing player message.
	EditPlayer(ctx context.Context, ref domain.MessageRef, view PlayerView) error
}
