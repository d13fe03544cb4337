package events

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// TrackLifecycle reacts to backend playback events.
type TrackLifecycle interface {
	HandleTrackStarted(ctx context.Context, event TrackStartedEvent)
	HandleTrackEnded(ctx context.Context, event TrackEndedEvent) error
}

// TrackLifecycleHandler drains the bus into a TrackLifecycle.
// Events are handled one at a time in publish order.
type TrackLifecycleHandler struct {
	lifecycle TrackLifecycle
	bus       *Bus

	wg       sync.WaitGroup
	done     chan struct{}
	stopOnce sync.Once
}

// NewTrackLifecycleHandler creates a new TrackLifecycleHandler.
func NewTrackLifecycleHandler(lifecycle TrackLifecycle, bus *Bus) *TrackLifecycleHandler {
	return &TrackLifecycleHandler{
		lifecycle: lifecycle,
		bus:       bus,
		done:      make(chan struct{}),
	}
}

// Start begins listening for events in a background goroutine.
func (h *TrackLifecycleHandler) Start(ctx context.Context) {
	h.wg.Add(1)

	go func() {
		defer h.wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case <-h.done:
				return
			case event, ok := <-h.bus.Events():
				if !ok {
					return
				}
				h.dispatch(ctx, event)
			}
		}
	}()

	slog.Debug("track lifecycle handler started")
}

func (h *TrackLifecycleHandler) dispatch(ctx context.Context, event Event) {
	switch e := event.(type) {
	case TrackStartedEvent:
		h.lifecycle.HandleTrackStarted(ctx, e)
	case TrackEndedEvent:
		h.handleTrackEnded(ctx, e)
	default:
		slog.Warn("ignoring unknown event", "type", fmt.Sprintf("%T", event))
	}
}

// Stop stops the handler and waits for goroutines to finish.
func (h *TrackLifecycleHandler) Stop() {
	h.stopOnce.Do(func() {
		close(h.done)
	})
	h.wg.Wait()
	slog.Debug("track lifecycle handler stopped")
}

func (h *TrackLifecycleHandler) handleTrackEnded(ctx context.Context, event TrackEndedEvent) {
	if err := h.lifecycle.HandleTrackEnded(ctx, event); err != nil {
		slog.Error("failed to handle track end",
			"guild", event.GuildID,
			"reason", event.Reason,
			"error", err,
		)
	}
}
