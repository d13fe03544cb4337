package usecases

import (
	"sync"
	"time"

	"github.com/disgoorg/snowflake/v2"
	"github.com/sglre6355/avbot/internal/common/clock"
)

// DefaultIdleTimeout is how long a drained session waits before disconnecting.
const DefaultIdleTimeout = 30 * time.Second

// IdleWatchdog holds at most one pending idle timer per guild.
//
// A timer that fires hands its generation to the expiry callback. The callback must
// call Release under the guild lock and do nothing if Release returns false, which
// happens when the timer was cancelled or re-armed after it fired.
type IdleWatchdog struct {
	clock   clock.Clock
	timeout time.Duration

	mu     sync.Mutex
	gen    uint64
	timers map[snowflake.ID]idleTimer
}

type idleTimer struct {
	timer clock.Timer
	gen   uint64
}

// NewIdleWatchdog creates a new IdleWatchdog.
func NewIdleWatchdog(c clock.Clock, timeout time.Duration) *IdleWatchdog {
	if timeout <= 0 {
		timeout = DefaultIdleTimeout
	}
	return &IdleWatchdog{
		clock:   c,
		timeout: timeout,
		timers:  make(map[snowflake.ID]idleTimer),
	}
}

// Timeout returns the grace period.
func (w *IdleWatchdog) Timeout() time.Duration {
	return w.timeout
}

// Arm starts (or restarts) the guild's idle timer.
func (w *IdleWatchdog) Arm(guildID snowflake.ID, onExpire func(gen uint64)) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if existing, ok := w.timers[guildID]; ok {
		existing.timer.Stop()
	}

	w.gen++
	gen := w.gen
	w.timers[guildID] = idleTimer{
		timer: w.clock.AfterFunc(w.timeout, func() { onExpire(gen) }),
		gen:   gen,
	}
}

// Cancel stops the guild's pending timer, if any.
func (w *IdleWatchdog) Cancel(guildID snowflake.ID) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if existing, ok := w.timers[guildID]; ok {
		existing.timer.Stop()
		delete(w.timers, guildID)
	}
}

// Release claims an expired timer. It returns false if gen is no longer the armed timer.
func (w *IdleWatchdog) Release(guildID snowflake.ID, gen uint64) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	existing, ok := w.timers[guildID]
	if !ok || existing.gen != gen {
		return false
	}
	delete(w.timers, guildID)
	return true
}

// Armed reports whether the guild has a pending timer.
func (w *IdleWatchdog) Armed(guildID snowflake.ID) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	_, ok := w.timers[guildID]
	return ok
}
