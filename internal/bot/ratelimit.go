package bot

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// limiterIdleTTL is how long a user's limiter is kept after their last event.
const limiterIdleTTL = 10 * time.Minute

// UserLimiter throttles each user independently with a token bucket.
// Limiters of users idle for longer than limiterIdleTTL are evicted.
type UserLimiter struct {
	mu        sync.Mutex
	limit     rate.Limit
	burst     int
	limiters  map[string]*userLimiter
	lastSweep time.Time
	now       func() time.Time
}

type userLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewUserLimiter allows perSecond events per user with the given burst.
// A non-positive rate disables limiting.
func NewUserLimiter(perSecond float64, burst int) *UserLimiter {
	limit := rate.Limit(perSecond)
	if perSecond <= 0 {
		limit = rate.Inf
	}
	if burst < 1 {
		burst = 1
	}
	return &UserLimiter{
		limit:    limit,
		burst:    burst,
		limiters: make(map[string]*userLimiter),
		now:      time.Now,
	}
}

// Allow reports whether the user may act now, consuming a token if so.
func (l *UserLimiter) Allow(userID string) bool {
	l.mu.Lock()
	now := l.now()
	l.sweep(now)

	entry, ok := l.limiters[userID]
	if !ok {
		entry = &userLimiter{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.limiters[userID] = entry
	}
	entry.lastSeen = now
	allowed := entry.limiter.AllowN(now, 1)
	l.mu.Unlock()

	return allowed
}

// sweep drops idle limiters at most once per limiterIdleTTL. l.mu must be held.
func (l *UserLimiter) sweep(now time.Time) {
	if now.Sub(l.lastSweep) < limiterIdleTTL {
		return
	}
	l.lastSweep = now
	for userID, entry := range l.limiters {
		if now.Sub(entry.lastSeen) >= limiterIdleTTL {
			delete(l.limiters, userID)
		}
	}
}

// size returns the number of tracked users.
func (l *UserLimiter) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.limiters)
}
