package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFakeClock_AdvanceFiresDueTimers(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewFakeClock(start)

	var fired []string
	c.AfterFunc(30*time.Second, func() { fired = append(fired, "late") })
	c.AfterFunc(10*time.Second, func() { fired = append(fired, "early") })

	c.Advance(20 * time.Second)
	assert.Equal(t, []string{"early"}, fired)
	assert.Equal(t, 1, c.Pending())

	c.Advance(10 * time.Second)
	assert.Equal(t, []string{"early", "late"}, fired)
	assert.Equal(t, 0, c.Pending())
	assert.Equal(t, start.Add(30*time.Second), c.Now())
}

func TestFakeClock_StoppedTimerDoesNotFire(t *testing.T) {
	c := NewFakeClock(time.Now())

	fired := false
	timer := c.AfterFunc(time.Second, func() { fired = true })

	assert.True(t, timer.Stop())
	assert.False(t, timer.Stop())

	c.Advance(time.Minute)
	assert.False(t, fired)
}

func TestFakeClock_StopAfterFire(t *testing.T) {
	c := NewFakeClock(time.Now())

	timer := c.AfterFunc(time.Second, func() {})
	c.Advance(time.Second)

	assert.False(t, timer.Stop())
}
