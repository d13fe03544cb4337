package usecases

import (
	"testing"
	"time"

	"github.com/disgoorg/snowflake/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sglre6355/avbot/internal/common/clock"
)

func TestIdleWatchdog_FiresAfterTimeout(t *testing.T) {
	c := clock.NewFakeClock(time.Unix(0, 0))
	w := NewIdleWatchdog(c, 30*time.Second)
	guildID := snowflake.ID(1)

	var fired []uint64
	w.Arm(guildID, func(gen uint64) { fired = append(fired, gen) })
	assert.True(t, w.Armed(guildID))

	c.Advance(29 * time.Second)
	assert.Empty(t, fired)

	c.Advance(time.Second)
	require.Len(t, fired, 1)
	assert.True(t, w.Release(guildID, fired[0]))
	assert.False(t, w.Armed(guildID))
}

func TestIdleWatchdog_CancelStopsTimer(t *testing.T) {
	c := clock.NewFakeClock(time.Unix(0, 0))
	w := NewIdleWatchdog(c, 30*time.Second)
	guildID := snowflake.ID(1)

	fired := false
	w.Arm(guildID, func(uint64) { fired = true })
	w.Cancel(guildID)

	c.Advance(time.Minute)
	assert.False(t, fired)
	assert.False(t, w.Armed(guildID))
	assert.Zero(t, c.Pending())
}

func TestIdleWatchdog_RearmReplacesTimer(t *testing.T) {
	c := clock.NewFakeClock(time.Unix(0, 0))
	w := NewIdleWatchdog(c, 30*time.Second)
	guildID := snowflake.ID(1)

	var fired []uint64
	record := func(gen uint64) { fired = append(fired, gen) }

	w.Arm(guildID, record)
	c.Advance(20 * time.Second)
	w.Arm(guildID, record)
	assert.Equal(t, 1, c.Pending())

	c.Advance(10 * time.Second)
	assert.Empty(t, fired)

	c.Advance(20 * time.Second)
	require.Len(t, fired, 1)
	assert.True(t, w.Release(guildID, fired[0]))
}

func TestIdleWatchdog_ReleaseRejectsStaleGeneration(t *testing.T) {
	c := clock.NewFakeClock(time.Unix(0, 0))
	w := NewIdleWatchdog(c, time.Second)
	guildID := snowflake.ID(1)

	var fired []uint64
	w.Arm(guildID, func(gen uint64) { fired = append(fired, gen) })
	c.Advance(time.Second)
	require.Len(t, fired, 1)

	// Re-armed between firing and the callback claiming the lock.
	w.Arm(guildID, func(uint64) {})
	assert.False(t, w.Release(guildID, fired[0]))
	assert.True(t, w.Armed(guildID))

	w.Cancel(guildID)
	assert.False(t, w.Release(guildID, fired[0]))
}

func TestNewIdleWatchdog_DefaultTimeout(t *testing.T) {
	w := NewIdleWatchdog(clock.NewFakeClock(time.Unix(0, 0)), 0)
	assert.Equal(t, DefaultIdleTimeout, w.Timeout())
}
