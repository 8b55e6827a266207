package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMockClock(t *testing.T) {
	start := time.Date(2026, time.October, 16, 9, 0, 0, 0, time.UTC)

	t.Run("Fires timers once their deadline passes", func(t *testing.T) {
		clock := &MockClock{FixedNow: start}
		var fired []string
		clock.AfterFunc(3*time.Second, func() { fired = append(fired, "late") })
		clock.AfterFunc(time.Second, func() { fired = append(fired, "early") })

		clock.Advance(2 * time.Second)
		assert.Equal(t, []string{"early"}, fired)
		assert.Equal(t, 1, clock.Pending())

		clock.Advance(time.Second)
		assert.Equal(t, []string{"early", "late"}, fired)
		assert.Equal(t, 0, clock.Pending())
		assert.Equal(t, start.Add(3*time.Second), clock.Now())
	})

	t.Run("Stopped timer never fires", func(t *testing.T) {
		clock := &MockClock{FixedNow: start}
		fired := false
		timer := clock.AfterFunc(time.Second, func() { fired = true })

		assert.True(t, timer.Stop())
		assert.False(t, timer.Stop())
		clock.Advance(time.Minute)

		assert.False(t, fired)
	})
}
