package board

import (
	"context"
	"testing"
	"time"

	"github.com/klokku/eventboard/internal/utils"
	"github.com/klokku/eventboard/pkg/event"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessions(t *testing.T) {
	newSessions := func(clock *utils.MockClock) *Sessions {
		client := event.NewClientStub()
		return NewSessions(func() (*Board, error) {
			return NewBoard(client, clock, DefaultHideAfter)
		}, clock, 10*time.Minute)
	}

	t.Run("Open replaces the session's board", func(t *testing.T) {
		clock := &utils.MockClock{FixedNow: time.Now()}
		sessions := newSessions(clock)

		first, err := sessions.Open("s1")
		require.NoError(t, err)
		second, err := sessions.Open("s1")
		require.NoError(t, err)

		assert.NotSame(t, first, second)
		assert.Same(t, second, sessions.Get("s1"))
		assert.Equal(t, 1, sessions.Len())
	})

	t.Run("Get returns nil for unknown sessions", func(t *testing.T) {
		sessions := newSessions(&utils.MockClock{FixedNow: time.Now()})

		assert.Nil(t, sessions.Get("nope"))
	})

	t.Run("Idle sessions are evicted when another opens", func(t *testing.T) {
		clock := &utils.MockClock{FixedNow: time.Now()}
		sessions := newSessions(clock)
		_, err := sessions.Open("idle")
		require.NoError(t, err)
		_, err = sessions.Open("active")
		require.NoError(t, err)

		clock.Advance(6 * time.Minute)
		sessions.Get("active")
		clock.Advance(6 * time.Minute)
		_, err = sessions.Open("new")
		require.NoError(t, err)

		assert.Nil(t, sessions.Get("idle"))
		assert.NotNil(t, sessions.Get("active"))
		assert.Equal(t, 2, sessions.Len())
	})
}

func TestSessionContext(t *testing.T) {
	_, err := SessionID(context.Background())
	assert.ErrorIs(t, err, ErrNoSession)

	id, err := SessionID(WithSessionID(context.Background(), "abc"))
	require.NoError(t, err)
	assert.Equal(t, "abc", id)
}
