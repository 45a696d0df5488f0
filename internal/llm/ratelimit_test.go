package llm

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock is advanced by hand.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func newTestLimiter(perMinute int) (*rateLimiter, *fakeClock) {
	clock := &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	rl := newRateLimiter(perMinute)
	rl.now = clock.now
	rl.last = clock.t
	return rl, clock
}

func TestRateLimiter(t *testing.T) {
	t.Run("burst up to capacity", func(t *testing.T) {
		rl, _ := newTestLimiter(5)

		for i := range 5 {
			_, ok := rl.reserve()
			assert.True(t, ok, "reserve %d should succeed", i+1)
		}
		delay, ok := rl.reserve()
		assert.False(t, ok)
		assert.Equal(t, 12*time.Second, delay)
		assert.Equal(t, 0, rl.available())
	})

	t.Run("earns tokens over time", func(t *testing.T) {
		rl, clock := newTestLimiter(60)
		for range 60 {
			_, ok := rl.reserve()
			require.True(t, ok)
		}

		clock.t = clock.t.Add(2500 * time.Millisecond)
		assert.Equal(t, 2, rl.available())

		clock.t = clock.t.Add(time.Hour)
		assert.Equal(t, 60, rl.available(), "bucket never exceeds capacity")
	})

	t.Run("wait returns once a token is earned", func(t *testing.T) {
		// 6000/min earns one token every 10ms.
		rl := newRateLimiter(6000)
		for {
			if _, ok := rl.reserve(); !ok {
				break
			}
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		require.NoError(t, rl.wait(ctx))
	})

	t.Run("context cancellation", func(t *testing.T) {
		rl, _ := newTestLimiter(1)
		require.NoError(t, rl.wait(context.Background()))

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := rl.wait(ctx)
		require.ErrorIs(t, err, context.Canceled)
		assert.Contains(t, err.Error(), "rate limiter canceled")
	})

	t.Run("default capacity", func(t *testing.T) {
		rl, _ := newTestLimiter(0)
		assert.Equal(t, 60, rl.available())
	})
}
