package jitter

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackoff_DelayBounds(t *testing.T) {
	b := NewBackoff(100*time.Millisecond, time.Second).WithRand(rand.New(rand.NewSource(1)))

	for attempt := 0; attempt < 8; attempt++ {
		base := 100 * time.Millisecond << attempt
		if base > time.Second {
			base = time.Second
		}

		d := b.Delay(attempt)
		assert.GreaterOrEqual(t, d, base, "attempt %d", attempt)
		assert.LessOrEqual(t, d, base+base/2, "attempt %d", attempt)
	}
}

func TestBackoff_ZeroFactorIsExact(t *testing.T) {
	b := NewBackoff(10*time.Millisecond, 50*time.Millisecond)
	b.Factor = 0

	assert.Equal(t, 10*time.Millisecond, b.Delay(0))
	assert.Equal(t, 40*time.Millisecond, b.Delay(2))
	assert.Equal(t, 50*time.Millisecond, b.Delay(5))
}

func TestBackoff_WaitHonoursContext(t *testing.T) {
	b := NewBackoff(time.Hour, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := b.Wait(ctx, 0)
	require.ErrorIs(t, err, context.Canceled)
}
