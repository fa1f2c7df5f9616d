// File: internal/trajectory/clock_test.go
package trajectory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVirtualClock(t *testing.T) {
	clock := NewVirtualClock(10 * time.Millisecond)
	ctx := context.Background()

	assert.Equal(t, time.Duration(0), clock.Now())
	for i := 1; i <= 5; i++ {
		require.NoError(t, clock.Wait(ctx))
		assert.Equal(t, time.Duration(i)*10*time.Millisecond, clock.Now())
	}

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	err := clock.Wait(cancelled)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 50*time.Millisecond, clock.Now(), "a cancelled wait must not advance time")
}

func TestRealtimeClock_Paces(t *testing.T) {
	const step = 5 * time.Millisecond
	clock := NewRealtimeClock(step)
	ctx := context.Background()

	begin := time.Now()
	for i := 0; i < 4; i++ {
		require.NoError(t, clock.Wait(ctx))
	}
	// Four paced waits need at least three full steps even with scheduler slack.
	assert.GreaterOrEqual(t, time.Since(begin), 3*step)
	assert.GreaterOrEqual(t, clock.Now(), 3*step)
}

func TestRealtimeClock_Cancel(t *testing.T) {
	clock := NewRealtimeClock(time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := clock.Wait(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
