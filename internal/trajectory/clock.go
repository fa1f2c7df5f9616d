// File: internal/trajectory/clock.go
package trajectory

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// DefaultSampleInterval is the spacing between emitted samples.
const DefaultSampleInterval = 10 * time.Millisecond

// Clock supplies elapsed run time and paces the sampling loop.
type Clock interface {
	// Now returns the time elapsed since the clock was created.
	Now() time.Duration
	// Wait blocks (or advances) until the next sample is due.
	Wait(ctx context.Context) error
}

// ClockFactory creates a fresh clock for a single run.
type ClockFactory func(step time.Duration) Clock

// VirtualClock advances by a fixed step on every Wait and never sleeps.
// Runs driven by it are fast and fully reproducible.
type VirtualClock struct {
	step time.Duration
	now  time.Duration
}

// NewVirtualClock returns a virtual stepper starting at zero.
func NewVirtualClock(step time.Duration) Clock {
	return &VirtualClock{step: step}
}

func (c *VirtualClock) Now() time.Duration { return c.now }

func (c *VirtualClock) Wait(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.now += c.step
	return nil
}

// RealtimeClock reports wall-clock elapsed time and paces samples with a
// token bucket refilled once per step.
type RealtimeClock struct {
	start   time.Time
	limiter *rate.Limiter
}

// NewRealtimeClock returns a wall-clock pacer. The initial burst token is
// consumed up front so the first Wait already blocks for one step.
func NewRealtimeClock(step time.Duration) Clock {
	limiter := rate.NewLimiter(rate.Every(step), 1)
	limiter.Allow()
	return &RealtimeClock{start: time.Now(), limiter: limiter}
}

func (c *RealtimeClock) Now() time.Duration { return time.Since(c.start) }

func (c *RealtimeClock) Wait(ctx context.Context) error {
	return c.limiter.Wait(ctx)
}
