// File: internal/trajectory/generator.go
package trajectory

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// headingJitter is the half-width, in radians, of the random heading perturbation.
const headingJitter = 0.1

// maxPreallocatedSamples bounds the initial sample buffer. Longer runs grow it on demand.
const maxPreallocatedSamples = 4096

// Sample records one emitted point together with the state that produced it.
type Sample struct {
	Elapsed      time.Duration
	PhaseIndex   int
	Phase        PhaseKind
	Progress     float64
	Speed        float64
	NoiseHeading float64
	Heading      float64
	Position     Coordinate
}

// Run is the complete result of one generation.
type Run struct {
	ID      string
	Params  Params
	Samples []Sample
}

// Coordinates returns the emitted positions in order.
func (r *Run) Coordinates() []Coordinate {
	out := make([]Coordinate, len(r.Samples))
	for i, s := range r.Samples {
		out[i] = s.Position
	}
	return out
}

// Generator synthesizes phased, noise-steered pointer trajectories.
// A Generator holds no per-run state and is safe for concurrent use.
type Generator struct {
	logger   *zap.Logger
	interval time.Duration
	newClock ClockFactory
}

// Option customizes a Generator.
type Option func(*Generator)

// WithSampleInterval sets the spacing between samples. Non-positive values are ignored.
func WithSampleInterval(d time.Duration) Option {
	return func(g *Generator) {
		if d > 0 {
			g.interval = d
		}
	}
}

// WithClock overrides the clock used for each run.
func WithClock(f ClockFactory) Option {
	return func(g *Generator) {
		if f != nil {
			g.newClock = f
		}
	}
}

// WithRealtime switches between wall-clock pacing and the virtual stepper.
func WithRealtime(enabled bool) Option {
	return func(g *Generator) {
		if enabled {
			g.newClock = NewRealtimeClock
		} else {
			g.newClock = NewVirtualClock
		}
	}
}

// New creates a Generator. By default it runs on a virtual clock with a 10ms step.
func New(logger *zap.Logger, opts ...Option) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	g := &Generator{
		logger:   logger.Named("trajectory"),
		interval: DefaultSampleInterval,
		newClock: NewVirtualClock,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate runs one synthesis and returns only the coordinates.
func (g *Generator) Generate(ctx context.Context, p Params) ([]Coordinate, error) {
	run, err := g.Trace(ctx, p)
	if err != nil {
		return nil, err
	}
	return run.Coordinates(), nil
}

// Trace runs one synthesis and returns every sample with its phase, speed and heading.
// The run owns its random source, seeded from p.Seed, so a virtual-clock run is
// fully determined by its parameters. Cancellation is checked once per iteration and
// a cancelled run yields no samples.
func (g *Generator) Trace(ctx context.Context, p Params) (*Run, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	run := &Run{
		ID:      uuid.New().String(),
		Params:  p,
		Samples: make([]Sample, 0, min(int(p.Duration/g.interval)+1, maxPreallocatedSamples)),
	}
	logger := g.logger.With(zap.String("run_id", run.ID), zap.Int64("seed", p.Seed))
	logger.Debug("Starting trajectory generation",
		zap.Duration("duration", p.Duration),
		zap.Float64("max_velocity", p.MaxVelocity),
		zap.Int("octaves", p.Octaves),
	)

	rng := rand.New(rand.NewSource(p.Seed))
	field := NewNoiseField(p)
	clock := g.newClock(g.interval)
	total := p.Duration.Seconds()

	var pos Coordinate
	start := clock.Now()
	last, phaseStart := start, start
	idx := 0

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		now := clock.Now()
		elapsed := now - start
		if elapsed >= p.Duration || idx >= len(schedule) {
			break
		}

		phase := schedule[idx]
		progress := (now - phaseStart).Seconds() / (phase.Share * total)
		if progress >= 1.0 {
			idx++
			phaseStart = now
			logger.Debug("Phase complete",
				zap.Stringer("phase", phase.Kind),
				zap.Int("next_index", idx),
				zap.Duration("elapsed", elapsed),
			)
			continue
		}

		nx, ny := field.Sample(elapsed.Seconds() / total)
		speed := phase.Kind.Speed(progress, p.MaxVelocity, rng)
		noiseHeading := math.Atan2(ny, nx)
		heading := noiseHeading + uniform(rng, -headingJitter, headingJitter)

		magnitude := speed * (now - last).Seconds()
		dx := math.Cos(heading) * magnitude
		dy := math.Sin(heading) * magnitude

		if amp := phase.Kind.Tremor(); amp > 0 {
			dx += uniform(rng, -amp, amp)
			dy += uniform(rng, -amp, amp)
		}

		pos = Coordinate{X: pos.X + int(dx), Y: pos.Y + int(dy)}
		run.Samples = append(run.Samples, Sample{
			Elapsed:      elapsed,
			PhaseIndex:   idx,
			Phase:        phase.Kind,
			Progress:     progress,
			Speed:        speed,
			NoiseHeading: noiseHeading,
			Heading:      heading,
			Position:     pos,
		})
		last = now

		if err := clock.Wait(ctx); err != nil {
			return nil, fmt.Errorf("pacing trajectory sample %d: %w", len(run.Samples), err)
		}
	}

	logger.Debug("Trajectory generation finished",
		zap.Int("samples", len(run.Samples)),
		zap.Int("phases_completed", idx),
	)
	return run, nil
}
