// File: internal/trajectory/phase.go
package trajectory

import (
	"fmt"
	"math"
	"math/rand"
)

// PhaseKind names a motion regime within a run.
type PhaseKind int

const (
	Accelerating PhaseKind = iota + 1
	PreciseMovement
	Decelerating
)

func (k PhaseKind) String() string {
	switch k {
	case Accelerating:
		return "accelerating"
	case PreciseMovement:
		return "precise_movement"
	case Decelerating:
		return "decelerating"
	default:
		return fmt.Sprintf("phase(%d)", int(k))
	}
}

// Phase pairs a regime with its fractional share of the total duration.
type Phase struct {
	Kind  PhaseKind
	Share float64
}

// schedule is consumed strictly in order. Shares sum to 1.0.
var schedule = [...]Phase{
	{Kind: Accelerating, Share: 0.2},    // initial burst
	{Kind: PreciseMovement, Share: 0.3}, // careful adjustments
	{Kind: Decelerating, Share: 0.2},    // slowdown
	{Kind: PreciseMovement, Share: 0.2}, // final adjustments
	{Kind: Decelerating, Share: 0.1},    // final positioning
}

// Phases returns a copy of the fixed phase schedule.
func Phases() []Phase {
	out := make([]Phase, len(schedule))
	copy(out, schedule[:])
	return out
}

// profile is the velocity strategy for one PhaseKind.
type profile struct {
	// speed maps phase progress in [0,1) to an instantaneous speed.
	speed func(progress, maxVelocity float64, rng *rand.Rand) float64
	// tremor is the half-width of the uniform micro-motion added per axis.
	tremor float64
}

var profiles = map[PhaseKind]profile{
	Accelerating: {
		speed: func(progress, maxVelocity float64, rng *rand.Rand) float64 {
			target := maxVelocity * (1 - math.Exp(-5*progress))
			return target + uniform(rng, -0.1, 0.1)*target
		},
	},
	PreciseMovement: {
		speed: func(progress, maxVelocity float64, rng *rand.Rand) float64 {
			target := 0.2 * maxVelocity * (0.5 + 0.5*math.Sin(4*math.Pi*progress))
			return target * uniform(rng, 0.8, 1.2)
		},
		tremor: 2.0,
	},
	Decelerating: {
		speed: func(progress, maxVelocity float64, rng *rand.Rand) float64 {
			return maxVelocity * math.Exp(-3*progress) * uniform(rng, 0.9, 1.1)
		},
	},
}

// Speed returns the non-negative speed for this regime at the given phase progress.
func (k PhaseKind) Speed(progress, maxVelocity float64, rng *rand.Rand) float64 {
	p, ok := profiles[k]
	if !ok {
		return 0
	}
	return math.Max(0, p.speed(progress, maxVelocity, rng))
}

// Tremor returns the per-axis tremor amplitude for this regime.
func (k PhaseKind) Tremor() float64 {
	return profiles[k].tremor
}

// uniform draws from [lo, hi).
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + (hi-lo)*rng.Float64()
}
