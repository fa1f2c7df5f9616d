// File: internal/trajectory/params.go
package trajectory

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"
)

// ErrInvalidParameters is returned (wrapped) when a generation request cannot be run.
var ErrInvalidParameters = errors.New("invalid trajectory parameters")

const (
	DefaultDuration    = time.Second
	DefaultOctaves     = 6
	DefaultPersistence = 0.5
	DefaultLacunarity  = 2.0
	// DefaultMaxVelocity is expressed in units per second.
	DefaultMaxVelocity = 10000.0
	// maxDefaultSeed bounds the process-random seed.
	maxDefaultSeed = 100000
)

var (
	processSeed     int64
	processSeedOnce sync.Once
)

// ProcessSeed returns the seed used when a caller does not supply one.
// It is drawn once per process and then reused for every run.
func ProcessSeed() int64 {
	processSeedOnce.Do(func() {
		r := rand.New(rand.NewSource(time.Now().UnixNano()))
		processSeed = r.Int63n(maxDefaultSeed + 1)
	})
	return processSeed
}

// Coordinate is a single integer pointer position.
type Coordinate struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Params configures one generation run.
type Params struct {
	// Duration is the total simulated run time.
	Duration    time.Duration
	Octaves     int
	Persistence float64
	Lacunarity  float64
	Seed        int64
	// MaxVelocity is the peak speed in units per second.
	MaxVelocity float64
}

// DefaultParams returns the stock parameters with the process seed filled in.
func DefaultParams() Params {
	return Params{
		Duration:    DefaultDuration,
		Octaves:     DefaultOctaves,
		Persistence: DefaultPersistence,
		Lacunarity:  DefaultLacunarity,
		Seed:        ProcessSeed(),
		MaxVelocity: DefaultMaxVelocity,
	}
}

// Validate rejects parameters that would stall the loop or divide by zero.
// Lacunarity above 1 is recommended but only finiteness is enforced.
func (p Params) Validate() error {
	if p.Duration <= 0 {
		return fmt.Errorf("%w: duration must be positive, got %s", ErrInvalidParameters, p.Duration)
	}
	if p.MaxVelocity <= 0 || math.IsNaN(p.MaxVelocity) || math.IsInf(p.MaxVelocity, 0) {
		return fmt.Errorf("%w: max velocity must be a positive finite number, got %v", ErrInvalidParameters, p.MaxVelocity)
	}
	if p.Octaves < 1 {
		return fmt.Errorf("%w: octaves must be at least 1, got %d", ErrInvalidParameters, p.Octaves)
	}
	if !(p.Persistence > 0 && p.Persistence <= 1) {
		return fmt.Errorf("%w: persistence must be in (0, 1], got %v", ErrInvalidParameters, p.Persistence)
	}
	if math.IsNaN(p.Lacunarity) || math.IsInf(p.Lacunarity, 0) {
		return fmt.Errorf("%w: lacunarity must be finite, got %v", ErrInvalidParameters, p.Lacunarity)
	}
	return nil
}
