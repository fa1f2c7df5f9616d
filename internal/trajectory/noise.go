// File: internal/trajectory/noise.go
package trajectory

import (
	opensimplex "github.com/ojrac/opensimplex-go"
)

const (
	// headingTimeScale stretches normalized run progress across the noise field.
	headingTimeScale = 3.0
	// seedRowSpan keeps the sampled row small enough for full float precision
	// at high octave frequencies. The permutation is already seeded.
	seedRowSpan = 1 << 16
)

// NoiseField is a seeded fractal noise field producing a smooth heading bias.
type NoiseField struct {
	noise       opensimplex.Noise
	seed        float64
	octaves     int
	persistence float64
	lacunarity  float64
}

// NewNoiseField builds the field from the run parameters.
func NewNoiseField(p Params) *NoiseField {
	return &NoiseField{
		noise:       opensimplex.New(p.Seed),
		seed:        float64(p.Seed % seedRowSpan),
		octaves:     p.Octaves,
		persistence: p.Persistence,
		lacunarity:  p.Lacunarity,
	}
}

// Sample returns the x and y noise channels at normalized run progress t.
func (f *NoiseField) Sample(t float64) (float64, float64) {
	x := t * headingTimeScale
	return f.fractal(x, f.seed), f.fractal(x, f.seed+1)
}

// fractal layers octaves of simplex noise, each scaled by persistence in
// amplitude and lacunarity in frequency. The result stays within [-1, 1].
func (f *NoiseField) fractal(x, y float64) float64 {
	total := 0.0
	amplitude := 1.0
	frequency := 1.0
	maxVal := 0.0

	for i := 0; i < f.octaves; i++ {
		total += f.noise.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= f.persistence
		frequency *= f.lacunarity
	}
	if maxVal == 0 {
		return 0
	}
	return total / maxVal
}
