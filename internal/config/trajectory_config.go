// File: internal/config/trajectory_config.go
// This file defines the TrajectoryConfig struct, which holds the tunable
// parameters of the phased trajectory generator: run length, the fractal noise
// shape that steers the heading, peak velocity and the sampling clock.
//
// The configuration is designed to be loaded from a file (e.g., YAML) using
// Viper, so a deployment can change the motion profile without code changes.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/xkilldash9x/oxymouse/internal/trajectory"
)

// TrajectoryConfig configures trajectory synthesis.
type TrajectoryConfig struct {
	Duration    time.Duration `mapstructure:"duration" yaml:"duration"`
	Octaves     int           `mapstructure:"octaves" yaml:"octaves"`
	Persistence float64       `mapstructure:"persistence" yaml:"persistence"`
	Lacunarity  float64       `mapstructure:"lacunarity" yaml:"lacunarity"`
	// Seed pins the run. When unset the process seed is used.
	Seed        *int64  `mapstructure:"seed" yaml:"seed,omitempty"`
	MaxVelocity float64 `mapstructure:"max_velocity" yaml:"max_velocity"`
	// SampleInterval is the simulated (or paced) time between samples.
	SampleInterval time.Duration `mapstructure:"sample_interval" yaml:"sample_interval"`
	// Realtime paces generation against the wall clock instead of a virtual stepper.
	Realtime bool `mapstructure:"realtime" yaml:"realtime"`
}

func setTrajectoryDefaults(v *viper.Viper) {
	v.SetDefault("trajectory.duration", trajectory.DefaultDuration)
	v.SetDefault("trajectory.octaves", trajectory.DefaultOctaves)
	v.SetDefault("trajectory.persistence", trajectory.DefaultPersistence)
	v.SetDefault("trajectory.lacunarity", trajectory.DefaultLacunarity)
	v.SetDefault("trajectory.max_velocity", trajectory.DefaultMaxVelocity)
	v.SetDefault("trajectory.sample_interval", trajectory.DefaultSampleInterval)
	v.SetDefault("trajectory.realtime", false)
}

// Params converts the configuration into generator parameters.
func (t TrajectoryConfig) Params() trajectory.Params {
	p := trajectory.DefaultParams()
	p.Duration = t.Duration
	p.Octaves = t.Octaves
	p.Persistence = t.Persistence
	p.Lacunarity = t.Lacunarity
	p.MaxVelocity = t.MaxVelocity
	if t.Seed != nil {
		p.Seed = *t.Seed
	}
	return p
}

// GeneratorOptions returns the clock options matching this configuration.
func (t TrajectoryConfig) GeneratorOptions() []trajectory.Option {
	return []trajectory.Option{
		trajectory.WithSampleInterval(t.SampleInterval),
		trajectory.WithRealtime(t.Realtime),
	}
}

// Validate checks the trajectory settings.
func (t *TrajectoryConfig) Validate() error {
	if t.SampleInterval <= 0 {
		return fmt.Errorf("sample_interval must be a positive duration")
	}
	return t.Params().Validate()
}
