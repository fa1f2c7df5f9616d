// File: cmd/root.go
package cmd

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/xkilldash9x/oxymouse/internal/config"
	"github.com/xkilldash9x/oxymouse/internal/observability"
)

type contextKey string

const configKey contextKey = "config"

// flagBindings maps persistent flags onto their configuration keys. A flag only
// overrides the config file and environment when it is set explicitly.
var flagBindings = map[string]string{
	"duration":     "trajectory.duration",
	"seed":         "trajectory.seed",
	"max-velocity": "trajectory.max_velocity",
	"octaves":      "trajectory.octaves",
	"realtime":     "trajectory.realtime",
	"format":       "output.format",
	"output":       "output.path",
}

// NewRootCommand builds a fresh command tree with its own viper instance, so
// repeated invocations (and tests) never share flag or config state.
func NewRootCommand() *cobra.Command {
	v := viper.New()
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:           "oxymouse",
		Short:         "oxymouse synthesizes human-like pointer trajectories.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config.SetDefaults(v)

			if err := initializeConfig(v, cfgFile); err != nil {
				return fmt.Errorf("failed to initialize configuration: %w", err)
			}
			if err := applyFlagOverrides(cmd, v); err != nil {
				return err
			}

			cfg, err := config.NewConfigFromViper(v)
			if err != nil {
				observability.InitializeLogger(config.LoggerConfig{Level: "info", Format: "console", ServiceName: "oxymouse"})
				return fmt.Errorf("failed to load or validate config: %w", err)
			}

			observability.InitializeLogger(cfg.Logger())
			observability.GetLogger().Debug("Starting oxymouse", zap.String("version", Version))

			cmd.SetContext(context.WithValue(cmd.Context(), configKey, cfg))
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&cfgFile, "config", "c", "", "config file (default is ./config.yaml or ~/.oxymouse/config.yaml)")
	flags.String("algorithm", "oxy", "movement algorithm to use")
	flags.Duration("duration", 0, "total simulated duration of a run (e.g. 1s)")
	flags.Int64("seed", 0, "noise and jitter seed (default: random per process)")
	flags.Float64("max-velocity", 0, "peak pointer speed in units per second")
	flags.Int("octaves", 0, "noise octave count")
	flags.Bool("realtime", false, "pace generation against the wall clock")
	flags.StringP("format", "f", "", "output format: json, csv or text")
	flags.StringP("output", "o", "", "output file (default stdout)")

	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newPathCmd())
	rootCmd.AddCommand(newRandomCmd())
	rootCmd.AddCommand(newScrollCmd())
	rootCmd.AddCommand(newAlgorithmsCmd())
	return rootCmd
}

// Execute runs the root command with the given (signal-aware) context.
func Execute(ctx context.Context) error {
	err := NewRootCommand().ExecuteContext(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			observability.GetLogger().Warn("Generation aborted")
		} else {
			observability.GetLogger().Error("Command execution failed", zap.Error(err))
		}
	}
	observability.Sync()
	return err
}

// initializeConfig reads the config file if one is present.
func initializeConfig(v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		if home, err := homedir.Dir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".oxymouse"))
		}
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; proceed with defaults/env vars
	}
	return nil
}

func applyFlagOverrides(cmd *cobra.Command, v *viper.Viper) error {
	for name, key := range flagBindings {
		flag := cmd.Flags().Lookup(name)
		if flag == nil {
			return fmt.Errorf("flag --%s is not defined", name)
		}
		if flag.Changed {
			v.Set(key, flag.Value.String())
		}
	}
	return nil
}

// configFrom returns the validated configuration stored by PersistentPreRunE.
func configFrom(cmd *cobra.Command) (*config.Config, error) {
	cfg, ok := cmd.Context().Value(configKey).(*config.Config)
	if !ok || cfg == nil {
		return nil, errors.New("configuration not initialized")
	}
	return cfg, nil
}
