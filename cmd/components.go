// File: cmd/components.go
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xkilldash9x/oxymouse/internal/config"
	"github.com/xkilldash9x/oxymouse/internal/movement"
	"github.com/xkilldash9x/oxymouse/internal/observability"
	"github.com/xkilldash9x/oxymouse/internal/reporting"
	"github.com/xkilldash9x/oxymouse/internal/trajectory"
)

// components bundles everything a subcommand needs to generate and report paths.
type components struct {
	Config    *config.Config
	Logger    *zap.Logger
	Generator *trajectory.Generator
	Registry  *movement.Registry
}

func initializeComponents(cmd *cobra.Command) (*components, error) {
	cfg, err := configFrom(cmd)
	if err != nil {
		return nil, err
	}
	logger := observability.GetLogger()

	gen := trajectory.New(logger, cfg.Trajectory().GeneratorOptions()...)
	oxy := movement.NewOxy(gen, cfg.Trajectory().Params(), logger)
	registry, err := movement.DefaultRegistry(oxy)
	if err != nil {
		return nil, fmt.Errorf("failed to build algorithm registry: %w", err)
	}

	return &components{
		Config:    cfg,
		Logger:    logger,
		Generator: gen,
		Registry:  registry,
	}, nil
}

// resolveMovement resolves the algorithm selected with --algorithm.
func (c *components) resolveMovement(cmd *cobra.Command) (string, movement.Movement, error) {
	name, err := cmd.Flags().GetString("algorithm")
	if err != nil {
		return "", nil, err
	}
	m, err := c.Registry.Get(name)
	if err != nil {
		return "", nil, err
	}
	return name, m, nil
}

// report writes results using the configured output format and destination.
func (c *components) report(cmd *cobra.Command, results ...*reporting.Result) (err error) {
	out := c.Config.Output()

	var reporter reporting.Reporter
	if out.Path == "" || out.Path == "stdout" {
		reporter, err = reporting.NewWriter(out.Format, cmd.OutOrStdout())
	} else {
		reporter, err = reporting.New(out.Format, out.Path)
	}
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := reporter.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to finalize output: %w", closeErr)
		}
	}()

	for _, r := range results {
		if err := reporter.Write(r); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}
