// File: cmd/generate.go
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xkilldash9x/oxymouse/internal/movement"
	"github.com/xkilldash9x/oxymouse/internal/reporting"
	"github.com/xkilldash9x/oxymouse/internal/trajectory"
)

// newGenerateCmd creates the `generate` command, which emits raw generator output.
func newGenerateCmd() *cobra.Command {
	var count, concurrency int

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate raw, unscaled trajectories",
		Long: `Generate runs the phased trajectory generator directly and writes its raw
coordinates. With --count, several runs are generated concurrently using
consecutive seeds, each with its own random source.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 {
				return fmt.Errorf("--count must be at least 1, got %d", count)
			}
			c, err := initializeComponents(cmd)
			if err != nil {
				return err
			}

			base := c.Config.Trajectory().Params()
			params := make([]trajectory.Params, count)
			for i := range params {
				params[i] = base
				params[i].Seed = base.Seed + int64(i)
			}

			runs, err := trajectory.GenerateBatch(cmd.Context(), c.Generator, params, concurrency)
			if err != nil {
				return fmt.Errorf("generation failed: %w", err)
			}

			results := make([]*reporting.Result, len(runs))
			for i, coords := range runs {
				results[i] = &reporting.Result{
					Algorithm: movement.AlgorithmOxy,
					Kind:      "generate",
					Seed:      params[i].Seed,
					Points:    coords,
				}
			}

			c.Logger.Info("Generated trajectories",
				zap.Int("count", count),
				zap.Int64("first_seed", base.Seed),
				zap.Duration("duration", base.Duration),
			)
			return c.report(cmd, results...)
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of runs to generate")
	cmd.Flags().IntVar(&concurrency, "concurrency", 4, "maximum runs generated in parallel")
	return cmd
}
