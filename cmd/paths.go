// File: cmd/paths.go
package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xkilldash9x/oxymouse/internal/movement"
	"github.com/xkilldash9x/oxymouse/internal/reporting"
	"github.com/xkilldash9x/oxymouse/internal/trajectory"
)

// pathFunc produces one path from a resolved movement algorithm.
type pathFunc func(ctx context.Context, m movement.Movement) ([]trajectory.Coordinate, error)

// runPath is the shared body of the path, random and scroll commands.
func runPath(cmd *cobra.Command, kind string, fn pathFunc) error {
	c, err := initializeComponents(cmd)
	if err != nil {
		return err
	}
	name, m, err := c.resolveMovement(cmd)
	if err != nil {
		return err
	}

	points, err := fn(cmd.Context(), m)
	if err != nil {
		return err
	}

	c.Logger.Info("Generated path",
		zap.String("algorithm", name),
		zap.String("kind", kind),
		zap.Int("points", len(points)),
	)
	return c.report(cmd, &reporting.Result{
		Algorithm: name,
		Kind:      kind,
		Seed:      c.Config.Trajectory().Params().Seed,
		Points:    points,
	})
}

// newPathCmd creates the `path` command (point-to-point movement).
func newPathCmd() *cobra.Command {
	var fromX, fromY, toX, toY int

	cmd := &cobra.Command{
		Use:   "path",
		Short: "Generate a path from one point to another",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPath(cmd, "path", func(ctx context.Context, m movement.Movement) ([]trajectory.Coordinate, error) {
				return m.Coordinates(ctx, fromX, fromY, toX, toY)
			})
		},
	}

	cmd.Flags().IntVar(&fromX, "from-x", 0, "start x")
	cmd.Flags().IntVar(&fromY, "from-y", 0, "start y")
	cmd.Flags().IntVar(&toX, "to-x", 1000, "destination x")
	cmd.Flags().IntVar(&toY, "to-y", 1000, "destination y")
	return cmd
}

// newRandomCmd creates the `random` command (free movement inside a viewport).
func newRandomCmd() *cobra.Command {
	var width, height int

	cmd := &cobra.Command{
		Use:   "random",
		Short: "Generate a free-form path inside a viewport",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPath(cmd, "random", func(ctx context.Context, m movement.Movement) ([]trajectory.Coordinate, error) {
				return m.RandomCoordinates(ctx, width, height)
			})
		},
	}

	cmd.Flags().IntVar(&width, "width", 1920, "viewport width")
	cmd.Flags().IntVar(&height, "height", 1080, "viewport height")
	return cmd
}

// newScrollCmd creates the `scroll` command (vertical scroll path).
func newScrollCmd() *cobra.Command {
	var startY, endY int

	cmd := &cobra.Command{
		Use:   "scroll",
		Short: "Generate a vertical scroll path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPath(cmd, "scroll", func(ctx context.Context, m movement.Movement) ([]trajectory.Coordinate, error) {
				return m.ScrollCoordinates(ctx, startY, endY)
			})
		},
	}

	cmd.Flags().IntVar(&startY, "start", 0, "scroll start y")
	cmd.Flags().IntVar(&endY, "end", 1000, "scroll end y")
	return cmd
}

// newAlgorithmsCmd creates the `algorithms` command, which lists registered algorithms.
func newAlgorithmsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "List the available movement algorithms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := initializeComponents(cmd)
			if err != nil {
				return err
			}
			for _, name := range c.Registry.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}
