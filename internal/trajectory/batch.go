// File: internal/trajectory/batch.go
package trajectory

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Synthesizer is anything that can produce a trajectory from parameters.
type Synthesizer interface {
	Generate(ctx context.Context, p Params) ([]Coordinate, error)
}

// GenerateBatch runs one generation per parameter set, at most limit at a time.
// Results keep the input order. The first failure cancels the remaining runs and
// no partial results are returned.
func GenerateBatch(ctx context.Context, s Synthesizer, params []Params, limit int) ([][]Coordinate, error) {
	results := make([][]Coordinate, len(params))
	g, groupCtx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, p := range params {
		g.Go(func() error {
			coords, err := s.Generate(groupCtx, p)
			if err != nil {
				return err
			}
			results[i] = coords
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
