// File: internal/movement/oxy.go
package movement

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/xkilldash9x/oxymouse/internal/trajectory"
)

// AlgorithmOxy is the registry key of the phased trajectory algorithm.
const AlgorithmOxy = "oxy"

// scrollReferenceHeight is the raw vertical range a scroll run is assumed to cover.
const scrollReferenceHeight = 1080.0

// Oxy adapts the phased trajectory generator to the Movement contract.
type Oxy struct {
	source trajectory.Synthesizer
	params trajectory.Params
	logger *zap.Logger
}

// NewOxy wires a generator (or any Synthesizer) with the parameters used for every path.
func NewOxy(source trajectory.Synthesizer, params trajectory.Params, logger *zap.Logger) *Oxy {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Oxy{source: source, params: params, logger: logger.Named("oxy")}
}

func (o *Oxy) generate(ctx context.Context) ([]trajectory.Coordinate, error) {
	coords, err := o.source.Generate(ctx, o.params)
	if err != nil {
		return nil, fmt.Errorf("generating trajectory: %w", err)
	}
	return coords, nil
}

// Coordinates rescales a run so its bounding box spans the two points. The path
// is pinned to the start point and closed on the destination.
func (o *Oxy) Coordinates(ctx context.Context, fromX, fromY, toX, toY int) ([]trajectory.Coordinate, error) {
	raw, err := o.generate(ctx)
	if err != nil {
		return nil, err
	}

	path, err := rescale(raw, fromX, fromY, toX, toY)
	if err != nil {
		return nil, err
	}

	path[0] = trajectory.Coordinate{X: fromX, Y: fromY}
	end := trajectory.Coordinate{X: toX, Y: toY}
	if path[len(path)-1] != end {
		path = append(path, end)
	}

	o.logger.Debug("Generated point-to-point path",
		zap.Int("from_x", fromX), zap.Int("from_y", fromY),
		zap.Int("to_x", toX), zap.Int("to_y", toY),
		zap.Int("points", len(path)),
	)
	return path, nil
}

// RandomCoordinates fits a run into the viewport [0, width-1] x [0, height-1].
func (o *Oxy) RandomCoordinates(ctx context.Context, width, height int) ([]trajectory.Coordinate, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: viewport must be positive, got %dx%d", trajectory.ErrInvalidParameters, width, height)
	}

	raw, err := o.generate(ctx)
	if err != nil {
		return nil, err
	}

	path, err := rescale(raw, 0, 0, width-1, height-1)
	if err != nil {
		return nil, err
	}
	o.logger.Debug("Generated viewport path",
		zap.Int("width", width), zap.Int("height", height), zap.Int("points", len(path)))
	return path, nil
}

// ScrollCoordinates projects the y channel of a run onto [startY, endY] and
// always lands exactly on endY.
func (o *Oxy) ScrollCoordinates(ctx context.Context, startY, endY int) ([]trajectory.Coordinate, error) {
	raw, err := o.generate(ctx)
	if err != nil {
		return nil, err
	}

	span := float64(endY - startY)
	path := make([]trajectory.Coordinate, 0, len(raw)+1)
	for _, c := range raw {
		y := int(float64(startY) + float64(c.Y)/scrollReferenceHeight*span)
		path = append(path, trajectory.Coordinate{X: 0, Y: y})
	}
	path = append(path, trajectory.Coordinate{X: 0, Y: endY})

	o.logger.Debug("Generated scroll path",
		zap.Int("start_y", startY), zap.Int("end_y", endY), zap.Int("points", len(path)))
	return path, nil
}
