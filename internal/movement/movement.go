// File: internal/movement/movement.go
package movement

import (
	"context"
	"errors"

	"github.com/xkilldash9x/oxymouse/internal/trajectory"
)

var (
	// ErrDegenerateRange means a run collapsed to a single value on an axis, so no
	// finite scale factor exists.
	ErrDegenerateRange = errors.New("degenerate coordinate range")
	// ErrUnknownAlgorithm is returned by the registry for unregistered names.
	ErrUnknownAlgorithm = errors.New("unknown movement algorithm")
)

// Movement is the contract every path algorithm exposes to callers.
type Movement interface {
	// Coordinates returns a path that spans the rectangle between the two points,
	// starting at (fromX, fromY) and ending at (toX, toY).
	Coordinates(ctx context.Context, fromX, fromY, toX, toY int) ([]trajectory.Coordinate, error)
	// RandomCoordinates returns a free-form path that fits inside the viewport.
	RandomCoordinates(ctx context.Context, width, height int) ([]trajectory.Coordinate, error)
	// ScrollCoordinates returns a vertical path from startY to endY with x fixed at 0.
	ScrollCoordinates(ctx context.Context, startY, endY int) ([]trajectory.Coordinate, error)
}
