// File: internal/movement/rescale.go
package movement

import (
	"fmt"

	"github.com/xkilldash9x/oxymouse/internal/trajectory"
)

// extent is the observed bounding box of a run.
type extent struct {
	minX, maxX int
	minY, maxY int
}

func measure(coords []trajectory.Coordinate) (extent, error) {
	if len(coords) == 0 {
		return extent{}, fmt.Errorf("%w: empty run", ErrDegenerateRange)
	}
	e := extent{minX: coords[0].X, maxX: coords[0].X, minY: coords[0].Y, maxY: coords[0].Y}
	for _, c := range coords[1:] {
		e.minX = min(e.minX, c.X)
		e.maxX = max(e.maxX, c.X)
		e.minY = min(e.minY, c.Y)
		e.maxY = max(e.maxY, c.Y)
	}
	if e.minX == e.maxX {
		return extent{}, fmt.Errorf("%w: x is constant at %d", ErrDegenerateRange, e.minX)
	}
	if e.minY == e.maxY {
		return extent{}, fmt.Errorf("%w: y is constant at %d", ErrDegenerateRange, e.minY)
	}
	return e, nil
}

// rescale maps the observed min/max of each axis onto [x0, x1] and [y0, y1].
// Reversed target ranges are allowed and mirror the axis.
func rescale(coords []trajectory.Coordinate, x0, y0, x1, y1 int) ([]trajectory.Coordinate, error) {
	e, err := measure(coords)
	if err != nil {
		return nil, err
	}

	out := make([]trajectory.Coordinate, len(coords))
	for i, c := range coords {
		out[i] = trajectory.Coordinate{
			X: x0 + project(c.X-e.minX, x1-x0, e.maxX-e.minX),
			Y: y0 + project(c.Y-e.minY, y1-y0, e.maxY-e.minY),
		}
	}
	return out, nil
}

// project scales offset from a span of size from onto a span of size to.
func project(offset, to, from int) int {
	return int(float64(offset) * float64(to) / float64(from))
}
