package cave

import (
	"fmt"

	"github.com/cgudrian/adventofcode/internal/geom"
)

// Range is the half-open interval [Start, End).
type Range struct {
	Start, End int
}

func (r Range) Len() int {
	return r.End - r.Start
}

func (r Range) Contains(v int) bool {
	return r.Start <= v && v < r.End
}

// extend returns the smallest range covering both r and v.
func (r Range) extend(v int) Range {
	return Range{min(r.Start, v), max(r.End, v+1)}
}

// Bounds is the materialized rectangle of a grid.
type Bounds struct {
	X, Y Range
}

func (b Bounds) Contains(p geom.Point) bool {
	return b.X.Contains(p.X) && b.Y.Contains(p.Y)
}

// Bounds implements [fmt.Stringer]
func (b Bounds) String() string {
	return fmt.Sprintf("x[%d,%d) y[%d,%d)", b.X.Start, b.X.End, b.Y.Start, b.Y.End)
}
