package cave

import (
	"errors"
	"fmt"

	"github.com/cgudrian/adventofcode/internal/geom"
)

// ErrDropLimit is returned by Simulate when the drop cap is reached before
// the run terminates on its own.
var ErrDropLimit = errors.New("cave: drop limit reached")

// InvariantViolation is the panic value raised when the grid is asked to
// grow above its top row. It signals a bug in the caller's coordinates.
type InvariantViolation struct {
	Pos    geom.Point
	Bounds Bounds
}

// [InvariantViolation] implements [error]
func (e InvariantViolation) Error() string {
	return fmt.Sprintf("cave: cannot grow upward to %s, top row is %d",
		e.Pos, e.Bounds.Y.Start)
}
