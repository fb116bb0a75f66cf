// Package geom holds the lattice point type shared by the rock path
// rasterizer and the cave grid.
package geom

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

type Pt[T constraints.Signed] struct {
	X, Y T
}

// Point is the lattice point used throughout the cave.
type Point = Pt[int]

func (p Pt[T]) Add(d Pt[T]) Pt[T] {
	return Pt[T]{p.X + d.X, p.Y + d.Y}
}

// Toward returns the point one step from p in the direction of b along
// each axis that differs.
func (p Pt[T]) Toward(b Pt[T]) Pt[T] {
	return Pt[T]{p.X + Sign(b.X-p.X), p.Y + Sign(b.Y-p.Y)}
}

// AxisAligned reports whether p and b share a row or a column.
func (p Pt[T]) AxisAligned(b Pt[T]) bool {
	return p.X == b.X || p.Y == b.Y
}

// Less orders points row by row, then by column.
func (p Pt[T]) Less(b Pt[T]) bool {
	if p.Y != b.Y {
		return p.Y < b.Y
	}
	return p.X < b.X
}

// Compare is Less as a three-way comparison, for slices.SortFunc.
func Compare[T constraints.Signed](a, b Pt[T]) int {
	switch {
	case a.Less(b):
		return -1
	case b.Less(a):
		return 1
	default:
		return 0
	}
}

// Pt implements [fmt.Stringer]
func (p Pt[T]) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

func Sign[T constraints.Signed](v T) T {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}
