// Package cave simulates sand pouring into a cave scan.
//
// The grid is conceptually infinite. Storage covers only the bounding
// rectangle of every cell written or read so far; the rectangle grows
// left, right and down on demand and never shrinks. It never grows up:
// the inlet is the highest point any grain or rock can occupy.
//
// With a floor, the lowest materialized row is rock across its whole
// width, and growth keeps it that way.
package cave

import (
	"iter"
	"slices"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/cgudrian/adventofcode/internal/geom"
)

var Log = logrus.New()

type Grid struct {
	rows   [][]CellState
	bounds Bounds
	inlet  geom.Point
	floor  bool
}

// New creates a grid holding only the inlet, then writes each rock. With
// floor set, a rock row is laid one empty row below the lowest row so far.
// A nil rocks sequence means no rocks.
//
// Panics with InvariantViolation if a rock lies above the inlet.
func New(inlet geom.Point, rocks iter.Seq[geom.Point], floor bool) *Grid {
	g := &Grid{
		rows: [][]CellState{{Inlet}},
		bounds: Bounds{
			X: Range{inlet.X, inlet.X + 1},
			Y: Range{inlet.Y, inlet.Y + 1},
		},
		inlet: inlet,
	}
	if rocks != nil {
		for p := range rocks {
			g.Put(p, Rock)
		}
	}
	if floor {
		g.addFloor()
	}
	return g
}

func (g *Grid) addFloor() {
	var (
		y    = g.bounds.Y.End + 1
		cols = g.bounds.X
	)
	for x := cols.Start; x < cols.End; x++ {
		g.Put(geom.Point{X: x, Y: y}, Rock)
	}
	g.floor = true
}

func (g *Grid) Bounds() Bounds { return g.bounds }

func (g *Grid) Width() int { return g.bounds.X.Len() }

func (g *Grid) Height() int { return g.bounds.Y.Len() }

func (g *Grid) Inlet() geom.Point { return g.inlet }

// Floor reports whether the grid maintains a rock floor.
func (g *Grid) Floor() bool { return g.floor }

// Contains reports whether p is materialized, without growing the grid.
func (g *Grid) Contains(p geom.Point) bool {
	return g.bounds.Contains(p)
}

// Put writes s at p, growing the grid first if p lies outside it.
func (g *Grid) Put(p geom.Point, s CellState) {
	g.ensure(p)
	row, col := g.index(p)
	g.rows[row][col] = s
}

// Get reads the cell at p. Like Put, it grows the grid to cover p.
func (g *Grid) Get(p geom.Point) CellState {
	g.ensure(p)
	row, col := g.index(p)
	return g.rows[row][col]
}

// Count returns the number of cells in state s.
func (g *Grid) Count(s CellState) (n int) {
	for _, row := range g.rows {
		for _, c := range row {
			if c == s {
				n++
			}
		}
	}
	return
}

func (g *Grid) index(p geom.Point) (row, col int) {
	return p.Y - g.bounds.Y.Start, p.X - g.bounds.X.Start
}

// fill is the state of a freshly materialized cell.
func (g *Grid) fill(bottom bool) CellState {
	if g.floor && bottom {
		return Rock
	}
	return Air
}

func (g *Grid) ensure(p geom.Point) {
	if g.bounds.Contains(p) {
		return
	}
	if p.Y < g.bounds.Y.Start {
		panic(InvariantViolation{Pos: p, Bounds: g.bounds})
	}

	last := len(g.rows) - 1
	if n := p.X - g.bounds.X.End + 1; n > 0 {
		for i := range g.rows {
			g.rows[i] = append(g.rows[i], slices.Repeat([]CellState{g.fill(i == last)}, n)...)
		}
	} else if n := g.bounds.X.Start - p.X; n > 0 {
		for i, row := range g.rows {
			g.rows[i] = append(slices.Repeat([]CellState{g.fill(i == last)}, n), row...)
		}
	}
	g.bounds.X = g.bounds.X.extend(p.X)

	/*
	 * In floor mode the old floor row stays rock and the new bottom row
	 * becomes the floor, so the invariant survives downward growth too.
	 */
	if n := p.Y - g.bounds.Y.End + 1; n > 0 {
		width := g.bounds.X.Len()
		for i := range n {
			g.rows = append(g.rows, slices.Repeat([]CellState{g.fill(i == n-1)}, width))
		}
	}
	g.bounds.Y = g.bounds.Y.extend(p.Y)
}

// Grid implements [fmt.Stringer]
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.Width() + 1) * g.Height())
	for _, row := range g.rows {
		for _, c := range row {
			b.WriteString(c.String())
		}
		b.WriteByte('\n')
	}
	return b.String()
}
