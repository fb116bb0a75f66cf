package cave

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/cgudrian/adventofcode/internal/geom"
)

type Status uint8

const (
	// Settled: the grain came to rest below the inlet.
	Settled Status = iota
	// Blocked: the grain came to rest on the inlet itself.
	Blocked
	// Lost: the grain fell past the lowest row with nothing beneath it.
	Lost
)

func (s Status) String() string {
	switch s {
	case Settled:
		return "settled"
	case Blocked:
		return "blocked"
	case Lost:
		return "lost"
	default:
		return fmt.Sprintf("Status(%d)", uint8(s))
	}
}

// Outcome is the terminal state of one drop.
type Outcome struct {
	Status Status
	Pos    geom.Point
}

// Outcome implements [fmt.Stringer]
func (o Outcome) String() string {
	return fmt.Sprintf("%s@%s", o.Status, o.Pos)
}

// probe order: straight down, down-left, down-right
var moves = [...]geom.Point{{X: 0, Y: 1}, {X: -1, Y: 1}, {X: 1, Y: 1}}

// Drop releases one grain at the inlet and follows it until it settles
// or is lost.
//
// The grain may only fall while the row beneath it lies inside the grid
// as it was when the drop began. With a floor that always holds. Without
// one, the bottom row is the lowest rock, and a grain that reaches it has
// nothing left to land on; its cell is marked Stuck unless it is the inlet.
// A grain whose next move leads into a Stuck cell shares that fate and is
// lost where it stands.
func (g *Grid) Drop() Outcome {
	var (
		pos    = g.inlet
		bottom = g.bounds.Y.End
	)
	for pos.Y+1 < bottom {
		next, ok, doomed := g.fall(pos)
		if doomed {
			break
		}
		if !ok {
			g.Put(pos, Sand)
			if pos == g.inlet {
				return Outcome{Blocked, pos}
			}
			return Outcome{Settled, pos}
		}
		pos = next
	}

	if pos != g.inlet {
		g.Put(pos, Stuck)
	}
	Log.WithFields(logrus.Fields{
		"pos": pos, "bounds": g.bounds,
	}).Debug("grain did not settle")
	return Outcome{Lost, pos}
}

// DropSand drops one grain and reports whether it settled somewhere other
// than the inlet. False means the run is over: either the inlet is now
// blocked or the grain was lost.
func (g *Grid) DropSand() bool {
	return g.Drop().Status == Settled
}

// fall picks the grain's next cell. doomed is set when that cell is Stuck.
func (g *Grid) fall(pos geom.Point) (next geom.Point, ok, doomed bool) {
	for _, d := range moves {
		next = pos.Add(d)
		switch c := g.Get(next); {
		case c == Stuck:
			return pos, false, true
		case c.Passable():
			return next, true, false
		}
	}
	return pos, false, false
}
