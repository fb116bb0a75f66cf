package cave

import (
	"context"
	"errors"
	"fmt"
	"iter"

	"github.com/sirupsen/logrus"

	"github.com/cgudrian/adventofcode/internal/geom"
)

const DefaultMaxDrops = 1_000_000

var DefaultInlet = geom.Point{X: 500, Y: 0}

type Options struct {
	Inlet geom.Point
	Floor bool
	// MaxDrops caps the number of grains released. Zero means
	// DefaultMaxDrops.
	MaxDrops int
}

type Result struct {
	// Grains counts settled grains, including one that blocked the inlet.
	Grains int
	Drops  int
	Last   Outcome
	Grid   *Grid
}

// Simulate builds a grid from rocks and drops grains until one is lost or
// one settles on the inlet.
//
// It stops early with ctx.Err() when ctx is done, and with ErrDropLimit
// when the cap is reached first; in both cases the partial result is
// returned alongside the error. An InvariantViolation raised while
// building or filling the grid is returned as the error.
func Simulate(ctx context.Context, rocks iter.Seq[geom.Point], opts Options) (res Result, err error) {
	defer func() {
		var iv InvariantViolation
		if r := recover(); r != nil {
			if e, ok := r.(error); ok && errors.As(e, &iv) {
				res, err = Result{}, iv
				return
			}
			panic(r)
		}
	}()

	limit := opts.MaxDrops
	if limit <= 0 {
		limit = DefaultMaxDrops
	}

	log := Log.WithFields(logrus.Fields{
		"inlet": opts.Inlet, "floor": opts.Floor,
	})

	g := New(opts.Inlet, rocks, opts.Floor)
	res.Grid = g
	log.WithField("bounds", g.Bounds()).Debug("cave ready")

	for res.Drops < limit {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		out := g.Drop()
		res.Drops++
		res.Last = out
		if out.Status == Settled {
			res.Grains++
			continue
		}
		if out.Status == Blocked {
			res.Grains++
		}
		log.WithFields(logrus.Fields{
			"grains": res.Grains, "drops": res.Drops,
			"last": out, "bounds": g.Bounds(),
		}).Debug("simulation finished")
		return res, nil
	}
	return res, fmt.Errorf("%w after %d drops", ErrDropLimit, res.Drops)
}
