package rockpath

import (
	"iter"
	"maps"
	"slices"

	"github.com/cgudrian/adventofcode/internal/geom"
)

// PointSet is a deduplicated collection of lattice points.
type PointSet map[geom.Point]struct{}

func (s PointSet) Len() int {
	return len(s)
}

func (s PointSet) Contains(p geom.Point) bool {
	_, ok := s[p]
	return ok
}

func (s PointSet) add(p geom.Point) {
	s[p] = struct{}{}
}

// All yields the points in no particular order.
func (s PointSet) All() iter.Seq[geom.Point] {
	return maps.Keys(s)
}

// Sorted returns the points in row-major order.
func (s PointSet) Sorted() []geom.Point {
	return slices.SortedFunc(maps.Keys(s), geom.Compare[int])
}

// Bounds returns the smallest and largest coordinates on each axis.
// ok is false for an empty set.
func (s PointSet) Bounds() (lo, hi geom.Point, ok bool) {
	for p := range s {
		if !ok {
			lo, hi, ok = p, p, true
			continue
		}
		lo.X, lo.Y = min(lo.X, p.X), min(lo.Y, p.Y)
		hi.X, hi.Y = max(hi.X, p.X), max(hi.Y, p.Y)
	}
	return
}

// Rasterize returns every lattice point on the segments joining consecutive
// waypoints of each path, endpoints included. A path with a single waypoint
// contributes that point.
//
// Returns a *SegmentError wrapping ErrMalformedPath as soon as any segment is
// not axis-aligned; no partial set is returned.
func Rasterize(paths []Path) (PointSet, error) {
	set := make(PointSet)
	for i, path := range paths {
		if len(path) == 0 {
			continue
		}
		set.add(path[0])
		for j := 1; j < len(path); j++ {
			from, to := path[j-1], path[j]
			if !from.AxisAligned(to) {
				return nil, &SegmentError{Path: i, From: from, To: to}
			}
			for p := from; p != to; {
				p = p.Toward(to)
				set.add(p)
			}
		}
	}
	return set, nil
}
