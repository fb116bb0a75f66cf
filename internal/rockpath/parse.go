// Package rockpath reads the rock outline of a cave scan and rasterizes it
// into lattice points.
//
// Each input line is one path of waypoints joined by straight segments:
//
//	498,4 -> 498,6 -> 496,6
//	503,4 -> 502,4 -> 502,9 -> 494,9
package rockpath

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"

	"github.com/cgudrian/adventofcode/internal/geom"
)

const (
	waypointSep = " -> "
	// maxLineLen bounds a single path line.
	maxLineLen = 1 << 20
)

// Path is an ordered list of waypoints.
type Path []geom.Point

// byPiece yields the pieces of s between occurrences of sep, numbered
// from zero. An empty s yields a single empty piece.
func byPiece(s string, sep string) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for n, more := 0, true; more; n++ {
			var piece string
			piece, s, more = strings.Cut(s, sep)
			if !yield(n, piece) {
				return
			}
		}
	}
}

// parseCoord accepts plain decimal digits in the range 0..65535.
func parseCoord(s string) (int, error) {
	v, err := strconv.ParseUint(s, 10, 16)
	if err == nil {
		return int(v), nil
	}
	if errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("%w: coordinate %s is out of range", ErrSyntax, s)
	}
	return 0, fmt.Errorf("%w: coordinate %q is not a non-negative integer", ErrSyntax, s)
}

func parsePoint(s string) (p geom.Point, err error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return p, fmt.Errorf("%w: waypoint %q has no comma", ErrSyntax, s)
	}
	if p.X, err = parseCoord(xs); err != nil {
		return
	}
	if p.Y, err = parseCoord(ys); err != nil {
		return
	}
	return
}

func parsePath(line string) (Path, error) {
	var path Path
	for _, piece := range byPiece(line, waypointSep) {
		p, err := parsePoint(strings.TrimSpace(piece))
		if err != nil {
			return nil, err
		}
		path = append(path, p)
	}
	return path, nil
}

// Parse reads one path per line. Blank lines are skipped, so empty input
// yields no paths. Lines longer than 1 MiB fail with bufio.ErrTooLong.
func Parse(r io.Reader) ([]Path, error) {
	var (
		paths   []Path
		scanner = bufio.NewScanner(r)
		lineNo  = 0
	)
	scanner.Buffer(nil, maxLineLen)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		path, err := parsePath(line)
		if err != nil {
			return nil, &ParseError{Line: lineNo, Text: line, Err: err}
		}
		paths = append(paths, path)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading rock paths: %w", err)
	}
	return paths, nil
}

func ParseString(s string) ([]Path, error) {
	return Parse(strings.NewReader(s))
}

// Load parses r and rasterizes the result.
func Load(r io.Reader) (PointSet, error) {
	paths, err := Parse(r)
	if err != nil {
		return nil, err
	}
	return Rasterize(paths)
}
