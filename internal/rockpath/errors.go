package rockpath

import (
	"errors"
	"fmt"

	"github.com/cgudrian/adventofcode/internal/geom"
)

var (
	ErrSyntax = errors.New("rockpath: invalid syntax")
	// ErrMalformedPath marks a pair of consecutive waypoints that share
	// neither a row nor a column.
	ErrMalformedPath = errors.New("rockpath: segment is not axis-aligned")
)

type ParseError struct {
	Line int
	Text string
	Err  error
}

// [ParseError] implements [error]
func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

type SegmentError struct {
	Path     int
	From, To geom.Point
}

// [SegmentError] implements [error]
func (e *SegmentError) Error() string {
	return fmt.Sprintf("path %d: %s -> %s: %v", e.Path, e.From, e.To, ErrMalformedPath)
}

func (e *SegmentError) Unwrap() error {
	return ErrMalformedPath
}
