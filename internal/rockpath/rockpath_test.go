package rockpath

import (
	"bufio"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/cgudrian/adventofcode/internal/geom"
)

func TestParse(t *testing.T) {
	paths, err := ParseString("1,1 -> 2,1\n3,3 -> 3,4 -> 5,4\n")
	require.NoError(t, err)
	require.Len(t, paths, 2)
	require.Equal(t, Path{{1, 1}, {2, 1}}, paths[0])
	require.Equal(t, Path{{3, 3}, {3, 4}, {5, 4}}, paths[1])
}

func TestParseEmptyInput(t *testing.T) {
	for _, input := range []string{"", "\n", "\n\n  \n"} {
		paths, err := ParseString(input)
		require.NoError(t, err)
		require.Empty(t, paths)
	}
}

func TestParseWithoutTrailingNewline(t *testing.T) {
	paths, err := ParseString("7,0 -> 7,2")
	require.NoError(t, err)
	require.Equal(t, []Path{{{7, 0}, {7, 2}}}, paths)
}

func TestParseLargestCoordinate(t *testing.T) {
	paths, err := ParseString("65535,0 -> 65535,1\n")
	require.NoError(t, err)
	require.Equal(t, []Path{{{65535, 0}, {65535, 1}}}, paths)
}

func TestParseLongLine(t *testing.T) {
	// Well past bufio's default 64 KiB token size.
	const n = 12000
	line := strings.Repeat("1,1 -> ", n) + "1,1\n"
	paths, err := ParseString(line)
	require.NoError(t, err)
	require.Len(t, paths, 1)
	require.Len(t, paths[0], n+1)

	_, err = ParseString(strings.Repeat("1,1 -> ", maxLineLen/7+1) + "1,1\n")
	require.ErrorIs(t, err, bufio.ErrTooLong)
}

func TestParseSyntaxErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		line  int
	}{
		{"no comma", "498 4 -> 498,6\n", 1},
		{"not a number", "1,1 -> x,2\n", 1},
		{"negative", "1,1\n1,-2 -> 1,1\n", 2},
		{"plus sign", "+5,1 -> 5,3\n", 1},
		{"too large", "0,0 -> 4000000000,0\n", 1},
		{"just above u16", "1,1\n\n65536,2\n", 3},
		{"dangling arrow", "1,1 -> \n", 1},
		{"wrong separator", "1,1 => 1,2\n", 1},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := ParseString(test.input)
			require.ErrorIs(t, err, ErrSyntax)

			var pe *ParseError
			require.True(t, errors.As(err, &pe))
			require.Equal(t, test.line, pe.Line)
		})
	}
}

func TestRasterizeExample(t *testing.T) {
	f, err := os.Open("testdata/example.txt")
	require.NoError(t, err)
	defer f.Close()

	set, err := Load(f)
	require.NoError(t, err)
	require.Equal(t, 20, set.Len())

	want := []geom.Point{
		{498, 4}, {502, 4}, {503, 4},
		{498, 5}, {502, 5},
		{496, 6}, {497, 6}, {498, 6}, {502, 6},
		{502, 7},
		{502, 8},
		{494, 9}, {495, 9}, {496, 9}, {497, 9}, {498, 9}, {499, 9}, {500, 9}, {501, 9}, {502, 9},
	}
	if diff := cmp.Diff(want, set.Sorted()); diff != "" {
		t.Errorf("rasterized points mismatch (-want +got):\n%s", diff)
	}

	lo, hi, ok := set.Bounds()
	require.True(t, ok)
	require.Equal(t, geom.Point{X: 494, Y: 4}, lo)
	require.Equal(t, geom.Point{X: 503, Y: 9}, hi)
}

func TestRasterizeDedup(t *testing.T) {
	paths := []Path{
		{{0, 0}, {4, 0}, {1, 0}, {1, 2}, {1, 0}},
		{{2, 0}, {3, 0}},
	}
	set, err := Rasterize(paths)
	require.NoError(t, err)

	want := []geom.Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}, {1, 1}, {1, 2}}
	if diff := cmp.Diff(want, set.Sorted()); diff != "" {
		t.Errorf("dedup mismatch (-want +got):\n%s", diff)
	}
}

func TestRasterizeSinglePoint(t *testing.T) {
	set, err := Rasterize([]Path{{{5, 5}}, {{5, 5}, {5, 5}}})
	require.NoError(t, err)
	require.Equal(t, 1, set.Len())
	require.True(t, set.Contains(geom.Point{X: 5, Y: 5}))
}

func TestRasterizeMalformedPath(t *testing.T) {
	paths, err := ParseString("0,0 -> 0,3\n0,3 -> 2,5\n")
	require.NoError(t, err)

	set, err := Rasterize(paths)
	require.Nil(t, set)
	require.ErrorIs(t, err, ErrMalformedPath)

	var se *SegmentError
	require.True(t, errors.As(err, &se))
	require.Equal(t, 1, se.Path)
	require.Equal(t, geom.Point{X: 0, Y: 3}, se.From)
	require.Equal(t, geom.Point{X: 2, Y: 5}, se.To)
}

func TestLoadEmpty(t *testing.T) {
	set, err := Load(strings.NewReader(""))
	require.NoError(t, err)
	require.Zero(t, set.Len())

	_, _, ok := set.Bounds()
	require.False(t, ok)
}
