package grid

import (
	"fmt"
	"strings"
)

const (
	wallGlyph = '#'
	pathGlyph = '.'
)

// Parse reads a grid from text, one line per row: '#' is Wall, '.' or ' ' is Path.
// Leading and trailing blank lines are ignored; a trailing '\r' is stripped.
// Returns ErrEmptyGrid, ErrNonRectangular or ErrBadGlyph.
func Parse(s string) (*Grid, error) {
	lines := strings.Split(strings.Trim(s, "\n"), "\n")
	for i := range lines {
		lines[i] = strings.TrimSuffix(lines[i], "\r")
	}
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len(lines[0])
	values := make([][]int, len(lines))
	for r, line := range lines {
		if len(line) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(line), w)
		}
		values[r] = make([]int, w)
		for c := 0; c < w; c++ {
			switch line[c] {
			case wallGlyph:
				values[r][c] = 1
			case pathGlyph, ' ':
			default:
				return nil, fmt.Errorf("%w: %q at %v", ErrBadGlyph, line[c], C(r, c))
			}
		}
	}
	return From2D(values)
}

// MustParse is like Parse but panics on error. Intended for fixtures.
func MustParse(s string) *Grid {
	g, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return g
}

// String renders the grid with '#' for Wall and '.' for Path, rows separated by '\n'.
// The result round-trips through Parse.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.Height * (g.Width + 1))
	for r := 0; r < g.Height; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < g.Width; c++ {
			if g.cells[g.index(r, c)] == Path {
				sb.WriteByte(pathGlyph)
			} else {
				sb.WriteByte(wallGlyph)
			}
		}
	}
	return sb.String()
}
