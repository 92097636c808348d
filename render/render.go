// Package render draws a grid and an A* snapshot as ASCII art.
//
// Glyphs, highest precedence first:
//
//	S  start        E  end
//	*  final path   @  node expanded this step
//	o  open         .  closed
//	#  wall            (space) unexplored path
package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/mazerun/astar"
	"github.com/katalvlaran/mazerun/grid"
)

// ErrNilGrid is returned when Frame is given no grid.
var ErrNilGrid = errors.New("render: grid is nil")

// Glyphs used by Frame.
const (
	Wall    = '#'
	Empty   = ' '
	Start   = 'S'
	End     = 'E'
	OnPath  = '*'
	Current = '@'
	Open    = 'o'
	Closed  = '.'
)

// Legend is a one-line key for the glyphs.
const Legend = "S start  E end  * path  @ current  o open  . closed  # wall"

// Frame writes g to w, one line per row, overlaying st when non-nil.
func Frame(w io.Writer, g *grid.Grid, start, end grid.Coord, st *astar.State) error {
	if g == nil {
		return ErrNilGrid
	}

	var onPath map[grid.Coord]bool
	if st != nil && len(st.Path) > 0 {
		onPath = make(map[grid.Coord]bool, len(st.Path))
		for _, c := range st.Path {
			onPath[c] = true
		}
	}

	var sb strings.Builder
	sb.Grow(g.Height * (g.Width + 1))
	for r := 0; r < g.Height; r++ {
		for c := 0; c < g.Width; c++ {
			sb.WriteByte(glyph(g, grid.C(r, c), start, end, st, onPath))
		}
		sb.WriteByte('\n')
	}

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("render: write frame: %w", err)
	}
	return nil
}

// String is Frame into a string.
func String(g *grid.Grid, start, end grid.Coord, st *astar.State) string {
	var sb strings.Builder
	_ = Frame(&sb, g, start, end, st)
	return sb.String()
}

func glyph(g *grid.Grid, at, start, end grid.Coord, st *astar.State, onPath map[grid.Coord]bool) byte {
	switch {
	case at == start:
		return Start
	case at == end:
		return End
	case !g.IsPath(at):
		return Wall
	case st == nil:
		return Empty
	case onPath[at]:
		return OnPath
	case st.HasCurrent && at == st.Current:
		return Current
	case st.Open.Has(at):
		return Open
	case st.Closed.Has(at):
		return Closed
	}
	return Empty
}
