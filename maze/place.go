package maze

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/mazerun/grid"
)

// Side names one edge of the grid.
type Side int

// The four borders, in the order PlaceEndpoints draws from.
const (
	Top Side = iota
	Bottom
	Left
	Right
)

func (s Side) String() string {
	switch s {
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("Side(%d)", int(s))
}

// SideOf reports which border c lies on. Corners are never used as openings,
// so the first matching side in Top, Bottom, Left, Right order is returned.
func SideOf(g *grid.Grid, c grid.Coord) (Side, bool) {
	switch {
	case !g.OnBorder(c):
		return 0, false
	case c.Row == 0:
		return Top, true
	case c.Row == g.Height-1:
		return Bottom, true
	case c.Col == 0:
		return Left, true
	default:
		return Right, true
	}
}

// PlaceEndpoints picks two different borders uniformly at random (the first for
// Start, the second for End), chooses a non-corner cell on each and forces it and
// its interior neighbor to Path.
//
// Only odd positions along a side are eligible: their interior neighbor is a
// carved logical cell, so opening it connects to the maze without adding a cycle.
// A nil rng uses the default seed. Returns ErrInvalidDimension for grids smaller than 3×3.
func PlaceEndpoints(g *grid.Grid, rng *rand.Rand) (start, end grid.Coord, err error) {
	if g == nil {
		return start, end, ErrNilMaze
	}
	if g.Height < 3 || g.Width < 3 {
		return start, end, fmt.Errorf("%w: %dx%d grid has no interior", ErrInvalidDimension, g.Height, g.Width)
	}
	if rng == nil {
		rng = rngFromSeed(0)
	}

	sides := rng.Perm(4)
	start = openSide(g, Side(sides[0]), rng)
	end = openSide(g, Side(sides[1]), rng)
	return start, end, nil
}

// openSide opens a random odd cell on side s plus its inward neighbor.
func openSide(g *grid.Grid, s Side, rng *rand.Rand) grid.Coord {
	var at, inner grid.Coord
	switch s {
	case Top:
		at = grid.C(0, oddIndex(g.Width, rng))
		inner = grid.C(1, at.Col)
	case Bottom:
		at = grid.C(g.Height-1, oddIndex(g.Width, rng))
		inner = grid.C(g.Height-2, at.Col)
	case Left:
		at = grid.C(oddIndex(g.Height, rng), 0)
		inner = grid.C(at.Row, 1)
	default:
		at = grid.C(oddIndex(g.Height, rng), g.Width-1)
		inner = grid.C(at.Row, g.Width-2)
	}
	_ = g.Set(at, grid.Path)
	_ = g.Set(inner, grid.Path)
	return at
}

// oddIndex returns a uniformly random odd index in [1, n-2].
func oddIndex(n int, rng *rand.Rand) int {
	return 2*rng.Intn((n-1)/2) + 1
}
