// Package grid defines core types and sentinel errors
// for the grid subpackage of github.com/katalvlaran/mazerun.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrInvalidDimension indicates a non-positive height or width.
	ErrInvalidDimension = errors.New("grid: dimensions must be positive")
	// ErrEmptyGrid indicates input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
	// ErrBadGlyph indicates an unknown character in textual input.
	ErrBadGlyph = errors.New("grid: unknown glyph")
)

// Cell is the value stored in a grid cell.
type Cell uint8

const (
	// Wall blocks movement. It is the zero value so a fresh Grid is solid rock.
	Wall Cell = iota
	// Path is walkable.
	Path
)

// String returns "wall" or "path".
func (c Cell) String() string {
	if c == Path {
		return "path"
	}
	return "wall"
}

// Coord addresses a grid cell by row and column, zero-indexed.
type Coord struct {
	Row, Col int
}

// C is shorthand for Coord{Row: row, Col: col}.
func C(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// Less orders coordinates row-major: by Row, then by Col.
func (c Coord) Less(o Coord) bool {
	if c.Row != o.Row {
		return c.Row < o.Row
	}
	return c.Col < o.Col
}

// Add returns c shifted by the offset d.
func (c Coord) Add(d Coord) Coord {
	return Coord{Row: c.Row + d.Row, Col: c.Col + d.Col}
}

// Manhattan returns |Δrow| + |Δcol| between c and o.
func (c Coord) Manhattan(o Coord) int {
	dr, dc := c.Row-o.Row, c.Col-o.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	return dr + dc
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Offsets lists the 4-directional moves in the fixed order up, down, left, right.
// Diagonal movement is never generated.
var Offsets = [4]Coord{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Grid is a dense Height×Width array of cells stored row-major.
// Width and Height are fixed at construction.
type Grid struct {
	Height, Width int
	cells         []Cell
}

// Logical maps logical maze cell (r,c) to its grid coordinate (2r+1, 2c+1).
func Logical(r, c int) Coord {
	return Coord{Row: 2*r + 1, Col: 2*c + 1}
}

// Shape returns the grid dimensions (2R+1, 2C+1) of an R×C logical maze.
func Shape(rows, cols int) (height, width int) {
	return 2*rows + 1, 2*cols + 1
}
