package grid

import "fmt"

// New returns a Height×Width grid filled with Wall.
// Returns ErrInvalidDimension if either dimension is not positive.
// Complexity: O(W×H) time and memory.
func New(height, width int) (*Grid, error) {
	if height <= 0 || width <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, height, width)
	}

	return &Grid{
		Height: height,
		Width:  width,
		cells:  make([]Cell, height*width),
	}, nil
}

// From2D builds a Grid from a non-empty, rectangular 2D slice where 0 is Path
// and any other value is Wall. The input is copied.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs.
func From2D(values [][]int) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	g, err := New(h, w)
	if err != nil {
		return nil, err
	}
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			if values[r][c] == 0 {
				g.cells[g.index(r, c)] = Path
			}
		}
	}

	return g, nil
}

// InBounds reports whether c lies within the grid boundaries.
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.Height && c.Col >= 0 && c.Col < g.Width
}

// At returns the cell at c, or ErrOutOfBounds.
func (g *Grid) At(c Coord) (Cell, error) {
	if !g.InBounds(c) {
		return Wall, fmt.Errorf("%w: %v in %dx%d", ErrOutOfBounds, c, g.Height, g.Width)
	}
	return g.cells[g.index(c.Row, c.Col)], nil
}

// Set stores v at c, or returns ErrOutOfBounds.
func (g *Grid) Set(c Coord, v Cell) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %v in %dx%d", ErrOutOfBounds, c, g.Height, g.Width)
	}
	g.cells[g.index(c.Row, c.Col)] = v
	return nil
}

// IsPath reports whether c is in bounds and walkable.
func (g *Grid) IsPath(c Coord) bool {
	return g.InBounds(c) && g.cells[g.index(c.Row, c.Col)] == Path
}

// OnBorder reports whether c lies on the outermost ring of the grid.
func (g *Grid) OnBorder(c Coord) bool {
	if !g.InBounds(c) {
		return false
	}
	return c.Row == 0 || c.Row == g.Height-1 || c.Col == 0 || c.Col == g.Width-1
}

// Neighbors returns the in-bounds orthogonal neighbors of c in the order
// up, down, left, right. Cell values are not inspected.
func (g *Grid) Neighbors(c Coord) []Coord {
	out := make([]Coord, 0, len(Offsets))
	for _, d := range Offsets {
		n := c.Add(d)
		if g.InBounds(n) {
			out = append(out, n)
		}
	}
	return out
}

// Count returns how many cells hold v.
func (g *Grid) Count(v Cell) int {
	n := 0
	for _, cell := range g.cells {
		if cell == v {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{Height: g.Height, Width: g.Width, cells: cells}
}

// Ints converts the grid back to the 0 = Path, 1 = Wall numeric form accepted by From2D.
func (g *Grid) Ints() [][]int {
	out := make([][]int, g.Height)
	for r := 0; r < g.Height; r++ {
		out[r] = make([]int, g.Width)
		for c := 0; c < g.Width; c++ {
			if g.cells[g.index(r, c)] == Wall {
				out[r][c] = 1
			}
		}
	}
	return out
}

// index maps (row,col) to a row-major index: row*Width + col.
func (g *Grid) index(row, col int) int {
	return row*g.Width + col
}

// Coordinate converts a row-major index back to a Coord.
func (g *Grid) Coordinate(idx int) Coord {
	return Coord{Row: idx / g.Width, Col: idx % g.Width}
}
