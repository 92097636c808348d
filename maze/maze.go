package maze

import (
	"github.com/katalvlaran/mazerun/grid"
)

// New generates a rows×cols maze and opens Start and End on two different borders.
// Generation and placement draw from the same generator, so one seed reproduces both.
func New(rows, cols int, opts ...Option) (*Maze, error) {
	o, err := build(opts)
	if err != nil {
		return nil, err
	}
	rng, seed := o.source()

	g, err := generate(rows, cols, rng, o.CorridorCap)
	if err != nil {
		return nil, err
	}
	start, end, err := PlaceEndpoints(g, rng)
	if err != nil {
		return nil, err
	}

	return &Maze{
		Rows:  rows,
		Cols:  cols,
		Grid:  g,
		Start: start,
		End:   end,
		Seed:  seed,
	}, nil
}

// Cells returns the number of logical cells.
func (m *Maze) Cells() int {
	return m.Rows * m.Cols
}

// String renders the grid with the endpoints marked 'S' and 'E'.
func (m *Maze) String() string {
	b := []byte(m.Grid.String())
	stride := m.Grid.Width + 1
	b[m.Start.Row*stride+m.Start.Col] = 'S'
	b[m.End.Row*stride+m.End.Col] = 'E'
	return string(b)
}

// isLogical reports whether c sits on a carvable (odd, odd) position.
func isLogical(c grid.Coord) bool {
	return c.Row%2 == 1 && c.Col%2 == 1
}
