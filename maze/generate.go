package maze

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/mazerun/grid"
)

// mode is the carver's current state.
type mode int

const (
	// extending grows the current corridor from cur.
	extending mode = iota
	// seeking looks for a visited cell to branch from.
	seeking
	// finished means every logical cell has been visited.
	finished
)

// carver holds the mutable state of one generation run.
// Logical cells are addressed by row-major index r*cols + c.
type carver struct {
	rows, cols  int
	g           *grid.Grid
	rng         *rand.Rand
	corridorCap int

	visited []bool
	dead    []bool // visited and no unvisited neighbor left; never reconsidered
	live    []int  // visited cells not yet known to be dead, in visit order

	mode mode
	cur  int // current cell while extending
	run  int // carved steps in the current corridor
}

// Generate carves a perfect rows×cols maze and returns its (2*rows+1)×(2*cols+1) grid.
// Border cells are all Wall; use PlaceEndpoints or New to open an entry and exit.
//
// Returns ErrInvalidDimension if rows or cols < 1, ErrOptionViolation for bad options.
// Identical options (same seed, same cap) yield identical grids.
func Generate(rows, cols int, opts ...Option) (*grid.Grid, error) {
	o, err := build(opts)
	if err != nil {
		return nil, err
	}
	rng, _ := o.source()
	return generate(rows, cols, rng, o.CorridorCap)
}

// generate runs the carver with an explicit generator.
func generate(rows, cols int, rng *rand.Rand, corridorCap int) (*grid.Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, rows, cols)
	}
	h, w := grid.Shape(rows, cols)
	g, err := grid.New(h, w)
	if err != nil {
		return nil, err
	}

	n := rows * cols
	cv := &carver{
		rows:        rows,
		cols:        cols,
		g:           g,
		rng:         rng,
		corridorCap: corridorCap,
		visited:     make([]bool, n),
		dead:        make([]bool, n),
		live:        make([]int, 0, n),
	}
	cv.visit(rng.Intn(n))
	cv.mode = extending
	for cv.mode != finished {
		switch cv.mode {
		case extending:
			cv.extend()
		case seeking:
			cv.seek()
		}
	}

	return g, nil
}

// visit marks cell i visited, opens it and makes it current.
func (cv *carver) visit(i int) {
	cv.visited[i] = true
	cv.live = append(cv.live, i)
	cv.cur = i
	_ = cv.g.Set(cv.coord(i), grid.Path)
}

// extend carves one step from cur, or hands over to seeking.
func (cv *carver) extend() {
	next := cv.unvisited(cv.cur)
	if len(next) == 0 {
		cv.dead[cv.cur] = true
		cv.mode = seeking
		return
	}
	if cv.corridorCap > 0 && cv.run >= cv.corridorCap {
		cv.mode = seeking
		return
	}

	from := cv.cur
	to := pick(cv.rng, next)
	a, b := cv.coord(from), cv.coord(to)
	_ = cv.g.Set(grid.C((a.Row+b.Row)/2, (a.Col+b.Col)/2), grid.Path)
	cv.visit(to)
	cv.run++
}

// seek retires dead cells from the live list and jumps to a random survivor.
func (cv *carver) seek() {
	candidates := cv.live[:0]
	for _, i := range cv.live {
		if cv.dead[i] {
			continue
		}
		if len(cv.unvisited(i)) == 0 {
			cv.dead[i] = true
			continue
		}
		candidates = append(candidates, i)
	}
	cv.live = candidates
	if len(candidates) == 0 {
		cv.mode = finished
		return
	}

	cv.cur = pick(cv.rng, candidates)
	cv.run = 0
	cv.mode = extending
}

// unvisited lists the in-bounds, unvisited logical neighbors of cell i
// in up, down, left, right order.
func (cv *carver) unvisited(i int) []int {
	r, c := i/cv.cols, i%cv.cols
	out := make([]int, 0, len(grid.Offsets))
	for _, d := range grid.Offsets {
		nr, nc := r+d.Row, c+d.Col
		if nr < 0 || nr >= cv.rows || nc < 0 || nc >= cv.cols {
			continue
		}
		j := nr*cv.cols + nc
		if !cv.visited[j] {
			out = append(out, j)
		}
	}
	return out
}

// coord maps logical index i to its grid coordinate.
func (cv *carver) coord(i int) grid.Coord {
	return grid.Logical(i/cv.cols, i%cv.cols)
}
