package maze

import (
	"fmt"

	"github.com/katalvlaran/mazerun/bfs"
	"github.com/katalvlaran/mazerun/grid"
)

// Verify checks that m is a perfect maze with valid endpoints:
//
//  1. The grid shape is (2*Rows+1)×(2*Cols+1) and every pillar (even, even) is Wall (ErrMalformed).
//  2. Start and End are distinct border cells on different sides (ErrEndpoints).
//  3. No other border cell is open (ErrBorderBreach).
//  4. Every logical cell is open and each open wall joins two cells that were
//     not yet connected (ErrCycle), checked with union-find.
//  5. Open walls == cells-1, i.e. the cells form one spanning tree (ErrDisconnected).
//  6. End is reachable from Start by BFS (ErrUnreachable).
//
// Complexity: O(W×H·α(R×C)).
func Verify(m *Maze) error {
	if m == nil || m.Grid == nil {
		return ErrNilMaze
	}
	g := m.Grid
	if h, w := grid.Shape(m.Rows, m.Cols); g.Height != h || g.Width != w || m.Rows < 1 || m.Cols < 1 {
		return fmt.Errorf("%w: %dx%d grid for %dx%d maze", ErrMalformed, g.Height, g.Width, m.Rows, m.Cols)
	}

	if err := verifyEndpoints(m); err != nil {
		return err
	}
	if err := verifyTree(m); err != nil {
		return err
	}

	n, err := bfs.ShortestLen(g, m.Start, m.End)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	if n < 0 {
		return fmt.Errorf("%w: %v → %v", ErrUnreachable, m.Start, m.End)
	}
	return nil
}

// verifyEndpoints checks endpoint placement and the rest of the border.
func verifyEndpoints(m *Maze) error {
	g := m.Grid
	s1, ok1 := SideOf(g, m.Start)
	s2, ok2 := SideOf(g, m.End)
	switch {
	case !ok1 || !ok2:
		return fmt.Errorf("%w: start %v and end %v must lie on the border", ErrEndpoints, m.Start, m.End)
	case s1 == s2:
		return fmt.Errorf("%w: start and end share the %v border", ErrEndpoints, s1)
	case !g.IsPath(m.Start) || !g.IsPath(m.End):
		return fmt.Errorf("%w: start %v or end %v is a wall", ErrEndpoints, m.Start, m.End)
	}

	for r := 0; r < g.Height; r++ {
		for c := 0; c < g.Width; c++ {
			at := grid.C(r, c)
			if !g.OnBorder(at) || at == m.Start || at == m.End {
				continue
			}
			if g.IsPath(at) {
				return fmt.Errorf("%w: %v", ErrBorderBreach, at)
			}
		}
	}
	return nil
}

// verifyTree checks that the interior forms a spanning tree over the logical cells.
func verifyTree(m *Maze) error {
	g := m.Grid
	f := newForest(m.Cells())
	id := func(c grid.Coord) int { return (c.Row/2)*m.Cols + c.Col/2 }

	openWalls := 0
	for r := 1; r < g.Height-1; r++ {
		for c := 1; c < g.Width-1; c++ {
			at := grid.C(r, c)
			switch {
			case isLogical(at):
				if !g.IsPath(at) {
					return fmt.Errorf("%w: cell %v never carved", ErrDisconnected, at)
				}
			case r%2 == 0 && c%2 == 0:
				if g.IsPath(at) {
					return fmt.Errorf("%w: open pillar at %v", ErrMalformed, at)
				}
			case g.IsPath(at):
				// A wall slot between two logical cells: horizontal neighbors on odd
				// rows, vertical neighbors on odd columns.
				a, b := grid.C(r, c-1), grid.C(r, c+1)
				if r%2 == 0 {
					a, b = grid.C(r-1, c), grid.C(r+1, c)
				}
				if !f.union(id(a), id(b)) {
					return fmt.Errorf("%w: wall %v joins connected cells %v and %v", ErrCycle, at, a, b)
				}
				openWalls++
			}
		}
	}

	if openWalls != m.Cells()-1 {
		return fmt.Errorf("%w: %d open walls for %d cells", ErrDisconnected, openWalls, m.Cells())
	}
	return nil
}

// forest is a disjoint-set over logical cell indices
// with path compression and union by rank.
type forest struct {
	parent []int
	rank   []int
}

func newForest(n int) *forest {
	f := &forest{parent: make([]int, n), rank: make([]int, n)}
	for i := range f.parent {
		f.parent[i] = i
	}
	return f
}

// find returns the root of u, compressing the path as it walks.
func (f *forest) find(u int) int {
	for f.parent[u] != u {
		f.parent[u] = f.parent[f.parent[u]]
		u = f.parent[u]
	}
	return u
}

// union merges the sets of u and v. It reports false if they were already joined.
func (f *forest) union(u, v int) bool {
	ru, rv := f.find(u), f.find(v)
	if ru == rv {
		return false
	}
	if f.rank[ru] < f.rank[rv] {
		ru, rv = rv, ru
	}
	f.parent[rv] = ru
	if f.rank[ru] == f.rank[rv] {
		f.rank[ru]++
	}
	return true
}
