package astar_test

import (
	"fmt"

	"github.com/katalvlaran/mazerun/astar"
	"github.com/katalvlaran/mazerun/grid"
)

// ExampleSearch_Solve finds the shortest route through a small hand-drawn maze.
func ExampleSearch_Solve() {
	g := grid.MustParse("" +
		"#.###\n" +
		"#.#.#\n" +
		"#.#.#\n" +
		"#...#\n" +
		"#.###")
	s, _ := astar.New(g, grid.C(0, 1), grid.C(4, 1))
	path, ok := s.Solve()
	fmt.Println(ok, path)
	// Output:
	// true [(0,1) (1,1) (2,1) (3,1) (4,1)]
}

// ExampleSearch_Step watches the frontier evolve one expansion at a time.
func ExampleSearch_Step() {
	g := grid.MustParse("...\n.#.\n...")
	s, _ := astar.New(g, grid.C(0, 0), grid.C(2, 2))
	for {
		st := s.Step()
		fmt.Printf("step %d at %v open=%v\n", st.Step, st.Current, st.OpenCells())
		if st.Done {
			fmt.Println("path", st.Path)
			break
		}
	}
	// Output:
	// step 1 at (0,0) open=[(0,1) (1,0)]
	// step 2 at (0,1) open=[(0,2) (1,0)]
	// step 3 at (1,0) open=[(0,2) (2,0)]
	// step 4 at (0,2) open=[(1,2) (2,0)]
	// step 5 at (2,0) open=[(1,2) (2,1)]
	// step 6 at (1,2) open=[(2,1) (2,2)]
	// step 7 at (2,1) open=[(2,2)]
	// step 8 at (2,2) open=[]
	// path [(0,0) (0,1) (0,2) (1,2) (2,2)]
}
