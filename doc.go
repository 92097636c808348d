// Package mazerun generates perfect mazes and solves them with a step-by-step
// A* search that exposes every intermediate state.
//
// What is in here?
//
//   - grid:   rectangular Wall/Path cell grids, text parsing and components
//   - maze:   randomized depth-first carving, border endpoints, verification
//   - astar:  A* with (f, g, coordinate) tie-breaking and Open/Closed snapshots
//   - bfs:    breadth-first search, used as a shortest-path oracle
//   - render: text frames of a grid with a search state overlaid
//
// The driver lives under internal/ (config, session) and cmd/mazerun.
//
// Layout of a 2×3 maze (logical cell (r,c) sits at grid (2r+1, 2c+1)):
//
//	#S#####
//	#.....#
//	#.###.#
//	#...#.#
//	#####E#
//
// Quick start:
//
//	m, _ := maze.New(10, 10, maze.WithSeed(42))
//	s, _ := astar.New(m.Grid, m.Start, m.End)
//	for !s.Done() {
//		st := s.Step()
//		fmt.Println(render.String(m.Grid, m.Start, m.End, &st))
//	}
//
//	go install github.com/katalvlaran/mazerun/cmd/mazerun@latest
package mazerun
