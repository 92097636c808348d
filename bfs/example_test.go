package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/mazerun/bfs"
	"github.com/katalvlaran/mazerun/grid"
)

// ExampleResult_PathTo finds the fewest-move route around a wall.
func ExampleResult_PathTo() {
	g := grid.MustParse("" +
		"...\n" +
		".#.\n" +
		"...")

	res, err := bfs.BFS(g, grid.C(0, 0))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path, _ := res.PathTo(grid.C(2, 2))
	fmt.Println(len(path)-1, path)
	// Output:
	// 4 [(0,0) (1,0) (2,0) (2,1) (2,2)]
}
