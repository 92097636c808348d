package bfs_test

import (
	"testing"

	"github.com/katalvlaran/mazerun/bfs"
	"github.com/katalvlaran/mazerun/grid"
)

// BenchmarkBFS_OpenRoom measures BFS on an obstacle-free N×N grid.
func BenchmarkBFS_OpenRoom(b *testing.B) {
	const n = 256
	values := make([][]int, n)
	for r := range values {
		values[r] = make([]int, n)
	}
	g, err := grid.From2D(values)
	if err != nil {
		b.Fatalf("setup From2D failed: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, grid.C(0, 0))
	}
}
