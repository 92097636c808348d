package bfs_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazerun/bfs"
	"github.com/katalvlaran/mazerun/grid"
)

// corridor is a 3×5 grid with a single horizontal corridor on row 1.
const corridor = "" +
	"#####\n" +
	"#...#\n" +
	"#####"

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	g := grid.MustParse(corridor)

	if _, err := bfs.BFS(nil, grid.C(1, 1)); !errors.Is(err, bfs.ErrGridNil) {
		t.Errorf("nil grid: want ErrGridNil, got %v", err)
	}
	if _, err := bfs.BFS(g, grid.C(9, 9)); !errors.Is(err, bfs.ErrStartOutOfBounds) {
		t.Errorf("out of bounds: want ErrStartOutOfBounds, got %v", err)
	}
	if _, err := bfs.BFS(g, grid.C(0, 0)); !errors.Is(err, bfs.ErrStartBlocked) {
		t.Errorf("wall start: want ErrStartBlocked, got %v", err)
	}
	if _, err := bfs.BFS(g, grid.C(1, 1), bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestBFS_Corridor walks a straight corridor and checks order and depths.
func TestBFS_Corridor(t *testing.T) {
	g := grid.MustParse(corridor)
	res, err := bfs.BFS(g, grid.C(1, 1))
	require.NoError(t, err)

	want := []grid.Coord{{Row: 1, Col: 1}, {Row: 1, Col: 2}, {Row: 1, Col: 3}}
	if !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	assert.Equal(t, 2, res.Depth[grid.C(1, 3)])
	assert.Equal(t, grid.C(1, 2), res.Parent[grid.C(1, 3)])
}

// TestBFS_Layering checks the up/down/left/right enqueue order on an open room.
func TestBFS_Layering(t *testing.T) {
	g := grid.MustParse("...\n...\n...")
	res, err := bfs.BFS(g, grid.C(1, 1))
	require.NoError(t, err)

	assert.Equal(t, []grid.Coord{{Row: 1, Col: 1}, {Row: 0, Col: 1}, {Row: 2, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 2}}, res.Order[:5])
	for _, c := range []grid.Coord{{Row: 0, Col: 0}, {Row: 0, Col: 2}, {Row: 2, Col: 0}, {Row: 2, Col: 2}} {
		assert.Equal(t, 2, res.Depth[c], "Depth[%v]", c)
	}
}

// TestBFS_Disconnected ensures BFS only explores the component of the start cell.
func TestBFS_Disconnected(t *testing.T) {
	g := grid.MustParse("..#..")
	res, err := bfs.BFS(g, grid.C(0, 0))
	require.NoError(t, err)
	assert.Equal(t, []grid.Coord{{Row: 0, Col: 0}, {Row: 0, Col: 1}}, res.Order)
	assert.False(t, res.Reached(grid.C(0, 4)))

	n, err := bfs.ShortestLen(g, grid.C(0, 0), grid.C(0, 4))
	require.NoError(t, err)
	assert.Equal(t, -1, n)
}

// TestBFS_MaxDepth verifies WithMaxDepth for positive and zero (no limit) depths.
func TestBFS_MaxDepth(t *testing.T) {
	g := grid.MustParse(corridor)
	res, err := bfs.BFS(g, grid.C(1, 1), bfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []grid.Coord{{Row: 1, Col: 1}, {Row: 1, Col: 2}}, res.Order)

	res, err = bfs.BFS(g, grid.C(1, 1), bfs.WithMaxDepth(0))
	require.NoError(t, err)
	assert.Len(t, res.Order, 3)
}

// TestBFS_FilterNeighbor shows how filtering prunes certain moves.
func TestBFS_FilterNeighbor(t *testing.T) {
	g := grid.MustParse(corridor)
	res, err := bfs.BFS(g, grid.C(1, 1),
		bfs.WithFilterNeighbor(func(curr, nbr grid.Coord) bool {
			return nbr != grid.C(1, 3)
		}),
	)
	require.NoError(t, err)
	assert.Equal(t, []grid.Coord{{Row: 1, Col: 1}, {Row: 1, Col: 2}}, res.Order)
}

// TestBFS_OnVisitAbort checks that a hook error stops the walk and is wrapped.
func TestBFS_OnVisitAbort(t *testing.T) {
	stop := errors.New("stop")
	g := grid.MustParse(corridor)
	var seen []grid.Coord
	_, err := bfs.BFS(g, grid.C(1, 1), bfs.WithOnVisit(func(c grid.Coord, d int) error {
		seen = append(seen, c)
		if d == 1 {
			return stop
		}
		return nil
	}))
	require.ErrorIs(t, err, stop)
	assert.Equal(t, []grid.Coord{{Row: 1, Col: 1}, {Row: 1, Col: 2}}, seen)
}

// TestBFS_PathTo covers trivial, normal and unreachable targets.
func TestBFS_PathTo(t *testing.T) {
	g := grid.MustParse(corridor)
	res, err := bfs.BFS(g, grid.C(1, 1))
	require.NoError(t, err)

	path, err := res.PathTo(grid.C(1, 1))
	require.NoError(t, err)
	assert.Equal(t, []grid.Coord{{Row: 1, Col: 1}}, path)

	path, err = res.PathTo(grid.C(1, 3))
	require.NoError(t, err)
	assert.Equal(t, []grid.Coord{{Row: 1, Col: 1}, {Row: 1, Col: 2}, {Row: 1, Col: 3}}, path)

	_, err = res.PathTo(grid.C(0, 0))
	assert.ErrorIs(t, err, bfs.ErrNoPath)
}

// TestBFS_Cancellation verifies that a cancelled context halts BFS promptly.
func TestBFS_Cancellation(t *testing.T) {
	g := grid.MustParse(corridor)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := bfs.BFS(g, grid.C(1, 1), bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("Cancellation: want context.Canceled, got %v", err)
	}
}
