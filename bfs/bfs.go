package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/mazerun/grid"
)

// queueItem pairs a cell with its BFS depth.
type queueItem struct {
	at    grid.Coord
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	grid  *grid.Grid
	opts  Options
	ctx   context.Context
	queue []queueItem
	res   *Result
}

// BFS runs breadth-first search on g starting from start,
// moving only through Path cells in the four cardinal directions.
// Returns ErrGridNil, ErrStartOutOfBounds or ErrStartBlocked for invalid input,
// ErrOptionViolation for bad options, or any hook or context error.
// On error the partial Result is still returned when the walk had begun.
func BFS(g *grid.Grid, start grid.Coord, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.InBounds(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartOutOfBounds, start)
	}
	if !g.IsPath(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartBlocked, start)
	}

	n := g.Count(grid.Path)
	w := &walker{
		grid:  g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, n),
		res: &Result{
			Start:  start,
			Order:  make([]grid.Coord, 0, n),
			Depth:  make(map[grid.Coord]int, n),
			Parent: make(map[grid.Coord]grid.Coord, n),
		},
	}

	w.enqueue(start, 0)
	return w.res, w.loop()
}

// ShortestLen returns the number of moves on a shortest path from start to end,
// or -1 if end is unreachable.
func ShortestLen(g *grid.Grid, start, end grid.Coord) (int, error) {
	res, err := BFS(g, start)
	if err != nil {
		return -1, err
	}
	if d, ok := res.Depth[end]; ok {
		return d, nil
	}
	return -1, nil
}

// enqueue records depth for c and adds it to the queue.
func (w *walker) enqueue(c grid.Coord, d int) {
	w.res.Depth[c] = d
	w.queue = append(w.queue, queueItem{at: c, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.at)
		if err := w.opts.OnVisit(item.at, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %v: %w", item.at, err)
		}
		w.enqueueNeighbors(item)
	}
	return nil
}

// enqueueNeighbors applies filtering and MaxDepth and enqueues each unseen Path neighbor.
func (w *walker) enqueueNeighbors(item queueItem) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.grid.Neighbors(item.at) {
		if !w.grid.IsPath(nbr) || !w.opts.FilterNeighbor(item.at, nbr) {
			continue
		}
		if _, seen := w.res.Depth[nbr]; seen {
			continue
		}
		w.res.Parent[nbr] = item.at
		w.enqueue(nbr, next)
	}
}
