package astar

import (
	"container/heap"
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/mazerun/grid"
)

// Search holds the private state of one A* run: the open heap, open and closed
// membership, g scores and back-pointers. It is created by New and advanced by
// Step or Solve.
type Search struct {
	grid       Grid
	start, end grid.Coord
	opts       Options

	pq       nodePQ
	open     mapset.Set[grid.Coord]
	closed   mapset.Set[grid.Coord]
	gScore   map[grid.Coord]int
	cameFrom map[grid.Coord]grid.Coord

	steps      int
	current    grid.Coord
	hasCurrent bool
	done       bool
	found      bool
	path       []grid.Coord
}

// New prepares a search from start to end over g.
// Returns ErrNilGrid, ErrOutOfBounds for endpoints outside g, or ErrOptionViolation.
// Endpoint cell values are not checked: a Wall End is simply never reached.
func New(g Grid, start, end grid.Coord, opts ...Option) (*Search, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	for _, c := range []grid.Coord{start, end} {
		if !g.InBounds(c) {
			return nil, fmt.Errorf("%w: %v", ErrOutOfBounds, c)
		}
	}

	s := &Search{grid: g, start: start, end: end, opts: o}
	s.Reset()
	return s, nil
}

// Reset discards all progress and restarts from Start.
func (s *Search) Reset() {
	s.pq = make(nodePQ, 0, 64)
	s.open = mapset.New[grid.Coord]()
	s.closed = mapset.New[grid.Coord]()
	s.gScore = map[grid.Coord]int{s.start: 0}
	s.cameFrom = make(map[grid.Coord]grid.Coord)
	s.steps = 0
	s.current, s.hasCurrent = grid.Coord{}, false
	s.done, s.found = false, false
	s.path = nil

	heap.Init(&s.pq)
	heap.Push(&s.pq, nodeItem{at: s.start, f: s.opts.Heuristic(s.start, s.end), g: 0})
	s.open.Put(s.start)
}

// Step expands exactly one node and returns the resulting snapshot.
// Once the search is done, Step changes nothing and returns the terminal State again.
func (s *Search) Step() State {
	s.advance()
	return s.State()
}

// Solve runs the search to completion from wherever it currently is.
// Returns the path Start→End inclusive, or (nil, false) if End is unreachable.
func (s *Search) Solve() ([]grid.Coord, bool) {
	for !s.done {
		s.advance()
	}
	if !s.found {
		return nil, false
	}
	return append([]grid.Coord(nil), s.path...), true
}

// State returns a snapshot of the search without advancing it.
func (s *Search) State() State {
	st := State{
		Step:       s.steps,
		Current:    s.current,
		HasCurrent: s.hasCurrent,
		Open:       copySet(s.open),
		Closed:     copySet(s.closed),
		Done:       s.done,
		Found:      s.found,
	}
	if s.found {
		st.Path = append([]grid.Coord(nil), s.path...)
	}
	return st
}

// Done reports whether the search has terminated.
func (s *Search) Done() bool { return s.done }

// Steps returns the number of expansions performed so far.
func (s *Search) Steps() int { return s.steps }

// Cost returns the number of moves on the found path, or -1 if none was found (yet).
func (s *Search) Cost() int {
	if !s.found {
		return -1
	}
	return len(s.path) - 1
}

// Start returns the search origin.
func (s *Search) Start() grid.Coord { return s.start }

// End returns the search goal.
func (s *Search) End() grid.Coord { return s.end }

// advance performs one expansion. It is the single routine behind Step and Solve.
func (s *Search) advance() {
	if s.done {
		return
	}

	item, ok := s.popLive()
	if !ok {
		// Frontier exhausted.
		s.finish(false)
		s.hasCurrent = false
		return
	}

	s.steps++
	cur := item.at
	s.current, s.hasCurrent = cur, true
	s.open.Remove(cur)
	s.opts.OnExpand(cur, item.g)

	if cur == s.end {
		s.path = s.reconstruct(cur)
		s.finish(true)
		return
	}

	s.closed.Put(cur)
	for _, d := range grid.Offsets {
		nb := cur.Add(d)
		if !s.grid.InBounds(nb) || !s.grid.IsPath(nb) || s.closed.Has(nb) {
			continue
		}
		tentative := item.g + 1
		if old, seen := s.gScore[nb]; seen && tentative >= old {
			continue
		}
		s.cameFrom[nb] = cur
		s.gScore[nb] = tentative
		heap.Push(&s.pq, nodeItem{at: nb, f: tentative + s.opts.Heuristic(nb, s.end), g: tentative})
		s.open.Put(nb)
	}

	if s.open.Size() == 0 {
		s.finish(false)
	}
}

// popLive pops heap entries until it finds one that is neither closed nor
// superseded by a better g score.
func (s *Search) popLive() (nodeItem, bool) {
	for s.pq.Len() > 0 {
		item := heap.Pop(&s.pq).(nodeItem)
		if s.closed.Has(item.at) || item.g > s.gScore[item.at] {
			continue
		}
		return item, true
	}
	return nodeItem{}, false
}

// finish marks the search terminated and releases the heap.
func (s *Search) finish(found bool) {
	s.done, s.found = true, found
	s.pq = nil
}

// reconstruct follows back-pointers from c to Start and returns the path Start→c.
func (s *Search) reconstruct(c grid.Coord) []grid.Coord {
	path := []grid.Coord{c}
	for c != s.start {
		c = s.cameFrom[c]
		path = append(path, c)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
