package astar

import (
	"errors"
	"fmt"
	"slices"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/mazerun/grid"
)

// Sentinel errors returned by New.
var (
	// ErrNilGrid indicates that a nil grid was passed.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrOutOfBounds indicates Start or End lies outside the grid.
	ErrOutOfBounds = fmt.Errorf("astar: %w", grid.ErrOutOfBounds)

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")
)

// Grid is the read-only view of the maze the search needs. *grid.Grid satisfies it.
type Grid interface {
	InBounds(c grid.Coord) bool
	IsPath(c grid.Coord) bool
}

// Heuristic estimates the remaining moves from a cell to the goal.
type Heuristic func(from, to grid.Coord) int

// Manhattan is the default heuristic: |Δrow| + |Δcol|.
func Manhattan(from, to grid.Coord) int {
	return from.Manhattan(to)
}

// Option configures a Search.
type Option func(*Options)

// Options holds search parameters and hooks.
type Options struct {
	// Heuristic estimates distance to End. Must be admissible for optimal paths.
	Heuristic Heuristic

	// OnExpand is called once per Step with the processed node and its g score.
	OnExpand func(c grid.Coord, g int)

	err error
}

// DefaultOptions returns Manhattan heuristic and a no-op OnExpand.
func DefaultOptions() Options {
	return Options{
		Heuristic: Manhattan,
		OnExpand:  func(grid.Coord, int) {},
	}
}

// WithHeuristic replaces the Manhattan heuristic. A nil h is an ErrOptionViolation.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h == nil {
			o.err = fmt.Errorf("%w: nil heuristic", ErrOptionViolation)
			return
		}
		o.Heuristic = h
	}
}

// WithOnExpand registers a per-step callback.
func WithOnExpand(fn func(c grid.Coord, g int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// State is a snapshot of the search after one Step.
// Open and Closed are copies; mutating them does not affect the Search.
type State struct {
	// Step counts expansions so far, including this one.
	Step int
	// Current is the node processed by this step; valid only if HasCurrent.
	Current    grid.Coord
	HasCurrent bool
	// Open holds discovered, unexpanded nodes (the frontier).
	Open mapset.Set[grid.Coord]
	// Closed holds fully expanded nodes.
	Closed mapset.Set[grid.Coord]
	// Path runs Start→End inclusive once found; nil otherwise.
	Path []grid.Coord
	// Done is set once the search terminated; Found reports success.
	Done, Found bool
}

// OpenCells returns the open set in row-major order.
func (st State) OpenCells() []grid.Coord {
	return sortedCells(st.Open)
}

// ClosedCells returns the closed set in row-major order.
func (st State) ClosedCells() []grid.Coord {
	return sortedCells(st.Closed)
}

func sortedCells(s mapset.Set[grid.Coord]) []grid.Coord {
	out := make([]grid.Coord, 0, s.Size())
	s.Each(func(c grid.Coord) {
		out = append(out, c)
	})
	slices.SortFunc(out, func(a, b grid.Coord) int {
		switch {
		case a.Less(b):
			return -1
		case b.Less(a):
			return 1
		}
		return 0
	})
	return out
}

func copySet(s mapset.Set[grid.Coord]) mapset.Set[grid.Coord] {
	c := mapset.New[grid.Coord]()
	s.Each(func(k grid.Coord) {
		c.Put(k)
	})
	return c
}
