// Package astar implements step-observable A* shortest-path search on a
// 4-connected grid with unit move costs.
//
// Two entry points share one expansion routine:
//
//   - Search.Solve: run to completion and return the path, or false if none exists.
//   - Search.Step:  expand exactly one node and return a State snapshot for
//     rendering or debugging; calls after termination re-yield the terminal State.
//
// Ordering
//
//	The open list is a min-heap keyed by (f, g, coordinate) ascending: ties on f
//	go to the lower g, then to the row-major smaller coordinate. The order is
//	fully deterministic, so repeated runs expand the same nodes in the same order.
//
// Heuristic
//
//	Manhattan distance by default. It is admissible and consistent for
//	4-directional unit-cost grids, so the first time End is popped its path is optimal.
//
// Decrease-key
//
//	Improved g scores push a fresh heap entry; stale entries are discarded when
//	popped (lazy deletion).
//
// A disconnected Start/End is not an error: Solve returns (nil, false) and the
// terminal State has Done=true, Found=false and an empty Open set.
//
// Complexity (N = cells)
//
//   - Time:  O(N log N)
//   - Space: O(N)
//
// A Search is not safe for concurrent use; it is a resumable computation that
// the caller advances one Step at a time. Dropping it releases all state.
package astar
