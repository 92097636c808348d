// Package bfs provides breadth-first search over a grid.Grid, returning
// unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore Path cells in non-decreasing distance (moves) from a start cell.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from cell → distance (moves) from start
//   - Parent: map from cell → its predecessor in the BFS tree
//   - OnVisit hook (may abort with an error), neighbor filtering, MaxDepth limit.
//
// Why
//
//   - Ground truth for A* optimality checks: BFS on a unit-cost grid is exact.
//   - Reachability between maze endpoints during verification.
//
// Determinism
//
//	Neighbors are enqueued in grid.Offsets order (up, down, left, right), so
//	the visit sequence is fully reproducible.
//
// Complexity (N = Width×Height)
//
//   - Time:   O(N)
//   - Memory: O(N)
//
// Errors
//
//   - ErrGridNil           if the grid pointer is nil.
//   - ErrStartOutOfBounds  if the start cell is outside the grid.
//   - ErrStartBlocked      if the start cell is a Wall.
//   - ErrOptionViolation   if an invalid Option is supplied (e.g. negative MaxDepth).
//   - ErrNoPath            from Result.PathTo for unreached cells.
//   - Wrapped user-supplied hook errors from OnVisit, and context errors.
package bfs
