// Package maze generates perfect mazes on a rectangular grid and places
// entry/exit openings on the border.
//
// What:
//
//   - Generate carves an R×C logical maze into a (2R+1)×(2C+1) grid.Grid using
//     randomized depth-first carving. Every border cell stays Wall and the
//     carved cells form a spanning tree: exactly one route between any two cells.
//   - PlaceEndpoints picks two different borders at random and opens one cell on
//     each, together with its interior neighbor.
//   - New does both and returns a *Maze; Verify checks a Maze against the
//     perfect-maze invariants.
//
// Algorithm:
//
//	The carver is a two-state machine.
//
//	  extending: the current cell has unvisited neighbors. Pick one uniformly,
//	             knock down the wall between them, move there.
//	  seeking:   the corridor hit a dead end (or the corridor cap). Collect
//	             every visited cell that still has an unvisited neighbor,
//	             retire the ones that do not, and jump to a random candidate.
//
//	Generation ends when seeking finds no candidate. The visited set only
//	grows and is bounded by R×C, so the loop terminates.
//
// Options:
//
//   - WithSeed(s):        deterministic generator; s == 0 maps to a fixed default seed.
//   - WithRand(r):        caller-owned *rand.Rand (not goroutine-safe; do not share).
//   - WithCorridorCap(n): force a jump after n carved steps in one corridor;
//     0 (the default) never forces a jump. Lower values give bushier mazes.
//
// Complexity:
//
//   - Generate: O(R×C) carving plus O(R×C) per seeking scan over live cells.
//   - Verify:   O(W×H·α(R×C)).
//
// Errors:
//
//   - ErrInvalidDimension: rows or cols < 1, or a grid too small for endpoints.
//   - ErrOptionViolation:  invalid Option (negative corridor cap).
//   - ErrNilMaze, ErrMalformed, ErrBorderBreach, ErrCycle, ErrDisconnected,
//     ErrEndpoints, ErrUnreachable: returned by Verify.
package maze
