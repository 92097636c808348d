// Package grid treats a dense 2D array of Wall/Path cells as a 4-connected graph.
//
// What:
//
//   - Grid wraps a rectangular Height×Width array of Cell values.
//   - Coord addresses a cell as (Row, Col), zero-indexed, row-major.
//   - Neighbors yields the in-bounds orthogonal neighbors (up, down, left, right).
//   - Components finds contiguous regions of Path cells.
//   - Parse / String convert to and from a compact text form ('#' wall, '.' path).
//
// Maze layout:
//
//	An R×C logical maze lives in a (2R+1)×(2C+1) grid. Logical cell (r,c)
//	maps to grid cell (2r+1, 2c+1); even rows and columns hold the walls
//	between logical cells. Use Logical to convert.
//
// Complexity:
//
//   - Neighbors, At, Set, InBounds: O(1).
//   - Components: O(W×H), Memory: O(W×H).
//   - Parse, String, Clone: O(W×H).
//
// Errors:
//
//   - ErrInvalidDimension: non-positive height or width.
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds: coordinate outside the grid.
//   - ErrBadGlyph: unknown character in Parse input.
package grid
