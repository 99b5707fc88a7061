// Package grid provides the coordinate types and plain-slice matrix helpers
// shared by the rest of gridkit.
//
// What:
//
//   - Position{Row, Col} addresses a cell of a [][]T matrix or a sparse map.
//   - Point{X, Y} and Point64{X, Y} are turtle coordinates (native and wide).
//   - Transpose, At, Row, Col operate on rectangular [][]T of any element type.
//   - MinMax / MinMaxSeq compute the bounding box of a set of positions.
//
// Why:
//
//   - Puzzle inputs arrive as text lines that become [][]rune or sparse maps;
//     these helpers keep indexing and bounds logic in one place.
//
// Complexity:
//
//   - Transpose: O(R×C) time and memory.
//   - At, Row:   O(1).
//   - Col:       O(R).
//   - MinMax:    O(N), one pass.
//
// Errors:
//
//   - ErrEmptyMatrix: matrix has no rows or its first row is empty.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfRange: a row/column index lies outside the matrix.
//   - ErrEmptySet: MinMax was asked for the bounds of zero positions.
package grid
