// Package gridgraph treats a rectangular [][]T matrix as a graph of cells,
// enabling region labelling and minimal-cost bridging between regions.
//
// What:
//
//   - GridGraph wraps a matrix with a keep predicate that marks "land" cells.
//   - Neighbours follow direction.Cardinals (Conn4) plus direction.Diagonals (Conn8).
//   - Components labels connected regions of kept cells.
//   - Bridge finds the fewest non-kept cells to convert to join two regions.
//
// Complexity:
//
//   - Components: O(R×C×d), Memory: O(R×C)   (d = 4 or 8).
//   - Bridge:     O(R×C×d), Memory: O(R×C).
//
// Errors:
//
//   - grid.ErrEmptyMatrix, grid.ErrNonRectangular: invalid input matrix.
//   - ErrComponentIndex: requested component index out of range.
//   - ErrNoPath: no conversion path exists between the components.
package gridgraph
