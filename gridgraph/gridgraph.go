package gridgraph

import (
	"github.com/katalvlaran/gridkit/direction"
	"github.com/katalvlaran/gridkit/grid"
)

// New constructs a GridGraph from a non-empty rectangular matrix.
// The outer slice is copied; rows are shared with m and must not be
// mutated while the GridGraph is in use.
// Returns grid.ErrEmptyMatrix or grid.ErrNonRectangular on invalid input.
// Complexity: O(R).
func New[T any](m [][]T, keep func(T) bool, conn Connectivity) (*GridGraph[T], error) {
	if err := grid.ValidateRect(m); err != nil {
		return nil, err
	}
	cells := make([][]T, len(m))
	copy(cells, m)

	return &GridGraph[T]{
		Rows:  len(m),
		Cols:  len(m[0]),
		Conn:  conn,
		cells: cells,
		keep:  keep,
		steps: neighborSteps(conn),
	}, nil
}

// neighborSteps precomputes the move functions for conn:
// Cardinals in declaration order, then Diagonals for Conn8.
func neighborSteps(conn Connectivity) []func(grid.Position) grid.Position {
	steps := make([]func(grid.Position) grid.Position, 0, 8)
	for _, c := range direction.Cardinals() {
		steps = append(steps, c.Of)
	}
	if conn == Conn8 {
		for _, d := range direction.Diagonals() {
			steps = append(steps, d.Of)
		}
	}
	return steps
}

// Neighbors returns the 4 or 8 positions adjacent to p, without bounds checks.
func Neighbors(p grid.Position, conn Connectivity) []grid.Position {
	steps := neighborSteps(conn)
	out := make([]grid.Position, len(steps))
	for i, step := range steps {
		out[i] = step(p)
	}
	return out
}

// InBounds reports whether p lies within the grid.
// Complexity: O(1).
func (gg *GridGraph[T]) InBounds(p grid.Position) bool {
	return p.Row >= 0 && p.Row < gg.Rows && p.Col >= 0 && p.Col < gg.Cols
}

// IsLand reports whether the cell at p is in bounds and kept.
func (gg *GridGraph[T]) IsLand(p grid.Position) bool {
	return gg.InBounds(p) && gg.keep(gg.cells[p.Row][p.Col])
}

// Neighbors returns the in-bounds neighbours of p in a fixed order.
func (gg *GridGraph[T]) Neighbors(p grid.Position) []grid.Position {
	out := make([]grid.Position, 0, len(gg.steps))
	for _, step := range gg.steps {
		if q := step(p); gg.InBounds(q) {
			out = append(out, q)
		}
	}
	return out
}

// index maps p to a row-major index.
func (gg *GridGraph[T]) index(p grid.Position) int {
	return p.Row*gg.Cols + p.Col
}

// position converts a row-major index back to a Position.
func (gg *GridGraph[T]) position(idx int) grid.Position {
	return grid.Position{Row: idx / gg.Cols, Col: idx % gg.Cols}
}
