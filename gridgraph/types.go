package gridgraph

import (
	"errors"

	"github.com/katalvlaran/gridkit/grid"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrComponentIndex indicates a requested component index is out of range.
	ErrComponentIndex = errors.New("gridgraph: component index out of range")
	// ErrNoPath indicates no conversion path exists between two components.
	ErrNoPath = errors.New("gridgraph: no path between specified components")
)

// Connectivity selects neighbour connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses the four cardinal neighbours.
	Conn4 Connectivity = iota
	// Conn8 adds the four diagonal neighbours.
	Conn8
)

// GridGraph views a rectangular matrix as a graph. It is immutable once built.
// Cells for which keep returns true are "land"; all others are "water".
type GridGraph[T any] struct {
	Rows, Cols int
	Conn       Connectivity
	cells      [][]T
	keep       func(T) bool
	steps      []func(grid.Position) grid.Position
}
