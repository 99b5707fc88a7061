package grid

import "fmt"

// Position is a (row, col) cell address. The zero value is the origin.
// Positions are compared by value and are safe to use as map keys.
type Position struct {
	Row, Col int
}

// String renders the position as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Add returns p shifted by d component-wise.
func (p Position) Add(d Position) Position {
	return Position{Row: p.Row + d.Row, Col: p.Col + d.Col}
}

// Point is an (x, y) turtle coordinate at native int width.
type Point struct {
	X, Y int
}

// Point64 is the wide counterpart of Point for coordinate ranges that
// may exceed int on 32-bit platforms.
type Point64 struct {
	X, Y int64
}

// Wide widens p to a Point64.
func (p Point) Wide() Point64 {
	return Point64{X: int64(p.X), Y: int64(p.Y)}
}

// Bounds is an inclusive axis-aligned bounding box.
// Every position it was built from satisfies Min.Row ≤ Row ≤ Max.Row
// and Min.Col ≤ Col ≤ Max.Col.
type Bounds struct {
	Min, Max Position
}

// Rows returns the number of rows spanned by b.
func (b Bounds) Rows() int {
	return b.Max.Row - b.Min.Row + 1
}

// Cols returns the number of columns spanned by b.
func (b Bounds) Cols() int {
	return b.Max.Col - b.Min.Col + 1
}

// Contains reports whether p lies inside b (edges included).
func (b Bounds) Contains(p Position) bool {
	return p.Row >= b.Min.Row && p.Row <= b.Max.Row &&
		p.Col >= b.Min.Col && p.Col <= b.Max.Col
}
