package direction

import (
	"fmt"

	"github.com/katalvlaran/gridkit/grid"
)

// Cardinal is one of the four axis-aligned compass directions.
type Cardinal uint8

const (
	North Cardinal = iota
	South
	West
	East
)

// cardinalDelta holds the (row, col) offset of each Cardinal, indexed by value.
var cardinalDelta = [...]grid.Position{
	North: {Row: -1, Col: 0},
	South: {Row: 1, Col: 0},
	West:  {Row: 0, Col: -1},
	East:  {Row: 0, Col: 1},
}

var cardinalNames = [...]string{North: "NORTH", South: "SOUTH", West: "WEST", East: "EAST"}

// Cardinals returns North, South, West, East in declaration order.
func Cardinals() []Cardinal {
	return []Cardinal{North, South, West, East}
}

// Valid reports whether c is one of the four defined directions.
func (c Cardinal) Valid() bool {
	return c <= East
}

// Of returns the position one step from p in direction c.
// Panics if c is not Valid.
func (c Cardinal) Of(p grid.Position) grid.Position {
	return p.Add(c.delta())
}

// Opposite returns the direction pointing the other way.
func (c Cardinal) Opposite() Cardinal {
	switch c {
	case North:
		return South
	case South:
		return North
	case West:
		return East
	case East:
		return West
	}
	panic(fmt.Sprintf("direction: invalid cardinal %d", uint8(c)))
}

// String returns the upper-case compass name.
func (c Cardinal) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Cardinal(%d)", uint8(c))
	}
	return cardinalNames[c]
}

func (c Cardinal) delta() grid.Position {
	if !c.Valid() {
		panic(fmt.Sprintf("direction: invalid cardinal %d", uint8(c)))
	}
	return cardinalDelta[c]
}

// Diagonal is an ordered (vertical, horizontal) pair of Cardinals.
type Diagonal [2]Cardinal

// Of applies both component offsets to p.
func (d Diagonal) Of(p grid.Position) grid.Position {
	return d[1].Of(d[0].Of(p))
}

// String joins the component names, e.g. "NORTH-WEST".
func (d Diagonal) String() string {
	return d[0].String() + "-" + d[1].String()
}

// Diagonals returns the four diagonal pairs in fixed order:
// NORTH-WEST, NORTH-EAST, SOUTH-WEST, SOUTH-EAST.
// A fresh slice is returned on every call.
func Diagonals() []Diagonal {
	return []Diagonal{
		{North, West},
		{North, East},
		{South, West},
		{South, East},
	}
}
