package direction

import (
	"fmt"

	"github.com/katalvlaran/gridkit/grid"
)

// Turtle is a path-walking direction in x/y space.
type Turtle uint8

const (
	Up Turtle = iota
	Right
	Down
	Left
)

// turtleDelta holds the (x, y) offset of each Turtle, indexed by value.
var turtleDelta = [...]grid.Point{
	Up:    {X: 0, Y: 1},
	Right: {X: 1, Y: 0},
	Down:  {X: 0, Y: -1},
	Left:  {X: -1, Y: 0},
}

var turtleCodes = [...]rune{Up: 'U', Right: 'R', Down: 'D', Left: 'L'}

// ParseTurtle maps the path codes 'R', 'U', 'D', 'L' to Right, Up, Down, Left.
// Any other character yields ErrInvalidDirection.
func ParseTurtle(c rune) (Turtle, error) {
	switch c {
	case 'R':
		return Right, nil
	case 'U':
		return Up, nil
	case 'D':
		return Down, nil
	case 'L':
		return Left, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, c)
}

// Valid reports whether t is one of the four defined directions.
func (t Turtle) Valid() bool {
	return t <= Left
}

// Move returns p shifted one step in direction t.
// Up increments Y, Right increments X. Panics if t is not Valid.
func (t Turtle) Move(p grid.Point) grid.Point {
	d := t.delta()
	return grid.Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// MoveWide is Move over 64-bit coordinates.
func (t Turtle) MoveWide(p grid.Point64) grid.Point64 {
	d := t.delta()
	return grid.Point64{X: p.X + int64(d.X), Y: p.Y + int64(d.Y)}
}

// Opposite returns the reverse direction.
func (t Turtle) Opposite() Turtle {
	if !t.Valid() {
		panic(fmt.Sprintf("direction: invalid turtle %d", uint8(t)))
	}
	return (t + 2) % 4
}

// String returns the single-character path code, so that
// ParseTurtle(rune(t.String()[0])) round-trips.
func (t Turtle) String() string {
	if !t.Valid() {
		return fmt.Sprintf("Turtle(%d)", uint8(t))
	}
	return string(turtleCodes[t])
}

func (t Turtle) delta() grid.Point {
	if !t.Valid() {
		panic(fmt.Sprintf("direction: invalid turtle %d", uint8(t)))
	}
	return turtleDelta[t]
}
