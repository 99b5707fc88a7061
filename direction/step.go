package direction

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/katalvlaran/gridkit/grid"
)

// Step is a turtle direction repeated N times, written as e.g. "R4".
type Step struct {
	Dir Turtle
	N   int64
}

// ParseStep parses a path code followed by an optional non-negative count.
// A bare code means one step. An unknown code yields ErrInvalidDirection,
// a malformed or negative count ErrInvalidStep.
func ParseStep(s string) (Step, error) {
	c, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return Step{}, fmt.Errorf("%w: empty step", ErrInvalidDirection)
	}
	dir, err := ParseTurtle(c)
	if err != nil {
		return Step{}, err
	}
	if len(s) == size {
		return Step{Dir: dir, N: 1}, nil
	}
	n, err := strconv.ParseInt(s[size:], 10, 64)
	if err != nil {
		return Step{}, fmt.Errorf("%w %q: %w", ErrInvalidStep, s, err)
	}
	if n < 0 {
		return Step{}, fmt.Errorf("%w %q: negative count", ErrInvalidStep, s)
	}

	return Step{Dir: dir, N: n}, nil
}

// Walk applies steps in order starting at p and returns the final point.
// Each step moves N units at once, so the cost is O(len(steps)).
// Coordinates wrap on int64 overflow, like MoveWide.
func Walk(p grid.Point64, steps []Step) grid.Point64 {
	for _, s := range steps {
		d := s.Dir.delta()
		p.X += s.N * int64(d.X)
		p.Y += s.N * int64(d.Y)
	}
	return p
}
