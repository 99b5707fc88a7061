package direction

import "errors"

var (
	// ErrInvalidDirection indicates a character that is not one of R, U, D, L.
	ErrInvalidDirection = errors.New("direction: not a direction")
	// ErrInvalidStep indicates a step whose count is malformed or negative.
	ErrInvalidStep = errors.New("direction: invalid step count")
)
