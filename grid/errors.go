package grid

import "errors"

// Every message is prefixed with "grid: ". Callers match with errors.Is;
// helpers wrap with fmt.Errorf("...: %w", ErrX) when an index is worth reporting.
var (
	// ErrEmptyMatrix indicates the matrix has no rows or no columns.
	ErrEmptyMatrix = errors.New("grid: matrix must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrOutOfRange indicates a row or column index outside the matrix.
	ErrOutOfRange = errors.New("grid: index out of range")
	// ErrEmptySet indicates a bounding box was requested for zero positions.
	ErrEmptySet = errors.New("grid: bounds of an empty position set")
)
