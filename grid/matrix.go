package grid

import "fmt"

// ValidateRect checks that m has at least one row, a non-empty first row,
// and that every row has the same length as the first.
// Returns ErrEmptyMatrix or ErrNonRectangular.
// Complexity: O(R).
func ValidateRect[T any](m [][]T) error {
	if len(m) == 0 || len(m[0]) == 0 {
		return ErrEmptyMatrix
	}
	w := len(m[0])
	for i, row := range m {
		if len(row) != w {
			return fmt.Errorf("row %d has %d columns, want %d: %w", i, len(row), w, ErrNonRectangular)
		}
	}

	return nil
}

// Transpose returns the C×R matrix out with out[j][i] == m[i][j].
// The result is freshly allocated and never aliases m.
// Returns ErrEmptyMatrix or ErrNonRectangular when m is not a valid rectangle.
// Complexity: O(R×C) time and memory.
func Transpose[T any](m [][]T) ([][]T, error) {
	if err := ValidateRect(m); err != nil {
		return nil, err
	}
	rows, cols := len(m), len(m[0])
	// One backing array, sliced per output row.
	flat := make([]T, rows*cols)
	out := make([][]T, cols)
	for j := 0; j < cols; j++ {
		out[j] = flat[j*rows : (j+1)*rows : (j+1)*rows]
		for i := 0; i < rows; i++ {
			out[j][i] = m[i][j]
		}
	}

	return out, nil
}

// At returns m[p.Row][p.Col], or ErrOutOfRange if p is outside m.
// Rectangularity is not required; only the addressed row is checked.
// Complexity: O(1).
func At[T any](m [][]T, p Position) (T, error) {
	var zero T
	if p.Row < 0 || p.Row >= len(m) {
		return zero, fmt.Errorf("row %d of %d: %w", p.Row, len(m), ErrOutOfRange)
	}
	row := m[p.Row]
	if p.Col < 0 || p.Col >= len(row) {
		return zero, fmt.Errorf("col %d of %d: %w", p.Col, len(row), ErrOutOfRange)
	}

	return row[p.Col], nil
}

// Row returns row i of m as-is; the slice shares m's backing array.
// Complexity: O(1).
func Row[T any](m [][]T, i int) ([]T, error) {
	if i < 0 || i >= len(m) {
		return nil, fmt.Errorf("row %d of %d: %w", i, len(m), ErrOutOfRange)
	}

	return m[i], nil
}

// Col collects m[r][j] for every row r, in row order, into a new slice.
// Returns ErrOutOfRange if j is negative or any row is too short.
// Complexity: O(R).
func Col[T any](m [][]T, j int) ([]T, error) {
	if j < 0 {
		return nil, fmt.Errorf("col %d: %w", j, ErrOutOfRange)
	}
	out := make([]T, len(m))
	for r, row := range m {
		if j >= len(row) {
			return nil, fmt.Errorf("col %d of %d in row %d: %w", j, len(row), r, ErrOutOfRange)
		}
		out[r] = row[j]
	}

	return out, nil
}

// InBounds reports whether p addresses an existing cell of m.
func InBounds[T any](m [][]T, p Position) bool {
	return p.Row >= 0 && p.Row < len(m) && p.Col >= 0 && p.Col < len(m[p.Row])
}
