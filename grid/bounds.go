package grid

import (
	"iter"
	"slices"
)

// MinMax returns the bounding box of ps: Min holds the smallest row and
// the smallest column, Max the largest of each, computed per axis.
// Neither corner need be a member of ps.
// Returns ErrEmptySet when ps is empty.
// Complexity: O(N) time, O(1) memory.
func MinMax(ps []Position) (Bounds, error) {
	return MinMaxSeq(slices.Values(ps))
}

// MinMaxSeq is MinMax over an iterator, so the keys of a sparse
// map[Position]V can be passed directly via maps.Keys.
func MinMaxSeq(ps iter.Seq[Position]) (Bounds, error) {
	var (
		b    Bounds
		seen bool
	)
	for p := range ps {
		if !seen {
			b = Bounds{Min: p, Max: p}
			seen = true
			continue
		}
		b.Min.Row = min(b.Min.Row, p.Row)
		b.Min.Col = min(b.Min.Col, p.Col)
		b.Max.Row = max(b.Max.Row, p.Row)
		b.Max.Col = max(b.Max.Col, p.Col)
	}
	if !seen {
		return Bounds{}, ErrEmptySet
	}

	return b, nil
}
