package seq

// Split cuts s at every element for which pred is true, discarding the
// matching elements. With no match the result is a single segment holding
// a copy of s; an empty s yields one empty segment.
func Split[T any](s []T, pred func(T) bool) [][]T {
	return SplitWith(s, pred)
}

// SplitWith is Split with control over where matching elements go.
// With no options it behaves exactly like Split. WithMatchInPre and
// WithMatchInPost may be combined, in which case each match appears in
// both neighbouring segments.
func SplitWith[T any](s []T, pred func(T) bool, opts ...Option) [][]T {
	o := gatherOptions(opts)

	segments := make([][]T, 0, 1)
	cur := make([]T, 0)
	for _, v := range s {
		if !pred(v) {
			cur = append(cur, v)
			continue
		}
		if o.matchInPre {
			cur = append(cur, v)
		}
		segments = append(segments, cur)
		cur = make([]T, 0)
		if o.matchInPost {
			cur = append(cur, v)
		}
	}

	return append(segments, cur)
}

// Not returns the negation of pred.
func Not[T any](pred func(T) bool) func(T) bool {
	return func(v T) bool { return !pred(v) }
}
