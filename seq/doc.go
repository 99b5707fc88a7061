// Package seq partitions ordered slices at elements matching a predicate.
//
// Split drops every matching element and returns the segments between them.
// SplitWith can instead keep the match at the end of the preceding segment
// (WithMatchInPre), at the start of the following one (WithMatchInPost), or
// both. Leading, trailing and adjacent matches produce empty segments, so a
// slice with k matches always yields k+1 segments.
//
// Both functions make a single left-to-right pass with an explicit
// accumulator: O(N) time, O(1) auxiliary stack. Segments are freshly
// allocated and never alias the input.
package seq
