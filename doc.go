// Package gridkit is a small toolbox for grid and puzzle style computations.
//
// What is inside?
//
//	grid/      — Position, Point, Point64; Transpose, At, Row, Col; MinMax bounds
//	direction/ — Cardinal (N/S/W/E + diagonals) and Turtle (U/R/D/L) movement
//	seq/       — Split / SplitWith: partition slices at predicate matches
//	gridgraph/ — 4/8-connected regions and minimal bridges over [][]T
//	puzzle/    — input files, MD5 digests, sparse-grid rendering
//	cmd/gridkit — CLI over the helpers
//
// The grid, direction and seq helpers are pure and safe for concurrent use;
// puzzle is the I/O edge that reads input files and writes rendered grids.
// Invalid input is reported through package sentinel errors (errors.Is);
// only misuse of an enum value panics.
//
// Quick ASCII example:
//
//	  NW N NE
//	   W . E
//	  SW S SE
//
// direction.Cardinals() walks the four edges, direction.Diagonals() the corners.
//
//	go get github.com/katalvlaran/gridkit
package gridkit
