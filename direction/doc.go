// Package direction models the two movement vocabularies used by grid puzzles.
//
// Cardinal (North, South, West, East) moves a grid.Position in row/col space:
// North decrements Row, South increments it. Diagonals() lists the four
// (vertical, horizontal) pairs for 8-neighbour traversal.
//
// Turtle (Up, Right, Down, Left) moves a grid.Point in x/y space and is
// parsed from the single-character path codes R, U, D, L. Up increments Y,
// so the vertical axis is inverted relative to Cardinal; puzzle inputs rely
// on this and the two models are intentionally not reconciled.
//
// All functions are pure and safe for concurrent use.
package direction
