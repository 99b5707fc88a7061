// Package puzzle holds the I/O edge of gridkit: loading puzzle input files,
// hashing strings, and rendering sparse grids for debugging.
//
// Input files live at <dir>/<name>.txt, where dir defaults to "src".
// Rendering writes the bounding box of a map[grid.Position]string to any
// io.Writer, padding missing cells with spaces.
package puzzle
