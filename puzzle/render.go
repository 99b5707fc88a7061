package puzzle

import (
	"bufio"
	"fmt"
	"io"
	"maps"
	"strings"

	"github.com/katalvlaran/gridkit/grid"
)

const separator = "------------------------------------------------------------"

// ParseSparse builds a sparse grid from text lines: every rune for which
// skip returns false becomes a one-character cell at (line, rune index).
// A nil skip keeps every rune.
func ParseSparse(lines []string, skip func(rune) bool) map[grid.Position]string {
	cells := make(map[grid.Position]string)
	for r, line := range lines {
		for c, ch := range []rune(line) {
			if skip != nil && skip(ch) {
				continue
			}
			cells[grid.Position{Row: r, Col: c}] = string(ch)
		}
	}
	return cells
}

// Render writes cells to w as a rectangle covering their bounding box:
// a "number positions in grid: N" header, one line per row with missing
// cells padded by WithCellWidth spaces, then a separator line.
// Returns grid.ErrEmptySet if cells is empty.
func Render(w io.Writer, cells map[grid.Position]string, opts ...Option) error {
	o := gatherOptions(opts)
	b, err := grid.MinMaxSeq(maps.Keys(cells))
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "number positions in grid: %d\n", len(cells))
	blank := strings.Repeat(" ", o.cellWidth)
	for r := b.Min.Row; r <= b.Max.Row; r++ {
		for c := b.Min.Col; c <= b.Max.Col; c++ {
			if v, ok := cells[grid.Position{Row: r, Col: c}]; ok {
				bw.WriteString(v)
			} else {
				bw.WriteString(blank)
			}
		}
		bw.WriteByte('\n')
	}
	bw.WriteString(separator)
	bw.WriteByte('\n')

	return bw.Flush()
}
