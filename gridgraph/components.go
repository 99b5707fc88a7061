package gridgraph

import "github.com/katalvlaran/gridkit/grid"

// Components finds all contiguous regions of land cells under gg.Conn.
// Regions are ordered by their first cell in row-major order; cells within
// a region are in BFS discovery order starting from that cell.
//
// Time:   O(R·C·d), where d = 4 or 8.
// Memory: O(R·C) for visited flags and output.
func (gg *GridGraph[T]) Components() [][]grid.Position {
	seen := make([]bool, gg.Rows*gg.Cols)
	var comps [][]grid.Position

	for r := 0; r < gg.Rows; r++ {
		for c := 0; c < gg.Cols; c++ {
			start := grid.Position{Row: r, Col: c}
			if !gg.IsLand(start) || seen[gg.index(start)] {
				continue
			}
			seen[gg.index(start)] = true
			queue := []grid.Position{start}

			for qi := 0; qi < len(queue); qi++ {
				for _, v := range gg.Neighbors(queue[qi]) {
					if !gg.IsLand(v) || seen[gg.index(v)] {
						continue
					}
					seen[gg.index(v)] = true
					queue = append(queue, v)
				}
			}
			comps = append(comps, queue)
		}
	}
	return comps
}
