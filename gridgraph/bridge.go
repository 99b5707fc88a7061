package gridgraph

import (
	"container/list"

	"github.com/katalvlaran/gridkit/grid"
)

// Bridge finds a minimum-conversion path of water cells connecting any cell
// of component src to any cell of component dst, as numbered by Components.
// Each water cell on the path costs 1; land cells are free.
// Returns the path (including the start and end land cells) and its cost.
//
// Behavior:
//  1. Validate component indices.
//  2. Multi-source 0-1 BFS from every src cell.
//  3. Stop when any dst cell is popped.
//  4. Reconstruct the path via predecessor links.
//
// Complexity: O(R·C·d) time, O(R·C) memory.
func (gg *GridGraph[T]) Bridge(src, dst int) (path []grid.Position, cost int, err error) {
	comps := gg.Components()
	if src < 0 || src >= len(comps) || dst < 0 || dst >= len(comps) {
		return nil, 0, ErrComponentIndex
	}
	target := make(map[grid.Position]struct{}, len(comps[dst]))
	for _, p := range comps[dst] {
		target[p] = struct{}{}
	}

	n := gg.Rows * gg.Cols
	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	// 0-1 BFS: cost-0 moves at the front, cost-1 moves at the back.
	dq := list.New()
	for _, p := range comps[src] {
		dist[gg.index(p)] = 0
		dq.PushFront(p)
	}

	end := -1
	for dq.Len() > 0 {
		u := dq.Remove(dq.Front()).(grid.Position)
		ui := gg.index(u)
		if _, ok := target[u]; ok {
			end = ui
			break
		}
		for _, v := range gg.Neighbors(u) {
			step := 1
			if gg.IsLand(v) {
				step = 0
			}
			vi := gg.index(v)
			if nd := dist[ui] + step; nd < dist[vi] {
				dist[vi] = nd
				prev[vi] = ui
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	if end < 0 {
		return nil, 0, ErrNoPath
	}
	for at := end; at >= 0; at = prev[at] {
		path = append(path, gg.position(at))
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, dist[end], nil
}
