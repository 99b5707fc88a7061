package gridgraph_test

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/gridkit/grid"
	"github.com/katalvlaran/gridkit/gridgraph"
	"github.com/stretchr/testify/require"
)

// TestComponents_Simple4 runs Components on a 3×4 grid with Conn4.
//
//	0 1 1 0
//	1 1 0 0
//	0 0 1 1
//
// Expected: 2 islands of sizes 4 and 2.
func TestComponents_Simple4(t *testing.T) {
	t.Parallel()

	gg, err := gridgraph.New([][]int{
		{0, 1, 1, 0},
		{1, 1, 0, 0},
		{0, 0, 1, 1},
	}, isLand, gridgraph.Conn4)
	require.NoError(t, err)

	comps := gg.Components()
	require.Len(t, comps, 2)
	sizes := []int{len(comps[0]), len(comps[1])}
	sort.Ints(sizes)
	require.Equal(t, []int{2, 4}, sizes)
}

// TestComponents_Diagonal8 checks that touching corners join under Conn8
// and stay apart under Conn4.
//
//	1 0 0 0 1
//	0 1 0 1 0
//	0 0 1 0 0
//	0 1 0 1 0
//	1 0 0 0 1
func TestComponents_Diagonal8(t *testing.T) {
	t.Parallel()

	m := [][]int{
		{1, 0, 0, 0, 1},
		{0, 1, 0, 1, 0},
		{0, 0, 1, 0, 0},
		{0, 1, 0, 1, 0},
		{1, 0, 0, 0, 1},
	}
	gg8, err := gridgraph.New(m, isLand, gridgraph.Conn8)
	require.NoError(t, err)
	comps := gg8.Components()
	require.Len(t, comps, 1)
	require.Len(t, comps[0], 9)

	gg4, err := gridgraph.New(m, isLand, gridgraph.Conn4)
	require.NoError(t, err)
	require.Len(t, gg4.Components(), 9)
}

// TestComponents_Order pins row-major region order and BFS cell order on runes.
func TestComponents_Order(t *testing.T) {
	t.Parallel()

	m := [][]rune{
		[]rune("##.#"),
		[]rune("#..#"),
	}
	gg, err := gridgraph.New(m, func(r rune) bool { return r == '#' }, gridgraph.Conn4)
	require.NoError(t, err)

	want := [][]grid.Position{
		{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 0, Col: 1}},
		{{Row: 0, Col: 3}, {Row: 1, Col: 3}},
	}
	if diff := cmp.Diff(want, gg.Components()); diff != "" {
		t.Errorf("Components mismatch (-want +got):\n%s", diff)
	}
}

func TestComponents_AllWater(t *testing.T) {
	t.Parallel()

	gg, err := gridgraph.New([][]int{{0, 0}, {0, 0}}, isLand, gridgraph.Conn8)
	require.NoError(t, err)
	require.Empty(t, gg.Components())
}
