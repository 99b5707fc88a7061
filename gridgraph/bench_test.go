package gridgraph_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridkit/gridgraph"
)

// BenchmarkComponents measures Components on a deterministic random
// 1000×1000 grid with values in [0,4].
func BenchmarkComponents(b *testing.B) {
	const n = 1000
	rng := rand.New(rand.NewSource(42))
	m := make([][]int, n)
	for y := range m {
		m[y] = make([]int, n)
		for x := range m[y] {
			m[y][x] = rng.Intn(5)
		}
	}
	gg, err := gridgraph.New(m, isLand, gridgraph.Conn4)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = gg.Components()
	}
}

// BenchmarkBridge measures Bridge between two single-cell islands at
// opposite corners of a 1000×1000 grid.
func BenchmarkBridge(b *testing.B) {
	const n = 1000
	m := make([][]int, n)
	for y := range m {
		m[y] = make([]int, n)
	}
	m[0][0] = 1
	m[n-1][n-1] = 2

	gg, err := gridgraph.New(m, isLand, gridgraph.Conn8)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := gg.Bridge(0, 1); err != nil {
			b.Fatal(err)
		}
	}
}
