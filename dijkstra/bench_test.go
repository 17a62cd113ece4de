package dijkstra_test

import (
	"testing"

	"github.com/katalvlaran/lvlpath/dijkstra"
	"github.com/katalvlaran/lvlpath/grid"
)

// BenchmarkRun_OpenGrid measures corner-to-corner search on an open
// 100×100 map. Complexity: O((V+E) log V).
func BenchmarkRun_OpenGrid(b *testing.B) {
	const n = 100
	g, err := grid.New(make([]int, n*n), n)
	if err != nil {
		b.Fatalf("setup grid failed: %v", err)
	}
	adj := grid.NewAdjacents(g)
	start := grid.Key{Row: 0, Col: 0}
	goal := grid.Key{Row: n - 1, Col: n - 1}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dijkstra.Run(adj, start, goal); err != nil {
			b.Fatal(err)
		}
	}
}
