package pathfind_test

import (
	"testing"

	"github.com/Powermatix/nawigacja-pag2/gridnet"
	"github.com/Powermatix/nawigacja-pag2/pathfind"
	"github.com/Powermatix/nawigacja-pag2/streetgraph"
)

// benchLattice builds a unit 50×50 lattice (2500 nodes, 9800 directed
// edges) once per benchmark.
func benchLattice(b *testing.B) *streetgraph.Graph {
	b.Helper()
	grid, err := gridnet.New(50, 50)
	if err != nil {
		b.Fatal(err)
	}
	g, err := grid.Graph()
	if err != nil {
		b.Fatal(err)
	}

	return g
}

// BenchmarkDijkstra_Lattice measures the uninformed search corner to
// corner across the lattice.
func BenchmarkDijkstra_Lattice(b *testing.B) {
	g := benchLattice(b)
	start, end := gridnet.NodeID(0, 0), gridnet.NodeID(49, 49)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := pathfind.Dijkstra(g, start, end); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkAStar_Lattice measures the guided search on the same query;
// the straight-line heuristic prunes most of the off-diagonal frontier.
func BenchmarkAStar_Lattice(b *testing.B) {
	g := benchLattice(b)
	start, end := gridnet.NodeID(0, 0), gridnet.NodeID(49, 49)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := pathfind.AStar(g, start, end); err != nil {
			b.Fatal(err)
		}
	}
}
