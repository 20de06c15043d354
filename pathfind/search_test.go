// Package pathfind_test: cross-algorithm properties. Both searches must
// agree on path cost wherever the heuristic is a true lower bound, and
// the heuristic search may never explore more of the graph than the
// uninformed one on a geometrically faithful network.
package pathfind_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Powermatix/nawigacja-pag2/gridnet"
	"github.com/Powermatix/nawigacja-pag2/pathfind"
	"github.com/Powermatix/nawigacja-pag2/streetgraph"
)

// buildTown constructs the six-location demo network:
//
//	     Store (1,2)
//	       / \
//	Home(0,0) School(2,1) — Library(4,1)
//	       \     \          /
//	        \     Park(3,3)
//	         \      |
//	          Hospital(2,4)
func buildTown(t *testing.T) *streetgraph.Graph {
	t.Helper()
	g := streetgraph.NewGraph()
	locations := []struct {
		id   string
		x, y float64
	}{
		{"Home", 0, 0}, {"School", 2, 1}, {"Store", 1, 2},
		{"Park", 3, 3}, {"Library", 4, 1}, {"Hospital", 2, 4},
	}
	for _, l := range locations {
		require.NoError(t, g.AddNode(l.id, l.x, l.y, l.id))
	}
	streets := []struct {
		from, to string
		w        float64
		name     string
	}{
		{"Home", "School", 2.5, "Main Street"},
		{"Home", "Store", 2.0, "Oak Avenue"},
		{"School", "Library", 2.0, "Elm Street"},
		{"Store", "School", 1.5, "Park Road"},
		{"Store", "Park", 2.5, "Lake Drive"},
		{"Store", "Hospital", 3.0, "Center Street"},
		{"Park", "Library", 2.0, "Pine Avenue"},
		{"Park", "Hospital", 1.5, "River Road"},
	}
	for _, s := range streets {
		require.NoError(t, g.AddEdge(s.from, s.to, s.w, s.name))
	}

	return g
}

// buildLattice materializes a unit-weight, unit-spacing W×H grid. On such
// a grid the straight-line heuristic is strictly admissible (the diagonal
// never exceeds the hop count), so every A* guarantee applies.
func buildLattice(t *testing.T, w, h int) *streetgraph.Graph {
	t.Helper()
	grid, err := gridnet.New(w, h)
	require.NoError(t, err)
	g, err := grid.Graph()
	require.NoError(t, err)

	return g
}

func TestTown_KnownRoutes(t *testing.T) {
	g := buildTown(t)

	cases := []struct {
		start, end string
		distance   float64
	}{
		{"Home", "Hospital", 5.0}, // via Store, Center Street
		{"Home", "Library", 4.5},  // via School, Elm Street
		{"Store", "Library", 3.5}, // via School
	}
	for _, tc := range cases {
		t.Run(tc.start+"_"+tc.end, func(t *testing.T) {
			d, err := pathfind.Dijkstra(g, tc.start, tc.end)
			require.NoError(t, err)
			a, err := pathfind.AStar(g, tc.start, tc.end)
			require.NoError(t, err)

			assert.InDelta(t, tc.distance, d.Distance, 1e-9)
			assert.InDelta(t, tc.distance, a.Distance, 1e-9)
			assert.Equal(t, tc.start, d.Path[0])
			assert.Equal(t, tc.end, d.Path[len(d.Path)-1])
		})
	}
}

// TestAgreement_Lattice checks the core property over every ordered pair
// of a 3×3 lattice: identical path cost from both algorithms, endpoints
// in place, and the reported distance equal to the sum of the traversed
// edge weights.
func TestAgreement_Lattice(t *testing.T) {
	g := buildLattice(t, 3, 3)

	for _, start := range g.Nodes() {
		for _, end := range g.Nodes() {
			d, errD := pathfind.Dijkstra(g, start, end)
			a, errA := pathfind.AStar(g, start, end)
			require.NoError(t, errD, "%s→%s", start, end)
			require.NoError(t, errA, "%s→%s", start, end)

			assert.InDelta(t, d.Distance, a.Distance, 1e-9, "cost mismatch %s→%s", start, end)
			assert.Equal(t, start, d.Path[0])
			assert.Equal(t, end, d.Path[len(d.Path)-1])
			assert.InDelta(t, pathCost(t, g, d.Path), d.Distance, 1e-9)
			assert.InDelta(t, pathCost(t, g, a.Path), a.Distance, 1e-9)
		}
	}
}

// TestLattice_CornerToCorner pins the concrete grid scenario: opposite
// corners of a 3×3 unit lattice are 4 hops apart, and the guided search
// finalizes no more nodes than the uninformed one.
func TestLattice_CornerToCorner(t *testing.T) {
	g := buildLattice(t, 3, 3)
	start, end := gridnet.NodeID(0, 0), gridnet.NodeID(2, 2)

	d, err := pathfind.Dijkstra(g, start, end)
	require.NoError(t, err)
	a, err := pathfind.AStar(g, start, end)
	require.NoError(t, err)

	assert.InDelta(t, 4.0, d.Distance, 1e-9)
	assert.InDelta(t, 4.0, a.Distance, 1e-9)
	assert.Len(t, d.Path, 5)
	assert.LessOrEqual(t, a.Expanded, d.Expanded,
		"A* must not explore more nodes than Dijkstra")
}

// TestConcurrentSearches runs many independent queries over one immutable
// graph from separate goroutines. Each search owns its entire mutable
// state, so results must match the sequential baseline.
func TestConcurrentSearches(t *testing.T) {
	g := buildLattice(t, 5, 5)
	start, end := gridnet.NodeID(0, 0), gridnet.NodeID(4, 4)

	base, err := pathfind.Dijkstra(g, start, end)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(useAStar bool) {
			defer wg.Done()
			var res pathfind.Result
			var err error
			if useAStar {
				res, err = pathfind.AStar(g, start, end)
			} else {
				res, err = pathfind.Dijkstra(g, start, end)
			}
			assert.NoError(t, err)
			assert.InDelta(t, base.Distance, res.Distance, 1e-9)
		}(i%2 == 0)
	}
	wg.Wait()
}

// pathCost sums consecutive edge weights along path.
func pathCost(t *testing.T, g *streetgraph.Graph, path []string) float64 {
	t.Helper()
	var sum float64
	for i := 0; i < len(path)-1; i++ {
		e, err := g.EdgeBetween(path[i], path[i+1])
		require.NoError(t, err)
		sum += e.Weight
	}

	return sum
}
