// Package pathfind_test provides runnable examples for both searches.
// Each example is runnable via "go test -run Example", showing both code
// and expected output.
package pathfind_test

import (
	"errors"
	"fmt"

	"github.com/Powermatix/nawigacja-pag2/pathfind"
	"github.com/Powermatix/nawigacja-pag2/streetgraph"
)

// ExampleDijkstra demonstrates that the uninformed search prefers a
// cheaper detour over a heavier direct street.
func ExampleDijkstra() {
	// 1) Build the network: three locations, three bidirectional streets.
	g := streetgraph.NewGraph()
	_ = g.AddNode("Home", 0, 0, "Home")
	_ = g.AddNode("Store", 1, 2, "Store")
	_ = g.AddNode("Park", 3, 3, "Park")
	_ = g.AddEdge("Home", "Store", 2.0, "Oak Avenue")
	_ = g.AddEdge("Store", "Park", 2.5, "Lake Drive")
	_ = g.AddEdge("Home", "Park", 5.0, "Long Way")

	// 2) The direct Home–Park street costs 5.0; the detour costs 4.5.
	res, err := pathfind.Dijkstra(g, "Home", "Park")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("%v (%.1f)\n", res.Path, res.Distance)
	// Output: [Home Store Park] (4.5)
}

// ExampleAStar demonstrates the heuristic-guided search on the same
// network; the path cost always matches Dijkstra's.
func ExampleAStar() {
	g := streetgraph.NewGraph()
	_ = g.AddNode("Home", 0, 0, "Home")
	_ = g.AddNode("Store", 1, 2, "Store")
	_ = g.AddNode("Park", 3, 3, "Park")
	_ = g.AddEdge("Home", "Store", 2.0, "Oak Avenue")
	_ = g.AddEdge("Store", "Park", 2.5, "Lake Drive")
	_ = g.AddEdge("Home", "Park", 5.0, "Long Way")

	res, err := pathfind.AStar(g, "Home", "Park")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("%v (%.1f)\n", res.Path, res.Distance)
	// Output: [Home Store Park] (4.5)
}

// ExampleDijkstra_noPath shows how "unreachable" surfaces: ErrNoPath is
// an expected outcome to branch on, not a failure to panic over.
func ExampleDijkstra_noPath() {
	g := streetgraph.NewGraph()
	_ = g.AddNode("Home", 0, 0, "Home")
	_ = g.AddNode("Island", 10, 10, "Island")

	_, err := pathfind.Dijkstra(g, "Home", "Island")
	if errors.Is(err, pathfind.ErrNoPath) {
		fmt.Println("no route exists")
	}
	// Output: no route exists
}
