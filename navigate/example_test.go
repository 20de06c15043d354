// Package navigate_test provides a runnable end-to-end example: build a
// small town, route between two locations, and print the directions.
package navigate_test

import (
	"fmt"

	"github.com/Powermatix/nawigacja-pag2/navigate"
	"github.com/Powermatix/nawigacja-pag2/streetgraph"
)

// ExampleNavigator demonstrates the full query surface: routing with
// both algorithms and rendering turn-by-turn directions.
func ExampleNavigator() {
	// 1) Build the street network up front; it stays immutable afterwards.
	g := streetgraph.NewGraph()
	_ = g.AddNode("Home", 0, 0, "Home")
	_ = g.AddNode("Store", 1, 2, "Store")
	_ = g.AddNode("Hospital", 2, 4, "Hospital")
	_ = g.AddEdge("Home", "Store", 2.0, "Oak Avenue")
	_ = g.AddEdge("Store", "Hospital", 3.0, "Center Street")

	// 2) Wrap it in a Navigator.
	nav, err := navigate.New(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) Route Home → Hospital; A* agrees with Dijkstra on the cost.
	res, err := nav.FindPathAStar("Home", "Hospital")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("distance: %.1f\n", res.Distance)

	// 4) Render the route as directions.
	directions, err := nav.RouteDescription(res.Path)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, line := range directions {
		fmt.Println(line)
	}
	// Output:
	// distance: 5.0
	// Start at Home
	// Go to Store via Oak Avenue (2.0 units)
	// Go to Hospital via Center Street (3.0 units)
	// Arrive at Hospital
}

// ExampleNavigator_NearestLocation snaps a raw coordinate to the closest
// known intersection before routing.
func ExampleNavigator_NearestLocation() {
	g := streetgraph.NewGraph()
	_ = g.AddNode("Home", 0, 0, "Home")
	_ = g.AddNode("Store", 1, 2, "Store")
	_ = g.AddEdge("Home", "Store", 2.0, "Oak Avenue")

	nav, _ := navigate.New(g)

	start, _ := nav.NearestLocation(0.1, -0.2)
	fmt.Println(start)
	// Output: Home
}
