// Package navigate is the high-level entry point of the street navigation
// system: a thin facade composing a street graph with both shortest-path
// searches, plus a turn-by-turn directions formatter and a spatial
// locate-nearest-intersection helper.
//
// The facade adds no algorithmic logic of its own. Every error condition
// of the underlying packages (streetgraph.ErrUnknownNode,
// pathfind.ErrNoPath, …) is surfaced to the caller untouched and remains
// matchable with errors.Is; nothing is swallowed or defaulted.
package navigate

import (
	"errors"
	"fmt"
	"sync"

	"github.com/Powermatix/nawigacja-pag2/pathfind"
	"github.com/Powermatix/nawigacja-pag2/streetgraph"
)

// ErrNilGraph indicates a Navigator was constructed over a nil graph.
var ErrNilGraph = errors.New("navigate: graph is nil")

// noRouteMessage is the single description line produced for an empty path.
const noRouteMessage = "No route found"

// Navigator answers routing queries over one street network. Build the
// graph fully before constructing a Navigator; the graph is treated as
// immutable afterwards. A Navigator is safe for concurrent use.
type Navigator struct {
	graph *streetgraph.Graph

	indexOnce sync.Once
	index     *streetgraph.NodeIndex
	indexErr  error
}

// New creates a Navigator over the given street network.
func New(g *streetgraph.Graph) (*Navigator, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	return &Navigator{graph: g}, nil
}

// Graph returns the underlying street network.
func (n *Navigator) Graph() *streetgraph.Graph { return n.graph }

// FindPathDijkstra finds the least-cost route using the uninformed search.
func (n *Navigator) FindPathDijkstra(start, end string) (pathfind.Result, error) {
	return pathfind.Dijkstra(n.graph, start, end)
}

// FindPathAStar finds the least-cost route using the heuristic-guided
// search with the default straight-line heuristic.
func (n *Navigator) FindPathAStar(start, end string) (pathfind.Result, error) {
	return pathfind.AStar(n.graph, start, end)
}

// RouteDescription renders a path as human-readable turn-by-turn
// directions. An empty path yields the single line "No route found"; a
// single-node path reports that you are already there. Otherwise the
// directions open with the start location, name the street and travelled
// distance of every hop, and close with the arrival.
//
// A hop between nodes with no connecting edge still produces a direction
// line, just without a street name; an unknown node ID in the path is a
// malformed input and surfaces streetgraph.ErrUnknownNode.
func (n *Navigator) RouteDescription(path []string) ([]string, error) {
	// 1) No route: single fixed message, mirroring the no-path outcome.
	if len(path) == 0 {
		return []string{noRouteMessage}, nil
	}

	// 2) Degenerate route: start equals destination.
	if len(path) == 1 {
		node, err := n.graph.Node(path[0])
		if err != nil {
			return nil, err
		}

		return []string{fmt.Sprintf("You are already at %s", node.Name)}, nil
	}

	// 3) Full route: start line, one line per hop, arrival line.
	first, err := n.graph.Node(path[0])
	if err != nil {
		return nil, err
	}
	directions := make([]string, 0, len(path)+1)
	directions = append(directions, fmt.Sprintf("Start at %s", first.Name))

	for i := 0; i < len(path)-1; i++ {
		next, err := n.graph.Node(path[i+1])
		if err != nil {
			return nil, err
		}

		edge, err := n.graph.EdgeBetween(path[i], path[i+1])
		switch {
		case err == nil:
			street := edge.Name
			if street == "" {
				street = "the street"
			}
			directions = append(directions,
				fmt.Sprintf("Go to %s via %s (%.1f units)", next.Name, street, edge.Weight))
		case errors.Is(err, streetgraph.ErrEdgeNotFound):
			directions = append(directions, fmt.Sprintf("Go to %s", next.Name))
		default:
			return nil, err
		}
	}

	last, err := n.graph.Node(path[len(path)-1])
	if err != nil {
		return nil, err
	}
	directions = append(directions, fmt.Sprintf("Arrive at %s", last.Name))

	return directions, nil
}

// NearestLocation returns the ID of the intersection closest to the given
// planar coordinate, using an R-tree index built lazily on first call.
// The index snapshots the graph at that moment, consistent with the
// build-fully-then-query contract.
func (n *Navigator) NearestLocation(x, y float64) (string, error) {
	n.indexOnce.Do(func() {
		n.index, n.indexErr = streetgraph.NewNodeIndex(n.graph)
	})
	if n.indexErr != nil {
		return "", n.indexErr
	}

	return n.index.NearestNode(x, y)
}
