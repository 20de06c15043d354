// Package streetgraph: Graph method implementations.
//
// This file provides the mutation and query operations on Graph. Adjacency
// is stored as a map from node ID to an insertion-ordered slice of outgoing
// *Edge, giving O(1) average neighbor lookup and deterministic iteration.

package streetgraph

import (
	"fmt"
	"math"
	"sort"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// AddNode inserts a new node with the given ID, planar coordinate, and
// display name. An empty name defaults to the ID.
//
// Returns ErrEmptyNodeID if id is empty, ErrDuplicateNode if a node with
// this ID already exists. Rejecting duplicates (rather than overwriting)
// is the documented policy: a silent overwrite could move a location and
// invalidate every edge weight referencing it.
// Complexity: O(1) amortized.
func (g *Graph) AddNode(id string, x, y float64, name string) error {
	// 1) Validate input: empty IDs are not allowed.
	if id == "" {
		return ErrEmptyNodeID
	}
	if name == "" {
		name = id
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// 2) Reject re-insertion of an existing identity.
	if _, exists := g.nodes[id]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateNode, id)
	}

	// 3) Register the node and bootstrap its (empty) adjacency slice so
	//    Neighbors never needs to distinguish "absent" from "isolated".
	g.nodes[id] = &Node{ID: id, Coord: orb.Point{x, y}, Name: name}
	g.adjacency[id] = nil

	return nil
}

// AddEdge inserts a street segment from→to with the given weight and name.
// By default the segment is bidirectional: two mirrored directed edges with
// identical weight and name are stored. Pass WithOneWay() to insert only
// the single directed edge.
//
// Both endpoints must already exist; AddEdge never creates nodes implicitly,
// because an implicitly created node would lack a coordinate and silently
// break the A* heuristic.
//
// Returns ErrUnknownNode if either endpoint is absent, ErrInvalidWeight if
// weight is negative or NaN.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight float64, name string, opts ...EdgeOption) error {
	// 1) Validate endpoints are non-empty.
	if from == "" || to == "" {
		return ErrEmptyNodeID
	}
	// 2) Weight constraint: non-negative, well-formed. Required for the
	//    correctness of priority-ordered relaxation downstream.
	if weight < 0 || math.IsNaN(weight) {
		return fmt.Errorf("%w: got %v", ErrInvalidWeight, weight)
	}
	// 3) Apply per-call options.
	var cfg edgeConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// 4) Both endpoints must reference nodes already present.
	if _, ok := g.nodes[from]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownNode, from)
	}
	if _, ok := g.nodes[to]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownNode, to)
	}

	// 5) Append the forward edge, and the mirror unless one-way.
	g.adjacency[from] = append(g.adjacency[from], &Edge{From: from, To: to, Weight: weight, Name: name})
	if !cfg.oneWay && from != to {
		g.adjacency[to] = append(g.adjacency[to], &Edge{From: to, To: from, Weight: weight, Name: name})
	}

	return nil
}

// HasNode reports whether a node with the given ID exists.
// Complexity: O(1).
func (g *Graph) HasNode(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.nodes[id]

	return ok
}

// Node returns the node with the given ID.
// Returns ErrUnknownNode if absent.
// Complexity: O(1).
func (g *Graph) Node(id string) (*Node, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.nodes[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNode, id)
	}

	return n, nil
}

// Neighbors returns the outgoing edges of node id in insertion order.
// An isolated node yields an empty slice, not an error.
// The returned slice is shared with the graph; treat it as read-only.
//
// Returns ErrUnknownNode if id is absent.
// Complexity: O(1).
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.nodes[id]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNode, id)
	}

	return g.adjacency[id], nil
}

// EdgeBetween returns the first outgoing edge from→to, in insertion order.
// Used by the directions formatter to recover street names along a path.
//
// Returns ErrUnknownNode if from is absent, ErrEdgeNotFound if no such
// edge exists.
// Complexity: O(deg(from)).
func (g *Graph) EdgeBetween(from, to string) (*Edge, error) {
	edges, err := g.Neighbors(from)
	if err != nil {
		return nil, err
	}
	for _, e := range edges {
		if e.To == to {
			return e, nil
		}
	}

	return nil, fmt.Errorf("%w: %q→%q", ErrEdgeNotFound, from, to)
}

// EuclideanDistance returns the planar straight-line distance between two
// nodes' coordinates. This is the spatial lower bound used as the A*
// heuristic: it is admissible whenever edge weights are Euclidean
// distances or larger.
//
// Returns ErrUnknownNode if either node is absent.
// Complexity: O(1).
func (g *Graph) EuclideanDistance(a, b string) (float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	na, ok := g.nodes[a]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownNode, a)
	}
	nb, ok := g.nodes[b]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownNode, b)
	}

	return planar.Distance(na.Coord, nb.Coord), nil
}

// Nodes returns all node IDs in lexicographic ascending order.
// Stable enumeration surface for reproducible outputs.
// Complexity: O(V log V).
func (g *Graph) Nodes() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// NodeCount returns the number of nodes. O(1).
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// EdgeCount returns the total number of stored directed edges. A default
// (bidirectional) AddEdge contributes two. O(V).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var n int
	for _, edges := range g.adjacency {
		n += len(edges)
	}

	return n
}
