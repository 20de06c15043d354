// Package streetgraph defines the central Graph, Node, and Edge types for a
// spatially embedded street network, and provides thread-safe primitives for
// building and querying it.
//
// All mutating APIs use a single sync.RWMutex internally, so you can safely
// build a graph across goroutines; searches only ever take read access.
//
// This file declares Node, Edge, EdgeOption, sentinel errors, and the
// NewGraph constructor.
//
// Errors:
//
//	ErrEmptyNodeID  - node ID is the empty string.
//	ErrDuplicateNode - a node with the same ID already exists.
//	ErrUnknownNode  - referenced node does not exist.
//	ErrInvalidWeight - edge weight is negative or NaN.
//	ErrEdgeNotFound - no edge connects the requested pair.
//	ErrEmptyIndex   - spatial index built over a graph with no nodes.
package streetgraph

import (
	"errors"
	"sync"

	"github.com/paulmach/orb"
)

// Sentinel errors for streetgraph operations.
var (
	// ErrEmptyNodeID indicates that a provided node ID is empty.
	ErrEmptyNodeID = errors.New("streetgraph: node ID is empty")

	// ErrDuplicateNode indicates an attempt to re-insert an existing node ID.
	// Re-insertion is rejected rather than overwritten to avoid silent loss
	// of coordinates or display names.
	ErrDuplicateNode = errors.New("streetgraph: node already exists")

	// ErrUnknownNode indicates an operation referenced a non-existent node.
	ErrUnknownNode = errors.New("streetgraph: node not found")

	// ErrInvalidWeight indicates a negative or NaN edge weight.
	ErrInvalidWeight = errors.New("streetgraph: edge weight must be non-negative")

	// ErrEdgeNotFound indicates no edge connects the requested endpoints.
	ErrEdgeNotFound = errors.New("streetgraph: edge not found")

	// ErrEmptyIndex indicates a spatial lookup over a graph with no nodes.
	ErrEmptyIndex = errors.New("streetgraph: spatial index is empty")
)

// Node represents an intersection or named location in the street network.
//
// ID uniquely identifies this Node within its Graph and is immutable once
// inserted. Coord places the node on the plane and feeds the A* heuristic.
type Node struct {
	// ID is the unique identifier for this Node.
	ID string

	// Coord is the node's position on the plane (X, Y).
	Coord orb.Point

	// Name is the human-readable display name. Defaults to ID when empty.
	Name string
}

// Edge represents a street segment from one intersection to another.
//
// Edges are directed; the default bidirectional insertion in AddEdge is a
// convenience that stores two mirrored directed edges. Edges hold lookup
// keys (node IDs), not owning references; Nodes belong to the Graph.
type Edge struct {
	// From is the source node ID.
	From string

	// To is the destination node ID.
	To string

	// Weight is the travel cost of the segment. Always ≥ 0.
	Weight float64

	// Name is the street's display name; may be empty.
	Name string
}

// EdgeOption configures properties of an AddEdge call.
type EdgeOption func(*edgeConfig)

// edgeConfig collects per-call AddEdge settings.
type edgeConfig struct {
	oneWay bool
}

// WithOneWay inserts only the single directed edge from→to instead of the
// default mirrored pair.
func WithOneWay() EdgeOption {
	return func(c *edgeConfig) { c.oneWay = true }
}

// Graph is the in-memory street network.
//
// It owns all Nodes and Edges and maintains an adjacency structure mapping
// each node ID to its outgoing edges in insertion order. The insertion-order
// slices make Neighbors deterministic for a fixed build sequence, which in
// turn makes search tie-breaking reproducible.
//
// The Graph must be treated as immutable while a search runs over it;
// build it fully first, then query. Concurrent reads are safe.
type Graph struct {
	mu sync.RWMutex // guards nodes and adjacency

	nodes     map[string]*Node   // node ID → Node
	adjacency map[string][]*Edge // node ID → outgoing edges, insertion order
}

// NewGraph creates an empty street network.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		nodes:     make(map[string]*Node),
		adjacency: make(map[string][]*Edge),
	}
}
