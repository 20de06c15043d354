// Package streetgraph: R-tree spatial index over node coordinates.
//
// NodeIndex answers "which intersection is closest to this point" queries,
// the usual entry step when a caller has a raw coordinate rather than a
// node ID. The index is a snapshot: nodes added to the graph after
// construction are not visible to it.

package streetgraph

import (
	"github.com/dhconnelly/rtreego"
)

// pointTolerance is the half-extent of the degenerate rectangle each node
// occupies in the R-tree (rtreego stores rectangles, not points).
const pointTolerance = 1e-9

// nodeEntry wraps a node for R-tree storage.
type nodeEntry struct {
	id   string
	rect rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *nodeEntry) Bounds() rtreego.Rect {
	return e.rect
}

// NodeIndex is an immutable 2-D R-tree over a graph's node coordinates.
type NodeIndex struct {
	tree *rtreego.Rtree
}

// NewNodeIndex builds a spatial index over every node currently in g.
//
// Returns ErrEmptyIndex if the graph has no nodes.
// Complexity: O(V log V) construction, O(log V) per query.
func NewNodeIndex(g *Graph) (*NodeIndex, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if len(g.nodes) == 0 {
		return nil, ErrEmptyIndex
	}

	tree := rtreego.NewTree(2, 25, 50) // 2-D, 25..50 entries per tree node
	for id, n := range g.nodes {
		p := rtreego.Point{n.Coord.X(), n.Coord.Y()}
		tree.Insert(&nodeEntry{id: id, rect: p.ToRect(pointTolerance)})
	}

	return &NodeIndex{tree: tree}, nil
}

// NearestNode returns the ID of the node closest to the given coordinate.
// Complexity: O(log V) expected.
func (idx *NodeIndex) NearestNode(x, y float64) (string, error) {
	nearest := idx.tree.NearestNeighbor(rtreego.Point{x, y})
	if nearest == nil {
		return "", ErrEmptyIndex
	}

	return nearest.(*nodeEntry).id, nil
}
