// Package pathfind: heuristic-guided (A*) shortest-path search.
//
// A* shares all of Dijkstra's bookkeeping — tentative-distance map,
// predecessor map, lazy min-heap frontier, early termination on goal pop —
// but orders the frontier by f = g + h, where g is the accumulated edge
// weight from start and h is a spatial lower bound on the remaining cost
// to the goal. With an admissible, consistent h it returns the same-cost
// path as Dijkstra while typically expanding fewer nodes on geometrically
// embedded graphs.

package pathfind

import (
	"github.com/Powermatix/nawigacja-pag2/streetgraph"
)

// AStar finds the least-cost path from start to goal using edge weights
// plus a heuristic estimate of remaining cost. The default heuristic is
// the straight-line (Euclidean) distance between node coordinates, which
// is admissible whenever edge weights are Euclidean distances or larger.
//
// Optimality holds only while the heuristic never overestimates the true
// remaining cost and is consistent across edges. Supplying a scaled or
// non-Euclidean weight model without adjusting the heuristic (see
// WithHeuristic) can break optimality; that trade-off belongs to the
// caller and is not checked at runtime.
//
// Error conditions and the g-versus-key separation: g is tracked
// independently of the frontier key, so the reported Distance is always
// the true accumulated edge weight, never f. Errors are identical to
// Dijkstra's: ErrEmptyEndpoint, ErrNilGraph, ErrUnknownNode, ErrNoPath.
//
// Complexity: O((V + E) log V) time, O(V + E) space — same bound as
// Dijkstra; fewer expansions expected in practice.
func AStar(g *streetgraph.Graph, start, goal string, opts ...Option) (Result, error) {
	// 1) Build options and validate the query.
	cfg := buildOptions(opts)
	if err := validateQuery(g, start, goal); err != nil {
		return Result{}, err
	}

	// 2) Trivial query: already at the goal.
	if start == goal {
		return Result{Path: []string{start}, Distance: 0}, nil
	}

	// 3) Resolve the heuristic: caller override, else straight-line
	//    distance to the goal. Both endpoints were just validated, so the
	//    lookup inside the closure cannot fail for nodes in the graph.
	h := cfg.Heuristic
	if h == nil {
		h = func(id string) float64 {
			d, _ := g.EuclideanDistance(id, goal)
			return d
		}
	}

	// 4) Run the shared priority-search loop with f = g + h ordering.
	r := newRunner(g, cfg)
	r.heuristic = h
	r.init(start, h(start))

	return r.run(start, goal)
}
