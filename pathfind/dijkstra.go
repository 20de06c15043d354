// Package pathfind implements the two shortest-path searches over a street
// network: uninformed (Dijkstra) and heuristic-guided (A*).
//
// Dijkstra computes the minimum-cost path from start to goal in a graph
// with non-negative edge weights, processing nodes in order of increasing
// distance via a min-heap frontier and relaxing outgoing edges.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each node is finalized at most once: V pops that survive the
//     stale-entry check.
//   - Each edge relaxation may push one new frontier entry: up to E pushes.
//   - Each heap operation costs O(log N), N ≤ V + E, simplified to O(log V).
//   - Space: O(V + E)
//   - O(V) for the distance and predecessor maps.
//   - O(E) worst case for frontier entries under lazy decrease-key.
//
// Notes on implementation choices:
//
//   - Lazy decrease-key: improving a node pushes a duplicate entry; stale
//     entries are discarded at pop time via the visited set.
//   - Early termination: the search stops the moment the goal is popped
//     (finalized); no further relaxation happens after that.
//   - Equal-priority frontier entries pop in FIFO insertion order, so the
//     chosen path among equal-cost optima is deterministic for a fixed
//     graph build sequence.
//   - Negative weights cannot occur: streetgraph rejects them at insertion.
package pathfind

import (
	"fmt"
	"math"

	"github.com/Powermatix/nawigacja-pag2/streetgraph"
)

// Dijkstra finds the least-cost path from start to goal using edge weights
// alone. The graph is borrowed read-only; all search state (distance map,
// predecessor map, frontier) is allocated per call, so independent
// searches may run concurrently over the same immutable graph.
//
// Returns ErrEmptyEndpoint, ErrNilGraph, or ErrUnknownNode for malformed
// queries, and ErrNoPath when the frontier empties before the goal is
// reached. start == goal returns a single-node path with distance 0
// without running any relaxation.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func Dijkstra(g *streetgraph.Graph, start, goal string, opts ...Option) (Result, error) {
	// 1) Build options and validate the query.
	cfg := buildOptions(opts)
	if err := validateQuery(g, start, goal); err != nil {
		return Result{}, err
	}

	// 2) Trivial query: already at the goal.
	if start == goal {
		return Result{Path: []string{start}, Distance: 0}, nil
	}

	// 3) Allocate fresh per-call search state and run.
	r := newRunner(g, cfg)
	r.init(start, 0)

	return r.run(start, goal)
}

// runner holds the mutable state of a single search execution. Both
// Dijkstra and A* drive the same runner; they differ only in the ordering
// key pushed onto the frontier (g versus g+h).
type runner struct {
	g         *streetgraph.Graph // input graph; read-only during the search
	cfg       Options            // distance cap, heuristic
	heuristic Heuristic          // nil for Dijkstra; estimate to goal for A*
	dist      map[string]float64 // node ID → best known distance from start
	prev      map[string]string  // node ID → predecessor on the best path
	visited   map[string]bool    // node ID → distance finalized
	fr        frontier           // lazy min-heap of candidate expansions
	expanded  int                // finalized pops, reported in Result
}

// newRunner allocates the per-call state maps and frontier.
func newRunner(g *streetgraph.Graph, cfg Options) *runner {
	return &runner{
		g:       g,
		cfg:     cfg,
		dist:    make(map[string]float64, g.NodeCount()),
		prev:    make(map[string]string, g.NodeCount()),
		visited: make(map[string]bool, g.NodeCount()),
	}
}

// init sets every node's tentative distance to +Inf, zeroes the start, and
// seeds the frontier with the start entry carrying the given ordering key
// (0 for Dijkstra, h(start) for A*).
func (r *runner) init(start string, startKey float64) {
	for _, id := range r.g.Nodes() {
		r.dist[id] = math.Inf(1)
	}
	r.dist[start] = 0
	r.fr.push(start, startKey, 0)
}

// run is the core priority-search loop shared by both algorithms:
// repeatedly finalize the cheapest frontier entry and relax its outgoing
// edges, until the goal is finalized or the frontier empties.
func (r *runner) run(start, goal string) (Result, error) {
	for r.fr.Len() > 0 {
		// 1) Pop the smallest-key entry.
		item := r.fr.pop()
		u := item.id

		// 2) Lazy deletion: skip entries for already-finalized nodes.
		if r.visited[u] {
			continue
		}

		// 3) Distance cap: every remaining entry is at least this far,
		//    so the goal (if any) lies beyond the cap. Stop.
		if item.g > r.cfg.MaxDistance {
			break
		}

		// 4) Finalize u; its distance is now provably minimal.
		r.visited[u] = true
		r.expanded++

		// 5) Early termination: the goal is finalized, reconstruct.
		if u == goal {
			path, ok := reconstructPath(r.prev, start, goal)
			if !ok {
				return Result{}, fmt.Errorf("%w: %q to %q", ErrNoPath, start, goal)
			}

			return Result{Path: path, Distance: r.dist[goal], Expanded: r.expanded}, nil
		}

		// 6) Relax all outgoing edges of u.
		if err := r.relax(u, goal); err != nil {
			return Result{}, err
		}
	}

	// 7) Frontier exhausted without reaching the goal: unreachable.
	return Result{}, fmt.Errorf("%w: %q to %q", ErrNoPath, start, goal)
}

// relax attempts to improve the tentative distance of every neighbor of u.
// Improvements update dist and prev and push a fresh frontier entry keyed
// by g (Dijkstra) or g+h (A*).
//
// Assumes dist[u] is finalized before the call.
func (r *runner) relax(u, goal string) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		// Unreachable for a graph that is immutable during the search;
		// surfaces concurrent mutation instead of hiding it.
		return fmt.Errorf("pathfind: neighbors of %q: %w", u, err)
	}

	for _, e := range neighbors {
		// Candidate distance going start → … → u → e.To.
		cand := r.dist[u] + e.Weight
		if cand > r.cfg.MaxDistance {
			continue
		}
		// Strict improvement only: equal-cost rediscoveries push no
		// duplicates and keep the first-found predecessor.
		if cand >= r.dist[e.To] {
			continue
		}

		r.dist[e.To] = cand
		r.prev[e.To] = u

		key := cand
		if r.heuristic != nil {
			key += r.heuristic(e.To)
		}
		r.fr.push(e.To, key, cand)
	}

	return nil
}
