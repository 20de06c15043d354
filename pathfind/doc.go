// Package pathfind provides the two shortest-path searches of the street
// navigation core: uninformed priority search (Dijkstra) and
// heuristic-guided priority search (A*), both over streetgraph.Graph.
//
// Overview:
//
//   - Dijkstra orders its frontier by accumulated edge weight g and is
//     optimal for any graph with non-negative weights.
//   - AStar orders its frontier by f = g + h, where h is a spatial lower
//     bound on the remaining cost (straight-line distance by default). It
//     returns paths of the same cost while usually expanding fewer nodes.
//   - Both searches share one runner: a tentative-distance map, a
//     predecessor map for path reconstruction, and a lazy decrease-key
//     min-heap frontier with FIFO tie-breaking among equal priorities.
//
// Determinism:
//
//   - Frontier entries with equal keys pop in insertion (FIFO) order, and
//     streetgraph adjacency iterates in edge-insertion order, so repeated
//     queries against an unmodified graph return byte-identical results.
//     Tests relying on one specific path among several equal-cost optima
//     are therefore stable, though such reliance is discouraged.
//
// Concurrency:
//
//   - A search borrows the graph read-only and allocates all of its own
//     state, so any number of searches may run concurrently over the same
//     graph. Mutating the graph while a search is in flight is undefined
//     behavior; build fully, then query.
//
// Error handling (sentinel errors, match with errors.Is):
//
//   - ErrEmptyEndpoint: start or goal is "".
//   - ErrNilGraph:      nil graph supplied.
//   - ErrUnknownNode:   start or goal absent — a malformed query.
//   - ErrNoPath:        goal unreachable — an expected outcome.
//   - ErrBadMaxDistance: (via panic) negative or NaN cap given to
//     WithMaxDistance.
//
// Result reports the path (start..goal inclusive), its total weight, and
// the number of nodes the search finalized.
package pathfind
