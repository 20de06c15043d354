// Package nawigacja is a street-network routing library: build a weighted,
// spatially embedded graph of locations and streets, then ask for the
// shortest route between any two of them as turn-by-turn directions.
//
// Everything is organized under four subpackages:
//
//	streetgraph/ — the Graph, Node and Edge types: thread-safe construction,
//	               adjacency lookups, planar distances, R-tree nearest-node index
//	pathfind/    — shortest-path searches: Dijkstra (uninformed) and A*
//	               (heuristic-guided), sharing one lazy-heap search core
//	gridnet/     — lattice street-network generator for tests and demos
//	navigate/    — the Navigator facade: route queries + directions formatting
//
// Quick ASCII example:
//
//	    Store(1,2)
//	    /        \
//	Home(0,0)   Park(3,3)
//	    \________/
//
//	Home→Park goes via Store (2.0 + 2.5 = 4.5) rather than the direct
//	5.0-unit street; both algorithms agree on the cost.
//
// Graphs are built programmatically per process run; there is no wire
// format or persistence. Build the graph fully, then query it — searches
// borrow the graph read-only and may run concurrently.
//
//	go get github.com/Powermatix/nawigacja-pag2
package nawigacja
