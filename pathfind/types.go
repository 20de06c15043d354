// Package pathfind defines the result type, configuration options, and
// sentinel errors shared by the Dijkstra and A* searches.
package pathfind

import (
	"errors"
	"math"
)

// Sentinel errors returned by the search entry points.
var (
	// ErrNilGraph indicates that a nil *streetgraph.Graph was supplied.
	ErrNilGraph = errors.New("pathfind: graph is nil")

	// ErrEmptyEndpoint indicates that start or goal is the empty string.
	ErrEmptyEndpoint = errors.New("pathfind: start and goal must be non-empty")

	// ErrUnknownNode indicates that start or goal does not exist in the
	// graph: a malformed query, as opposed to an unreachable goal.
	ErrUnknownNode = errors.New("pathfind: node not found in graph")

	// ErrNoPath indicates the frontier emptied before the goal was reached.
	// This is the expected representation of "unreachable", not a
	// programming error; callers should branch on it with errors.Is.
	ErrNoPath = errors.New("pathfind: no path found")

	// ErrBadMaxDistance indicates WithMaxDistance was given a negative or
	// NaN cap.
	ErrBadMaxDistance = errors.New("pathfind: MaxDistance must be non-negative")
)

// Result is the outcome of a successful search.
//
// Path lists node IDs from start to goal inclusive; Distance is the sum of
// edge weights along it. Each call produces a fresh Result owned by the
// caller, independent of the graph's lifetime.
type Result struct {
	// Path is the node sequence from start to goal inclusive.
	Path []string

	// Distance is the total accumulated edge weight along Path.
	Distance float64

	// Expanded counts the nodes finalized (popped and not discarded as
	// stale) during the search. Useful for comparing how much of the
	// graph each algorithm had to explore.
	Expanded int
}

// Heuristic estimates the remaining cost from a node to the goal.
// For A* optimality it must be admissible (never overestimate) and
// consistent (obey the triangle inequality across edges).
type Heuristic func(id string) float64

// Options configures a search. Zero value is not usable directly; use
// defaultOptions plus functional options.
type Options struct {
	// MaxDistance caps exploration: nodes whose tentative distance would
	// exceed it are not expanded. Default +Inf (no cap).
	MaxDistance float64

	// Heuristic overrides the default Euclidean lower bound in AStar.
	// Ignored by Dijkstra. Nil selects the default.
	Heuristic Heuristic
}

// Option is a functional option for configuring a search.
type Option func(*Options)

// WithMaxDistance caps exploration at the given total distance. Nodes
// beyond the cap are never expanded; if the goal lies beyond it the search
// reports ErrNoPath. Panics on a negative or NaN cap.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithHeuristic substitutes h for the default straight-line estimate in
// AStar. Supplying a non-admissible h (for example when edge weights are
// travel times rather than distances) can make A* return a suboptimal
// path; keeping h admissible is the caller's responsibility, not a
// runtime-checked invariant. Dijkstra ignores this option.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) { o.Heuristic = h }
}

// defaultOptions returns the Options every search starts from:
// no distance cap, default heuristic.
func defaultOptions() Options {
	return Options{MaxDistance: math.Inf(1)}
}
