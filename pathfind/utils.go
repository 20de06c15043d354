// Package pathfind: validation shared by the search entry points.

package pathfind

import (
	"fmt"

	"github.com/Powermatix/nawigacja-pag2/streetgraph"
)

// validateQuery performs the common admission checks, in order:
//
//  1. start and goal must be non-empty (ErrEmptyEndpoint).
//  2. g must be non-nil (ErrNilGraph).
//  3. start and goal must exist in g (ErrUnknownNode — a malformed query,
//     deliberately distinct from ErrNoPath, which means "unreachable").
func validateQuery(g *streetgraph.Graph, start, goal string) error {
	if start == "" || goal == "" {
		return ErrEmptyEndpoint
	}
	if g == nil {
		return ErrNilGraph
	}
	if !g.HasNode(start) {
		return fmt.Errorf("%w: start %q", ErrUnknownNode, start)
	}
	if !g.HasNode(goal) {
		return fmt.Errorf("%w: goal %q", ErrUnknownNode, goal)
	}

	return nil
}

// buildOptions folds functional options over the defaults.
func buildOptions(opts []Option) Options {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
