// Package pathfind: predecessor-chain path reconstruction.

package pathfind

// reconstructPath walks backward from goal to start following the
// predecessor map recorded during relaxation, then reverses the chain.
// Reports ok=false if the chain does not connect goal back to start,
// i.e. the goal was never reached.
// Complexity: O(path length).
func reconstructPath(prev map[string]string, start, goal string) (path []string, ok bool) {
	// Walk goal → start via predecessors.
	path = []string{goal}
	cur := goal
	for cur != start {
		p, found := prev[cur]
		if !found {
			return nil, false // broken chain: start unreachable
		}
		path = append(path, p)
		cur = p
	}

	// Reverse in place to obtain start → goal order.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, true
}
