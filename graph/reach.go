package graph

import "fmt"

// Unreached marks vertices the BFS from the source never dequeued.
const Unreached = -1

// Hops returns the unweighted BFS depth of every vertex from source,
// Unreached for vertices with no path. Weights are ignored, so the finite
// entries are exactly the vertices with a finite shortest distance.
//
// Complexity: O(n + m).
func (g *Graph) Hops(source int) ([]int, error) {
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: source=%d n=%d", ErrVertexOutOfRange, source, g.n)
	}

	depth := make([]int, g.n)
	for v := range depth {
		depth[v] = Unreached
	}
	queue := make([]int, 0, g.n)
	depth[source] = 0
	queue = append(queue, source)

	var u int
	for len(queue) > 0 {
		u, queue = queue[0], queue[1:]
		for _, e := range g.adj[u] {
			if depth[e.To] != Unreached {
				continue
			}
			depth[e.To] = depth[u] + 1
			queue = append(queue, e.To)
		}
	}

	return depth, nil
}
