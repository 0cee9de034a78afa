// Package dijkstra is the reference shortest-path oracle of this module: a
// plain binary-heap Dijkstra over graph.Graph with float64 weights.
//
// The bmssp package never calls it. Tests and the benchmark harness use it as
// ground truth and as the baseline the faster algorithm is timed against.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each vertex is extracted at most once (V extracts).
//   - Each edge relaxation may push one heap entry (up to E pushes).
//   - Space: O(V + E), O(E) heap entries in the worst case under lazy decrease-key.
//
// Options:
//
//   - Source(v):              starting vertex id (default 0).
//   - WithReturnPath():       also return the predecessor slice.
//   - WithMaxDistance(x):     do not explore vertices farther than x.
//   - WithInfEdgeThreshold(t): skip edges with weight ≥ t.
//
// Errors (sentinel):
//
//   - ErrNilGraph, ErrEmptyGraph, ErrVertexNotFound.
//   - ErrNegativeWeight, ErrNonFiniteWeight (wrapping the graph.Validate error).
//   - ErrBadMaxDistance, ErrBadInfThreshold (panics from option constructors).
//
// Example usage:
//
//	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(0), dijkstra.WithReturnPath())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(dist[3], dijkstra.PathTo(prev, dist, 3))
//
// Thread safety:
//
//   - Dijkstra allocates its own state per call; concurrent calls on the same
//     fully built graph are safe.
package dijkstra
