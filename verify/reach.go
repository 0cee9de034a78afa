package verify

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/bmssp/graph"
)

// ErrReachability is returned when a distance vector's finite entries do not
// match the vertices reachable from the source.
var ErrReachability = errors.New("verify: finite distances disagree with reachability")

// Reachability checks that dist is finite exactly on the vertices a BFS from
// source reaches. The returned error lists the first few offending vertices.
func Reachability(g *graph.Graph, source int, dist []float64) error {
	if g == nil {
		return ErrNilGraph
	}
	hops, err := g.Hops(source)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSource, err)
	}
	if len(dist) != len(hops) {
		return fmt.Errorf("%w: got %d, want %d", ErrLengthMismatch, len(dist), len(hops))
	}

	var bad []int
	for v, h := range hops {
		if (h == graph.Unreached) != math.IsInf(dist[v], 1) {
			bad = append(bad, v)
		}
	}
	if len(bad) == 0 {
		return nil
	}
	if len(bad) > 5 {
		return fmt.Errorf("%w: %d vertices, first %v", ErrReachability, len(bad), bad[:5])
	}

	return fmt.Errorf("%w: vertices %v", ErrReachability, bad)
}
