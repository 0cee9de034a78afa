package dijkstra

import (
	"container/heap"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/bmssp/graph"
)

// Dijkstra computes shortest distances from Options.Source to every vertex of g.
//
// Returns:
//
//   - dist: dist[v] is the minimum distance from Source, +Inf if unreachable
//     (or beyond MaxDistance).
//   - prev: predecessor slice if ReturnPath is set, nil otherwise.
//     prev[v] == NoPredecessor for the source and unreachable vertices.
//   - err:  sentinel error if inputs are invalid.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. g must have at least one vertex (ErrEmptyGraph).
//  3. Source must be in [0, n) (ErrVertexNotFound).
//  4. Every weight must be finite (ErrNonFiniteWeight) and non-negative (ErrNegativeWeight).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *graph.Graph, opts ...Option) ([]float64, []int, error) {
	// 1) Build options
	cfg := DefaultOptions(0)
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate graph and source
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if g.VertexCount() == 0 {
		return nil, nil, ErrEmptyGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, nil, fmt.Errorf("%w: source=%d", ErrVertexNotFound, cfg.Source)
	}
	// 3) Pre-scan every edge; fail fast on negative or non-finite weights
	if err := g.Validate(); err != nil {
		if errors.Is(err, graph.ErrNegativeWeight) {
			return nil, nil, fmt.Errorf("%w: %w", ErrNegativeWeight, err)
		}
		return nil, nil, fmt.Errorf("%w: %w", ErrNonFiniteWeight, err)
	}

	// 4) Allocate state; prev only when paths are requested
	V := g.VertexCount()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make([]float64, V),
		visited: make([]bool, V),
		pq:      make(nodePQ, 0, V),
	}
	if cfg.ReturnPath {
		r.prev = make([]int, V)
	}

	// 5) Seed the source and run the main loop
	r.init()
	r.process()

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *graph.Graph // read-only input
	options Options
	dist    []float64 // current best distance from Source
	prev    []int     // predecessor on the shortest path, nil unless ReturnPath
	visited []bool    // distance finalized
	pq      nodePQ    // lazy min-heap
}

// init sets dist[v] = +Inf, prev[v] = NoPredecessor and pushes Source at distance 0.
func (r *runner) init() {
	inf := math.Inf(1)
	for v := range r.dist {
		r.dist[v] = inf
		if r.prev != nil {
			r.prev[v] = NoPredecessor
		}
	}
	r.dist[r.options.Source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process repeatedly extracts the closest unfinalized vertex and relaxes its edges,
// stopping when the heap is empty or the minimum exceeds MaxDistance.
func (r *runner) process() {
	var item *nodeItem
	for r.pq.Len() > 0 {
		item = heap.Pop(&r.pq).(*nodeItem)

		// stale entry: a shorter copy was already finalized
		if r.visited[item.id] {
			continue
		}
		// heap minimum is past the radius; nothing closer remains
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[item.id] = true
		r.relax(item.id)
	}
}

// relax tries to improve every neighbour of u through u.
// Assumes dist[u] is final.
func (r *runner) relax(u int) {
	var newDist float64
	for _, e := range r.g.Edges(u) {
		// impassable wall
		if e.Weight >= r.options.InfEdgeThreshold {
			continue
		}
		newDist = r.dist[u] + e.Weight
		if newDist > r.options.MaxDistance {
			continue
		}
		// strict: equal distances would only push duplicates
		if newDist >= r.dist[e.To] {
			continue
		}
		r.dist[e.To] = newDist
		if r.prev != nil {
			r.prev[e.To] = u
		}
		heap.Push(&r.pq, &nodeItem{id: e.To, dist: newDist})
	}
}

// nodeItem represents a vertex and its tentative distance from the source.
type nodeItem struct {
	id   int
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist, ties by id.
// Outdated entries stay in the heap and are skipped when popped (lazy decrease-key).
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist == pq[j].dist {
		return pq[i].id < pq[j].id
	}
	return pq[i].dist < pq[j].dist
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil // drop the reference for GC
	*pq = old[:n-1]

	return item
}

// PathTo rebuilds the vertex sequence Source→…→v from a predecessor slice.
// It returns nil when v is unreachable or out of range.
func PathTo(prev []int, dist []float64, v int) []int {
	if v < 0 || v >= len(prev) || v >= len(dist) || math.IsInf(dist[v], 1) {
		return nil
	}
	var rev []int
	for cur := v; cur != NoPredecessor; cur = prev[cur] {
		rev = append(rev, cur)
		if len(rev) > len(prev) {
			return nil // malformed predecessor cycle
		}
	}
	path := make([]int, len(rev))
	for i := range rev {
		path[i] = rev[len(rev)-1-i]
	}

	return path
}
