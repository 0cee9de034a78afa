package bmssp

import (
	"container/heap"
	"fmt"
	"math"
)

// BaseCase is Dijkstra restricted to the open ball of radius bound around
// source: no vertex is expanded, and no estimate is set, at or beyond bound.
// It does nothing when dist[source] ≥ bound.
//
// After return, every vertex whose true distance through source is below
// bound carries that distance, provided dist[source] was exact on entry.
func (a *Algorithm) BaseCase(source int, bound float64) error {
	if a.consumed {
		return ErrConsumed
	}
	if !a.g.HasVertex(source) {
		return fmt.Errorf("%w: source=%d n=%d", ErrInvalidSource, source, len(a.dist))
	}
	if math.IsNaN(bound) {
		return ErrInvalidBound
	}
	a.baseCase(source, bound)

	return nil
}

func (a *Algorithm) baseCase(source int, bound float64) {
	a.stats.BaseCaseCalls++
	if !(a.dist[source] < bound) {
		return
	}
	a.log.Trace().Int("source", source).Float64("bound", bound).Msg("base case")

	// source is the only seed; the heap has a single entry so needs no Init
	pq := distPQ{&distItem{id: source, dist: a.dist[source]}}
	processed := make(map[int]struct{})

	var (
		item *distItem
		nd   float64
	)
	for pq.Len() > 0 {
		item = heap.Pop(&pq).(*distItem)
		// stale copy, or the ball boundary reached
		if _, done := processed[item.id]; done || item.dist >= bound {
			continue
		}
		processed[item.id] = struct{}{}

		for _, e := range a.g.Edges(item.id) {
			nd = a.dist[item.id] + e.Weight
			// never set an estimate at or beyond bound
			if nd >= bound || nd >= a.dist[e.To] {
				continue
			}
			a.lower(e.To, nd)
			heap.Push(&pq, &distItem{id: e.To, dist: nd})
		}
	}
}

// distItem is a heap entry; entries outdated by a later decrease are
// skipped through the processed set (lazy decrease-key).
type distItem struct {
	id   int
	dist float64
}

// distPQ is a min-heap of *distItem ordered by dist, ties by id.
type distPQ []*distItem

func (pq distPQ) Len() int { return len(pq) }

func (pq distPQ) Less(i, j int) bool {
	if pq[i].dist == pq[j].dist {
		return pq[i].id < pq[j].id
	}
	return pq[i].dist < pq[j].dist
}

func (pq distPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *distPQ) Push(x interface{}) { *pq = append(*pq, x.(*distItem)) }

func (pq *distPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil // drop the reference for GC
	*pq = old[:n-1]

	return item
}
