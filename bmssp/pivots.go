package bmssp

import (
	"math"
	"sort"
)

// FindPivots runs k rounds of bounded Bellman-Ford-style relaxation from
// every source with dist < bound and returns:
//
//   - pivots: sources whose own relaxation improved at least k edges, in
//     ascending id order, truncated to max(1, |sources|/k);
//   - reachable: the vertices newly improved and first discovered during the
//     rounds, in discovery order.
//
// Estimates are lowered in place. Both results are empty when no source is
// below bound.
func (a *Algorithm) FindPivots(bound float64, sources []int) (pivots, reachable []int, err error) {
	if a.consumed {
		return nil, nil, ErrConsumed
	}
	if math.IsNaN(bound) {
		return nil, nil, ErrInvalidBound
	}
	frontier, err := a.frontier(sources)
	if err != nil {
		return nil, nil, err
	}
	pivots, reachable = a.findPivots(bound, frontier)

	return pivots, reachable, nil
}

// findPivots expects a sorted, duplicate-free frontier.
//
// Complexity: O(k · edges touched); scratch sets are maps so the cost does
// not depend on n.
func (a *Algorithm) findPivots(bound float64, frontier []int) (pivots, reachable []int) {
	a.stats.FindPivotsCalls++

	// 1) Seed round 0 with the sources below bound
	isSource := make(map[int]struct{}, len(frontier))
	visited := make(map[int]struct{}, len(frontier))
	queue := make([]int, 0, len(frontier))
	for _, s := range frontier {
		isSource[s] = struct{}{}
		if a.dist[s] < bound {
			visited[s] = struct{}{}
			queue = append(queue, s)
		}
	}

	var (
		next      []int
		reached   int
		candidate []int
		nd        float64
	)
	// 2) k rounds; each expands only the vertices first discovered in the previous one
	for round := 0; round < a.k && len(queue) > 0; round++ {
		next = make([]int, 0, len(queue))
		for _, u := range queue {
			reached = 0
			for _, e := range a.g.Edges(u) {
				nd = a.dist[u] + e.Weight
				// gated by bound, strict improvement only
				if nd >= bound || nd >= a.dist[e.To] {
					continue
				}
				a.lower(e.To, nd)
				reached++
				if _, seen := visited[e.To]; !seen {
					visited[e.To] = struct{}{}
					next = append(next, e.To)
					reachable = append(reachable, e.To)
				}
			}
			// Sources are visited up front, so each one is expanded exactly once.
			if _, ok := isSource[u]; ok && reached >= a.k {
				candidate = append(candidate, u)
			}
		}
		queue = next
	}

	// 3) Lowest ids first, capped at max(1, |S|/k)
	sort.Ints(candidate)
	if limit := a.pivotCap(len(frontier)); len(candidate) > limit {
		candidate = candidate[:limit]
	}

	return candidate, reachable
}

// pivotCap is the largest pivot set FindPivots may return for a frontier of size s.
func (a *Algorithm) pivotCap(s int) int { return max(1, s/a.k) }
