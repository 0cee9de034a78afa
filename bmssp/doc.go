// Package bmssp implements the bounded multi-source shortest-path (BMSSP)
// algorithm for single-source shortest paths on directed graphs with
// non-negative real weights, the recursive divide-and-conquer scheme that
// targets O(m·log^(2/3) n) time against Dijkstra's O(m + n log n).
//
// Overview:
//
//   - New(g) validates the graph and derives, once, the parameters
//     k = ceil(log^(1/3) n), t = ceil(log^(2/3) n) and the recursion budget
//     l = ceil(ln n / t) (natural log; every value clamped to ≥ 1).
//   - SSSP(source) seeds {source} and runs BMSSP(l, +Inf, {source}).
//   - BMSSP(level, bound, S):
//     1. empty S → return;
//     2. level == 0 or |S| == 1 → BaseCase on every source (the leaf);
//     3. FindPivots(bound, S) → (P, W); empty P → return;
//     4. BMSSP(level-1, bound/2, P);
//     5. BMSSP(level-1, bound, {v ∈ W \ P : dist[v] < bound}).
//   - FindPivots relaxes k BFS-style rounds below bound and keeps the
//     sources that improved at least k edges, at most max(1, |S|/k) of them,
//     lowest ids first.
//   - BaseCase is Dijkstra confined to the ball of radius bound.
//   - PartialSortDS is the block-ordered container used at the leaf to hand
//     sources to BaseCase closest-first.
//
// State and determinism:
//
//	The distance array is a single buffer owned by the Algorithm and
//	mutated in place by every procedure; estimates only ever decrease.
//	Frontiers are sorted id slices, never hash sets, so a run is fully
//	determined by the graph and the source. Recursion depth is bounded by l.
//
// Errors (sentinel):
//
//   - ErrNilGraph, ErrEmptyGraph, ErrInvalidGraph from New.
//   - ErrInvalidSource, ErrInvalidBound, ErrInvalidLevel, ErrInvalidDistance
//     from the individual procedures.
//   - ErrConsumed after SSSP returned.
//   - ErrOptionViolation for bad options.
//
// Thread safety:
//
//	An Algorithm is single-threaded and must not be shared between
//	goroutines. Independent instances over the same read-only graph may run
//	concurrently.
package bmssp
