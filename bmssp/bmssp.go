package bmssp

import (
	"fmt"
	"math"
	"sort"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/bmssp/graph"
)

// Algorithm is one SSSP computation over a fixed graph. It owns the
// distance array exclusively; k, t and the level budget are derived once
// from n by New. An instance is consumed by SSSP and cannot be reused.
type Algorithm struct {
	g      *graph.Graph
	dist   []float64
	k      int // FindPivots rounds, ceil(log^(1/3) n)
	t      int // ceil(log^(2/3) n)
	levels int // top-level recursion budget l

	opts Options
	log  zerolog.Logger

	stats    Stats
	topLevel int // entry level of the running BMSSP tree
	consumed bool
}

// New validates g and returns an algorithm instance with every distance
// estimate at +Inf.
//
// Errors: ErrNilGraph, ErrEmptyGraph, ErrInvalidGraph (wrapping the
// graph.Validate sentinel) and ErrOptionViolation.
func New(g *graph.Graph, opts ...Option) (*Algorithm, error) {
	// 1) Apply options; an invalid one aborts construction
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// 2) Validate the graph
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.VertexCount()
	if n == 0 {
		return nil, ErrEmptyGraph
	}
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidGraph, err)
	}

	// 3) Derive k, t, l once; WithLevels may override l
	k, t, l := deriveParams(n)
	if o.Levels > 0 {
		l = o.Levels
	}
	// 4) Every estimate starts at +Inf
	dist := make([]float64, n)
	inf := math.Inf(1)
	for v := range dist {
		dist[v] = inf
	}

	return &Algorithm{
		g:      g,
		dist:   dist,
		k:      k,
		t:      t,
		levels: l,
		opts:   o,
		log:    o.Logger.With().Str("component", "bmssp").Logger(),
	}, nil
}

// deriveParams computes k = ceil(log^(1/3) n), t = ceil(log^(2/3) n) and
// l = ceil(ln n / t), natural log clamped to ≥ 1 for k and t, all clamped to ≥ 1.
func deriveParams(n int) (k, t, l int) {
	lnN := math.Log(float64(n))
	logN := math.Max(lnN, 1)
	k = max(1, int(math.Ceil(math.Pow(logN, 1.0/3.0))))
	t = max(1, int(math.Ceil(math.Pow(logN, 2.0/3.0))))
	l = max(1, int(math.Ceil(lnN/float64(t))))

	return k, t, l
}

// Params returns the derived tuning parameters (k, t).
func (a *Algorithm) Params() (k, t int) { return a.k, a.t }

// Levels returns the top-level recursion budget l used by SSSP.
func (a *Algorithm) Levels() int { return a.levels }

func (a *Algorithm) String() string {
	return fmt.Sprintf("bmssp(n=%d, m=%d, k=%d, t=%d, l=%d)", len(a.dist), a.g.EdgeCount(), a.k, a.t, a.levels)
}

// Stats returns the work counters accumulated so far.
func (a *Algorithm) Stats() Stats { return a.stats }

// Dist returns the current estimate for v, or NaN if v is out of range.
func (a *Algorithm) Dist(v int) float64 {
	if !a.g.HasVertex(v) {
		return math.NaN()
	}

	return a.dist[v]
}

// Distances returns a copy of the distance array.
func (a *Algorithm) Distances() []float64 {
	out := make([]float64, len(a.dist))
	copy(out, a.dist)

	return out
}

// SetDist overwrites the estimate of v. It exists so that FindPivots and
// BaseCase can be driven from an externally prepared state.
func (a *Algorithm) SetDist(v int, d float64) error {
	if a.consumed {
		return ErrConsumed
	}
	if !a.g.HasVertex(v) {
		return fmt.Errorf("%w: vertex=%d n=%d", ErrInvalidSource, v, len(a.dist))
	}
	if math.IsNaN(d) || d < 0 {
		return fmt.Errorf("%w: vertex=%d d=%g", ErrInvalidDistance, v, d)
	}
	a.dist[v] = d

	return nil
}

// SSSP computes shortest distances from source to every vertex and returns
// the distance array; unreachable vertices stay +Inf. The instance is
// consumed: the returned slice is the caller's, and later mutating calls
// fail with ErrConsumed.
func (a *Algorithm) SSSP(source int) ([]float64, error) {
	if a.consumed {
		return nil, ErrConsumed
	}
	if !a.g.HasVertex(source) {
		return nil, fmt.Errorf("%w: source=%d n=%d", ErrInvalidSource, source, len(a.dist))
	}

	a.dist[source] = 0
	a.log.Debug().
		Int("n", len(a.dist)).
		Int("m", a.g.EdgeCount()).
		Int("k", a.k).
		Int("t", a.t).
		Int("levels", a.levels).
		Int("source", source).
		Msg("sssp start")

	a.topLevel = a.levels
	a.bmssp(a.levels, math.Inf(1), []int{source})
	a.consumed = true

	a.log.Debug().
		Int("relaxations", a.stats.Relaxations).
		Int("bmssp_calls", a.stats.BMSSPCalls).
		Int("base_cases", a.stats.BaseCaseCalls).
		Int("max_depth", a.stats.MaxDepth).
		Msg("sssp done")

	return a.dist, nil
}

// BMSSP runs the bounded multi-source procedure on the current distance
// state. Every source is expected to satisfy dist[v] < bound; sources are
// treated as a set and processed in id order.
func (a *Algorithm) BMSSP(level int, bound float64, sources []int) error {
	if a.consumed {
		return ErrConsumed
	}
	if level < 0 {
		return fmt.Errorf("%w: level=%d", ErrInvalidLevel, level)
	}
	if math.IsNaN(bound) {
		return ErrInvalidBound
	}
	frontier, err := a.frontier(sources)
	if err != nil {
		return err
	}
	a.topLevel = level
	a.bmssp(level, bound, frontier)

	return nil
}

// bmssp is the recursive core. frontier is sorted, duplicate-free and owned
// by this call; callees only ever receive freshly built frontiers.
func (a *Algorithm) bmssp(level int, bound float64, frontier []int) {
	if len(frontier) == 0 {
		return
	}
	a.stats.BMSSPCalls++
	if d := a.topLevel - level; d > a.stats.MaxDepth {
		a.stats.MaxDepth = d
	}
	a.opts.OnEnter(level, bound, len(frontier))
	a.log.Debug().
		Int("level", level).
		Float64("bound", bound).
		Int("frontier", len(frontier)).
		Msg("bmssp")

	// 1) Leaf: bounded Dijkstra from every source
	if level == 0 || len(frontier) == 1 {
		a.leaf(bound, frontier)
		return
	}

	// 2) Shrink the frontier to pivots with k relaxation rounds
	pivots, reachable := a.findPivots(bound, frontier)
	a.log.Debug().
		Int("level", level).
		Int("pivots", len(pivots)).
		Int("reachable", len(reachable)).
		Msg("pivots selected")
	if len(pivots) == 0 {
		return
	}

	// 3) Pivot subtree first, with the bound halved
	a.bmssp(level-1, bound/2, pivots)

	// 4) Non-pivot vertices still below bound form the second frontier
	isPivot := make(map[int]struct{}, len(pivots))
	for _, p := range pivots {
		isPivot[p] = struct{}{}
	}
	remaining := make([]int, 0, len(reachable))
	for _, v := range reachable {
		if _, ok := isPivot[v]; ok {
			continue
		}
		if a.dist[v] < bound {
			remaining = append(remaining, v)
		}
	}
	sort.Ints(remaining)

	// 5) Remaining subtree with the original bound
	a.bmssp(level-1, bound, remaining)
}

// leaf runs BaseCase once per frontier vertex. Vertices are drained from a
// PartialSortDS in ascending order of their estimate on entry (ties by id),
// so closer sources settle their balls first.
func (a *Algorithm) leaf(bound float64, frontier []int) {
	if len(frontier) == 1 {
		a.baseCase(frontier[0], bound)
		return
	}

	ds := NewPartialSortDS(len(frontier))
	for _, v := range frontier {
		ds.Insert(v, a.dist[v])
	}
	for ds.Len() > 0 {
		keys, _, _ := ds.Pull(ds.BlockSize())
		for _, v := range keys {
			a.baseCase(v, bound)
		}
	}
}

// frontier validates ids and returns a sorted, duplicate-free copy.
func (a *Algorithm) frontier(sources []int) ([]int, error) {
	out := make([]int, 0, len(sources))
	for _, v := range sources {
		if !a.g.HasVertex(v) {
			return nil, fmt.Errorf("%w: vertex=%d n=%d", ErrInvalidSource, v, len(a.dist))
		}
		out = append(out, v)
	}
	sort.Ints(out)

	w := 0
	for i, v := range out {
		if i > 0 && v == out[w-1] {
			continue
		}
		out[w] = v
		w++
	}

	return out[:w], nil
}

// lower records a strictly smaller estimate for v.
func (a *Algorithm) lower(v int, d float64) {
	old := a.dist[v]
	a.dist[v] = d
	a.stats.Relaxations++
	a.opts.OnRelax(v, old, d)
}
