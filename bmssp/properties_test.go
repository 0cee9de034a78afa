package bmssp_test

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bmssp/bmssp"
	"github.com/katalvlaran/bmssp/dijkstra"
	"github.com/katalvlaran/bmssp/graph"
)

// randomCases covers sparse and dense graphs of a few sizes with fixed seeds.
var randomCases = []struct {
	n       int
	density float64
	seed    int64
}{
	{10, 0.3, 1},
	{20, 0.3, 2},
	{50, 0.3, 3},
	{50, 0.05, 4},
	{200, 0.02, 5},
	{500, 0.01, 6},
}

func randomGraph(t require.TestingT, n int, density float64, seed int64) *graph.Graph {
	g, err := graph.RandomSparse(n, density, 10, graph.NewRand(seed))
	require.NoError(t, err)
	return g
}

func TestSSSP_AgreesWithDijkstra(t *testing.T) {
	for _, tc := range randomCases {
		t.Run(fmt.Sprintf("n=%d/p=%.2f", tc.n, tc.density), func(t *testing.T) {
			g := randomGraph(t, tc.n, tc.density, tc.seed)
			for _, src := range []int{0, tc.n / 2, tc.n - 1} {
				a, err := bmssp.New(g)
				require.NoError(t, err)
				got, err := a.SSSP(src)
				require.NoError(t, err)

				want, _, err := dijkstra.Dijkstra(g, dijkstra.Source(src))
				require.NoError(t, err)
				requireSameDistances(t, want, got, "source %d", src)
			}
		})
	}
}

func TestSSSP_Deterministic(t *testing.T) {
	g := randomGraph(t, 200, 0.05, 11)
	run := func() ([]float64, bmssp.Stats) {
		a, err := bmssp.New(g)
		require.NoError(t, err)
		d, err := a.SSSP(3)
		require.NoError(t, err)
		return d, a.Stats()
	}
	d1, s1 := run()
	d2, s2 := run()
	assert.Equal(t, d1, d2)
	assert.Equal(t, s1, s2)
}

// multiSource seeds dist = 0 on every source and returns the algorithm.
func multiSource(t *testing.T, g *graph.Graph, sources []int, opts ...bmssp.Option) *bmssp.Algorithm {
	a, err := bmssp.New(g, opts...)
	require.NoError(t, err)
	for _, s := range sources {
		require.NoError(t, a.SetDist(s, 0))
	}
	return a
}

func TestBMSSP_DistancesNeverIncrease(t *testing.T) {
	g := randomGraph(t, 300, 0.05, 21)
	violations := 0
	onRelax := func(v int, old, new float64) {
		if !(new < old) {
			violations++
		}
	}

	a, err := bmssp.New(g, bmssp.WithOnRelax(onRelax))
	require.NoError(t, err)
	_, err = a.SSSP(0)
	require.NoError(t, err)

	sources := []int{0, 10, 20, 30, 40, 50, 60, 70}
	b := multiSource(t, g, sources, bmssp.WithOnRelax(onRelax), bmssp.WithLevels(4))
	require.NoError(t, b.BMSSP(b.Levels(), math.Inf(1), sources))

	assert.Zero(t, violations)
	assert.Positive(t, a.Stats().Relaxations)
	assert.Positive(t, b.Stats().Relaxations)
}

func TestBMSSP_UpperBoundOnTrueDistance(t *testing.T) {
	g := randomGraph(t, 300, 0.03, 31)
	sources := []int{1, 2, 3, 5, 8, 13, 21, 34}
	a := multiSource(t, g, sources, bmssp.WithLevels(3))
	require.NoError(t, a.BMSSP(a.Levels(), math.Inf(1), sources))
	got := a.Distances()

	// true multi-source distance is the minimum over single-source runs
	truth := make([]float64, g.VertexCount())
	for v := range truth {
		truth[v] = math.Inf(1)
	}
	for _, s := range sources {
		d, _, err := dijkstra.Dijkstra(g, dijkstra.Source(s))
		require.NoError(t, err)
		for v := range truth {
			truth[v] = math.Min(truth[v], d[v])
		}
	}
	for v := range truth {
		assert.GreaterOrEqual(t, got[v]+tol, truth[v], "vertex %d below the true distance", v)
	}
}

func TestBMSSP_RecursionDepthBounded(t *testing.T) {
	g := randomGraph(t, 400, 0.05, 41)
	sources := make([]int, 0, 40)
	for v := 0; v < 400; v += 10 {
		sources = append(sources, v)
	}

	for _, levels := range []int{0, 1, 2, 5} {
		t.Run(fmt.Sprintf("levels=%d", levels), func(t *testing.T) {
			minLevel := math.MaxInt
			a := multiSource(t, g, sources,
				bmssp.WithLevels(levels),
				bmssp.WithOnEnter(func(level int, bound float64, frontier int) {
					if level < minLevel {
						minLevel = level
					}
				}))
			require.NoError(t, a.BMSSP(a.Levels(), math.Inf(1), sources))

			st := a.Stats()
			assert.LessOrEqual(t, st.MaxDepth, a.Levels())
			assert.GreaterOrEqual(t, minLevel, 0)
			assert.Equal(t, a.Levels()-minLevel, st.MaxDepth)
			if a.Levels() > 0 {
				assert.Positive(t, st.MaxDepth, "hub sources must trigger recursion")
			}
		})
	}
}

func TestSSSP_DepthWithinDerivedBudget(t *testing.T) {
	for _, tc := range randomCases {
		g := randomGraph(t, tc.n, tc.density, tc.seed)
		a, err := bmssp.New(g)
		require.NoError(t, err)
		_, err = a.SSSP(0)
		require.NoError(t, err)
		assert.LessOrEqual(t, a.Stats().MaxDepth, a.Levels())
	}
}

func TestFindPivots_Cap(t *testing.T) {
	g := randomGraph(t, 300, 0.05, 51)
	rng := rand.New(rand.NewSource(52))

	for trial := 0; trial < 30; trial++ {
		size := 1 + rng.Intn(60)
		sources := make([]int, size)
		for i := range sources {
			sources[i] = rng.Intn(300)
		}
		a := multiSource(t, g, sources)
		pivots, reachable, err := a.FindPivots(math.Inf(1), sources)
		require.NoError(t, err)

		k, _ := a.Params()
		set := map[int]bool{}
		for _, s := range sources {
			set[s] = true
		}
		require.LessOrEqual(t, len(pivots), max(1, len(set)/k), "trial %d", trial)
		require.True(t, sort.IntsAreSorted(pivots))
		for _, p := range pivots {
			require.True(t, set[p], "pivot %d is not a source", p)
		}
		seen := map[int]bool{}
		for _, v := range reachable {
			require.False(t, seen[v], "reachable %d listed twice", v)
			seen[v] = true
		}
	}
}

func TestFindPivots_TruncationKeepsLowestIDs(t *testing.T) {
	// four hubs, each with two private out-edges: all qualify at k=2
	g := newGraph(t, 12, [][3]float64{
		{0, 4, 1}, {0, 5, 1},
		{1, 6, 1}, {1, 7, 1},
		{2, 8, 1}, {2, 9, 1},
		{3, 10, 1}, {3, 11, 1},
	})
	sources := []int{3, 2, 1, 0}
	a := multiSource(t, g, sources)
	k, _ := a.Params()
	require.Equal(t, 2, k)

	pivots, reachable, err := a.FindPivots(math.Inf(1), sources)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1}, pivots, "cap is 4/k=2 and the lowest ids survive")
	require.ElementsMatch(t, []int{4, 5, 6, 7, 8, 9, 10, 11}, reachable)
}

func TestBaseCase_RespectsBound(t *testing.T) {
	g := randomGraph(t, 200, 0.05, 61)
	full, _, err := dijkstra.Dijkstra(g, dijkstra.Source(7))
	require.NoError(t, err)

	for _, bound := range []float64{0.5, 3, 7.5, 15} {
		t.Run(fmt.Sprintf("bound=%g", bound), func(t *testing.T) {
			var overBound []int
			a, err := bmssp.New(g, bmssp.WithOnRelax(func(v int, _, new float64) {
				if new >= bound {
					overBound = append(overBound, v)
				}
			}))
			require.NoError(t, err)
			require.NoError(t, a.SetDist(7, 0))
			require.NoError(t, a.BaseCase(7, bound))
			require.Empty(t, overBound)

			got := a.Distances()
			for v, d := range full {
				if d < bound {
					require.InDelta(t, d, got[v], tol, "vertex %d inside the ball", v)
					continue
				}
				require.True(t, math.IsInf(got[v], 1), "vertex %d outside the ball was touched", v)
			}
		})
	}
}
