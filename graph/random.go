// random.go - RandomSparse(n, density, maxWeight) generator and its RNG factory.
//
// Canonical model:
//   - Erdős–Rényi-like over ordered pairs (i,j), i≠j: each edge is kept
//     independently with probability density.
//   - Weight of a kept edge is rng.Float64()*maxWeight, i.e. uniform in [0, maxWeight).
//
// Determinism:
//   - Trial order is fixed (i asc, then j asc), so a fixed seed always yields
//     the same graph.
//   - math/rand.Rand is NOT goroutine-safe; never share one across goroutines.
package graph

import (
	"fmt"
	"math/rand"
)

// defaultSeed is used when callers pass seed==0.
const defaultSeed int64 = 1

const (
	methodRandomSparse = "RandomSparse"
	densityMin         = 0.0
	densityMax         = 1.0
)

// NewRand returns a deterministic *rand.Rand; seed==0 maps to a fixed default.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// RandomSparse samples a directed graph over n vertices with independent
// edge probability density and weights uniform in [0, maxWeight).
//
// rng may be nil only when density is 0 or 1; density 1 then yields edges of
// weight maxWeight/2 so the fixture stays deterministic.
//
// Complexity: O(n²) Bernoulli trials.
func RandomSparse(n int, density, maxWeight float64, rng *rand.Rand) (*Graph, error) {
	if density < densityMin || density > densityMax {
		return nil, fmt.Errorf("%s: density=%.6f: %w", methodRandomSparse, density, ErrInvalidProbability)
	}
	if maxWeight < 0 {
		return nil, fmt.Errorf("%s: maxWeight=%g: %w", methodRandomSparse, maxWeight, ErrNegativeWeight)
	}
	if rng == nil && density > densityMin && density < densityMax {
		return nil, fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
	}

	g, err := New(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodRandomSparse, err)
	}
	if density == densityMin {
		return g, nil
	}

	var (
		i, j int
		w    float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			if rng == nil {
				w = maxWeight / 2
			} else {
				if rng.Float64() >= density {
					continue
				}
				w = rng.Float64() * maxWeight
			}
			g.adj[i] = append(g.adj[i], Edge{To: j, Weight: w})
			g.m++
		}
	}

	return g, nil
}
