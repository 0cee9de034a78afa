// Package bmssp_test provides runnable examples of the BMSSP algorithm.
package bmssp_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/bmssp/bmssp"
	"github.com/katalvlaran/bmssp/graph"
)

// ExampleAlgorithm_SSSP computes distances on the chain 0→1→2→3.
func ExampleAlgorithm_SSSP() {
	g, _ := graph.New(4)
	_ = g.AddEdge(0, 1, 1)
	_ = g.AddEdge(1, 2, 2)
	_ = g.AddEdge(2, 3, 3)

	a, err := bmssp.New(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	k, t := a.Params()
	fmt.Printf("k=%d t=%d l=%d\n", k, t, a.Levels())

	dist, err := a.SSSP(0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(dist)
	// Output:
	// k=2 t=2 l=1
	// [0 1 3 6]
}

// ExampleAlgorithm_BaseCase explores only the ball of radius 5 around vertex 0.
func ExampleAlgorithm_BaseCase() {
	g, _ := graph.Chain(6, 2)
	a, _ := bmssp.New(g)
	_ = a.SetDist(0, 0)
	_ = a.BaseCase(0, 5)

	for v := 0; v < 6; v++ {
		if d := a.Dist(v); !math.IsInf(d, 1) {
			fmt.Printf("%d:%g ", v, d)
		}
	}
	fmt.Println()
	// Output: 0:0 1:2 2:4
}

// ExamplePartialSortDS shows that prepended smaller items come out first.
func ExamplePartialSortDS() {
	ds := bmssp.NewPartialSortDS(100)
	ds.Insert(1, 5)
	ds.Insert(2, 3)
	ds.Insert(3, 7)
	ds.BatchPrepend([]bmssp.Item{{Key: 4, Value: 1}, {Key: 5, Value: 2}})

	keys, boundary, _ := ds.Pull(4)
	fmt.Println(keys, boundary)
	// Output: [4 5 2 1] 5
}
