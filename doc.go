// Package bmssp is the root of a single-source shortest path toolkit built
// around Bounded Multi-Source Shortest Paths, the recursive
// pivot-and-partition scheme targeting O(m·log^(2/3) n) on directed graphs
// with non-negative real weights.
//
// Subpackages:
//
//	graph/     adjacency-list digraph, validation, BFS hops, seeded random generator
//	dijkstra/  lazy binary-heap Dijkstra, the reference every result is checked against
//	bmssp/     the BMSSP algorithm: FindPivots, BaseCase, PartialSortDS, SSSP
//	verify/    tolerance comparison, gonum oracle, reachability check
//	analysis/  benchmark sweep, complexity normalisation and fits, viper config, zerolog logger
//
// cmd/ssspbench runs the sweep from the command line.
//
// Quick start:
//
//	g, _ := graph.New(4)
//	_ = g.AddEdge(0, 1, 1)
//	_ = g.AddEdge(1, 2, 2)
//	alg, _ := bmssp.New(g)
//	dist, _ := alg.SSSP(0) // [0 1 3 +Inf]
//
// All algorithms are single-goroutine; an Algorithm instance is single-use.
package bmssp
