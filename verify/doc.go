// Package verify cross-checks shortest-path results.
//
// Compare matches two distance vectors under an absolute/relative tolerance,
// treating +Inf as "unreachable" and requiring both sides to agree on it.
// GonumDistances is an oracle independent of this module's own Dijkstra: it
// runs gonum's graph/path.DijkstraFrom over a gonum simple.WeightedDirectedGraph
// built from the input. Check combines the two.
package verify
