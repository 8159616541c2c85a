package shortestpath

import (
	"math"

	"github.com/hashicorp/go-multierror"
	"github.com/hashicorp/go-shortestpath/internal/graph"
	"golang.org/x/exp/constraints"
)

// Node is the constraint for node identifiers. Any ordered type works:
// strings, integers, floats. The order is only used to make iteration (and
// therefore tie-breaking between equally short paths) deterministic.
type Node interface {
	constraints.Ordered
}

// Weight is the constraint for edge weights.
type Weight interface {
	constraints.Integer | constraints.Float
}

// Graph is a weighted directed graph: a mapping from node to a mapping from
// neighbor to edge weight. A node that only ever appears as a neighbor is
// still a node of the graph.
//
// Nothing in this package modifies a Graph that is passed to it.
type Graph[N Node, W Weight] map[N]map[N]W

// Edge is a single weighted, directed edge of a Graph.
type Edge[N Node, W Weight] struct {
	From   N
	To     N
	Weight W
}

// Nodes returns every node of the graph, sorted.
func (g Graph[N, W]) Nodes() []N {
	return g.index().Vertices()
}

// Edges returns every edge of the graph, sorted by source and then target.
func (g Graph[N, W]) Edges() []Edge[N, W] {
	edges := g.index().Edges()
	result := make([]Edge[N, W], len(edges))
	for i, e := range edges {
		result[i] = Edge[N, W](e)
	}
	return result
}

// Reverse returns the transpose of the graph: every edge u->v of weight w
// becomes v->u with the same weight. The result shares no maps with g, and
// every node of g is a key in it, even ones without edges.
func (g Graph[N, W]) Reverse() Graph[N, W] {
	idx := g.index().Reverse()
	result := make(Graph[N, W], idx.Len())
	for _, v := range idx.Vertices() {
		result[v] = make(map[N]W)
		for _, e := range idx.OutEdges(v) {
			result[v][e.To] = e.Weight
		}
	}
	return result
}

// Validate checks that every edge weight is usable by Dijkstra's algorithm:
// non-negative and not NaN. Every offending edge is reported. The returned
// error matches ErrInvalidGraph.
func (g Graph[N, W]) Validate() error {
	return validateWeights(g.index())
}

func validateWeights[N Node, W Weight](g *graph.Graph[N, W]) error {
	var result error
	for _, e := range g.Edges() {
		if e.Weight < 0 || math.IsNaN(float64(e.Weight)) {
			result = multierror.Append(result, &NegativeWeightError[N, W]{
				From:   e.From,
				To:     e.To,
				Weight: e.Weight,
			})
		}
	}
	return result
}

// String outputs some human-friendly output for the graph structure. The
// output is deterministic.
func (g Graph[N, W]) String() string {
	return g.index().String()
}

// index builds the internal adjacency structure for g. Neighbor lists come
// back sorted from it, which is what makes the searches deterministic.
func (g Graph[N, W]) index() *graph.Graph[N, W] {
	var result graph.Graph[N, W]
	for u, neighbors := range g {
		result.Add(u)
		for v, w := range neighbors {
			result.AddEdgeWeighted(u, v, w)
		}
	}
	return &result
}

// Infinity returns the distance used for unreachable nodes: +Inf for
// floating point weights and the largest representable value for integer
// weights.
func Infinity[W Weight]() W {
	return graph.Infinity[W]()
}

// IsInfinite reports whether w is the Infinity sentinel.
func IsInfinite[W Weight](w W) bool {
	return w == Infinity[W]()
}
