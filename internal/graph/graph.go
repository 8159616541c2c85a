package graph

import (
	"bytes"
	"cmp"
	"fmt"
	"slices"
)

// Graph represents a weighted directed graph.
//
// Unless otherwise documented, it is unsafe to call any method on Graph concurrently.
type Graph[V Vertex, W Weight] struct {
	// adjacency represents graphs using an adjacency list. Both directions
	// are tracked so that Reverse is free and InEdges doesn't need a scan.
	adjacencyOut map[V]map[V]W
	adjacencyIn  map[V]map[V]W
}

// Add adds a vertex to the graph. Adding a vertex that already exists is
// a no-op.
func (g *Graph[V, W]) Add(v V) V {
	g.init()
	if _, ok := g.adjacencyOut[v]; !ok {
		g.adjacencyOut[v] = make(map[V]W)
		g.adjacencyIn[v] = make(map[V]W)
	}
	return v
}

// Has reports whether v is a vertex of the graph.
func (g *Graph[V, W]) Has(v V) bool {
	_, ok := g.adjacencyOut[v]
	return ok
}

// Len returns the number of vertices.
func (g *Graph[V, W]) Len() int {
	return len(g.adjacencyOut)
}

// Vertices returns the list of all the vertices in this graph, sorted.
func (g *Graph[V, W]) Vertices() []V {
	result := make([]V, 0, len(g.adjacencyOut))
	for v := range g.adjacencyOut {
		result = append(result, v)
	}
	slices.Sort(result)
	return result
}

// AddEdgeWeighted adds a weighted edge from v1 to v2. Both vertices are
// added if they are missing. An existing edge has its weight replaced.
func (g *Graph[V, W]) AddEdgeWeighted(v1, v2 V, weight W) {
	g.Add(v1)
	g.Add(v2)
	g.adjacencyOut[v1][v2] = weight
	g.adjacencyIn[v2][v1] = weight
}

// RemoveEdge removes the edge from v1 to v2 if it exists.
func (g *Graph[V, W]) RemoveEdge(v1, v2 V) {
	delete(g.adjacencyOut[v1], v2)
	delete(g.adjacencyIn[v2], v1)
}

// OutEdges returns the edges leaving v, sorted by target.
func (g *Graph[V, W]) OutEdges(v V) []Edge[V, W] {
	edges := g.adjacencyOut[v]
	if len(edges) == 0 {
		return nil
	}

	result := make([]Edge[V, W], 0, len(edges))
	for to, w := range edges {
		result = append(result, Edge[V, W]{From: v, To: to, Weight: w})
	}
	slices.SortFunc(result, compareEdges[V, W])
	return result
}

// InEdges returns the edges arriving at v, sorted by source.
func (g *Graph[V, W]) InEdges(v V) []Edge[V, W] {
	edges := g.adjacencyIn[v]
	if len(edges) == 0 {
		return nil
	}

	result := make([]Edge[V, W], 0, len(edges))
	for from, w := range edges {
		result = append(result, Edge[V, W]{From: from, To: v, Weight: w})
	}
	slices.SortFunc(result, compareEdges[V, W])
	return result
}

// Edges returns every edge of the graph sorted by source, then target.
func (g *Graph[V, W]) Edges() []Edge[V, W] {
	var result []Edge[V, W]
	for _, v := range g.Vertices() {
		result = append(result, g.OutEdges(v)...)
	}
	return result
}

// Reverse reverses the graph but _does not make a copy_. Any changes to
// this graph will impact the original Graph. You must call Copy on the
// result if you want to have a copy.
func (g *Graph[V, W]) Reverse() *Graph[V, W] {
	return &Graph[V, W]{
		adjacencyOut: g.adjacencyIn,
		adjacencyIn:  g.adjacencyOut,
	}
}

// Copy copies the graph. In the copy, any added or removed edges do not
// affect the original graph.
func (g *Graph[V, W]) Copy() *Graph[V, W] {
	var g2 Graph[V, W]
	g2.init()

	for k, set := range g.adjacencyOut {
		g2.adjacencyOut[k] = copyAdjacency(set)
	}
	for k, set := range g.adjacencyIn {
		g2.adjacencyIn[k] = copyAdjacency(set)
	}

	return &g2
}

// String outputs some human-friendly output for the graph structure.
func (g *Graph[V, W]) String() string {
	var buf bytes.Buffer

	// Write each vertex in order...
	for _, v := range g.Vertices() {
		fmt.Fprintf(&buf, "%v\n", v)

		// ...followed by its targets, also in order.
		for _, e := range g.OutEdges(v) {
			fmt.Fprintf(&buf, "  %v (%v)\n", e.To, e.Weight)
		}
	}

	return buf.String()
}

func (g *Graph[V, W]) init() {
	if g.adjacencyOut == nil {
		g.adjacencyOut = make(map[V]map[V]W)
	}
	if g.adjacencyIn == nil {
		g.adjacencyIn = make(map[V]map[V]W)
	}
}

func copyAdjacency[V Vertex, W Weight](set map[V]W) map[V]W {
	result := make(map[V]W, len(set))
	for k, v := range set {
		result[k] = v
	}
	return result
}

func compareEdges[V Vertex, W Weight](a, b Edge[V, W]) int {
	return cmp.Or(cmp.Compare(a.From, b.From), cmp.Compare(a.To, b.To))
}
