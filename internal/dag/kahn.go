// Package dag contains algorithms that only apply to acyclic graphs.
package dag

import (
	"errors"

	"github.com/hashicorp/go-shortestpath/internal/graph"
)

// ErrCycle is returned by KahnSort when the graph has at least one cycle.
var ErrCycle = errors.New("graph has cycles")

// KahnSort returns a topological ordering of g. The graph itself is left
// untouched; the edge removal the algorithm relies on happens on a copy.
// Ties are broken by vertex order so the result is deterministic.
func KahnSort[V graph.Vertex, W graph.Weight](g *graph.Graph[V, W]) ([]V, error) {
	/*
	   L ← Empty list that will contain the sorted elements
	   S ← Set of all nodes with no incoming edge

	   while S is non-empty do
	       remove a node n from S
	       add n to tail of L
	       for each node m with an edge e from n to m do
	           remove edge e from the graph
	           if m has no other incoming edges then
	               insert m into S

	   if graph has edges then
	       return error   (graph has at least one cycle)
	   else
	       return L   (a topologically sorted order)
	*/

	g = g.Copy()
	vertices := g.Vertices()

	// L ← Empty list that will contain the sorted elements
	L := make([]V, 0, len(vertices))

	// S ← Set of all nodes with no incoming edge. Vertices come back sorted,
	// so walk them backwards to pop the smallest first.
	S := []V{}
	for i := len(vertices) - 1; i >= 0; i-- {
		if len(g.InEdges(vertices[i])) == 0 {
			S = append(S, vertices[i])
		}
	}

	// while S is non-empty do
	for len(S) > 0 {
		// remove a node n from S
		n := S[len(S)-1]
		S = S[:len(S)-1]

		// add n to tail of L
		L = append(L, n)

		// for each node m with an edge e from n to m do
		out := g.OutEdges(n)
		for i := len(out) - 1; i >= 0; i-- {
			m := out[i].To

			// remove edge e from the graph
			g.RemoveEdge(n, m)

			// if m has no other incoming edges then
			if len(g.InEdges(m)) == 0 {
				// insert m into S
				S = append(S, m)
			}
		}
	}

	// if graph has edges then
	//   return error   (graph has at least one cycle)
	if len(g.Edges()) > 0 {
		return nil, ErrCycle
	}

	return L, nil
}
