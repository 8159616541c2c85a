// Package frontier implements the priority queue used by the shortest path
// searches.
//
// The frontier is not unique per vertex: a vertex may be pushed several times
// with different tentative distances. Callers discard the superseded entries
// when they pop them ("lazy deletion"), so no decrease-key is ever needed.
package frontier

import (
	"container/heap"

	"github.com/hashicorp/go-shortestpath/internal/graph"
)

// Entry is a single candidate on the frontier.
type Entry[V graph.Vertex, W graph.Weight] struct {
	// Dist is the tentative distance from the source to Vertex.
	Dist W

	// Vertex is the candidate vertex.
	Vertex V

	// Parent is the vertex Vertex was reached from. It is only meaningful
	// if HasParent is set; the seed entry has no parent.
	Parent    V
	HasParent bool

	seq uint64
}

// Frontier is a binary min-heap of entries ordered by distance. Entries with
// equal distance pop in insertion order, which keeps searches deterministic.
//
// The zero value is an empty frontier ready to use.
type Frontier[V graph.Vertex, W graph.Weight] struct {
	items entryHeap[V, W]
	seq   uint64
}

// Push adds an entry to the frontier.
func (f *Frontier[V, W]) Push(e Entry[V, W]) {
	e.seq = f.seq
	f.seq++
	heap.Push(&f.items, e)
}

// Pop removes and returns the entry with the smallest distance. It panics
// if the frontier is empty.
func (f *Frontier[V, W]) Pop() Entry[V, W] {
	return heap.Pop(&f.items).(Entry[V, W])
}

// Peek returns the entry Pop would return without removing it. ok is false
// if the frontier is empty.
func (f *Frontier[V, W]) Peek() (e Entry[V, W], ok bool) {
	if len(f.items) == 0 {
		return e, false
	}
	return f.items[0], true
}

// Len returns the number of entries, stale ones included.
func (f *Frontier[V, W]) Len() int {
	return len(f.items)
}

// entryHeap implements heap.Interface.
type entryHeap[V graph.Vertex, W graph.Weight] []Entry[V, W]

func (h entryHeap[V, W]) Len() int { return len(h) }

func (h entryHeap[V, W]) Less(i, j int) bool {
	if h[i].Dist != h[j].Dist {
		return h[i].Dist < h[j].Dist
	}
	return h[i].seq < h[j].seq
}

func (h entryHeap[V, W]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *entryHeap[V, W]) Push(x interface{}) { *h = append(*h, x.(Entry[V, W])) }

func (h *entryHeap[V, W]) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
