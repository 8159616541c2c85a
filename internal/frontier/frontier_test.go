package frontier

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFrontier(t *testing.T) {
	require := require.New(t)

	var f Frontier[string, int]
	_, ok := f.Peek()
	require.False(ok)

	f.Push(Entry[string, int]{Dist: 5, Vertex: "A"})
	f.Push(Entry[string, int]{Dist: 1, Vertex: "B", Parent: "A", HasParent: true})
	f.Push(Entry[string, int]{Dist: 3, Vertex: "C"})
	f.Push(Entry[string, int]{Dist: 1, Vertex: "D"})
	f.Push(Entry[string, int]{Dist: 3, Vertex: "A"})
	require.Equal(5, f.Len())

	peek, ok := f.Peek()
	require.True(ok)
	require.Equal("B", peek.Vertex)

	var order []string
	for f.Len() > 0 {
		order = append(order, f.Pop().Vertex)
	}

	// Equal distances come out in the order they went in.
	require.Equal([]string{"B", "D", "C", "A", "A"}, order)
}

func TestFrontier_parent(t *testing.T) {
	require := require.New(t)

	var f Frontier[int, float64]
	f.Push(Entry[int, float64]{Dist: 0.5, Vertex: 2, Parent: 1, HasParent: true})
	f.Push(Entry[int, float64]{Dist: 0, Vertex: 1})

	e := f.Pop()
	require.Equal(1, e.Vertex)
	require.False(e.HasParent)

	e = f.Pop()
	require.Equal(2, e.Vertex)
	require.Equal(1, e.Parent)
	require.True(e.HasParent)
}
