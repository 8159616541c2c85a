package shortestpath

import "github.com/hashicorp/go-shortestpath/internal/graph"

// DistanceTable maps every node of a graph to its shortest distance. Nodes
// that can't be reached hold Infinity.
type DistanceTable[N Node, W Weight] map[N]W

// Reachable reports whether n has a finite distance.
func (d DistanceTable[N, W]) Reachable(n N) bool {
	w, ok := d[n]
	return ok && !IsInfinite(w)
}

// ParentMap maps each reached node, other than the source, to the node it is
// reached from on a shortest path.
type ParentMap[N Node] map[N]N

// Result is returned by ShortestPaths. It carries the distances as well as
// the parent links needed to rebuild the paths themselves.
type Result[N Node, W Weight] struct {
	Source    N
	Distances DistanceTable[N, W]
	Parents   ParentMap[N]
}

// PathTo returns the shortest path from the source to n, both inclusive.
// It returns nil if n is unreachable.
func (r *Result[N, W]) PathTo(n N) []N {
	return PathTo(r.Parents, r.Source, n)
}

// Paths returns the shortest path to every reachable node. See Reconstruct.
func (r *Result[N, W]) Paths() map[N][]N {
	return Reconstruct(r.Parents, r.Source)
}

// Reconstruct rebuilds paths from parent links. For every node whose chain
// of parents leads back to source, the result holds the path from source
// to that node, both inclusive. The source itself maps to a path with just
// the source. Nodes whose chain breaks, or loops, have no entry.
func Reconstruct[N Node](parents ParentMap[N], source N) map[N][]N {
	result := map[N][]N{source: {source}}
	for n := range parents {
		if n == source {
			continue
		}
		if path := graph.EdgeToPath(source, n, parents); path != nil {
			result[n] = path
		}
	}
	return result
}

// PathTo walks the parent links back from target and returns the path from
// source to target, both inclusive, or nil if target can't be reached.
func PathTo[N Node](parents ParentMap[N], source, target N) []N {
	return graph.EdgeToPath(source, target, parents)
}
