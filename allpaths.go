package shortestpath

import (
	"fmt"
	"slices"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-shortestpath/internal/frontier"
	"github.com/hashicorp/go-shortestpath/internal/graph"
)

// AllShortestPaths returns every distinct path from source to destination
// whose total weight is the shortest distance between them. Each path
// includes both ends. The paths are sorted lexicographically.
//
// The result is nil if destination is unreachable, and a single path with
// only source if source and destination are the same node. Only simple
// paths are returned: zero weight cycles never repeat a node.
//
// The number of tied paths can be exponential in the size of the graph. If
// there are more than the WithMaxPaths limit (DefaultMaxPaths by default),
// an error matching ErrTooManyPaths is returned.
func AllShortestPaths[N Node, W Weight](g Graph[N, W], source, destination N, opts ...Option) ([][]N, error) {
	o, err := newOptions(opts...)
	if err != nil {
		return nil, err
	}

	log := o.logger.Named("allpaths")
	stats := newRunStats(algAllPaths)
	paths, err := allShortestPaths(log, g, source, destination, o.maxPaths, stats)
	o.metrics.observe(stats, err)
	return paths, err
}

func allShortestPaths[N Node, W Weight](
	log hclog.Logger,
	g Graph[N, W],
	source, destination N,
	maxPaths int,
	stats *runStats,
) ([][]N, error) {
	idx, err := prepare(g, source, destination)
	if err != nil {
		log.Debug("invalid input", "error", err)
		return nil, err
	}

	// Same as the single parent search, except that every parent that ties
	// the best known distance is kept rather than only the first one.
	inf := Infinity[W]()
	dist := map[N]W{source: 0}
	parents := map[N]map[N]struct{}{}
	done := map[N]struct{}{}

	var front frontier.Frontier[N, W]
	front.Push(frontier.Entry[N, W]{Vertex: source})
	stats.pushes++

	for front.Len() > 0 {
		// Once the destination is final, anything further away can't be
		// on a shortest path to it. Entries at the same distance still
		// matter since zero weight edges can add tied parents.
		if _, ok := done[destination]; ok {
			if next, _ := front.Peek(); next.Dist > dist[destination] {
				log.Trace("destination final, stopping", "distance", dist[destination])
				break
			}
		}

		e := front.Pop()
		if _, ok := done[e.Vertex]; ok || e.Dist > dist[e.Vertex] {
			stats.stale++
			continue
		}
		done[e.Vertex] = struct{}{}
		log.Trace("finalized", "node", e.Vertex, "distance", e.Dist)

		for _, edge := range idx.OutEdges(e.Vertex) {
			// Nothing but the source itself is a shortest path to source.
			if edge.To == source {
				continue
			}

			x, ok := graph.Sum(e.Dist, edge.Weight, inf)
			if !ok {
				continue
			}

			d, ok := dist[edge.To]
			switch {
			case !ok || x < d:
				stats.relaxations++
				dist[edge.To] = x
				parents[edge.To] = map[N]struct{}{e.Vertex: {}}
				front.Push(frontier.Entry[N, W]{
					Dist:      x,
					Vertex:    edge.To,
					Parent:    e.Vertex,
					HasParent: true,
				})
				stats.pushes++

			case x == d:
				parents[edge.To][e.Vertex] = struct{}{}
			}
		}
	}

	if _, ok := done[destination]; !ok {
		log.Trace("destination unreachable", "source", source, "destination", destination)
		return nil, nil
	}

	return expandPaths(parents, source, destination, maxPaths)
}

// expandPaths walks every combination of parents from destination back to
// source. Nodes already on the current path are skipped, which is what
// keeps zero weight cycles in the parent relation from looping forever.
func expandPaths[N Node](
	parents map[N]map[N]struct{},
	source, destination N,
	maxPaths int,
) ([][]N, error) {
	var result [][]N
	onPath := map[N]struct{}{}

	var walk func(n N, suffix []N) error
	walk = func(n N, suffix []N) error {
		suffix = append(suffix, n)
		if n == source {
			if maxPaths > 0 && len(result) >= maxPaths {
				return fmt.Errorf("%w: more than %d paths from %v to %v",
					ErrTooManyPaths, maxPaths, source, destination)
			}

			path := slices.Clone(suffix)
			slices.Reverse(path)
			result = append(result, path)
			return nil
		}

		onPath[n] = struct{}{}
		defer delete(onPath, n)

		next := make([]N, 0, len(parents[n]))
		for p := range parents[n] {
			if _, ok := onPath[p]; !ok {
				next = append(next, p)
			}
		}
		slices.Sort(next)

		for _, p := range next {
			if err := walk(p, suffix); err != nil {
				return err
			}
		}
		return nil
	}

	if err := walk(destination, nil); err != nil {
		return nil, err
	}

	slices.SortFunc(result, func(a, b []N) int {
		return slices.Compare(a, b)
	})
	return result, nil
}
