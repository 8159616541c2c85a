package shortestpath

import (
	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-shortestpath/internal/frontier"
	"github.com/hashicorp/go-shortestpath/internal/graph"
)

// Distances computes the shortest distance from source to every node of g
// using Dijkstra's algorithm. Nodes that can't be reached from source have
// a distance of Infinity.
//
// Every edge weight must be non-negative; otherwise the result would be
// silently wrong, so the whole graph is checked up front and an error
// matching ErrInvalidGraph is returned instead.
func Distances[N Node, W Weight](g Graph[N, W], source N, opts ...Option) (DistanceTable[N, W], error) {
	r, err := dijkstra(g, source, algDijkstra, opts)
	if err != nil {
		return nil, err
	}

	return r.Distances, nil
}

// ShortestPaths is the same as Distances but also records the parent of
// every reached node so that the paths can be rebuilt, see Result.
func ShortestPaths[N Node, W Weight](g Graph[N, W], source N, opts ...Option) (*Result[N, W], error) {
	return dijkstra(g, source, algDijkstra, opts)
}

// DistancesTo computes the shortest distance from every node of g to
// destination. It runs Dijkstra's algorithm from destination over the
// reversed graph.
func DistancesTo[N Node, W Weight](g Graph[N, W], destination N, opts ...Option) (DistanceTable[N, W], error) {
	return Distances(g.Reverse(), destination, opts...)
}

// Distance computes the shortest distance from source to destination. The
// search stops as soon as destination's distance is final, so the rest of
// the graph may never be visited. If destination can't be reached the
// result is Infinity and the error is nil.
func Distance[N Node, W Weight](g Graph[N, W], source, destination N, opts ...Option) (W, error) {
	o, err := newOptions(opts...)
	if err != nil {
		return 0, err
	}

	stats := newRunStats(algPair)
	d, err := distance(o.logger.Named("dijkstra"), g, source, destination, stats)
	o.metrics.observe(stats, err)
	return d, err
}

func distance[N Node, W Weight](
	log hclog.Logger,
	g Graph[N, W],
	source, destination N,
	stats *runStats,
) (W, error) {
	idx, err := prepare(g, source, destination)
	if err != nil {
		log.Debug("invalid input", "error", err)
		return 0, err
	}

	s := newSearch(log, idx, source, stats)
	if !s.run(&destination) {
		log.Trace("destination unreachable", "source", source, "destination", destination)
		return Infinity[W](), nil
	}

	return s.dist[destination], nil
}

func dijkstra[N Node, W Weight](
	g Graph[N, W],
	source N,
	algorithm string,
	opts []Option,
) (*Result[N, W], error) {
	o, err := newOptions(opts...)
	if err != nil {
		return nil, err
	}

	log := o.logger.Named("dijkstra")
	stats := newRunStats(algorithm)
	r, err := func() (*Result[N, W], error) {
		idx, err := prepare(g, source)
		if err != nil {
			log.Debug("invalid input", "error", err)
			return nil, err
		}

		s := newSearch(log, idx, source, stats)
		s.run(nil)
		return s.result(), nil
	}()
	o.metrics.observe(stats, err)
	return r, err
}

// prepare indexes g and checks everything Dijkstra's algorithm requires of
// its input: the given nodes exist and there are no negative weights.
func prepare[N Node, W Weight](g Graph[N, W], nodes ...N) (*graph.Graph[N, W], error) {
	idx := g.index()
	for _, n := range nodes {
		if !idx.Has(n) {
			return nil, &NodeNotFoundError[N]{Node: n}
		}
	}

	if err := validateWeights(idx); err != nil {
		return nil, err
	}

	return idx, nil
}

// search holds the state of a single run of Dijkstra's algorithm. None of
// it outlives the call that created it.
type search[N Node, W Weight] struct {
	log    hclog.Logger
	graph  *graph.Graph[N, W]
	source N
	stats  *runStats
	inf    W

	// dist is the best known distance of every reached vertex. It is only
	// final for vertices in done.
	dist    map[N]W
	parents ParentMap[N]
	done    map[N]struct{}
	front   frontier.Frontier[N, W]
}

func newSearch[N Node, W Weight](
	log hclog.Logger,
	g *graph.Graph[N, W],
	source N,
	stats *runStats,
) *search[N, W] {
	s := &search[N, W]{
		log:     log,
		graph:   g,
		source:  source,
		stats:   stats,
		inf:     Infinity[W](),
		dist:    map[N]W{source: 0},
		parents: ParentMap[N]{},
		done:    map[N]struct{}{},
	}

	log.Trace("seeding frontier", "source", source)
	s.push(frontier.Entry[N, W]{Vertex: source})
	return s
}

// run finalizes vertices in order of distance until the frontier is empty.
// If target is non-nil the run stops as soon as target is final. The result
// reports whether target was reached.
func (s *search[N, W]) run(target *N) bool {
	for s.front.Len() > 0 {
		e := s.front.Pop()

		// Entries are never removed when a shorter distance is found, they
		// are just superseded. Skip them here.
		if _, ok := s.done[e.Vertex]; ok || e.Dist > s.dist[e.Vertex] {
			s.stats.stale++
			continue
		}

		s.done[e.Vertex] = struct{}{}
		if e.HasParent {
			s.parents[e.Vertex] = e.Parent
		}
		s.log.Trace("finalized", "node", e.Vertex, "distance", e.Dist)

		if target != nil && e.Vertex == *target {
			s.log.Trace("reached destination, stopping early", "node", e.Vertex)
			return true
		}

		for _, edge := range s.graph.OutEdges(e.Vertex) {
			if _, ok := s.done[edge.To]; ok {
				continue
			}

			// Sums that reach Infinity, including infinite weights, are
			// treated as missing edges.
			x, ok := graph.Sum(e.Dist, edge.Weight, s.inf)
			if !ok {
				continue
			}
			if d, ok := s.dist[edge.To]; ok && x >= d {
				continue
			}

			s.stats.relaxations++
			s.dist[edge.To] = x
			s.push(frontier.Entry[N, W]{
				Dist:      x,
				Vertex:    edge.To,
				Parent:    e.Vertex,
				HasParent: true,
			})
		}
	}

	return false
}

func (s *search[N, W]) push(e frontier.Entry[N, W]) {
	s.stats.pushes++
	s.front.Push(e)
}

// result returns the table of final distances for every vertex of the graph.
func (s *search[N, W]) result() *Result[N, W] {
	dist := make(DistanceTable[N, W], s.graph.Len())
	for _, v := range s.graph.Vertices() {
		dist[v] = s.inf
		if _, ok := s.done[v]; ok {
			dist[v] = s.dist[v]
		}
	}

	return &Result[N, W]{
		Source:    s.source,
		Distances: dist,
		Parents:   s.parents,
	}
}
