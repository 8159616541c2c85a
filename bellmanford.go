package shortestpath

import (
	"slices"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-shortestpath/internal/graph"
)

// BellmanFord computes the shortest distance from source to every node of g
// with the Bellman-Ford algorithm. Unlike Distances, negative edge weights
// are allowed.
//
// If a negative weight cycle is reachable from source there is no valid
// answer: a *NegativeCycleError (matching ErrNegativeCycle) is returned with
// one such cycle, and no table. A negative cycle that can't be reached from
// source doesn't affect the result.
func BellmanFord[N Node, W Weight](g Graph[N, W], source N, opts ...Option) (DistanceTable[N, W], error) {
	o, err := newOptions(opts...)
	if err != nil {
		return nil, err
	}

	log := o.logger.Named("bellmanford")
	stats := newRunStats(algBellmanFord)
	dist, err := bellmanFord(log, g.index(), source, stats)
	o.metrics.observe(stats, err)
	return dist, err
}

func bellmanFord[N Node, W Weight](
	log hclog.Logger,
	g *graph.Graph[N, W],
	source N,
	stats *runStats,
) (DistanceTable[N, W], error) {
	if !g.Has(source) {
		err := &NodeNotFoundError[N]{Node: source}
		log.Debug("invalid input", "error", err)
		return nil, err
	}

	nodes := g.Vertices()
	edges := g.Edges()
	inf := Infinity[W]()

	dist := make(DistanceTable[N, W], len(nodes))
	for _, n := range nodes {
		dist[n] = inf
	}
	dist[source] = 0
	pred := map[N]N{}

	// relax runs a single pass over every edge. It returns the last node
	// whose distance improved, if any.
	relax := func() (last N, changed bool) {
		for _, e := range edges {
			// Unreached tails, infinite weights and sums that overflow
			// past Infinity are all skipped.
			x, ok := graph.Sum(dist[e.From], e.Weight, inf)
			if ok && x < dist[e.To] {
				stats.relaxations++
				dist[e.To] = x
				pred[e.To] = e.From
				last, changed = e.To, true
			}
		}
		return last, changed
	}

	// A shortest simple path has at most |V|-1 edges, so |V|-1 passes are
	// enough to settle every distance.
	for i := 0; i < len(nodes)-1; i++ {
		relax()
	}
	log.Trace("relaxation passes complete", "passes", len(nodes)-1)

	// Anything that still improves is being pulled down by a negative cycle.
	if v, changed := relax(); changed {
		err := &NegativeCycleError[N]{Cycle: negativeCycle(pred, v, len(nodes))}
		log.Debug("negative cycle detected", "cycle", err.Cycle)
		return nil, err
	}

	return dist, nil
}

// negativeCycle recovers a cycle from the predecessor links, starting at v
// whose distance improved after all passes. Walking back n times from such
// a node always ends up on a cycle.
func negativeCycle[N Node](pred map[N]N, v N, n int) []N {
	for i := 0; i < n; i++ {
		p, ok := pred[v]
		if !ok {
			return nil
		}
		v = p
	}

	cycle := []N{v}
	for current := pred[v]; current != v; current = pred[current] {
		cycle = append(cycle, current)
	}

	// The walk went backwards, turn it around and rotate it so that the
	// smallest node comes first. That keeps the error stable between runs.
	slices.Reverse(cycle)
	first := slices.Index(cycle, slices.Min(cycle))
	cycle = slices.Concat(cycle[first:], cycle[:first])
	return append(cycle, cycle[0])
}
