package shortestpath

import (
	"github.com/hashicorp/go-shortestpath/internal/dag"
)

// AcyclicDistances computes the shortest distance from source to every node
// of a directed acyclic graph. Negative weights are allowed. Every vertex is
// relaxed once, in topological order, which makes this much cheaper than
// BellmanFord when the graph is known to be a DAG.
//
// If g has a cycle the error is ErrCycle.
func AcyclicDistances[N Node, W Weight](g Graph[N, W], source N, opts ...Option) (DistanceTable[N, W], error) {
	r, err := AcyclicShortestPaths(g, source, opts...)
	if err != nil {
		return nil, err
	}

	return r.Distances, nil
}

// AcyclicShortestPaths is the same as AcyclicDistances but also returns the
// parent links to rebuild the paths, see Result.
func AcyclicShortestPaths[N Node, W Weight](g Graph[N, W], source N, opts ...Option) (*Result[N, W], error) {
	o, err := newOptions(opts...)
	if err != nil {
		return nil, err
	}

	log := o.logger.Named("acyclic")
	stats := newRunStats(algAcyclic)
	r, err := func() (*Result[N, W], error) {
		idx := g.index()
		if !idx.Has(source) {
			return nil, &NodeNotFoundError[N]{Node: source}
		}

		// Get the topological sort. Shortest paths on a DAG only need every
		// vertex to be relaxed after all of its predecessors.
		topo, err := dag.KahnSort(idx)
		if err != nil {
			return nil, err
		}
		log.Trace("topological sort", "sort", topo)

		distTo, edgeTo, relaxed := idx.TopoShortestPath(topo, source)
		stats.relaxations = relaxed

		inf := Infinity[W]()
		dist := make(DistanceTable[N, W], len(topo))
		for _, v := range topo {
			dist[v] = inf
			if d, ok := distTo[v]; ok {
				dist[v] = d
			}
		}

		return &Result[N, W]{
			Source:    source,
			Distances: dist,
			Parents:   ParentMap[N](edgeTo),
		}, nil
	}()
	if err != nil {
		log.Debug("acyclic shortest path failed", "error", err)
	}

	o.metrics.observe(stats, err)
	return r, err
}
