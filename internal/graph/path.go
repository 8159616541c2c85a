package graph

// TopoShortestPath returns the shortest path information given the
// topological sort of the graph L. L can be retrieved using any topological
// sort algorithm such as dag.KahnSort. Negative weights are fine since every
// vertex is relaxed exactly once, after all of its predecessors.
//
// The return value are two maps with the distance to and edge to information,
// respectively, plus the number of relaxations that improved a distance.
// distTo maps the total distance from source to the given vertex. edgeTo
// maps the previous vertex on the path to get to a vertex from source.
// Vertices unreachable from source are absent from both. Edges of weight
// Infinity are treated as missing.
func (g *Graph[V, W]) TopoShortestPath(L []V, source V) (distTo map[V]W, edgeTo map[V]V, relaxed int) {
	/*
	   Set the distance to the source to 0;
	   Set the distances to all other vertices to infinity;
	   For each vertex u in L
	      - Walk through all neighbors v of u;
	      - If dist(v) > dist(u) + w(u, v)
	         - Set dist(v) <- dist(u) + w(u, v);
	*/

	inf := Infinity[W]()
	distTo = map[V]W{source: 0}
	edgeTo = map[V]V{}

	// For each vertex u in L
	for _, u := range L {
		du, ok := distTo[u]
		if !ok {
			// Still infinity, nothing to propagate.
			continue
		}

		// Walk through all neighbors v of u;
		for _, e := range g.OutEdges(u) {
			// x = dist(u) + w(u, v)
			x, ok := Sum(du, e.Weight, inf)
			if !ok {
				continue
			}

			// If dist(v) > dist(u) + w(u, v)
			if dv, ok := distTo[e.To]; !ok || dv > x {
				distTo[e.To] = x
				edgeTo[e.To] = u
				relaxed++
			}
		}
	}

	return distTo, edgeTo, relaxed
}

// EdgeToPath turns the edgeTo information into the path from source to
// target, both inclusive. The result is nil if the chain of predecessors
// breaks or loops before reaching source.
func EdgeToPath[V Vertex](source, target V, edgeTo map[V]V) []V {
	path := []V{target}
	seen := map[V]struct{}{target: {}}
	for current := target; current != source; {
		prev, ok := edgeTo[current]
		if !ok {
			return nil
		}
		if _, ok := seen[prev]; ok {
			return nil
		}

		seen[prev] = struct{}{}
		path = append(path, prev)
		current = prev
	}

	// Reverse it so it reads source -> target
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
