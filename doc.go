// Package shortestpath computes shortest paths over weighted directed graphs.
//
// A Graph is a plain map from node to neighbor to edge weight. Nodes can be
// any ordered type and weights any integer or floating point type. Nothing in
// this package modifies a Graph, and every call is independent: there is no
// shared state, so separate calls may run concurrently.
//
// Dijkstra's algorithm backs Distances, ShortestPaths, DistancesTo, Distance
// and AllShortestPaths. These require non-negative weights and validate that
// up front. BellmanFord accepts negative weights and reports negative cycles,
// and AcyclicDistances handles negative weights on graphs without cycles.
//
// Unreachable nodes are never an error. They have a distance of Infinity
// and no path.
package shortestpath
