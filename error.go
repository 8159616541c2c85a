// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package shortestpath

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/go-shortestpath/internal/dag"
)

var (
	// ErrInvalidGraph is matched by errors for graphs that an algorithm
	// cannot run on, such as negative weights given to Dijkstra.
	ErrInvalidGraph = errors.New("invalid graph")

	// ErrNodeNotFound is matched by errors for a source or destination that
	// is not a node of the graph.
	ErrNodeNotFound = errors.New("node not found")

	// ErrNegativeCycle is matched by errors for graphs with a negative
	// weight cycle reachable from the source. Shortest paths are undefined
	// in that case; this is distinct from a node being unreachable.
	ErrNegativeCycle = errors.New("negative weight cycle")

	// ErrTooManyPaths is returned when enumerating all shortest paths would
	// produce more paths than allowed by WithMaxPaths.
	ErrTooManyPaths = errors.New("too many shortest paths")

	// ErrCycle is returned by AcyclicDistances for graphs with a cycle.
	ErrCycle = dag.ErrCycle
)

// NegativeWeightError is the error for an edge whose weight can't be used
// by Dijkstra's algorithm.
type NegativeWeightError[N Node, W Weight] struct {
	From   N
	To     N
	Weight W
}

func (e *NegativeWeightError[N, W]) Error() string {
	return fmt.Sprintf("edge %v -> %v has invalid weight %v", e.From, e.To, e.Weight)
}

func (e *NegativeWeightError[N, W]) Is(target error) bool {
	return target == ErrInvalidGraph
}

// NodeNotFoundError is the error for a node that is not in the graph.
type NodeNotFoundError[N Node] struct {
	Node N
}

func (e *NodeNotFoundError[N]) Error() string {
	return fmt.Sprintf("node %v not found in graph", e.Node)
}

func (e *NodeNotFoundError[N]) Is(target error) bool {
	return target == ErrNodeNotFound
}

// NegativeCycleError is returned by BellmanFord when a negative weight cycle
// is reachable from the source.
type NegativeCycleError[N Node] struct {
	// Cycle is one of the negative cycles, as a closed walk: the first and
	// last elements are the same node.
	Cycle []N
}

func (e *NegativeCycleError[N]) Error() string {
	if len(e.Cycle) == 0 {
		return ErrNegativeCycle.Error()
	}

	parts := make([]string, len(e.Cycle))
	for i, n := range e.Cycle {
		parts[i] = fmt.Sprint(n)
	}
	return fmt.Sprintf("%s: %s", ErrNegativeCycle, strings.Join(parts, " -> "))
}

func (e *NegativeCycleError[N]) Is(target error) bool {
	return target == ErrNegativeCycle
}

var (
	_ error = (*NegativeWeightError[string, int])(nil)
	_ error = (*NodeNotFoundError[string])(nil)
	_ error = (*NegativeCycleError[string])(nil)
)
