package shortestpath

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	require := require.New(t)

	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	g := Graph[string, int]{"S": {"A": 1, "C": 5}, "A": {"B": 2}, "B": {"C": 1, "D": 5}, "C": {"D": 3}, "D": {}, "E": {"D": 2}}
	_, err := Distances(g, "S", WithMetrics(m))
	require.NoError(err)

	require.Equal(1.0, testutil.ToFloat64(m.runs.WithLabelValues(algDijkstra, "ok")))

	// S is seeded, then A, C, B, C again, D and D again are pushed. The
	// first C and the first D are superseded before they are popped.
	require.Equal(7.0, testutil.ToFloat64(m.pushes.WithLabelValues(algDijkstra)))
	require.Equal(2.0, testutil.ToFloat64(m.stale.WithLabelValues(algDijkstra)))
	require.Equal(6.0, testutil.ToFloat64(m.relaxations.WithLabelValues(algDijkstra)))
	require.Equal(1, testutil.CollectAndCount(m.duration))

	count, err := testutil.GatherAndCount(reg, "shortestpath_runs_total")
	require.NoError(err)
	require.Equal(1, count)
}

func TestMetrics_results(t *testing.T) {
	require := require.New(t)

	m := NewMetrics(nil)
	negative := Graph[string, int]{"A": {"B": 1}, "B": {"A": -2}}

	_, err := Distance(negative, "A", "B", WithMetrics(m))
	require.ErrorIs(err, ErrInvalidGraph)
	_, err = BellmanFord(negative, "A", WithMetrics(m))
	require.ErrorIs(err, ErrNegativeCycle)
	_, err = AcyclicDistances(negative, "A", WithMetrics(m))
	require.ErrorIs(err, ErrCycle)
	_, err = AllShortestPaths(negative, "A", "Z", WithMetrics(m))
	require.ErrorIs(err, ErrNodeNotFound)

	require.Equal(1.0, testutil.ToFloat64(m.runs.WithLabelValues(algPair, "invalid_graph")))
	require.Equal(1.0, testutil.ToFloat64(m.runs.WithLabelValues(algBellmanFord, "negative_cycle")))
	require.Equal(1.0, testutil.ToFloat64(m.runs.WithLabelValues(algAcyclic, "cycle")))
	require.Equal(1.0, testutil.ToFloat64(m.runs.WithLabelValues(algAllPaths, "node_not_found")))
}

func TestMetrics_nil(t *testing.T) {
	var m *Metrics
	require.NotPanics(t, func() {
		m.observe(newRunStats(algDijkstra), nil)
	})
}

func TestMetrics_acyclicRelaxations(t *testing.T) {
	require := require.New(t)

	m := NewMetrics(nil)

	// Z improves twice: first through the direct edge, then through Y.
	g := Graph[string, int]{"X": {"Y": 1, "Z": 5}, "Y": {"Z": 1}}
	_, err := AcyclicDistances(g, "X", WithMetrics(m))
	require.NoError(err)
	require.Equal(3.0, testutil.ToFloat64(m.relaxations.WithLabelValues(algAcyclic)))

	// Same count as the other algorithms for the same graph.
	_, err = Distances(g, "X", WithMetrics(m))
	require.NoError(err)
	require.Equal(3.0, testutil.ToFloat64(m.relaxations.WithLabelValues(algDijkstra)))
}
