package shortestpath

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBellmanFord(t *testing.T) {
	for _, tt := range loadScenarios(t).BellmanFord {
		t.Run(tt.Name, func(t *testing.T) {
			require := require.New(t)

			actual, err := BellmanFord(tt.Graph, tt.Source)
			if tt.NegativeCycle {
				require.ErrorIs(err, ErrNegativeCycle)
				require.Nil(actual)

				var nce *NegativeCycleError[string]
				require.True(errors.As(err, &nce))
				require.GreaterOrEqual(len(nce.Cycle), 2)
				require.Equal(nce.Cycle[0], nce.Cycle[len(nce.Cycle)-1])
				require.Less(pathWeight(t, tt.Graph, nce.Cycle), 0)
				return
			}

			require.NoError(err)
			require.Equal(expectedTable(tt.Distances, tt.Unreachable), actual)
		})
	}
}

func TestBellmanFord_overflow(t *testing.T) {
	require := require.New(t)

	g := Graph[string, int]{
		"A": {"B": math.MaxInt - 1, "C": 5},
		"B": {"C": 10},
		"C": {"D": -3},
	}
	actual, err := BellmanFord(g, "A")
	require.NoError(err)
	require.Equal(DistanceTable[string, int]{
		"A": 0,
		"B": math.MaxInt - 1,
		"C": 5,
		"D": 2,
	}, actual)
}

func TestBellmanFord_negativeCycleError(t *testing.T) {
	require := require.New(t)

	g := Graph[string, int]{
		"A": {"B": 2, "C": 1},
		"B": {"E": -3},
		"C": {"A": 4, "D": -8},
		"D": {"A": 7, "E": 5},
		"E": {"C": 2},
	}

	_, err := BellmanFord(g, "A")
	var nce *NegativeCycleError[string]
	require.True(errors.As(err, &nce))

	// C -> D -> E -> C is the only negative cycle, -8 + 5 + 2 = -1.
	require.Equal([]string{"C", "D", "E", "C"}, nce.Cycle)
	require.Equal("negative weight cycle: C -> D -> E -> C", err.Error())
	require.False(errors.Is(err, ErrNodeNotFound))
}

func TestBellmanFord_missingSource(t *testing.T) {
	require := require.New(t)

	_, err := BellmanFord(Graph[string, int]{"A": {"B": -1}}, "Z")
	require.ErrorIs(err, ErrNodeNotFound)
	require.False(errors.Is(err, ErrNegativeCycle))
}

func TestBellmanFord_matchesDistances(t *testing.T) {
	for _, tt := range loadScenarios(t).Distances {
		t.Run(tt.Name, func(t *testing.T) {
			require := require.New(t)

			expected, err := Distances(tt.Graph, tt.Source)
			require.NoError(err)

			actual, err := BellmanFord(tt.Graph, tt.Source)
			require.NoError(err)
			require.Equal(expected, actual)
		})
	}
}

func TestDistances_rejectsBellmanFordGraph(t *testing.T) {
	for _, tt := range loadScenarios(t).BellmanFord {
		if tt.Graph.Validate() == nil {
			continue
		}

		t.Run(tt.Name, func(t *testing.T) {
			_, err := Distances(tt.Graph, tt.Source)
			require.ErrorIs(t, err, ErrInvalidGraph)
		})
	}
}
