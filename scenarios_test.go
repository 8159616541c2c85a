package shortestpath

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func init() {
	hclog.L().SetLevel(hclog.Trace)
}

// scenarios mirrors testdata/scenarios.yaml.
type scenarios struct {
	Distances []struct {
		Name        string              `yaml:"name"`
		Graph       Graph[string, int]  `yaml:"graph"`
		Source      string              `yaml:"source"`
		Distances   map[string]int      `yaml:"distances"`
		Unreachable []string            `yaml:"unreachable"`
		Paths       map[string][]string `yaml:"paths"`
	} `yaml:"distances"`

	DistancesTo []struct {
		Name        string             `yaml:"name"`
		Graph       Graph[string, int] `yaml:"graph"`
		Destination string             `yaml:"destination"`
		Distances   map[string]int     `yaml:"distances"`
		Unreachable []string           `yaml:"unreachable"`
	} `yaml:"distancesTo"`

	Pair []struct {
		Name        string             `yaml:"name"`
		Graph       Graph[string, int] `yaml:"graph"`
		Source      string             `yaml:"source"`
		Destination string             `yaml:"destination"`
		Distance    int                `yaml:"distance"`
		Unreachable bool               `yaml:"unreachable"`
	} `yaml:"pair"`

	AllPaths []struct {
		Name        string             `yaml:"name"`
		Graph       Graph[string, int] `yaml:"graph"`
		Source      string             `yaml:"source"`
		Destination string             `yaml:"destination"`
		Paths       [][]string         `yaml:"paths"`
	} `yaml:"allPaths"`

	BellmanFord []struct {
		Name          string             `yaml:"name"`
		Graph         Graph[string, int] `yaml:"graph"`
		Source        string             `yaml:"source"`
		Distances     map[string]int     `yaml:"distances"`
		Unreachable   []string           `yaml:"unreachable"`
		NegativeCycle bool               `yaml:"negativeCycle"`
	} `yaml:"bellmanFord"`
}

func loadScenarios(t *testing.T) *scenarios {
	t.Helper()

	raw, err := os.ReadFile(filepath.Join("testdata", "scenarios.yaml"))
	require.NoError(t, err)

	var result scenarios
	require.NoError(t, yaml.Unmarshal(raw, &result))
	return &result
}

// expectedTable builds the full distance table a scenario expects: every
// node listed with its distance, and every unreachable one at Infinity.
func expectedTable(distances map[string]int, unreachable []string) DistanceTable[string, int] {
	result := DistanceTable[string, int]{}
	for k, v := range distances {
		result[k] = v
	}
	for _, k := range unreachable {
		result[k] = Infinity[int]()
	}
	return result
}
