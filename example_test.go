package shortestpath_test

import (
	"errors"
	"fmt"

	shortestpath "github.com/hashicorp/go-shortestpath"
)

func ExampleShortestPaths() {
	g := shortestpath.Graph[string, int]{
		"S": {"A": 7, "B": 2},
		"A": {"C": 1},
		"B": {"A": 3, "C": 8},
	}

	r, err := shortestpath.ShortestPaths(g, "S")
	if err != nil {
		panic(err)
	}

	fmt.Println(r.Distances["C"], r.PathTo("C"))
	// Output: 6 [S B A C]
}

func ExampleAllShortestPaths() {
	g := shortestpath.Graph[string, int]{
		"A": {"B": 1, "C": 1},
		"B": {"D": 1},
		"C": {"D": 1},
	}

	paths, err := shortestpath.AllShortestPaths(g, "A", "D")
	if err != nil {
		panic(err)
	}

	fmt.Println(paths)
	// Output: [[A B D] [A C D]]
}

func ExampleBellmanFord() {
	g := shortestpath.Graph[string, int]{
		"S": {"A": 1},
		"A": {"B": -2},
		"B": {"A": 1},
	}

	_, err := shortestpath.BellmanFord(g, "S")
	fmt.Println(errors.Is(err, shortestpath.ErrNegativeCycle))
	fmt.Println(err)
	// Output:
	// true
	// negative weight cycle: A -> B -> A
}
