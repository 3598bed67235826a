package graph_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/pids/graph"
)

// ExampleRead loads a triangle with a pendant vertex:
//
//	1───2
//	 \ /
//	  3───4
func ExampleRead() {
	g, err := graph.Read(strings.NewReader("4 4\n1 2\n2 3\n3 1\n3 4\n"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for v := 0; v < g.NodeCount(); v++ {
		fmt.Printf("%d: deg=%d need=%d %v\n", v, g.Degree(v), g.Threshold(v), g.Neighbors(v))
	}

	// Output:
	// 0: deg=2 need=1 [1 2]
	// 1: deg=2 need=1 [0 2]
	// 2: deg=3 need=2 [0 1 3]
	// 3: deg=1 need=1 [2]
}
