package coverage_test

import (
	"fmt"

	"github.com/katalvlaran/pids/builder"
	"github.com/katalvlaran/pids/coverage"
)

// ExampleState_TryAdd walks a 4-vertex path 0-1-2-3 towards feasibility.
func ExampleState_TryAdd() {
	g, _ := builder.BuildGraph(nil, builder.Path(4))
	s, _ := coverage.New(g, coverage.Deficit)

	fmt.Println(s.Score(), s.Uncovered())
	out := s.TryAdd(1)
	fmt.Println(out.Applied(), out.Delta, s.Uncovered())
	out = s.TryAdd(1)
	fmt.Println(out.Applied(), out.Reason)
	s.TryAdd(2)
	fmt.Println(s.Score(), s.Feasible(), s.Members())

	// Output:
	// 16 4
	// true -6 2
	// false already present
	// 4 true [1 2]
}
