package coverage

import "github.com/katalvlaran/pids/graph"

// Verify recomputes coverage from scratch and returns, ascending, every vertex
// whose threshold is not met by members. An empty result means members is a
// PIDS of g. Out-of-range members are ignored.
//
// Complexity: O(n + m).
func Verify(g *graph.Graph, members []int) []int {
	n := g.NodeCount()
	in := make([]bool, n)
	for _, v := range members {
		if v >= 0 && v < n {
			in[v] = true
		}
	}

	var bad []int
	var u, c int
	for u = 0; u < n; u++ {
		c = 0
		for _, w := range g.Neighbors(u) {
			if in[w] {
				c++
			}
		}
		if 2*c < g.Degree(u) {
			bad = append(bad, u)
		}
	}

	return bad
}
