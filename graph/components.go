package graph

// Components returns the connected components of g, each listed in
// breadth-first order from its smallest vertex; components are ordered by
// that vertex. Isolated vertices form singleton components.
//
// Complexity: O(n + m) time, O(n) space.
func (g *Graph) Components() [][]int {
	var (
		comps   [][]int
		visited = make([]bool, g.n)
		queue   = make([]int, 0, g.n)
		head    int
		v       int
	)
	for root := 0; root < g.n; root++ {
		if visited[root] {
			continue
		}
		visited[root] = true
		queue = append(queue[:0], root)
		for head = 0; head < len(queue); head++ {
			v = queue[head]
			for _, u := range g.Neighbors(v) {
				if !visited[u] {
					visited[u] = true
					queue = append(queue, u)
				}
			}
		}
		comps = append(comps, append([]int(nil), queue...))
	}

	return comps
}

// IsolatedCount returns the number of degree-0 vertices. They are covered by
// any solution and never need selecting.
func (g *Graph) IsolatedCount() int {
	var c int
	for v := 0; v < g.n; v++ {
		if g.Degree(v) == 0 {
			c++
		}
	}

	return c
}
