package graph

import (
	"fmt"
	"slices"
	"sort"
)

const methodNew = "New"

// New builds a Graph with nodeCount vertices from the given 0-indexed edges.
//
// Contracts:
//   - 0 ≤ nodeCount ≤ MaxNodes.
//   - every endpoint lies in [0, nodeCount).
//   - no self-loops.
//
// Duplicate and mirrored edges are merged.
//
// Errors: ErrInvalidGraphFormat wrapped with the offending edge.
func New(nodeCount int, edges []Edge) (*Graph, error) {
	if nodeCount < 0 || nodeCount > MaxNodes {
		return nil, fmt.Errorf("%s: nodeCount=%d not in [0,%d]: %w", methodNew, nodeCount, MaxNodes, ErrInvalidGraphFormat)
	}

	// Validate and canonicalise (lo, hi) so duplicates collapse after sorting.
	canon := make([]Edge, 0, len(edges))
	for i, e := range edges {
		if e.U < 0 || e.U >= nodeCount || e.V < 0 || e.V >= nodeCount {
			return nil, fmt.Errorf("%s: edge #%d (%d,%d) outside [0,%d): %w",
				methodNew, i, e.U, e.V, nodeCount, ErrInvalidGraphFormat)
		}
		if e.U == e.V {
			return nil, fmt.Errorf("%s: edge #%d (%d,%d) is a self-loop: %w",
				methodNew, i, e.U, e.V, ErrInvalidGraphFormat)
		}
		if e.U > e.V {
			e.U, e.V = e.V, e.U
		}
		canon = append(canon, e)
	}
	sort.Slice(canon, func(i, j int) bool {
		if canon[i].U != canon[j].U {
			return canon[i].U < canon[j].U
		}
		return canon[i].V < canon[j].V
	})
	canon = slices.Compact(canon)

	// Degree count, then prefix sums into offsets.
	g := &Graph{n: nodeCount, m: len(canon), offsets: make([]int, nodeCount+1)}
	for _, e := range canon {
		g.offsets[e.U+1]++
		g.offsets[e.V+1]++
	}
	var v int
	for v = 0; v < nodeCount; v++ {
		g.offsets[v+1] += g.offsets[v]
	}

	g.adj = make([]int, 2*len(canon))
	fill := make([]int, nodeCount)
	copy(fill, g.offsets[:nodeCount])
	for _, e := range canon {
		g.adj[fill[e.U]] = e.V
		fill[e.U]++
		g.adj[fill[e.V]] = e.U
		fill[e.V]++
	}

	// Canonical edges are sorted by (lo, hi), which leaves each list mostly
	// ordered; sort per vertex to make it exact.
	for v = 0; v < nodeCount; v++ {
		nb := g.adj[g.offsets[v]:g.offsets[v+1]]
		slices.Sort(nb)
		if len(nb) > g.maxDeg {
			g.maxDeg = len(nb)
		}
	}

	return g, nil
}

// NodeCount returns the number of vertices.
func (g *Graph) NodeCount() int { return g.n }

// EdgeCount returns the number of distinct undirected edges.
func (g *Graph) EdgeCount() int { return g.m }

// MaxDegree returns the largest vertex degree (0 for an edgeless graph).
func (g *Graph) MaxDegree() int { return g.maxDeg }

// Neighbors returns the ascending neighbour list of v.
// The slice aliases internal storage and MUST NOT be modified.
func (g *Graph) Neighbors(v int) []int {
	return g.adj[g.offsets[v]:g.offsets[v+1]:g.offsets[v+1]]
}

// Degree returns the number of neighbours of v.
func (g *Graph) Degree(v int) int {
	return g.offsets[v+1] - g.offsets[v]
}

// Threshold returns ⌈deg(v)/2⌉, the number of selected neighbours v needs.
func (g *Graph) Threshold(v int) int {
	return (g.Degree(v) + 1) / 2
}

// HasEdge reports whether u and v are adjacent. Out-of-range ids yield false.
func (g *Graph) HasEdge(u, v int) bool {
	if u < 0 || u >= g.n || v < 0 || v >= g.n {
		return false
	}
	_, found := slices.BinarySearch(g.Neighbors(u), v)

	return found
}

// Edges returns every edge once as (lo, hi), ordered by lo then hi.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.m)
	var u int
	for u = 0; u < g.n; u++ {
		for _, v := range g.Neighbors(u) {
			if u < v {
				out = append(out, Edge{U: u, V: v})
			}
		}
	}

	return out
}
