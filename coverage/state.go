package coverage

import (
	"fmt"
	"math/bits"

	"github.com/katalvlaran/pids/graph"
)

// State bundles one candidate solution with its Coverage Tracker: membership,
// popularity counters and the cached objective. Each search run owns a fresh
// State; mutate it only through the operators in operators.go.
type State struct {
	g   *graph.Graph
	obj Objective

	in   []bool // in[v] ⇔ v ∈ S
	size int
	pop  []int // pop[v] = |N(v) ∩ S|

	uncovered int   // |{u : 2·pop[u] < deg(u)}|
	degreeSum int64 // Σ_{v∈S} deg(v)

	// Coverage accumulators: byDegree[d] = Σ_{u : deg(u)=d} pop[u].
	// degrees lists the distinct positive degrees ascending.
	byDegree []int64
	degrees  []int

	// When lcm > 0, scaled = lcm·Σ pop[u]/deg(u) exactly and unit[d] = lcm/d,
	// so the coverage score is kept in O(1) per popularity change. lcm == 0
	// means the common denominator overflows and the score is re-derived
	// from byDegree.
	lcm    int64
	unit   []int64 // shared read-only between clones
	scaled int64

	score float64
}

// New returns an empty-solution State over g scored with obj.
//
// Complexity: O(n + maxDegree).
func New(g *graph.Graph, obj Objective) (*State, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.NodeCount()
	s := &State{
		g:        g,
		obj:      obj,
		in:       make([]bool, n),
		pop:      make([]int, n),
		byDegree: make([]int64, g.MaxDegree()+1),
	}

	seen := make([]bool, g.MaxDegree()+1)
	var v, d int
	for v = 0; v < n; v++ {
		d = g.Degree(v)
		if d > 0 {
			s.uncovered++
			seen[d] = true
		}
	}
	for d = 1; d < len(seen); d++ {
		if seen[d] {
			s.degrees = append(s.degrees, d)
		}
	}
	if l := commonDenominator(s.degrees, n); l > 0 {
		s.lcm = l
		s.unit = make([]int64, len(s.byDegree))
		for _, d = range s.degrees {
			s.unit[d] = l / int64(d)
		}
	}
	s.refresh()

	return s, nil
}

// FromMembers returns a State whose solution is the given set of vertices.
// Duplicates are ignored; ids outside [0,n) yield ErrNodeOutOfRange.
func FromMembers(g *graph.Graph, obj Objective, members []int) (*State, error) {
	s, err := New(g, obj)
	if err != nil {
		return nil, err
	}
	for _, v := range members {
		if v < 0 || v >= s.NodeCount() {
			return nil, fmt.Errorf("FromMembers: node %d not in [0,%d): %w", v, s.NodeCount(), ErrNodeOutOfRange)
		}
		if !s.in[v] {
			s.insert(v)
		}
	}
	s.refresh()

	return s, nil
}

// Graph returns the underlying graph.
func (s *State) Graph() *graph.Graph { return s.g }

// Objective returns the scoring model.
func (s *State) Objective() Objective { return s.obj }

// NodeCount returns the number of vertices of the graph.
func (s *State) NodeCount() int { return len(s.in) }

// Size returns |S|.
func (s *State) Size() int { return s.size }

// Contains reports whether v ∈ S. Out-of-range ids yield false.
func (s *State) Contains(v int) bool {
	return v >= 0 && v < len(s.in) && s.in[v]
}

// Popularity returns the number of selected neighbours of v.
func (s *State) Popularity(v int) int { return s.pop[v] }

// Covered reports whether v meets its half-degree threshold.
func (s *State) Covered(v int) bool { return 2*s.pop[v] >= s.g.Degree(v) }

// Uncovered returns the number of vertices below their threshold.
func (s *State) Uncovered() int { return s.uncovered }

// Feasible reports whether every vertex is covered.
func (s *State) Feasible() bool { return s.uncovered == 0 }

// Score returns the cached objective value.
func (s *State) Score() float64 { return s.score }

// CoverageRatio returns Σ pop[u]/deg(u) regardless of the configured objective.
// Complexity: O(1), or O(distinct degrees) when the degrees have no common
// denominator n·lcm below 2^62.
func (s *State) CoverageRatio() float64 {
	if s.lcm > 0 {
		return float64(s.scaled) / float64(s.lcm)
	}
	var sum float64
	for _, d := range s.degrees {
		sum += float64(s.byDegree[d]) / float64(d)
	}

	return sum
}

// UncoveredNeighbors returns how many neighbours of v are below threshold,
// i.e. the deficit reduction that inserting v would achieve.
func (s *State) UncoveredNeighbors(v int) int {
	var c int
	for _, u := range s.g.Neighbors(v) {
		if !s.Covered(u) {
			c++
		}
	}

	return c
}

// Members returns the selected vertices in ascending order.
// Complexity: O(n).
func (s *State) Members() []int {
	out := make([]int, 0, s.size)
	for v, ok := range s.in {
		if ok {
			out = append(out, v)
		}
	}

	return out
}

// Clone returns a deep copy sharing only the read-only graph.
func (s *State) Clone() *State {
	c := *s
	c.in = append([]bool(nil), s.in...)
	c.pop = append([]int(nil), s.pop...)
	c.byDegree = append([]int64(nil), s.byDegree...)

	return &c
}

// CopyFrom overwrites s with src, reusing s's buffers. Both States must be
// built over the same graph.
func (s *State) CopyFrom(src *State) {
	copy(s.in, src.in)
	copy(s.pop, src.pop)
	copy(s.byDegree, src.byDegree)
	s.obj = src.obj
	s.size = src.size
	s.uncovered = src.uncovered
	s.degreeSum = src.degreeSum
	s.scaled = src.scaled
	s.score = src.score
}

// refresh re-derives the cached score from the exact integer state.
func (s *State) refresh() {
	switch s.obj {
	case Coverage:
		s.score = s.CoverageRatio()
	default:
		s.score = float64(s.degreeSum + int64(len(s.in))*int64(s.uncovered))
	}
}

// scaledLimit bounds n·lcm so that scaled never overflows: pop[u] ≤ deg(u)
// gives scaled ≤ n·lcm.
const scaledLimit = 1 << 62

// commonDenominator returns lcm(degrees) if n·lcm ≤ scaledLimit, else 0.
func commonDenominator(degrees []int, n int) int64 {
	var l uint64 = 1
	var hi, lo, a, b uint64
	for _, d := range degrees {
		a, b = l, uint64(d)
		for b != 0 {
			a, b = b, a%b
		}
		hi, lo = bits.Mul64(l/a, uint64(d))
		if hi != 0 || lo > scaledLimit {
			return 0
		}
		l = lo
	}
	hi, lo = bits.Mul64(l, uint64(max(n, 1)))
	if hi != 0 || lo > scaledLimit {
		return 0
	}

	return int64(l)
}
