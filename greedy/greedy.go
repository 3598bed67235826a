package greedy

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/pids/coverage"
	"github.com/katalvlaran/pids/graph"
)

const methodConstruct = "Construct"

// Construct builds a feasible solution for g by greedy insertion.
//
// Each step scans all non-members and inserts the one with the most
// under-covered neighbours (lowest id on ties). Construction stops when no
// vertex is under-covered, or when no non-member can help; the remaining
// under-covered vertices are then reported in Result.Unfixable.
//
// On context cancellation the partial solution is returned together with
// ctx.Err().
//
// Complexity: O(|S|·(n+m)) time, O(n) space.
func Construct(g *graph.Graph, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	s, err := coverage.New(g, o.Objective)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", methodConstruct, err)
	}

	var res Result
	var v, best, gain, bestGain int
	for !s.Feasible() {
		if err = o.Ctx.Err(); err != nil {
			return finish(s, res), err
		}
		best, bestGain = -1, 0
		for v = 0; v < g.NodeCount(); v++ {
			if s.Contains(v) {
				continue
			}
			gain = s.UncoveredNeighbors(v)
			if gain > bestGain {
				best, bestGain = v, gain
			}
		}
		if best < 0 {
			break
		}
		s.TryAdd(best)
		res.Insertions++
	}

	if o.Prune && s.Feasible() {
		res.Pruned = Prune(s)
	}
	res = finish(s, res)
	o.Logger.Debug("greedy construction finished",
		zap.Int("size", s.Size()),
		zap.Int("insertions", res.Insertions),
		zap.Int("pruned", res.Pruned),
		zap.Bool("feasible", res.Feasible),
	)

	return res, nil
}

func finish(s *coverage.State, res Result) Result {
	res.State = s
	res.Members = s.Members()
	res.Feasible = s.Feasible()
	if !res.Feasible {
		for v := 0; v < s.NodeCount(); v++ {
			if !s.Covered(v) {
				res.Unfixable = append(res.Unfixable, v)
			}
		}
	}

	return res
}

// Prune removes, in ascending id order, every member whose removal keeps all
// of its neighbours covered, and returns how many members were dropped.
// A feasible input stays feasible and ends minimal: no single member can be
// removed afterwards. A nil state is a no-op.
//
// Complexity: O(n + m).
func Prune(s *coverage.State) int {
	if s == nil {
		return 0
	}
	var removed int
	for _, v := range s.Members() {
		if s.CanRemove(v) {
			s.TryRemove(v)
			removed++
		}
	}

	return removed
}
