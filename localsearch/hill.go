package localsearch

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/pids/coverage"
)

// HillClimb runs steepest-descent local search on s in place.
//
// Neighbourhood order, which also decides ties (first found wins):
//
//	for i = 0..n-1:  add(i), then switch(out, i) for out ∈ S ascending
//	then:            remove(out) for out ∈ S ascending
//
// Every candidate is applied, scored and reverted. The lowest-scoring
// candidate is committed when it is strictly below the current score;
// otherwise the search has Converged.
//
// Complexity: O(n·|S|·Δ) per step, Δ the maximum degree.
func HillClimb(s *coverage.State, opts ...Option) (Result, error) {
	if s == nil {
		return Result{}, ErrNilState
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var (
		steps  int
		status = Exploring
		err    error
	)
	for o.MaxSteps <= 0 || steps < o.MaxSteps {
		if err = o.Ctx.Err(); err != nil {
			break
		}
		move, ok := bestNeighbour(s)
		if !ok {
			status = Converged
			break
		}
		s.Apply(move)
		steps++
		if o.OnStep != nil {
			o.OnStep(Step{Step: steps, Move: move, Score: s.Score()})
		}
	}

	res := resultOf(s)
	res.Steps = steps
	res.Status = status
	o.Logger.Debug("hill climbing finished",
		zap.Stringer("status", status),
		zap.Int("steps", steps),
		zap.Int("size", s.Size()),
		zap.Float64("score", s.Score()),
	)

	return res, err
}

// bestNeighbour returns the first lowest-scoring strictly improving move.
func bestNeighbour(s *coverage.State) (coverage.Move, bool) {
	var (
		best      coverage.Move
		bestScore = s.Score()
		found     bool
		members   = s.Members()
	)
	consider := func(m coverage.Move) {
		if score, ok := s.Probe(m); ok && score < bestScore {
			best, bestScore, found = m, score, true
		}
	}

	for i := 0; i < s.NodeCount(); i++ {
		if s.Contains(i) {
			continue
		}
		consider(coverage.Add(i))
		for _, out := range members {
			consider(coverage.Switch(out, i))
		}
	}
	for _, out := range members {
		consider(coverage.Remove(out))
	}

	return best, found
}
