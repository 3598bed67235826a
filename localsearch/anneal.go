package localsearch

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/pids/coverage"
)

const methodAnneal = "Anneal"

// ctxCheckMask throttles context polling to every 256 iterations.
const ctxCheckMask = 255

// Anneal runs simulated annealing on s and leaves s holding the best
// configuration seen.
//
// Per iteration: record the best-so-far, draw a move kind uniformly from
// {add, remove, switch} and its endpoints uniformly from [0,n). A move the
// State rejects is a no-op iteration without an acceptance draw. An applied
// move that improves the score is kept; otherwise it is kept iff
// accept(curr, cand, T) > Next(), and undone through its inverse if not.
//
// Complexity: O(iterations·Δ) plus O(n) per new best.
func Anneal(s *coverage.State, opts ...Option) (Result, error) {
	if s == nil {
		return Result{}, ErrNilState
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := validateSchedule(o); err != nil {
		return Result{}, err
	}
	if o.Source == nil {
		o.Source = NewSource(0)
	}

	n := s.NodeCount()
	best := s.Clone()
	if n == 0 {
		res := resultOf(s)
		res.Status = Converged
		res.FinalTemp = o.InitialTemp

		return res, nil
	}

	var (
		curr     = s.Score()
		cand     float64
		temp     = o.InitialTemp
		iter     int
		accepted int
		move     coverage.Move
		keep     bool
		err      error
		i        int
	)

schedule:
	for ; temp > o.MinTemp; temp *= o.Cooling {
		for i = 0; i < o.IterationsPerTemp; i++ {
			if iter&ctxCheckMask == 0 {
				if err = o.Ctx.Err(); err != nil {
					break schedule
				}
			}
			if curr < best.Score() {
				best.CopyFrom(s)
			}

			move = drawMove(o.Source, n)
			iter++
			if !s.Apply(move).Applied() {
				o.decide(Decision{Iteration: iter, Temperature: temp, Move: move, Score: curr})
				continue
			}

			cand = s.Score()
			keep = cand < curr || accept(o.Acceptance, curr, cand, temp) > o.Source.Next()
			if keep {
				curr = cand
				accepted++
			} else {
				s.Apply(move.Inverse())
			}
			o.decide(Decision{Iteration: iter, Temperature: temp, Move: move, Applied: true, Accepted: keep, Score: curr})
		}
	}
	if curr < best.Score() {
		best.CopyFrom(s)
	}
	s.CopyFrom(best)

	res := resultOf(s)
	res.Steps = iter
	res.Accepted = accepted
	res.FinalTemp = temp
	if err == nil {
		res.Status = Converged
	}
	o.Logger.Debug("annealing finished",
		zap.Int("iterations", iter),
		zap.Int("accepted", accepted),
		zap.Float64("final_temp", temp),
		zap.Float64("best_score", res.Score),
		zap.Int("size", s.Size()),
	)

	return res, err
}

func (o Options) decide(d Decision) {
	if o.OnDecision != nil {
		o.OnDecision(d)
	}
}

// drawMove consumes one draw for the kind, then one per endpoint.
func drawMove(src Source, n int) coverage.Move {
	switch pick(src, 3) {
	case 0:
		return coverage.Add(pick(src, n))
	case 1:
		return coverage.Remove(pick(src, n))
	default:
		out := pick(src, n)
		return coverage.Switch(out, pick(src, n))
	}
}

// accept returns the probability of keeping a non-improving candidate.
func accept(rule Acceptance, curr, cand, temp float64) float64 {
	if rule == AcceptMetropolis {
		return math.Exp((curr - cand) / temp)
	}

	return math.Exp(curr - cand/temp)
}

func validateSchedule(o Options) error {
	switch {
	case !(o.InitialTemp > 0) || math.IsInf(o.InitialTemp, 0):
		return fmt.Errorf("%s: initial temperature %v: %w", methodAnneal, o.InitialTemp, ErrInvalidSchedule)
	case !(o.MinTemp > 0):
		return fmt.Errorf("%s: minimum temperature %v: %w", methodAnneal, o.MinTemp, ErrInvalidSchedule)
	case !(o.Cooling > 0 && o.Cooling < 1):
		return fmt.Errorf("%s: cooling %v not in (0,1): %w", methodAnneal, o.Cooling, ErrInvalidSchedule)
	case o.IterationsPerTemp < 1:
		return fmt.Errorf("%s: iterations per temperature %d: %w", methodAnneal, o.IterationsPerTemp, ErrInvalidSchedule)
	case o.Acceptance > AcceptMetropolis:
		return fmt.Errorf("%s: %v: %w", methodAnneal, o.Acceptance, ErrUnknownAcceptance)
	}

	return nil
}
