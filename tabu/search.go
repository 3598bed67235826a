package tabu

import (
	"context"

	"go.uber.org/zap"

	"github.com/katalvlaran/pids/clock"
	"github.com/katalvlaran/pids/coverage"
)

const methodSearch = "Search"

// engine is the per-run working set of Search.
type engine struct {
	o      Options
	s      *coverage.State
	memory map[TenureKey]int64

	best    *coverage.State
	bestObj float64
}

// objective of s after a move that leaves |S| = size and coverage ratio = ratio.
func (e *engine) objective(size int, ratio float64) float64 {
	return e.o.SizeWeight*float64(size) + ratio
}

// pending reports whether some memory entry is still tabu at counter.
func (e *engine) pending(counter int64) bool {
	for _, until := range e.memory {
		if until > counter {
			return true
		}
	}

	return false
}

// candidate is the best admissible move of one iteration.
type candidate struct {
	move       coverage.Move
	objective  float64
	aspiration bool
	found      bool
}

// consider probes m and keeps it if admissible and strictly better than c.
func (e *engine) consider(c *candidate, m coverage.Move, size, counter int64) {
	ratio, ok := e.s.Probe(m)
	if !ok {
		return
	}
	obj := e.objective(int(size), ratio)
	tabu := e.memory[e.o.KeyPolicy.Key(m, obj)] > counter
	if tabu && !(obj < e.bestObj) {
		return
	}
	if !c.found || obj < c.objective {
		*c = candidate{move: m, objective: obj, aspiration: tabu, found: true}
	}
}

// Search runs tabu search from s, which must be scored with
// coverage.Coverage and is normally a pruned feasible solution. Insertions
// are always candidates; removals only when CanRemove holds, so a feasible
// start stays feasible. s is left holding the global best.
//
// Termination (time budget, cancellation, MaxIterations) is checked at the
// top of every iteration and is not an error. The run also ends when no move
// is admissible and no tenure is still running.
//
// Complexity per iteration: O(n·Δ), Δ the maximum degree. Graphs whose
// degrees have too large a common multiple for the exact coverage counter
// (see package coverage) pay O(n·(Δ + D)), D the number of distinct degrees.
func Search(ctx context.Context, s *coverage.State, opts ...Option) (Result, error) {
	if s == nil {
		return Result{}, ErrNilState
	}
	if s.Objective() != coverage.Coverage {
		return Result{}, ErrObjective
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	tenure, err := validate(o, s.NodeCount())
	if err != nil {
		return Result{}, err
	}
	if o.Clock == nil {
		o.Clock = clock.NewCPU()
	}
	if ctx == nil {
		ctx = context.Background()
	}

	e := &engine{
		o:      o,
		s:      s,
		memory: make(map[TenureKey]int64),
		best:   s.Clone(),
	}
	e.bestObj = e.objective(s.Size(), s.Score())

	var (
		res     Result
		counter int64
		n       = s.NodeCount()
		v       int
		size    int64
		c       candidate
		info    IterationInfo
	)
	for {
		if ctx.Err() != nil {
			res.Stop = StopCancelled
			break
		}
		if o.TimeLimit > 0 && o.Clock.Elapsed() > o.TimeLimit {
			res.Stop = StopTimeLimit
			break
		}
		if o.MaxIterations > 0 && res.Iterations >= o.MaxIterations {
			res.Stop = StopMaxIterations
			break
		}

		c = candidate{}
		size = int64(s.Size())
		for v = 0; v < n; v++ {
			if !s.Contains(v) {
				e.consider(&c, coverage.Add(v), size+1, counter)
			}
		}
		for v = 0; v < n; v++ {
			if s.Contains(v) && s.CanRemove(v) {
				e.consider(&c, coverage.Remove(v), size-1, counter)
			}
		}

		info = IterationInfo{Iteration: res.Iterations}
		if counter >= o.IterationCeiling-tenure {
			clear(e.memory)
			counter = 0
			res.Resets++
			info.Reset = true
			o.Logger.Info("tabu memory reset", zap.Int64("iteration", res.Iterations))
		}

		if c.found {
			s.Apply(c.move)
			e.memory[o.KeyPolicy.Key(c.move, c.objective)] = counter + tenure
			if c.objective < e.bestObj {
				e.best.CopyFrom(s)
				e.bestObj = c.objective
				res.Improvements++
				res.TimeToBest = o.Clock.Elapsed()
				o.Logger.Debug("new global best",
					zap.Int64("iteration", res.Iterations),
					zap.Int("size", s.Size()),
					zap.Float64("objective", c.objective),
				)
			}
			info.Move, info.Committed, info.Aspiration = c.move, true, c.aspiration
		} else if !info.Reset && !e.pending(counter) {
			res.Stop = StopNoMoves
			break
		}

		info.Counter = counter
		info.Objective = e.objective(s.Size(), s.Score())
		info.GlobalBest = e.bestObj
		info.BestSize = e.best.Size()
		if o.OnIteration != nil {
			o.OnIteration(info)
		}
		counter++
		res.Iterations++
	}

	s.CopyFrom(e.best)
	res.Members = s.Members()
	res.Objective = e.bestObj
	res.Feasible = s.Feasible()
	res.Elapsed = o.Clock.Elapsed()
	o.Logger.Debug("tabu search finished",
		zap.Stringer("stop", res.Stop),
		zap.Int64("iterations", res.Iterations),
		zap.Int("improvements", res.Improvements),
		zap.Int("size", s.Size()),
	)

	return res, nil
}
