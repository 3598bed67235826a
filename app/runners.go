package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/pids/config"
	"github.com/katalvlaran/pids/coverage"
	"github.com/katalvlaran/pids/graph"
	"github.com/katalvlaran/pids/greedy"
	"github.com/katalvlaran/pids/localsearch"
	"github.com/katalvlaran/pids/metrics"
	"github.com/katalvlaran/pids/tabu"
)

// runner performs one application, filling ap.Members and ap.Elapsed.
type runner func(ctx context.Context, ap *Application, log *zap.Logger) (metrics.Run, error)

func (a *App) greedyRunner(g *graph.Graph) runner {
	return func(ctx context.Context, ap *Application, log *zap.Logger) (metrics.Run, error) {
		clk := a.newClock()
		res, err := greedy.Construct(g, greedy.WithContext(ctx), greedy.WithLogger(log))
		if err != nil {
			return metrics.Run{}, err
		}
		ap.Members, ap.Elapsed = res.Members, clk.Elapsed()

		return metrics.Run{Iterations: int64(res.Insertions), Accepted: int64(res.Insertions)}, nil
	}
}

// localRunner builds the greedy start once; every application searches a clone.
func (a *App) localRunner(ctx context.Context, g *graph.Graph) (runner, error) {
	start, err := greedy.Construct(g, greedy.WithContext(ctx), greedy.WithLogger(a.log))
	if err != nil {
		return nil, fmt.Errorf("greedy start: %w", err)
	}

	return func(ctx context.Context, ap *Application, log *zap.Logger) (metrics.Run, error) {
		clk := a.newClock()
		s := start.State.Clone()
		fmt.Fprintf(a.out, "greedy %d\n", s.Size())

		opts := []localsearch.Option{
			localsearch.WithContext(ctx),
			localsearch.WithLogger(log),
		}
		var (
			res localsearch.Result
			err error
		)
		if a.cfg.Strategy == config.StrategyHill {
			res, err = localsearch.HillClimb(s, opts...)
		} else {
			an := a.cfg.Anneal
			opts = append(opts,
				localsearch.WithSource(a.src),
				localsearch.WithAcceptance(a.acceptance),
				localsearch.WithSchedule(an.InitialTemp, an.MinTemp, an.Cooling, an.IterationsPerTemp),
			)
			res, err = localsearch.Anneal(s, opts...)
		}
		if err != nil {
			return metrics.Run{}, err
		}
		ap.Members, ap.Elapsed = res.Members, clk.Elapsed()

		accepted := res.Accepted
		if a.cfg.Strategy == config.StrategyHill {
			accepted = res.Steps
		}

		return metrics.Run{Iterations: int64(res.Steps), Accepted: int64(accepted)}, nil
	}, nil
}

// tabuRunner times each application from before the pruned greedy start, so
// the budget covers construction too.
func (a *App) tabuRunner(g *graph.Graph) runner {
	return func(ctx context.Context, ap *Application, log *zap.Logger) (metrics.Run, error) {
		clk := a.newClock()
		start, err := greedy.Construct(g,
			greedy.WithContext(ctx),
			greedy.WithObjective(coverage.Coverage),
			greedy.WithPrune(),
			greedy.WithLogger(log),
		)
		if err != nil {
			return metrics.Run{}, err
		}
		fmt.Fprintf(a.out, "greedy %d\n", start.State.Size())
		bestAt := clk.Elapsed()

		var committed int64
		lastSize := start.State.Size()
		t := a.cfg.Tabu
		opts := []tabu.Option{
			tabu.WithTenure(t.Tenure),
			tabu.WithSizeWeight(t.SizeWeight),
			tabu.WithKeyPolicy(a.keyPolicy),
			tabu.WithMaxIterations(t.MaxIterations),
			tabu.WithTimeLimit(a.cfg.TimeBudget()),
			tabu.WithClock(clk),
			tabu.WithLogger(log),
			tabu.WithIterationHook(func(info tabu.IterationInfo) {
				if info.Committed {
					committed++
				}
				if info.BestSize < lastSize {
					lastSize = info.BestSize
					fmt.Fprintf(a.out, "value %d\ttime %.2f\n", lastSize, clk.Elapsed().Seconds())
				}
			}),
		}
		if t.IterationCeiling > 0 {
			opts = append(opts, tabu.WithIterationCeiling(t.IterationCeiling))
		}

		res, err := tabu.Search(ctx, start.State, opts...)
		if err != nil {
			return metrics.Run{}, err
		}
		if res.Improvements > 0 {
			bestAt = res.TimeToBest
		}
		ap.Members, ap.Elapsed = res.Members, bestAt

		return metrics.Run{Iterations: res.Iterations, Accepted: committed, Resets: res.Resets}, nil
	}
}
