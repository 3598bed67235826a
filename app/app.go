package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/pids/clock"
	"github.com/katalvlaran/pids/config"
	"github.com/katalvlaran/pids/coverage"
	"github.com/katalvlaran/pids/graph"
	"github.com/katalvlaran/pids/localsearch"
	"github.com/katalvlaran/pids/metrics"
	"github.com/katalvlaran/pids/stats"
	"github.com/katalvlaran/pids/tabu"
)

// ErrUnknownStrategy is returned for a strategy name outside greedy, hill, anneal, tabu.
var ErrUnknownStrategy = errors.New("app: unknown strategy")

// App runs the configured strategy. It is not safe for concurrent use.
type App struct {
	cfg      config.Config
	log      *zap.Logger
	metrics  *metrics.Recorder
	out      io.Writer
	newClock func() clock.Clock
	src      localsearch.Source

	acceptance localsearch.Acceptance
	keyPolicy  tabu.KeyPolicy
}

// Option configures an App.
type Option func(*App)

// WithLogger sets the logger; nil keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(a *App) {
		if l != nil {
			a.log = l
		}
	}
}

// WithMetrics attaches a Prometheus recorder.
func WithMetrics(m *metrics.Recorder) Option {
	return func(a *App) { a.metrics = m }
}

// WithOutput redirects the report. Default os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(a *App) { a.out = w }
}

// WithClock replaces the per-application clock factory.
func WithClock(fn func() clock.Clock) Option {
	return func(a *App) { a.newClock = fn }
}

// New validates cfg and returns an App.
func New(cfg config.Config, opts ...Option) (*App, error) {
	switch cfg.Strategy {
	case config.StrategyGreedy, config.StrategyHill, config.StrategyAnneal, config.StrategyTabu:
	default:
		return nil, fmt.Errorf("New: %q: %w", cfg.Strategy, ErrUnknownStrategy)
	}
	acc, err := localsearch.ParseAcceptance(cfg.Anneal.Acceptance)
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	kp, err := tabu.ParseKeyPolicy(cfg.Tabu.KeyPolicy)
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}

	a := &App{
		cfg:        cfg,
		log:        zap.NewNop(),
		out:        os.Stdout,
		src:        localsearch.NewSource(cfg.Seed),
		acceptance: acc,
		keyPolicy:  kp,
	}
	kind := clock.Kind(cfg.Tabu.Clock)
	a.newClock = func() clock.Clock { return clock.New(kind) }
	for _, opt := range opts {
		opt(a)
	}

	return a, nil
}

// Application is the outcome of one application.
type Application struct {
	ID       uuid.UUID
	Index    int
	Members  []int
	Size     int
	Feasible bool
	// Uncovered lists vertices failing their threshold on a from-scratch check.
	Uncovered []int
	Elapsed   time.Duration
}

// Report collects every application and their summary.
type Report struct {
	Strategy     string
	Nodes        int
	Edges        int
	Applications []Application
	Summary      stats.Summary
}

// Run loads cfg.Input and runs it.
func (a *App) Run(ctx context.Context) (Report, error) {
	g, err := graph.LoadFile(a.cfg.Input)
	if err != nil {
		return Report{}, fmt.Errorf("Run: %w", err)
	}
	a.log.Info("instance loaded",
		zap.String("input", a.cfg.Input),
		zap.Int("nodes", g.NodeCount()),
		zap.Int("edges", g.EdgeCount()),
		zap.Int("components", len(g.Components())),
		zap.Int("isolated", g.IsolatedCount()),
	)

	return a.RunGraph(ctx, g)
}

// RunGraph runs cfg.Apps applications of the configured strategy on g,
// printing the report as it goes.
func (a *App) RunGraph(ctx context.Context, g *graph.Graph) (Report, error) {
	rep := Report{Strategy: a.cfg.Strategy, Nodes: g.NodeCount(), Edges: g.EdgeCount()}

	var (
		run runner
		err error
	)
	switch a.cfg.Strategy {
	case config.StrategyGreedy:
		run = a.greedyRunner(g)
	case config.StrategyHill, config.StrategyAnneal:
		run, err = a.localRunner(ctx, g)
	case config.StrategyTabu:
		run = a.tabuRunner(g)
	default:
		err = fmt.Errorf("RunGraph: %q: %w", a.cfg.Strategy, ErrUnknownStrategy)
	}
	if err != nil {
		return rep, err
	}

	sizes := make([]int, 0, a.cfg.Apps)
	times := make([]time.Duration, 0, a.cfg.Apps)
	for i := 0; i < a.cfg.Apps; i++ {
		if err = ctx.Err(); err != nil {
			return rep, err
		}
		ap := Application{ID: uuid.New(), Index: i + 1}
		log := a.log.With(zap.String("run_id", ap.ID.String()), zap.Int("application", ap.Index))
		fmt.Fprintf(a.out, "start application %d\n", ap.Index)

		obs, runErr := run(ctx, &ap, log)
		if runErr != nil {
			return rep, fmt.Errorf("RunGraph: application %d: %w", ap.Index, runErr)
		}
		ap.Size = len(ap.Members)
		ap.Uncovered = coverage.Verify(g, ap.Members)
		ap.Feasible = len(ap.Uncovered) == 0

		a.printApplication(ap)
		obs.Strategy, obs.Feasible, obs.Size, obs.Duration = a.cfg.Strategy, ap.Feasible, ap.Size, ap.Elapsed
		a.metrics.Observe(obs)
		log.Info("application finished",
			zap.Int("size", ap.Size),
			zap.Bool("feasible", ap.Feasible),
			zap.Duration("elapsed", ap.Elapsed),
		)

		rep.Applications = append(rep.Applications, ap)
		sizes = append(sizes, ap.Size)
		times = append(times, ap.Elapsed)
	}

	if rep.Summary, err = stats.Summarize(sizes, times); err != nil {
		return rep, fmt.Errorf("RunGraph: %w", err)
	}
	fmt.Fprintln(a.out, rep.Summary.String())

	return rep, nil
}
