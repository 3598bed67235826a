package greedy

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/katalvlaran/pids/coverage"
)

// ErrNilGraph is returned when Construct receives a nil graph.
var ErrNilGraph = errors.New("greedy: graph is nil")

// Option configures Construct.
type Option func(*Options)

// Options holds the parameters of Construct.
type Options struct {
	// Ctx cancels construction between insertions. Default context.Background().
	Ctx context.Context
	// Objective scores the returned State. Default coverage.Deficit.
	Objective coverage.Objective
	// Prune runs Prune on the constructed solution. Default false.
	Prune bool
	// Logger receives a Debug line per construction. Default zap.NewNop().
	Logger *zap.Logger
}

// DefaultOptions returns background context, deficit objective, no pruning
// and a no-op logger.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Objective: coverage.Deficit,
		Logger:    zap.NewNop(),
	}
}

// WithContext sets the cancellation context.
func WithContext(ctx context.Context) Option {
	return func(o *Options) { o.Ctx = ctx }
}

// WithObjective sets the scoring model of the returned State.
func WithObjective(obj coverage.Objective) Option {
	return func(o *Options) { o.Objective = obj }
}

// WithPrune enables minimal pruning after construction.
func WithPrune() Option {
	return func(o *Options) { o.Prune = true }
}

// WithLogger sets the logger; nil keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Result is the outcome of Construct.
type Result struct {
	// State holds the constructed solution, ready for local or tabu search.
	State *coverage.State
	// Members lists the selected vertices ascending.
	Members []int
	// Feasible reports whether every vertex meets its threshold.
	Feasible bool
	// Unfixable lists vertices that stayed under-covered with no insertable
	// neighbour left. Empty for every simple graph.
	Unfixable []int
	// Insertions counts greedy steps; Pruned counts members dropped by Prune.
	Insertions int
	Pruned     int
}
