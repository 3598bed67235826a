package localsearch

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/pids/coverage"
)

var (
	// ErrNilState is returned when a search receives a nil *coverage.State.
	ErrNilState = errors.New("localsearch: state is nil")

	// ErrInvalidSchedule indicates an unusable annealing schedule:
	// non-positive temperatures, cooling outside (0,1) or no inner iterations.
	ErrInvalidSchedule = errors.New("localsearch: invalid annealing schedule")

	// ErrUnknownAcceptance is returned by ParseAcceptance for unrecognised names.
	ErrUnknownAcceptance = errors.New("localsearch: unknown acceptance rule")
)

// Annealing schedule defaults.
const (
	DefaultInitialTemp       = 1.0
	DefaultMinTemp           = 1e-4
	DefaultCooling           = 0.95
	DefaultIterationsPerTemp = 1000
)

// Acceptance selects the probability of keeping a non-improving move.
type Acceptance uint8

const (
	// AcceptLiteral uses exp(curr − cand/T): only the candidate is scaled.
	AcceptLiteral Acceptance = iota
	// AcceptMetropolis uses exp((curr − cand)/T).
	AcceptMetropolis
)

// String implements fmt.Stringer.
func (a Acceptance) String() string {
	switch a {
	case AcceptLiteral:
		return "literal"
	case AcceptMetropolis:
		return "metropolis"
	default:
		return fmt.Sprintf("acceptance(%d)", uint8(a))
	}
}

// ParseAcceptance maps "literal" / "metropolis" onto an Acceptance.
func ParseAcceptance(s string) (Acceptance, error) {
	switch s {
	case "", "literal":
		return AcceptLiteral, nil
	case "metropolis":
		return AcceptMetropolis, nil
	default:
		return 0, fmt.Errorf("ParseAcceptance: %q: %w", s, ErrUnknownAcceptance)
	}
}

// Status is the hill-climbing phase at return.
type Status uint8

const (
	// Exploring: stopped by MaxSteps or cancellation with improving moves possibly left.
	Exploring Status = iota
	// Converged: no neighbour strictly improves the score.
	Converged
)

// String implements fmt.Stringer.
func (s Status) String() string {
	if s == Converged {
		return "converged"
	}

	return "exploring"
}

// Step describes one committed hill-climbing move.
type Step struct {
	Step  int
	Move  coverage.Move
	Score float64
}

// Decision describes one annealing iteration. Applied is false when the
// drawn operator was rejected by the State; Accepted reports whether the
// chain kept the move. Score is the chain's score after the decision.
type Decision struct {
	Iteration   int
	Temperature float64
	Move        coverage.Move
	Applied     bool
	Accepted    bool
	Score       float64
}

// Option configures HillClimb and Anneal.
type Option func(*Options)

// Options holds the parameters of both searches; each ignores fields it does not use.
type Options struct {
	// Ctx cancels the search; the best-known result is returned with ctx.Err().
	Ctx context.Context
	// Logger receives Debug lines on termination. Default zap.NewNop().
	Logger *zap.Logger

	// MaxSteps caps hill-climbing moves; 0 means unlimited.
	MaxSteps int
	// OnStep, if non-nil, is called after every committed hill-climbing move.
	OnStep func(Step)

	// Annealing schedule: T starts at InitialTemp, is multiplied by Cooling
	// after IterationsPerTemp iterations and the run ends once T ≤ MinTemp.
	InitialTemp       float64
	MinTemp           float64
	Cooling           float64
	IterationsPerTemp int
	// Acceptance selects the worsening-move probability. Default AcceptLiteral.
	Acceptance Acceptance
	// Source supplies random draws. Default NewSource(0).
	Source Source
	// OnDecision, if non-nil, is called after every annealing iteration.
	OnDecision func(Decision)
}

// DefaultOptions returns background context, a no-op logger, unlimited
// hill climbing and the standard annealing schedule (1 → 1e-4, ×0.95 per
// 1000 iterations) with literal acceptance and a default-seeded Source.
func DefaultOptions() Options {
	return Options{
		Ctx:               context.Background(),
		Logger:            zap.NewNop(),
		InitialTemp:       DefaultInitialTemp,
		MinTemp:           DefaultMinTemp,
		Cooling:           DefaultCooling,
		IterationsPerTemp: DefaultIterationsPerTemp,
		Acceptance:        AcceptLiteral,
	}
}

// WithContext sets the cancellation context.
func WithContext(ctx context.Context) Option {
	return func(o *Options) { o.Ctx = ctx }
}

// WithLogger sets the logger; nil keeps the default.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMaxSteps caps hill-climbing moves.
func WithMaxSteps(n int) Option {
	return func(o *Options) { o.MaxSteps = n }
}

// WithStepHook installs a hill-climbing move observer.
func WithStepHook(fn func(Step)) Option {
	return func(o *Options) { o.OnStep = fn }
}

// WithSchedule replaces the annealing schedule.
func WithSchedule(initialTemp, minTemp, cooling float64, iterationsPerTemp int) Option {
	return func(o *Options) {
		o.InitialTemp = initialTemp
		o.MinTemp = minTemp
		o.Cooling = cooling
		o.IterationsPerTemp = iterationsPerTemp
	}
}

// WithAcceptance selects the acceptance rule.
func WithAcceptance(a Acceptance) Option {
	return func(o *Options) { o.Acceptance = a }
}

// WithSource sets the random source. Panics on nil.
func WithSource(src Source) Option {
	if src == nil {
		panic("localsearch: WithSource(nil)")
	}

	return func(o *Options) { o.Source = src }
}

// WithSeed installs NewSource(seed).
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Source = NewSource(seed) }
}

// WithDecisionHook installs an annealing decision observer.
func WithDecisionHook(fn func(Decision)) Option {
	return func(o *Options) { o.OnDecision = fn }
}

// Result is the outcome of a search. The State passed in is left holding
// the returned solution.
type Result struct {
	Members  []int
	Score    float64
	Feasible bool
	// Steps counts committed hill-climbing moves or annealing iterations.
	Steps int
	// Accepted counts annealing moves kept by the chain.
	Accepted int
	// Status is the hill-climbing phase; Converged for a finished annealing run.
	Status Status
	// FinalTemp is the annealing temperature at return.
	FinalTemp float64
}

func resultOf(s *coverage.State) Result {
	return Result{
		Members:  s.Members(),
		Score:    s.Score(),
		Feasible: s.Feasible(),
	}
}
