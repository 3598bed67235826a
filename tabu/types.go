package tabu

import (
	"errors"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/pids/clock"
	"github.com/katalvlaran/pids/coverage"
)

var (
	// ErrNilState is returned when Search receives a nil *coverage.State.
	ErrNilState = errors.New("tabu: state is nil")

	// ErrObjective is returned when the starting State is not scored with coverage.Coverage.
	ErrObjective = errors.New("tabu: state must use the coverage objective")

	// ErrInvalidOptions reports a negative tenure, a non-positive size weight
	// or an iteration ceiling not above the tenure.
	ErrInvalidOptions = errors.New("tabu: invalid options")

	// ErrUnknownKeyPolicy is returned by ParseKeyPolicy for unrecognised names.
	ErrUnknownKeyPolicy = errors.New("tabu: unknown key policy")
)

// Defaults.
const (
	DefaultSizeWeight = 1000.0
	DefaultTimeLimit  = 600 * time.Second
	// scoreScale discretises objectives into KeyScore buckets.
	scoreScale = 1e6
)

// KeyPolicy decides which attribute of a move its tenure is recorded under.
type KeyPolicy uint8

const (
	// KeyNode forbids any move on the node (bucket 0 for both directions).
	KeyNode KeyPolicy = iota
	// KeyDirection forbids repeating the same kind of move on the node.
	KeyDirection
	// KeyScore forbids moves on the node that lead to the same objective value.
	KeyScore
)

// String implements fmt.Stringer.
func (p KeyPolicy) String() string {
	switch p {
	case KeyNode:
		return "node"
	case KeyDirection:
		return "direction"
	case KeyScore:
		return "score"
	default:
		return fmt.Sprintf("keypolicy(%d)", uint8(p))
	}
}

// ParseKeyPolicy maps "node", "direction" or "score" onto a KeyPolicy.
func ParseKeyPolicy(s string) (KeyPolicy, error) {
	switch s {
	case "", "node":
		return KeyNode, nil
	case "direction":
		return KeyDirection, nil
	case "score":
		return KeyScore, nil
	default:
		return 0, fmt.Errorf("ParseKeyPolicy: %q: %w", s, ErrUnknownKeyPolicy)
	}
}

// TenureKey identifies a forbidden move in tabu memory.
type TenureKey struct {
	Node   int
	Bucket int64
}

// Key returns the memory key of move m whose resulting objective is objective.
func (p KeyPolicy) Key(m coverage.Move, objective float64) TenureKey {
	node := m.In
	if m.Kind == coverage.MoveRemove {
		node = m.Out
	}
	switch p {
	case KeyDirection:
		return TenureKey{Node: node, Bucket: int64(m.Kind) + 1}
	case KeyScore:
		return TenureKey{Node: node, Bucket: int64(math.Round(objective * scoreScale))}
	default:
		return TenureKey{Node: node}
	}
}

// StopReason tells why Search returned.
type StopReason uint8

const (
	// StopTimeLimit: the clock passed TimeLimit.
	StopTimeLimit StopReason = iota
	// StopCancelled: the context was done.
	StopCancelled
	// StopMaxIterations: MaxIterations iterations ran.
	StopMaxIterations
	// StopNoMoves: no candidate exists and no tenure is still running.
	StopNoMoves
)

// String implements fmt.Stringer.
func (r StopReason) String() string {
	switch r {
	case StopTimeLimit:
		return "time limit"
	case StopCancelled:
		return "cancelled"
	case StopMaxIterations:
		return "max iterations"
	case StopNoMoves:
		return "no moves"
	default:
		return fmt.Sprintf("stop(%d)", uint8(r))
	}
}

// IterationInfo is passed to Options.OnIteration after every iteration.
type IterationInfo struct {
	// Iteration counts iterations since the start of the run.
	Iteration int64
	// Counter is the tenure counter, which restarts at 0 on a reset.
	Counter int64
	// Move is the committed move; Committed is false when nothing was admissible.
	Move      coverage.Move
	Committed bool
	// Aspiration reports that Move was tabu and admitted for beating the global best.
	Aspiration bool
	// Reset reports that tabu memory was cleared in this iteration.
	Reset bool
	// Objective is the current objective after the iteration.
	Objective float64
	// GlobalBest is the best objective seen so far and BestSize its |S|.
	GlobalBest float64
	BestSize   int
}

// Option configures Search.
type Option func(*Options)

// Options holds the parameters of Search.
type Options struct {
	// Tenure is how many iterations a committed move stays forbidden; 0 ⇒ n.
	Tenure int64
	// SizeWeight multiplies |S| in the objective. Default 1000.
	SizeWeight float64
	// KeyPolicy selects the tenure key. Default KeyNode.
	KeyPolicy KeyPolicy
	// IterationCeiling bounds the tenure counter; memory is cleared once the
	// counter reaches IterationCeiling−Tenure. Default math.MaxInt64.
	IterationCeiling int64
	// MaxIterations stops the run after that many iterations; 0 means unlimited.
	MaxIterations int64
	// TimeLimit is the budget measured by Clock; 0 disables it. Default 600s.
	TimeLimit time.Duration
	// Clock measures TimeLimit. Default: a fresh clock.NewCPU() per Search.
	Clock clock.Clock
	// Logger receives new global bests at Debug and resets at Info.
	Logger *zap.Logger
	// OnIteration, if non-nil, is called after every iteration.
	OnIteration func(IterationInfo)
}

// DefaultOptions returns tenure n, size weight 1000, KeyNode, no counter
// ceiling, no iteration cap, a 600s CPU-time budget and a no-op logger.
func DefaultOptions() Options {
	return Options{
		SizeWeight:       DefaultSizeWeight,
		KeyPolicy:        KeyNode,
		IterationCeiling: math.MaxInt64,
		TimeLimit:        DefaultTimeLimit,
		Logger:           zap.NewNop(),
	}
}

// WithTenure sets the tenure; 0 selects the node count.
func WithTenure(t int64) Option {
	return func(o *Options) { o.Tenure = t }
}

// WithSizeWeight sets the weight of |S| in the objective.
func WithSizeWeight(w float64) Option {
	return func(o *Options) { o.SizeWeight = w }
}

// WithKeyPolicy selects the tenure key policy.
func WithKeyPolicy(p KeyPolicy) Option {
	return func(o *Options) { o.KeyPolicy = p }
}

// WithIterationCeiling sets the tenure counter ceiling.
func WithIterationCeiling(c int64) Option {
	return func(o *Options) { o.IterationCeiling = c }
}

// WithMaxIterations caps the number of iterations.
func WithMaxIterations(n int64) Option {
	return func(o *Options) { o.MaxIterations = n }
}

// WithTimeLimit sets the time budget; 0 disables it.
func WithTimeLimit(d time.Duration) Option {
	return func(o *Options) { o.TimeLimit = d }
}

// WithClock sets the clock measuring the time budget. Panics on nil.
func WithClock(c clock.Clock) Option {
	if c == nil {
		panic("tabu: WithClock(nil)")
	}

	return func(o *Options) { o.Clock = c }
}

// WithLogger sets the logger; nil keeps the default.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithIterationHook installs a per-iteration observer.
func WithIterationHook(fn func(IterationInfo)) Option {
	return func(o *Options) { o.OnIteration = fn }
}

// Result is the outcome of Search. The State passed in is left holding the
// global best.
type Result struct {
	Members   []int
	Objective float64
	Feasible  bool
	// Iterations run, global-best improvements and tenure counter resets.
	Iterations   int64
	Improvements int
	Resets       int
	Stop         StopReason
	// Elapsed is the clock reading at return; TimeToBest when the global best was found.
	Elapsed    time.Duration
	TimeToBest time.Duration
}

// validate resolves the effective tenure and checks o against it.
func validate(o Options, n int) (tenure int64, err error) {
	tenure = o.Tenure
	if tenure == 0 {
		tenure = int64(n)
	}
	switch {
	case tenure < 0:
		return 0, fmt.Errorf("%s: tenure %d: %w", methodSearch, o.Tenure, ErrInvalidOptions)
	case !(o.SizeWeight > 0):
		return 0, fmt.Errorf("%s: size weight %v: %w", methodSearch, o.SizeWeight, ErrInvalidOptions)
	case o.IterationCeiling <= tenure:
		return 0, fmt.Errorf("%s: iteration ceiling %d ≤ tenure %d: %w", methodSearch, o.IterationCeiling, tenure, ErrInvalidOptions)
	case o.KeyPolicy > KeyScore:
		return 0, fmt.Errorf("%s: %v: %w", methodSearch, o.KeyPolicy, ErrUnknownKeyPolicy)
	}

	return tenure, nil
}
