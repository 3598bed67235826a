package localsearch_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pids/builder"
	"github.com/katalvlaran/pids/coverage"
	"github.com/katalvlaran/pids/greedy"
	"github.com/katalvlaran/pids/localsearch"
)

// scripted replays fixed draws.
type scripted struct {
	vals []float64
	i    int
}

func (s *scripted) Next() float64 {
	v := s.vals[s.i]
	s.i++

	return v
}

func TestAnneal_NilState(t *testing.T) {
	_, err := localsearch.Anneal(nil)
	assert.ErrorIs(t, err, localsearch.ErrNilState)
}

func TestAnneal_InvalidSchedule(t *testing.T) {
	s := emptyState(t, builder.Cycle(6))
	cases := []struct {
		name string
		opt  localsearch.Option
	}{
		{"zero initial", localsearch.WithSchedule(0, 1e-4, 0.95, 10)},
		{"zero min", localsearch.WithSchedule(1, 0, 0.95, 10)},
		{"cooling one", localsearch.WithSchedule(1, 1e-4, 1, 10)},
		{"no iterations", localsearch.WithSchedule(1, 1e-4, 0.9, 0)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := localsearch.Anneal(s, tc.opt)
			assert.ErrorIs(t, err, localsearch.ErrInvalidSchedule)
		})
	}

	_, err := localsearch.Anneal(s, localsearch.WithAcceptance(localsearch.Acceptance(9)))
	assert.ErrorIs(t, err, localsearch.ErrUnknownAcceptance)
}

func TestAnneal_ScriptedDecisions(t *testing.T) {
	s := emptyState(t, builder.Path(4))
	// add(1) improves and is kept without a draw; remove(1) worsens to 16,
	// exp(10-16) ≈ 0.0025 < 0.9 so it is undone.
	src := &scripted{vals: []float64{0.1, 0.3, 0.5, 0.3, 0.9}}

	var got []localsearch.Decision
	res, err := localsearch.Anneal(s,
		localsearch.WithSource(src),
		localsearch.WithSchedule(1, 0.5, 0.5, 2),
		localsearch.WithDecisionHook(func(d localsearch.Decision) { got = append(got, d) }),
	)
	require.NoError(t, err)

	assert.Equal(t, []localsearch.Decision{
		{Iteration: 1, Temperature: 1, Move: coverage.Add(1), Applied: true, Accepted: true, Score: 10},
		{Iteration: 2, Temperature: 1, Move: coverage.Remove(1), Applied: true, Accepted: false, Score: 10},
	}, got)
	assert.Equal(t, 5, src.i)
	assert.Equal(t, []int{1}, res.Members)
	assert.Equal(t, 10.0, res.Score)
	assert.Equal(t, 2, res.Steps)
	assert.Equal(t, 1, res.Accepted)
	assert.Equal(t, 0.5, res.FinalTemp)
	assert.Equal(t, []int{1}, s.Members())
}

func TestAnneal_RejectedOperatorConsumesNoAcceptanceDraw(t *testing.T) {
	s := emptyState(t, builder.Path(4))
	// remove(2) on the empty set is rejected: two draws only.
	src := &scripted{vals: []float64{0.5, 0.6}}

	var got []localsearch.Decision
	_, err := localsearch.Anneal(s,
		localsearch.WithSource(src),
		localsearch.WithSchedule(1, 0.5, 0.5, 1),
		localsearch.WithDecisionHook(func(d localsearch.Decision) { got = append(got, d) }),
	)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.False(t, got[0].Applied)
	assert.Equal(t, coverage.Remove(2), got[0].Move)
	assert.Equal(t, 2, src.i)
}

func TestAnneal_ReturnsBestSeen(t *testing.T) {
	for _, rule := range []localsearch.Acceptance{localsearch.AcceptLiteral, localsearch.AcceptMetropolis} {
		t.Run(rule.String(), func(t *testing.T) {
			g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(21)}, builder.RandomSparse(25, 0.2))
			require.NoError(t, err)
			start, err := greedy.Construct(g)
			require.NoError(t, err)

			s := start.State
			minSeen := s.Score()
			res, err := localsearch.Anneal(s,
				localsearch.WithSeed(5),
				localsearch.WithAcceptance(rule),
				localsearch.WithSchedule(1, 0.01, 0.8, 200),
				localsearch.WithDecisionHook(func(d localsearch.Decision) {
					if d.Score < minSeen {
						minSeen = d.Score
					}
				}),
			)
			require.NoError(t, err)
			assert.Equal(t, minSeen, res.Score)
			assert.Equal(t, res.Score, s.Score())
			assert.Equal(t, res.Members, s.Members())
			assert.Equal(t, localsearch.Converged, res.Status)
		})
	}
}

func TestAnneal_DeterministicOnCycle(t *testing.T) {
	run := func() ([]localsearch.Decision, localsearch.Result) {
		s := emptyState(t, builder.Cycle(6))
		var trace []localsearch.Decision
		res, err := localsearch.Anneal(s,
			localsearch.WithSeed(42),
			localsearch.WithDecisionHook(func(d localsearch.Decision) { trace = append(trace, d) }),
		)
		require.NoError(t, err)

		return trace, res
	}

	first, firstRes := run()
	require.NotEmpty(t, first)
	var kept, undone int
	for _, d := range first {
		if d.Applied && d.Accepted {
			kept++
		}
		if d.Applied && !d.Accepted {
			undone++
		}
	}
	assert.Positive(t, kept)
	assert.Positive(t, undone)

	for i := 0; i < 2; i++ {
		again, againRes := run()
		assert.Equal(t, first, again)
		assert.Equal(t, firstRes, againRes)
	}
}

func TestAnneal_Cancelled(t *testing.T) {
	s := emptyState(t, builder.Cycle(6))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := localsearch.Anneal(s, localsearch.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, localsearch.Exploring, res.Status)
	assert.Zero(t, res.Steps)
	assert.Empty(t, res.Members)
}

func TestParseAcceptance(t *testing.T) {
	a, err := localsearch.ParseAcceptance("metropolis")
	require.NoError(t, err)
	assert.Equal(t, localsearch.AcceptMetropolis, a)

	a, err = localsearch.ParseAcceptance("")
	require.NoError(t, err)
	assert.Equal(t, localsearch.AcceptLiteral, a)

	_, err = localsearch.ParseAcceptance("boltzmann")
	assert.ErrorIs(t, err, localsearch.ErrUnknownAcceptance)
}

func TestNewSource_OpenInterval(t *testing.T) {
	src := localsearch.NewSource(0)
	same := localsearch.NewSource(1)
	for i := 0; i < 1000; i++ {
		x := src.Next()
		require.Greater(t, x, 0.0)
		require.Less(t, x, 1.0)
		require.Equal(t, x, same.Next(), "seed 0 falls back to the default seed")
	}
}
