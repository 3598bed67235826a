package localsearch_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pids/builder"
	"github.com/katalvlaran/pids/coverage"
	"github.com/katalvlaran/pids/graph"
	"github.com/katalvlaran/pids/greedy"
	"github.com/katalvlaran/pids/localsearch"
)

const tenNodeInstance = `10 14
1 6
1 8
2 3
3 2
3 7
3 9
3 10
4 7
5 7
6 1
6 8
6 10
8 1
8 6
`

func emptyState(t *testing.T, cons builder.Constructor) *coverage.State {
	t.Helper()
	g, err := builder.BuildGraph(nil, cons)
	require.NoError(t, err)
	s, err := coverage.New(g, coverage.Deficit)
	require.NoError(t, err)

	return s
}

func TestHillClimb_NilState(t *testing.T) {
	_, err := localsearch.HillClimb(nil)
	assert.ErrorIs(t, err, localsearch.ErrNilState)
}

func TestHillClimb_PathTrace(t *testing.T) {
	s := emptyState(t, builder.Path(4))

	var steps []localsearch.Step
	res, err := localsearch.HillClimb(s, localsearch.WithStepHook(func(st localsearch.Step) {
		steps = append(steps, st)
	}))
	require.NoError(t, err)

	assert.Equal(t, localsearch.Converged, res.Status)
	assert.Equal(t, []localsearch.Step{
		{Step: 1, Move: coverage.Add(1), Score: 10},
		{Step: 2, Move: coverage.Add(2), Score: 4},
	}, steps)
	assert.Equal(t, []int{1, 2}, res.Members)
	assert.True(t, res.Feasible)
	assert.Equal(t, 2, res.Steps)
}

func TestHillClimb_MaxSteps(t *testing.T) {
	s := emptyState(t, builder.Path(4))

	res, err := localsearch.HillClimb(s, localsearch.WithMaxSteps(1))
	require.NoError(t, err)
	assert.Equal(t, localsearch.Exploring, res.Status)
	assert.Equal(t, []int{1}, res.Members)
	assert.Equal(t, 10.0, res.Score)
}

func TestHillClimb_Cancelled(t *testing.T) {
	s := emptyState(t, builder.Cycle(6))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := localsearch.HillClimb(s, localsearch.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, localsearch.Exploring, res.Status)
	assert.Empty(t, res.Members)
}

func TestHillClimb_LocalOptimality(t *testing.T) {
	for _, seed := range []int64{1, 2, 3} {
		g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(seed)}, builder.RandomSparse(30, 0.15))
		require.NoError(t, err)
		start, err := greedy.Construct(g)
		require.NoError(t, err)

		s := start.State
		initial := s.Score()
		res, err := localsearch.HillClimb(s)
		require.NoError(t, err)
		require.Equal(t, localsearch.Converged, res.Status)
		assert.LessOrEqual(t, res.Score, initial)

		members := s.Members()
		for i := 0; i < g.NodeCount(); i++ {
			if sc, ok := s.Probe(coverage.Add(i)); ok {
				assert.GreaterOrEqual(t, sc, res.Score)
			}
			if sc, ok := s.Probe(coverage.Remove(i)); ok {
				assert.GreaterOrEqual(t, sc, res.Score)
			}
			for _, out := range members {
				if sc, ok := s.Probe(coverage.Switch(out, i)); ok {
					assert.GreaterOrEqual(t, sc, res.Score)
				}
			}
		}
	}
}

func TestHillClimb_FeasibleStartStaysFeasible(t *testing.T) {
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(8)}, builder.RandomSparse(40, 0.1))
	require.NoError(t, err)
	start, err := greedy.Construct(g)
	require.NoError(t, err)
	require.True(t, start.Feasible)

	res, err := localsearch.HillClimb(start.State)
	require.NoError(t, err)
	assert.True(t, res.Feasible)
	assert.Nil(t, coverage.Verify(g, res.Members))
}

func TestEndToEnd_TenNodeGreedyThenHillClimb(t *testing.T) {
	run := func() localsearch.Result {
		g, err := graph.Read(strings.NewReader(tenNodeInstance))
		require.NoError(t, err)
		start, err := greedy.Construct(g)
		require.NoError(t, err)
		res, err := localsearch.HillClimb(start.State)
		require.NoError(t, err)
		require.Nil(t, coverage.Verify(g, res.Members))

		return res
	}

	first := run()
	assert.True(t, first.Feasible)
	assert.LessOrEqual(t, len(first.Members), 10)
	assert.Equal(t, localsearch.Converged, first.Status)
	// The greedy set already has the minimum degree mass for this instance.
	assert.Equal(t, []int{0, 1, 2, 3, 6, 7}, first.Members)
	assert.Equal(t, 13.0, first.Score)

	for i := 0; i < 3; i++ {
		assert.Equal(t, first, run())
	}
}
