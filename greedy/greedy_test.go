package greedy_test

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

func loadTenNode(t *testing.T) *graph.Graph {
	t.Helper()
	g, err := graph.Read(strings.NewReader(tenNodeInstance))
	require.NoError(t, err)

	return g
}

func TestConstruct_NilGraph(t *testing.T) {
	_, err := greedy.Construct(nil)
	assert.ErrorIs(t, err, greedy.ErrNilGraph)
}

func TestConstruct_TenNodeInstance(t *testing.T) {
	g := loadTenNode(t)

	res, err := greedy.Construct(g)
	require.NoError(t, err)
	assert.True(t, res.Feasible)
	assert.Empty(t, res.Unfixable)
	// Insertion order: 2, 6, 0, 7, 1, 3.
	assert.Equal(t, []int{0, 1, 2, 3, 6, 7}, res.Members)
	assert.Equal(t, 6, res.Insertions)
	assert.Nil(t, coverage.Verify(g, res.Members))
	assert.Equal(t, 13.0, res.State.Score())
}

func TestConstruct_Deterministic(t *testing.T) {
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(17)}, builder.RandomSparse(120, 0.05))
	require.NoError(t, err)

	first, err := greedy.Construct(g)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		again, err := greedy.Construct(g)
		require.NoError(t, err)
		assert.Equal(t, first.Members, again.Members)
	}
}

func TestConstruct_FeasibleOnTopologies(t *testing.T) {
	cases := []struct {
		name string
		cons builder.Constructor
	}{
		{"cycle", builder.Cycle(9)},
		{"path", builder.Path(7)},
		{"star", builder.Star(6)},
		{"wheel", builder.Wheel(8)},
		{"complete", builder.Complete(7)},
		{"bipartite", builder.CompleteBipartite(3, 5)},
		{"grid", builder.Grid(4, 5)},
		{"random", builder.RandomSparse(80, 0.1)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(3)}, tc.cons)
			require.NoError(t, err)

			res, err := greedy.Construct(g, greedy.WithPrune())
			require.NoError(t, err)
			require.True(t, res.Feasible)
			assert.Nil(t, coverage.Verify(g, res.Members))
			for _, v := range res.Members {
				assert.Falsef(t, res.State.CanRemove(v), "member %d still removable after pruning", v)
			}
		})
	}
}

func TestConstruct_IsolatedVerticesNeedNothing(t *testing.T) {
	g, err := graph.New(5, []graph.Edge{{U: 0, V: 1}})
	require.NoError(t, err)

	res, err := greedy.Construct(g)
	require.NoError(t, err)
	assert.True(t, res.Feasible)
	assert.Equal(t, []int{0, 1}, res.Members)
}

func TestConstruct_ObjectiveOption(t *testing.T) {
	g := loadTenNode(t)

	res, err := greedy.Construct(g, greedy.WithObjective(coverage.Coverage))
	require.NoError(t, err)
	assert.Equal(t, coverage.Coverage, res.State.Objective())
	assert.InDelta(t, res.State.CoverageRatio(), res.State.Score(), 0)
}

func TestConstruct_Cancelled(t *testing.T) {
	g := loadTenNode(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := greedy.Construct(g, greedy.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, res.Feasible)
	assert.Empty(t, res.Members)
}

func TestPrune(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Star(5))
	require.NoError(t, err)
	s, err := coverage.FromMembers(g, coverage.Deficit, []int{0, 1, 2, 3, 4})
	require.NoError(t, err)

	// Leaves 1 and 2 go; then the center sits exactly at its threshold.
	assert.Equal(t, 2, greedy.Prune(s))
	assert.Equal(t, []int{0, 3, 4}, s.Members())
	assert.True(t, s.Feasible())
	assert.Zero(t, greedy.Prune(nil))
}
