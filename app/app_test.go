package app_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pids/app"
	"github.com/katalvlaran/pids/clock"
	"github.com/katalvlaran/pids/config"
	"github.com/katalvlaran/pids/graph"
	"github.com/katalvlaran/pids/metrics"
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

func frozen() clock.Clock {
	return clock.Func(func() time.Duration { return 0 })
}

func writeInstance(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ten.txt")
	require.NoError(t, os.WriteFile(path, []byte(tenNodeInstance), 0o600))

	return path
}

func newConfig(t *testing.T, strategy string, apps int) config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Input = writeInstance(t)
	cfg.Strategy = strategy
	cfg.Apps = apps
	cfg.TimeLimit = 0
	cfg.Tabu.MaxIterations = 50
	cfg.Anneal.MinTemp = 0.01
	cfg.Anneal.Cooling = 0.8
	cfg.Anneal.IterationsPerTemp = 200
	require.NoError(t, cfg.Validate())

	return cfg
}

func run(t *testing.T, cfg config.Config, opts ...app.Option) (app.Report, string) {
	t.Helper()
	var out bytes.Buffer
	opts = append([]app.Option{app.WithOutput(&out), app.WithClock(frozen)}, opts...)
	a, err := app.New(cfg, opts...)
	require.NoError(t, err)

	rep, err := a.Run(context.Background())
	require.NoError(t, err)

	return rep, out.String()
}

func TestRun_GreedyReport(t *testing.T) {
	rep, out := run(t, newConfig(t, config.StrategyGreedy, 2))

	want := strings.Join([]string{
		"start application 1",
		"verified yes",
		"\tnodes 6",
		"\ttime 0.00",
		"end application 1",
		"start application 2",
		"verified yes",
		"\tnodes 6",
		"\ttime 0.00",
		"end application 2",
		"6\t6.00\t0.00\t0.00\t0.00",
		"",
	}, "\n")
	assert.Equal(t, want, out)
	assert.Equal(t, 10, rep.Nodes)
	assert.Equal(t, 10, rep.Edges)
	require.Len(t, rep.Applications, 2)
	assert.NotEqual(t, rep.Applications[0].ID, rep.Applications[1].ID)
}

func TestRun_HillReport(t *testing.T) {
	rep, out := run(t, newConfig(t, config.StrategyHill, 1))

	assert.Equal(t, "start application 1\ngreedy 6\nverified yes\n\tnodes 6\n\ttime 0.00\nend application 1\n6\t6.00\t0.00\t0.00\t0.00\n", out)
	assert.Equal(t, []int{0, 1, 2, 3, 6, 7}, rep.Applications[0].Members)
}

func TestRun_TabuReport(t *testing.T) {
	rep, out := run(t, newConfig(t, config.StrategyTabu, 1))

	assert.Equal(t, "start application 1\ngreedy 6\nverified yes\n\tnodes 6\n\ttime 0.00\nend application 1\n6\t6.00\t0.00\t0.00\t0.00\n", out)
	assert.True(t, rep.Applications[0].Feasible)
}

func TestRun_AnnealReproducibleWithSeed(t *testing.T) {
	cfg := newConfig(t, config.StrategyAnneal, 3)
	cfg.Seed = 99

	first, _ := run(t, cfg)
	second, _ := run(t, cfg)
	require.Len(t, first.Applications, 3)
	for i := range first.Applications {
		assert.Equal(t, first.Applications[i].Members, second.Applications[i].Members)
		assert.Empty(t, first.Applications[i].Uncovered)
	}
	assert.Equal(t, first.Summary, second.Summary)
}

func TestRun_RecordsMetrics(t *testing.T) {
	rec, err := metrics.New()
	require.NoError(t, err)
	run(t, newConfig(t, config.StrategyGreedy, 3), app.WithMetrics(rec))

	expected := `
# HELP pids_applications_total Completed search applications
# TYPE pids_applications_total counter
pids_applications_total{outcome="feasible",strategy="greedy"} 3
`
	assert.NoError(t, testutil.GatherAndCompare(rec.Gatherer(), strings.NewReader(expected), "pids_applications_total"))
}

func TestNew_UnknownStrategy(t *testing.T) {
	cfg := config.Default()
	cfg.Strategy = "genetic"

	_, err := app.New(cfg)
	assert.ErrorIs(t, err, app.ErrUnknownStrategy)
}

func TestRun_MissingInput(t *testing.T) {
	cfg := newConfig(t, config.StrategyGreedy, 1)
	cfg.Input = filepath.Join(t.TempDir(), "absent.txt")
	a, err := app.New(cfg, app.WithOutput(&bytes.Buffer{}))
	require.NoError(t, err)

	_, err = a.Run(context.Background())
	assert.ErrorIs(t, err, graph.ErrFileUnavailable)
}

func TestRun_Cancelled(t *testing.T) {
	a, err := app.New(newConfig(t, config.StrategyTabu, 2), app.WithOutput(&bytes.Buffer{}))
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = a.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewLogger(t *testing.T) {
	l, err := app.NewLogger(config.Log{Level: "debug", Format: "json"})
	require.NoError(t, err)
	assert.NotNil(t, l)

	_, err = app.NewLogger(config.Log{Level: "loud", Format: "console"})
	assert.Error(t, err)
}
