package stats_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pids/stats"
)

func TestSummarize(t *testing.T) {
	sum, err := stats.Summarize(
		[]int{6, 8, 7, 7},
		[]time.Duration{time.Second, 3 * time.Second, 2 * time.Second, 2 * time.Second},
	)
	require.NoError(t, err)

	assert.Equal(t, 4, sum.N)
	assert.Equal(t, 6, sum.Best)
	assert.InDelta(t, 7.0, sum.Mean, 1e-12)
	assert.InDelta(t, 0.7071067811865476, sum.SD, 1e-12)
	assert.InDelta(t, 2.0, sum.TimeMean, 1e-12)
	assert.InDelta(t, 0.7071067811865476, sum.TimeSD, 1e-12)
	assert.Equal(t, "6\t7.00\t0.71\t2.00\t0.71", sum.String())
}

func TestSummarize_SingleSample(t *testing.T) {
	sum, err := stats.Summarize([]int{5}, []time.Duration{1500 * time.Millisecond})
	require.NoError(t, err)
	assert.Equal(t, "5\t5.00\t0.00\t1.50\t0.00", sum.String())
}

func TestSummarize_Errors(t *testing.T) {
	_, err := stats.Summarize(nil, nil)
	assert.ErrorIs(t, err, stats.ErrEmpty)

	_, err = stats.Summarize([]int{1, 2}, []time.Duration{time.Second})
	assert.ErrorIs(t, err, stats.ErrLengthMismatch)
}
