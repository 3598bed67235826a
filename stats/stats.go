// Package stats aggregates the outcome of repeated search applications.
package stats

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrEmpty is returned when there is nothing to summarise.
var ErrEmpty = errors.New("stats: no samples")

// ErrLengthMismatch is returned when sizes and times differ in length.
var ErrLengthMismatch = errors.New("stats: sizes and times differ in length")

// Summary holds the best solution size and the mean and population
// standard deviation of sizes and of times (in seconds).
type Summary struct {
	N        int
	Best     int
	Mean     float64
	SD       float64
	TimeMean float64
	TimeSD   float64
}

// Summarize computes a Summary over one size and one time per application.
//
// Complexity: O(len(sizes)).
func Summarize(sizes []int, times []time.Duration) (Summary, error) {
	if len(sizes) == 0 {
		return Summary{}, ErrEmpty
	}
	if len(sizes) != len(times) {
		return Summary{}, fmt.Errorf("Summarize: %d sizes, %d times: %w", len(sizes), len(times), ErrLengthMismatch)
	}

	vals := make([]float64, len(sizes))
	secs := make([]float64, len(times))
	best := sizes[0]
	for i, s := range sizes {
		vals[i] = float64(s)
		secs[i] = times[i].Seconds()
		if s < best {
			best = s
		}
	}
	sum := Summary{N: len(sizes), Best: best}
	sum.Mean, sum.SD = meanSD(vals)
	sum.TimeMean, sum.TimeSD = meanSD(secs)

	return sum, nil
}

// meanSD returns the mean and the population standard deviation of xs.
func meanSD(xs []float64) (mean, sd float64) {
	for _, x := range xs {
		mean += x
	}
	mean /= float64(len(xs))
	for _, x := range xs {
		sd += (x - mean) * (x - mean)
	}
	sd /= float64(len(xs))

	return mean, math.Sqrt(sd)
}

// String renders the summary line: best as an integer, the rest with two decimals.
func (s Summary) String() string {
	return fmt.Sprintf("%d\t%.2f\t%.2f\t%.2f\t%.2f", s.Best, s.Mean, s.SD, s.TimeMean, s.TimeSD)
}
