package localsearch_test

import (
	"testing"

	"github.com/katalvlaran/pids/builder"
	"github.com/katalvlaran/pids/greedy"
	"github.com/katalvlaran/pids/localsearch"
)

func BenchmarkAnneal_Random300(b *testing.B) {
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(9)}, builder.RandomSparse(300, 0.03))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		start, err := greedy.Construct(g)
		if err != nil {
			b.Fatal(err)
		}
		if _, err = localsearch.Anneal(start.State, localsearch.WithSeed(int64(i)), localsearch.WithSchedule(1, 0.01, 0.9, 500)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkHillClimb_Random300(b *testing.B) {
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(9)}, builder.RandomSparse(300, 0.03))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		start, err := greedy.Construct(g)
		if err != nil {
			b.Fatal(err)
		}
		if _, err = localsearch.HillClimb(start.State); err != nil {
			b.Fatal(err)
		}
	}
}
