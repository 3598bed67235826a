package coverage_test

import (
	"testing"

	"github.com/katalvlaran/pids/builder"
	"github.com/katalvlaran/pids/coverage"
)

func benchmarkOperators(b *testing.B, obj coverage.Objective) {
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(42)}, builder.RandomSparse(2000, 0.005))
	if err != nil {
		b.Fatal(err)
	}
	s, err := coverage.New(g, obj)
	if err != nil {
		b.Fatal(err)
	}
	n := g.NodeCount()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v := i % n
		s.TryAdd(v)
		s.TryRemove(v)
	}
}

func BenchmarkAddRemove_Deficit(b *testing.B)  { benchmarkOperators(b, coverage.Deficit) }
func BenchmarkAddRemove_Coverage(b *testing.B) { benchmarkOperators(b, coverage.Coverage) }
