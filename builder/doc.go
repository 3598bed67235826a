// Package builder provides deterministic topology generators that produce
// immutable *graph.Graph instances for PIDS experiments, fixtures and
// benchmarks.
//
// The package offers:
//
//   - One orchestrator: BuildGraph(opts, cons...) resolves a builderConfig and
//     runs every Constructor in order against a shared edge accumulator.
//   - Topologies: Cycle, Path, Star, Wheel, Complete, CompleteBipartite,
//     Grid, RandomSparse.
//   - Options: WithSeed / WithRand for stochastic constructors, WithDisjoint to
//     place each constructor on fresh vertex indices (disjoint union) instead
//     of overlaying them on 0..n-1.
//
// Guarantees:
//
//   - Determinism: same options, seed and constructor order ⇒ identical graphs.
//   - Structured errors: sentinels (ErrTooFewVertices, ErrInvalidProbability,
//     ErrNeedRandSource, ErrConstructFailed) wrapped with the constructor name.
//   - Option constructors panic on meaningless input; constructors never panic.
//
// Vertex layout per topology (relative to the constructor's base index):
//
//	Cycle(n)               0-1-…-(n-1)-0
//	Path(n)                0-1-…-(n-1)
//	Star(n)                center 0, leaves 1..n-1
//	Wheel(n)               hub 0, rim 1..n-1 as a cycle
//	Complete(n)            all pairs
//	CompleteBipartite(a,b) left 0..a-1, right a..a+b-1
//	Grid(r,c)              row-major r*c, 4-neighbourhood
//	RandomSparse(n,p)      each pair i<j independently with probability p
package builder
