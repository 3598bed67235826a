// SPDX-License-Identifier: MIT
// Package: pids/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng      = nil    (pure/deterministic unless seeded)
//   • disjoint = false  (constructors overlay vertices 0..n-1)

package builder

import (
	"math/rand"

	"github.com/katalvlaran/pids/graph"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// disjoint places every constructor on fresh indices.
	disjoint bool
}

// newBuilderConfig applies options in order (last wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// sink accumulates vertices and edges across constructors. base is the index
// that the running constructor treats as its local vertex 0.
type sink struct {
	n     int
	base  int
	edges []graph.Edge
}

// grow makes sure local vertices 0..k-1 exist.
func (s *sink) grow(k int) {
	if s.base+k > s.n {
		s.n = s.base + k
	}
}

// link records an undirected edge between local vertices u and v.
func (s *sink) link(u, v int) {
	s.edges = append(s.edges, graph.Edge{U: s.base + u, V: s.base + v})
}
