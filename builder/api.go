// SPDX-License-Identifier: MIT
// Package: pids/builder
//
// api.go - public entry point for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Resolves cfg, runs cons in order,
//     freezes the accumulated edges into an immutable *graph.Graph.
//   - Topology factories are implemented in impl_*.go.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pids/graph"
)

// Constructor appends a topology to the sink using the resolved builderConfig.
// Constructors MUST validate parameters early, return sentinel errors and
// emit edges in a stable, documented order.
type Constructor func(s *sink, cfg builderConfig) error

// BuildGraph resolves the builder configuration from bopts, applies all
// constructors in order and returns the resulting graph.
//
// Errors: constructor errors wrapped as "BuildGraph: %w"; callers should
// branch with errors.Is against the builder sentinels.
//
// Complexity: Σ cost of constructors + O(n + m log m) for graph.New.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*graph.Graph, error) {
	cfg := newBuilderConfig(bopts...)
	s := &sink{}

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if cfg.disjoint {
			s.base = s.n
		}
		if err := fn(s, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	g, err := graph.New(s.n, s.edges)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %v: %w", err, ErrConstructFailed)
	}

	return g, nil
}
