// SPDX-License-Identifier: MIT
// Package: pids/builder
//
// impl_cycle.go — Cycle(n).
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Emits edges i—(i+1)%n for i=0..n-1.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import "fmt"

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds the simple cycle C_n.
func Cycle(n int) Constructor {
	return func(s *sink, _ builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		s.grow(n)
		for i := 0; i < n; i++ {
			s.link(i, (i+1)%n)
		}

		return nil
	}
}
