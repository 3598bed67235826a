// SPDX-License-Identifier: MIT
// Package: pids/builder
//
// impl_star.go — Star(n).
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Center is local vertex 0; spokes 0—i for i=1..n-1 in index order.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import "fmt"

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star with n-1 leaves.
func Star(n int) Constructor {
	return func(s *sink, _ builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		s.grow(n)
		for i := 1; i < n; i++ {
			s.link(0, i)
		}

		return nil
	}
}
