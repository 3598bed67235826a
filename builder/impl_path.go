// SPDX-License-Identifier: MIT
// Package: pids/builder
//
// impl_path.go — Path(n).
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Emits edges i—(i+1) for i=0..n-2.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import "fmt"

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds the simple path P_n.
func Path(n int) Constructor {
	return func(s *sink, _ builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		s.grow(n)
		for i := 0; i+1 < n; i++ {
			s.link(i, i+1)
		}

		return nil
	}
}
