// SPDX-License-Identifier: MIT
// Package: pids/builder
//
// impl_complete.go — Complete(n).
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices). K_1 is a single isolated vertex.
//   • Emits i—j for i<j in lexicographic order.
//
// Complexity: O(n²) time, O(1) extra space.

package builder

import "fmt"

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete graph K_n.
func Complete(n int) Constructor {
	return func(s *sink, _ builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		s.grow(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				s.link(i, j)
			}
		}

		return nil
	}
}
