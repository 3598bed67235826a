// SPDX-License-Identifier: MIT
// Package: pids/builder
//
// impl_bipartite.go — CompleteBipartite(n1, n2).
//
// Contract:
//   • n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices).
//   • Left side is local 0..n1-1, right side n1..n1+n2-1.
//   • Emits every left—right pair, left index outer, right index inner.
//
// Complexity: O(n1·n2) time, O(1) extra space.

package builder

import "fmt"

const (
	methodCompleteBipartite = "CompleteBipartite"
	minPartitionSize        = 1
)

// CompleteBipartite returns a Constructor that builds K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(s *sink, _ builderConfig) error {
		if n1 < minPartitionSize || n2 < minPartitionSize {
			return fmt.Errorf("%s: sizes %d,%d < min=%d: %w",
				methodCompleteBipartite, n1, n2, minPartitionSize, ErrTooFewVertices)
		}
		s.grow(n1 + n2)
		for i := 0; i < n1; i++ {
			for j := 0; j < n2; j++ {
				s.link(i, n1+j)
			}
		}

		return nil
	}
}
