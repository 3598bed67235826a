// SPDX-License-Identifier: MIT
// Package: pids/builder
//
// impl_wheel.go — Wheel(n) = hub + C_{n-1}.
//
// Contract:
//   • n ≥ 4 (else ErrTooFewVertices).
//   • Hub is local vertex 0; the rim 1..n-1 forms a cycle.
//   • Emission order: rim edges first (i—i+1, closing n-1—1), then spokes 0—i.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import "fmt"

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel returns a Constructor that builds the wheel W_n.
func Wheel(n int) Constructor {
	return func(s *sink, _ builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		s.grow(n)
		rim := n - 1
		for i := 0; i < rim; i++ {
			s.link(1+i, 1+(i+1)%rim)
		}
		for i := 1; i < n; i++ {
			s.link(0, i)
		}

		return nil
	}
}
