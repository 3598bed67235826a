// SPDX-License-Identifier: MIT
// Package: pids/builder
//
// impl_grid.go — Grid(rows, cols) with 4-neighbourhood.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices). A 1×1 grid has no edges.
//   • Vertex (r,c) is local index r*cols + c (row-major).
//   • For each cell in row-major order: emit right neighbour, then down neighbour.
//
// Complexity: O(rows·cols) time, O(1) extra space.

package builder

import "fmt"

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols lattice.
func Grid(rows, cols int) Constructor {
	return func(s *sink, _ builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: %dx%d < min=%d: %w", methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		s.grow(rows * cols)

		var r, c, idx int
		for r = 0; r < rows; r++ {
			for c = 0; c < cols; c++ {
				idx = r*cols + c
				if c+1 < cols {
					s.link(idx, idx+1)
				}
				if r+1 < rows {
					s.link(idx, idx+cols)
				}
			}
		}

		return nil
	}
}
