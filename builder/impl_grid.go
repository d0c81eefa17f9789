// SPDX-License-Identifier: MIT
// Package: slotgraph/builder
//
// impl_grid.go: rectangular grid constructor.

package builder

import (
	"fmt"

	"github.com/katalvlaran/slotgraph/core"
)

const methodGrid = "Grid"

// Grid returns a Constructor for a rows×cols lattice with 4-neighborhood.
// Vertices are registered row-major, labels are idFn(r*cols+c), and edges
// point right and down. Requires rows ≥ 1, cols ≥ 1.
//
// Complexity: O(rows·cols) vertices and edges.
func Grid(rows, cols int) Constructor {
	return func(s *core.Store, cfg builderConfig) error {
		// 1) Validate
		if rows < 1 || cols < 1 {
			return fmt.Errorf("%s: rows=%d, cols=%d: %w", methodGrid, rows, cols, ErrTooFewVertices)
		}

		// 2) Register row-major
		hs, err := cfg.register(s, methodGrid, rows*cols)
		if err != nil {
			return err
		}

		// 3) Link right and down neighbors
		var r, c, at int
		for r = 0; r < rows; r++ {
			for c = 0; c < cols; c++ {
				at = r*cols + c
				if c+1 < cols {
					if err = cfg.connect(s, methodGrid, hs[at], hs[at+1]); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err = cfg.connect(s, methodGrid, hs[at], hs[at+cols]); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
