// SPDX-License-Identifier: MIT
// Package: epinet/builder
//
// impl_path.go — implementation of Path(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   • Emits edges idFn(i-1)—idFn(i) for i=1..n-1, weight cfg.weightFn(cfg.rng).
//
// Complexity:
//   • Time: O(n) vertices + O(n) edges. Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/epinet/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds the simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		for i := 0; i < n; i++ {
			g.AddVertex(cfg.idFn(i))
		}

		var (
			w        float64
			uID, vID int64
		)
		// Emit path edges from 0-1-2-...-(n-1) in stable order.
		for i := 1; i < n; i++ {
			uID, vID = cfg.idFn(i-1), cfg.idFn(i)
			w = cfg.weightFn(cfg.rng)
			if err := g.AddEdge(uID, vID, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%d—%d, w=%g): %w", methodPath, uID, vID, w, err)
			}
		}

		return nil
	}
}
