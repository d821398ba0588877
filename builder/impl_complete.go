// SPDX-License-Identifier: MIT
// Package: epinet/builder
//
// impl_complete.go — implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Emits edges for unordered pairs i<j in (i asc, j asc) order.
//
// Complexity:
//   • Time: O(n²). Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/epinet/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}

		for i := 0; i < n; i++ {
			g.AddVertex(cfg.idFn(i))
		}

		var (
			w    float64
			u, v int64
		)
		for i := 0; i < n; i++ {
			u = cfg.idFn(i)
			for j := i + 1; j < n; j++ {
				v = cfg.idFn(j)
				w = cfg.weightFn(cfg.rng)
				if err := g.AddEdge(u, v, w); err != nil {
					return fmt.Errorf("%s: AddEdge(%d—%d, w=%g): %w", methodComplete, u, v, w, err)
				}
			}
		}

		return nil
	}
}
