// SPDX-License-Identifier: MIT
// Package: epinet/builder
//
// impl_cycle.go — implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   • Emits edges in stable order i—(i+1)%n for i=0..n-1.
//
// Complexity:
//   • Time: O(n) vertices + O(n) edges. Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/epinet/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds an n-vertex simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		for i := 0; i < n; i++ {
			g.AddVertex(cfg.idFn(i))
		}

		var (
			w        float64
			uID, vID int64
		)
		for i := 0; i < n; i++ {
			uID, vID = cfg.idFn(i), cfg.idFn((i+1)%n)
			w = cfg.weightFn(cfg.rng)
			if err := g.AddEdge(uID, vID, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%d—%d, w=%g): %w", methodCycle, uID, vID, w, err)
			}
		}

		return nil
	}
}
