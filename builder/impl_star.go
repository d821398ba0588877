// SPDX-License-Identifier: MIT
// Package: epinet/builder
//
// impl_star.go — implementation of Star(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Hub is idFn(0); leaves are idFn(1..n-1), each joined to the hub.
//   • The hub has degree n-1, every leaf degree 1: the most heterogeneous
//     connected graph on n vertices, handy for kappa fixtures.
//
// Complexity:
//   • Time: O(n). Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/epinet/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star with n-1 spokes.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}

		hub := cfg.idFn(0)
		g.AddVertex(hub)

		var (
			w    float64
			leaf int64
		)
		for i := 1; i < n; i++ {
			leaf = cfg.idFn(i)
			w = cfg.weightFn(cfg.rng)
			if err := g.AddEdge(hub, leaf, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%d—%d, w=%g): %w", methodStar, hub, leaf, w, err)
			}
		}

		return nil
	}
}
