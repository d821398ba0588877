// SPDX-License-Identifier: MIT
// Package: epinet/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - All public factories are declared here, implemented in impl_*.go.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic at runtime; return sentinel errors from constructors.
//
// AI-Hints (practical):
//   - FromEdgeList is the usual entry point for contact data.
//   - Compose EdgeList with other constructors in BuildGraph to overlay fixtures.
//   - Use WithSeed(...) to freeze stochastic paths (RandomSparse).

package builder

import (
	"fmt"

	"github.com/katalvlaran/epinet/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Respect core graph flags (loops).
//   - Preserve determinism for the same config and call order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildGraph: %w" and
// returned immediately; the partially built graph is discarded.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// FromEdgeList builds an undirected weighted graph from raw contact
// triples. See EdgeList for the aggregation contract. Self-contacts (A == B)
// are kept as loops, since contact logs routinely record them; gopts are
// applied after the loop option.
//
// Complexity: O(len(contacts)).
func FromEdgeList(contacts []Contact, gopts ...core.GraphOption) (*core.Graph, error) {
	opts := make([]core.GraphOption, 0, len(gopts)+1)
	opts = append(opts, core.WithLoops())
	opts = append(opts, gopts...)

	return BuildGraph(opts, nil, EdgeList(contacts))
}

// =============================================================================
// Topology factories - implemented in impl_*.go
// =============================================================================
//
// EdgeList(contacts)    - contact triples → accumulated day weights.
// Path(n)               - P_n, n ≥ 2.
// Cycle(n)              - C_n, n ≥ 3.
// Star(n)               - hub idFn(0) plus n-1 leaves, n ≥ 2.
// Complete(n)           - K_n, n ≥ 1.
// RandomSparse(n, p)    - G(n,p) Erdős–Rényi sample, n ≥ 1, p ∈ [0,1].
