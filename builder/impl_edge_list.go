// SPDX-License-Identifier: MIT
// Package: epinet/builder
//
// impl_edge_list.go - implementation of the EdgeList(contacts) constructor.
//
// Contract:
//   - Each Contact {A, B, Seconds} contributes Seconds/SecondsPerDay days to
//     the undirected edge {A,B}; (A,B) and (B,A) are the same edge.
//   - The first contact for a pair creates the edge; later ones add to it.
//   - Non-finite Seconds → ErrInvalidWeight; A == B on a loop-less graph →
//     core.ErrLoopNotAllowed. Both are wrapped with the contact index.
//     FromEdgeList always builds with loops enabled, so only BuildGraph
//     callers composing EdgeList onto a default graph see the latter.
//   - Contacts are applied in input order; the resulting edge set and
//     weights do not depend on that order beyond float summation rounding.
//
// Complexity:
//   - Time: O(len(contacts)), Space: O(unique pairs).

package builder

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/epinet/core"
)

const methodEdgeList = "EdgeList"

// SecondsPerDay converts raw contact deltas (seconds) to day weights.
const SecondsPerDay = 24 * 3600

// Contact is one raw edge-list record: two endpoint IDs and the time delta
// in seconds observed between them. Records need not be unique.
type Contact struct {
	A       int64
	B       int64
	Seconds float64
}

// Days returns the contact duration in days.
func (c Contact) Days() float64 { return c.Seconds / SecondsPerDay }

// EdgeList returns a Constructor that folds contacts into g, accumulating
// durations per canonical pair.
func EdgeList(contacts []Contact) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		var (
			p   core.Pair
			w   float64
			err error
		)
		for i, c := range contacts {
			if math.IsNaN(c.Seconds) || math.IsInf(c.Seconds, 0) {
				return fmt.Errorf("%s: contact #%d (%d,%d) seconds=%g: %w",
					methodEdgeList, i, c.A, c.B, c.Seconds, ErrInvalidWeight)
			}
			p = core.Canonical(c.A, c.B)
			w = c.Days()

			if g.HasEdge(p.U, p.V) {
				err = g.AddWeight(p.U, p.V, w)
			} else {
				err = g.AddEdge(p.U, p.V, w)
			}
			if err != nil {
				return fmt.Errorf("%s: contact #%d (%d,%d): %w", methodEdgeList, i, c.A, c.B, err)
			}
		}

		return nil
	}
}

// IsContactError reports whether err came from a malformed contact
// rather than from builder misuse.
func IsContactError(err error) bool {
	return errors.Is(err, ErrInvalidWeight) || errors.Is(err, core.ErrLoopNotAllowed)
}
