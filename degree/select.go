// SPDX-License-Identifier: MIT
// Package: epinet/degree
//
// select.go — degree-based vertex selection.
//
// Contract:
//   - Exact and InRange return ascending vertex IDs, never nil on success.
//   - Approximate searches degrees k, then present degrees < k in descending
//     order; it terminates once the smallest present degree is exhausted.
//
// Complexity:
//   - Exact, InRange: O(V).
//   - Approximate: O(V + D log D).

package degree

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/epinet/core"
)

// Exact returns every vertex whose degree equals k.
func Exact(g core.View, k int) ([]int64, error) {
	return InRange(g, k, k)
}

// InRange returns every vertex whose degree lies in [kmin, kmax].
// kmin > kmax selects nothing.
func InRange(g core.View, kmin, kmax int) ([]int64, error) {
	seq, err := Sequence(g)
	if err != nil {
		return nil, fmt.Errorf("InRange(%d,%d): %w", kmin, kmax, err)
	}

	out := make([]int64, 0)
	for _, e := range seq {
		if e.Degree >= kmin && e.Degree <= kmax {
			out = append(out, e.Vertex)
		}
	}

	return out, nil
}

// Approximate returns one vertex drawn uniformly among those of degree k.
// If none exist, it falls back to the largest present degree below k and
// draws from that bucket instead.
//
// Returns ErrNoCandidate when no vertex has degree ≤ k.
func Approximate(g core.View, k int, opts ...Option) (int64, error) {
	o := newOptions(opts...)

	buckets, err := byDegree(g)
	if err != nil {
		return 0, fmt.Errorf("Approximate(%d): %w", k, err)
	}

	if ids := buckets[k]; len(ids) > 0 {
		return ids[o.intn(len(ids))], nil
	}

	// Descending walk over the degrees actually present below k.
	lower := make([]int, 0, len(buckets))
	for d := range buckets {
		if d < k {
			lower = append(lower, d)
		}
	}
	if len(lower) == 0 {
		return 0, fmt.Errorf("Approximate(%d): %w", k, ErrNoCandidate)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(lower)))
	ids := buckets[lower[0]]

	return ids[o.intn(len(ids))], nil
}
