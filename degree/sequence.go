// SPDX-License-Identifier: MIT
// Package: epinet/degree
//
// sequence.go — degree sequence and histogram.
//
// Determinism:
//   - Sequence is ordered by vertex ID ascending.
//   - Distribution values are ascending; counts are parallel to values.
//
// Complexity:
//   - Sequence: O(V) degree lookups + O(V log V) ordering from Vertices().
//   - Distribution: O(V + D log D), D = number of distinct degrees.

package degree

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/epinet/core"
)

// Entry is one element of the degree sequence.
type Entry struct {
	Vertex int64
	Degree int
}

// Sequence returns the degree of every vertex in g, ordered by vertex ID.
func Sequence(g core.View) ([]Entry, error) {
	if core.IsNil(g) {
		return nil, fmt.Errorf("Sequence: %w", core.ErrNilGraph)
	}
	ids := g.Vertices()
	out := make([]Entry, 0, len(ids))
	for _, id := range ids {
		d, err := g.Degree(id)
		if err != nil {
			return nil, fmt.Errorf("Sequence: %w", err)
		}
		out = append(out, Entry{Vertex: id, Degree: d})
	}

	return out, nil
}

// Distribution returns the degree histogram over all vertices of g.
// Equivalent to DistributionOf(g, g.Vertices()).
func Distribution(g core.View) (values, counts []int, err error) {
	if core.IsNil(g) {
		return nil, nil, fmt.Errorf("Distribution: %w", core.ErrNilGraph)
	}
	return DistributionOf(g, g.Vertices())
}

// DistributionOf returns the degree histogram restricted to nodes: sorted
// unique degree values and the number of listed nodes at each value.
// Duplicates in nodes are counted each time, so Σcounts == len(nodes).
// A node absent from g yields a wrapped core.ErrVertexNotFound.
func DistributionOf(g core.View, nodes []int64) (values, counts []int, err error) {
	if core.IsNil(g) {
		return nil, nil, fmt.Errorf("DistributionOf: %w", core.ErrNilGraph)
	}
	hist := make(map[int]int)
	var d int
	for _, id := range nodes {
		if d, err = g.Degree(id); err != nil {
			return nil, nil, fmt.Errorf("DistributionOf: %w", err)
		}
		hist[d]++
	}

	values = make([]int, 0, len(hist))
	for v := range hist {
		values = append(values, v)
	}
	sort.Ints(values)

	counts = make([]int, len(values))
	for i, v := range values {
		counts[i] = hist[v]
	}

	return values, counts, nil
}

// byDegree groups vertices by degree; each bucket is ascending by ID.
func byDegree(g core.View) (map[int][]int64, error) {
	seq, err := Sequence(g)
	if err != nil {
		return nil, err
	}
	buckets := make(map[int][]int64)
	for _, e := range seq {
		buckets[e.Degree] = append(buckets[e.Degree], e.Vertex)
	}

	return buckets, nil
}
