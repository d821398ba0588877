// SPDX-License-Identifier: MIT
// Package: epinet/netstats
//
// netstats.go — network summary and connected components.
//
// Contract:
//   - Density = 2E / (N(N−1)) for N ≥ 2, and 0 for N == 1.
//   - Components are ordered by size descending, ties by smallest vertex ID;
//     each component is ascending.
//
// Complexity:
//   - Summarize, Components: O(V log V + E).

package netstats

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/epinet/converters"
	"github.com/katalvlaran/epinet/core"
)

// ErrEmptyGraph indicates a summary request on a graph with no vertices.
var ErrEmptyGraph = errors.New("netstats: graph has no vertices")

// Summary holds the headline figures of a network.
type Summary struct {
	Edges                    int     `yaml:"edges"`
	Nodes                    int     `yaml:"nodes"`
	EdgesPerNode             float64 `yaml:"edges_per_node"`
	Density                  float64 `yaml:"density"`
	LargestComponentFraction float64 `yaml:"largest_component_fraction"`
}

// Summarize computes the Summary of g.
func Summarize(g core.View) (Summary, error) {
	if core.IsNil(g) {
		return Summary{}, fmt.Errorf("Summarize: %w", core.ErrNilGraph)
	}
	n, e := g.VertexCount(), g.EdgeCount()
	if n == 0 {
		return Summary{}, fmt.Errorf("Summarize: %w", ErrEmptyGraph)
	}

	comps, err := Components(g)
	if err != nil {
		return Summary{}, fmt.Errorf("Summarize: %w", err)
	}

	s := Summary{
		Edges:                    e,
		Nodes:                    n,
		EdgesPerNode:             float64(e) / float64(n),
		LargestComponentFraction: float64(len(comps[0])) / float64(n),
	}
	if n > 1 {
		s.Density = 2 * float64(e) / (float64(n) * float64(n-1))
	}

	return s, nil
}

// Write renders s as the five-line report.
func (s Summary) Write(w io.Writer) error {
	_, err := fmt.Fprintf(w,
		"number of edges %d\n"+
			"number of nodes %d\n"+
			"number of edges/nodes %.2f\n"+
			"density %.2e\n"+
			"fraction of nodes in largest component: %.3f\n",
		s.Edges, s.Nodes, s.EdgesPerNode, s.Density, s.LargestComponentFraction)

	return err
}

// Print summarizes g and writes the report to w.
func Print(w io.Writer, g core.View) error {
	s, err := Summarize(g)
	if err != nil {
		return fmt.Errorf("Print: %w", err)
	}
	if err = s.Write(w); err != nil {
		return fmt.Errorf("Print: %w", err)
	}

	return nil
}

// Components returns the connected components of g, largest first.
// Loops do not affect connectivity.
func Components(g core.View) ([][]int64, error) {
	gg, err := converters.ToGonum(g)
	if err != nil {
		return nil, fmt.Errorf("Components: %w", err)
	}

	raw := topo.ConnectedComponents(gg)
	out := make([][]int64, len(raw))
	for i, c := range raw {
		ids := make([]int64, len(c))
		for j, n := range c {
			ids[j] = n.ID()
		}
		sort.Slice(ids, func(a, b int) bool { return ids[a] < ids[b] })
		out[i] = ids
	}
	sort.Slice(out, func(a, b int) bool {
		if len(out[a]) != len(out[b]) {
			return len(out[a]) > len(out[b])
		}
		return out[a][0] < out[b][0]
	})

	return out, nil
}
