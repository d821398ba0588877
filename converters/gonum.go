// SPDX-License-Identifier: MIT
// Package: epinet/converters
//
// gonum.go — core.View ⇄ gonum simple.WeightedUndirectedGraph.
//
// Determinism:
//   - Nodes and edges are inserted in the ascending order of the source View.
//
// Complexity:
//   - ToGonum, FromGonum: O(V + E).

package converters

import (
	"fmt"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/epinet/core"
)

// ErrNilGraph indicates a nil source graph. It is core.ErrNilGraph, so
// callers can match either name.
var ErrNilGraph = core.ErrNilGraph

// DefaultWeight is assigned to edges imported from an unweighted gonum graph.
const DefaultWeight = 1.0

// ToGonum copies g into a new gonum weighted undirected graph.
// Self-loops are dropped; see the package documentation.
func ToGonum(g core.View) (*simple.WeightedUndirectedGraph, error) {
	if core.IsNil(g) {
		return nil, fmt.Errorf("ToGonum: %w", ErrNilGraph)
	}

	out := simple.NewWeightedUndirectedGraph(0, 0)
	for _, id := range g.Vertices() {
		out.AddNode(simple.Node(id))
	}
	for _, e := range g.Edges() {
		if e.From == e.To {
			continue
		}
		out.SetWeightedEdge(out.NewWeightedEdge(simple.Node(e.From), simple.Node(e.To), e.Weight))
	}

	return out, nil
}

// FromGonum copies an undirected gonum graph into a new core.Graph.
// Weights come from graph.Weighted when src implements it, else
// DefaultWeight. Each unordered pair is imported once.
func FromGonum(src graph.Undirected, opts ...core.GraphOption) (*core.Graph, error) {
	if src == nil {
		return nil, fmt.Errorf("FromGonum: %w", ErrNilGraph)
	}
	weighted, _ := src.(graph.Weighted)

	g := core.NewGraph(opts...)
	nodes := graph.NodesOf(src.Nodes())
	for _, n := range nodes {
		g.AddVertex(n.ID())
	}

	var (
		uid, vid int64
		w        float64
		ok       bool
	)
	for _, n := range nodes {
		uid = n.ID()
		to := src.From(uid)
		for to.Next() {
			vid = to.Node().ID()
			if vid < uid {
				continue
			}
			w = DefaultWeight
			if weighted != nil {
				if w, ok = weighted.Weight(uid, vid); !ok {
					w = DefaultWeight
				}
			}
			if err := g.AddEdge(uid, vid, w); err != nil {
				return nil, fmt.Errorf("FromGonum: %w", err)
			}
		}
	}

	return g, nil
}
