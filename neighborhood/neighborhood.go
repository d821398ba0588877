// SPDX-License-Identifier: MIT
// Package: epinet/neighborhood
//
// neighborhood.go — bounded k-hop induced subgraph.
//
// Contract:
//   - g must be non-nil (else core.ErrNilGraph).
//   - root must exist in g (else wrapped core.ErrVertexNotFound).
//   - k ≥ 0 (else ErrNegativeRadius); k == 0 keeps only root.
//   - Vertices are discovered in BFS order; the induced subgraph preserves
//     edge weights and the loop policy of g.
//
// Complexity:
//   - Time: O(V_k + E_k) for the search plus O(V + E) for induction.
//   - Space: O(V_k).

package neighborhood

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/epinet/bfs"
	"github.com/katalvlaran/epinet/core"
)

// DefaultRadius is the hop limit used when callers have no preference.
const DefaultRadius = 2

// ErrNegativeRadius indicates a hop limit below zero.
var ErrNegativeRadius = errors.New("neighborhood: radius must be non-negative")

// Vertices returns every vertex within k hops of root in breadth-first
// discovery order, root first.
func Vertices(g core.View, root int64, k int) ([]int64, error) {
	res, err := search(context.Background(), g, root, k)
	if err != nil {
		return nil, err
	}

	return res.Order, nil
}

// Extract returns the subgraph of g induced by all vertices within k hops
// of root. The input graph is not modified.
func Extract(g *core.Graph, root int64, k int) (*core.Graph, error) {
	return ExtractContext(context.Background(), g, root, k)
}

// ExtractContext is Extract with cancellation: the search stops with
// ctx.Err() once ctx is done.
func ExtractContext(ctx context.Context, g *core.Graph, root int64, k int) (*core.Graph, error) {
	res, err := search(ctx, g, root, k)
	if err != nil {
		return nil, err
	}

	return core.InducedSubgraph(g, res.Visited()), nil
}

func search(ctx context.Context, g core.View, root int64, k int) (*bfs.BFSResult, error) {
	if k < 0 {
		return nil, fmt.Errorf("neighborhood(root=%d, k=%d): %w", root, k, ErrNegativeRadius)
	}
	if core.IsNil(g) {
		return nil, fmt.Errorf("neighborhood(root=%d): %w", root, core.ErrNilGraph)
	}
	if !g.HasVertex(root) {
		return nil, fmt.Errorf("neighborhood(root=%d): %w", root, core.ErrVertexNotFound)
	}

	res, err := bfs.BFS(g, root, bfs.WithContext(ctx), bfs.WithMaxDepth(k))
	if err != nil {
		return nil, fmt.Errorf("neighborhood(root=%d, k=%d): %w", root, k, err)
	}

	return res, nil
}
