// SPDX-License-Identifier: MIT

package neighborhood_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/epinet/builder"
	"github.com/katalvlaran/epinet/core"
	"github.com/katalvlaran/epinet/neighborhood"
)

// chainWithTail builds 0-1-2-3-4 plus a shortcut 0-2 weighted 3.
func chainWithTail(t *testing.T) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, nil, builder.Path(5))
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 2, 3))

	return g
}

func TestExtract_ZeroRadiusIsRootOnly(t *testing.T) {
	g := chainWithTail(t)
	sub, err := neighborhood.Extract(g, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, []int64{2}, sub.Vertices())
	assert.Zero(t, sub.EdgeCount())
}

func TestExtract_Radius(t *testing.T) {
	g := chainWithTail(t)

	sub, err := neighborhood.Extract(g, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 1, 2}, sub.Vertices())
	// Induced: 0-1, 1-2 and the 0-2 shortcut.
	assert.Equal(t, 3, sub.EdgeCount())
	w, err := sub.Weight(2, 0)
	require.NoError(t, err)
	assert.Equal(t, 3.0, w)

	sub, err = neighborhood.Extract(g, 0, neighborhood.DefaultRadius)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 1, 2, 3}, sub.Vertices())

	sub, err = neighborhood.Extract(g, 0, 100)
	require.NoError(t, err)
	assert.Equal(t, g.Vertices(), sub.Vertices())
	assert.Equal(t, g.EdgeCount(), sub.EdgeCount())
}

func TestExtract_DoesNotMutateInput(t *testing.T) {
	g := chainWithTail(t)
	sub, err := neighborhood.Extract(g, 0, 1)
	require.NoError(t, err)
	require.NoError(t, sub.AddWeight(0, 1, 10))

	w, err := g.Weight(0, 1)
	require.NoError(t, err)
	assert.Equal(t, builder.DefaultEdgeWeight, w)
	assert.Equal(t, 5, g.VertexCount())
}

func TestExtract_Errors(t *testing.T) {
	g := chainWithTail(t)

	_, err := neighborhood.Extract(g, 99, 1)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	_, err = neighborhood.Extract(g, 0, -1)
	assert.ErrorIs(t, err, neighborhood.ErrNegativeRadius)

	_, err = neighborhood.Extract(nil, 0, 1)
	assert.ErrorIs(t, err, core.ErrNilGraph)
}

func TestNilGraphTyped(t *testing.T) {
	var g *core.Graph

	_, err := neighborhood.Extract(g, 0, 1)
	assert.ErrorIs(t, err, core.ErrNilGraph)

	_, err = neighborhood.Vertices(g, 0, 1)
	assert.ErrorIs(t, err, core.ErrNilGraph)
}

func TestExtractContext_Cancelled(t *testing.T) {
	g := chainWithTail(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sub, err := neighborhood.ExtractContext(ctx, g, 0, 2)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, sub)

	sub, err = neighborhood.ExtractContext(context.Background(), g, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 1, 2}, sub.Vertices())
}

func TestVertices_DiscoveryOrder(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Star(4))
	require.NoError(t, err)

	order, err := neighborhood.Vertices(g, 3, 2)
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 0, 1, 2}, order)
}

func TestExtract_IsolatedRoot(t *testing.T) {
	g := core.NewGraph()
	g.AddVertex(7)
	require.NoError(t, g.AddEdge(1, 2, 1))

	sub, err := neighborhood.Extract(g, 7, 3)
	require.NoError(t, err)
	assert.Equal(t, []int64{7}, sub.Vertices())
}
