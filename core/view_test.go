package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/epinet/core"
)

func square(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(1, 2, 1))
	require.NoError(t, g.AddEdge(2, 3, 2))
	require.NoError(t, g.AddEdge(3, 4, 3))
	require.NoError(t, g.AddEdge(4, 1, 4))

	return g
}

func TestInducedSubgraph(t *testing.T) {
	g := square(t)
	sub := core.InducedSubgraph(g, map[int64]bool{1: true, 2: true, 3: true, 99: true})

	assert.Equal(t, []int64{1, 2, 3}, sub.Vertices())
	assert.Equal(t, 2, sub.EdgeCount())
	w, err := sub.Weight(3, 2)
	require.NoError(t, err)
	assert.Equal(t, 2.0, w)
	assert.False(t, sub.HasEdge(1, 4))

	// Source is untouched and independent.
	require.NoError(t, sub.AddWeight(1, 2, 10))
	w, _ = g.Weight(1, 2)
	assert.Equal(t, 1.0, w)
	assert.Equal(t, 4, g.EdgeCount())
}

func TestClone(t *testing.T) {
	g := core.NewGraph(core.WithLoops())
	require.NoError(t, g.AddEdge(1, 1, 1))
	require.NoError(t, g.AddEdge(1, 2, 2))
	g.AddVertex(5)

	c := g.Clone()
	assert.Equal(t, g.Vertices(), c.Vertices())
	assert.Equal(t, g.EdgeCount(), c.EdgeCount())
	assert.True(t, c.Looped())

	require.NoError(t, c.SetWeight(1, 2, 100))
	w, _ := g.Weight(1, 2)
	assert.Equal(t, 2.0, w)
}

func TestIsNil(t *testing.T) {
	var typed *core.Graph
	var v core.View = typed

	assert.True(t, core.IsNil(nil))
	assert.True(t, core.IsNil(v))
	assert.NotNil(t, v)
	assert.False(t, core.IsNil(core.NewGraph()))
}
