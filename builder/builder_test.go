// SPDX-License-Identifier: MIT
// Package builder_test verifies edge-list aggregation and fixture topology.

package builder_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/epinet/builder"
	"github.com/katalvlaran/epinet/core"
)

func TestFromEdgeList_AccumulatesReversedPairs(t *testing.T) {
	g, err := builder.FromEdgeList([]builder.Contact{
		{A: 1, B: 2, Seconds: 86400},
		{A: 2, B: 1, Seconds: 86400},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, 2, g.VertexCount())
	w, err := g.Weight(1, 2)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, w, 1e-12)
}

func TestFromEdgeList_UniquePairs(t *testing.T) {
	contacts := []builder.Contact{
		{A: 1, B: 2, Seconds: 3600},
		{A: 2, B: 3, Seconds: 7200},
		{A: 3, B: 1, Seconds: 43200},
		{A: 4, B: 1, Seconds: 86400},
	}
	g, err := builder.FromEdgeList(contacts)
	require.NoError(t, err)
	assert.Equal(t, len(contacts), g.EdgeCount())
	assert.Equal(t, []int64{1, 2, 3, 4}, g.Vertices())

	w, err := g.Weight(1, 3)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, w, 1e-12)
}

func TestFromEdgeList_WeightsSumPerPair(t *testing.T) {
	contacts := []builder.Contact{
		{A: 5, B: 9, Seconds: 100},
		{A: 9, B: 5, Seconds: 200},
		{A: 5, B: 9, Seconds: 300},
		{A: 1, B: 5, Seconds: 50},
	}
	g, err := builder.FromEdgeList(contacts)
	require.NoError(t, err)

	var total float64
	for _, c := range contacts {
		total += c.Days()
	}
	var sum float64
	for _, e := range g.Edges() {
		sum += e.Weight
	}
	assert.InDelta(t, total, sum, 1e-12)
	assert.Equal(t, 2, g.EdgeCount())
}

func TestFromEdgeList_Empty(t *testing.T) {
	g, err := builder.FromEdgeList(nil)
	require.NoError(t, err)
	assert.Zero(t, g.VertexCount())
	assert.Zero(t, g.EdgeCount())
}

func TestFromEdgeList_Errors(t *testing.T) {
	_, err := builder.FromEdgeList([]builder.Contact{{A: 1, B: 2, Seconds: math.NaN()}})
	require.ErrorIs(t, err, builder.ErrInvalidWeight)
	assert.True(t, builder.IsContactError(err))

	_, err = builder.FromEdgeList([]builder.Contact{{A: 1, B: 2, Seconds: math.Inf(1)}})
	require.ErrorIs(t, err, builder.ErrInvalidWeight)

	// EdgeList on a loop-less graph still refuses self-contacts.
	_, err = builder.BuildGraph(nil, nil, builder.EdgeList([]builder.Contact{{A: 3, B: 3, Seconds: 10}}))
	require.ErrorIs(t, err, core.ErrLoopNotAllowed)
	assert.True(t, builder.IsContactError(err))
}

func TestFromEdgeList_SelfContact(t *testing.T) {
	g, err := builder.FromEdgeList([]builder.Contact{{A: 3, B: 3, Seconds: 43200}})
	require.NoError(t, err)
	assert.Equal(t, 1, g.VertexCount())
	assert.Equal(t, 1, g.EdgeCount())
	d, err := g.Degree(3)
	require.NoError(t, err)
	assert.Equal(t, 2, d)
	w, err := g.Weight(3, 3)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, w, 1e-12)
}

func TestFromEdgeList_SelfContactAmongPairs(t *testing.T) {
	g, err := builder.FromEdgeList([]builder.Contact{
		{A: 1, B: 2, Seconds: 86400},
		{A: 3, B: 3, Seconds: 86400},
		{A: 2, B: 1, Seconds: 86400},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, g.VertexCount())
	assert.Equal(t, 2, g.EdgeCount())

	w, err := g.Weight(1, 2)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, w, 1e-12)
	w, err = g.Weight(3, 3)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, w, 1e-12)
}

func TestBuildGraph_NilConstructor(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil, nil)
	require.ErrorIs(t, err, builder.ErrConstructFailed)
	assert.False(t, builder.IsContactError(err))
}

func TestFixtures_Topology(t *testing.T) {
	cases := []struct {
		name      string
		con       builder.Constructor
		vertices  int
		edges     int
		minDegree int
		maxDegree int
	}{
		{"Path5", builder.Path(5), 5, 4, 1, 2},
		{"Cycle6", builder.Cycle(6), 6, 6, 2, 2},
		{"Star7", builder.Star(7), 7, 6, 1, 6},
		{"Complete4", builder.Complete(4), 4, 6, 3, 3},
		{"Complete1", builder.Complete(1), 1, 0, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(nil, nil, tc.con)
			require.NoError(t, err)
			assert.Equal(t, tc.vertices, g.VertexCount())
			assert.Equal(t, tc.edges, g.EdgeCount())

			lo, hi := math.MaxInt, 0
			for _, v := range g.Vertices() {
				d, err := g.Degree(v)
				require.NoError(t, err)
				lo, hi = min(lo, d), max(hi, d)
			}
			assert.Equal(t, tc.minDegree, lo)
			assert.Equal(t, tc.maxDegree, hi)
		})
	}
}

func TestFixtures_TooFewVertices(t *testing.T) {
	for name, con := range map[string]builder.Constructor{
		"Path":         builder.Path(1),
		"Cycle":        builder.Cycle(2),
		"Star":         builder.Star(1),
		"Complete":     builder.Complete(0),
		"RandomSparse": builder.RandomSparse(0, 0.5),
	} {
		_, err := builder.BuildGraph(nil, nil, con)
		assert.ErrorIs(t, err, builder.ErrTooFewVertices, name)
	}
}

func TestRandomSparse(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil, builder.RandomSparse(10, 1.5))
	require.ErrorIs(t, err, builder.ErrInvalidProbability)

	_, err = builder.BuildGraph(nil, nil, builder.RandomSparse(10, 0.3))
	require.ErrorIs(t, err, builder.ErrNeedRandSource)

	// Degenerate probabilities need no RNG.
	g, err := builder.BuildGraph(nil, nil, builder.RandomSparse(10, 0))
	require.NoError(t, err)
	assert.Equal(t, 10, g.VertexCount())
	assert.Zero(t, g.EdgeCount())

	g, err = builder.BuildGraph(nil, nil, builder.RandomSparse(10, 1))
	require.NoError(t, err)
	assert.Equal(t, 45, g.EdgeCount())

	// Same seed, same graph.
	opts := []builder.BuilderOption{builder.WithSeed(7)}
	a, err := builder.BuildGraph(nil, opts, builder.RandomSparse(40, 0.1))
	require.NoError(t, err)
	b, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(7)}, builder.RandomSparse(40, 0.1))
	require.NoError(t, err)
	assert.Equal(t, a.Edges(), b.Edges())
}

func TestOptions_IDSchemeAndWeights(t *testing.T) {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithIDOffset(100), builder.WithConstantWeight(2.5)},
		builder.Path(3),
	)
	require.NoError(t, err)
	assert.Equal(t, []int64{100, 101, 102}, g.Vertices())
	for _, e := range g.Edges() {
		assert.Equal(t, 2.5, e.Weight)
	}

	g, err = builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithIDScheme(builder.StrideIDFn(10, 5))},
		builder.Star(3),
	)
	require.NoError(t, err)
	assert.Equal(t, []int64{10, 15, 20}, g.Vertices())

	g, err = builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSeed(1), builder.WithUniformWeight(1, 2)},
		builder.Complete(5),
	)
	require.NoError(t, err)
	for _, e := range g.Edges() {
		assert.GreaterOrEqual(t, e.Weight, 1.0)
		assert.Less(t, e.Weight, 2.0)
	}

	g, err = builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSeed(1), builder.WithExponentialWeight(2)},
		builder.Cycle(5),
	)
	require.NoError(t, err)
	for _, e := range g.Edges() {
		assert.Greater(t, e.Weight, 0.0)
	}
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { builder.WithIDScheme(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
	assert.Panics(t, func() { builder.ConstantWeightFn(-1) })
	assert.Panics(t, func() { builder.UniformWeightFn(2, 1) })
	assert.Panics(t, func() { builder.ExponentialWeightFn(0) })
	assert.Panics(t, func() { builder.StrideIDFn(0, 0) })
}

func TestBuildGraph_Overlay(t *testing.T) {
	// Fixture plus an extra contact on an existing pair accumulates.
	g, err := builder.BuildGraph(nil, nil,
		builder.Path(3),
		builder.EdgeList([]builder.Contact{{A: 0, B: 1, Seconds: 86400}}),
	)
	require.NoError(t, err)
	w, err := g.Weight(1, 0)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, w, 1e-12)
}

func BenchmarkFromEdgeList(b *testing.B) {
	contacts := make([]builder.Contact, 0, 10000)
	for i := 0; i < 10000; i++ {
		contacts = append(contacts, builder.Contact{A: int64(i % 500), B: int64((i*7 + 1) % 500), Seconds: 60})
	}
	// Drop accidental loops.
	clean := contacts[:0]
	for _, c := range contacts {
		if c.A != c.B {
			clean = append(clean, c)
		}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := builder.FromEdgeList(clean); err != nil {
			b.Fatal(err)
		}
	}
}
