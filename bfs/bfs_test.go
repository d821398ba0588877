// SPDX-License-Identifier: MIT

package bfs_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/epinet/bfs"
	"github.com/katalvlaran/epinet/core"
)

// chain builds the path 0–1–…–n.
func chain(t testing.TB, n int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		require.NoError(t, g.AddEdge(int64(i), int64(i+1), 1))
	}
	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, 1)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	var typedNil *core.Graph
	_, err = bfs.BFS(typedNil, 1)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)
	assert.ErrorIs(t, err, core.ErrNilGraph)

	g := core.NewGraph()
	_, err = bfs.BFS(g, 1)
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	g.AddVertex(1)
	_, err = bfs.BFS(g, 1, bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

// TestBFS_WeightedAccepted checks that weights do not influence hop distance.
func TestBFS_WeightedAccepted(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(1, 2, 100))
	require.NoError(t, g.AddEdge(1, 3, 0.001))
	res, err := bfs.BFS(g, 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, res.Order)
	assert.Equal(t, 1, res.Depth[2])
	assert.Equal(t, 1, res.Depth[3])
}

// TestCycleAndDepths covers a simple cycle and checks depths.
func TestCycleAndDepths(t *testing.T) {
	// 1–2–3–4–1 undirected cycle
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(1, 2, 0))
	require.NoError(t, g.AddEdge(2, 3, 0))
	require.NoError(t, g.AddEdge(3, 4, 0))
	require.NoError(t, g.AddEdge(4, 1, 0))

	res, err := bfs.BFS(g, 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 4, 3}, res.Order)
	assert.Equal(t, map[int64]int{1: 0, 2: 1, 4: 1, 3: 2}, res.Depth)
}

// TestBFS_Disconnected stays inside the start component.
func TestBFS_Disconnected(t *testing.T) {
	g := chain(t, 2)
	require.NoError(t, g.AddEdge(10, 11, 1))
	res, err := bfs.BFS(g, 10)
	require.NoError(t, err)
	assert.Equal(t, []int64{10, 11}, res.Order)
	assert.Equal(t, map[int64]bool{10: true, 11: true}, res.Visited())
}

// TestBFS_MaxDepth checks the inclusive depth limit, including 0.
func TestBFS_MaxDepth(t *testing.T) {
	g := chain(t, 2)
	cases := []struct {
		depth int
		want  []int64
	}{
		{0, []int64{0}},
		{1, []int64{0, 1}},
		{2, []int64{0, 1, 2}},
		{10, []int64{0, 1, 2}},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("d=%d", tc.depth), func(t *testing.T) {
			res, err := bfs.BFS(g, 0, bfs.WithMaxDepth(tc.depth))
			require.NoError(t, err)
			assert.Equal(t, tc.want, res.Order)
			assert.Len(t, res.Visited(), len(tc.want))
		})
	}
}

// TestBFS_SelfLoop ensures that a loop does not enqueue the start twice.
func TestBFS_SelfLoop(t *testing.T) {
	g := core.NewGraph(core.WithLoops())
	require.NoError(t, g.AddEdge(1, 1, 0))
	require.NoError(t, g.AddEdge(1, 2, 0))
	res, err := bfs.BFS(g, 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, res.Order)
}

// TestBFS_Cancellation verifies that a cancelled context halts BFS promptly.
func TestBFS_Cancellation(t *testing.T) {
	g := chain(t, 100)
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // immediate
	_, err := bfs.BFS(g, 0, bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// BenchmarkBFS_Chain measures BFS on a linear chain graph of size N.
func BenchmarkBFS_Chain(b *testing.B) {
	g := chain(b, 10000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, 0)
	}
}
