package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/epinet/bfs"
	"github.com/katalvlaran/epinet/core"
)

// ExampleBFS_depthLimitOnChain shows applying WithMaxDepth to a chain of 10 vertices.
// With depth=2 we only visit the first three nodes.
func ExampleBFS_depthLimitOnChain() {
	g := core.NewGraph()
	for i := int64(0); i < 9; i++ {
		_ = g.AddEdge(i, i+1, 0)
	}

	res, err := bfs.BFS(g, 0, bfs.WithMaxDepth(2))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	// Output:
	// [0 1 2]
}

// ExampleBFS_hopDistances reports how many hops each vertex is from the
// start when two routes compete.
func ExampleBFS_hopDistances() {
	g := core.NewGraph()
	// Route1: 1–2–3–4–9 (4 hops)
	_ = g.AddEdge(1, 2, 0)
	_ = g.AddEdge(2, 3, 0)
	_ = g.AddEdge(3, 4, 0)
	_ = g.AddEdge(4, 9, 0)
	// Route2: 1–5–6–9 (3 hops)
	_ = g.AddEdge(1, 5, 0)
	_ = g.AddEdge(5, 6, 0)
	_ = g.AddEdge(6, 9, 0)

	res, _ := bfs.BFS(g, 1)
	fmt.Println(res.Depth[9], res.Order)
	// Output:
	// 3 [1 2 5 3 6 4 9]
}
