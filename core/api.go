// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only summary getters on top of the core types.
// Policy:
//   - No algorithms or hidden state here.
//   - Every exported function documents complexity and locking strategy.

package core

// GraphStats is a point-in-time snapshot of graph counters.
type GraphStats struct {
	// VertexCount is |V|.
	VertexCount int
	// EdgeCount is |E| (each unordered pair once).
	EdgeCount int
	// LoopCount is the number of self-loops among EdgeCount.
	LoopCount int
	// TotalWeight is the sum of all edge weights.
	TotalWeight float64
	// AllowsLoops mirrors the WithLoops construction flag.
	AllowsLoops bool
}

// Stats produces a read-only snapshot of configuration flags and catalog sizes.
//
// Implementation:
//   - Stage 1: Acquire the read lock and copy flag and vertex count.
//   - Stage 2: Scan edges once, counting loops and summing weights.
//
// Determinism:
//   - TotalWeight is accumulated in map order, so the last bits of the
//     float sum may vary between calls on large graphs.
//
// Complexity:
//   - Time O(E), Space O(1).
func (g *Graph) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	s := GraphStats{
		VertexCount: len(g.adjacency),
		EdgeCount:   len(g.edges),
		AllowsLoops: g.allowLoops,
	}
	for p, e := range g.edges {
		if p.U == p.V {
			s.LoopCount++
		}
		s.TotalWeight += e.Weight
	}

	return s
}
