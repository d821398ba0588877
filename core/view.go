// File: view.go
// Role: Non-mutating graph views (copying topology into a fresh Graph).
// Determinism:
//   - Preserves vertex IDs, canonical edge orientation and weights.
// Concurrency:
//   - Read lock on source; result is a fresh graph instance.
// AI-HINT (file):
//   - Views do NOT mutate the input Graph.
//   - InducedSubgraph keeps only vertices in 'keep' and edges with both endpoints kept.

package core

// Clone returns a deep copy of g: flags, vertices, edges and weights.
// Edge pointers in the copy are fresh, so weight updates do not leak back.
//
// Complexity: O(V + E). Concurrency: read lock on source.
func (g *Graph) Clone() *Graph {
	return InducedSubgraph(g, nil)
}

// InducedSubgraph returns a new Graph induced by the vertex set keep:
// the result contains every vertex v with keep[v] == true and every edge
// whose endpoints are both kept. A nil keep map selects all vertices.
// IDs absent from g are ignored.
//
// Complexity: O(V + E). Concurrency: read lock on source.
func InducedSubgraph(g *Graph, keep map[int64]bool) *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	// Reuse the same configuration as g.
	var opts []GraphOption
	if g.allowLoops {
		opts = append(opts, WithLoops())
	}
	out := NewGraph(opts...)

	all := keep == nil
	// Copy only kept vertices.
	for id := range g.adjacency {
		if all || keep[id] {
			out.adjacency[id] = make(map[int64]*Edge)
		}
	}

	// Copy only edges whose endpoints are both kept.
	var ne *Edge
	for p, e := range g.edges {
		if !all && (!keep[p.U] || !keep[p.V]) {
			continue
		}
		ne = &Edge{From: e.From, To: e.To, Weight: e.Weight}
		out.edges[p] = ne
		out.adjacency[p.U][p.V] = ne
		out.adjacency[p.V][p.U] = ne
	}

	return out
}
