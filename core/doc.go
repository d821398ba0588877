// Package core provides the in-memory contact graph used by every epinet
// package: an undirected, simple, weighted Graph keyed by int64 vertex IDs.
//
// The Graph G = (V,E) guarantees:
//
//   - At most one edge per unordered vertex pair. Pairs are canonicalized
//     with Canonical(a,b) (smaller ID first), so {a,b} and {b,a} are one key.
//   - Float64 weights; NaN and ±Inf are rejected with ErrBadWeight.
//   - Self-loops only with WithLoops(); a loop counts twice toward Degree.
//   - Deterministic iteration: Vertices(), NeighborIDs() ascending;
//     Edges() by (From, To); Neighbors() by opposite endpoint.
//   - All methods are safe for concurrent use (single sync.RWMutex).
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id int64)                     // O(1), idempotent
//	HasVertex(id int64) bool                // O(1)
//	RemoveVertex(id int64) error            // O(deg(v))
//
//	// Edge lifecycle
//	AddEdge(a, b int64, w float64) error    // O(1), ErrEdgeExists on duplicates
//	AddWeight(a, b int64, d float64) error  // O(1), accumulate onto existing edge
//	SetWeight(a, b int64, w float64) error  // O(1)
//	Weight(a, b int64) (float64, error)     // O(1)
//	RemoveEdge(a, b int64) error            // O(1)
//	HasEdge(a, b int64) bool                // O(1)
//
//	// Query
//	Neighbors(id) ([]*Edge, error)          // O(d·log d)
//	NeighborIDs(id) ([]int64, error)        // O(d·log d)
//	Degree(id) (int, error)                 // O(1)
//	Vertices() []int64                      // O(V·log V)
//	Edges() []*Edge                         // O(E·log E)
//	VertexCount(), EdgeCount() int          // O(1)
//	Stats() GraphStats                      // O(E)
//
//	// Views
//	Clone() *Graph                          // O(V+E)
//	InducedSubgraph(g, keep) *Graph         // O(V+E)
//
// Analysis packages (bfs, degree, netstats, converters) accept the View
// interface rather than *Graph, so any graph store offering neighbor
// iteration, degree queries and edge listing can be plugged in.
//
// Quick ASCII example:
//
//	    1───2
//	    │   │
//	    4───3
//
// represents a square with four vertices and four edges; every degree is 2.
package core
