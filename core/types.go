// SPDX-License-Identifier: MIT
//
// Package core defines the undirected weighted Graph used across epinet,
// the canonical Pair key for unordered vertex pairs, and the View
// capability interface consumed by the analysis packages.
//
// This file declares Edge, Pair, Graph, GraphOption, View,
// sentinel errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrVertexNotFound    - requested vertex does not exist.
//	ErrEdgeNotFound      - requested edge does not exist.
//	ErrEdgeExists        - AddEdge on an already connected pair.
//	ErrBadWeight         - NaN or infinite weight.
//	ErrLoopNotAllowed    - self-loop when loops are disabled.
//	ErrNilGraph          - nil View, including a typed nil *Graph.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrEdgeExists indicates AddEdge was called for a pair that is already connected.
	// The graph is simple: at most one edge per unordered pair.
	ErrEdgeExists = errors.New("core: edge already exists")

	// ErrBadWeight indicates a NaN or infinite edge weight.
	ErrBadWeight = errors.New("core: weight is not finite")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrNilGraph indicates a nil graph was passed where a View is required.
	ErrNilGraph = errors.New("core: graph is nil")
)

// Pair is the canonical form of an unordered vertex pair: U <= V always.
// Two Pairs compare equal iff they name the same undirected edge.
type Pair struct {
	U int64
	V int64
}

// Canonical returns the Pair for {a,b} with the smaller ID first,
// so Canonical(a,b) == Canonical(b,a).
// Complexity: O(1).
func Canonical(a, b int64) Pair {
	if b < a {
		return Pair{U: b, V: a}
	}

	return Pair{U: a, V: b}
}

// Edge is an undirected weighted connection between two vertices.
//
// From <= To holds for every Edge stored in a Graph. Weight is the
// accumulated contact time in days for edges produced by builder.EdgeList.
type Edge struct {
	// From is the smaller endpoint ID.
	From int64

	// To is the larger endpoint ID (equal to From for a self-loop).
	To int64

	// Weight is the edge weight.
	Weight float64
}

// Pair returns the canonical key of e.
func (e *Edge) Pair() Pair { return Pair{U: e.From, V: e.To} }

// Other returns the endpoint of e opposite to id.
// For a self-loop it returns id.
func (e *Edge) Other(id int64) int64 {
	if e.From == id {
		return e.To
	}

	return e.From
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithLoops permits self-loops (edges from a vertex to itself).
// A self-loop adds 2 to the degree of its vertex.
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// View is the read-only capability set the analysis packages need from a graph:
// vertex enumeration, neighbor iteration, degree queries and edge listing.
// *Graph satisfies View; any other graph store can be adapted to it.
type View interface {
	// HasVertex reports whether id is present.
	HasVertex(id int64) bool

	// Vertices returns all vertex IDs in ascending order.
	Vertices() []int64

	// NeighborIDs returns the unique neighbors of id in ascending order.
	NeighborIDs(id int64) ([]int64, error)

	// Degree returns the number of edge endpoints incident to id.
	Degree(id int64) (int, error)

	// Edges returns all edges sorted by (From, To).
	Edges() []*Edge

	// VertexCount returns |V|.
	VertexCount() int

	// EdgeCount returns |E|.
	EdgeCount() int
}

// Graph is the in-memory undirected, simple, weighted graph.
//
// adjacency[u][v] and adjacency[v][u] point to the same *Edge, so a weight
// update through either endpoint is visible from both. A vertex exists iff
// it has an adjacency entry (possibly empty). mu guards all fields below it.
type Graph struct {
	mu sync.RWMutex

	// Configuration flags
	allowLoops bool // allow self-loops

	// Storage
	edges     map[Pair]*Edge           // canonical pair → Edge
	adjacency map[int64]map[int64]*Edge // vertex → neighbor → Edge
}

// compile-time check
var _ View = (*Graph)(nil)

// IsNil reports whether v is nil or wraps a nil *Graph. A typed nil
// stored in a View compares unequal to nil but panics on first use.
func IsNil(v View) bool {
	if v == nil {
		return true
	}
	g, ok := v.(*Graph)

	return ok && g == nil
}

// NewGraph creates an empty Graph with the given options.
// By default loops are rejected.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		edges:     make(map[Pair]*Edge),
		adjacency: make(map[int64]map[int64]*Edge),
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g
}
