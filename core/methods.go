// Package core: Graph method implementations
//
// This file provides thread-safe O(1) (amortized) operations for vertex and
// edge management on the Graph type defined in types.go. Adjacency is stored
// as a nested map adjacency[u][v] = *Edge, mirrored for both endpoints, which
// gives constant-time existence checks, insertion and weight mutation.

package core

import (
	"fmt"
	"math"
	"sort"
)

// AddVertex inserts a vertex with the given ID.
// If the vertex already exists, this is a no-op (idempotent).
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id int64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureVertex(id)
}

// HasVertex reports whether a vertex with the given ID exists in the graph.
// Complexity: O(1).
func (g *Graph) HasVertex(id int64) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, exists := g.adjacency[id]

	return exists
}

// RemoveVertex deletes the vertex and all incident edges from the graph.
// Returns ErrVertexNotFound if the vertex does not exist.
// Complexity: O(deg(v)).
func (g *Graph) RemoveVertex(id int64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	nbrs, ok := g.adjacency[id]
	if !ok {
		return fmt.Errorf("RemoveVertex(%d): %w", id, ErrVertexNotFound)
	}
	for nbr, e := range nbrs {
		delete(g.edges, e.Pair())
		if nbr != id {
			delete(g.adjacency[nbr], id)
		}
	}
	delete(g.adjacency, id)

	return nil
}

// AddEdge creates the undirected edge {a,b} with the given weight, adding
// missing endpoints. The edge is stored in canonical orientation (From <= To).
//
// Returns ErrBadWeight, ErrLoopNotAllowed or ErrEdgeExists.
// Complexity: O(1).
func (g *Graph) AddEdge(a, b int64, weight float64) error {
	// 1) Weight constraint
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return fmt.Errorf("AddEdge(%d,%d, w=%g): %w", a, b, weight, ErrBadWeight)
	}
	// 2) Loop constraint
	if a == b && !g.allowLoops {
		return fmt.Errorf("AddEdge(%d,%d): %w", a, b, ErrLoopNotAllowed)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// 3) Simple-graph constraint on the canonical key
	p := Canonical(a, b)
	if _, ok := g.edges[p]; ok {
		return fmt.Errorf("AddEdge(%d,%d): %w", a, b, ErrEdgeExists)
	}

	// 4) Ensure both endpoints exist (idempotent)
	g.ensureVertex(a)
	g.ensureVertex(b)

	// 5) Store once, link from both endpoints (loops link once)
	e := &Edge{From: p.U, To: p.V, Weight: weight}
	g.edges[p] = e
	g.adjacency[p.U][p.V] = e
	g.adjacency[p.V][p.U] = e

	return nil
}

// AddWeight adds delta to the weight of the existing edge {a,b}.
// Direction is irrelevant: AddWeight(a,b,x) and AddWeight(b,a,x) touch the same edge.
//
// Returns ErrBadWeight, ErrEdgeNotFound.
// Complexity: O(1).
func (g *Graph) AddWeight(a, b int64, delta float64) error {
	if math.IsNaN(delta) || math.IsInf(delta, 0) {
		return fmt.Errorf("AddWeight(%d,%d, w=%g): %w", a, b, delta, ErrBadWeight)
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	e, ok := g.edges[Canonical(a, b)]
	if !ok {
		return fmt.Errorf("AddWeight(%d,%d): %w", a, b, ErrEdgeNotFound)
	}
	e.Weight += delta

	return nil
}

// SetWeight overwrites the weight of the existing edge {a,b}.
// Returns ErrBadWeight, ErrEdgeNotFound.
// Complexity: O(1).
func (g *Graph) SetWeight(a, b int64, weight float64) error {
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return fmt.Errorf("SetWeight(%d,%d, w=%g): %w", a, b, weight, ErrBadWeight)
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	e, ok := g.edges[Canonical(a, b)]
	if !ok {
		return fmt.Errorf("SetWeight(%d,%d): %w", a, b, ErrEdgeNotFound)
	}
	e.Weight = weight

	return nil
}

// Weight returns the weight of edge {a,b}.
// Returns ErrEdgeNotFound if the pair is not connected.
// Complexity: O(1).
func (g *Graph) Weight(a, b int64) (float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	e, ok := g.edges[Canonical(a, b)]
	if !ok {
		return 0, fmt.Errorf("Weight(%d,%d): %w", a, b, ErrEdgeNotFound)
	}

	return e.Weight, nil
}

// RemoveEdge deletes the edge {a,b}; both endpoints stay in the graph.
// Returns ErrEdgeNotFound if no such edge exists.
// Complexity: O(1).
func (g *Graph) RemoveEdge(a, b int64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	p := Canonical(a, b)
	if _, ok := g.edges[p]; !ok {
		return fmt.Errorf("RemoveEdge(%d,%d): %w", a, b, ErrEdgeNotFound)
	}
	delete(g.edges, p)
	delete(g.adjacency[p.U], p.V)
	delete(g.adjacency[p.V], p.U)

	return nil
}

// HasEdge reports whether {a,b} is connected, in either orientation.
// Complexity: O(1).
func (g *Graph) HasEdge(a, b int64) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.edges[Canonical(a, b)]

	return ok
}

// Neighbors returns the edges incident to id sorted by the opposite endpoint.
// A self-loop appears once. Returned pointers are live; treat them as read-only.
// Complexity: O(d log d).
func (g *Graph) Neighbors(id int64) ([]*Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adjacency[id]
	if !ok {
		return nil, fmt.Errorf("Neighbors(%d): %w", id, ErrVertexNotFound)
	}
	out := make([]*Edge, 0, len(nbrs))
	for _, e := range nbrs {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Other(id) < out[j].Other(id) })

	return out, nil
}

// NeighborIDs returns the unique IDs adjacent to id in ascending order.
// A vertex with a self-loop lists itself.
// Complexity: O(d log d).
func (g *Graph) NeighborIDs(id int64) ([]int64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adjacency[id]
	if !ok {
		return nil, fmt.Errorf("NeighborIDs(%d): %w", id, ErrVertexNotFound)
	}
	ids := make([]int64, 0, len(nbrs))
	for v := range nbrs {
		ids = append(ids, v)
	}
	sortIDs(ids)

	return ids, nil
}

// Degree returns the number of edge endpoints at id. A self-loop counts twice,
// so the degree sum over all vertices is always 2|E|.
// Complexity: O(1).
func (g *Graph) Degree(id int64) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adjacency[id]
	if !ok {
		return 0, fmt.Errorf("Degree(%d): %w", id, ErrVertexNotFound)
	}
	d := len(nbrs)
	if _, loop := nbrs[id]; loop {
		d++
	}

	return d, nil
}

// Vertices returns all vertex IDs in ascending order.
// Complexity: O(V·logV)
func (g *Graph) Vertices() []int64 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	ids := make([]int64, 0, len(g.adjacency))
	for id := range g.adjacency {
		ids = append(ids, id)
	}
	sortIDs(ids)

	return ids
}

// Edges returns all edges sorted by (From, To).
// Complexity: O(E·logE)
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})

	return out
}

// EdgeCount returns total number of edges. O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// VertexCount returns total number of vertices. O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}

// Looped reports whether the graph accepts self-loops.
func (g *Graph) Looped() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowLoops
}

// Clear resets the graph to empty state but preserves flags.
func (g *Graph) Clear() {
	g.mu.Lock()
	g.edges = make(map[Pair]*Edge)
	g.adjacency = make(map[int64]map[int64]*Edge)
	g.mu.Unlock()
}

// FilterEdges removes all edges failing the predicate. Vertices are kept.
// Complexity: O(E).
func (g *Graph) FilterEdges(pred func(*Edge) bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for p, e := range g.edges {
		if !pred(e) {
			delete(g.edges, p)
			delete(g.adjacency[p.U], p.V)
			delete(g.adjacency[p.V], p.U)
		}
	}
}

// Internal helper methods:
////////////////////

// ensureVertex makes adjacency[id] non-nil. Caller holds mu for writing.
func (g *Graph) ensureVertex(id int64) {
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = make(map[int64]*Edge)
	}
}

// sortIDs sorts vertex IDs ascending in place.
func sortIDs(ids []int64) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}
