// Package neighborhood extracts bounded k-hop neighborhoods from a contact
// graph.
//
// Extract runs a breadth-first search from a root vertex with a depth limit
// of k hops and returns the subgraph induced by every vertex discovered,
// root included. Edges between discovered vertices keep their weights, so
// the result can be fed straight back into netstats or degree.
//
//	sub, err := neighborhood.Extract(g, 42, neighborhood.DefaultRadius)
//
// k = 0 yields the single-vertex graph {root}. A negative radius returns
// ErrNegativeRadius; an absent root returns a wrapped core.ErrVertexNotFound.
package neighborhood
