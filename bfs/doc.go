// Package bfs provides breadth-first search over a core.View, returning
// the visit order and the hop distance of every reached vertex.
//
// The search honors an inclusive depth limit (WithMaxDepth; 0 visits the
// start only) and a context for cancellation (WithContext). Neighbors are
// expanded in ascending ID order, so results are reproducible.
//
//	res, err := bfs.BFS(g, 17, bfs.WithMaxDepth(2))
//	sub := core.InducedSubgraph(g, res.Visited())
//
// Complexity: O(V + E·log d) time (neighbor lists are sorted per vertex),
// O(V) memory.
//
// Errors:
//
//   - ErrGraphNil             nil graph (including a typed nil *core.Graph).
//   - ErrStartVertexNotFound  start vertex absent.
//   - ErrOptionViolation      negative MaxDepth.
//   - ErrNeighbors            NeighborIDs failed mid-walk.
//   - ctx.Err()               on cancellation.
package bfs
