// SPDX-License-Identifier: MIT
// Package: epinet/bfs
//
// bfs.go — queue-driven breadth-first walk.

package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/epinet/core"
)

// ErrNeighbors is returned when fetching neighbors from the graph fails.
var ErrNeighbors = errors.New("bfs: neighbor iteration error")

// queueItem pairs a vertex ID with its BFS depth.
type queueItem struct {
	id    int64
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph    core.View
	ctx      context.Context
	maxDepth int
	queue    []queueItem
	res      *BFSResult
}

// BFS runs breadth-first search on g from startID. Edge weights are
// ignored: distance is hop count. Neighbors are expanded in ascending ID
// order, so Order is reproducible.
//
// Returns ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation,
// ErrNeighbors, or ctx.Err() on cancellation. On cancellation the partial
// result is returned alongside the error.
func BFS(g core.View, startID int64, opts ...Option) (*BFSResult, error) {
	if core.IsNil(g) {
		return nil, ErrGraphNil
	}
	o := newOptions(opts...)
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(startID) {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, startID)
	}

	n := g.VertexCount()
	w := &walker{
		graph:    g,
		ctx:      o.ctx,
		maxDepth: o.maxDepth,
		queue:    make([]queueItem, 0, n),
		res: &BFSResult{
			Order: make([]int64, 0, n),
			Depth: make(map[int64]int, n),
		},
	}
	w.enqueue(startID, 0)

	return w.res, w.loop()
}

// enqueue records id at depth d and appends it to the queue.
func (w *walker) enqueue(id int64, d int) {
	w.res.Depth[id] = d
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	var item queueItem
	for len(w.queue) > 0 {
		if err := w.ctx.Err(); err != nil {
			return err
		}
		item, w.queue = w.queue[0], w.queue[1:]
		w.res.Order = append(w.res.Order, item.id)

		if w.maxDepth != NoDepthLimit && item.depth >= w.maxDepth {
			continue
		}
		nbrs, err := w.graph.NeighborIDs(item.id)
		if err != nil {
			return fmt.Errorf("%w: neighbors of %d: %v", ErrNeighbors, item.id, err)
		}
		for _, nbr := range nbrs {
			if _, seen := w.res.Depth[nbr]; !seen {
				w.enqueue(nbr, item.depth+1)
			}
		}
	}

	return nil
}
