// SPDX-License-Identifier: MIT
// Package: epinet/bfs
//
// types.go — options, result and sentinel errors for BFS.
//
// Contract:
//   • Invalid options are recorded, not panicked on, and surface as
//     ErrOptionViolation when BFS runs.
//   • MaxDepth is inclusive: 0 visits the start vertex only.

package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/epinet/core"
)

// NoDepthLimit is the MaxDepth value meaning "explore the whole component".
const NoDepthLimit = -1

var (
	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned for a nil graph. It is core.ErrNilGraph.
	ErrGraphNil = core.ErrNilGraph

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures a BFS run.
type Option func(*options)

type options struct {
	ctx      context.Context
	maxDepth int
	err      error
}

func newOptions(opts ...Option) options {
	o := options{ctx: context.Background(), maxDepth: NoDepthLimit}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithContext stops the search with ctx.Err() once ctx is done.
// A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithMaxDepth limits the search to vertices at most d hops away.
// d < 0 is recorded as ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.maxDepth = d
	}
}

// BFSResult holds the visit order and the hop distance of every
// discovered vertex.
type BFSResult struct {
	Order []int64
	Depth map[int64]int
}

// Visited returns the set of discovered vertices, in the shape
// core.InducedSubgraph expects.
func (r *BFSResult) Visited() map[int64]bool {
	out := make(map[int64]bool, len(r.Depth))
	for id := range r.Depth {
		out[id] = true
	}

	return out
}
