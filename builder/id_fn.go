// Package builder provides ID schemes for graph constructors.
package builder

import "fmt"

// IDFn generates a vertex identifier from its zero‐based index.
// It must be a pure, deterministic function.
type IDFn func(idx int) int64

// DefaultIDFn returns idx itself, e.g. 0→0, 42→42.
func DefaultIDFn(idx int) int64 {
	return int64(idx)
}

// OffsetIDFn returns an IDFn yielding base+idx. Use it to place several
// fixtures side by side in one BuildGraph call without ID collisions.
func OffsetIDFn(base int64) IDFn {
	return func(idx int) int64 {
		return base + int64(idx)
	}
}

// StrideIDFn returns an IDFn yielding base + idx*stride. Panics if stride == 0.
func StrideIDFn(base, stride int64) IDFn {
	if stride == 0 {
		panic(fmt.Sprintf("StrideIDFn: stride must be non-zero, got %d", stride))
	}
	return func(idx int) int64 {
		return base + int64(idx)*stride
	}
}

// WithIDOffset sets the ID scheme to OffsetIDFn(base).
func WithIDOffset(base int64) BuilderOption {
	return WithIDScheme(OffsetIDFn(base))
}
