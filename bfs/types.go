package bfs

import (
	"cmp"
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start node is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation by BFS.
type Option[K cmp.Ordered] func(*BFSOptions[K])

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions[K cmp.Ordered] struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a node is enqueued, with its depth.
	OnEnqueue func(id K, depth int)

	// OnVisit is called when visiting a node. A non-nil error aborts the search.
	OnVisit func(id K, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	MaxDepth int

	err error
}

// DefaultOptions returns options with a background context, no depth limit
// and no-op hooks.
func DefaultOptions[K cmp.Ordered]() BFSOptions[K] {
	return BFSOptions[K]{
		Ctx:       context.Background(),
		OnEnqueue: func(K, int) {},
		OnVisit:   func(K, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext[K cmp.Ordered](ctx context.Context) Option[K] {
	return func(o *BFSOptions[K]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue[K cmp.Ordered](fn func(id K, depth int)) Option[K] {
	return func(o *BFSOptions[K]) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit[K cmp.Ordered](fn func(id K, depth int) error) Option[K] {
	return func(o *BFSOptions[K]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: no depth limit
//	d < 0: ErrOptionViolation
func WithMaxDepth[K cmp.Ordered](d int) Option[K] {
	return func(o *BFSOptions[K]) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// BFSResult holds the outcome of a traversal:
//   - Order: nodes in visit sequence.
//   - Depth: hop distance from the start.
//   - Parent: predecessor in the BFS tree (absent for the start).
type BFSResult[K cmp.Ordered] struct {
	Order  []K
	Depth  map[K]int
	Parent map[K]K
}

// PathTo reconstructs the path from the start node to dest.
func (r *BFSResult[K]) PathTo(dest K) ([]K, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("bfs: no path to %v", dest)
	}
	path := []K{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
