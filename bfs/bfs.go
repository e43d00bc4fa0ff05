package bfs

import (
	"cmp"
	"context"
	"fmt"

	"github.com/katalvlaran/mincut/core"
)

type queueItem[K cmp.Ordered] struct {
	id    K
	depth int
}

// walker encapsulates mutable BFS state.
type walker[K cmp.Ordered] struct {
	graph   *core.WeightedGraph[K]
	opts    BFSOptions[K]
	ctx     context.Context
	queue   []queueItem[K]
	visited map[K]bool
	res     *BFSResult[K]
}

// BFS runs breadth-first search on g starting from start.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, or any hook/context error.
func BFS[K cmp.Ordered](g *core.WeightedGraph[K], start K, opts ...Option[K]) (*BFSResult[K], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions[K]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasNode(start) {
		return nil, ErrStartVertexNotFound
	}

	n := g.NodeCount()
	w := &walker[K]{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem[K], 0, n),
		visited: make(map[K]bool, n),
		res: &BFSResult[K]{
			Order:  make([]K, 0, n),
			Depth:  make(map[K]int, n),
			Parent: make(map[K]K, n),
		},
	}
	w.enqueue(start, 0)

	return w.res, w.loop()
}

func (w *walker[K]) enqueue(id K, d int) {
	w.visited[id] = true
	w.res.Depth[id] = d
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem[K]{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[K]) loop() error {
	for len(w.queue) > 0 {
		if err := w.ctx.Err(); err != nil {
			return err
		}
		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %v: %w", item.id, err)
		}

		next := item.depth + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		nbrs, err := w.graph.Neighbours(item.id)
		if err != nil {
			return fmt.Errorf("bfs: neighbours of %v: %w", item.id, err)
		}
		for _, nbr := range nbrs {
			if !w.visited[nbr] {
				w.res.Parent[nbr] = item.id
				w.enqueue(nbr, next)
			}
		}
	}

	return nil
}
