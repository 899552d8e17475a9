package bfsmem

import (
	"math"

	"github.com/solverlab/puzzlesolve/codec"
	"github.com/solverlab/puzzlesolve/domain"
)

// queueItem pairs a state's rank with its BFS depth; the prev array
// itself stores parent links, so no separate visited set is needed.
type queueItem struct {
	rank  codec.State
	depth int
}

// walker encapsulates mutable search state, mirroring bfs.walker's
// split of enqueue/dequeue/loop into small methods.
type walker struct {
	d     domain.Domain
	opts  options
	queue []queueItem
	prev  []int64
}

// Solve runs an exhaustive in-memory breadth-first search over d's state
// space starting from worker 0's current configuration, until a state
// satisfying d.Won is found or the queue is exhausted.
//
// The parent array is sized DomainSize()+1, so this engine is only
// appropriate when that fits in memory (roughly 8 bytes per state).
func Solve(d domain.Domain, opts ...Option) (*Result, error) {
	if d == nil {
		return nil, ErrDomainNil
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := d.DomainSize()
	if float64(n) >= math.MaxInt64 {
		return nil, ErrDomainTooLarge
	}

	w := &walker{
		d:    d,
		opts: o,
		prev: make([]int64, int(n)+1),
	}
	for i := range w.prev {
		w.prev[i] = unvisited
	}

	start := codec.Decode(d.Encode(0))
	w.prev[start] = root
	w.queue = append(w.queue, queueItem{rank: start, depth: 0})

	res := &Result{stateSize: d.StateSize(), start: start}

	if d.Won(0) {
		res.found = true
		res.goal = start

		return res, nil
	}

	for len(w.queue) > 0 {
		select {
		case <-o.ctx.Done():
			return res, o.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.opts.onVisit(item.depth)

		if o.maxDepth > 0 && item.depth >= o.maxDepth {
			continue
		}

		d.Decode(0, codec.State(item.rank).Bytes(d.StateSize()))
		for nb := range d.Neighbors(0) {
			nbRank := codec.Decode(nb)
			if w.prev[nbRank] != unvisited {
				continue
			}
			w.prev[nbRank] = int64(item.rank)

			d.Decode(0, nb)
			if d.Won(0) {
				res.found = true
				res.goal = nbRank
				res.prev = w.prev

				return res, nil
			}
			w.queue = append(w.queue, queueItem{rank: nbRank, depth: item.depth + 1})
		}
	}

	res.prev = w.prev

	return res, nil
}
