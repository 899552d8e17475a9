package bfsmem

import (
	"context"
	"errors"

	"github.com/solverlab/puzzlesolve/codec"
)

// Sentinel errors for bfsmem.
var (
	// ErrDomainNil is returned when Solve is called with a nil Domain.
	ErrDomainNil = errors.New("bfsmem: domain is nil")

	// ErrDomainTooLarge is returned when DomainSize()+1 would overflow
	// int, since the parent array is indexed by int.
	ErrDomainTooLarge = errors.New("bfsmem: domain size exceeds addressable memory")

	// ErrNoSolution is returned by Result.Path when Won was never
	// observed during the search.
	ErrNoSolution = errors.New("bfsmem: start state already explored with no winning state found")
)

// unvisited and root are the two sentinel prev-array values: unvisited
// marks a state never enqueued, root marks the start state (which has
// no parent).
const (
	unvisited int64 = -1
	root      int64 = -2
)

// Option configures Solve via functional arguments, mirroring
// bfs.Option's style.
type Option func(*options)

type options struct {
	ctx      context.Context
	onVisit  func(depth int)
	maxDepth int
}

func defaultOptions() options {
	return options{
		ctx:     context.Background(),
		onVisit: func(int) {},
	}
}

// WithContext sets a context whose cancellation aborts the search.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithOnVisit registers a callback invoked once per dequeued state, with
// its BFS depth.
func WithOnVisit(fn func(depth int)) Option {
	return func(o *options) {
		if fn != nil {
			o.onVisit = fn
		}
	}
}

// WithMaxDepth bounds the search to states at most d edges from the
// start; d <= 0 means unbounded.
func WithMaxDepth(d int) Option {
	return func(o *options) { o.maxDepth = d }
}

// Result holds the outcome of a completed search. prev[r] holds the rank
// of the state that first enqueued state r, or one of the unvisited/root
// sentinels; a state's full byte encoding is recoverable from its rank
// alone via codec.State.Bytes, so no separate state table is kept.
type Result struct {
	stateSize int
	prev      []int64
	start     codec.State
	goal      codec.State
	found     bool
}

// Solved reports whether a winning state was found.
func (r *Result) Solved() bool { return r.found }

// Path reconstructs the sequence of encoded states from the start state
// to the winning state, inclusive. Returns ErrNoSolution if no winning
// state was found.
func (r *Result) Path() ([][]byte, error) {
	if !r.found {
		return nil, ErrNoSolution
	}

	var revPath []codec.State
	for cur := r.goal; ; {
		revPath = append(revPath, cur)
		if cur == r.start {
			break
		}
		cur = codec.State(r.prev[cur])
	}

	path := make([][]byte, len(revPath))
	for i, s := range revPath {
		path[len(revPath)-1-i] = s.Bytes(r.stateSize)
	}

	return path, nil
}
