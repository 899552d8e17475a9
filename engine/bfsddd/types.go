package bfsddd

import (
	"errors"

	"github.com/solverlab/puzzlesolve/codec"
	"github.com/solverlab/puzzlesolve/domain"
)

// Sentinel errors for bfsddd.
var (
	ErrDomainNil  = errors.New("bfsddd: domain is nil")
	ErrNoSolution = errors.New("bfsddd: search exhausted with no winning state found")

	// ErrOutOfMemory is returned when cur's buffer, sized by
	// WithBufferBytes, cannot hold the next child even after a repack
	// (sorting the unsorted tail and merging it into the deduplicated
	// head). The buffer's size is the hard bound on how deep this
	// engine can search, per spec.md's "a user-supplied buffer whose
	// size determines the deepest reachable search."
	ErrOutOfMemory = errors.New("bfsddd: cur buffer exhausted, cannot repack further")
)

// Option configures Solve via functional arguments.
type Option func(*DDDOptions)

// DDDOptions holds tunables for the search, mirroring bfs.BFSOptions'
// functional-option struct.
type DDDOptions struct {
	// Undirected carries only the immediately preceding generation
	// forward as prevprev (one BFS layer of history), which is enough
	// to exclude the "walked back to where this layer was discovered
	// from" duplicates in any undirected graph: a state two layers back
	// is the only possible revisit source, since an edge can never
	// connect two states more than one BFS layer apart. Valid only when
	// every move has a matching reverse move (true of npuzzle's slides;
	// not of a Sokoban push, since blocks are never pulled). When false,
	// a domain with one-way transitions
	// may have back-edges reaching arbitrarily far into the past, so
	// prevprev instead accumulates the full union of every earlier
	// generation.
	Undirected bool

	// bufBytes bounds cur: the maximum number of states (bufBytes /
	// domain.StateSize()) held, across the sorted head and unsorted
	// tail combined, before a repack is forced and, failing that,
	// ErrOutOfMemory is returned.
	bufBytes int

	onGeneration func(depth, frontierSize int)
}

func defaultOptions() DDDOptions {
	return DDDOptions{
		Undirected: true,
		// Generous enough that no scenario in this module's test suite
		// needs to configure it explicitly; WithBufferBytes lowers it
		// to actually exercise the repack/OOM paths.
		bufBytes:     1 << 26,
		onGeneration: func(int, int) {},
	}
}

// WithUndirected toggles the one-generation prevprev shortcut.
func WithUndirected(v bool) Option {
	return func(o *DDDOptions) { o.Undirected = v }
}

// WithBufferBytes sets the byte budget for cur, the generation under
// construction. Solve divides this by the domain's StateSize() to get
// the maximum number of states cur may hold at once; once that capacity
// is reached mid-generation, Solve repacks (sorts the unsorted tail and
// merges it into the deduplicated head, against prev and prevprev) to
// reclaim space consumed by duplicates, and returns ErrOutOfMemory if
// the repacked buffer is still full.
func WithBufferBytes(bytes int) Option {
	return func(o *DDDOptions) {
		if bytes > 0 {
			o.bufBytes = bytes
		}
	}
}

// WithOnGeneration registers a callback invoked once per completed
// generation, with its depth and frontier size.
func WithOnGeneration(fn func(depth, frontierSize int)) Option {
	return func(o *DDDOptions) {
		if fn != nil {
			o.onGeneration = fn
		}
	}
}

// Result holds the outcome of a completed search: every generation's
// sorted, deduplicated frontier, in order from the start (generation 0)
// to the generation the winning state was found in.
type Result struct {
	d           domain.Domain
	stateSize   int
	generations [][]codec.State
	start       codec.State
	goal        codec.State
	goalDepth   int
	found       bool
}

// Solved reports whether a winning state was found.
func (r *Result) Solved() bool { return r.found }

// Depth returns the BFS depth (edge count) of the winning state.
func (r *Result) Depth() int { return r.goalDepth }
