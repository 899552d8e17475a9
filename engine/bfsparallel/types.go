package bfsparallel

import (
	"errors"

	"github.com/solverlab/puzzlesolve/codec"
	"github.com/solverlab/puzzlesolve/domain"
)

// Sentinel errors for bfsparallel.
var (
	ErrDomainNil     = errors.New("bfsparallel: domain is nil")
	ErrTooFewThreads = errors.New("bfsparallel: thread count must be >= 1")
	ErrNoSolution    = errors.New("bfsparallel: search exhausted with no winning state found")
)

// Option configures Solve via functional arguments, mirroring
// engine/bfsdisk.Option.
type Option func(*parallelOptions)

type parallelOptions struct {
	dir          string
	blockBits    uint
	outBufBytes  int
	inBufBytes   int
	keepGenFiles bool
	onGeneration func(gen int, frontierSize int)
}

func defaultOptions() parallelOptions {
	return parallelOptions{
		blockBits:    16,
		outBufBytes:  1 << 20,
		inBufBytes:   1 << 20,
		onGeneration: func(int, int) {},
	}
}

// WithDir sets the directory GEN-DDDD files are created under.
func WithDir(dir string) Option {
	return func(o *parallelOptions) { o.dir = dir }
}

// WithBlockBits sets the visited-bitmap partition exponent m.
func WithBlockBits(m uint) Option {
	return func(o *parallelOptions) { o.blockBits = m }
}

// WithBufferBytes sets the out-buffer and in-buffer sizes, corresponding
// to positional `a b` megabyte-budget CLI arguments.
func WithBufferBytes(outBytes, inBytes int) Option {
	return func(o *parallelOptions) {
		if outBytes > 0 {
			o.outBufBytes = outBytes
		}
		if inBytes > 0 {
			o.inBufBytes = inBytes
		}
	}
}

// WithKeepGenFiles prevents Result.Close from deleting the GEN-DDDD
// frontier files.
func WithKeepGenFiles(keep bool) Option {
	return func(o *parallelOptions) { o.keepGenFiles = keep }
}

// WithOnGeneration registers a callback invoked once per completed
// generation, with its index and frontier size.
func WithOnGeneration(fn func(gen, frontierSize int)) Option {
	return func(o *parallelOptions) {
		if fn != nil {
			o.onGeneration = fn
		}
	}
}

// Result holds the outcome of a completed parallel disk-swapping search.
// Its shape mirrors engine/bfsdisk.Result, since both engines produce
// the same GEN-DDDD directory layout (the order of states within a
// generation file may differ).
type Result struct {
	d         domain.Domain
	threads   int
	stateSize int
	dir       string
	ownDir    bool
	keepFiles bool
	lastGen   int
	start     codec.State
	goal      codec.State
	goalGen   int
	found     bool
	generation []int
}

// Solved reports whether a winning state was found.
func (r *Result) Solved() bool { return r.found }

// Dir returns the directory GEN-DDDD files were written under.
func (r *Result) Dir() string { return r.dir }

// GenerationSizes returns the frontier size of every generation that was
// written, indexed by generation number.
func (r *Result) GenerationSizes() []int { return r.generation }

// LastGen returns the index of the last generation file written.
func (r *Result) LastGen() int { return r.lastGen }

// Close removes the GEN-DDDD files this search produced, unless
// WithKeepGenFiles(true) was passed.
func (r *Result) Close() error {
	if r.keepFiles {
		return nil
	}

	return removeGenFiles(r.dir, r.lastGen, r.ownDir)
}
