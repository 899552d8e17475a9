package bfsdisk

import (
	"errors"

	"github.com/solverlab/puzzlesolve/codec"
	"github.com/solverlab/puzzlesolve/domain"
)

// Sentinel errors for bfsdisk.
var (
	ErrDomainNil  = errors.New("bfsdisk: domain is nil")
	ErrNoSolution = errors.New("bfsdisk: search exhausted with no winning state found")
)

// Option configures Solve via functional arguments, mirroring
// bfs.Option's and flow.FlowOptions' style.
type Option func(*diskOptions)

type diskOptions struct {
	dir          string
	blockBits    uint
	outBufBytes  int
	inBufBytes   int
	keepGenFiles bool
	onGeneration func(gen int, frontierSize int)
}

func defaultOptions() diskOptions {
	return diskOptions{
		blockBits:    16,
		outBufBytes:  1 << 20,
		inBufBytes:   1 << 20,
		onGeneration: func(int, int) {},
	}
}

// WithDir sets the directory GEN-DDDD files are created under. Defaults
// to a fresh temporary directory that Result.Close removes.
func WithDir(dir string) Option {
	return func(o *diskOptions) { o.dir = dir }
}

// WithBlockBits sets the visited-bitmap partition exponent m (2^m bits
// per block); m=0 yields a single unpartitioned block.
func WithBlockBits(m uint) Option {
	return func(o *diskOptions) { o.blockBits = m }
}

// WithBufferBytes sets the out-buffer (frontier write) and in-buffer
// (frontier read) flush sizes, corresponding to "out-buffer
// megabyte budget" CLI argument.
func WithBufferBytes(outBytes, inBytes int) Option {
	return func(o *diskOptions) {
		if outBytes > 0 {
			o.outBufBytes = outBytes
		}
		if inBytes > 0 {
			o.inBufBytes = inBytes
		}
	}
}

// WithKeepGenFiles prevents Result.Close from deleting the GEN-DDDD
// frontier files. A later Solve over the same directory does not resume
// from them: Solve always recreates GEN-0000 holding only the start
// state and overwrites the generation files after it.
func WithKeepGenFiles(keep bool) Option {
	return func(o *diskOptions) { o.keepGenFiles = keep }
}

// WithOnGeneration registers a callback invoked once per completed
// generation, with its index and frontier size.
func WithOnGeneration(fn func(gen, frontierSize int)) Option {
	return func(o *diskOptions) {
		if fn != nil {
			o.onGeneration = fn
		}
	}
}

// Result holds the outcome of a completed disk-swapping search.
type Result struct {
	d          domain.Domain
	stateSize  int
	dir        string
	ownDir     bool
	keepFiles  bool
	lastGen    int
	start      codec.State
	goal       codec.State
	goalGen    int
	found      bool
	generation []int // frontierSize per generation index, for property tests
}

// Solved reports whether a winning state was found.
func (r *Result) Solved() bool { return r.found }

// Dir returns the directory GEN-DDDD files were written under.
func (r *Result) Dir() string { return r.dir }

// GenerationSizes returns the frontier size of every generation that was
// written, indexed by generation number.
func (r *Result) GenerationSizes() []int { return r.generation }

// LastGen returns the index of the last generation file written (the
// first empty generation, or the one the winning state was found in).
func (r *Result) LastGen() int { return r.lastGen }

// Close removes the GEN-DDDD files this search produced, unless
// WithKeepGenFiles(true) was passed.
func (r *Result) Close() error {
	if r.keepFiles {
		return nil
	}

	return removeGenFiles(r.dir, r.lastGen, r.ownDir)
}
