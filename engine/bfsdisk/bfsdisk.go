package bfsdisk

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/solverlab/puzzlesolve/codec"
	"github.com/solverlab/puzzlesolve/domain"
)

// Solve runs disk-swapping breadth-first search over d's state space
// starting from worker 0's current configuration. The visited set is a
// lazily-allocated partitioned bitmap sized to DomainSize()+1 bits; each
// generation's frontier is written to, and linearly read back from, a
// GEN-DDDD file under the configured directory (see WithDir), so the
// engine scales past whatever fits in a single process's address space.
func Solve(d domain.Domain, opts ...Option) (*Result, error) {
	if d == nil {
		return nil, ErrDomainNil
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	ownDir := false
	if o.dir == "" {
		dir, err := os.MkdirTemp("", "bfsdisk-")
		if err != nil {
			return nil, errors.Wrap(err, "bfsdisk: create working directory")
		}
		o.dir = dir
		ownDir = true
	} else if err := os.MkdirAll(o.dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "bfsdisk: create working directory")
	}

	stateSize := d.StateSize()
	visited := NewBitmap(uint64(d.DomainSize())+1, o.blockBits)

	start := codec.Decode(d.Encode(0))
	visited.TestAndSet(uint64(start))

	res := &Result{d: d, stateSize: stateSize, dir: o.dir, ownDir: ownDir, keepFiles: o.keepGenFiles, start: start}

	w0, err := CreateGenFile(o.dir, 0, o.outBufBytes, int64(stateSize))
	if err != nil {
		return nil, err
	}
	if err := w0.Append(start.Bytes(stateSize)); err != nil {
		return nil, err
	}
	if err := w0.Close(); err != nil {
		return nil, err
	}
	res.generation = append(res.generation, 1)
	o.onGeneration(0, 1)

	if d.Won(0) {
		res.found, res.goal, res.goalGen, res.lastGen = true, start, 0, 0

		return res, nil
	}

	for gen := 0; ; gen++ {
		r, err := OpenGenFile(o.dir, gen, stateSize, o.inBufBytes)
		if os.IsNotExist(err) {
			res.lastGen = gen - 1

			return res, nil
		}
		if err != nil {
			return nil, errors.Wrap(err, "bfsdisk: open generation file")
		}

		w, err := CreateGenFile(o.dir, gen+1, o.outBufBytes, 0)
		if err != nil {
			r.Close()
			return nil, err
		}

		count := 0
		winner := codec.State(0)
		wonAny := false
		for {
			state, ok, err := r.Next()
			if err != nil {
				r.Close()
				w.Close()
				return nil, err
			}
			if !ok {
				break
			}

			d.Decode(0, state)
			for nb := range d.Neighbors(0) {
				nbState := codec.Decode(nb)
				if visited.TestAndSet(uint64(nbState)) {
					continue
				}
				if err := w.Append(nb); err != nil {
					r.Close()
					w.Close()
					return nil, err
				}
				count++

				d.Decode(0, nb)
				if d.Won(0) && !wonAny {
					wonAny, winner = true, nbState
				}
			}
		}

		r.Close()
		if err := w.Close(); err != nil {
			return nil, err
		}

		res.generation = append(res.generation, count)
		o.onGeneration(gen+1, count)

		if wonAny {
			res.found, res.goal, res.goalGen, res.lastGen = true, winner, gen+1, gen+1

			return res, nil
		}
		if count == 0 {
			res.lastGen = gen + 1

			return res, nil
		}
	}
}

// removeGenFiles deletes GEN-0000 .. GEN-lastGen under dir, and removes
// dir itself if this engine created it (a caller-supplied directory via
// WithDir is left in place).
func removeGenFiles(dir string, lastGen int, ownDir bool) error {
	if lastGen < 0 {
		return nil
	}
	for g := 0; g <= lastGen; g++ {
		if err := os.Remove(genFileName(dir, g)); err != nil && !os.IsNotExist(err) {
			return errors.Wrap(err, "bfsdisk: remove generation file")
		}
	}
	if !ownDir {
		return nil
	}

	return os.Remove(filepath.Clean(dir))
}
