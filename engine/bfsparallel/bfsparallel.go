package bfsparallel

import (
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"

	"github.com/solverlab/puzzlesolve/codec"
	"github.com/solverlab/puzzlesolve/domain"
	"github.com/solverlab/puzzlesolve/engine/bfsdisk"
)

// chunkControl is the master-to-worker handoff for one barrier round:
// the master populates it before calling barrierStart.Wait; workers read
// it after barrierStart.Wait returns. The barrier's own mutex/cond
// provide the happens-before edge, so chunkControl itself needs no lock.
type chunkControl struct {
	states   [][]byte
	gen      int // source generation; children belong to gen+1
	shutdown bool
	outFor   func(state []byte) error
}

// sharedOut is the single out-buffer and its flush lock, written by
// every worker under outMu.
type sharedOut struct {
	mu sync.Mutex
	w  *bfsdisk.GenWriter
}

func (s *sharedOut) append(state []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.w.Append(state)
}

// solutionBox guards the solution-found flag and winning-state record.
type solutionBox struct {
	mu      sync.Mutex
	found   bool
	goal    codec.State
	goalGen int
}

func (s *solutionBox) recordIfFirst(state codec.State, gen int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.found {
		s.found, s.goal, s.goalGen = true, state, gen
	}
}

// errBox records the first error any worker goroutine observes (e.g. an
// out-buffer flush failure), so Solve can surface it after the current
// round drains rather than losing it in a goroutine.
type errBox struct {
	mu  sync.Mutex
	err error
}

func (e *errBox) set(err error) {
	if err == nil {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.err == nil {
		e.err = err
	}
}

func (e *errBox) get() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.err
}

// Solve runs T-worker-thread disk-swapping breadth-first search over d's
// state space, starting from worker 0's current configuration. d must
// have been constructed with at least T workers (e.g.
// sokoban.NewDomain(inst, start, T)); Solve indexes workers 0..T-1.
func Solve(d domain.Domain, threads int, opts ...Option) (*Result, error) {
	if d == nil {
		return nil, ErrDomainNil
	}
	if threads < 1 {
		return nil, ErrTooFewThreads
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	ownDir := false
	if o.dir == "" {
		dir, err := os.MkdirTemp("", "bfsparallel-")
		if err != nil {
			return nil, errors.Wrap(err, "bfsparallel: create working directory")
		}
		o.dir = dir
		ownDir = true
	} else if err := os.MkdirAll(o.dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "bfsparallel: create working directory")
	}

	stateSize := d.StateSize()
	bitmap := bfsdisk.NewBitmap(uint64(d.DomainSize())+1, o.blockBits)

	start := codec.Decode(d.Encode(0))
	bitmap.TestAndSet(uint64(start))

	res := &Result{d: d, threads: threads, stateSize: stateSize, dir: o.dir, ownDir: ownDir, keepFiles: o.keepGenFiles, start: start}

	w0, err := bfsdisk.CreateGenFile(o.dir, 0, o.outBufBytes, int64(stateSize))
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

	sol := &solutionBox{}
	errs := &errBox{}
	barrierStart := newBarrier(threads + 1)
	barrierEnd := newBarrier(threads + 1)
	ctrl := &chunkControl{}

	var wg sync.WaitGroup
	for id := 0; id < threads; id++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			runWorker(worker, threads, d, bitmap, ctrl, barrierStart, barrierEnd, sol, errs)
		}(id)
	}

	maxStatesPerChunk := o.inBufBytes / stateSize
	if maxStatesPerChunk < threads {
		maxStatesPerChunk = threads
	}

	for gen := 0; ; gen++ {
		r, err := bfsdisk.OpenGenFile(o.dir, gen, stateSize, o.inBufBytes)
		if os.IsNotExist(err) {
			res.lastGen = gen - 1
			break
		}
		if err != nil {
			shutdownWorkers(ctrl, barrierStart, &wg)
			return nil, errors.Wrap(err, "bfsparallel: open generation file")
		}

		gw, err := bfsdisk.CreateGenFile(o.dir, gen+1, o.outBufBytes, 0)
		if err != nil {
			r.Close()
			shutdownWorkers(ctrl, barrierStart, &wg)
			return nil, err
		}
		out := &sharedOut{w: gw}
		var written int64

		for {
			chunk, err := readChunk(r, maxStatesPerChunk)
			if err != nil {
				r.Close()
				gw.Close()
				shutdownWorkers(ctrl, barrierStart, &wg)
				return nil, err
			}
			if len(chunk) == 0 {
				break
			}

			ctrl.states, ctrl.gen, ctrl.shutdown = chunk, gen, false
			runRound(ctrl, out, &written, barrierStart, barrierEnd)
			if err := errs.get(); err != nil {
				r.Close()
				gw.Close()
				shutdownWorkers(ctrl, barrierStart, &wg)
				return nil, err
			}
		}

		r.Close()
		if err := gw.Close(); err != nil {
			shutdownWorkers(ctrl, barrierStart, &wg)
			return nil, err
		}

		count := int(written)
		res.generation = append(res.generation, count)
		o.onGeneration(gen+1, count)

		sol.mu.Lock()
		won, goal, goalGen := sol.found, sol.goal, sol.goalGen
		sol.mu.Unlock()
		if won {
			res.found, res.goal, res.goalGen, res.lastGen = true, goal, goalGen, gen+1
			shutdownWorkers(ctrl, barrierStart, &wg)

			return res, nil
		}
		if count == 0 {
			res.lastGen = gen + 1
			break
		}
	}

	shutdownWorkers(ctrl, barrierStart, &wg)

	return res, nil
}

// readChunk reads up to max encoded states from r, each copied into its
// own backing array so workers can hold them past the next Next() call.
func readChunk(r *bfsdisk.GenReader, max int) ([][]byte, error) {
	chunk := make([][]byte, 0, max)
	for len(chunk) < max {
		state, ok, err := r.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		cp := make([]byte, len(state))
		copy(cp, state)
		chunk = append(chunk, cp)
	}

	return chunk, nil
}

// runRound hands one chunk to the worker pool and blocks until every
// worker has finished processing it, via the start/end barrier pair.
func runRound(ctrl *chunkControl, out *sharedOut, written *int64, barrierStart, barrierEnd *barrier) {
	ctrl.outFor = func(state []byte) error {
		if err := out.append(state); err != nil {
			return err
		}
		atomic.AddInt64(written, 1)

		return nil
	}
	barrierStart.Wait()
	barrierEnd.Wait()
}

// shutdownWorkers releases every worker goroutine and waits for them to
// exit, used both on normal completion and on any error path.
func shutdownWorkers(ctrl *chunkControl, barrierStart *barrier, wg *sync.WaitGroup) {
	ctrl.shutdown = true
	barrierStart.Wait()
	wg.Wait()
}

// removeGenFiles deletes GEN-0000 .. GEN-lastGen under dir, and removes
// dir itself if this engine created it.
func removeGenFiles(dir string, lastGen int, ownDir bool) error {
	if lastGen < 0 {
		return nil
	}
	for g := 0; g <= lastGen; g++ {
		if err := os.Remove(bfsdisk.GenFileName(dir, g)); err != nil && !os.IsNotExist(err) {
			return errors.Wrap(err, "bfsparallel: remove generation file")
		}
	}
	if !ownDir {
		return nil
	}

	return os.Remove(filepath.Clean(dir))
}
