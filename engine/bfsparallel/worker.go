package bfsparallel

import (
	"github.com/solverlab/puzzlesolve/codec"
	"github.com/solverlab/puzzlesolve/domain"
	"github.com/solverlab/puzzlesolve/engine/bfsdisk"
)

// runWorker is the per-thread loop: wait for the master's "chunk ready"
// signal, process every threads-th state of
// the current chunk (worker id as the stride offset), then wait again so
// the master knows every worker has drained before it refills.
//
// worker owns domain worker-id `worker`; it never touches any other
// worker's configuration, so no lock is needed on the domain itself.
func runWorker(
	worker, threads int,
	d domain.Domain,
	bitmap *bfsdisk.Bitmap,
	ctrl *chunkControl,
	barrierStart, barrierEnd *barrier,
	sol *solutionBox,
	errs *errBox,
) {
	for {
		barrierStart.Wait()
		if ctrl.shutdown {
			return
		}

		processShare(worker, threads, d, bitmap, ctrl, sol, errs)

		barrierEnd.Wait()
	}
}

// processShare expands states[worker], states[worker+threads], .. of the
// current chunk, marking each newly-discovered child visited and
// appending it to the shared out-buffer.
func processShare(worker, threads int, d domain.Domain, bitmap *bfsdisk.Bitmap, ctrl *chunkControl, sol *solutionBox, errs *errBox) {
	states := ctrl.states
	for i := worker; i < len(states); i += threads {
		d.Decode(worker, states[i])
		for nb := range d.Neighbors(worker) {
			nbState := codec.Decode(nb)
			if bitmap.TestAndSet(uint64(nbState)) {
				continue
			}

			d.Decode(worker, nb)
			if d.Won(worker) {
				sol.recordIfFirst(nbState, ctrl.gen+1)
			}

			if err := ctrl.outFor(nb); err != nil {
				errs.set(err)
				return
			}
		}
	}
}
