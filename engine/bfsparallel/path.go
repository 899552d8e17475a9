package bfsparallel

import (
	"github.com/pkg/errors"

	"github.com/solverlab/puzzlesolve/codec"
	"github.com/solverlab/puzzlesolve/engine/bfsdisk"
)

// Path reconstructs the sequence of encoded states from the start state
// to the winning state, inclusive. This reconstruction is not
// parallelized: it re-reads generation files in reverse using only
// worker 0, identically to engine/bfsdisk.Result.Path.
func (r *Result) Path() ([][]byte, error) {
	if !r.found {
		return nil, ErrNoSolution
	}

	revPath := []codec.State{r.goal}
	cur := r.goal
	for gen := r.goalGen; gen > 0; gen-- {
		pred, err := r.findPredecessor(gen-1, cur)
		if err != nil {
			return nil, err
		}
		revPath = append(revPath, pred)
		cur = pred
	}

	path := make([][]byte, len(revPath))
	for i, s := range revPath {
		path[len(revPath)-1-i] = s.Bytes(r.stateSize)
	}

	return path, nil
}

func (r *Result) findPredecessor(gen int, target codec.State) (codec.State, error) {
	rd, err := bfsdisk.OpenGenFile(r.dir, gen, r.stateSize, 1<<16)
	if err != nil {
		return 0, errors.Wrap(err, "bfsparallel: reopen generation file for reconstruction")
	}
	defer rd.Close()

	for {
		state, ok, err := rd.Next()
		if err != nil {
			return 0, err
		}
		if !ok {
			break
		}
		candidate := codec.Decode(state)

		r.d.Decode(0, state)
		for nb := range r.d.Neighbors(0) {
			if codec.Decode(nb) == target {
				return candidate, nil
			}
		}
	}

	return 0, errors.Errorf("bfsparallel: no predecessor found for state in generation %d", gen)
}
