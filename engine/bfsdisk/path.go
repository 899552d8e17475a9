package bfsdisk

import (
	"github.com/pkg/errors"

	"github.com/solverlab/puzzlesolve/codec"
)

// Path reconstructs the sequence of encoded states from the start state
// to the winning state, inclusive, by backward reconstruction: bfsdisk
// never stores parent links, so generation files GEN-g, GEN-(g-1), ..
// GEN-0 are re-read in reverse, and for each one the first state whose
// neighbor set contains the current target is its parent.
//
// This re-enumerates neighbors once per ancestor rather than storing a
// parent array, trading forward-search memory for reconstruction-time
// CPU; for typical solution lengths this cost is dwarfed by the forward
// search itself.
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

// findPredecessor scans GEN-gen for the first state whose neighbor set
// contains target.
func (r *Result) findPredecessor(gen int, target codec.State) (codec.State, error) {
	rd, err := OpenGenFile(r.dir, gen, r.stateSize, 1<<16)
	if err != nil {
		return 0, errors.Wrap(err, "bfsdisk: reopen generation file for reconstruction")
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

	return 0, errors.Errorf("bfsdisk: no predecessor found for state in generation %d", gen)
}
