package bfsddd

import (
	"github.com/solverlab/puzzlesolve/codec"
)

// Path reconstructs the sequence of encoded states from the start state
// to the winning state, inclusive. bfsddd never stores parent links
// (that per-state bookkeeping is exactly what delayed-duplicate-
// detection avoids), so the path is recovered by re-expanding each
// retained generation backward: for depth d down to 1, the predecessor
// of the current state is whichever state in generation d-1 has it
// among its neighbors.
func (r *Result) Path() ([][]byte, error) {
	if !r.found {
		return nil, ErrNoSolution
	}

	revPath := []codec.State{r.goal}
	cur := r.goal
	for depth := r.goalDepth; depth > 0; depth-- {
		pred, ok := r.findPredecessor(r.generations[depth-1], cur)
		if !ok {
			return nil, ErrNoSolution
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

// findPredecessor scans gen for a state whose neighbor set contains
// target, decoding each candidate into worker 0 in turn.
func (r *Result) findPredecessor(gen []codec.State, target codec.State) (codec.State, bool) {
	for _, s := range gen {
		r.d.Decode(0, s.Bytes(r.stateSize))
		for nb := range r.d.Neighbors(0) {
			if codec.Decode(nb) == target {
				return s, true
			}
		}
	}

	return 0, false
}
