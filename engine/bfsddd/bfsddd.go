package bfsddd

import (
	"sort"

	"github.com/solverlab/puzzlesolve/codec"
	"github.com/solverlab/puzzlesolve/domain"
)

// Solve runs delayed-duplicate-detection breadth-first search over d's
// state space starting from worker 0's current configuration. Each
// generation is accumulated into a capacity-bounded curBuffer (see
// WithBufferBytes); when the buffer fills mid-generation it repacks
// itself against prev and prevprev, and Solve fails with
// ErrOutOfMemory if even a freshly repacked buffer has no room left.
func Solve(d domain.Domain, opts ...Option) (*Result, error) {
	if d == nil {
		return nil, ErrDomainNil
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	stateSize := d.StateSize()
	capacity := o.bufBytes / stateSize
	if capacity < 1 {
		capacity = 1
	}

	start := codec.Decode(d.Encode(0))
	res := &Result{d: d, stateSize: stateSize, start: start}

	cur := []codec.State{start}
	res.generations = append(res.generations, cur)

	if d.Won(0) {
		res.found, res.goal, res.goalDepth = true, start, 0

		return res, nil
	}

	var prevprev, prev []codec.State
	prev = cur

	for depth := 1; len(prev) > 0; depth++ {
		buf := newCurBuffer(capacity)
		for _, s := range prev {
			d.Decode(0, s.Bytes(stateSize))
			for nb := range d.Neighbors(0) {
				if err := buf.append(codec.Decode(nb), prev, prevprev); err != nil {
					return nil, err
				}
			}
		}
		next := buf.finalize(prev, prevprev)

		o.onGeneration(depth, len(next))

		for _, s := range next {
			d.Decode(0, s.Bytes(stateSize))
			if d.Won(0) {
				res.generations = append(res.generations, next)
				res.found, res.goal, res.goalDepth = true, s, depth

				return res, nil
			}
		}

		res.generations = append(res.generations, next)
		if o.Undirected {
			prevprev = prev
		} else {
			prevprev = mergeSorted(prevprev, prev)
		}
		prev = next
	}

	return res, nil
}

// sortUnique sorts states ascending and removes duplicates in place.
func sortUnique(states []codec.State) []codec.State {
	if len(states) == 0 {
		return states
	}
	sort.Slice(states, func(i, j int) bool { return states[i] < states[j] })
	out := states[:1]
	for _, s := range states[1:] {
		if s != out[len(out)-1] {
			out = append(out, s)
		}
	}

	return out
}

// subtractSorted returns the states in candidates (already sorted,
// deduplicated) that appear in neither exclude1 nor exclude2 (also
// sorted), via a three-way merge rather than a map lookup.
func subtractSorted(candidates, exclude1, exclude2 []codec.State) []codec.State {
	i1, i2 := 0, 0
	var out []codec.State
	for _, c := range candidates {
		for i1 < len(exclude1) && exclude1[i1] < c {
			i1++
		}
		for i2 < len(exclude2) && exclude2[i2] < c {
			i2++
		}
		if i1 < len(exclude1) && exclude1[i1] == c {
			continue
		}
		if i2 < len(exclude2) && exclude2[i2] == c {
			continue
		}
		out = append(out, c)
	}

	return out
}

// mergeSorted merges two sorted, internally-deduplicated slices into one
// sorted, deduplicated union, favoring neither operand on a tie.
func mergeSorted(a, b []codec.State) []codec.State {
	out := make([]codec.State, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		case a[i] > b[j]:
			out = append(out, b[j])
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)

	return out
}
