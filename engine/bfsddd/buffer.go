package bfsddd

import "github.com/solverlab/puzzlesolve/codec"

// curBuffer accumulates the generation under construction (spec.md's
// "cur") within a fixed state capacity: a sorted, deduplicated,
// already-filtered head plus an unsorted tail appended verbatim as
// children are discovered. Repacking folds the tail into the head,
// reclaiming the space duplicates (against prev, prevprev, or within
// the tail itself) would otherwise waste.
type curBuffer struct {
	capacity int
	head     []codec.State
	tail     []codec.State
}

// newCurBuffer builds a curBuffer that holds at most capacity states
// across head and tail combined.
func newCurBuffer(capacity int) *curBuffer {
	return &curBuffer{capacity: capacity}
}

// len reports the total number of states currently held, head and tail
// combined, counting tail entries that may yet prove to be duplicates.
func (b *curBuffer) len() int {
	return len(b.head) + len(b.tail)
}

// append adds child to the tail, verbatim, without checking it against
// prev/prevprev/head yet. If the buffer is at capacity, it first repacks
// against prev and prevprev to reclaim duplicate-occupied space; if the
// buffer is still full after repacking, it returns ErrOutOfMemory rather
// than growing past the configured budget.
func (b *curBuffer) append(child codec.State, prev, prevprev []codec.State) error {
	if b.len() >= b.capacity {
		b.repack(prev, prevprev)
		if b.len() >= b.capacity {
			return ErrOutOfMemory
		}
	}
	b.tail = append(b.tail, child)

	return nil
}

// repack sorts and deduplicates the tail, removes any entries already
// present in prev or prevprev, and merges what remains into head. A
// repack on an empty tail is a no-op.
func (b *curBuffer) repack(prev, prevprev []codec.State) {
	if len(b.tail) == 0 {
		return
	}
	tail := sortUnique(b.tail)
	tail = subtractSorted(tail, prev, prevprev)
	b.head = mergeSorted(b.head, tail)
	b.tail = b.tail[:0]
}

// finalize repacks any remaining tail entries and returns the completed
// generation: sorted, deduplicated, and filtered against prev and
// prevprev.
func (b *curBuffer) finalize(prev, prevprev []codec.State) []codec.State {
	b.repack(prev, prevprev)

	return b.head
}
