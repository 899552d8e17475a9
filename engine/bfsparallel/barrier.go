package bfsparallel

import "sync"

// barrier is a cyclic, reusable rendezvous point for n participants,
// built on sync.Cond with a generation counter for sense reversal (the
// standard library has no native barrier type). Every participant calls
// Wait once per round; no participant proceeds past Wait until all n
// have called it, at which point every call returns together and the
// barrier resets for the next round.
//
// This is the generation-barrier with T+1 participants: all workers
// plus the master wait at the barrier at the end of every in-buffer
// chunk. bfsparallel uses two such barriers per chunk (start and end)
// so the master can prepare a chunk before releasing workers into it,
// and drain their results before refilling.
type barrier struct {
	mu    sync.Mutex
	cond  *sync.Cond
	n     int
	count int
	round int
}

// newBarrier builds a barrier for n participants.
func newBarrier(n int) *barrier {
	b := &barrier{n: n}
	b.cond = sync.NewCond(&b.mu)

	return b
}

// Wait blocks until all n participants have called Wait for the current
// round, then returns for every caller simultaneously.
func (b *barrier) Wait() {
	b.mu.Lock()
	defer b.mu.Unlock()

	round := b.round
	b.count++
	if b.count == b.n {
		b.count = 0
		b.round++
		b.cond.Broadcast()

		return
	}
	for round == b.round {
		b.cond.Wait()
	}
}
