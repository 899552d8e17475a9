// Package bfsddd implements delayed-duplicate-detection breadth-first
// search: instead of an O(DomainSize) visited array, each generation's
// frontier is kept as a sorted, deduplicated slice of ranks, and new
// candidates are filtered against the current and previous generation
// via a sorted merge rather than a random-access lookup.
//
// This trades a full-domain-sized array for O(sum of generation sizes)
// memory, at the cost of a sort and linear merges per generation instead
// of O(1) array writes — the right tradeoff when DomainSize() is too
// large for engine/bfsmem's parent array but the reachable state count
// stays modest.
//
// The generation under construction (cur) is held in a curBuffer whose
// capacity is set by WithBufferBytes: a user-supplied budget, not an
// incidental implementation detail, since that budget is what bounds
// how deep this engine can search at all. Children are appended to an
// unsorted tail as they're discovered; once the tail and the
// already-filtered head together reach capacity, a repack sorts and
// deduplicates the tail, subtracts anything already present in prev or
// prevprev, and merges the remainder into head. If a repacked buffer is
// still full, Solve returns ErrOutOfMemory rather than growing past the
// configured budget.
//
// Grounded on bfs.walker's queue/visited split, generalized from a
// single visited set to a three-generation (prevprev/prev/cur) sliding
// window. In the undirected case, prevprev carries forward only the
// single generation just expanded, since an edge can never connect
// states more than one BFS layer apart; the directed case instead
// accumulates the full union of every earlier generation, since a
// one-way transition may reach arbitrarily far into the past.
package bfsddd
