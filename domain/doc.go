// Package domain defines the narrow contract through which every BFS
// search engine in this module drives a puzzle-specific move generator,
// independent of whether that domain is Sokoban, the sliding n-puzzle,
// or the plank-crossing puzzle.
//
// What
//
//   - Domain exposes StateSize/DomainSize (codec sizing), Encode/Decode
//     (wire-format round trip of the current configuration), Neighbors
//     (a lazy, pull-based successor iterator), Won, and Print.
//
// Why
//
//   - Engines (engine/bfsmem, engine/bfsddd, engine/bfsdisk,
//     engine/bfsparallel) must not know anything puzzle-specific; this
//     interface is the only thing they import from a domain package.
//
// Worker-id discipline
//
//	Every method takes a worker int. A Domain implementation keeps one
//	mutable configuration per worker id so that concurrent callers (the
//	parallel engine's T worker goroutines) never share mutable state.
//	worker ids are small, dense integers starting at 0; a Domain sizes
//	its per-worker storage the first time it sees a given id count via
//	its own constructor (NewDomain(inst, start, numWorkers) in each
//	domain package), not
//	through this interface.
//
// Aliasing contract
//
//	The []byte returned by Encode has a lifetime only until the next
//	call on the same worker id: a Domain may reuse its backing array.
//	Callers that need to retain an encoded state past that point must
//	copy it (every engine in this module does so immediately).
//
// Re-architecture note
//
//	A two-way "add_child"-style callback is replaced here by a Go 1.23
//	iter.Seq[[]byte] pull iterator: engines range over Neighbors(worker)
//	instead of passing a callback down into the domain. This shape is
//	new, built directly against the language feature rather than copied
//	from an existing file.
package domain
