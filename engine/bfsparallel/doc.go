// Package bfsparallel is engine/bfsdisk's multithreaded sibling: the
// same partitioned, lazily-allocated visited bitmap and GEN-DDDD frontier
// files, driven by a master goroutine plus T worker goroutines instead
// of a single loop.
//
// The master performs all file I/O (reading the previous generation's
// frontier into an in-buffer, writing the next generation's out-buffer),
// splits each in-buffer chunk into T interleaved shares (worker i takes
// states i, i+T, i+2T, ...), and releases the
// workers at a generation barrier; each worker decodes its assigned
// states, enumerates neighbors, and test-and-sets their visited bit
// under that bit's block lock before appending newly-visited children to
// a shared, lock-protected out-buffer.
//
// Concurrency primitives:
//
//   - one sync.Mutex per visited-bitmap block (bfsdisk.Bitmap already
//     provides this; bfsparallel reuses it verbatim)
//   - one sync.Mutex guarding the solution-found flag and winning state
//   - one sync.Mutex guarding the shared out-buffer and its flush
//   - one T+1-participant generation barrier, built on sync.Cond since
//     the standard library has no native barrier type; it follows the
//     same style as core/types.go's muVert/muEdgeAdj split -- one mutex
//     per concurrency concern, explicit and minimal
//
// Ordering guarantees: the set of states discovered at generation g is
// identical to the single-threaded bfsdisk engine's, because enqueue-time
// visited-marking is atomic per block; only the on-disk order within a
// generation's file is nondeterministic.
package bfsparallel
