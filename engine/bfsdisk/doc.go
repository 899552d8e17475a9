// Package bfsdisk implements disk-swapping breadth-first search: the
// visited set is a lazily-allocated partitioned bitmap (2^m-bit blocks,
// one owner pointer per block) and each generation's frontier lives in
// its own on-disk file rather than in memory, so the engine scales past
// whatever a single process's RAM addresses.
//
// Frontier files are named GEN-DDDD (a four-digit zero-padded decimal
// generation index) and hold a flat concatenation of state_size-byte
// little-endian encoded states, no header, no separator. Solution
// reconstruction re-reads every generation file in reverse, looking for
// the first state that has the current target among its neighbors,
// rather than storing parent links.
//
// Grounded on bfs.walker's queue/visited split (here
// generalized to files and a bitmap) and on core/types.go's locked,
// explicit style for the bitmap's per-block mutation path.
package bfsdisk
