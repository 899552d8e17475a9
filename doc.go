// Package puzzlesolve is an exhaustive state-space search framework: a
// bijective perfect-hash state codec paired with a family of BFS search
// engines (in-memory, delayed-duplicate-detection, disk-swapping,
// multithreaded disk-swapping) driving a narrow domain.Domain interface.
//
// Three domains plug into that interface: sokoban (Sokoban with
// deadlock-detection preanalysis), npuzzle (the sliding-tile puzzle),
// and plank (the river-crossing / stumps-and-planks puzzle). Each
// domain owns its own state encoding and move generation; none of it
// is visible to the search engines in engine/bfsmem, engine/bfsddd,
// engine/bfsdisk, and engine/bfsparallel, which only ever see
// domain.Domain.
//
// cmd/bfsdisk-solve and cmd/bfsparallel-solve are the CLI entry points;
// the codec, domain, sokoban, npuzzle, plank, and engine/* packages are
// meant to be imported as libraries.
package puzzlesolve
