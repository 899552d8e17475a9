// Package bfsmem implements the simplest search engine: an exhaustive
// breadth-first search holding one int64 "parent rank" entry per state
// in a flat array sized to the domain's full address space.
//
// This is the right engine when DomainSize() is small enough that an
// 8-byte-per-state parent array fits comfortably in memory. Larger
// domains should use engine/bfsddd (sorted-run duplicate detection) or
// engine/bfsdisk (partitioned bitmap with disk-backed frontiers).
//
// Grounded on bfs.walker: a mutable struct holding the
// queue and visited set, with enqueue/dequeue/loop split into small
// methods. Here "visited" is the prev array itself — a state is visited
// iff its prev slot is no longer the unvisited sentinel.
package bfsmem
