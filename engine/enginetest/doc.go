// Package enginetest is the shared property-test harness for property 3
// ("Engine equivalence"): on the same instance, BFS-mem,
// BFS-DDD, BFS-disk, and BFS-parallel must discover the same
// shortest-solution length (solution sequences may differ in
// tie-breaking, so only the length is compared, not the exact path).
//
// This package's own enginetest_test.go runs Equivalence against one
// sokoban, one npuzzle and one plank instance; the domain packages'
// tests do not call it themselves.
package enginetest
