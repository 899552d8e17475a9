package enginetest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solverlab/puzzlesolve/domain"
	"github.com/solverlab/puzzlesolve/engine/bfsddd"
	"github.com/solverlab/puzzlesolve/engine/bfsdisk"
	"github.com/solverlab/puzzlesolve/engine/bfsmem"
	"github.com/solverlab/puzzlesolve/engine/bfsparallel"
)

// Equivalence runs all four search engines over independent instances
// produced by newDomain (called once per engine, each with the worker
// count that engine needs), and asserts they agree on solvability and,
// when solvable, on shortest-solution length.
func Equivalence(t *testing.T, newDomain func(workers int) domain.Domain) {
	t.Helper()

	memRes, err := bfsmem.Solve(newDomain(1))
	require.NoError(t, err)

	dddRes, err := bfsddd.Solve(newDomain(1))
	require.NoError(t, err)

	diskRes, err := bfsdisk.Solve(newDomain(1))
	require.NoError(t, err)
	defer diskRes.Close()

	const threads = 4
	parRes, err := bfsparallel.Solve(newDomain(threads), threads)
	require.NoError(t, err)
	defer parRes.Close()

	require.Equal(t, memRes.Solved(), dddRes.Solved(), "bfsmem/bfsddd disagree on solvability")
	require.Equal(t, memRes.Solved(), diskRes.Solved(), "bfsmem/bfsdisk disagree on solvability")
	require.Equal(t, memRes.Solved(), parRes.Solved(), "bfsmem/bfsparallel disagree on solvability")

	if !memRes.Solved() {
		return
	}

	memPath, err := memRes.Path()
	require.NoError(t, err)
	dddPath, err := dddRes.Path()
	require.NoError(t, err)
	diskPath, err := diskRes.Path()
	require.NoError(t, err)
	parPath, err := parRes.Path()
	require.NoError(t, err)

	assert.Equal(t, len(memPath), len(dddPath), "bfsmem/bfsddd solution length mismatch")
	assert.Equal(t, len(memPath), len(diskPath), "bfsmem/bfsdisk solution length mismatch")
	assert.Equal(t, len(memPath), len(parPath), "bfsmem/bfsparallel solution length mismatch")
}
