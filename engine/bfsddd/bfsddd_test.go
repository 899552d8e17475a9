package bfsddd_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solverlab/puzzlesolve/engine/bfsddd"
	"github.com/solverlab/puzzlesolve/npuzzle"
	"github.com/solverlab/puzzlesolve/sokoban"
)

const twoByTwo = `size 2 2
tiles
3 1
2 0
goal
1 2
3 0
`

const trivial = `size 5 3
map
#####
#@$.#
#####
`

func TestSolve_TrivialSokoban(t *testing.T) {
	inst, start, err := sokoban.Load(strings.NewReader(trivial))
	require.NoError(t, err)
	d := sokoban.NewDomain(inst, start, 1)

	res, err := bfsddd.Solve(d)
	require.NoError(t, err)
	require.True(t, res.Solved())
	assert.Equal(t, 1, res.Depth())

	path, err := res.Path()
	require.NoError(t, err)
	assert.Len(t, path, 2) // start state, then the single push
}

func TestSolve_Directed(t *testing.T) {
	inst, start, err := sokoban.Load(strings.NewReader(trivial))
	require.NoError(t, err)
	d := sokoban.NewDomain(inst, start, 1)

	res, err := bfsddd.Solve(d, bfsddd.WithUndirected(false))
	require.NoError(t, err)
	require.True(t, res.Solved())

	path, err := res.Path()
	require.NoError(t, err)
	assert.Len(t, path, 2)
}

func TestSolve_OnGenerationCallback(t *testing.T) {
	inst, start, err := sokoban.Load(strings.NewReader(trivial))
	require.NoError(t, err)
	d := sokoban.NewDomain(inst, start, 1)

	var depths []int
	_, err = bfsddd.Solve(d, bfsddd.WithOnGeneration(func(depth, size int) {
		depths = append(depths, depth)
	}))
	require.NoError(t, err)
	assert.NotEmpty(t, depths)
}

// TestSolve_BufferRepack forces a repack on every generation (capacity
// of 2 states, matching the blank's exact branching factor from a
// corner cell in a 2x2 board) and confirms the search still reaches the
// same answer as the generous default buffer.
func TestSolve_BufferRepack(t *testing.T) {
	inst, start, err := npuzzle.Load(strings.NewReader(twoByTwo))
	require.NoError(t, err)
	d := npuzzle.NewDomain(inst, start, 1)

	want, err := bfsddd.Solve(d)
	require.NoError(t, err)
	require.True(t, want.Solved())

	got, err := bfsddd.Solve(d, bfsddd.WithBufferBytes(2*d.StateSize()))
	require.NoError(t, err)
	require.True(t, got.Solved())
	assert.Equal(t, want.Depth(), got.Depth())
}

// TestSolve_OutOfMemory shrinks the buffer to a single state: the 2x2
// board's corner start has two distinct legal moves, so the first
// generation's two children cannot both fit even after a repack.
func TestSolve_OutOfMemory(t *testing.T) {
	inst, start, err := npuzzle.Load(strings.NewReader(twoByTwo))
	require.NoError(t, err)
	d := npuzzle.NewDomain(inst, start, 1)

	_, err = bfsddd.Solve(d, bfsddd.WithBufferBytes(d.StateSize()))
	assert.ErrorIs(t, err, bfsddd.ErrOutOfMemory)
}
