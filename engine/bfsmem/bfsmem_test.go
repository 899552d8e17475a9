package bfsmem_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solverlab/puzzlesolve/engine/bfsmem"
	"github.com/solverlab/puzzlesolve/sokoban"
)

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

	res, err := bfsmem.Solve(d)
	require.NoError(t, err)
	require.True(t, res.Solved())

	path, err := res.Path()
	require.NoError(t, err)
	assert.Len(t, path, 2) // start state, then the single push
}
