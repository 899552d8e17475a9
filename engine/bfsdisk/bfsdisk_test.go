package bfsdisk_test

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solverlab/puzzlesolve/engine/bfsdisk"
	"github.com/solverlab/puzzlesolve/sokoban"
)

const trivial = `size 5 3
map
#####
#@$.#
#####
`

const corridor = `size 6 3
map
######
#@$ .#
######
`

func TestSolve_TrivialSokoban(t *testing.T) {
	inst, start, err := sokoban.Load(strings.NewReader(trivial))
	require.NoError(t, err)
	d := sokoban.NewDomain(inst, start, 1)

	res, err := bfsdisk.Solve(d)
	require.NoError(t, err)
	defer res.Close()

	require.True(t, res.Solved())

	path, err := res.Path()
	require.NoError(t, err)
	assert.Len(t, path, 2) // start state, then the single push
}

func TestSolve_GenerationSizesHavePositiveSum(t *testing.T) {
	inst, start, err := sokoban.Load(strings.NewReader(corridor))
	require.NoError(t, err)
	d := sokoban.NewDomain(inst, start, 1)

	res, err := bfsdisk.Solve(d)
	require.NoError(t, err)
	defer res.Close()

	require.True(t, res.Solved())
	total := 0
	for _, n := range res.GenerationSizes() {
		total += n
	}
	assert.Greater(t, total, 0)
}

func TestSolve_IdempotentRerun(t *testing.T) {
	// property 5: re-running the disk engine on its own
	// output (concatenating all GEN files as the initial frontier) must
	// produce zero new states in generation 1.
	inst, start, err := sokoban.Load(strings.NewReader(corridor))
	require.NoError(t, err)
	d := sokoban.NewDomain(inst, start, 1)

	res, err := bfsdisk.Solve(d, bfsdisk.WithKeepGenFiles(true))
	require.NoError(t, err)
	defer os.RemoveAll(res.Dir())

	var allStates [][]byte
	for gen := 0; gen <= res.LastGen(); gen++ {
		rd, err := bfsdisk.OpenGenFile(res.Dir(), gen, d.StateSize(), 1<<16)
		require.NoError(t, err)
		for {
			s, ok, err := rd.Next()
			require.NoError(t, err)
			if !ok {
				break
			}
			cp := make([]byte, len(s))
			copy(cp, s)
			allStates = append(allStates, cp)
		}
		rd.Close()
	}
	require.NotEmpty(t, allStates)

	d2 := sokoban.NewDomain(inst, start, 1)
	dir2 := t.TempDir()
	w, err := bfsdisk.CreateGenFile(dir2, 0, 1<<16, 0)
	require.NoError(t, err)
	for _, s := range allStates {
		require.NoError(t, w.Append(s))
	}
	require.NoError(t, w.Close())

	res2, err := bfsdisk.Solve(d2, bfsdisk.WithDir(dir2), bfsdisk.WithKeepGenFiles(true))
	require.NoError(t, err)
	defer os.RemoveAll(dir2)

	sizes := res2.GenerationSizes()
	require.GreaterOrEqual(t, len(sizes), 2)
	assert.Equal(t, 0, sizes[1])
}
