package bfsparallel_test

import (
	"os"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solverlab/puzzlesolve/engine/bfsdisk"
	"github.com/solverlab/puzzlesolve/engine/bfsparallel"
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

func load(t *testing.T, in string, threads int) *sokoban.Domain {
	t.Helper()
	inst, start, err := sokoban.Load(strings.NewReader(in))
	require.NoError(t, err)

	return sokoban.NewDomain(inst, start, threads)
}

func TestSolve_TrivialSokoban(t *testing.T) {
	d := load(t, trivial, 4)

	res, err := bfsparallel.Solve(d, 4)
	require.NoError(t, err)
	defer res.Close()

	require.True(t, res.Solved())
}

func TestSolve_TooFewThreads(t *testing.T) {
	d := load(t, trivial, 1)

	_, err := bfsparallel.Solve(d, 0)
	assert.ErrorIs(t, err, bfsparallel.ErrTooFewThreads)
}

// TestSolve_ParallelDeterminism covers property 6: for
// T in {1,2,4,8}, the multiset of encoded states in each generation's
// output file must be identical across thread counts, even though the
// on-disk order within a generation may differ.
func TestSolve_ParallelDeterminism(t *testing.T) {
	threadCounts := []int{1, 2, 4, 8}

	var reference map[int][]string
	for _, threads := range threadCounts {
		d := load(t, corridor, threads)

		res, err := bfsparallel.Solve(d, threads, bfsparallel.WithKeepGenFiles(true))
		require.NoError(t, err)
		defer os.RemoveAll(res.Dir())

		got := map[int][]string{}
		for gen := 0; gen <= res.LastGen(); gen++ {
			rd, err := bfsdisk.OpenGenFile(res.Dir(), gen, d.StateSize(), 1<<16)
			require.NoError(t, err)
			var states []string
			for {
				s, ok, err := rd.Next()
				require.NoError(t, err)
				if !ok {
					break
				}
				states = append(states, string(append([]byte(nil), s...)))
			}
			rd.Close()
			sort.Strings(states)
			got[gen] = states
		}

		if reference == nil {
			reference = got
			continue
		}

		require.Equal(t, len(reference), len(got), "thread count %d produced a different generation count", threads)
		for gen, want := range reference {
			assert.Equalf(t, want, got[gen], "thread count %d diverged at generation %d", threads, gen)
		}
	}
}
