package enginetest_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/solverlab/puzzlesolve/domain"
	"github.com/solverlab/puzzlesolve/engine/enginetest"
	"github.com/solverlab/puzzlesolve/npuzzle"
	"github.com/solverlab/puzzlesolve/plank"
	"github.com/solverlab/puzzlesolve/sokoban"
)

const trivialSokoban = `size 5 3
map
#####
#@$.#
#####
`

func TestEquivalence_Sokoban(t *testing.T) {
	enginetest.Equivalence(t, func(workers int) domain.Domain {
		inst, start, err := sokoban.Load(strings.NewReader(trivialSokoban))
		require.NoError(t, err)

		return sokoban.NewDomain(inst, start, workers)
	})
}

const twoByTwoNPuzzle = `size 2 2
tiles
3 1
2 0
goal
1 2
3 0
`

func TestEquivalence_NPuzzle(t *testing.T) {
	enginetest.Equivalence(t, func(workers int) domain.Domain {
		inst, start, err := npuzzle.Load(strings.NewReader(twoByTwoNPuzzle))
		require.NoError(t, err)

		return npuzzle.NewDomain(inst, start, workers)
	})
}

const singleCrossingPlank = `stumps
0 0 0
1 2 0
plank 2 0
start 0
goal 1
`

func TestEquivalence_Plank(t *testing.T) {
	enginetest.Equivalence(t, func(workers int) domain.Domain {
		inst, start, err := plank.Load(strings.NewReader(singleCrossingPlank))
		require.NoError(t, err)

		return plank.NewDomain(inst, start, workers)
	})
}
