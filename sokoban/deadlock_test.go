package sokoban

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDeadlock_2x2Rejects loads an instance where two blocks already sit
// side by side against a wall, neither on a destination: a frozen pair
// that check2x2 must flag.
func TestDeadlock_2x2Rejects(t *testing.T) {
	in := `size 6 3
map
######
#@$$.#
######
`
	_, cfg, err := Load(strings.NewReader(in))
	require.NoError(t, err)
	assert.True(t, checkDeadlocks(cfg))
}

// TestDeadlock_GoalCorridorRejects pushes a single block two steps down a
// three-long dead-ended goal corridor, leaving it stranded between two
// empty destination cells: the classic corridor "empty, block, empty"
// pattern.
func TestDeadlock_GoalCorridorRejects(t *testing.T) {
	in := `size 7 3
map
#######
#@$...#
#######
`
	inst, cfg, err := Load(strings.NewReader(in))
	require.NoError(t, err)
	require.NotEmpty(t, inst.corridors)

	revertPush1 := cfg.pushBlock(2, 1, 3, 1)
	revertMove1 := cfg.movePlayer(2, 1, East)
	revertPush2 := cfg.pushBlock(3, 1, 4, 1)
	revertMove2 := cfg.movePlayer(3, 1, East)

	assert.True(t, checkDeadlocks(cfg))

	revertMove2()
	revertPush2()
	revertMove1()
	revertPush1()
	assert.False(t, checkDeadlocks(cfg))
}

func TestDeadlock_TrivialHasNoCandidatesTriggered(t *testing.T) {
	_, cfg, err := Load(strings.NewReader(trivialCorridor))
	require.NoError(t, err)
	assert.False(t, checkDeadlocks(cfg))
}
