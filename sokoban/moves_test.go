package sokoban

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoves_WalkAndPush(t *testing.T) {
	_, cfg, err := Load(strings.NewReader(trivialCorridor))
	require.NoError(t, err)

	neighbors := generateNeighbors(cfg)
	// From the start position only "push east" is legal: west and the
	// vertical directions are walled, and there is nothing to walk onto
	// except the block itself.
	require.Len(t, neighbors, 1)

	scratch := newConfig(cfg.inst)
	decodeConfig(scratch, neighbors[0])
	assert.True(t, scratch.occupied[1][3])
	assert.Equal(t, 2, scratch.playerX)
	assert.Equal(t, 1, scratch.playerY)
}

func TestMoves_ForceFloorChainsPlayer(t *testing.T) {
	in := `size 5 4
map
#####
#@>.#
#*  #
#####
`
	_, cfg, err := Load(strings.NewReader(in))
	require.NoError(t, err)

	// Walking east lands on the force floor at (2,1), which must chain
	// the player forward to (3,1). The extra block rests on the
	// destination at (1,2), a live cell, so the codec can represent it;
	// it cannot be pushed (the cell beyond it is a wall) and exists only
	// so the instance has a block to load.
	neighbors := generateNeighbors(cfg)
	require.Len(t, neighbors, 1)

	scratch := newConfig(cfg.inst)
	decodeConfig(scratch, neighbors[0])
	assert.Equal(t, 3, scratch.playerX)
	assert.Equal(t, 1, scratch.playerY)
}

func TestMoves_SlapDisplacesBlock(t *testing.T) {
	in := `size 6 3
map
######
#@$ .#
######
`
	_, cfg, err := Load(strings.NewReader(in))
	require.NoError(t, err)

	cfg.facing = South // perpendiculars are East/West
	assert.True(t, canSlap(cfg, South))

	out := generateSlaps(cfg)
	require.Len(t, out, 1)

	scratch := newConfig(cfg.inst)
	decodeConfig(scratch, out[0])
	assert.False(t, scratch.occupied[1][2])
	assert.True(t, scratch.occupied[1][3])
}
