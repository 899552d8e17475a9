package sokoban

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const trivialCorridor = `size 5 3
map
#####
#@$.#
#####
`

func TestLoad_Trivial(t *testing.T) {
	inst, cfg, err := Load(strings.NewReader(trivialCorridor))
	require.NoError(t, err)
	assert.Equal(t, 1, inst.numBlocks)
	assert.False(t, cfg.Won())

	// Push the block east once onto the destination.
	revertPush := cfg.pushBlock(2, 1, 3, 1)
	revertMove := cfg.movePlayer(2, 1, East)
	assert.True(t, cfg.Won())
	revertMove()
	revertPush()
	assert.False(t, cfg.Won())
}

func TestLoad_MissingSize(t *testing.T) {
	_, _, err := Load(strings.NewReader("map\n###\n"))
	assert.ErrorIs(t, err, ErrMalformedInput)
}

func TestLoad_GridTooLarge(t *testing.T) {
	_, _, err := Load(strings.NewReader("size 40 40\n"))
	assert.ErrorIs(t, err, ErrGridTooLarge)
}

func TestLoad_NoPlayer(t *testing.T) {
	in := "size 3 1\nmap\n#$.\n"
	_, _, err := Load(strings.NewReader(in))
	assert.ErrorIs(t, err, ErrMalformedInput)
}

func TestLoad_NoBlocks(t *testing.T) {
	in := "size 3 1\nmap\n#@.\n"
	_, _, err := Load(strings.NewReader(in))
	assert.ErrorIs(t, err, ErrMalformedInput)
}

func TestLoad_UnknownMapCharacter(t *testing.T) {
	in := "size 3 1\nmap\n#@?\n"
	_, _, err := Load(strings.NewReader(in))
	assert.ErrorIs(t, err, ErrMalformedInput)
}
