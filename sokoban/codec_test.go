package sokoban

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solverlab/puzzlesolve/codec"
)

const smallRoom = `size 5 4
map
#####
#@$.#
#.  #
#####
`

// TestCodec_Bijection exhaustively encodes and decodes every reachable
// configuration of a small instance and checks that Encode/Decode round
// trips exactly and that every encoded value stays within DomainSize.
func TestCodec_Bijection(t *testing.T) {
	inst, start, err := Load(strings.NewReader(smallRoom))
	require.NoError(t, err)

	seen := map[string]bool{}
	var queue []*Config
	queue = append(queue, start)
	seen[string(encodeConfig(start))] = true

	for i := 0; i < len(queue); i++ {
		cfg := queue[i]
		b := encodeConfig(cfg)
		require.LessOrEqual(t, codec.Decode(b), inst.DomainSize())

		// round trip: decode into a scratch config and re-encode
		scratch := newConfig(inst)
		decodeConfig(scratch, b)
		assert.Equal(t, b, encodeConfig(scratch))

		for _, nb := range generateNeighbors(cfg) {
			key := string(nb)
			if seen[key] {
				continue
			}
			seen[key] = true
			next := newConfig(inst)
			decodeConfig(next, nb)
			queue = append(queue, next)
		}
	}

	assert.Greater(t, len(seen), 1)
}

func TestCodec_StateSizeMatchesComposer(t *testing.T) {
	inst, _, err := Load(strings.NewReader(smallRoom))
	require.NoError(t, err)
	assert.Equal(t, inst.layout.composer.StateSize(), inst.StateSize())
}
