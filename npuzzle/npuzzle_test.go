package npuzzle

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const twoByTwo = `size 2 2
tiles
3 1
2 0
goal
1 2
3 0
`

func TestLoad_TwoByTwo(t *testing.T) {
	inst, cfg, err := Load(strings.NewReader(twoByTwo))
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1, 2, 0}, cfg.tiles)
	assert.Equal(t, []int{1, 2, 3, 0}, inst.goal)
	assert.False(t, cfg.Won())
}

// TestNPuzzle_ReachableCount reproduces the concrete scenario: a BFS from
// the 2x2 start reaches exactly 12 of the 24 possible permutations, and
// the shortest solution is 3 moves.
func TestNPuzzle_ReachableCount(t *testing.T) {
	_, start, err := Load(strings.NewReader(twoByTwo))
	require.NoError(t, err)

	seen := map[string]bool{}
	type item struct {
		cfg   *Config
		depth int
	}
	startKey := string(Encode(start))
	seen[startKey] = true
	queue := []item{{start, 0}}
	solutionDepth := -1

	for i := 0; i < len(queue); i++ {
		cur := queue[i]
		if cur.cfg.Won() && solutionDepth == -1 {
			solutionDepth = cur.depth
		}
		for _, nb := range neighbors(cur.cfg) {
			key := string(nb)
			if seen[key] {
				continue
			}
			seen[key] = true
			next := &Config{inst: cur.cfg.inst, tiles: make([]int, len(cur.cfg.tiles))}
			Decode(next, nb)
			queue = append(queue, item{next, cur.depth + 1})
		}
	}

	assert.Equal(t, 12, len(seen))
	assert.Equal(t, 3, solutionDepth)
}

func TestCodec_RoundTrip(t *testing.T) {
	_, cfg, err := Load(strings.NewReader(twoByTwo))
	require.NoError(t, err)

	b := Encode(cfg)
	scratch := &Config{inst: cfg.inst, tiles: make([]int, len(cfg.tiles))}
	Decode(scratch, b)
	assert.Equal(t, cfg.tiles, scratch.tiles)
}
