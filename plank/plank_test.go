package plank

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// singleCrossing is a minimal scenario: two stumps two cells apart, one
// length-2 plank resting at stump 0, player on stump 0, target stump 1.
const singleCrossing = `stumps
0 0 0
1 2 0
plank 2 0
start 0
goal 1
`

func TestLoad_SingleCrossing(t *testing.T) {
	inst, cfg, err := Load(strings.NewReader(singleCrossing))
	require.NoError(t, err)
	assert.Len(t, inst.stumps, 2)
	assert.Len(t, inst.planks, 1)
	assert.Len(t, inst.planks[0].slots, 1)
	assert.False(t, cfg.Won())
}

// TestPlank_BFSReachesGoal exhaustively explores the reachable state
// space from the start and confirms the goal is reachable and the
// nominal domain size matches the documented "state space 6" scenario
// (2 player positions x 3 plank locations).
func TestPlank_BFSReachesGoal(t *testing.T) {
	inst, start, err := Load(strings.NewReader(singleCrossing))
	require.NoError(t, err)
	assert.EqualValues(t, 5, inst.DomainSize()) // N=6, domain_size=N-1

	seen := map[string]bool{}
	seen[string(Encode(start))] = true
	queue := []*Config{start}
	won := false

	for i := 0; i < len(queue); i++ {
		cur := queue[i]
		if cur.Won() {
			won = true
		}
		for _, nb := range neighbors(cur) {
			key := string(nb)
			if seen[key] {
				continue
			}
			seen[key] = true
			next := &Config{inst: inst, plankLoc: make([]int, len(inst.planks))}
			Decode(next, nb)
			queue = append(queue, next)
		}
	}

	assert.True(t, won)
}
