package suite_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solverlab/puzzlesolve/codec"
	"github.com/solverlab/puzzlesolve/domain"
	"github.com/solverlab/puzzlesolve/internal/suite"
	"github.com/solverlab/puzzlesolve/npuzzle"
	"github.com/solverlab/puzzlesolve/plank"
	"github.com/solverlab/puzzlesolve/sokoban"
)

func loadDomain(t *testing.T, in suite.Instance) domain.Domain {
	t.Helper()

	r := strings.NewReader(in.Text)
	switch in.Domain {
	case "sokoban":
		inst, start, err := sokoban.Load(r)
		require.NoError(t, err)

		return sokoban.NewDomain(inst, start, 1)
	case "npuzzle":
		inst, start, err := npuzzle.Load(r)
		require.NoError(t, err)

		return npuzzle.NewDomain(inst, start, 1)
	case "plank":
		inst, start, err := plank.Load(r)
		require.NoError(t, err)

		return plank.NewDomain(inst, start, 1)
	default:
		t.Fatalf("%s: %v", in.Name, suite.ErrUnknownDomain)

		return nil
	}
}

// exhaustiveBFS walks every state reachable from worker 0's current
// configuration and returns the total reachable count (including the
// start state) and the shallowest depth at which Won was observed, or -1
// if no winning state was found. This never early-exits on a win, unlike
// the search engines, so it gives a ground truth for the manifest's
// reachable_states claims independent of any engine's termination
// policy.
func exhaustiveBFS(d domain.Domain) (reachable int, solutionDepth int) {
	type item struct {
		state codec.State
		depth int
	}

	start := codec.Decode(d.Encode(0))
	seen := map[codec.State]bool{start: true}
	queue := []item{{start, 0}}
	solutionDepth = -1

	for i := 0; i < len(queue); i++ {
		cur := queue[i]
		d.Decode(0, cur.state.Bytes(d.StateSize()))
		if d.Won(0) && solutionDepth == -1 {
			solutionDepth = cur.depth
		}
		for nb := range d.Neighbors(0) {
			s := codec.Decode(nb)
			if seen[s] {
				continue
			}
			seen[s] = true
			queue = append(queue, item{s, cur.depth + 1})
		}
	}

	return len(seen), solutionDepth
}

func TestScenarios(t *testing.T) {
	m, err := suite.Load("testdata/scenarios.toml")
	require.NoError(t, err)
	require.NotEmpty(t, m.Instance)

	for _, in := range m.Instance {
		in := in
		t.Run(in.Name, func(t *testing.T) {
			d := loadDomain(t, in)
			reachable, solutionDepth := exhaustiveBFS(d)

			if in.ReachableStates >= 0 {
				assert.Equal(t, in.ReachableStates, reachable, "reachable state count")
			}
			if in.Solvable() {
				assert.Equal(t, in.SolutionLength, solutionDepth, "solution length")
			} else {
				assert.Equal(t, -1, solutionDepth, "expected no solution")
			}
		})
	}
}
