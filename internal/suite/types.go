package suite

import "errors"

// ErrUnknownDomain is returned when an Instance names a Domain value
// not in {"sokoban", "npuzzle", "plank"}.
var ErrUnknownDomain = errors.New("suite: unknown domain kind")

// Manifest is the root of a testdata TOML file: a flat list of small,
// fully self-contained puzzle instances.
type Manifest struct {
	Instance []Instance `toml:"instance"`
}

// Instance describes one puzzle fixture and the shape of its reachable
// state space, as asserted by concrete end-to-end
// scenarios.
type Instance struct {
	// Name identifies the scenario for test failure messages, e.g.
	// "sokoban-trivial-3x3".
	Name string `toml:"name"`

	// Domain selects which package's Load parses Text: "sokoban",
	// "npuzzle", or "plank".
	Domain string `toml:"domain"`

	// Text is the puzzle instance in that domain's line-oriented input
	// format, inlined so the manifest is the single source of fixtures.
	Text string `toml:"text"`

	// ReachableStates is the total number of states reachable by
	// exhaustive BFS from the start configuration, including the start
	// state itself.
	ReachableStates int `toml:"reachable_states"`

	// SolutionLength is the shortest-path edge count from start to a
	// winning state, or -1 if the instance has no solution.
	SolutionLength int `toml:"solution_length"`
}

// Solvable reports whether this instance is expected to have a solution.
func (i Instance) Solvable() bool { return i.SolutionLength >= 0 }
