package plank

import (
	"errors"

	"github.com/solverlab/puzzlesolve/codec"
)

// Sentinel errors for the plank package.
var (
	ErrMalformedInput = errors.New("plank: malformed puzzle input")
	ErrNoStumps        = errors.New("plank: instance declares no stumps")
)

// point is a stump's position on the plank grid.
type point struct{ x, y int }

// slot is one candidate bridging position for a plank of a given length:
// the two stump indices it would connect.
type slot struct {
	a, b int // stump indices, a < b
}

// plankDef is the static description of one plank in the instance: its
// length, the stump it initially rests at, and every slot it could ever
// bridge (only slots whose endpoint distance equals length).
type plankDef struct {
	length    int
	homeStump int
	slots     []slot
}

// A plank's location is a code in [0, len(slots)+2): a slot index
// (0..len(slots)-1) means installed there; len(slots) means resting at
// its home stump; len(slots)+1 means held in the player's inventory.

// Instance holds the static stump layout and plank definitions.
type Instance struct {
	stumps    []point
	adjacent  map[[2]int]bool // direct (plank-free) walkable stump pairs
	planks    []plankDef
	startStump int
	goalStump  int

	composer *codec.Composer
}

// Config is one worker's mutable current configuration.
type Config struct {
	inst        *Instance
	playerStump int
	plankLoc    []int // per-plank current location code
}
