package npuzzle

import "errors"

// Sentinel errors for the npuzzle package.
var (
	// ErrMalformedInput is returned for any structurally invalid puzzle
	// instance stream.
	ErrMalformedInput = errors.New("npuzzle: malformed puzzle input")

	// ErrNotPermutation is returned when the tile board is not a
	// permutation of 0..rows*cols-1 (duplicate or missing tile value).
	ErrNotPermutation = errors.New("npuzzle: tile board is not a permutation")

	// ErrBoardTooLarge is returned when rows*cols exceeds MaxTiles,
	// beyond which the factorial domain size overflows uint64.
	ErrBoardTooLarge = errors.New("npuzzle: board too large for uint64 rank")
)

// MaxTiles is the largest tile count whose factorial fits in a uint64
// (20! fits and 21! overflows, so 20 is the practical ceiling).
const MaxTiles = 20

// direction is one of the four blank-tile slide directions.
type direction int

const (
	up direction = iota
	down
	left
	right
)

var allDirections = [4]direction{up, down, left, right}

func (d direction) delta() (int, int) {
	switch d {
	case up:
		return 0, -1
	case down:
		return 0, 1
	case left:
		return -1, 0
	default:
		return 1, 0
	}
}

// Instance holds the static board shape and the goal arrangement; it
// never changes after Load.
type Instance struct {
	Rows, Cols int
	goal       []int // goal[i] = tile value at position i, row-major

	domainSize uint64 // (Rows*Cols)! - 1
	fact       []uint64
}

// Config is one worker's mutable current board: a permutation of tile
// values, row-major, with 0 denoting the blank.
type Config struct {
	inst  *Instance
	tiles []int
}
