package sokoban

import "errors"

// Sentinel errors for the sokoban package.
var (
	// ErrMalformedInput is returned for any structurally invalid puzzle
	// instance stream (malformed size or goal directive, map before
	// size, fewer map rows than the size says, missing map, unknown map
	// character, no player, no blocks). Unknown directives are logged
	// and skipped, not rejected.
	ErrMalformedInput = errors.New("sokoban: malformed puzzle input")

	// ErrGridTooLarge is returned when size W or H exceeds MaxGridSide.
	ErrGridTooLarge = errors.New("sokoban: grid dimension exceeds limit")

	// ErrLiveFloorShortage is returned when the live-floor count after
	// deadlock preanalysis is smaller than the block count, which makes
	// the instance unsolvable by construction.
	ErrLiveFloorShortage = errors.New("sokoban: live floor cells fewer than blocks")

	// ErrEncodeOverflow is the value encodeConfig panics with when an
	// encoded value would be >= N, which indicates a codec or deadlock-layout bug; this is fatal, not a user error.
	ErrEncodeOverflow = errors.New("sokoban: encoded value exceeds domain size")
)

// MaxGridSide is the default maximum grid width/height.
const MaxGridSide = 33

// Direction is a compass direction, or Unset when the player's facing is
// normalized away (see Config.facing / encodeFacing).
type Direction int

const (
	North Direction = iota
	East
	South
	West
	Unset
)

// delta returns the (dx,dy) offset of moving one cell in Direction d.
// Unset has no offset and must never be passed here.
func (d Direction) delta() (int, int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	case West:
		return -1, 0
	default:
		return 0, 0
	}
}

// opposite returns the reverse compass direction.
func (d Direction) opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		return Unset
	}
}

// perpendiculars returns the two directions orthogonal to d, used by the
// block-slap move and the N-pattern deadlock check.
func (d Direction) perpendiculars() [2]Direction {
	switch d {
	case North, South:
		return [2]Direction{East, West}
	default:
		return [2]Direction{North, South}
	}
}

// allDirections is the canonical move-generation order: North, East,
// South, West.
var allDirections = [4]Direction{North, East, South, West}

// cellKind is the static, load-time classification of a grid cell before
// deadlock preanalysis assigns live/dead floor status.
type cellKind uint8

const (
	kindWall cellKind = iota
	kindFloor
	kindDestination
	kindPopup
	kindForceFloor
)

// staticCell is the immutable, per-coordinate information parsed from
// the puzzle input.
type staticCell struct {
	kind      cellKind
	userDead  bool      // explicit '_'/'=' marking
	forceDir  Direction // valid iff kind == kindForceFloor
	popupID   int       // index into Instance.popups, valid iff kind == kindPopup
	liveFloor bool       // computed by deadlock preanalysis; valid for kindFloor/kindDestination/kindPopup
}

// cellQuad is a precomputed candidate set of coordinates for a per-
// successor deadlock pattern check (2x2 window corners or N-pattern
// anchor+neighbor pairs), built once at Load time by
// precomputeDeadlockCandidates.
type cellQuad struct {
	cells [4][2]int // exact meaning depends on which candidate list this belongs to
	dirs  [2]Direction
}

// corridor is a precomputed goal corridor: an ordered run of >= 3
// consecutive destination cells bordered by walls on both perpendicular
// sides, dead-ended on at least one end.
type corridor struct {
	cells [][2]int
}

// Instance holds the static topology of one Sokoban puzzle, built once
// by Load and never mutated afterwards.
type Instance struct {
	Width, Height int
	grid          [][]staticCell // grid[y][x]

	goalCell    [2]int // player's required finishing coordinate
	hasGoalCell bool

	allFloor  [][2]int    // allFloorIndex -> (x,y), in row-major scan order
	allIndex  map[[2]int]int
	liveFloor [][2]int    // liveFloorIndex -> (x,y), subset of allFloor
	liveIndex map[[2]int]int

	popups []([2]int) // popupID -> (x,y)

	twoByTwoCandidates []cellQuad
	nPatternCandidates []cellQuad
	corridors          []corridor

	numBlocks int

	layout        *codecLayout
	skipNDeadlock bool
	skipCorridor  bool
}

// Config is one worker's mutable current configuration: block positions,
// player position and facing, and popup-trigger state. One Config exists
// per worker id (see NewDomain), so concurrent workers never share
// mutable state.
type Config struct {
	inst *Instance

	// occupied[y][x] is true iff a block currently sits at (x,y). Sized
	// Height x Width for O(1) adjacency lookups, mirroring gridgraph's
	// 2D-slice cell storage.
	occupied [][]bool

	playerX, playerY int
	facing           Direction // North/East/South/West, or Unset

	// popped[i] is true iff popup i has been triggered (and now acts as
	// a permanent wall).
	popped []bool
}
