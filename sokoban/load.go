package sokoban

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
)

// LoadOptions holds the deadlock-check switches set by the
// skip-n-deadlock and skip-goal-corridor-deadlock directives. Load takes
// no LoadOptions argument, so the switches are set only by those
// in-stream directives.
type LoadOptions struct {
	SkipNDeadlock bool
	SkipCorridor  bool
}

// parseState accumulates the raw parse before deadlock preanalysis runs.
type parseState struct {
	width, height int
	rows          []string // raw map lines, width chars each
	hasGoal       bool
	goalX, goalY  int
	opts          LoadOptions
}

// Load parses the line-oriented puzzle-instance format from r, runs
// deadlock preanalysis, and returns the immutable Instance plus the
// start Config for worker 0. Malformed input is reported via
// ErrMalformedInput wrapped with context; callers at the cmd/ layer
// should treat any returned error as fatal.
func Load(r io.Reader) (*Instance, *Config, error) {
	ps := &parseState{}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		fields := strings.Fields(trimmed)
		switch fields[0] {
		case "size":
			if len(fields) != 3 {
				return nil, nil, fmt.Errorf("%w: size directive wants 2 arguments", ErrMalformedInput)
			}
			w, err1 := strconv.Atoi(fields[1])
			h, err2 := strconv.Atoi(fields[2])
			if err1 != nil || err2 != nil || w <= 0 || h <= 0 {
				return nil, nil, fmt.Errorf("%w: invalid size %q %q", ErrMalformedInput, fields[1], fields[2])
			}
			if w > MaxGridSide || h > MaxGridSide {
				return nil, nil, fmt.Errorf("%w: %dx%d exceeds %d", ErrGridTooLarge, w, h, MaxGridSide)
			}
			ps.width, ps.height = w, h
		case "goal":
			if len(fields) != 3 {
				return nil, nil, fmt.Errorf("%w: goal directive wants 2 arguments", ErrMalformedInput)
			}
			x, err1 := strconv.Atoi(fields[1])
			y, err2 := strconv.Atoi(fields[2])
			if err1 != nil || err2 != nil {
				return nil, nil, fmt.Errorf("%w: invalid goal coordinate", ErrMalformedInput)
			}
			ps.hasGoal, ps.goalX, ps.goalY = true, x, y
		case "skip-n-deadlock":
			ps.opts.SkipNDeadlock = true
		case "skip-goal-corridor-deadlock":
			ps.opts.SkipCorridor = true
		case "map":
			if ps.width == 0 || ps.height == 0 {
				return nil, nil, fmt.Errorf("%w: map directive before size", ErrMalformedInput)
			}
			rows, err := readMapRows(scanner, ps.width, ps.height)
			if err != nil {
				return nil, nil, err
			}
			ps.rows = rows
		default:
			log.Printf("sokoban: warning: unknown directive %q, skipping", fields[0])
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	if ps.rows == nil {
		return nil, nil, fmt.Errorf("%w: missing map", ErrMalformedInput)
	}

	return build(ps)
}

// readMapRows reads exactly height further lines of the scanner. A line
// shorter than width is padded with spaces (floor) and a longer one is
// cut to width; lines are not trimmed, since leading/trailing spaces are
// significant floor cells.
func readMapRows(scanner *bufio.Scanner, width, height int) ([]string, error) {
	rows := make([]string, 0, height)
	for len(rows) < height {
		if !scanner.Scan() {
			return nil, fmt.Errorf("%w: map has fewer than %d rows", ErrMalformedInput, height)
		}
		line := scanner.Text()
		if len(line) < width {
			line += strings.Repeat(" ", width-len(line))
		} else if len(line) > width {
			line = line[:width]
		}
		rows = append(rows, line)
	}

	return rows, nil
}

// build converts raw parsed rows into an Instance + start Config,
// running deadlock preanalysis along the way.
func build(ps *parseState) (*Instance, *Config, error) {
	inst := &Instance{
		Width:         ps.width,
		Height:        ps.height,
		allIndex:      map[[2]int]int{},
		liveIndex:     map[[2]int]int{},
		skipNDeadlock: ps.opts.SkipNDeadlock,
		skipCorridor:  ps.opts.SkipCorridor,
	}
	inst.grid = make([][]staticCell, inst.Height)
	for y := range inst.grid {
		inst.grid[y] = make([]staticCell, inst.Width)
	}

	var blocks [][2]int
	var playerX, playerY int
	havePlayer := false

	for y := 0; y < inst.Height; y++ {
		row := ps.rows[y]
		for x := 0; x < inst.Width; x++ {
			ch := rune(row[x])
			cell := &inst.grid[y][x]
			switch ch {
			case '#':
				cell.kind = kindWall
			case ' ':
				cell.kind = kindFloor
			case '.':
				cell.kind = kindDestination
			case '$':
				cell.kind = kindFloor
				blocks = append(blocks, [2]int{x, y})
			case '*':
				cell.kind = kindDestination
				blocks = append(blocks, [2]int{x, y})
			case '@':
				cell.kind = kindFloor
				playerX, playerY, havePlayer = x, y, true
			case '+':
				cell.kind = kindDestination
				playerX, playerY, havePlayer = x, y, true
			case '_':
				cell.kind = kindFloor
				cell.userDead = true
			case '=':
				cell.kind = kindFloor
				cell.userDead = true
				playerX, playerY, havePlayer = x, y, true
			case 'g':
				cell.kind = kindFloor
				ps.hasGoal, ps.goalX, ps.goalY = true, x, y
			case 'o':
				cell.kind = kindPopup
				cell.popupID = len(inst.popups)
				inst.popups = append(inst.popups, [2]int{x, y})
			case '<':
				cell.kind = kindForceFloor
				cell.forceDir = West
			case '>':
				cell.kind = kindForceFloor
				cell.forceDir = East
			case '^':
				cell.kind = kindForceFloor
				cell.forceDir = North
			case 'v':
				cell.kind = kindForceFloor
				cell.forceDir = South
			default:
				return nil, nil, fmt.Errorf("%w: unknown map character %q at (%d,%d)", ErrMalformedInput, string(ch), x, y)
			}
		}
	}
	if !havePlayer {
		return nil, nil, fmt.Errorf("%w: map has no player", ErrMalformedInput)
	}
	if len(blocks) == 0 {
		return nil, nil, fmt.Errorf("%w: map has no blocks", ErrMalformedInput)
	}
	inst.numBlocks = len(blocks)
	inst.hasGoalCell = ps.hasGoal
	inst.goalCell = [2]int{ps.goalX, ps.goalY}

	runDeadlockPreanalysis(inst)
	precomputeDeadlockCandidates(inst)

	// Build allFloor / liveFloor coordinate<->index mappings in
	// row-major scan order.
	for y := 0; y < inst.Height; y++ {
		for x := 0; x < inst.Width; x++ {
			c := inst.cell(x, y)
			if c.kind != kindFloor && c.kind != kindDestination && c.kind != kindPopup {
				continue
			}
			inst.allIndex[[2]int{x, y}] = len(inst.allFloor)
			inst.allFloor = append(inst.allFloor, [2]int{x, y})
			if !c.userDead && c.liveFloor {
				inst.liveIndex[[2]int{x, y}] = len(inst.liveFloor)
				inst.liveFloor = append(inst.liveFloor, [2]int{x, y})
			}
		}
	}
	if len(inst.liveFloor) < inst.numBlocks {
		return nil, nil, ErrLiveFloorShortage
	}

	layout, err := newCodecLayout(inst)
	if err != nil {
		return nil, nil, err
	}
	inst.layout = layout

	cfg := newConfig(inst)
	cfg.playerX, cfg.playerY = playerX, playerY
	cfg.facing = Unset
	for _, b := range blocks {
		cfg.occupied[b[1]][b[0]] = true
	}

	return inst, cfg, nil
}

// newConfig allocates a zeroed worker configuration for inst.
func newConfig(inst *Instance) *Config {
	occ := make([][]bool, inst.Height)
	for y := range occ {
		occ[y] = make([]bool, inst.Width)
	}

	return &Config{
		inst:     inst,
		occupied: occ,
		popped:   make([]bool, len(inst.popups)),
	}
}

// Clone returns an independent copy of cfg, suitable for handing to a
// fresh worker id (used by NewDomain).
func (cfg *Config) Clone() *Config {
	occ := make([][]bool, len(cfg.occupied))
	for y, row := range cfg.occupied {
		occ[y] = append([]bool(nil), row...)
	}

	return &Config{
		inst:     cfg.inst,
		occupied: occ,
		playerX:  cfg.playerX,
		playerY:  cfg.playerY,
		facing:   cfg.facing,
		popped:   append([]bool(nil), cfg.popped...),
	}
}
