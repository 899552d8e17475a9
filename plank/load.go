package plank

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/solverlab/puzzlesolve/codec"
)

// Load parses a stump-and-plank layout of the form:
//
//	stumps
//	<id> <x> <y>
//	...
//	plank <length> <homeStumpID>
//	...
//	start <stumpID>
//	goal <stumpID>
//
// Stump IDs are arbitrary non-negative integers assigned by the caller;
// internally they are remapped to dense indices in declaration order.
// Any two stumps exactly one grid cell apart are treated as directly
// walkable without a plank. Any two stumps aligned horizontally or
// vertically, at a distance equal to some declared plank's length, are a
// candidate bridge slot for that plank.
func Load(r io.Reader) (*Instance, *Config, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	ids := map[int]int{} // external id -> dense index
	inst := &Instance{}
	var homeIDs []int
	var lengths []int
	haveStart, haveGoal := false, false
	var startID, goalID int

	addStump := func(id, x, y int) int {
		if idx, ok := ids[id]; ok {
			return idx
		}
		idx := len(inst.stumps)
		ids[id] = idx
		inst.stumps = append(inst.stumps, point{x, y})

		return idx
	}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || line == "stumps" {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "plank":
			if len(fields) != 3 {
				return nil, nil, fmt.Errorf("%w: plank directive wants 2 arguments", ErrMalformedInput)
			}
			length, err1 := strconv.Atoi(fields[1])
			home, err2 := strconv.Atoi(fields[2])
			if err1 != nil || err2 != nil {
				return nil, nil, fmt.Errorf("%w: invalid plank directive", ErrMalformedInput)
			}
			lengths = append(lengths, length)
			homeIDs = append(homeIDs, home)
		case "start":
			id, err := strconv.Atoi(fields[1])
			if err != nil {
				return nil, nil, fmt.Errorf("%w: invalid start id", ErrMalformedInput)
			}
			startID, haveStart = id, true
		case "goal":
			id, err := strconv.Atoi(fields[1])
			if err != nil {
				return nil, nil, fmt.Errorf("%w: invalid goal id", ErrMalformedInput)
			}
			goalID, haveGoal = id, true
		default:
			if len(fields) != 3 {
				return nil, nil, fmt.Errorf("%w: invalid stump line %q", ErrMalformedInput, line)
			}
			id, err1 := strconv.Atoi(fields[0])
			x, err2 := strconv.Atoi(fields[1])
			y, err3 := strconv.Atoi(fields[2])
			if err1 != nil || err2 != nil || err3 != nil {
				return nil, nil, fmt.Errorf("%w: invalid stump line %q", ErrMalformedInput, line)
			}
			addStump(id, x, y)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	if len(inst.stumps) == 0 {
		return nil, nil, ErrNoStumps
	}
	if !haveStart || !haveGoal {
		return nil, nil, fmt.Errorf("%w: missing start or goal", ErrMalformedInput)
	}

	startIdx, ok1 := ids[startID]
	goalIdx, ok2 := ids[goalID]
	if !ok1 || !ok2 {
		return nil, nil, fmt.Errorf("%w: start/goal references unknown stump", ErrMalformedInput)
	}
	inst.startStump, inst.goalStump = startIdx, goalIdx

	inst.adjacent = map[[2]int]bool{}
	for i := range inst.stumps {
		for j := i + 1; j < len(inst.stumps); j++ {
			if manhattan(inst.stumps[i], inst.stumps[j]) == 1 {
				inst.adjacent[[2]int{i, j}] = true
				inst.adjacent[[2]int{j, i}] = true
			}
		}
	}

	for pi, length := range lengths {
		homeIdx, ok := ids[homeIDs[pi]]
		if !ok {
			return nil, nil, fmt.Errorf("%w: plank home references unknown stump", ErrMalformedInput)
		}
		def := plankDef{length: length, homeStump: homeIdx}
		for i := range inst.stumps {
			for j := i + 1; j < len(inst.stumps); j++ {
				if aligned(inst.stumps[i], inst.stumps[j]) && manhattan(inst.stumps[i], inst.stumps[j]) == length {
					def.slots = append(def.slots, slot{i, j})
				}
			}
		}
		inst.planks = append(inst.planks, def)
	}

	radices := make([]uint64, 0, 1+len(inst.planks))
	radices = append(radices, uint64(len(inst.stumps)))
	for _, p := range inst.planks {
		radices = append(radices, uint64(len(p.slots)+2))
	}
	composer, err := codec.NewComposer(radices...)
	if err != nil {
		return nil, nil, err
	}
	inst.composer = composer

	cfg := &Config{
		inst:        inst,
		playerStump: inst.startStump,
		plankLoc:    make([]int, len(inst.planks)),
	}
	for i, p := range inst.planks {
		cfg.plankLoc[i] = len(p.slots) // resting at home
	}

	return inst, cfg, nil
}

func manhattan(a, b point) int {
	dx, dy := a.x-b.x, a.y-b.y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}

	return dx + dy
}

// aligned reports whether a and b share exactly one coordinate, i.e. lie
// on a common horizontal or vertical line (the only orientations a
// straight plank can bridge).
func aligned(a, b point) bool {
	return a.x == b.x || a.y == b.y
}
