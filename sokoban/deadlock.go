package sokoban

// runDeadlockPreanalysis performs the one-time, load-time pull-BFS:
// starting from every destination cell, a block is pulled backward one
// cell at a time. A pull in direction d
// moves a hypothetical block at R to R-d, and requires a player standing
// at R-2d to perform the pull; both R-d and R-2d must be in bounds, not
// walls, not force floor, and not user-marked dead. Every cell reached this way is
// live_floor; every other floor/destination/popup cell is dead_floor.
func runDeadlockPreanalysis(inst *Instance) {
	live := make([][]bool, inst.Height)
	for y := range live {
		live[y] = make([]bool, inst.Width)
	}

	var queue [][2]int
	for y := 0; y < inst.Height; y++ {
		for x := 0; x < inst.Width; x++ {
			if inst.isDestination(x, y) && !inst.cell(x, y).userDead {
				if !live[y][x] {
					live[y][x] = true
					queue = append(queue, [2]int{x, y})
				}
			}
		}
	}

	for qi := 0; qi < len(queue); qi++ {
		r := queue[qi]
		for _, d := range allDirections {
			dx, dy := d.delta()
			pred := [2]int{r[0] - dx, r[1] - dy}
			playerCell := [2]int{r[0] - 2*dx, r[1] - 2*dy}
			if !floorLike(inst, pred[0], pred[1]) {
				continue
			}
			if !floorLike(inst, playerCell[0], playerCell[1]) {
				continue
			}
			if live[pred[1]][pred[0]] {
				continue
			}
			live[pred[1]][pred[0]] = true
			queue = append(queue, pred)
		}
	}

	for y := 0; y < inst.Height; y++ {
		for x := 0; x < inst.Width; x++ {
			c := &inst.grid[y][x]
			if c.kind == kindFloor || c.kind == kindDestination || c.kind == kindPopup {
				c.liveFloor = live[y][x]
			}
		}
	}
}

// floorLike reports whether (x,y) is in bounds, not a wall, not a force
// floor, and not user-marked dead — i.e. a cell a block or a pulling
// player could legally occupy.
func floorLike(inst *Instance, x, y int) bool {
	if !inst.inBounds(x, y) {
		return false
	}
	c := inst.cell(x, y)
	switch c.kind {
	case kindFloor, kindDestination, kindPopup:
		return !c.userDead
	default:
		return false
	}
}

// precomputeDeadlockCandidates builds the 2x2-window and N-pattern
// candidate lists once at load time, so that per-successor deadlock
// checks (see checkDeadlocks) only scan cells that could ever actually
// trigger a rejection, instead of the whole grid.
func precomputeDeadlockCandidates(inst *Instance) {
	// 2x2 windows: a top-left corner (x,y) is a candidate iff every one
	// of its 4 cells is either a wall or a live-floor cell (dead-floor
	// or force-floor cells can never hold a block, so a window touching
	// one can never satisfy "every cell is wall-or-block").
	for y := 0; y < inst.Height-1; y++ {
		for x := 0; x < inst.Width-1; x++ {
			ok := true
			var corners [4][2]int
			idx := 0
			for _, off := range [4][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}} {
				cx, cy := x+off[0], y+off[1]
				corners[idx] = [2]int{cx, cy}
				idx++
				if inst.isWall(cx, cy) {
					continue
				}
				if !floorLike(inst, cx, cy) || !inst.cell(cx, cy).liveFloor {
					ok = false
				}
			}
			if ok {
				inst.twoByTwoCandidates = append(inst.twoByTwoCandidates, cellQuad{cells: corners})
			}
		}
	}

	// N-pattern candidates: for each live-floor cell A and each
	// wall-side direction d such that A+d is a wall, and each
	// perpendicular p such that B=A+p is also live floor with B+d a
	// wall, (A,B,d) is a candidate pair that freezes unless both A and
	// B are destinations.
	if inst.skipNDeadlock {
		precomputeCorridors(inst)
		return
	}
	for y := 0; y < inst.Height; y++ {
		for x := 0; x < inst.Width; x++ {
			if !floorLike(inst, x, y) || !inst.cell(x, y).liveFloor {
				continue
			}
			for _, d := range allDirections {
				dx, dy := d.delta()
				if !inst.isWall(x+dx, y+dy) {
					continue
				}
				for _, p := range d.perpendiculars() {
					px, py := p.delta()
					bx, by := x+px, y+py
					if !floorLike(inst, bx, by) || !inst.cell(bx, by).liveFloor {
						continue
					}
					if !inst.isWall(bx+dx, by+dy) {
						continue
					}
					inst.nPatternCandidates = append(inst.nPatternCandidates, cellQuad{
						cells: [4][2]int{{x, y}, {bx, by}, {}, {}},
						dirs:  [2]Direction{d, p},
					})
				}
			}
		}
	}

	precomputeCorridors(inst)
}

// precomputeCorridors finds every maximal run of >= 3 consecutive
// destination cells, oriented horizontally or vertically, bordered by
// walls on both perpendicular sides along its whole length, with at
// least one dead end (a wall immediately past one extremity). Such a
// corridor only ever admits a fully-pushed-in block layout; any
// mid-search state exhibiting "empty, block, empty" along the run is
// rejected.
func precomputeCorridors(inst *Instance) {
	if inst.skipCorridor {
		return
	}
	seen := map[[2]int]bool{}
	tryRun := func(start [2]int, step [2]int, perp [2]Direction) {
		if seen[start] {
			return
		}
		var run [][2]int
		x, y := start[0], start[1]
		for inst.isDestination(x, y) && corridorSided(inst, x, y, perp) {
			run = append(run, [2]int{x, y})
			x += step[0]
			y += step[1]
		}
		if len(run) < 3 {
			return
		}
		before := [2]int{start[0] - step[0], start[1] - step[1]}
		last := run[len(run)-1]
		after := [2]int{last[0] + step[0], last[1] + step[1]}
		if !inst.isWall(before[0], before[1]) && !inst.isWall(after[0], after[1]) {
			return // not dead-ended on either side
		}
		for _, c := range run {
			seen[c] = true
		}
		inst.corridors = append(inst.corridors, corridor{cells: run})
	}

	for y := 0; y < inst.Height; y++ {
		for x := 0; x < inst.Width; x++ {
			tryRun([2]int{x, y}, [2]int{1, 0}, [2]Direction{North, South})
			tryRun([2]int{x, y}, [2]int{0, 1}, [2]Direction{East, West})
		}
	}
}

// corridorSided reports whether both perpendicular neighbors of (x,y)
// are walls, which is required along the whole length of a goal
// corridor.
func corridorSided(inst *Instance, x, y int, perp [2]Direction) bool {
	for _, d := range perp {
		dx, dy := d.delta()
		if !inst.isWall(x+dx, y+dy) {
			return false
		}
	}

	return true
}

// checkDeadlocks runs every enabled per-successor deadlock check against
// cfg and reports whether the configuration must be rejected.
func checkDeadlocks(cfg *Config) bool {
	if check2x2(cfg) {
		return true
	}
	if !cfg.inst.skipNDeadlock && checkNPattern(cfg) {
		return true
	}
	if !cfg.inst.skipCorridor && checkCorridors(cfg) {
		return true
	}

	return false
}

// check2x2 rejects a configuration if any precomputed 2x2 window
// consists entirely of walls and blocks, with at least one block off
// its destination.
func check2x2(cfg *Config) bool {
	inst := cfg.inst
	for _, win := range inst.twoByTwoCandidates {
		allFrozen := true
		anyOffGoal := false
		for _, c := range win.cells {
			x, y := c[0], c[1]
			if inst.isWall(x, y) {
				continue
			}
			if !cfg.occupied[y][x] {
				allFrozen = false
				break
			}
			if !inst.isDestination(x, y) {
				anyOffGoal = true
			}
		}
		if allFrozen && anyOffGoal {
			return true
		}
	}

	return false
}

// checkNPattern rejects a configuration if any precomputed (A,B,d) pair
// has both A and B currently holding blocks, with at least one off its
// destination (both frozen against the same wall side, adjacent to each
// other, across the four compass rotations precomputed above).
func checkNPattern(cfg *Config) bool {
	inst := cfg.inst
	for _, cand := range inst.nPatternCandidates {
		a, b := cand.cells[0], cand.cells[1]
		if !cfg.occupied[a[1]][a[0]] || !cfg.occupied[b[1]][b[0]] {
			continue
		}
		if inst.isDestination(a[0], a[1]) && inst.isDestination(b[0], b[1]) {
			continue
		}

		return true
	}

	return false
}

// checkCorridors rejects a configuration if any precomputed goal
// corridor contains the substring "empty, block, empty" among its
// cells, indicating a block was pushed partway down the corridor and
// abandoned.
func checkCorridors(cfg *Config) bool {
	for _, cor := range cfg.inst.corridors {
		for i := 1; i+1 < len(cor.cells); i++ {
			prev, cur, next := cor.cells[i-1], cor.cells[i], cor.cells[i+1]
			if !cfg.occupied[prev[1]][prev[0]] && cfg.occupied[cur[1]][cur[0]] && !cfg.occupied[next[1]][next[0]] {
				return true
			}
		}
	}

	return false
}
