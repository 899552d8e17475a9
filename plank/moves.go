package plank

// reachableStumps runs a BFS from cfg.playerStump over direct adjacency
// and any currently-installed plank bridges, returning every stump
// reachable without picking up or dropping a plank along the way.
func reachableStumps(cfg *Config) []int {
	inst := cfg.inst
	visited := make([]bool, len(inst.stumps))
	visited[cfg.playerStump] = true
	queue := []int{cfg.playerStump}

	edge := func(a, b int) bool {
		if inst.adjacent[[2]int{a, b}] {
			return true
		}
		for pi, loc := range cfg.plankLoc {
			if loc >= len(inst.planks[pi].slots) {
				continue // home or inventory, not installed
			}
			s := inst.planks[pi].slots[loc]
			if (s.a == a && s.b == b) || (s.a == b && s.b == a) {
				return true
			}
		}

		return false
	}

	for i := 0; i < len(queue); i++ {
		cur := queue[i]
		for next := range inst.stumps {
			if visited[next] || next == cur {
				continue
			}
			if edge(cur, next) {
				visited[next] = true
				queue = append(queue, next)
			}
		}
	}

	return queue
}

// farEnd returns the stump at the opposite end of slot s from r, the
// stump the player dropped the plank from. Dropping a plank that bridges
// r to a previously unreachable stump carries the player across in the
// same move, rather than leaving them standing at r with a separate walk
// still required.
func farEnd(s slot, r int) int {
	if s.a == r {
		return s.b
	}

	return s.a
}

// heldPlank returns the index of the plank currently in inventory, or -1
// if the player holds nothing.
func (cfg *Config) heldPlank() int {
	for pi, loc := range cfg.plankLoc {
		if loc == len(cfg.inst.planks[pi].slots)+1 {
			return pi
		}
	}

	return -1
}

// neighbors generates every legal successor from cfg: moving to any
// currently reachable stump, picking up a plank resting at a reachable
// stump (if the player holds nothing), or dropping the held plank into a
// slot incident to a reachable stump.
func neighbors(cfg *Config) [][]byte {
	inst := cfg.inst
	reachable := reachableStumps(cfg)
	held := cfg.heldPlank()

	var out [][]byte
	for _, r := range reachable {
		if r != cfg.playerStump {
			op := cfg.playerStump
			cfg.playerStump = r
			out = append(out, Encode(cfg))
			cfg.playerStump = op
		}

		if held == -1 {
			for pi, p := range inst.planks {
				if cfg.plankLoc[pi] != len(p.slots) || p.homeStump != r {
					continue
				}
				op, ol := cfg.playerStump, cfg.plankLoc[pi]
				cfg.playerStump = r
				cfg.plankLoc[pi] = len(p.slots) + 1 // inventory
				out = append(out, Encode(cfg))
				cfg.playerStump, cfg.plankLoc[pi] = op, ol
			}
		} else {
			p := inst.planks[held]
			for si, s := range p.slots {
				if s.a != r && s.b != r {
					continue
				}
				op, ol := cfg.playerStump, cfg.plankLoc[held]
				cfg.playerStump = farEnd(s, r)
				cfg.plankLoc[held] = si
				out = append(out, Encode(cfg))
				cfg.playerStump, cfg.plankLoc[held] = op, ol
			}
		}
	}

	return out
}
