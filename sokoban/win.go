package sokoban

// Won reports whether cfg satisfies the win condition: every
// destination cell holds a block, and (if the instance declared a
// goal_cell) the player occupies it.
func (cfg *Config) Won() bool {
	inst := cfg.inst
	for y := 0; y < inst.Height; y++ {
		for x := 0; x < inst.Width; x++ {
			if inst.isDestination(x, y) && !cfg.occupied[y][x] {
				return false
			}
		}
	}
	if inst.hasGoalCell {
		return cfg.playerX == inst.goalCell[0] && cfg.playerY == inst.goalCell[1]
	}

	return true
}
