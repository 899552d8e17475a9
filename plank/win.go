package plank

// Won reports whether the player currently occupies the instance's goal
// stump.
func (cfg *Config) Won() bool {
	return cfg.playerStump == cfg.inst.goalStump
}
