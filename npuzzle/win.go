package npuzzle

// Won reports whether cfg's board exactly matches the instance's goal
// arrangement.
func (cfg *Config) Won() bool {
	for i, v := range cfg.tiles {
		if v != cfg.inst.goal[i] {
			return false
		}
	}

	return true
}
