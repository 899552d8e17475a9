package npuzzle

import "github.com/solverlab/puzzlesolve/codec"

// StateSize returns the little-endian wire width of an encoded state.
func (inst *Instance) StateSize() int {
	return codec.StateSizeFor(codec.State(inst.domainSize))
}

// DomainSize returns (rows*cols)! - 1, the full permutation count rather
// than the parity-halved reachable count: the engines only ever visit
// the reachable half regardless of the
// nominal address space width (the 2x2 instance has 12 reachable states
// out of 24 total permutations).
func (inst *Instance) DomainSize() codec.State {
	return codec.State(inst.domainSize)
}

// Encode serializes cfg's board into its little-endian Lehmer rank.
func Encode(cfg *Config) []byte {
	n := len(cfg.tiles)
	rank := uint64(0)
	for i := 0; i < n; i++ {
		// countLess = number of tiles after position i smaller than
		// tiles[i]; this is the i-th Lehmer digit.
		var countLess uint64
		for j := i + 1; j < n; j++ {
			if cfg.tiles[j] < cfg.tiles[i] {
				countLess++
			}
		}
		rank += countLess * cfg.inst.fact[n-1-i]
	}

	return codec.State(rank).Bytes(cfg.inst.StateSize())
}

// Decode replaces cfg's board with the permutation encoded by b.
func Decode(cfg *Config, b []byte) {
	n := len(cfg.tiles)
	rank := uint64(codec.Decode(b))

	digits := make([]uint64, n)
	for i := 0; i < n; i++ {
		f := cfg.inst.fact[n-1-i]
		digits[i] = rank / f
		rank %= f
	}

	available := make([]int, n)
	for i := range available {
		available[i] = i
	}
	for i := 0; i < n; i++ {
		idx := digits[i]
		cfg.tiles[i] = available[idx]
		available = append(available[:idx], available[idx+1:]...)
	}
}
