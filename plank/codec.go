package plank

import "github.com/solverlab/puzzlesolve/codec"

// StateSize returns the little-endian wire width of an encoded state.
func (inst *Instance) StateSize() int {
	return inst.composer.StateSize()
}

// DomainSize returns N-1 for this instance.
func (inst *Instance) DomainSize() codec.State {
	return inst.composer.DomainSize()
}

// Encode serializes cfg into its little-endian wire form: player stump
// index, then each plank's location code, composed in that layer order.
func Encode(cfg *Config) []byte {
	values := make([]uint64, 0, 1+len(cfg.plankLoc))
	values = append(values, uint64(cfg.playerStump))
	for _, loc := range cfg.plankLoc {
		values = append(values, uint64(loc))
	}

	x, err := cfg.inst.composer.Compose(values...)
	if err != nil {
		panic("plank: codec layer mismatch: " + err.Error())
	}

	return x.Bytes(cfg.inst.StateSize())
}

// Decode replaces cfg's configuration with the one encoded by b.
func Decode(cfg *Config, b []byte) {
	x := codec.Decode(b)
	values, err := cfg.inst.composer.Decompose(x)
	if err != nil {
		panic("plank: decode out of range: " + err.Error())
	}

	cfg.playerStump = int(values[0])
	for i := range cfg.plankLoc {
		cfg.plankLoc[i] = int(values[i+1])
	}
}
