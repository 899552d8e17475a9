package sokoban

import (
	"github.com/solverlab/puzzlesolve/codec"
)

// codecLayout holds the composer and Pascal table sized for one
// Instance, built once by newCodecLayout and shared read-only by every
// worker's Config.
//
// Layer order (outer to inner): facing direction (5
// values), player position among free floor cells, the binary
// block-placement layer over live floor cells, then one binary layer
// per popup wall.
type codecLayout struct {
	composer  *codec.Composer
	pascal    *codec.PascalTable
	liveCount int
	numBlocks int
	numFree   int
}

// newCodecLayout builds the Composer and Pascal table for inst. It
// returns codec.ErrRankOverflow if the domain size cannot be
// represented faithfully in a uint64.
func newCodecLayout(inst *Instance) (*codecLayout, error) {
	liveCount := len(inst.liveFloor)
	numFree := len(inst.allFloor) - inst.numBlocks
	pascal := codec.NewPascalTable(liveCount)
	blocksRadix := pascal.C(liveCount, inst.numBlocks)

	radices := make([]uint64, 0, 3+len(inst.popups))
	radices = append(radices, 5, uint64(numFree), blocksRadix)
	for range inst.popups {
		radices = append(radices, 2)
	}

	composer, err := codec.NewComposer(radices...)
	if err != nil {
		return nil, err
	}

	return &codecLayout{
		composer:  composer,
		pascal:    pascal,
		liveCount: liveCount,
		numBlocks: inst.numBlocks,
		numFree:   numFree,
	}, nil
}

// StateSize returns the little-endian wire width of an encoded state
// for this instance.
func (inst *Instance) StateSize() int {
	return inst.layout.composer.StateSize()
}

// DomainSize returns N-1 for this instance.
func (inst *Instance) DomainSize() codec.State {
	return inst.layout.composer.DomainSize()
}

// encodeFacing applies facing-direction normalization: if the current
// facing does not enable any legal slap move, it is collapsed to Unset
// before ranking, merging otherwise-distinct states that cannot be told
// apart by any future move.
func encodeFacing(cfg *Config) Direction {
	if cfg.facing == Unset {
		return Unset
	}
	if !canSlap(cfg, cfg.facing) {
		return Unset
	}

	return cfg.facing
}

// encodeConfig serializes cfg's current configuration into the
// little-endian wire form. Any internal composer error indicates a
// codec/instance-construction bug (the layer count and radices are
// fixed by newCodecLayout and must always match what is composed here);
// this is not a condition a caller can recover from, so it panics rather
// than returning an error.
func encodeConfig(cfg *Config) []byte {
	inst := cfg.inst
	layout := inst.layout

	bits := make([]bool, layout.liveCount)
	for i, c := range inst.liveFloor {
		bits[i] = cfg.occupied[c[1]][c[0]]
	}
	blocksVal := uint64(codec.Rank(layout.pascal, bits))

	playerVal := uint64(0)
	playerAllIdx := inst.allIndex[[2]int{cfg.playerX, cfg.playerY}]
	for i := 0; i < playerAllIdx; i++ {
		c := inst.allFloor[i]
		if !cfg.occupied[c[1]][c[0]] {
			playerVal++
		}
	}

	values := make([]uint64, 0, 3+len(inst.popups))
	values = append(values, uint64(encodeFacing(cfg)), playerVal, blocksVal)
	for i := range inst.popups {
		if cfg.popped[i] {
			values = append(values, 1)
		} else {
			values = append(values, 0)
		}
	}

	x, err := layout.composer.Compose(values...)
	if err != nil {
		panic("sokoban: codec layer mismatch: " + err.Error())
	}
	if x > layout.composer.DomainSize() {
		panic(ErrEncodeOverflow)
	}

	return x.Bytes(layout.composer.StateSize())
}

// decodeConfig replaces cfg's configuration with the one encoded by b.
// Decoding places the player after block positions are fixed, using the
// remaining free-floor index to locate the player among cells no block
// currently occupies.
func decodeConfig(cfg *Config, b []byte) {
	inst := cfg.inst
	layout := inst.layout

	x := codec.Decode(b)
	values, err := layout.composer.Decompose(x)
	if err != nil {
		panic("sokoban: decode out of range: " + err.Error())
	}
	facingVal, playerVal, blocksVal := values[0], values[1], values[2]
	popupVals := values[3:]

	bits := codec.Unrank(layout.pascal, layout.liveCount, layout.numBlocks, codec.State(blocksVal))
	for y := range cfg.occupied {
		for x := range cfg.occupied[y] {
			cfg.occupied[y][x] = false
		}
	}
	for i, isBlock := range bits {
		if isBlock {
			c := inst.liveFloor[i]
			cfg.occupied[c[1]][c[0]] = true
		}
	}

	remaining := uint64(playerVal)
	for _, c := range inst.allFloor {
		if cfg.occupied[c[1]][c[0]] {
			continue
		}
		if remaining == 0 {
			cfg.playerX, cfg.playerY = c[0], c[1]
			break
		}
		remaining--
	}

	if facingVal == uint64(Unset) {
		cfg.facing = Unset
	} else {
		cfg.facing = Direction(facingVal)
	}

	for i, v := range popupVals {
		cfg.popped[i] = v == 1
	}
}
