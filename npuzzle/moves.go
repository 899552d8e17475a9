package npuzzle

// blankIndex returns the row-major index of the blank tile (value 0).
func (cfg *Config) blankIndex() int {
	for i, v := range cfg.tiles {
		if v == 0 {
			return i
		}
	}
	panic("npuzzle: board has no blank tile")
}

// neighbors returns every board reachable by sliding one tile into the
// blank, as freshly-encoded byte slices.
func neighbors(cfg *Config) [][]byte {
	inst := cfg.inst
	bi := cfg.blankIndex()
	br, bc := bi/inst.Cols, bi%inst.Cols

	var out [][]byte
	for _, d := range allDirections {
		dx, dy := d.delta()
		nr, nc := br+dy, bc+dx
		if nr < 0 || nr >= inst.Rows || nc < 0 || nc >= inst.Cols {
			continue
		}
		ni := nr*inst.Cols + nc
		cfg.tiles[bi], cfg.tiles[ni] = cfg.tiles[ni], cfg.tiles[bi]
		out = append(out, Encode(cfg))
		cfg.tiles[bi], cfg.tiles[ni] = cfg.tiles[ni], cfg.tiles[bi]
	}

	return out
}
