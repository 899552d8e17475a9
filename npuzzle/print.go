package npuzzle

import (
	"fmt"
	"strings"
)

// Print renders cfg's board as a row-major grid of tile values, blank
// shown as a dot. Tile values are printed as right-aligned decimal
// numbers; this package has no digit/letter tile alphabet.
func (cfg *Config) Print() string {
	var sb strings.Builder
	for r := 0; r < cfg.inst.Rows; r++ {
		for c := 0; c < cfg.inst.Cols; c++ {
			v := cfg.tiles[r*cfg.inst.Cols+c]
			if v == 0 {
				sb.WriteString("  .")
			} else {
				fmt.Fprintf(&sb, "%3d", v)
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
