package sokoban

import "strings"

// Print renders cfg as an ASCII grid, for human-readable solution
// output. This is the Sokoban-specific render; generic ASCII rendering
// of arbitrary domains is explicitly out of scope.
func (cfg *Config) Print() string {
	inst := cfg.inst
	var sb strings.Builder
	for y := 0; y < inst.Height; y++ {
		for x := 0; x < inst.Width; x++ {
			sb.WriteRune(cfg.glyph(x, y))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// glyph returns the single character representing (x,y) in the current
// configuration.
func (cfg *Config) glyph(x, y int) rune {
	inst := cfg.inst
	c := inst.cell(x, y)
	onPlayer := x == cfg.playerX && y == cfg.playerY
	onBlock := cfg.occupied[y][x]
	dest := c.kind == kindDestination

	switch {
	case c.kind == kindWall:
		return '#'
	case c.kind == kindPopup && cfg.popped[c.popupID]:
		return '#'
	case onPlayer && dest:
		return '+'
	case onPlayer && c.userDead:
		return '='
	case onPlayer:
		return '@'
	case onBlock && dest:
		return '*'
	case onBlock:
		return '$'
	case dest:
		return '.'
	case c.userDead:
		return '_'
	case c.kind == kindPopup:
		return 'o'
	case c.kind == kindForceFloor:
		switch c.forceDir {
		case North:
			return '^'
		case South:
			return 'v'
		case East:
			return '>'
		default:
			return '<'
		}
	default:
		return ' '
	}
}
