package plank

import (
	"fmt"
	"strings"
)

// Print renders cfg as a short textual summary: the player's stump and
// every plank's current location (home stump, inventory, or the stump
// pair it bridges).
func (cfg *Config) Print() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "player@stump%d\n", cfg.playerStump)
	for pi, loc := range cfg.plankLoc {
		p := cfg.inst.planks[pi]
		switch {
		case loc == len(p.slots):
			fmt.Fprintf(&sb, "plank%d: home(stump%d)\n", pi, p.homeStump)
		case loc == len(p.slots)+1:
			fmt.Fprintf(&sb, "plank%d: inventory\n", pi)
		default:
			s := p.slots[loc]
			fmt.Fprintf(&sb, "plank%d: bridges stump%d-stump%d\n", pi, s.a, s.b)
		}
	}

	return sb.String()
}
