// Package plank implements the plank-crossing domain: a player stands on
// one of a fixed set of stumps and must walk planks of various lengths
// into the gaps between stumps to reach a target.
//
// A state is (player stump, the location of every plank — installed in
// one of its candidate bridge slots, held in the player's inventory, or
// resting at its home stump), encoded with codec.Composer: one radix for
// player position among stumps, then one radix per plank of (slot count
// + 2) for that plank's location.
//
// Move generation treats "which stumps are currently reachable" as a
// local BFS over direct stump adjacency plus any installed bridges (see
// reachableStumps), and emits a move to each other reachable stump, plus
// either a pick-up of each plank resting at a reachable stump (when
// nothing is held) or a drop of the held plank into each slot incident
// to a reachable stump. There
// is no goal-stump canonicalization, so distinct reachable stumps each
// get their own visited-set entry even when they are move-equivalent.
package plank
