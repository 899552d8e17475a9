// Package npuzzle implements the sliding-tile ("15-puzzle" generalized to
// n rows by m columns) domain: a single factorial-rank codec over the
// full tile permutation, with move generation sliding the blank tile
// into one of its orthogonal neighbors.
//
// Unlike the sokoban package, there is no mixed-radix layering: a state
// is exactly one permutation of the n*m tile values (one of which is the
// blank), so the codec is a direct Lehmer-code rank/unrank rather than a
// codec.Composer built from several independent sub-encodings.
//
// Complexity: Encode and Decode are O(k^2) in the number of tiles k
// (the textbook Lehmer-code algorithm; a faster O(k) rank is possible
// but not implemented here — see DESIGN.md). Neighbors tries at most 4
// candidate slides and encodes each one, so it is O(k^2) as well.
//
// Memory: O(k) per worker for the tile board plus O(k) scratch during
// rank/unrank.
package npuzzle
