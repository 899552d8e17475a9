package codec

// Rank computes the combinatorial rank of a binary string in
// [0, C(n,k)), where n = len(bits) and k is the number of true entries
// in bits. Strings are ordered with a one before a zero at the first
// position where they differ, which is the order Unrank reproduces. The
// encoder walks the string left to right; at each position holding a
// zero while ones remain, it adds C(n-i-1, k'-1), the number of strings
// that hold a one there instead, where k' is the number of ones not yet
// consumed.
//
// Complexity: O(n) given a precomputed table covering n.
func Rank(table *PascalTable, bits []bool) State {
	n := len(bits)
	onesLeft := 0
	for _, b := range bits {
		if b {
			onesLeft++
		}
	}

	var rank uint64
	for i := 0; i < n && onesLeft > 0; i++ {
		if bits[i] {
			onesLeft--
		} else {
			remaining := n - i - 1
			rank += table.C(remaining, onesLeft-1)
		}
	}

	return State(rank)
}

// Unrank reverses Rank: given n, k, and a rank in [0, C(n,k)), it
// reconstructs the unique binary string of length n with k ones whose
// Rank equals rank. At each position it asks whether placing a one
// there still "fits" inside the remaining rank budget: if the count of
// arrangements with a one at this position (C(n-i-1, k'-1)) is greater
// than what remains of rank, a one belongs here and rank is left as it
// is; otherwise the position is zero and rank is reduced by that count
// before moving on.
//
// Complexity: O(n) given a precomputed table covering n.
func Unrank(table *PascalTable, n, k int, rank State) []bool {
	bits := make([]bool, n)
	onesLeft := k
	r := uint64(rank)
	for i := 0; i < n && onesLeft > 0; i++ {
		remaining := n - i - 1
		c := table.C(remaining, onesLeft-1)
		if r < c {
			bits[i] = true
			onesLeft--
		} else {
			r -= c
		}
	}

	return bits
}
