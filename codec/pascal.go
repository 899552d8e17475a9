package codec

// PascalTable precomputes binomial coefficients C(n,k) for 0 <= n,k <=
// maxN, so that Rank and Unrank can run in O(n) time per call instead of
// recomputing factorials. Built once at domain load time and shared
// read-only afterwards; it never mutates after NewPascalTable returns.
type PascalTable struct {
	maxN  int
	table [][]uint64 // table[n][k] = C(n,k), 0 <= k <= n <= maxN
}

// NewPascalTable builds a Pascal's-triangle table covering 0 <= n,k <=
// maxN. Source scheme caps maxN at 1024 (table size 1025x1025); this
// implementation does not hard-enforce that limit, but callers building
// a domain whose live-floor count could exceed it should treat the
// memory cost (O(maxN^2) uint64s) as a sizing decision of their own.
func NewPascalTable(maxN int) *PascalTable {
	if maxN < 0 {
		maxN = 0
	}
	t := make([][]uint64, maxN+1)
	for n := 0; n <= maxN; n++ {
		row := make([]uint64, n+1)
		row[0] = 1
		row[n] = 1
		for k := 1; k < n; k++ {
			row[k] = t[n-1][k-1] + t[n-1][k]
		}
		t[n] = row
	}

	return &PascalTable{maxN: maxN, table: t}
}

// MaxN returns the largest n this table was built for.
func (t *PascalTable) MaxN() int {
	return t.maxN
}

// C returns C(n,k), the number of ways to choose k items from n. It
// returns 0 for any (n,k) outside the usual combinatorial domain
// (k < 0, k > n, or n < 0) rather than panicking, since Rank/Unrank rely
// on that convention at the boundary of a suffix (n-i-1, k'-1) term.
func (t *PascalTable) C(n, k int) uint64 {
	if n < 0 || k < 0 || k > n {
		return 0
	}
	if n > t.maxN {
		// Not pre-tabulated; callers are expected to size maxN to
		// their largest layer at load time. Compute on the fly rather
		// than silently truncating, so a sizing mistake surfaces as a
		// slow path rather than a wrong answer.
		return binomialSlow(n, k)
	}

	return t.table[n][k]
}

// binomialSlow computes C(n,k) without a precomputed table, used only
// as a fallback for n beyond the table's configured maxN.
func binomialSlow(n, k int) uint64 {
	if k > n-k {
		k = n - k
	}
	var result uint64 = 1
	for i := 0; i < k; i++ {
		result = result * uint64(n-i) / uint64(i+1)
	}

	return result
}
