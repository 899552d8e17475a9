package codec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solverlab/puzzlesolve/codec"
)

// allBitPatterns returns every binary string of length n with exactly k
// ones, in Rank order (i.e. allBitPatterns(n,k)[r] is Unrank(table,n,k,r)).
func allBitPatterns(n, k int) [][]bool {
	var out [][]bool
	var rec func(pos, onesLeft int, cur []bool)
	rec = func(pos, onesLeft int, cur []bool) {
		if pos == n {
			if onesLeft == 0 {
				cp := make([]bool, n)
				copy(cp, cur)
				out = append(out, cp)
			}
			return
		}
		if onesLeft > 0 {
			cur[pos] = true
			rec(pos+1, onesLeft-1, cur)
		}
		cur[pos] = false
		rec(pos+1, onesLeft, cur)
	}
	rec(0, k, make([]bool, n))

	return out
}

func TestRankUnrank_RoundTripsEveryPattern(t *testing.T) {
	table := codec.NewPascalTable(12)
	for n := 0; n <= 10; n++ {
		for k := 0; k <= n; k++ {
			patterns := allBitPatterns(n, k)
			for wantRank, bits := range patterns {
				gotRank := codec.Rank(table, bits)
				assert.EqualValuesf(t, wantRank, gotRank, "Rank(n=%d,k=%d,bits=%v)", n, k, bits)

				back := codec.Unrank(table, n, k, gotRank)
				assert.Equalf(t, bits, back, "Unrank(n=%d,k=%d,rank=%d)", n, k, gotRank)
			}
		}
	}
}

func TestRank_EmptyString(t *testing.T) {
	table := codec.NewPascalTable(4)
	r := codec.Rank(table, nil)
	assert.EqualValues(t, 0, r)
}

func TestPascalTable_FallsBackBeyondMaxN(t *testing.T) {
	table := codec.NewPascalTable(4)
	// n=6 exceeds maxN=4; C must still be correct via the slow path.
	require.EqualValues(t, 15, table.C(6, 2))
	require.EqualValues(t, 20, table.C(6, 3))
}

func TestPascalTable_OutOfDomainIsZero(t *testing.T) {
	table := codec.NewPascalTable(8)
	assert.EqualValues(t, 0, table.C(5, -1))
	assert.EqualValues(t, 0, table.C(5, 6))
	assert.EqualValues(t, 0, table.C(-1, 0))
}
