package codec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solverlab/puzzlesolve/codec"
)

func TestComposer_ComposeDecomposeRoundTrip(t *testing.T) {
	c, err := codec.NewComposer(5, 9, 3) // e.g. facing x position x popup-bit
	require.NoError(t, err)
	require.EqualValues(t, 5*9*3-1, c.DomainSize())

	for f := uint64(0); f < 5; f++ {
		for p := uint64(0); p < 9; p++ {
			for b := uint64(0); b < 3; b++ {
				x, err := c.Compose(f, p, b)
				require.NoError(t, err)
				assert.LessOrEqual(t, x, c.DomainSize())

				values, err := c.Decompose(x)
				require.NoError(t, err)
				require.Equal(t, []uint64{f, p, b}, values)
			}
		}
	}
}

func TestComposer_WrongLayerCount(t *testing.T) {
	c, err := codec.NewComposer(3, 3)
	require.NoError(t, err)

	_, err = c.Compose(1)
	assert.ErrorIs(t, err, codec.ErrLayerCount)
}

func TestComposer_ValueOutOfRange(t *testing.T) {
	c, err := codec.NewComposer(3, 3)
	require.NoError(t, err)

	_, err = c.Decompose(c.DomainSize() + 1)
	assert.ErrorIs(t, err, codec.ErrValueOutOfRange)
}

func TestComposer_RankOverflowDetected(t *testing.T) {
	// A product of radices that overflows uint64 must be rejected.
	huge := uint64(1) << 32
	_, err := codec.NewComposer(huge, huge, huge)
	assert.ErrorIs(t, err, codec.ErrRankOverflow)
}

func TestState_BytesRoundTrip(t *testing.T) {
	// Codec boundary scenario: N = 2^56 exactly; state_size must be 7
	// bytes, and decode(N-1) must round-trip.
	domainMax := codec.State(1<<56 - 1)
	width := codec.StateSizeFor(domainMax)
	require.Equal(t, 7, width)

	b := domainMax.Bytes(width)
	require.Len(t, b, 7)
	assert.Equal(t, domainMax, codec.Decode(b))
}

func TestStateSizeFor_ZeroDomain(t *testing.T) {
	assert.Equal(t, 1, codec.StateSizeFor(0))
}
