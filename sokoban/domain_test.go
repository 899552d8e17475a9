package sokoban

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomain_WorkersAreIndependent(t *testing.T) {
	inst, start, err := Load(strings.NewReader(trivialCorridor))
	require.NoError(t, err)

	d := NewDomain(inst, start, 2)
	assert.Equal(t, inst.StateSize(), d.StateSize())
	assert.Equal(t, inst.DomainSize(), d.DomainSize())
	assert.False(t, d.Won(0))
	assert.False(t, d.Won(1))

	var moved []byte
	for nb := range d.Neighbors(0) {
		moved = nb
		break
	}
	require.NotNil(t, moved)

	d.Decode(0, moved)
	assert.True(t, d.Won(0))
	// worker 1 must be untouched by worker 0's mutation.
	assert.False(t, d.Won(1))
	assert.NotEqual(t, d.Encode(0), d.Encode(1))
}
