package codec

import "math"

// Composer combines a fixed, ordered list of independent layer radices
// into one mixed-radix State and back. Layers are listed outer to inner
// (the first radix varies slowest in the composed value); Sokoban
// layers facing direction, then player position, then the
// block-placement binary layer, then one bit per popup wall.
//
// A Composer is immutable after construction; NewComposer performs its
// overflow cross-check exactly once.
type Composer struct {
	radices []uint64
	size    State // product(radices) - 1 == N-1
}

// NewComposer builds a Composer for the given layer radices (outer to
// inner). It returns ErrRankOverflow if the exact uint64 product and an
// independently computed float64 estimate disagree by more than 0.1%,
// signaling that the integer product silently wrapped around.
func NewComposer(radices ...uint64) (*Composer, error) {
	var product uint64 = 1
	var estimate float64 = 1
	rs := make([]uint64, len(radices))
	for i, r := range radices {
		if r == 0 {
			r = 1 // a degenerate zero-width layer contributes no choice
		}
		rs[i] = r
		product *= r
		estimate *= float64(r)
	}

	if estimate > 0 {
		diff := math.Abs(float64(product) - estimate)
		if diff/estimate > 0.001 {
			return nil, ErrRankOverflow
		}
	}

	return &Composer{radices: rs, size: State(product - 1)}, nil
}

// DomainSize returns N-1, the maximum encoded value this Composer can
// produce. Returning N-1 rather than N lets N = 2^k fit in the same
// integer width as every other value in the domain.
func (c *Composer) DomainSize() State {
	return c.size
}

// StateSize returns the minimum number of bytes needed to hold
// DomainSize() little-endian, the wire width every Domain.StateSize()
// implementation should report.
func (c *Composer) StateSize() int {
	return StateSizeFor(c.size)
}

// NumLayers returns the number of layers this Composer was built with.
func (c *Composer) NumLayers() int {
	return len(c.radices)
}

// Radix returns the radix of layer i (0 = outermost).
func (c *Composer) Radix(i int) uint64 {
	return c.radices[i]
}

// Compose folds per-layer values (outer to inner, each already in
// [0, Radix(i))) into a single State via Horner's method:
// value = (((v0)*r1 + v1)*r2 + v2)... It returns ErrLayerCount if len
// (values) does not match NumLayers().
func (c *Composer) Compose(values ...uint64) (State, error) {
	if len(values) != len(c.radices) {
		return 0, ErrLayerCount
	}

	var acc uint64
	for i, v := range values {
		acc = acc*c.radices[i] + v
	}

	return State(acc), nil
}

// Decompose reverses Compose, extracting each layer's value (outer to
// inner) from x. It returns ErrValueOutOfRange if x exceeds DomainSize().
func (c *Composer) Decompose(x State) ([]uint64, error) {
	if x > c.size {
		return nil, ErrValueOutOfRange
	}

	values := make([]uint64, len(c.radices))
	acc := uint64(x)
	for i := len(c.radices) - 1; i >= 0; i-- {
		r := c.radices[i]
		values[i] = acc % r
		acc /= r
	}

	return values, nil
}
