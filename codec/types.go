package codec

import "errors"

// Sentinel errors for the codec package.
var (
	// ErrRankOverflow is returned when a Composer's exact integer radix
	// product disagrees with its floating-point estimate by more than
	// 0.1%, which signals uint64 overflow rather than a legitimately
	// huge but representable domain.
	ErrRankOverflow = errors.New("codec: radix product overflow")

	// ErrBitLengthMismatch names a bit length that does not match a
	// table's configured width. No function in this package returns it:
	// Rank and Unrank take their length from their input and do not
	// validate it.
	ErrBitLengthMismatch = errors.New("codec: bit length does not match table width")

	// ErrValueOutOfRange is returned when Decompose is called with a
	// State not below the Composer's DomainSize()+1.
	ErrValueOutOfRange = errors.New("codec: encoded value exceeds domain size")

	// ErrLayerCount is returned when Compose receives a number of layer
	// values that does not match the Composer's layer count.
	ErrLayerCount = errors.New("codec: wrong number of layer values")
)

// State is the perfect-hash rank of a configuration: an integer in
// [0, N) for a domain whose size is N. It is never exposed with a fixed
// bit width; width is a property of the domain (see StateSize), and
// State only ever holds values representable in a uint64.
type State uint64

// Bytes serializes s as a little-endian byte sequence of exactly width
// bytes. width must be large enough to hold s; callers obtain the right
// width from a Domain's StateSize(), which is sized to hold DomainSize().
func (s State) Bytes(width int) []byte {
	buf := make([]byte, width)
	v := uint64(s)
	for i := 0; i < width; i++ {
		buf[i] = byte(v)
		v >>= 8
	}

	return buf
}

// Decode reconstructs a State from a little-endian byte sequence
// produced by Bytes. Extra bytes beyond 8 are ignored (no domain in this
// module needs more than 64 bits); extra high bytes are expected to be
// zero and are not validated here, as that is a decode-time invariant
// the caller's domain is responsible for round-tripping correctly.
func Decode(b []byte) State {
	var v uint64
	for i := len(b) - 1; i >= 0; i-- {
		v = v<<8 | uint64(b[i])
	}

	return State(v)
}

// StateSizeFor returns the minimum number of bytes needed to hold the
// value max (typically a domain's DomainSize(), i.e. N-1). A max of 0
// still needs one byte, since the wire format never emits a zero-length
// state.
func StateSizeFor(max State) int {
	if max == 0 {
		return 1
	}
	n := 0
	for v := uint64(max); v > 0; v >>= 8 {
		n++
	}

	return n
}
