package domain

import (
	"iter"

	"github.com/solverlab/puzzlesolve/codec"
)

// Domain is the contract every puzzle implementation exposes to a BFS
// search engine. All methods are safe to call concurrently across
// distinct worker ids, and unsafe to call concurrently on the same
// worker id (the engines never do).
type Domain interface {
	// StateSize returns the byte width of an encoded state (the wire
	// width produced by Encode and consumed by Decode).
	StateSize() int

	// DomainSize returns N-1, the maximum encoded value this domain can
	// produce.
	DomainSize() codec.State

	// Encode returns the current configuration of worker as a
	// little-endian byte sequence of length StateSize(). The returned
	// slice is valid only until the next call on the same worker id.
	Encode(worker int) []byte

	// Decode replaces worker's current configuration with the one
	// encoded by b.
	Decode(worker int, b []byte)

	// Neighbors enumerates the encoded successors of worker's current
	// configuration. The configuration is restored to its pre-call
	// value before Neighbors returns (including when the consumer stops
	// ranging early). Each yielded []byte is valid only until the next
	// iteration step or until Neighbors returns.
	Neighbors(worker int) iter.Seq[[]byte]

	// Won reports whether worker's current configuration satisfies the
	// domain's goal predicate.
	Won(worker int) bool

	// Print renders worker's current configuration for human-readable
	// solution output.
	Print(worker int) string
}
