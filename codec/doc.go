// Package codec implements the bijective state encoding shared by every
// puzzle domain in this module: a perfect hash from reachable
// configurations onto a dense integer range [0, N).
//
// What
//
//   - PascalTable precomputes binomial coefficients C(n,k) for n,k up to a
//     configured limit, used by Rank/Unrank below.
//   - Rank/Unrank implement the two-symbol multinomial ranking scheme: a
//     binary string of length n with k ones is mapped to (and from) an
//     integer in [0, C(n,k)).
//   - Composer combines several independent sub-encodings ("layers"),
//     each contributing a factor to the overall domain size N, into a
//     single mixed-radix State value and back.
//
// Why
//
//   - A dense [0, N) range lets a search engine store "visited" as a
//     single bit per state instead of a hash table entry, which is the
//     difference between a reachable-in-RAM visited set and one that
//     cannot fit even on disk for these puzzle domains.
//
// Determinism
//
//	Rank and Unrank are pure functions of (n, k, table); no allocation is
//	shared across calls, so concurrent callers may share one *PascalTable
//	(read-only after construction) safely.
//
// Complexity
//
//   - PascalTable construction: O(maxN^2).
//   - Rank / Unrank: O(n) given a precomputed table.
//   - Composer.Compose / Decompose: O(len(radices)).
//
// Errors
//
//   - ErrRankOverflow: a Composer's radix product disagrees with its
//     floating-point estimate by more than 0.1%, signalling uint64
//     overflow during construction.
//   - ErrValueOutOfRange: Decompose called with a value above
//     DomainSize().
//   - ErrLayerCount: Compose called with a number of layer values other
//     than NumLayers().
//   - ErrBitLengthMismatch: declared, but not returned by any function in
//     this package; Rank and Unrank take their length from their input
//     and return no error.
package codec
