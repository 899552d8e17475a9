// Package sokoban implements the Sokoban-with-deadlock-detection puzzle
// domain: cell taxonomy, deadlock preanalysis, move generation (walk,
// push, Chip's-Challenge-style block slap, popup-wall conversion, and
// force-floor chains), three families of per-successor deadlock pruning
// (2x2, N-pattern, goal-corridor), and the codec wiring that turns a
// Config into a domain.Domain-compatible encoded state.
//
// What
//
//   - Instance holds the static, load-time-only topology: grid
//     dimensions, per-cell category, the live/dead floor classification
//     computed by deadlock preanalysis, precomputed deadlock-pattern
//     candidate lists, and the codec.Composer sized for this instance.
//   - Config holds one worker's mutable current configuration: block
//     positions, player position and facing, and popup-wall trigger
//     state.
//   - Domain adapts (*Instance, []*Config) to the domain.Domain
//     interface consumed by the search engines.
//
// Why
//
//	Sokoban is the one fully specified domain in this module; every
//	engine is validated against it (see the concrete scenarios in
//	DESIGN.md and engine/enginetest).
//
// Grid representation
//
//	Cell storage and the index/coordinate helpers here are adapted from
//	the gridgraph package (precomputed neighbor offsets,
//	row-major index<->(x,y) conversion, InBounds), generalized from a
//	single int-valued grid to Sokoban's richer per-cell taxonomy plus a
//	dynamic entity overlay — see grid.go.
//
// Errors
//
//	Load-time errors (ErrMalformedInput, ErrGridTooLarge,
//	ErrLiveFloorShortage, codec.ErrRankOverflow) are fatal; this package
//	returns them as plain errors and lets the cmd/ layer decide how to
//	report them (see internal/fail).
package sokoban
