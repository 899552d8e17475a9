// Package suite loads a "library of small puzzles": a TOML manifest of
// tiny, fully inline puzzle instances (at least one per domain) tagged with the
// expected reachable-state count and shortest-solution length, so
// suite_test.go can assert against a single source of fixtures instead
// of duplicating literal puzzle text.
//
// The manifest format is a flat TOML table of [[instance]] entries,
// loaded with github.com/BurntSushi/toml.
package suite
