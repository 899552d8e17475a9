package suite

import (
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Load parses the TOML manifest at path into a Manifest.
func Load(path string) (*Manifest, error) {
	var m Manifest
	if _, err := toml.DecodeFile(path, &m); err != nil {
		return nil, errors.Wrap(err, "suite: decode manifest")
	}

	return &m, nil
}

// LoadString parses manifest text directly, for callers (mainly tests)
// that don't want a testdata file round trip.
func LoadString(text string) (*Manifest, error) {
	var m Manifest
	if _, err := toml.Decode(text, &m); err != nil {
		return nil, errors.Wrap(err, "suite: decode manifest")
	}

	return &m, nil
}
