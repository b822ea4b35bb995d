package config

import (
	_ "embed"
)

//go:embed defaults/flood.yaml
var defaultFloodYAML []byte

// DefaultFloodConfig returns the hardcoded fallback configuration, matching
// the embedded YAML.
func DefaultFloodConfig() FloodConfig {
	return FloodConfig{
		Board: BoardConfig{
			Width:  12,
			Height: 12,
			Colors: 6,
		},
		Zen: BoardConfig{
			Width:  10,
			Height: 10,
			Colors: 5,
		},
	}
}
