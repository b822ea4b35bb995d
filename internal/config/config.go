// Package config provides YAML-based game configuration loading and
// difficulty presets for the flood puzzle.
package config

// FloodConfig contains all tunable parameters for the puzzle.
type FloodConfig struct {
	Board BoardConfig `yaml:"board"`
	Zen   BoardConfig `yaml:"zen"`
}

// BoardConfig describes how boards are generated for a mode.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Colors int `yaml:"colors"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyCustom DifficultyPreset = "custom" // use the config file values as-is
)

// BoardForPreset returns the starting board parameters for a preset.
// Fewer colors and a smaller board make the puzzle easier; level
// progression escalates from there.
func BoardForPreset(preset DifficultyPreset) (BoardConfig, bool) {
	switch preset {
	case DifficultyEasy:
		return BoardConfig{Width: 10, Height: 10, Colors: 4}, true
	case DifficultyNormal:
		return BoardConfig{Width: 12, Height: 12, Colors: 6}, true
	case DifficultyHard:
		return BoardConfig{Width: 14, Height: 14, Colors: 8}, true
	default:
		return BoardConfig{}, false
	}
}

// ValidPreset reports whether the string names a known preset.
func ValidPreset(s string) bool {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyCustom:
		return true
	}
	return false
}
