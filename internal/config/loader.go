package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadFlood loads the puzzle configuration.
// Search order: customPath -> ~/.flood/configs/flood.yaml -> ./configs/flood.yaml -> embedded default
func LoadFlood(customPath string) (FloodConfig, error) {
	var cfg FloodConfig

	// A custom path must exist and parse; the fallbacks are best-effort.
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return normalize(cfg), nil
	}

	if userCfgPath := userConfigPath("flood.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return normalize(cfg), nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "flood.yaml")); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return normalize(cfg), nil
		}
	}

	if err := yaml.Unmarshal(defaultFloodYAML, &cfg); err != nil {
		return DefaultFloodConfig(), nil // Fallback to hardcoded if embed fails
	}
	return normalize(cfg), nil
}

// normalize fills zero or negative board values from the defaults, so a
// partial config file still produces playable parameters.
func normalize(cfg FloodConfig) FloodConfig {
	def := DefaultFloodConfig()
	cfg.Board = fillBoard(cfg.Board, def.Board)
	cfg.Zen = fillBoard(cfg.Zen, def.Zen)
	return cfg
}

func fillBoard(b, def BoardConfig) BoardConfig {
	if b.Width <= 0 {
		b.Width = def.Width
	}
	if b.Height <= 0 {
		b.Height = def.Height
	}
	if b.Colors <= 0 {
		b.Colors = def.Colors
	}
	return b
}

// userConfigPath returns the path to a config file in the user's config
// directory, or empty if the home directory cannot be determined.
func userConfigPath(name string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".flood", "configs", name)
}
