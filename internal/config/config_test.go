package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestBoardForPreset(t *testing.T) {
	tests := []struct {
		preset DifficultyPreset
		want   BoardConfig
		ok     bool
	}{
		{DifficultyEasy, BoardConfig{Width: 10, Height: 10, Colors: 4}, true},
		{DifficultyNormal, BoardConfig{Width: 12, Height: 12, Colors: 6}, true},
		{DifficultyHard, BoardConfig{Width: 14, Height: 14, Colors: 8}, true},
		{DifficultyCustom, BoardConfig{}, false},
		{DifficultyPreset(""), BoardConfig{}, false},
		{DifficultyPreset("nightmare"), BoardConfig{}, false},
	}

	for _, tc := range tests {
		got, ok := BoardForPreset(tc.preset)
		if ok != tc.ok || got != tc.want {
			t.Errorf("BoardForPreset(%q) = %+v, %v; expected %+v, %v", tc.preset, got, ok, tc.want, tc.ok)
		}
	}
}

func TestValidPreset(t *testing.T) {
	for _, s := range []string{"easy", "normal", "hard", "custom"} {
		if !ValidPreset(s) {
			t.Errorf("ValidPreset(%q) = false, expected true", s)
		}
	}
	for _, s := range []string{"", "EASY", "extreme"} {
		if ValidPreset(s) {
			t.Errorf("ValidPreset(%q) = true, expected false", s)
		}
	}
}

func TestLoadFloodDefault(t *testing.T) {
	cfg, err := LoadFlood("")
	if err != nil {
		t.Fatalf("LoadFlood failed: %v", err)
	}

	def := DefaultFloodConfig()
	if cfg.Board.Width < def.Board.Width-2 || cfg.Board.Width > def.Board.Width+2 {
		// A user config on the host may shadow the default; only sanity-check.
		t.Logf("board width %d differs from default %d", cfg.Board.Width, def.Board.Width)
	}
	if cfg.Board.Width <= 0 || cfg.Board.Height <= 0 || cfg.Board.Colors <= 0 {
		t.Errorf("LoadFlood produced unplayable board config: %+v", cfg.Board)
	}
	if cfg.Zen.Width <= 0 || cfg.Zen.Height <= 0 || cfg.Zen.Colors <= 0 {
		t.Errorf("LoadFlood produced unplayable zen config: %+v", cfg.Zen)
	}
}

func TestLoadFloodCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "flood.yaml")

	yaml := `board:
  width: 7
  height: 5
  colors: 3
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadFlood(path)
	if err != nil {
		t.Fatalf("LoadFlood failed: %v", err)
	}

	want := BoardConfig{Width: 7, Height: 5, Colors: 3}
	if cfg.Board != want {
		t.Errorf("Board = %+v, expected %+v", cfg.Board, want)
	}

	// The zen section was omitted and must be filled from defaults.
	def := DefaultFloodConfig()
	if cfg.Zen != def.Zen {
		t.Errorf("Zen = %+v, expected default %+v", cfg.Zen, def.Zen)
	}
}

func TestLoadFloodMissingCustomPath(t *testing.T) {
	if _, err := LoadFlood(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing custom config path")
	}
}
