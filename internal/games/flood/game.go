package flood

import (
	"encoding/binary"
	"fmt"
	"math/rand"

	"github.com/dchistyakov/flood-tui/internal/config"
	"github.com/dchistyakov/flood-tui/internal/core"
	"github.com/dchistyakov/flood-tui/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	// ModeClassic grows the board by one in each axis per completed level.
	ModeClassic Mode = "classic"
	// ModeZen regenerates a board of the same size per completed level.
	ModeZen Mode = "zen"
)

// Game adapts the flood rule engine to the platform loop.
type Game struct {
	mode Mode
	rng  *rand.Rand
	tick uint64

	board  Board
	level  int
	cursor int // selected palette index

	// Screen dimensions
	screenW int
	screenH int

	paused   bool
	tooSmall bool
}

// Package-level variables set by the CLI before the game is created.
var (
	selectedConfigPath string
	selectedPreset     config.DifficultyPreset
	overrideBoard      config.BoardConfig // zero fields mean "not overridden"
)

// SetConfigPath sets a custom config file path for the next game.
func SetConfigPath(path string) {
	selectedConfigPath = path
}

// SetDifficultyPreset selects a difficulty preset for the next game.
// An empty string keeps the config file values.
func SetDifficultyPreset(preset string) {
	selectedPreset = config.DifficultyPreset(preset)
}

// SetBoardOverride overrides individual generation parameters for the next
// game. Zero values leave the corresponding parameter untouched.
func SetBoardOverride(width, height, colors int) {
	overrideBoard = config.BoardConfig{Width: width, Height: height, Colors: colors}
}

// New creates a classic mode game.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewZen creates a zen mode game.
func NewZen() *Game {
	return &Game{mode: ModeZen}
}

func init() {
	registry.Register("flood", func() registry.Game {
		return New()
	})
	registry.Register("flood_zen", func() registry.Game {
		return NewZen()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeZen {
		return "flood_zen"
	}
	return "flood"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeZen {
		return "Flood (Zen)"
	}
	return "Flood"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.level = 1
	g.cursor = 0
	g.paused = false
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	params := g.boardParams()
	board, err := NewBoard(params.Width, params.Height, params.Colors, g.rng)
	if err != nil {
		// Parameters are normalized by the config layer; fall back hard
		// if someone still managed to feed us garbage.
		board, _ = NewBoard(12, 12, 6, g.rng)
	}
	g.board = board

	g.checkScreenSize()
}

// boardParams resolves starting board parameters from config, preset, and
// explicit overrides, in that order.
func (g *Game) boardParams() config.BoardConfig {
	cfg, _ := config.LoadFlood(selectedConfigPath)

	params := cfg.Board
	if g.mode == ModeZen {
		params = cfg.Zen
	}
	if preset, ok := config.BoardForPreset(selectedPreset); ok {
		params = preset
	}
	if overrideBoard.Width > 0 {
		params.Width = overrideBoard.Width
	}
	if overrideBoard.Height > 0 {
		params.Height = overrideBoard.Height
	}
	if overrideBoard.Colors > 0 {
		params.Colors = overrideBoard.Colors
	}
	return params
}

// checkScreenSize checks if the screen is large enough for the board, the
// palette row, and the HUD.
func (g *Game) checkScreenSize() {
	minW := core.Max(g.board.Width*2+4, g.board.Colors*4+4)
	minH := g.board.Height + 7
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if g.board.Finished {
		if in.Has(core.ActionConfirm) {
			g.advanceLevel()
		}
		return core.StepResult{State: g.State()}
	}

	switch {
	case in.Has(core.ActionLeft):
		g.cursor = (g.cursor + g.board.Colors - 1) % g.board.Colors
	case in.Has(core.ActionRight):
		g.cursor = (g.cursor + 1) % g.board.Colors
	}

	if pick := in.PickColor; pick > 0 && pick <= g.board.Colors {
		// Digit keys both select and apply, the classic flood-it feel.
		g.cursor = pick - 1
		g.applyCursor()
	} else if in.Has(core.ActionConfirm) {
		g.applyCursor()
	}

	return core.StepResult{State: g.State()}
}

// applyCursor plays the currently selected palette color.
func (g *Game) applyCursor() {
	// The cursor is clamped to the palette, so Apply cannot fail here.
	next, _ := g.board.Apply(Color(g.cursor))
	g.board = next
}

// advanceLevel replaces the completed board with the next one.
func (g *Game) advanceLevel() {
	if g.mode == ModeZen {
		g.board = g.board.Regenerate(g.rng)
	} else {
		g.board = g.board.NextLevel(g.rng)
	}
	g.level++
	g.cursor = 0
	g.checkScreenSize()
}

// Board returns the current board snapshot.
func (g *Game) Board() Board {
	return g.board
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.board.Score,
		Level:     g.level,
		Moves:     g.board.Moves,
		BoardDone: g.board.Finished,
		Paused:    g.paused || g.tooSmall,
	}
}

// MarshalState serializes the run for save-and-resume: the level counter
// followed by the board in its codec framing.
func (g *Game) MarshalState() ([]byte, error) {
	var tmp [binary.MaxVarintLen64]byte
	n := binary.PutVarint(tmp[:], int64(g.level))
	return append(tmp[:n:n], Marshal(g.board)...), nil
}

// UnmarshalState restores a previously saved run. Must be called after
// Reset so the rng and screen state are live.
func (g *Game) UnmarshalState(data []byte) error {
	level, n := binary.Varint(data)
	if n <= 0 || level < 1 {
		return fmt.Errorf("flood: corrupt save data")
	}
	board, err := Unmarshal(data[n:])
	if err != nil {
		return err
	}
	g.level = int(level)
	g.board = board
	g.cursor = 0
	g.checkScreenSize()
	return nil
}

// Interface checks.
var (
	_ registry.Game  = (*Game)(nil)
	_ registry.Saver = (*Game)(nil)
)
