package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dchistyakov/flood-tui/internal/core"
	"github.com/dchistyakov/flood-tui/internal/registry"
	"github.com/dchistyakov/flood-tui/internal/storage"
)

// Model is the Bubble Tea model for running the game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	scoreRowID int64 // score row for the current run, 0 until first recorded
	resume     bool
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
// When resume is set and a save exists, it is restored after the reset.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, resume bool) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		resume:     resume,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.restoreSave()

	return tickCmd(m.config.TickRate)
}

// restoreSave loads persisted progress into the game, best effort.
func (m Model) restoreSave() {
	if !m.resume || m.store == nil {
		return
	}
	saver, ok := m.game.(registry.Saver)
	if !ok {
		return
	}
	state, err := m.store.LoadGame(m.game.ID())
	if err != nil || state == nil {
		return
	}
	//nolint:errcheck // A corrupt save just starts a fresh run
	saver.UnmarshalState(state)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, pick, isQuit := m.keyMapper.MapKey(msg)

	if isQuit {
		m.saveProgress()
		m.quitting = true
		return m, tea.Quit
	}

	if pick > 0 {
		m.inputFrame.PickColor = pick
	}
	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// The game keeps its board; only the layout adapts. Restoring the
	// current progress through the save codec avoids resetting the run.
	if saver, ok := m.game.(registry.Saver); ok {
		if state, err := saver.MarshalState(); err == nil {
			m.game.Reset(m.config)
			//nolint:errcheck // State came from MarshalState a moment ago
			saver.UnmarshalState(state)
			return m, nil
		}
	}
	m.game.Reset(m.config)

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) {
		// A restart abandons the run: record its score, drop the save.
		m.recordScore()
		m.deleteSave()
		m.scoreRowID = 0
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	prevDone := m.gameState.BoardDone
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Refresh the run's score row each time a board is completed.
	if m.gameState.BoardDone && !prevDone {
		m.recordScore()
	}

	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveProgress persists both the score history and the resumable state.
func (m Model) saveProgress() {
	m.recordScore()

	if m.store == nil {
		return
	}
	if saver, ok := m.game.(registry.Saver); ok {
		if state, err := saver.MarshalState(); err == nil {
			//nolint:errcheck // Best-effort save on the way out
			m.store.SaveGame(m.game.ID(), state)
		}
	}
}

// recordScore writes the run's cumulative score, keeping a single row per
// run: the first record inserts, later ones update it in place.
func (m *Model) recordScore() {
	if m.store == nil {
		return
	}
	state := m.game.State()
	if state.Score <= 0 {
		return
	}

	if m.scoreRowID == 0 {
		if id, err := m.store.SaveScore(m.game.ID(), state.Score, state.Level, state.Moves); err == nil {
			m.scoreRowID = id
		}
		return
	}
	//nolint:errcheck // Best-effort save, the game continues regardless
	m.store.UpdateScore(m.scoreRowID, state.Score, state.Level, state.Moves)
}

// deleteSave drops any resumable state for this mode.
func (m Model) deleteSave() {
	if m.store == nil {
		return
	}
	//nolint:errcheck // Best-effort cleanup
	m.store.DeleteGame(m.game.ID())
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".flood", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, the game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, resume bool) error {
	model := NewModel(game, store, cfg, resume)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
