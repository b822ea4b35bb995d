package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dchistyakov/flood-tui/internal/config"
	"github.com/dchistyakov/flood-tui/internal/core"
)

// GameMode represents the selected game mode.
type GameMode int

const (
	GameModeClassic GameMode = iota
	GameModeZen
)

// Selection holds the user's selection from the mode menu.
type Selection struct {
	Mode   GameMode
	Preset config.DifficultyPreset
}

// ModeModel lets users choose game mode and difficulty.
type ModeModel struct {
	cursor         int
	presetCursor   int
	inPresetSelect bool
	width          int
	height         int
	keyMapper      *KeyMapper
	selection      Selection
	choosing       bool
	quitting       bool
}

// NewModeModel creates a new mode selection model.
func NewModeModel(width, height int) ModeModel {
	return ModeModel{
		cursor:    0,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m ModeModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m ModeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m ModeModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	if m.inPresetSelect {
		return m.handlePresetSelectKey(action)
	}
	return m.handleModeSelectKey(action)
}

func (m ModeModel) handleModeSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < 1 { // 2 options: Classic, Zen
			m.cursor++
		}
	case MenuActionSelect:
		switch m.cursor {
		case 0:
			m.selection.Mode = GameModeClassic
		case 1:
			m.selection.Mode = GameModeZen
		}
		m.inPresetSelect = true
		m.presetCursor = 1 // normal
	case MenuActionBack:
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

var presetOrder = []config.DifficultyPreset{
	config.DifficultyEasy,
	config.DifficultyNormal,
	config.DifficultyHard,
}

func (m ModeModel) handlePresetSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.presetCursor > 0 {
			m.presetCursor--
		}
	case MenuActionDown:
		if m.presetCursor < len(presetOrder)-1 {
			m.presetCursor++
		}
	case MenuActionSelect:
		m.choosing = false
		m.selection.Preset = presetOrder[m.presetCursor]
		return m, tea.Quit
	case MenuActionBack:
		m.inPresetSelect = false
	}

	return m, nil
}

// View renders the mode/difficulty selection.
func (m ModeModel) View() string {
	if m.quitting {
		return ""
	}

	if m.inPresetSelect {
		return m.viewPresetSelect()
	}
	return m.viewModeSelect()
}

func (m ModeModel) viewModeSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("F L O O D", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select game mode:", m.width))
	b.WriteString("\n\n")

	modes := []string{
		"Classic (board grows each level)",
		"Zen (endless, fixed size)",
	}

	for i, mode := range modes {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%s", cursor, mode), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Q: Quit", m.width))

	return b.String()
}

func (m ModeModel) viewPresetSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("DIFFICULTY", m.width))
	b.WriteString("\n\n")

	for i, preset := range presetOrder {
		cursor := "  "
		if i == m.presetCursor {
			cursor = "> "
		}

		board, _ := config.BoardForPreset(preset)
		line := fmt.Sprintf("%s%-8s %dx%d, %d colors", cursor, preset, board.Width, board.Height, board.Colors)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// Selected returns the selection, or nil if still choosing.
func (m ModeModel) Selected() *Selection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m ModeModel) IsQuitting() bool {
	return m.quitting
}

// RunModeSelector runs the mode selection and returns the selection.
// A nil selection means the user backed out.
func RunModeSelector(cfg core.RuntimeConfig) (*Selection, error) {
	model := NewModeModel(cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(ModeModel)
	if !ok {
		return nil, nil
	}

	if m.IsQuitting() {
		return nil, nil
	}

	return m.Selected(), nil
}
