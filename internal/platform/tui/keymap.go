package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dchistyakov/flood-tui/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action plus an optional direct
// palette pick (1-based, 0 if none). isQuit flags the global quit keys.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, pick int, isQuit bool) {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, 0, true
	}

	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		return core.ActionNone, int(key[0] - '0'), false
	}

	switch key {
	case "a", "left", "h":
		return core.ActionLeft, 0, false
	case "d", "right", "l":
		return core.ActionRight, 0, false
	case "enter", " ":
		return core.ActionConfirm, 0, false
	case "b", "esc":
		return core.ActionBack, 0, false
	case "p":
		return core.ActionPause, 0, false
	case "r":
		return core.ActionRestart, 0, false
	}

	return core.ActionNone, 0, false
}

// MenuAction represents navigation intents inside menus.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key message to a menu navigation action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "up", "k", "w":
		return MenuActionUp
	case "down", "j", "s":
		return MenuActionDown
	case "left", "h", "a":
		return MenuActionLeft
	case "right", "l", "d":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	}
	return MenuActionNone
}
