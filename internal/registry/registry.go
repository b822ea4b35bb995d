// Package registry holds the global registry of playable game modes.
// Modes register themselves in init() functions, so the CLI and the TUI
// discover them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/dchistyakov/flood-tui/internal/core"
)

// Game is the interface every playable mode implements. Modes contain pure
// logic with no external dependencies (especially no Bubble Tea); the
// platform handles input mapping, timing, and terminal rendering.
type Game interface {
	// ID returns a unique identifier (e.g. "flood"), used for CLI
	// commands and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the game state. Called once at start
	// and again on restart.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into the provided screen buffer,
	// clearing it first.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}

// Saver is implemented by modes whose progress can be persisted and resumed.
// The platform stores the opaque state bytes alongside the score database.
type Saver interface {
	// MarshalState serializes the current progress.
	MarshalState() ([]byte, error)

	// UnmarshalState restores previously saved progress. Must be called
	// after Reset.
	UnmarshalState(data []byte) error
}

// Info describes a registered mode.
type Info struct {
	ID    string
	Title string
}

// Factory creates a new instance of a mode.
type Factory func() Game

type entry struct {
	factory Factory
	title   string
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a mode factory to the registry. Typically called from a
// mode's init() function. Panics on duplicate IDs.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: mode %q already registered", id))
	}
	entries[id] = entry{factory: f, title: f().Title()}
}

// List returns all registered modes, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(entries))
	for id, e := range entries {
		result = append(result, Info{ID: id, Title: e.title})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates a mode by its ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown mode %q", id)
	}
	return e.factory(), nil
}

// Exists reports whether a mode with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
