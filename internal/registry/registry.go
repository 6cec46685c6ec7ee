// Package registry maps game IDs to factories. Games register themselves
// from init(), so the CLI and the TUI can start a game by name without
// importing its package directly.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-crawler/internal/core"
)

// Game is what the platform drives. Implementations hold pure simulation
// state and never touch the terminal; the platform maps keys to actions,
// calls Step once per input event and renders into a Screen.
type Game interface {
	// ID is the registry key, also used on the command line.
	ID() string

	// Title is the display name.
	Title() string

	// Reset starts a new run. Called once before the first Step and again
	// whenever the platform restarts the game.
	Reset(cfg core.RuntimeConfig)

	// Step applies one input frame.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into dst.
	Render(dst *core.Screen)

	// State reports score and pause status.
	State() core.GameState
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string `yaml:"id"`
	Title string `yaml:"title"`
}

// Factory creates a fresh game instance.
type Factory func() Game

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

type entry struct {
	factory Factory
	title   string
}

// Register adds a factory under id. It panics on an empty or duplicate id,
// both of which are programming errors caught at init time.
func Register(id string, f Factory) {
	if id == "" || f == nil {
		panic("registry: Register needs an id and a factory")
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{factory: f, title: f().Title()}
}

// List returns every registered game sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, 0, len(entries))
	for id, e := range entries {
		out = append(out, GameInfo{ID: id, Title: e.title})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Create instantiates the game registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
