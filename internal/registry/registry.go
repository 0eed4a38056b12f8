// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/samber/lo"

	"github.com/vovakirdan/grid-arcade/internal/core"
)

// Game is the interface every arcade game implements.
// Games contain pure logic; the platform handles input mapping, timing
// and terminal output.
type Game interface {
	// ID returns a unique identifier (e.g. "minesweeper", "gemgem").
	// Used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset builds a fresh board. Called at start and on restart.
	Reset(cfg core.RuntimeConfig)

	// Step advances the game by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into a pre-cleared screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID     string
	Title  string
	Parent string // non-empty for difficulty variants of another game
}

// IsVariant reports whether the entry is a variant reached through its
// parent's sub-menu.
func (i GameInfo) IsVariant() bool {
	return i.Parent != ""
}

// Factory creates a new instance of a game.
type Factory func() Game

type entry struct {
	factory Factory
	info    GameInfo
}

var (
	entries = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds a game factory to the registry.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	register(id, "", f)
}

// RegisterVariant adds a factory for a preset of an already named game.
// Variants are playable by ID but hidden from the top-level menu.
func RegisterVariant(id, parent string, f Factory) {
	register(id, parent, f)
}

func register(id, parent string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	entries[id] = entry{
		factory: f,
		info:    GameInfo{ID: id, Title: f().Title(), Parent: parent},
	}
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := lo.MapToSlice(entries, func(_ string, e entry) GameInfo {
		return e.info
	})
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// TopLevel returns the registered games that are not variants.
func TopLevel() []GameInfo {
	return lo.Reject(List(), func(g GameInfo, _ int) bool {
		return g.IsVariant()
	})
}

// Variants returns the variants registered under parent, sorted by ID.
func Variants(parent string) []GameInfo {
	return lo.Filter(List(), func(g GameInfo, _ int) bool {
		return g.Parent == parent
	})
}

// Create instantiates a new game by its ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
