// Package registry maps mode ids to game factories. Game packages register
// their modes from init(); the CLI and presenters look them up by id.
package registry

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/framebuffer"
)

// Game is one playable mode. Implementations hold pure simulation state;
// presenters own the loop, feed InputFrames and display Frame().
type Game interface {
	// ID is the registry key, e.g. "invaders".
	ID() string

	// Title is the name shown by list and menu, e.g. "Invaders (Endless)".
	Title() string

	// Reset rebuilds the board for cfg. It runs before the first Step and on restart.
	Reset(cfg core.RuntimeConfig)

	// Step advances one tick using the input snapshot for that tick.
	Step(in core.InputFrame) core.StepResult

	// Frame returns the pixel buffer composed by the last Step.
	// Row 0 is the bottom of the display. The buffer is reused between steps.
	Frame() *framebuffer.Buffer

	// State is the HUD-level summary after the last Step.
	State() core.GameState
}

// GameInfo is what List reports for a registered mode.
type GameInfo struct {
	ID    string
	Title string
}

// Factory builds a fresh, not yet Reset, game.
type Factory func() Game

type entry struct {
	build Factory
	title string
}

var (
	mu      sync.RWMutex
	entries = map[string]entry{}
)

// Register makes a mode available under id. The title is read once from a
// throwaway instance. Registering the same id twice panics.
func Register(id string, f Factory) {
	title := f().Title()

	mu.Lock()
	defer mu.Unlock()
	if _, dup := entries[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{build: f, title: title}
}

// List returns every registered mode ordered by id.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, 0, len(entries))
	for id, e := range entries {
		out = append(out, GameInfo{ID: id, Title: e.title})
	}
	slices.SortFunc(out, func(a, b GameInfo) int { return strings.Compare(a.ID, b.ID) })
	return out
}

// IDs returns the registered ids in sorted order.
func IDs() []string {
	mu.RLock()
	defer mu.RUnlock()
	return slices.Sorted(maps.Keys(entries))
}

// Create builds a new instance of the mode registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.build(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := entries[id]
	return ok
}
