// Package invaders implements the fixed-timestep invaders simulation: a ship that
// moves along the bottom edge and fires upward at an animated grid of aliens.
package invaders

import (
	"fmt"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/framebuffer"
	"github.com/vovakirdan/tui-invaders/internal/registry"
	"github.com/vovakirdan/tui-invaders/internal/sprite"
)

// GameMode represents the game mode.
type GameMode int

const (
	ModeWave    GameMode = iota // One wave; clearing it ends the game
	ModeEndless                 // Cleared waves respawn forever
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// spriteStore overrides the built-in sprite sheet when set
var spriteStore *sprite.Store

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetSpriteStore replaces the sprite sheet used by games reset after this call.
// A nil store restores the built-in sheet.
func SetSpriteStore(store *sprite.Store) error {
	if store != nil {
		if err := store.Require(sprite.Required...); err != nil {
			return fmt.Errorf("invaders: %w", err)
		}
	}
	spriteStore = store
	return nil
}

// Game implements the invaders game logic.
type Game struct {
	mode GameMode

	world *World
	frame *framebuffer.Buffer
	store *sprite.Store

	// Game state
	score    int
	wave     int
	tick     uint64
	gameOver bool
	paused   bool

	// Configuration
	runtime core.RuntimeConfig
	cfg     config.InvadersConfig
	colors  config.Colors
	pinned  *config.InvadersConfig
}

// New creates a new invaders game instance (single wave).
func New() *Game {
	return &Game{mode: ModeWave}
}

// NewEndless creates a new invaders game instance in endless mode.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "invaders_endless"
	}
	return "invaders"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Invaders (Endless)"
	}
	return "Invaders"
}

// UseConfig pins cfg for every later Reset, bypassing file lookup and presets.
func (g *Game) UseConfig(cfg config.InvadersConfig) {
	g.pinned = &cfg
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.cfg = g.loadConfig()

	g.store = spriteStore
	if g.store == nil {
		g.store = sprite.Builtin()
	}

	width, height := boardSize(g.cfg, runtime)
	world, err := NewWorld(g.cfg, width, height, g.store)
	if err != nil {
		// Reset has no error path; callers that care check with NewWorld first.
		g.cfg = config.DefaultInvadersConfig()
		g.store = sprite.Builtin()
		width, height = boardSize(g.cfg, core.RuntimeConfig{})
		world, err = NewWorld(g.cfg, width, height, g.store)
		if err != nil {
			panic(fmt.Sprintf("invaders: built-in defaults: %v", err))
		}
	}
	g.world = world

	colors, err := g.cfg.Palette.Colors()
	if err != nil {
		colors, _ = config.DefaultInvadersConfig().Palette.Colors()
	}
	g.colors = colors

	if g.frame == nil || g.frame.Width() != width || g.frame.Height() != height {
		g.frame = framebuffer.New(width, height)
	}

	g.score = 0
	g.wave = 1
	g.tick = 0
	g.gameOver = false
	g.paused = false

	g.render(g.world.Animation.FrameIndex())
}

// boardSize is the configured board, overridden by any positive runtime size.
func boardSize(cfg config.InvadersConfig, runtime core.RuntimeConfig) (int, int) {
	width, height := cfg.Board.Width, cfg.Board.Height
	if runtime.Width > 0 {
		width = runtime.Width
	}
	if runtime.Height > 0 {
		height = runtime.Height
	}
	return width, height
}

func (g *Game) loadConfig() config.InvadersConfig {
	if g.pinned != nil {
		return *g.pinned
	}

	cfg, _, err := config.LoadInvaders(configPath)
	if err != nil {
		cfg = config.DefaultInvadersConfig()
	}

	// Apply difficulty preset if set
	if difficultyPreset != "" {
		config.ApplyInvadersPreset(&cfg, difficultyPreset)
	}
	return cfg
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	// Handle restart
	if in.Has(core.ActionRestart) && g.gameOver {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}

	if g.paused || g.gameOver {
		return core.StepResult{State: g.State()}
	}

	g.tick++

	dt := in.DT
	if dt <= 0 {
		dt = g.runtime.FrameDT()
	}

	w := g.world
	frame := w.Animation.FrameIndex()

	g.render(frame)
	w.Animation.Advance(dt)

	hits, kills := w.resolveProjectiles(frame)
	g.score += kills * g.cfg.Enemies.Points

	w.movePlayer(in.Move)

	fired := false
	if in.Fire {
		fired = w.fire()
	}

	if w.Cleared() {
		g.onWaveCleared()
	}

	return core.StepResult{
		State: g.State(),
		Hits:  hits,
		Kills: kills,
		Fired: fired,
	}
}

func (g *Game) render(frame int) {
	g.world.draw(g.frame, frame, g.colors)
	drawHUD(g.frame, g.store, g.score, g.world.Player.Lives, g.colors)
}

// onWaveCleared ends the game or respawns the roster, depending on mode.
func (g *Game) onWaveCleared() {
	if g.mode != ModeEndless {
		g.gameOver = true
		return
	}
	g.world.spawnRoster()
	g.wave++
}

// Frame returns the pixel buffer composed by the last step.
func (g *Game) Frame() *framebuffer.Buffer {
	return g.frame
}

// World exposes the simulation state for inspection.
func (g *Game) World() *World {
	return g.world
}

// Colors returns the palette in use.
func (g *Game) Colors() config.Colors {
	return g.colors
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	lives := 0
	if g.world != nil {
		lives = g.world.Player.Lives
	}
	return core.GameState{
		Score:    g.score,
		Lives:    lives,
		Wave:     g.wave,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

func init() {
	registry.Register("invaders", func() registry.Game { return New() })
	registry.Register("invaders_endless", func() registry.Game { return NewEndless() })
}
