package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/registry"
	"github.com/vovakirdan/tui-invaders/internal/sprite"
)

// Flags shared by play and simulate.
var (
	flagConfig     string
	flagDifficulty string
	flagSprites    string
)

// spritesUsage is the --sprites help text, listing the formats LoadSheet accepts.
var spritesUsage = "Path to a sprite sheet (" + strings.Join(sprite.SheetExtensions(), ", ") + ")"

// session is a created game plus the effective configuration it will run with.
type session struct {
	game   registry.Game
	cfg    config.InvadersConfig
	colors config.Colors
}

// loadSprites returns the sheet named by --sprites, or the built-in sheet.
func loadSprites(logger *log.Logger) (*sprite.Store, error) {
	if flagSprites == "" {
		logger.Debug("using built-in sprites")
		return sprite.Builtin(), nil
	}
	store, err := sprite.LoadSheet(flagSprites)
	if err != nil {
		return nil, err
	}
	logger.Info("loaded sprite sheet", "path", flagSprites, "sprites", store.Len())
	return store, nil
}

// newSession validates config, difficulty and sprites up front so that bad input
// fails at startup, then hands them to the game package and creates the mode.
func newSession(logger *log.Logger, mode string) (*session, error) {
	if !registry.Exists(mode) {
		return nil, fmt.Errorf("unknown game %q (available: %s)", mode, strings.Join(registry.IDs(), ", "))
	}

	preset := config.ParsePreset(flagDifficulty)
	if flagDifficulty != "" && preset == "" {
		return nil, fmt.Errorf("unknown difficulty %q (easy, normal, hard)", flagDifficulty)
	}

	cfg, source, err := config.LoadInvaders(flagConfig)
	if err != nil {
		return nil, err
	}
	config.ApplyInvadersPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	colors, err := cfg.Palette.Colors()
	if err != nil {
		return nil, err
	}
	logger.Info("loaded config", "source", source, "difficulty", string(preset))

	store, err := loadSprites(logger)
	if err != nil {
		return nil, err
	}
	// The player sprite width only becomes known here, so margins are checked now
	// rather than left to Reset, which would fall back to the defaults.
	if _, err := invaders.NewWorld(cfg, cfg.Board.Width, cfg.Board.Height, store); err != nil {
		return nil, err
	}

	// Set config path, difficulty and sprites for the game before creation
	invaders.SetConfigPath(flagConfig)
	invaders.SetDifficultyPreset(flagDifficulty)
	if err := invaders.SetSpriteStore(store); err != nil {
		return nil, err
	}

	game, err := registry.Create(mode)
	if err != nil {
		return nil, err
	}
	return &session{game: game, cfg: cfg, colors: colors}, nil
}
