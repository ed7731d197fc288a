// Package config provides YAML-based game configuration loading and
// difficulty presets for the invaders platform.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// InvadersConfig contains all tunable constants of the invaders game.
// The rules themselves are fixed in code; this only sizes and paces them.
type InvadersConfig struct {
	Board       Board       `yaml:"board"`
	Enemies     Enemies     `yaml:"enemies"`
	Player      PlayerCfg   `yaml:"player"`
	Projectiles Projectiles `yaml:"projectiles"`
	Palette     Palette     `yaml:"palette"`
}

// Board defines the playfield (and frame buffer) size in pixels.
type Board struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Enemies defines the alien grid.
type Enemies struct {
	Rows          int     `yaml:"rows"`
	Cols          int     `yaml:"cols"`
	OriginX       int     `yaml:"origin_x"`       // X of the bottom-left alien
	OriginY       int     `yaml:"origin_y"`       // Y of the bottom-left alien
	SpacingX      int     `yaml:"spacing_x"`      // Horizontal distance between columns
	SpacingY      int     `yaml:"spacing_y"`      // Vertical distance between rows
	HitPoints     int     `yaml:"hit_points"`     // Hits needed to kill one alien
	DeathFrames   int     `yaml:"death_frames"`   // Frames the death sprite stays visible
	FrameDuration float64 `yaml:"frame_duration"` // Seconds per animation frame
	Points        int     `yaml:"points"`         // Score per kill
}

// PlayerCfg defines the player ship.
type PlayerCfg struct {
	StartX int `yaml:"start_x"`
	StartY int `yaml:"start_y"`
	Lives  int `yaml:"lives"`
	Speed  int `yaml:"speed"`  // Velocity is 2 * move * speed pixels per tick
	Margin int `yaml:"margin"` // Inset from each horizontal edge
}

// Projectiles defines player shots.
type Projectiles struct {
	Capacity int `yaml:"capacity"` // Max shots alive at once
	Speed    int `yaml:"speed"`    // Pixels per tick, upward
}

// Palette holds "#rrggbb" colors.
type Palette struct {
	Background string `yaml:"background"`
	Enemy      string `yaml:"enemy"`
	Dying      string `yaml:"dying"`
	Player     string `yaml:"player"`
	Projectile string `yaml:"projectile"`
	HUD        string `yaml:"hud"`
}

// Colors is a parsed Palette.
type Colors struct {
	Background core.Color
	Enemy      core.Color
	Dying      core.Color
	Player     core.Color
	Projectile core.Color
	HUD        core.Color
}

// Colors parses every palette entry.
func (p Palette) Colors() (Colors, error) {
	var out Colors
	fields := []struct {
		name string
		src  string
		dst  *core.Color
	}{
		{"background", p.Background, &out.Background},
		{"enemy", p.Enemy, &out.Enemy},
		{"dying", p.Dying, &out.Dying},
		{"player", p.Player, &out.Player},
		{"projectile", p.Projectile, &out.Projectile},
		{"hud", p.HUD, &out.HUD},
	}
	for _, f := range fields {
		c, err := core.ParseColor(f.src)
		if err != nil {
			return Colors{}, fmt.Errorf("config: palette %s: %w", f.name, err)
		}
		*f.dst = c
	}
	return out, nil
}

// Validate rejects configurations the simulation cannot run with.
func (c InvadersConfig) Validate() error {
	var errs []error
	if c.Board.Width <= 0 || c.Board.Height <= 0 {
		errs = append(errs, fmt.Errorf("board must be positive, got %dx%d", c.Board.Width, c.Board.Height))
	}
	if c.Enemies.Rows <= 0 || c.Enemies.Cols <= 0 {
		errs = append(errs, fmt.Errorf("enemy grid must be positive, got %dx%d", c.Enemies.Cols, c.Enemies.Rows))
	}
	if c.Enemies.DeathFrames <= 0 {
		errs = append(errs, errors.New("enemies.death_frames must be positive"))
	}
	if c.Enemies.FrameDuration <= 0 {
		errs = append(errs, errors.New("enemies.frame_duration must be positive"))
	}
	if c.Projectiles.Capacity <= 0 {
		errs = append(errs, errors.New("projectiles.capacity must be positive"))
	}
	if c.Projectiles.Speed <= 0 {
		errs = append(errs, errors.New("projectiles.speed must be positive"))
	}
	if c.Player.Margin < 0 {
		errs = append(errs, errors.New("player.margin must not be negative"))
	}
	if _, err := c.Palette.Colors(); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid invaders config: %w", errors.Join(errs...))
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset maps a CLI string to a preset. Unknown or empty strings map to "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// ApplyInvadersPreset modifies the config based on a difficulty preset.
// Normal and unknown presets leave the config untouched.
func ApplyInvadersPreset(cfg *InvadersConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Enemies.HitPoints = 1
		cfg.Projectiles.Capacity = 128
		cfg.Player.Speed = 2
	case DifficultyHard:
		cfg.Enemies.HitPoints = 2
		cfg.Projectiles.Capacity = 3
		cfg.Player.Speed = 1
	}
}
