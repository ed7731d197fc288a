package config

import (
	_ "embed"
)

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

// DefaultInvadersConfig returns the hard-coded default configuration.
// It mirrors defaults/invaders.yaml and is used if the embedded file cannot be parsed.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		Board: Board{
			Width:  224,
			Height: 256,
		},
		Enemies: Enemies{
			Rows:          5,
			Cols:          11,
			OriginX:       20,
			OriginY:       128,
			SpacingX:      16,
			SpacingY:      17,
			HitPoints:     1,
			DeathFrames:   10,
			FrameDuration: 0.5,
			Points:        10,
		},
		Player: PlayerCfg{
			StartX: 107,
			StartY: 32,
			Lives:  3,
			Speed:  1,
			Margin: 8,
		},
		Projectiles: Projectiles{
			Capacity: 128,
			Speed:    2,
		},
		Palette: Palette{
			Background: "#008000",
			Enemy:      "#800000",
			Dying:      "#c04000",
			Player:     "#800000",
			Projectile: "#800000",
			HUD:        "#ffffff",
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "invaders", "invaders_endless":
		return defaultInvadersYAML
	default:
		return nil
	}
}
