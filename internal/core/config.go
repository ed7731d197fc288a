package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	Width    int // Frame buffer width in pixels (0 = game default)
	Height   int // Frame buffer height in pixels (0 = game default)
	TickRate int // Simulation ticks per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TickRate: 60,
	}
}

// FrameDT returns the fixed delta-time of one tick in seconds.
func (c RuntimeConfig) FrameDT() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.TickRate)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Lives    int  // Remaining player lives
	Wave     int  // Current enemy wave (1-based)
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	Hits  int  // Projectiles that struck an enemy this tick
	Kills int  // Enemies that died this tick
	Fired bool // Whether a projectile was spawned this tick
}
