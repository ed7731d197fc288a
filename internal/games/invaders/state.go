package invaders

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/sprite"
)

// EnemyKind is the life state of an enemy.
type EnemyKind int

const (
	EnemyAlive EnemyKind = iota
	EnemyDead
)

// String returns a human-readable name for the kind.
func (k EnemyKind) String() string {
	if k == EnemyDead {
		return "dead"
	}
	return "alive"
}

// Enemy is one slot of the roster. Slots are never removed; a destroyed enemy
// stays in place as EnemyDead.
type Enemy struct {
	X, Y int
	Kind EnemyKind
	HP   int
}

// Player is the ship at the bottom of the board.
type Player struct {
	X, Y  int
	Lives int // Shown on the HUD, never decremented
}

// Projectile is a player shot. Dir is the vertical step per tick, positive is up.
type Projectile struct {
	X, Y int
	Dir  int
}

// ProjectilePool is a fixed-capacity projectile container with unordered removal.
// Its backing array is allocated once.
type ProjectilePool struct {
	items []Projectile
}

// NewProjectilePool creates an empty pool holding at most capacity projectiles.
func NewProjectilePool(capacity int) *ProjectilePool {
	if capacity < 0 {
		capacity = 0
	}
	return &ProjectilePool{items: make([]Projectile, 0, capacity)}
}

// Spawn adds p and reports whether there was room. A full pool drops p.
func (pp *ProjectilePool) Spawn(p Projectile) bool {
	if pp.Full() {
		return false
	}
	pp.items = append(pp.items, p)
	return true
}

// RemoveAt moves the last projectile into slot i and shrinks the pool by one.
func (pp *ProjectilePool) RemoveAt(i int) {
	last := len(pp.items) - 1
	if i < 0 || i > last {
		return
	}
	pp.items[i] = pp.items[last]
	pp.items = pp.items[:last]
}

// At returns a pointer to the projectile in slot i.
func (pp *ProjectilePool) At(i int) *Projectile {
	return &pp.items[i]
}

// Len returns the number of live projectiles.
func (pp *ProjectilePool) Len() int { return len(pp.items) }

// Cap returns the pool capacity.
func (pp *ProjectilePool) Cap() int { return cap(pp.items) }

// Full reports whether Spawn would fail.
func (pp *ProjectilePool) Full() bool { return len(pp.items) == cap(pp.items) }

// Reset empties the pool, keeping its storage.
func (pp *ProjectilePool) Reset() { pp.items = pp.items[:0] }

// World is the complete simulation state. It is owned and mutated only by Game.Step.
type World struct {
	Width  int
	Height int

	Enemies     []Enemy
	DeathTimers []int // Parallel to Enemies
	Player      Player
	Projectiles *ProjectilePool
	Animation   *sprite.Animation

	// Sprites
	deadSprite       *sprite.Sprite
	playerSprite     *sprite.Sprite
	projectileSprite *sprite.Sprite

	// Tuning
	enemies     config.Enemies
	player      config.PlayerCfg
	shotSpeed   int
	deathFrames int
}

// ErrPlayerOutOfBounds is returned by NewWorld when the ship cannot start
// inside the side margins.
var ErrPlayerOutOfBounds = errors.New("invaders: player start outside margins")

// NewWorld builds the initial world for a board of width x height pixels.
// The store must already hold every sprite.Required name.
func NewWorld(cfg config.InvadersConfig, width, height int, store *sprite.Store) (*World, error) {
	if err := store.Require(sprite.Required...); err != nil {
		return nil, err
	}

	// The ship's x must stay in [margin, width-margin-pw] from the first frame.
	pw := store.MustGet(sprite.Player).Width()
	lo, hi := cfg.Player.Margin, width-cfg.Player.Margin-pw
	if hi < lo {
		return nil, fmt.Errorf("%w: board width %d cannot hold a %d px ship with margin %d",
			ErrPlayerOutOfBounds, width, pw, cfg.Player.Margin)
	}
	if x := cfg.Player.StartX; x < lo || x > hi {
		return nil, fmt.Errorf("%w: start_x %d not in [%d, %d]", ErrPlayerOutOfBounds, x, lo, hi)
	}

	anim, err := sprite.NewAnimation(
		[]*sprite.Sprite{store.MustGet(sprite.AlienA), store.MustGet(sprite.AlienB)},
		cfg.Enemies.FrameDuration,
		true,
	)
	if err != nil {
		return nil, err
	}

	n := cfg.Enemies.Rows * cfg.Enemies.Cols
	w := &World{
		Width:            width,
		Height:           height,
		Enemies:          make([]Enemy, n),
		DeathTimers:      make([]int, n),
		Projectiles:      NewProjectilePool(cfg.Projectiles.Capacity),
		Animation:        anim,
		deadSprite:       store.MustGet(sprite.AlienDead),
		playerSprite:     store.MustGet(sprite.Player),
		projectileSprite: store.MustGet(sprite.Projectile),
		enemies:          cfg.Enemies,
		player:           cfg.Player,
		shotSpeed:        cfg.Projectiles.Speed,
		deathFrames:      cfg.Enemies.DeathFrames,
	}
	w.Player = Player{X: cfg.Player.StartX, Y: cfg.Player.StartY, Lives: cfg.Player.Lives}
	w.spawnRoster()
	return w, nil
}

// spawnRoster places every enemy at its grid slot, alive and at full health,
// and arms every death timer.
func (w *World) spawnRoster() {
	e := w.enemies
	for yi := range e.Rows {
		for xi := range e.Cols {
			i := yi*e.Cols + xi
			w.Enemies[i] = Enemy{
				X:    e.SpacingX*xi + e.OriginX,
				Y:    e.SpacingY*yi + e.OriginY,
				Kind: EnemyAlive,
				HP:   e.HitPoints,
			}
			w.DeathTimers[i] = w.deathFrames
		}
	}
}

// AliveCount returns the number of enemies still alive.
func (w *World) AliveCount() int {
	n := 0
	for _, e := range w.Enemies {
		if e.Kind == EnemyAlive {
			n++
		}
	}
	return n
}

// Cleared reports whether every enemy is dead and every death sprite has finished.
func (w *World) Cleared() bool {
	for i, e := range w.Enemies {
		if e.Kind == EnemyAlive || w.DeathTimers[i] > 0 {
			return false
		}
	}
	return true
}

// PlayerSprite returns the sprite used for the player ship.
func (w *World) PlayerSprite() *sprite.Sprite { return w.playerSprite }
