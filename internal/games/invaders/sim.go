package invaders

import "github.com/vovakirdan/tui-invaders/internal/sprite"

// resolveProjectiles moves every projectile and applies hits against alive enemies.
// frame is the animation frame index shared with the render pass of the same tick.
func (w *World) resolveProjectiles(frame int) (hits, kills int) {
	alive := w.Animation.Frame(frame)
	floor := w.playerSprite.Height()

	for bi := 0; bi < w.Projectiles.Len(); {
		p := w.Projectiles.At(bi)
		p.Y += p.Dir

		if p.Y >= w.Height || p.Y < floor {
			w.Projectiles.RemoveAt(bi)
			continue // slot bi now holds the former last projectile
		}

		hit := false
		for ai := range w.Enemies {
			e := &w.Enemies[ai]
			if e.Kind == EnemyDead {
				continue
			}
			if !sprite.Overlap(w.projectileSprite, p.X, p.Y, alive, e.X, e.Y) {
				continue
			}

			hit = true
			hits++
			if e.HP <= 1 {
				w.kill(ai, alive)
				kills++
			} else {
				e.HP--
			}
			break
		}

		if hit {
			w.Projectiles.RemoveAt(bi)
			continue
		}
		bi++
	}
	return hits, kills
}

// kill marks enemy i dead, arms its death timer and recenters it for the wider death sprite.
func (w *World) kill(i int, alive *sprite.Sprite) {
	e := &w.Enemies[i]
	e.Kind = EnemyDead
	e.HP = 0
	e.X -= (w.deadSprite.Width() - alive.Width()) / 2
	w.DeathTimers[i] = w.deathFrames
}

// movePlayer applies the horizontal move and clamps the ship inside the margins.
func (w *World) movePlayer(move int) {
	dx := 2 * move * w.player.Speed
	if dx == 0 {
		return
	}

	pw := w.playerSprite.Width()
	margin := w.player.Margin
	p := &w.Player

	switch {
	case p.X+pw+dx >= w.Width-margin:
		p.X = w.Width - margin - pw
	case p.X+dx <= margin:
		p.X = margin
	default:
		p.X += dx
	}
}

// fire spawns a projectile above the middle of the ship if the pool has room.
func (w *World) fire() bool {
	return w.Projectiles.Spawn(Projectile{
		X:   w.Player.X + w.playerSprite.Width()/2,
		Y:   w.Player.Y + w.playerSprite.Height(),
		Dir: w.shotSpeed,
	})
}
