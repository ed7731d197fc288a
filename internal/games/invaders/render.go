package invaders

import (
	"strconv"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/framebuffer"
	"github.com/vovakirdan/tui-invaders/internal/sprite"
)

// hudPad is the inset of the HUD from the top corners in pixels.
const hudPad = 4

// draw composes the world into dst and ticks the death timers of dead enemies.
// frame selects the alive enemy sprite and must match the one used for collision.
func (w *World) draw(dst *framebuffer.Buffer, frame int, pal config.Colors) {
	dst.Clear(pal.Background)

	alive := w.Animation.Frame(frame)
	for i, e := range w.Enemies {
		if w.DeathTimers[i] == 0 {
			continue
		}
		if e.Kind == EnemyDead {
			w.DeathTimers[i]--
			dst.Blit(w.deadSprite, e.X, e.Y, pal.Dying)
			continue
		}
		dst.Blit(alive, e.X, e.Y, pal.Enemy)
	}

	for i := range w.Projectiles.Len() {
		p := w.Projectiles.At(i)
		dst.Blit(w.projectileSprite, p.X, p.Y, pal.Projectile)
	}

	dst.Blit(w.playerSprite, w.Player.X, w.Player.Y, pal.Player)
}

// drawHUD writes the score in the top-left corner and the lives in the top-right.
// Sheets without digit sprites get no HUD.
func drawHUD(dst *framebuffer.Buffer, store *sprite.Store, score, lives int, c config.Colors) {
	digits, ok := digitSprites(store)
	if !ok {
		return
	}

	dw, dh := digits[0].Width(), digits[0].Height()
	y := dst.Height() - hudPad - dh

	drawNumber(dst, digits, strconv.Itoa(score), hudPad, y, c)

	livesText := strconv.Itoa(lives)
	x := dst.Width() - hudPad - len(livesText)*(dw+1) + 1
	drawNumber(dst, digits, livesText, x, y, c)
}

func drawNumber(dst *framebuffer.Buffer, digits [10]*sprite.Sprite, text string, x, y int, c config.Colors) {
	for _, r := range text {
		if r < '0' || r > '9' {
			continue
		}
		d := digits[r-'0']
		dst.Blit(d, x, y, c.HUD)
		x += d.Width() + 1
	}
}

func digitSprites(store *sprite.Store) ([10]*sprite.Sprite, bool) {
	var out [10]*sprite.Sprite
	for d := range 10 {
		s, ok := store.Get(sprite.DigitName(d))
		if !ok {
			return out, false
		}
		out[d] = s
	}
	return out, true
}
