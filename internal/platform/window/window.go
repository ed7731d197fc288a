//go:build cgo

package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

// Run resets the game and opens a window that steps it once per Ebiten tick.
// It blocks until the window closes or Escape is pressed.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	opts = opts.withDefaults(game.Title())
	game.Reset(cfg)

	tps := cfg.TickRate
	if tps <= 0 {
		tps = 60
	}

	frame := game.Frame()
	g := &hostGame{
		game: game,
		dt:   1.0 / float64(tps),
		pix:  make([]byte, frame.Width()*frame.Height()*4),
		opts: opts,
	}

	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowSize(frame.Width()*opts.Scale, frame.Height()*opts.Scale)
	ebiten.SetTPS(tps)

	opts.Logger.Info("window opened", "game", game.ID(), "scale", opts.Scale, "tps", tps)
	err := ebiten.RunGame(g)
	opts.Logger.Info("window closed", "game", game.ID(), "score", game.State().Score)
	return err
}

type hostGame struct {
	game     registry.Game
	dt       float64
	pix      []byte
	fbImg    *ebiten.Image
	opts     Options
	gameOver bool
}

func pollKeys() KeyState {
	return KeyState{
		Left:         ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right:        ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		FireReleased: inpututil.IsKeyJustReleased(ebiten.KeySpace),
		Pause:        inpututil.IsKeyJustPressed(ebiten.KeyP),
		Restart:      inpututil.IsKeyJustPressed(ebiten.KeyR),
		Quit:         inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	}
}

func (g *hostGame) Update() error {
	in := pollKeys().Frame(g.dt)
	if in.Has(core.ActionQuit) {
		return ebiten.Termination
	}

	res := g.game.Step(in)
	if res.State.GameOver && !g.gameOver {
		g.opts.Logger.Info("game over", "game", g.game.ID(), "score", res.State.Score)
	}
	g.gameOver = res.State.GameOver
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.game.Frame()
	if g.fbImg == nil || g.fbImg.Bounds().Dx() != fb.Width() || g.fbImg.Bounds().Dy() != fb.Height() {
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(fb.Width(), fb.Height())
		g.pix = make([]byte, fb.Width()*fb.Height()*4)
	}

	if err := fb.WriteRGBA(g.pix); err != nil {
		g.opts.Logger.Error("frame upload failed", "err", err)
		return
	}
	g.fbImg.WritePixels(g.pix)
	screen.DrawImage(g.fbImg, nil)

	if msg := statusText(g.game.State()); msg != "" {
		ebitenutil.DebugPrint(screen, msg)
	}
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	fb := g.game.Frame()
	return fb.Width(), fb.Height()
}
