// Package window provides the Ebiten desktop presenter for the invaders game.
package window

import (
	"errors"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// ErrNoWindow is returned when the binary was built without window support.
var ErrNoWindow = errors.New("window: window mode requires cgo (build/run with CGO_ENABLED=1)")

// Options configures the window presenter.
type Options struct {
	Title  string      // Window title; defaults to the game title
	Scale  int         // Window pixels per frame pixel; 0 = 2
	Logger *log.Logger // Defaults to log.Default()
}

func (o Options) withDefaults(title string) Options {
	if o.Title == "" {
		o.Title = title
	}
	if o.Scale <= 0 {
		o.Scale = 2
	}
	if o.Logger == nil {
		o.Logger = log.Default()
	}
	return o
}

// KeyState is the keyboard as sampled once per update.
type KeyState struct {
	Left         bool // Held
	Right        bool // Held
	FireReleased bool // Fire key went up this update
	Pause        bool // Pressed this update
	Restart      bool // Pressed this update
	Quit         bool // Pressed this update
}

// Frame builds the input snapshot for one tick lasting dt seconds.
func (k KeyState) Frame(dt float64) core.InputFrame {
	in := core.NewInputFrame()
	in.DT = dt
	if k.Left {
		in.Move--
	}
	if k.Right {
		in.Move++
	}
	in.Fire = k.FireReleased
	if k.Pause {
		in.Set(core.ActionPause)
	}
	if k.Restart {
		in.Set(core.ActionRestart)
	}
	if k.Quit {
		in.Set(core.ActionQuit)
	}
	return in
}

// statusText is the overlay shown over a paused or finished game.
func statusText(state core.GameState) string {
	switch {
	case state.GameOver:
		return "WAVE CLEARED\nR: restart  Esc: quit"
	case state.Paused:
		return "PAUSED\nP: resume"
	}
	return ""
}
