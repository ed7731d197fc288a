package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// KeyMap defines the key bindings of the game screen.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Fire       key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Screenshot key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Fire, k.Pause, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Fire},
		{k.Pause, k.Restart, k.Screenshot},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns the default game key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Fire: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("space", "fire"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyEvent is what a key press means to the game screen.
type KeyEvent int

const (
	KeyNone KeyEvent = iota
	KeyLeft
	KeyRight
	KeyFire
	KeyPause
	KeyRestart
	KeyScreenshot
	KeyHelp
	KeyQuit
)

// Map translates a key message to a game screen event.
func (k KeyMap) Map(msg tea.KeyMsg) KeyEvent {
	switch {
	case key.Matches(msg, k.Quit):
		return KeyQuit
	case key.Matches(msg, k.Left):
		return KeyLeft
	case key.Matches(msg, k.Right):
		return KeyRight
	case key.Matches(msg, k.Fire):
		return KeyFire
	case key.Matches(msg, k.Pause):
		return KeyPause
	case key.Matches(msg, k.Restart):
		return KeyRestart
	case key.Matches(msg, k.Screenshot):
		return KeyScreenshot
	case key.Matches(msg, k.Help):
		return KeyHelp
	}
	return KeyNone
}

// Apply records a key event into the pending input frame and hold tracker.
// It returns false for events the frame does not carry (quit, screenshot, help).
func (e KeyEvent) Apply(frame *core.InputFrame, hold *HoldTracker) bool {
	switch e {
	case KeyLeft:
		hold.Press(-1)
	case KeyRight:
		hold.Press(1)
	case KeyFire:
		frame.Fire = true
	case KeyPause:
		frame.Set(core.ActionPause)
	case KeyRestart:
		frame.Set(core.ActionRestart)
	default:
		return false
	}
	return true
}
