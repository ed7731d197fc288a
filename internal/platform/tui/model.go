package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

// maxDT caps the delta-time of a single tick after a stall (suspend, slow terminal).
const maxDT = 0.25

var statusStyle = lipgloss.NewStyle().Bold(true)

// Options configures the terminal presenter.
type Options struct {
	Scale         int         // Pixels per cell column (and per half cell row); 0 = 1
	Hold          float64     // Seconds a direction stays held; 0 = DefaultHold
	Background    core.Color  // Frame background, used for pooling and screenshots
	ScreenshotDir string      // Defaults to ~/.invaders/screenshots
	Logger        *log.Logger // Defaults to log.Default()
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	opts       Options
	keys       KeyMap
	help       help.Model
	hold       *HoldTracker
	inputFrame core.InputFrame
	gameState  core.GameState
	lastTick   time.Time
	showHelp   bool
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.ScreenshotDir == "" {
		opts.ScreenshotDir = filepath.Join(os.Getenv("HOME"), ".invaders", "screenshots")
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(0, 0),
		config:     cfg,
		opts:       opts,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		hold:       NewHoldTracker(opts.Hold),
		inputFrame: core.NewInputFrame(),
	}
}

// Init starts the tick loop. The game must already be Reset.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ev := m.keys.Map(msg)
	switch ev {
	case KeyQuit:
		m.quitting = true
		m.opts.Logger.Info("session ended", "game", m.game.ID(), "score", m.gameState.Score, "wave", m.gameState.Wave)
		return m, tea.Quit
	case KeyScreenshot:
		m.saveScreenshot()
		return m, nil
	case KeyHelp:
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return m, nil
	case KeyRestart:
		if !m.gameState.GameOver {
			return m, nil
		}
	}

	ev.Apply(&m.inputFrame, m.hold)
	return m, nil
}

// handleTick runs one simulation step with the time elapsed since the previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := m.config.FrameDT()
	if !m.lastTick.IsZero() {
		dt = max(0, min(now.Sub(m.lastTick).Seconds(), maxDT))
	}
	m.lastTick = now

	m.inputFrame.DT = dt
	m.inputFrame.Move = m.hold.Move()

	result := m.game.Step(m.inputFrame)
	if result.State.GameOver && !m.gameState.GameOver {
		m.opts.Logger.Info("game over", "game", m.game.ID(), "score", result.State.Score)
	}
	m.gameState = result.State

	m.hold.Advance(dt)
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot writes the current frame as ASCII art to the screenshot directory.
func (m *Model) saveScreenshot() {
	if err := os.MkdirAll(m.opts.ScreenshotDir, 0o755); err != nil {
		m.opts.Logger.Warn("screenshot failed", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.opts.ScreenshotDir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	art := m.game.Frame().ASCII(m.opts.Background)
	if err := os.WriteFile(path, []byte(art+"\n"), 0o600); err != nil {
		m.opts.Logger.Warn("screenshot failed", "err", err)
		return
	}
	m.opts.Logger.Info("screenshot saved", "path", path)
}

// statusLine describes score, lives and wave.
func (m Model) statusLine() string {
	s := m.gameState
	return statusStyle.Render(fmt.Sprintf("SCORE %d   LIVES %d   WAVE %d", s.Score, s.Lives, s.Wave))
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	Downsample(m.screen, m.game.Frame(), m.opts.Scale, m.opts.Background)
	drawBanner(m.screen, banner(m.gameState)...)

	var sb strings.Builder
	sb.WriteString(RenderScreen(m.screen))
	sb.WriteString("\n")
	sb.WriteString(m.statusLine())
	sb.WriteString("\n")
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

// Run resets the game and starts the Bubble Tea program.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	game.Reset(cfg)
	model := NewModel(game, cfg, opts)
	model.gameState = game.State()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
