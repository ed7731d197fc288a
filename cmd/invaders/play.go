package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
	"github.com/vovakirdan/tui-invaders/internal/platform/window"
)

var (
	flagFrontend string
	flagScale    int
	flagHold     float64
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a game mode",
	Long: `Start playing the given mode (default: invaders).

Controls (terminal):
  Left/A, Right/D  - Move
  Space            - Fire
  P                - Pause
  R                - Restart (after the wave is cleared)
  Ctrl+S           - Save an ASCII screenshot
  Q/Esc/Ctrl+C     - Quit

Controls (window):
  Left/A, Right/D  - Move (hold)
  Space            - Fire (on release)
  P, R             - Pause, restart
  Esc              - Quit

Difficulty options:
  easy   - Large projectile pool, one-hit aliens, faster ship
  normal - Defaults from the config file
  hard   - Three projectiles at a time, two-hit aliens

Examples:
  invaders play
  invaders play invaders_endless
  invaders play --difficulty hard
  invaders play --frontend window --scale 3
  invaders play --config ./my-invaders.yaml --sprites ./sheet.toml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagFrontend, "frontend", "tui", "Presenter: tui or window")
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagSprites, "sprites", "", spritesUsage)
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().IntVar(&flagScale, "scale", 0, "Pixel scale (0 = fit the terminal, 2 for windows)")
	playCmd.Flags().Float64Var(&flagHold, "hold", tui.DefaultHold, "Seconds a direction key stays held in the terminal")
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	mode := "invaders"
	if len(args) > 0 {
		mode = args[0]
	}

	s, err := newSession(logger, mode)
	if err != nil {
		return err
	}

	cfg := core.RuntimeConfig{TickRate: flagFPS}

	logger.Info("starting", "mode", mode, "frontend", flagFrontend, "fps", flagFPS)
	switch flagFrontend {
	case "tui":
		scale := flagScale
		if scale <= 0 {
			scale = terminalScale(s.cfg.Board.Width, s.cfg.Board.Height)
		}
		return tui.Run(s.game, cfg, tui.Options{
			Scale:      scale,
			Hold:       flagHold,
			Background: s.colors.Background,
			Logger:     logger,
		})
	case "window":
		return window.Run(s.game, cfg, window.Options{
			Scale:  flagScale,
			Logger: logger,
		})
	default:
		return fmt.Errorf("unknown frontend %q (tui, window)", flagFrontend)
	}
}

// terminalScale picks the smallest scale at which the board fits the terminal,
// leaving room for the status and help lines.
func terminalScale(width, height int) int {
	cols, rows := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cols, rows = w, h
	}
	return tui.FitScale(width, height, cols, rows-3)
}
