package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a mode and difficulty, then play in the terminal",
	Long: `Start with an interactive picker.

Controls:
  Up/Down/j/k     - Choose mode
  Left/Right/h/l  - Choose difficulty
  Enter/Space     - Play
  Q/Esc           - Quit

Examples:
  invaders menu
  invaders menu --fps 30`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	menuCmd.Flags().StringVar(&flagSprites, "sprites", "", spritesUsage)
	menuCmd.Flags().IntVar(&flagScale, "scale", 0, "Pixel scale (0 = fit the terminal)")
}

func runMenu(cmd *cobra.Command, _ []string) error {
	res, err := tui.RunMenu(flagDifficulty)
	if err != nil {
		return err
	}
	if res.Quit {
		return nil
	}

	flagDifficulty = res.Difficulty
	flagFrontend = "tui"
	return runPlay(cmd, []string{res.GameID})
}
