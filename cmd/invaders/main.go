// invaders is a fixed-timestep invaders game for the terminal and the desktop.
//
// Usage:
//
//	invaders list              - List available game modes
//	invaders play [mode]       - Play a game mode (default: invaders)
//	invaders menu              - Pick a mode and difficulty interactively
//	invaders sprites           - Print the sprite sheet as ASCII art
//	invaders config [mode]     - Print the default configuration as YAML
//	invaders simulate          - Run a headless simulation and print the final frame
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--log-level <level>   - Set log level: debug, info, warn, error (default: info)
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-invaders/internal/games/invaders"
)

var (
	// Global flags
	flagFPS      int
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger := newLogger()
		logger.Error("invaders failed", "err", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "invaders",
	Short: "Invaders - shoot down an alien grid in your terminal",
	Long: `Invaders is a fixed-timestep arcade shooter. A ship moves along the bottom
of the board and fires upward at an animated grid of aliens.

Available commands:
  list      - Show all game modes
  play      - Play in the terminal or in a window
  menu      - Pick a mode and difficulty interactively
  sprites   - Print the sprite sheet
  config    - Print the default configuration
  simulate  - Run headless and print the final frame

Examples:
  invaders list
  invaders play
  invaders play invaders_endless --difficulty hard
  invaders play --frontend window --scale 3
  invaders config > configs/invaders.yaml
  invaders simulate --frames 600 --fire-every 20 --move -1`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(spritesCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(simulateCmd)
}

// newLogger builds the process logger from --log-level. Unknown levels fall back to info.
func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "invaders",
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}
