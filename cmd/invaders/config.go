package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config [mode]",
	Short: "Print the default configuration",
	Long: `Prints the embedded default configuration of a mode as YAML.
Save it as ~/.invaders/configs/invaders.yaml or ./configs/invaders.yaml, or pass
an edited copy with --config. Fields left out of a file keep these values.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	mode := "invaders"
	if len(args) > 0 {
		mode = args[0]
	}

	data := config.GetDefaultYAML(mode)
	if data == nil {
		return fmt.Errorf("no default config for %q", mode)
	}
	_, err := cmd.OutOrStdout().Write(data)
	return err
}
