package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var spritesCmd = &cobra.Command{
	Use:   "sprites",
	Short: "Print the sprite sheet as ASCII art",
	Long: `Prints every sprite of the built-in sheet, or of the sheet given with --sprites.
Use it to check a custom sheet before playing with it.`,
	Args: cobra.NoArgs,
	RunE: runSprites,
}

func init() {
	spritesCmd.Flags().StringVar(&flagSprites, "sprites", "", spritesUsage)
}

func runSprites(cmd *cobra.Command, args []string) error {
	store, err := loadSprites(newLogger())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, name := range store.Names() {
		s := store.MustGet(name)
		fmt.Fprintf(out, "%s (%dx%d)\n%s\n\n", name, s.Width(), s.Height(), s.String())
	}
	return nil
}
