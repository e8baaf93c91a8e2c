package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-blocks/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config [game]",
	Short: "Print the default config file for a game",
	Long: `Prints the built-in YAML settings. Save the output to
~/.arcade/configs/blocks.yaml (or pass it with --config) and edit it.

Examples:
  blocks config > blocks.yaml
  blocks play --config blocks.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := writeDefaultConfig(os.Stdout, gameArg(args)); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func writeDefaultConfig(w io.Writer, gameID string) error {
	data := config.GetDefaultYAML(gameID)
	if data == nil {
		return fmt.Errorf("no config for game %q", gameID)
	}
	_, err := w.Write(data)
	return err
}
