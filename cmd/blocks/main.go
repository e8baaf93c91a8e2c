// blocks is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	blocks play [game]     - Play (default: blocks)
//	blocks list            - List available games
//	blocks scores [game]   - Show high scores
//	blocks serve           - Start SSH server for remote play
//	blocks config [game]   - Print the default config
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 20)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.arcade/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-blocks/internal/core"
	// Import games to register them
	_ "github.com/vovakirdan/tui-blocks/internal/games/blocks"
	"github.com/vovakirdan/tui-blocks/internal/registry"
)

const defaultGame = "blocks"

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "blocks"})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blocks",
	Short: "Blocks - a falling-block puzzle in your terminal",
	Long: `Blocks drops shapes into a well. Complete rows to clear them;
the game ends when a piece locks above the top.

Available commands:
  play     - Play a game
  list     - Show all available games
  scores   - View high scores
  serve    - Start SSH server for remote play
  config   - Print the default config file

Examples:
  blocks play
  blocks play --difficulty hard
  blocks scores
  blocks serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", core.DefaultTickRate, "Tick rate (simulation steps per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// gameArg returns the game id from args or the default game, exiting when
// the id is not registered.
func gameArg(args []string) string {
	gameID := defaultGame
	if len(args) > 0 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'blocks list' to see available games.")
		os.Exit(1)
	}
	return gameID
}
