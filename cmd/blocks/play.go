package main

import (
	"fmt"
	"os"

	"github.com/athoscouto/codename"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/games/blocks"
	"github.com/vovakirdan/tui-blocks/internal/platform/tui"
	"github.com/vovakirdan/tui-blocks/internal/registry"
	"github.com/vovakirdan/tui-blocks/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagPlayer     string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing. The game defaults to blocks.

Controls:
  ←/h/a  →/l/d   - Move
  ↓/j/s          - Soft drop (hold to repeat)
  ↑/w/Space      - Hard drop
  Z / X          - Rotate counter-clockwise / clockwise
  P/Esc          - Pause
  R              - Restart (after game over)
  Ctrl+S         - Screenshot to ~/.arcade/screenshots
  Q/Ctrl+C       - Quit

Difficulty options:
  easy   - Slower start and lower top speed
  normal - Config speeds unchanged
  hard   - Faster start and higher top speed
  fixed  - Speed never changes

Examples:
  blocks play
  blocks play --difficulty easy
  blocks play --seed 42 --player ana
  blocks play --config ./my-blocks.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagPlayer, "player", os.Getenv("USER"), "Player name stored with scores")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := gameArg(args)

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height - 1, // help footer
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	if gameID == "blocks" {
		blocks.SetConfigPath(flagConfig)
		blocks.SetDifficultyPreset(flagDifficulty)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "err", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, cfg, tui.Options{
		Store:  store,
		Player: playerName(flagPlayer),
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// playerName returns name, or a generated one such as "wise-gecko" when
// name is empty.
func playerName(name string) string {
	if name != "" {
		return name
	}
	rng, err := codename.DefaultRNG()
	if err != nil {
		logger.Warn("could not generate player name", "err", err)
		return "player"
	}
	return codename.Generate(rng, 0)
}
