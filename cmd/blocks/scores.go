package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/rodaine/table"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-blocks/internal/platform/tui"
	"github.com/vovakirdan/tui-blocks/internal/registry"
	"github.com/vovakirdan/tui-blocks/internal/storage"
)

var (
	flagLimit       int
	flagInteractive bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores for a game",
	Long: `Display the best finished games. The game defaults to blocks.

Examples:
  blocks scores
  blocks scores --limit 25
  blocks scores -i`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagLimit, "limit", "n", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in a scrollable table")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := gameArg(args)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		err = tui.RunScoreboard(store, gameID, game.Title(), width, height)
	} else {
		err = printScores(os.Stdout, store, gameID, game.Title(), flagLimit)
	}

	// os.Exit skips deferred calls.
	if closeErr := store.Close(); closeErr != nil {
		logger.Warn("could not close scores database", "err", closeErr)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// printScores writes the best limit games of gameID as a table.
func printScores(w io.Writer, store *storage.Store, gameID, title string, limit int) error {
	scores, err := store.TopScores(gameID, limit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Fprintf(w, "High Scores - %s\n\n", title)

	if len(scores) == 0 {
		fmt.Fprintln(w, "  No scores recorded yet.")
		fmt.Fprintf(w, "  Play with 'blocks play %s' to set a high score!\n", gameID)
		return nil
	}

	tbl := table.New("RANK", "PLAYER", "POINTS", "LINES", "LEVEL", "WHEN").WithWriter(w)
	tbl.WithHeaderFormatter(color.New(color.Bold, color.Underline).SprintfFunc())
	tbl.WithFirstColumnFormatter(color.New(color.FgBlue, color.Bold).SprintfFunc())

	for i, s := range scores {
		player := s.Player
		if player == "" {
			player = "-"
		}
		tbl.AddRow(
			fmt.Sprintf("#%d", i+1),
			player,
			humanize.CommafWithDigits(s.Points, 1),
			humanize.Comma(int64(s.Lines)),
			s.Level,
			humanize.Time(s.CreatedAt),
		)
	}
	tbl.Print()
	return nil
}
