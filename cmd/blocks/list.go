package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/rodaine/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-blocks/internal/registry"
	"github.com/vovakirdan/tui-blocks/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows every registered game with its play statistics.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	var stats map[string]*storage.GameStats
	if store, err := storage.Open(flagDBPath); err != nil {
		logger.Warn("could not open scores database", "err", err)
	} else {
		stats, err = store.GetAllGamesStats()
		if err != nil {
			logger.Warn("could not load game stats", "err", err)
		}
		store.Close()
	}

	tbl := table.New("ID", "TITLE", "PLAYED", "BEST", "LAST PLAYED")
	tbl.WithHeaderFormatter(color.New(color.Bold, color.Underline).SprintfFunc())
	tbl.WithFirstColumnFormatter(color.New(color.FgCyan).SprintfFunc())

	for _, g := range games {
		played, best, last := "0", "-", "never"
		if s, ok := stats[g.ID]; ok && s.GamesCount > 0 {
			played = humanize.Comma(int64(s.GamesCount))
			best = humanize.CommafWithDigits(s.HighScore, 1)
			last = humanize.Time(s.LastPlayed)
		}
		tbl.AddRow(g.ID, g.Title, played, best, last)
	}
	tbl.Print()

	fmt.Println()
	fmt.Println("Run 'blocks play <id>' to play a game.")
}
