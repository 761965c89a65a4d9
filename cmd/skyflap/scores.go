package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/avanyukov/skyflap/internal/platform/tui"
	"github.com/avanyukov/skyflap/internal/storage"
)

var (
	flagScoresTUI bool
	flagScoresAll bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show run history and best score",
	Long: `Display the top 10 runs and the best score.

Examples:
  skyflap scores
  skyflap scores --all
  skyflap scores --tui`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse run history interactively")
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "List every recorded run, not just the top 10")
}

func runScores(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening scores database: %w", err)
	}
	defer store.Close()

	if flagScoresTUI {
		height := 24
		if _, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			height = h
		}
		return tui.RunScoreboard(store, height)
	}

	limit := 10
	if flagScoresAll {
		limit = 1 << 30
	}
	runs, err := store.TopRuns(limit)
	if err != nil {
		return fmt.Errorf("error retrieving scores: %w", err)
	}

	fmt.Println("Skyflap - Run History")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'skyflap play' to set the first score!")
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")

	for i, entry := range runs {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}

	fmt.Println()
	if stats, err := store.Stats(); err == nil {
		fmt.Printf("Best: %d  (over %d runs, avg %.1f)\n", stats.BestScore, stats.RunCount, stats.AvgScore)
	}
	return nil
}
