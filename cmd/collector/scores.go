package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/the-collector/internal/platform/tui"
	"github.com/vovakirdan/the-collector/internal/storage"
)

var (
	flagScoresTUI   bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show recorded rounds",
	Long: `Display the top 10 recorded rounds and the all-time high score.

Examples:
  collector scores
  collector scores --tui
  collector scores --clear
  collector scores --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse rounds in an interactive table")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the round history (the high score file is kept)")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearRounds(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing rounds: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Round history cleared.")
		return
	}

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
			os.Exit(1)
		}
		return
	}

	rounds, err := store.TopRounds(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores - The Collector")
	fmt.Println()

	// The text file is the source of truth for the in-game high score.
	if keeper, keeperErr := storage.NewHighScoreFile(flagHighScore); keeperErr == nil {
		fmt.Printf("High Score: %d\n", keeper.Load())
		fmt.Println()
	}

	if len(rounds) == 0 {
		fmt.Println("No rounds recorded yet.")
		fmt.Println()
		fmt.Println("Play 'collector play' to record the first one!")
		return
	}

	fmt.Printf("  %-4s  %-12s  %-8s  %-8s  %s\n", "Rank", "Player", "Score", "Ticks", "Date")
	fmt.Printf("  %-4s  %-12s  %-8s  %-8s  %s\n", "----", "------", "-----", "-----", "----")

	for i, entry := range rounds {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-12s  %-8d  %-8d  %s\n", i+1, entry.Player, entry.Score, entry.Ticks, dateStr)
	}

	fmt.Println()
	if best, bestErr := store.BestScore(); bestErr == nil {
		fmt.Printf("Best: %d\n", best)
	}
	if stats, statsErr := store.Stats(); statsErr == nil {
		fmt.Printf("Rounds: %d  Average: %.1f  Last played: %s\n",
			stats.Rounds, stats.AvgScore, stats.LastPlayed.Format("2006-01-02 15:04"))
	}
}
