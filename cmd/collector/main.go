// collector is a terminal rendition of The Collector: steer a ship around a
// bordered field, pick up crates and dodge the falling asteroids.
//
// Usage:
//
//	collector                - Play a round (same as "collector play")
//	collector play           - Play a round
//	collector scores         - Show recorded rounds
//	collector serve          - Start SSH server for remote play
//
// Global flags:
//
//	--seed <value>        - Set RNG seed for reproducible rounds
//	--config <path>       - Custom game config YAML
//	--difficulty <name>   - Obstacle speed preset: easy, normal, hard
//	--highscore <path>    - High score file (default: ~/.collector/high_score.txt)
//	--db <path>           - Round history database (default: ~/.collector/scores.db)
//	--assets <dir>        - Sprite directory (default: ./assets)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagHighScore  string
	flagDBPath     string
	flagAssets     string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "collector",
	Short: "The Collector - collect crates, avoid asteroids",
	Long: `The Collector is a small arcade game for the terminal.

Fly the ship with the arrow keys, pick up crates and stay clear of the
asteroids. Every crate adds another asteroid to the field. Touching an
asteroid or leaving the border ends the round.

Available commands:
  play     - Play a round (default)
  scores   - View recorded rounds
  serve    - Start SSH server for remote play

Examples:
  collector
  collector play --difficulty hard
  collector scores --tui
  collector serve --ssh :2222`,
	Run: runPlay,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagHighScore, "highscore", "~/.collector/high_score.txt", "Path to high score file")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.collector/scores.db", "Path to round history database")
	rootCmd.PersistentFlags().StringVar(&flagAssets, "assets", "./assets", "Directory with sprite YAML files")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
