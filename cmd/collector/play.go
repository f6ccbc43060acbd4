package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/the-collector/internal/core"
	"github.com/vovakirdan/the-collector/internal/games/collector"
	"github.com/vovakirdan/the-collector/internal/platform/tui"
	"github.com/vovakirdan/the-collector/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a round",
	Long: `Start a round of The Collector.

Controls:
  Space      - Start the round
  Arrows     - Move the ship
  Ctrl+S     - Save a screenshot
  Q/Ctrl+C   - Quit

Difficulty options (constant obstacle speed for the whole round):
  easy   - 1 unit per tick
  normal - 2 units per tick (default)
  hard   - 3 units per tick

Examples:
  collector play
  collector play --seed 42
  collector play --difficulty hard
  collector play --config ./my-collector.yaml --assets ./sprites`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	logger := newLogger("collector")

	setup, err := loadSetup(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.DefaultConfig()
	cfg.ScreenW = width
	cfg.ScreenH = height
	cfg.TickInterval = setup.config.Timing.TickInterval()
	cfg.Seed = flagSeed

	// Open round history
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	game := collector.New(setup.config, setup.sprites, setup.keeper)
	runErr := tui.Run(game, store, cfg, playerName())

	if store != nil {
		store.Close()
	}

	if saveErr := game.SaveErr(); saveErr != nil {
		logger.Warn("could not save high score", "path", setup.keeper.Path(), "error", saveErr)
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

func playerName() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "player"
}
