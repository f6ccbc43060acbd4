package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/the-collector/internal/assets"
	"github.com/vovakirdan/the-collector/internal/config"
	"github.com/vovakirdan/the-collector/internal/storage"
)

// gameSetup is everything a round needs that comes from flags and disk.
type gameSetup struct {
	config  config.CollectorConfig
	sprites assets.Set
	keeper  *storage.HighScoreFile
}

func newLogger(prefix string) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
}

// loadSetup resolves config, difficulty, sprites and the high score file.
// Missing sprites only produce warnings; a bad config or preset is fatal.
func loadSetup(logger *log.Logger) (gameSetup, error) {
	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return gameSetup{}, err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return gameSetup{}, err
	}
	config.ApplyPreset(&cfg, preset)

	assetsDir, err := storage.ExpandPath(flagAssets)
	if err != nil {
		return gameSetup{}, fmt.Errorf("assets: %w", err)
	}
	sprites, _ := assets.Load(os.DirFS(assetsDir), logger)

	keeper, err := storage.NewHighScoreFile(flagHighScore)
	if err != nil {
		return gameSetup{}, err
	}

	return gameSetup{config: cfg, sprites: sprites, keeper: keeper}, nil
}
