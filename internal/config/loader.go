package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the round configuration.
// Search order: customPath -> ~/.collector/configs/collector.yaml -> ./configs/collector.yaml -> embedded default
func Load(customPath string) (CollectorConfig, error) {
	// Start from defaults so partial files only override what they name
	cfg := DefaultCollectorConfig()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return DefaultCollectorConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, validate(cfg)
	}

	if userCfgPath := userConfigPath("collector.yaml"); userCfgPath != "" {
		if ok := loadInto(userCfgPath, &cfg); ok {
			return cfg, validate(cfg)
		}
	}

	if ok := loadInto(filepath.Join("configs", "collector.yaml"), &cfg); ok {
		return cfg, validate(cfg)
	}

	if err := yaml.Unmarshal(defaultCollectorYAML, &cfg); err != nil {
		return DefaultCollectorConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// loadInto decodes path over cfg, leaving cfg untouched on any failure.
func loadInto(path string, cfg *CollectorConfig) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	next := *cfg
	if err := yaml.Unmarshal(data, &next); err != nil {
		return false
	}
	*cfg = next
	return true
}

// validate rejects configurations the game cannot run with.
func validate(cfg CollectorConfig) error {
	switch {
	case cfg.Field.Boundary <= 0:
		return fmt.Errorf("config: field.boundary must be positive, got %v", cfg.Field.Boundary)
	case cfg.Field.SpawnMargin < 0:
		return fmt.Errorf("config: field.spawn_margin must not be negative, got %d", cfg.Field.SpawnMargin)
	case cfg.Collectible.MinY > cfg.Collectible.MaxY:
		return fmt.Errorf("config: collectible.min_y (%d) exceeds max_y (%d)", cfg.Collectible.MinY, cfg.Collectible.MaxY)
	case cfg.Collectible.MaxY > 0:
		return fmt.Errorf("config: collectible.max_y must keep crates in the lower half, got %d", cfg.Collectible.MaxY)
	case cfg.Player.Step <= 0:
		return fmt.Errorf("config: player.step must be positive, got %v", cfg.Player.Step)
	case cfg.Obstacles.Speed <= 0:
		return fmt.Errorf("config: obstacles.speed must be positive, got %v", cfg.Obstacles.Speed)
	case cfg.Collision.Radius <= 0:
		return fmt.Errorf("config: collision.radius must be positive, got %v", cfg.Collision.Radius)
	case cfg.Obstacles.WrapY >= cfg.Obstacles.SpawnY:
		return fmt.Errorf("config: obstacles.wrap_y (%v) must be below spawn_y (%v)", cfg.Obstacles.WrapY, cfg.Obstacles.SpawnY)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".collector", "configs", filename)
}
