package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SourceEmbedded names the configuration compiled into the binary.
const SourceEmbedded = "embedded"

// LoadSnake loads the Snake configuration and reports where it came from.
// Search order: customPath -> ~/.snake/configs/snake.yaml -> ./configs/snake.yaml -> embedded default.
// Files only need to name the fields they change; the rest keeps its default.
func LoadSnake(customPath string) (SnakeConfig, string, error) {
	// A custom path is explicit, so failures are reported instead of skipped
	if customPath != "" {
		cfg, err := readSnake(customPath)
		if err != nil {
			return DefaultSnakeConfig(), "", err
		}
		return cfg, customPath, nil
	}

	candidates := []string{userConfigPath("snake.yaml"), filepath.Join("configs", "snake.yaml")}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if cfg, err := readSnake(path); err == nil {
			return cfg, path, nil
		}
	}

	cfg, err := parseSnake(defaultSnakeYAML)
	if err != nil {
		return DefaultSnakeConfig(), SourceEmbedded, nil // Fallback to hardcoded if embed is broken
	}
	return cfg, SourceEmbedded, nil
}

func readSnake(path string) (SnakeConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SnakeConfig{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := parseSnake(data)
	if err != nil {
		return SnakeConfig{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// parseSnake decodes YAML on top of the defaults and validates the result.
func parseSnake(data []byte) (SnakeConfig, error) {
	cfg := DefaultSnakeConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snake", "configs", filename)
}

// ApplySnakePreset modifies the config based on a difficulty preset.
// An empty preset leaves the config untouched.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}
