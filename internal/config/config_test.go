package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "snake.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	return path
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := parseSnake(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if cfg != DefaultSnakeConfig() {
		t.Errorf("embedded YAML and DefaultSnakeConfig differ:\n%+v\n%+v", cfg, DefaultSnakeConfig())
	}
}

func TestLoadSnakeCustomPath(t *testing.T) {
	path := writeConfig(t, `
grid:
  width: 10
  height: 8
timing:
  move_interval: 125ms
`)

	cfg, source, err := LoadSnake(path)
	if err != nil {
		t.Fatalf("LoadSnake() failed: %v", err)
	}
	if source != path {
		t.Errorf("source = %q, expected %q", source, path)
	}
	if cfg.Grid.Width != 10 || cfg.Grid.Height != 8 {
		t.Errorf("grid = %+v, expected 10x8", cfg.Grid)
	}
	if cfg.Timing.MoveInterval != 125*time.Millisecond {
		t.Errorf("move_interval = %s, expected 125ms", cfg.Timing.MoveInterval)
	}
	// Untouched fields keep their defaults
	if cfg.Start.Growth != 2 {
		t.Errorf("start growth = %d, expected default 2", cfg.Start.Growth)
	}
}

func TestLoadSnakeErrors(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
	}{
		{"missing file", func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.yaml") }},
		{"invalid yaml", func(t *testing.T) string { return writeConfig(t, "grid: [1, 2") }},
		{"invalid grid", func(t *testing.T) string { return writeConfig(t, "grid: {width: 1, height: 1}") }},
		{"negative growth", func(t *testing.T) string { return writeConfig(t, "start: {growth: -1}") }},
		{"bad duration", func(t *testing.T) string { return writeConfig(t, "timing: {move_interval: fast}") }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, _, err := LoadSnake(tc.path(t)); err == nil {
				t.Error("LoadSnake() should fail")
			}
		})
	}
}

func TestLoadSnakeUserDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".snake", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "snake.yaml")
	if err := os.WriteFile(path, []byte("grid: {width: 12, height: 12}"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, source, err := LoadSnake("")
	if err != nil {
		t.Fatalf("LoadSnake() failed: %v", err)
	}
	if source != path {
		t.Errorf("source = %q, expected %q", source, path)
	}
	if cfg.Grid.Width != 12 {
		t.Errorf("grid width = %d, expected 12", cfg.Grid.Width)
	}
}

func TestLoadSnakeFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, source, err := LoadSnake("")
	if err != nil {
		t.Fatalf("LoadSnake() failed: %v", err)
	}
	if source != SourceEmbedded {
		t.Errorf("source = %q, expected %q", source, SourceEmbedded)
	}
	if cfg != DefaultSnakeConfig() {
		t.Errorf("expected default config, got %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *SnakeConfig)
		ok     bool
	}{
		{"default", func(c *SnakeConfig) {}, true},
		{"two cells", func(c *SnakeConfig) { c.Grid = SnakeGrid{Width: 2, Height: 1} }, true},
		{"zero width", func(c *SnakeConfig) { c.Grid.Width = 0 }, false},
		{"zero interval", func(c *SnakeConfig) { c.Timing.MoveInterval = 0 }, false},
		{"floor above interval", func(c *SnakeConfig) { c.Timing.MinInterval = time.Second }, false},
		{"unknown progression", func(c *SnakeConfig) { c.Difficulty.Progression.Type = "lunar" }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultSnakeConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.ok && err != nil {
				t.Errorf("Validate() = %v, expected nil", err)
			}
			if !tc.ok && err == nil {
				t.Error("Validate() = nil, expected error")
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"", "easy", "normal", "hard", "fixed"} {
		if _, err := ParsePreset(s); err != nil {
			t.Errorf("ParsePreset(%q) failed: %v", s, err)
		}
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("ParsePreset should reject unknown presets")
	}
}

func TestApplySnakePreset(t *testing.T) {
	cfg := DefaultSnakeConfig()
	ApplySnakePreset(&cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard preset = %+v", cfg.Difficulty)
	}

	ApplySnakePreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}

	before := cfg
	ApplySnakePreset(&cfg, "")
	if cfg != before {
		t.Error("empty preset should not change the config")
	}
}
