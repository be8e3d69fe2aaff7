package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go-hex-tiles/pkg/hexmap"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadWithoutFileUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := Default()
	if *cfg != want {
		t.Fatalf("expected defaults %+v, got %+v", want, *cfg)
	}
	if cfg.MatchRule() != hexmap.MatchAny {
		t.Fatalf("expected default rule any")
	}
}

func TestLoadYAMLKeepsUnsetDefaults(t *testing.T) {
	path := writeConfig(t, `
board:
  match_rule: all
animation:
  duration: 1s
tiles:
  generator: noise
  edge_probability: 0
  seed: 42
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.MatchRule() != hexmap.MatchAll {
		t.Fatalf("expected rule all, got %q", cfg.Board.MatchRule)
	}
	if cfg.Animation.Duration != time.Second {
		t.Fatalf("expected 1s, got %v", cfg.Animation.Duration)
	}
	if cfg.Tiles.Generator != GeneratorNoise || cfg.Tiles.Seed != 42 {
		t.Fatalf("unexpected tiles section %+v", cfg.Tiles)
	}
	if cfg.Tiles.EdgeProbability != 0 {
		t.Fatalf("explicit zero probability was replaced: %v", cfg.Tiles.EdgeProbability)
	}
	if cfg.Board.HexSize != HexSize || cfg.Window.Width != ScreenWidth {
		t.Fatalf("defaults lost: %+v", cfg)
	}
}

func TestEnvOverridesYAML(t *testing.T) {
	path := writeConfig(t, "board:\n  hex_size: 30\nlog:\n  level: warn\n")
	t.Setenv("HEXTILES_BOARD_HEX_SIZE", "55.5")
	t.Setenv("HEXTILES_TILES_SEED", "9")
	t.Setenv("HEXTILES_ANIMATION_DURATION", "150ms")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Board.HexSize != 55.5 {
		t.Fatalf("expected env hex size, got %v", cfg.Board.HexSize)
	}
	if cfg.Tiles.Seed != 9 || cfg.Animation.Duration != 150*time.Millisecond {
		t.Fatalf("env overrides not applied: %+v", cfg)
	}
	if cfg.Log.Level != "warn" {
		t.Fatalf("yaml value lost without env override: %q", cfg.Log.Level)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
	if _, err := Load(writeConfig(t, "board: [oops")); err == nil {
		t.Fatalf("expected parse error")
	}
	t.Setenv("HEXTILES_WINDOW_WIDTH", "wide")
	if _, err := Load(""); err == nil {
		t.Fatalf("expected env parse error")
	}
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"hex size":    func(c *Config) { c.Board.HexSize = 0 },
		"match rule":  func(c *Config) { c.Board.MatchRule = "some" },
		"window":      func(c *Config) { c.Window.Height = -1 },
		"duration":    func(c *Config) { c.Animation.Duration = -time.Second },
		"pulse":       func(c *Config) { c.Animation.PulseAmplitude = 2 },
		"generator":   func(c *Config) { c.Tiles.Generator = "perlin" },
		"probability": func(c *Config) { c.Tiles.EdgeProbability = 1.5 },
		"frequency":   func(c *Config) { c.Tiles.NoiseFrequency = 0 },
		"log level":   func(c *Config) { c.Log.Level = "loud" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should be valid: %v", err)
	}
}

func TestSlogLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
		"bogus": slog.LevelInfo,
	}
	for in, want := range cases {
		if got := (LogConfig{Level: in}).SlogLevel(); got != want {
			t.Errorf("SlogLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
