// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"go-hex-tiles/pkg/hexmap"
)

const (
	ScreenWidth  = 1200
	ScreenHeight = 900
	HexSize      = 40.0
	WindowTitle  = "Hex Tiles"

	AnimationDuration = 300 * time.Millisecond
	PulseAmplitude    = 0.2
	EdgeProbability   = 0.5
	NoiseFrequency    = 0.15

	MaxDeltaTime  = 0.06
	ClickCooldown = 150 // мс между кликами по кнопке

	ButtonWidth   = 160
	ButtonHeight  = 44
	ButtonMargin  = 20
	PanelMargin   = 10
	TextOffsetY   = 4
	EnvPrefix     = "HEXTILES_"
	ConfigPathEnv = "CONFIG_PATH"
)

const (
	GeneratorRandom = "random"
	GeneratorNoise  = "noise"
)

var (
	BackgroundColor  = color.RGBA{20, 20, 30, 255}
	PlacedColor      = color.RGBA{70, 100, 120, 235}
	CandidateColor   = color.RGBA{220, 170, 60, 235}
	FrontierColor    = color.RGBA{60, 60, 80, 140}
	BlockedColor     = color.RGBA{150, 70, 70, 160} // frontier cell with no legal rotation for the candidate
	EdgeMarkerColor  = color.RGBA{240, 240, 240, 255}
	StrokeColor      = color.RGBA{15, 15, 20, 255}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	ButtonColor      = color.RGBA{70, 130, 180, 220}
	ButtonHoverColor = color.RGBA{90, 150, 200, 240}
	ButtonIdleColor  = color.RGBA{90, 90, 100, 200}
	PanelColor       = color.RGBA{25, 35, 45, 230}
	PanelBorderColor = color.RGBA{70, 130, 180, 255}
	StrokeWidth      = 2.0
)

// Config holds the runtime settings of a session.
type Config struct {
	Window    WindowConfig    `yaml:"window" envPrefix:"WINDOW_"`
	Board     BoardConfig     `yaml:"board" envPrefix:"BOARD_"`
	Animation AnimationConfig `yaml:"animation" envPrefix:"ANIMATION_"`
	Tiles     TilesConfig     `yaml:"tiles" envPrefix:"TILES_"`
	Log       LogConfig       `yaml:"log" envPrefix:"LOG_"`
}

type WindowConfig struct {
	Width  int    `yaml:"width" env:"WIDTH"`
	Height int    `yaml:"height" env:"HEIGHT"`
	Title  string `yaml:"title" env:"TITLE"`
}

// BoardConfig holds the geometry and matching rule of the board.
type BoardConfig struct {
	HexSize   float64 `yaml:"hex_size" env:"HEX_SIZE"`
	MatchRule string  `yaml:"match_rule" env:"MATCH_RULE"` // any | all
}

type AnimationConfig struct {
	Duration       time.Duration `yaml:"duration" env:"DURATION"`
	PulseAmplitude float64       `yaml:"pulse_amplitude" env:"PULSE_AMPLITUDE"`
}

// TilesConfig controls how candidate tiles are drawn.
type TilesConfig struct {
	Generator       string  `yaml:"generator" env:"GENERATOR"` // random | noise
	EdgeProbability float64 `yaml:"edge_probability" env:"EDGE_PROBABILITY"`
	Seed            int64   `yaml:"seed" env:"SEED"` // 0 = от текущего времени
	NoiseFrequency  float64 `yaml:"noise_frequency" env:"NOISE_FREQUENCY"`
}

type LogConfig struct {
	Level string `yaml:"level" env:"LEVEL"` // debug | info | warn | error
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:  ScreenWidth,
			Height: ScreenHeight,
			Title:  WindowTitle,
		},
		Board: BoardConfig{
			HexSize:   HexSize,
			MatchRule: hexmap.MatchAny.String(),
		},
		Animation: AnimationConfig{
			Duration:       AnimationDuration,
			PulseAmplitude: PulseAmplitude,
		},
		Tiles: TilesConfig{
			Generator:       GeneratorRandom,
			EdgeProbability: EdgeProbability,
			NoiseFrequency:  NoiseFrequency,
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load reads configuration from a YAML file on top of the defaults, then
// applies HEXTILES_* environment overrides. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if err := ParseEnv(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ParseEnv overrides target with HEXTILES_* environment variables. Unset
// variables leave the current value in place.
func ParseEnv(target *Config) error {
	if err := env.ParseWithOptions(target, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks value ranges and enum fields.
func (c *Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Board.HexSize <= 0 {
		errs = append(errs, fmt.Errorf("board.hex_size %v must be positive", c.Board.HexSize))
	}
	if _, err := hexmap.ParseMatchRule(c.Board.MatchRule); err != nil {
		errs = append(errs, fmt.Errorf("board.match_rule: %w", err))
	}
	if c.Animation.Duration < 0 {
		errs = append(errs, fmt.Errorf("animation.duration %v must not be negative", c.Animation.Duration))
	}
	if c.Animation.PulseAmplitude < 0 || c.Animation.PulseAmplitude > 1 {
		errs = append(errs, fmt.Errorf("animation.pulse_amplitude %v outside [0, 1]", c.Animation.PulseAmplitude))
	}
	switch c.Tiles.Generator {
	case GeneratorRandom, GeneratorNoise:
	default:
		errs = append(errs, fmt.Errorf("tiles.generator %q unknown", c.Tiles.Generator))
	}
	if c.Tiles.EdgeProbability < 0 || c.Tiles.EdgeProbability > 1 {
		errs = append(errs, fmt.Errorf("tiles.edge_probability %v outside [0, 1]", c.Tiles.EdgeProbability))
	}
	if c.Tiles.NoiseFrequency <= 0 {
		errs = append(errs, fmt.Errorf("tiles.noise_frequency %v must be positive", c.Tiles.NoiseFrequency))
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log.level %q unknown", c.Log.Level))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

// MatchRule returns the parsed board rule. Call after Validate.
func (c *Config) MatchRule() hexmap.MatchRule {
	rule, _ := hexmap.ParseMatchRule(c.Board.MatchRule)
	return rule
}

// SlogLevel maps the configured level name onto slog. Unknown names fall back
// to info.
func (l LogConfig) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return slog.LevelInfo
	}
	return level
}
