// Package config provides configuration loading for the game.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"time"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"glyph-snake/game/render"
	"glyph-snake/game/types"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all game configuration parameters.
type Config struct {
	Grid      GridConfig      `yaml:"grid"`
	Game      GameConfig      `yaml:"game"`
	Colors    ColorsConfig    `yaml:"colors"`
	Display   DisplayConfig   `yaml:"display"`
	Audio     AudioConfig     `yaml:"audio"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// GridConfig holds the fixed coordinate space.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// GameConfig holds simulation parameters.
type GameConfig struct {
	Variant     string `yaml:"variant"` // snake | letters
	TickMs      int    `yaml:"tick_ms"`
	MaxSegments int    `yaml:"max_segments"`
	BodyGlyph   string `yaml:"body_glyph"`
	FoodGlyph   string `yaml:"food_glyph"`
	ScoreX      int    `yaml:"score_x"`
	ScoreY      int    `yaml:"score_y"`
}

// StyleConfig is a named foreground/background pair.
type StyleConfig struct {
	Fg string `yaml:"fg"`
	Bg string `yaml:"bg"`
}

// ColorsConfig holds the palette.
type ColorsConfig struct {
	Body       StyleConfig `yaml:"body"`
	Food       StyleConfig `yaml:"food"`
	Score      StyleConfig `yaml:"score"`
	Background StyleConfig `yaml:"background"`
}

// DisplayConfig selects and sizes the display backend.
type DisplayConfig struct {
	Backend  string `yaml:"backend"` // terminal | window | headless
	CellSize int    `yaml:"cell_size"`
	Title    string `yaml:"title"`
}

// AudioConfig controls the eat chime.
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	Frequency  float64 `yaml:"frequency"`
	DurationMs int     `yaml:"duration_ms"`
}

// TelemetryConfig controls CSV output.
type TelemetryConfig struct {
	OutputDir string `yaml:"output_dir"` // empty = disabled
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	Grid          types.Grid
	TickInterval  time.Duration
	ChimeDuration time.Duration
	BodyGlyph     rune
	FoodGlyph     rune
	ScorePos      types.Point
	Palette       render.Palette
}

const (
	VariantSnake   = "snake"
	VariantLetters = "letters"

	BackendTerminal = "terminal"
	BackendWindow   = "window"
	BackendHeadless = "headless"
)

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Finalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Finalize validates the config and recomputes derived values. Call it again
// after changing fields, e.g. from command-line flags.
func (c *Config) Finalize() error {
	if err := c.validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return c.computeDerived()
}

func (c *Config) validate() error {
	var errs []error
	if c.Grid.Width <= 0 || c.Grid.Height <= 0 {
		errs = append(errs, fmt.Errorf("grid must be positive, got %dx%d", c.Grid.Width, c.Grid.Height))
	}
	if c.Game.MaxSegments < 1 {
		errs = append(errs, fmt.Errorf("max_segments must be at least 1, got %d", c.Game.MaxSegments))
	}
	if c.Game.TickMs <= 0 {
		errs = append(errs, fmt.Errorf("tick_ms must be positive, got %d", c.Game.TickMs))
	}
	switch c.Game.Variant {
	case VariantSnake, VariantLetters:
	default:
		errs = append(errs, fmt.Errorf("unknown variant %q", c.Game.Variant))
	}
	switch c.Display.Backend {
	case BackendTerminal, BackendWindow, BackendHeadless:
	default:
		errs = append(errs, fmt.Errorf("unknown backend %q", c.Display.Backend))
	}
	if c.Display.CellSize <= 0 {
		errs = append(errs, fmt.Errorf("cell_size must be positive, got %d", c.Display.CellSize))
	}
	return errors.Join(errs...)
}

func (c *Config) computeDerived() error {
	body, err := glyph("body_glyph", c.Game.BodyGlyph)
	if err != nil {
		return err
	}
	food, err := glyph("food_glyph", c.Game.FoodGlyph)
	if err != nil {
		return err
	}
	if food == types.Background {
		return errors.New("food_glyph must differ from the background")
	}

	var p render.Palette
	for _, s := range []struct {
		name string
		in   StyleConfig
		out  *types.Style
	}{
		{"body", c.Colors.Body, &p.Body},
		{"food", c.Colors.Food, &p.Food},
		{"score", c.Colors.Score, &p.Score},
		{"background", c.Colors.Background, &p.Background},
	} {
		st, err := style(s.name, s.in)
		if err != nil {
			return err
		}
		*s.out = st
	}

	c.Derived = DerivedConfig{
		Grid:          types.Grid{Width: c.Grid.Width, Height: c.Grid.Height},
		TickInterval:  time.Duration(c.Game.TickMs) * time.Millisecond,
		ChimeDuration: time.Duration(c.Audio.DurationMs) * time.Millisecond,
		BodyGlyph:     body,
		FoodGlyph:     food,
		ScorePos:      types.Point{X: c.Game.ScoreX, Y: c.Game.ScoreY},
		Palette:       p,
	}
	return nil
}

func glyph(name, s string) (rune, error) {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || size != len(s) || !types.IsDrawable(r) {
		return 0, fmt.Errorf("%s must be one drawable character, got %q", name, s)
	}
	return r, nil
}

func style(name string, s StyleConfig) (types.Style, error) {
	fg, ok := types.ParseColor(s.Fg)
	if !ok {
		return types.Style{}, fmt.Errorf("colors.%s.fg: unknown color %q", name, s.Fg)
	}
	bg, ok := types.ParseColor(s.Bg)
	if !ok {
		return types.Style{}, fmt.Errorf("colors.%s.bg: unknown color %q", name, s.Bg)
	}
	return types.Style{Fg: fg, Bg: bg}, nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
