package config

import (
	"fmt"
	"math"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override, e.g. HONEYCOMB_GRID.
const EnvPrefix = "HONEYCOMB_"

// File is the user configuration: board setup and the defaults of the dialog.
type File struct {
	Log       LogConfig       `yaml:"log"`
	Board     BoardConfig     `yaml:"board"`
	Honeycomb HoneycombConfig `yaml:"honeycomb"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string `yaml:"level" env:"LOG_LEVEL"`
}

// BoardConfig describes the demo board
type BoardConfig struct {
	Grid     string        `yaml:"grid" env:"GRID"`
	CellSize float64       `yaml:"cell_size" env:"CELL_SIZE"`
	Tokens   []TokenConfig `yaml:"tokens"`
}

// TokenConfig places a token on the hex with axial coordinates (Q, R).
type TokenConfig struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
	Q    int    `yaml:"q"`
	R    int    `yaml:"r"`
}

// HoneycombConfig holds the values the configuration dialog starts with.
type HoneycombConfig struct {
	Radius          int     `yaml:"radius" env:"RADIUS"`
	StrokeColor     string  `yaml:"stroke_color" env:"STROKE_COLOR"`
	FillColor       string  `yaml:"fill_color" env:"FILL_COLOR"`
	Thickness       int     `yaml:"thickness" env:"THICKNESS"`
	Alpha           float64 `yaml:"alpha" env:"ALPHA"`
	Fill            bool    `yaml:"fill" env:"FILL"`
	Contour         bool    `yaml:"contour" env:"CONTOUR"`
	RotateWithToken bool    `yaml:"rotate_with_token" env:"ROTATE_WITH_TOKEN"`
}

// Defaults returns the built-in configuration.
func Defaults() File {
	return File{
		Log: LogConfig{Level: "info"},
		Board: BoardConfig{
			Grid:     "hex-odd-r",
			CellSize: 60,
			Tokens: []TokenConfig{
				{ID: "fighter", Name: "Fighter", Q: 0, R: 0},
				{ID: "wizard", Name: "Wizard", Q: 3, R: -2},
				{ID: "goblin", Name: "Goblin", Q: -3, R: 2},
			},
		},
		Honeycomb: HoneycombConfig{
			Radius:          5,
			StrokeColor:     "#ff0000",
			FillColor:       "#ff0000",
			Thickness:       4,
			Alpha:           0.7,
			Fill:            true,
			Contour:         true,
			RotateWithToken: true,
		},
	}
}

// Load reads the YAML file at path on top of Defaults, then applies HONEYCOMB_*
// environment variables. An empty path skips the file.
func Load(path string) (*File, error) {
	cfg := Defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("failed to apply environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks ranges the dialog relies on.
func (f File) Validate() error {
	if f.Board.CellSize <= 0 {
		return fmt.Errorf("board.cell_size must be positive, got %v", f.Board.CellSize)
	}
	if f.Honeycomb.Radius < 0 {
		return fmt.Errorf("honeycomb.radius must not be negative, got %d", f.Honeycomb.Radius)
	}
	if f.Honeycomb.Thickness < MinThickness || f.Honeycomb.Thickness > MaxThickness {
		return fmt.Errorf("honeycomb.thickness must be in [%d, %d], got %d", MinThickness, MaxThickness, f.Honeycomb.Thickness)
	}
	if math.IsNaN(f.Honeycomb.Alpha) || f.Honeycomb.Alpha < MinAlpha || f.Honeycomb.Alpha > MaxAlpha {
		return fmt.Errorf("honeycomb.alpha must be in [%.1f, %.1f], got %v", MinAlpha, MaxAlpha, f.Honeycomb.Alpha)
	}
	seen := make(map[string]bool, len(f.Board.Tokens))
	for _, t := range f.Board.Tokens {
		if t.ID == "" {
			return fmt.Errorf("board token without id")
		}
		if seen[t.ID] {
			return fmt.Errorf("duplicate board token %q", t.ID)
		}
		seen[t.ID] = true
	}
	return nil
}
