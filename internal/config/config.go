package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/dawkrish/flappy/internal/flappy"
)

type Config struct {
	Window  WindowConfig  `toml:"window" yaml:"window"`
	Player  PlayerConfig  `toml:"player" yaml:"player"`
	Pipes   PipesConfig   `toml:"pipes" yaml:"pipes"`
	Session SessionConfig `toml:"session" yaml:"session"`
	Logging LoggingConfig `toml:"logging" yaml:"logging"`
}

type WindowConfig struct {
	Title  string `toml:"title" yaml:"title"`
	Width  int    `toml:"width" yaml:"width"`
	Height int    `toml:"height" yaml:"height"`
}

type PlayerConfig struct {
	StartX      float64 `toml:"start_x" yaml:"start_x"`
	StartY      float64 `toml:"start_y" yaml:"start_y"`
	Size        float64 `toml:"size" yaml:"size"`                 // hit box side and circle radius
	Gravity     float64 `toml:"gravity" yaml:"gravity"`           // per frame
	JumpImpulse float64 `toml:"jump_impulse" yaml:"jump_impulse"` // negative is up
}

type PipesConfig struct {
	Count       int     `toml:"count" yaml:"count"`
	Width       float64 `toml:"width" yaml:"width"`
	Distance    float64 `toml:"distance" yaml:"distance"`
	Gap         float64 `toml:"gap" yaml:"gap"`
	ScrollSpeed float64 `toml:"scroll_speed" yaml:"scroll_speed"`
	GapMargin   float64 `toml:"gap_margin" yaml:"gap_margin"`
}

type SessionConfig struct {
	Seed int64 `toml:"seed" yaml:"seed"` // 0 seeds from the clock
}

type LoggingConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"` // "json" or "console"
}

// Format of a configuration document.
type Format string

const (
	TOML Format = "toml"
	YAML Format = "yaml"
)

// Load reads the file at path, choosing the format from its extension.
func Load(path string) (*Config, error) {
	var format Format
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		format = TOML
	case ".yaml", ".yml":
		format = YAML
	default:
		return nil, fmt.Errorf("config %s: unknown extension %q", path, filepath.Ext(path))
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse overlays data on the defaults and validates the result. Keys the
// document leaves out keep their default value.
func Parse(data []byte, format Format) (*Config, error) {
	cfg := Default()
	switch format {
	case TOML:
		if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(cfg); err != nil {
			return nil, fmt.Errorf("parse toml: %w", err)
		}
	case YAML:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Default() *Config {
	t := flappy.DefaultTuning()
	return &Config{
		Window: WindowConfig{
			Title:  "Flappy Bird",
			Width:  int(t.WindowWidth),
			Height: int(t.WindowHeight),
		},
		Player: PlayerConfig{
			StartX:      t.PlayerStartX,
			StartY:      t.PlayerStartY,
			Size:        t.PlayerSize,
			Gravity:     t.Gravity,
			JumpImpulse: t.JumpImpulse,
		},
		Pipes: PipesConfig{
			Count:       t.PipeCount,
			Width:       t.PipeWidth,
			Distance:    t.PipeDistance,
			Gap:         t.PipeGap,
			ScrollSpeed: t.ScrollSpeed,
			GapMargin:   t.GapMargin,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

var (
	ErrWindowSize = errors.New("window width and height must be positive")
	ErrPlayerSize = errors.New("player size must be positive")
	ErrPipeCount  = errors.New("pipe count must be positive")
	ErrPipeShape  = errors.New("pipe width, distance and gap must be positive")
	ErrGapMargin  = errors.New("gap margin leaves no room for pipe gaps")
)

// Validate rejects settings a session cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return ErrWindowSize
	case c.Player.Size <= 0:
		return ErrPlayerSize
	case c.Pipes.Count <= 0:
		return ErrPipeCount
	case c.Pipes.Width <= 0 || c.Pipes.Distance <= 0 || c.Pipes.Gap <= 0:
		return ErrPipeShape
	case c.Pipes.GapMargin < 0 || int(float64(c.Window.Height)-2*c.Pipes.GapMargin) <= 0:
		return ErrGapMargin
	}
	return nil
}

// Tuning converts the game settings into session constants.
func (c *Config) Tuning() flappy.Tuning {
	return flappy.Tuning{
		WindowWidth:  float64(c.Window.Width),
		WindowHeight: float64(c.Window.Height),

		PlayerStartX: c.Player.StartX,
		PlayerStartY: c.Player.StartY,
		PlayerSize:   c.Player.Size,
		Gravity:      c.Player.Gravity,
		JumpImpulse:  c.Player.JumpImpulse,

		PipeCount:    c.Pipes.Count,
		PipeWidth:    c.Pipes.Width,
		PipeDistance: c.Pipes.Distance,
		PipeGap:      c.Pipes.Gap,
		ScrollSpeed:  c.Pipes.ScrollSpeed,
		GapMargin:    c.Pipes.GapMargin,
	}
}
