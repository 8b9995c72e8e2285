// Package config provides YAML-based configuration loading and rule presets
// for the match3 engine and its command-line front end.
package config

import (
	"fmt"

	"github.com/vovakirdan/match3/internal/logging"
)

// Config contains all configuration for a match3 game.
type Config struct {
	Board     BoardConfig     `yaml:"board"`
	Tiles     []string        `yaml:"tiles"`
	Generator GeneratorConfig `yaml:"generator"`
	Rules     RulesConfig     `yaml:"rules"`
	Engine    EngineConfig    `yaml:"engine"`
	Log       LogConfig       `yaml:"log"`
}

// BoardConfig defines the board dimensions.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// GeneratorConfig selects and parameterizes the tile generator.
type GeneratorConfig struct {
	Kind     string   `yaml:"kind"`     // "random", "cyclic" or "sequence"
	Seed     int64    `yaml:"seed"`     // 0 = seeded from the clock
	Sequence []string `yaml:"sequence"` // Values for cyclic/sequence generators
}

// RulesConfig holds caller-side scoring and move policy.
type RulesConfig struct {
	PointsPerMatch int `yaml:"points_per_match"`
	MaxMoves       int `yaml:"max_moves"` // 0 = unlimited
}

// EngineConfig tunes the cascade resolver.
type EngineConfig struct {
	MaxCascadeRounds int `yaml:"max_cascade_rounds"` // 0 = unlimited
}

// LogConfig controls logger construction.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "auto", "text", "logfmt" or "json"
}

// Validate checks the configuration for values the engine cannot run with.
func (c Config) Validate() error {
	if c.Board.Width <= 0 || c.Board.Height <= 0 {
		return fmt.Errorf("config: board size %dx%d must be positive", c.Board.Width, c.Board.Height)
	}
	if c.Generator.Kind == "" {
		return fmt.Errorf("config: generator kind is required")
	}
	if len(c.Tiles) == 0 && len(c.Generator.Sequence) == 0 {
		return fmt.Errorf("config: tiles or generator sequence must be set")
	}
	if c.Rules.PointsPerMatch < 0 {
		return fmt.Errorf("config: points_per_match must not be negative")
	}
	if c.Rules.MaxMoves < 0 {
		return fmt.Errorf("config: max_moves must not be negative")
	}
	if c.Engine.MaxCascadeRounds < 0 {
		return fmt.Errorf("config: max_cascade_rounds must not be negative")
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if !logging.ValidFormat(c.Log.Format) {
		return fmt.Errorf("config: invalid log format %q", c.Log.Format)
	}
	return nil
}

// Values returns the generator sequence, falling back to the tile set.
func (g GeneratorConfig) Values(tiles []string) []string {
	if len(g.Sequence) > 0 {
		return g.Sequence
	}
	return tiles
}

// Preset represents a named rule set.
type Preset string

const (
	PresetCasual  Preset = "casual"
	PresetClassic Preset = "classic"
	PresetBlitz   Preset = "blitz"
)

// Presets returns all known presets in display order.
func Presets() []Preset {
	return []Preset{PresetCasual, PresetClassic, PresetBlitz}
}

// MaxMovesForPreset returns the move limit for a preset.
func MaxMovesForPreset(preset Preset) int {
	switch preset {
	case PresetCasual:
		return 0
	case PresetClassic:
		return 20
	case PresetBlitz:
		return 10
	default:
		return 20
	}
}

// ApplyPreset modifies the rules based on a preset.
// An empty preset leaves the config untouched.
func ApplyPreset(cfg *Config, preset Preset) error {
	switch preset {
	case "":
		return nil
	case PresetCasual, PresetClassic, PresetBlitz:
		cfg.Rules.MaxMoves = MaxMovesForPreset(preset)
		return nil
	default:
		return fmt.Errorf("config: unknown preset %q", preset)
	}
}
