package config

import (
	_ "embed"
)

//go:embed defaults/match3.yaml
var defaultYAML []byte

// DefaultConfig returns the default match3 configuration.
func DefaultConfig() Config {
	return Config{
		Board: BoardConfig{
			Width:  8,
			Height: 8,
		},
		Tiles: []string{"A", "B", "C", "D", "E", "F"},
		Generator: GeneratorConfig{
			Kind: "random",
			Seed: 0,
		},
		Rules: RulesConfig{
			PointsPerMatch: 10,
			MaxMoves:       20,
		},
		Engine: EngineConfig{
			MaxCascadeRounds: 0,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "auto",
		},
	}
}
