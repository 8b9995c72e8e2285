// match3 creates, checks and plays match-3 boards from the command line.
//
// Usage:
//
//	match3 generators          - List tile generator kinds
//	match3 new                 - Generate a board from config
//	match3 play [board]        - Play moves on a board fixture or a new board
//	match3 check <path>        - Validate board fixtures and list legal moves
//
// Global flags:
//
//	--config <path>    - Config file (default search: ~/.match3, ./configs, embedded)
//	--seed <value>     - RNG seed for reproducible boards
//	--preset <name>    - Rule preset: casual, classic, blitz
//	--log-level <lvl>  - Override the configured log level
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import generators to register them
	_ "github.com/vovakirdan/match3/internal/generators"

	"github.com/vovakirdan/match3/internal/config"
	"github.com/vovakirdan/match3/internal/logging"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagPreset   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "match3",
	Short: "match3 - Match-3 board engine",
	Long: `match3 drives a match-3 board engine: swap two tiles in a row or column,
clear every run of three or more, let the tiles fall and refill from a
generator until the board settles.

Available commands:
  generators - Show the registered tile generators
  new        - Generate a board from config
  play       - Play moves on a board
  check      - Validate board fixtures

Examples:
  match3 generators
  match3 new --seed 42 --out board.yaml
  match3 play board.yaml --move 0,1:2,1
  match3 play --auto 10 --preset blitz
  match3 check ./boards`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = config seed, or time based)")
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "", "Rule preset: casual, classic, blitz")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(generatorsCmd)
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(checkCmd)
}

// loadConfig loads the config file and applies the global flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	if flagSeed != 0 {
		cfg.Generator.Seed = flagSeed
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if err := config.ApplyPreset(&cfg, config.Preset(flagPreset)); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// newLogger builds the stderr logger from the log section.
func newLogger(cfg config.Config) (*log.Logger, error) {
	return logging.New(os.Stderr, logging.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Prefix: "match3",
	})
}

// setup loads config and logger for a command.
func setup() (config.Config, *log.Logger) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg, logger
}
