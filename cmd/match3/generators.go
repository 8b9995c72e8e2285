package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/match3/internal/config"
	"github.com/vovakirdan/match3/internal/registry"
)

var generatorsCmd = &cobra.Command{
	Use:   "generators",
	Short: "Show the configured tile generator and the other kinds",
	Long: `Prints the generator the current config builds (kind, seed and values)
followed by every registered kind. The configured kind is marked with '*'.`,
	Run: runGenerators,
}

func runGenerators(cmd *cobra.Command, args []string) {
	cfg, logger := setup()
	logger.Debug("listing generators", "kind", cfg.Generator.Kind)

	for _, line := range describeGenerators(registry.List(), cfg.Generator, cfg.Tiles) {
		fmt.Println(line)
	}
}

// describeGenerators renders the active generator section and the kind list.
// A configured kind missing from infos is reported on the last line.
func describeGenerators(infos []registry.Info, gen config.GeneratorConfig, tiles []string) []string {
	seed := "clock"
	if gen.Seed != 0 {
		seed = fmt.Sprint(gen.Seed)
	}
	lines := []string{
		"generator.kind: " + gen.Kind,
		"generator.seed: " + seed,
		"values:         " + strings.Join(gen.Values(tiles), " "),
		"",
	}

	known := false
	for _, info := range infos {
		mark := " "
		if info.ID == gen.Kind {
			mark = "*"
			known = true
		}
		lines = append(lines, fmt.Sprintf("%s %-8s %s", mark, info.ID, info.Title))
	}
	if !known {
		lines = append(lines, "", fmt.Sprintf("kind %q is not registered", gen.Kind))
	}
	return lines
}
