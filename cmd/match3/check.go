package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/match3/internal/match3/boards"
	"github.com/vovakirdan/match3/internal/match3/core"
)

var flagShowMoves bool

var checkCmd = &cobra.Command{
	Use:   "check <path>...",
	Short: "Validate board fixtures",
	Long: `Load board fixture files (or every fixture under a directory), report
their statistics and whether they are stable.

Examples:
  match3 check boards/start.yaml
  match3 check ./boards --moves`,
	Args: cobra.MinimumNArgs(1),
	Run:  runCheck,
}

func init() {
	checkCmd.Flags().BoolVar(&flagShowMoves, "moves", false, "List every legal swap")
}

func runCheck(cmd *cobra.Command, args []string) {
	_, logger := setup()

	failed := 0
	for _, path := range args {
		fixtures, invalid, err := collectFixtures(path)
		if err != nil {
			logger.Error("cannot read boards", "path", path, "error", err)
			failed++
			continue
		}
		for _, ferr := range invalid {
			logger.Error("invalid board", "error", ferr)
			fmt.Printf("== invalid\n   error: %v\n\n", ferr)
			failed++
		}
		for _, f := range fixtures {
			if !checkFixture(f) {
				failed++
			}
		}
	}

	if failed > 0 {
		fmt.Fprintf(os.Stderr, "%d board(s) failed\n", failed)
		os.Exit(1)
	}
}

// collectFixtures loads one file, or every fixture under a directory.
// Files that fail to load are returned as invalid rather than skipped.
func collectFixtures(path string) ([]boards.Fixture, []error, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, nil, err
	}
	if info.IsDir() {
		return boards.NewLoader(path).LoadAllStrict()
	}
	f, err := boards.LoadFile(path)
	if err != nil {
		return nil, []error{err}, nil
	}
	return []boards.Fixture{f}, nil, nil
}

// checkFixture prints a report and returns false if the board cannot load.
func checkFixture(f boards.Fixture) bool {
	title := f.ID
	if f.Name != "" {
		title = fmt.Sprintf("%s (%s)", f.ID, f.Name)
	}
	fmt.Printf("== %s\n", title)

	b, err := f.ToBoard()
	if err != nil {
		fmt.Printf("   error: %v\n\n", err)
		return false
	}

	stats := core.ComputeStats(b)
	fmt.Print(core.RenderASCII(b))
	fmt.Printf("   tiles: %s\n", formatCounts(stats.Counts))
	fmt.Printf("   stable: %v, matches: %d, legal moves: %d, refills: %d\n",
		stats.Stable, stats.Matches, stats.LegalMoves, len(f.Refills))

	if flagShowMoves {
		for _, m := range core.LegalMoves(b) {
			fmt.Printf("   %s\n", m)
		}
	}
	fmt.Println()
	return true
}

func formatCounts(counts map[string]int) string {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%d", k, counts[k])
	}
	return strings.Join(parts, " ")
}
