package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/match3/internal/config"
	"github.com/vovakirdan/match3/internal/match3/boards"
	"github.com/vovakirdan/match3/internal/match3/core"
	"github.com/vovakirdan/match3/internal/registry"
)

var (
	flagWidth  int
	flagHeight int
	flagOut    string
	flagID     string
	flagName   string
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Generate a board",
	Long: `Fill a new board from the configured generator and print it.
With --out the board is also written as a YAML fixture.

Examples:
  match3 new
  match3 new --width 6 --height 6 --seed 7
  match3 new --out boards/start.yaml --id start`,
	Args: cobra.NoArgs,
	Run:  runNew,
}

func init() {
	newCmd.Flags().IntVar(&flagWidth, "width", 0, "Board width (0 = config)")
	newCmd.Flags().IntVar(&flagHeight, "height", 0, "Board height (0 = config)")
	newCmd.Flags().StringVar(&flagOut, "out", "", "Write the board to this YAML file")
	newCmd.Flags().StringVar(&flagID, "id", "", "Fixture ID (default: file name)")
	newCmd.Flags().StringVar(&flagName, "name", "", "Fixture display name")
}

func runNew(cmd *cobra.Command, args []string) {
	cfg, logger := setup()
	if flagWidth > 0 {
		cfg.Board.Width = flagWidth
	}
	if flagHeight > 0 {
		cfg.Board.Height = flagHeight
	}

	b, _, err := generateBoard(cfg)
	if err != nil {
		logger.Error("cannot generate board", "error", err)
		os.Exit(1)
	}
	logger.Debug("board generated",
		"width", b.Width(),
		"height", b.Height(),
		"generator", cfg.Generator.Kind,
		"seed", cfg.Generator.Seed,
	)

	fmt.Print(core.RenderASCII(b))
	printStats(core.ComputeStats(b))

	if flagOut == "" {
		return
	}
	if err := boards.SaveFile(flagOut, flagID, flagName, b); err != nil {
		logger.Error("cannot save board", "path", flagOut, "error", err)
		os.Exit(1)
	}
	logger.Info("board saved", "path", flagOut)
}

// generateBoard fills a board of the configured size from the configured
// generator and returns the generator for later refills.
func generateBoard(cfg config.Config) (*core.Board[string], core.Generator[string], error) {
	gen, err := registry.Create(cfg.Generator, cfg.Tiles)
	if err != nil {
		return nil, nil, err
	}
	b, err := core.New(gen, cfg.Board.Width, cfg.Board.Height)
	if err != nil {
		return nil, nil, err
	}
	return b, gen, nil
}

func printStats(stats core.BoardStats) {
	fmt.Println()
	fmt.Printf("Cells:       %d\n", stats.TotalCells)
	fmt.Printf("Matches:     %d\n", stats.Matches)
	fmt.Printf("Legal moves: %d\n", stats.LegalMoves)
	fmt.Printf("Stable:      %v\n", stats.Stable)
}
