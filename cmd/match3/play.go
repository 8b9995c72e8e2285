package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/match3/internal/config"
	"github.com/vovakirdan/match3/internal/generators"
	"github.com/vovakirdan/match3/internal/match3/boards"
	"github.com/vovakirdan/match3/internal/match3/core"
	"github.com/vovakirdan/match3/internal/match3/session"
	"github.com/vovakirdan/match3/internal/registry"
)

var (
	flagMoves     []string
	flagAuto      int
	flagBoardsDir string
	flagQuiet     bool
)

var playCmd = &cobra.Command{
	Use:   "play [board]",
	Short: "Play moves on a board",
	Long: `Play swaps on a board and print the cascade each one triggers.

The board is a fixture file path, a fixture ID under --boards, or a new
board from config when omitted. A fixture with refills uses them as a
scripted generator; otherwise the configured generator refills the board.

Moves are given as row,col:row,col. Without --move or --auto, a fixture's
"move" metadata is played.

Examples:
  match3 play testdata/replacing.yaml
  match3 play replacing --boards ./boards --move 0,1:2,1
  match3 play --auto 20 --seed 42
  match3 play --auto 100 --preset blitz --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringArrayVar(&flagMoves, "move", nil, "Swap to play as row,col:row,col (repeatable)")
	playCmd.Flags().IntVar(&flagAuto, "auto", 0, "Play up to N moves, always taking the first legal swap")
	playCmd.Flags().StringVar(&flagBoardsDir, "boards", "boards", "Directory searched for fixture IDs")
	playCmd.Flags().BoolVar(&flagQuiet, "quiet", false, "Only print the final board and score")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, logger := setup()

	b, gen, moves, err := preparePlay(cfg, args)
	if err != nil {
		logger.Error("cannot prepare board", "error", err)
		os.Exit(1)
	}

	s := session.New(b, gen,
		session.WithRules(session.Rules{
			PointsPerMatch: cfg.Rules.PointsPerMatch,
			MaxMoves:       cfg.Rules.MaxMoves,
		}),
		session.WithMaxRounds(cfg.Engine.MaxCascadeRounds),
		session.WithLogger(logger),
	)
	if !flagQuiet {
		s.Subscribe(printEvent)
		fmt.Print(core.RenderASCII(b))
	}

	played := 0
	for _, m := range moves {
		if !playOne(s, m, logger) {
			break
		}
		played++
	}
	for i := 0; i < flagAuto; i++ {
		legal := core.LegalMoves(b)
		if len(legal) == 0 {
			break
		}
		if !playOne(s, legal[0], logger) {
			break
		}
		played++
	}

	snap := s.Snapshot()
	if flagQuiet {
		fmt.Print(core.RenderASCII(b))
	}
	fmt.Println()
	fmt.Printf("Session: %s\n", snap.ID)
	fmt.Printf("Moves:   %d (%d attempted)\n", snap.Moves, played)
	fmt.Printf("Score:   %d\n", snap.Score)
	if snap.Over {
		fmt.Printf("Game over: %s\n", snap.Reason)
	}
}

// playOne plays a single swap and reports whether play can continue.
func playOne(s *session.Session[string], m core.Swap, logger *log.Logger) bool {
	if !flagQuiet {
		fmt.Printf("\n> %s\n", m)
	}

	res, err := s.Move(m.A, m.B)
	switch {
	case errors.Is(err, session.ErrGameOver):
		logger.Warn("move rejected", "swap", m, "reason", "no moves left")
		return false
	case err != nil:
		logger.Error("move failed", "swap", m, "error", err)
		return false
	}

	if !flagQuiet && len(res.Effects) > 0 {
		fmt.Print(core.RenderASCII(res.Board))
	}
	return !s.Over()
}

// printEvent writes session events to stdout.
func printEvent(e session.Event) {
	switch ev := e.(type) {
	case session.Matched[string]:
		fmt.Printf("  match %s (+%d)\n", ev.Match, ev.Points)
	case session.Refilled:
		fmt.Printf("  refill round %d\n", ev.Round)
	case session.MessageAdded:
		if ev.Message == session.CantMove {
			fmt.Printf("  %s\n", ev.Message)
		}
	case session.ScoreChanged:
		fmt.Printf("  score %d (+%d)\n", ev.Score, ev.Delta)
	case session.GameOver:
		fmt.Printf("  game over: %s\n", ev.Reason)
	}
}

// preparePlay resolves the board, its generator and the scripted moves.
func preparePlay(cfg config.Config, args []string) (*core.Board[string], core.Generator[string], []core.Swap, error) {
	moves, err := parseMoves(flagMoves)
	if err != nil {
		return nil, nil, nil, err
	}

	if len(args) == 0 {
		b, gen, err := generateBoard(cfg)
		if err != nil {
			return nil, nil, nil, err
		}
		return b, gen, moves, nil
	}

	fixture, err := loadFixture(args[0])
	if err != nil {
		return nil, nil, nil, err
	}
	b, err := fixture.ToBoard()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("board %s: %w", fixture.ID, err)
	}

	gen, err := fixtureGenerator(cfg, fixture)
	if err != nil {
		return nil, nil, nil, err
	}

	if len(moves) == 0 && flagAuto == 0 {
		if scripted, ok := fixture.Metadata["move"]; ok {
			m, err := core.ParseSwap(scripted)
			if err != nil {
				return nil, nil, nil, fmt.Errorf("board %s metadata: %w", fixture.ID, err)
			}
			moves = append(moves, m)
		}
	}
	return b, gen, moves, nil
}

// fixtureGenerator scripts refills from the fixture when it lists any.
func fixtureGenerator(cfg config.Config, f boards.Fixture) (core.Generator[string], error) {
	if len(f.Refills) > 0 {
		return generators.NewQueue(f.Refills...), nil
	}
	return registry.Create(cfg.Generator, cfg.Tiles)
}

// loadFixture treats arg as a file path first, then as an ID under --boards.
func loadFixture(arg string) (boards.Fixture, error) {
	if _, err := os.Stat(arg); err == nil {
		return boards.LoadFile(arg)
	}
	return boards.NewLoader(flagBoardsDir).LoadByID(arg)
}

func parseMoves(raw []string) ([]core.Swap, error) {
	moves := make([]core.Swap, 0, len(raw))
	for _, r := range raw {
		m, err := core.ParseSwap(r)
		if err != nil {
			return nil, err
		}
		moves = append(moves, m)
	}
	return moves, nil
}
