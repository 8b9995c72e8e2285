package core_test

import (
	"errors"
	"testing"

	"github.com/vovakirdan/match3/internal/generators"
	"github.com/vovakirdan/match3/internal/match3/core"
)

func newCyclicBoard(t *testing.T) *core.Board[string] {
	t.Helper()
	gen, err := generators.CyclicString("ABC")
	if err != nil {
		t.Fatalf("CyclicString failed: %v", err)
	}
	b, err := core.New[string](gen, 2, 3)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return b
}

func TestInitialBoardDimensions(t *testing.T) {
	b := newCyclicBoard(t)

	if b.Width() != 2 {
		t.Errorf("expected width 2, got %d", b.Width())
	}
	if b.Height() != 3 {
		t.Errorf("expected height 3, got %d", b.Height())
	}
}

func TestInitialBoardPositions(t *testing.T) {
	b := newCyclicBoard(t)

	expected := []core.Position{
		core.P(0, 0), core.P(0, 1),
		core.P(1, 0), core.P(1, 1),
		core.P(2, 0), core.P(2, 1),
	}
	positions := b.Positions()
	if len(positions) != len(expected) {
		t.Fatalf("expected %d positions, got %d", len(expected), len(positions))
	}
	for i, p := range expected {
		if positions[i] != p {
			t.Errorf("position %d: expected %v, got %v", i, p, positions[i])
		}
	}
}

func TestInitialBoardContents(t *testing.T) {
	b := newCyclicBoard(t)

	testCases := []struct {
		pos  core.Position
		want string
	}{
		{core.P(0, 0), "A"},
		{core.P(1, 1), "A"},
		{core.P(0, 1), "B"},
		{core.P(2, 0), "B"},
		{core.P(1, 0), "C"},
		{core.P(2, 1), "C"},
	}

	for _, tc := range testCases {
		got, ok := b.Piece(tc.pos)
		if !ok || got != tc.want {
			t.Errorf("Piece(%v) = %q, %v; want %q, true", tc.pos, got, ok, tc.want)
		}
	}
}

func TestPieceOutsideBoard(t *testing.T) {
	b := newCyclicBoard(t)

	outside := []core.Position{
		core.P(0, -1),
		core.P(-1, 0),
		core.P(0, 2),
		core.P(3, 0),
		core.P(3, 2),
		core.P(-5, -5),
	}

	for _, p := range outside {
		if v, ok := b.Piece(p); ok {
			t.Errorf("Piece(%v) = %q, want none", p, v)
		}
		if b.InBounds(p) {
			t.Errorf("InBounds(%v) should be false", p)
		}
	}
}

func TestNewRejectsInvalidSize(t *testing.T) {
	gen, _ := generators.CyclicString("AB")

	for _, size := range [][2]int{{0, 3}, {3, 0}, {-1, 2}} {
		_, err := core.New[string](gen, size[0], size[1])
		var verr core.ValidationError
		if !errors.As(err, &verr) || verr.Code != "INVALID_SIZE" {
			t.Errorf("New(%d, %d) error = %v, want INVALID_SIZE", size[0], size[1], err)
		}
	}
}

func TestNewPropagatesGeneratorFailure(t *testing.T) {
	gen := generators.NewQueue("A", "B", "C")

	_, err := core.New[string](gen, 2, 2)
	if !errors.Is(err, core.ErrGenerator) {
		t.Errorf("error = %v, want ErrGenerator", err)
	}
	if !errors.Is(err, generators.ErrExhausted) {
		t.Errorf("error = %v, want wrapped ErrExhausted", err)
	}
}

func TestFromCells(t *testing.T) {
	cells := []string{"A", "B", "C", "D", "E", "F"}
	b, err := core.FromCells(3, 2, cells)
	if err != nil {
		t.Fatalf("FromCells failed: %v", err)
	}

	requireCells(t, b, "A", "B", "C", "D", "E", "F")

	// The input slice is copied
	cells[0] = "Z"
	if v, _ := b.Piece(core.P(0, 0)); v != "A" {
		t.Errorf("board aliased the input slice: got %q", v)
	}

	_, err = core.FromCells(3, 3, cells)
	var verr core.ValidationError
	if !errors.As(err, &verr) || verr.Code != "CELL_COUNT" {
		t.Errorf("FromCells with 6 cells for 3x3 error = %v, want CELL_COUNT", err)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	b, _ := core.FromCells(3, 1, []string{"A", "B", "A"})
	c := b.Clone()

	if !b.Equal(c) {
		t.Fatal("clone should equal its source")
	}

	cells := c.Cells()
	cells[0] = "Z"
	if v, _ := c.Piece(core.P(0, 0)); v != "A" {
		t.Errorf("Cells() should return a copy, board now has %q", v)
	}
}

func TestEqual(t *testing.T) {
	a, _ := core.FromCells(2, 1, []string{"A", "B"})
	b, _ := core.FromCells(2, 1, []string{"A", "B"})
	c, _ := core.FromCells(2, 1, []string{"B", "A"})
	d, _ := core.FromCells(1, 2, []string{"A", "B"})

	if !a.Equal(b) {
		t.Error("identical boards should be equal")
	}
	if a.Equal(c) {
		t.Error("boards with different cells should differ")
	}
	if a.Equal(d) {
		t.Error("boards with different shape should differ")
	}
	if a.Equal(nil) {
		t.Error("board should not equal nil")
	}
}

func TestRows(t *testing.T) {
	b := newCyclicBoard(t)
	rows := b.Rows()

	want := [][]string{{"A", "B"}, {"C", "A"}, {"B", "C"}}
	for r := range want {
		for c := range want[r] {
			if rows[r][c] != want[r][c] {
				t.Errorf("Rows()[%d][%d] = %q, want %q", r, c, rows[r][c], want[r][c])
			}
		}
	}
}

func TestComputeStats(t *testing.T) {
	b, _ := newQueueBoard(t, 4, 4,
		"A", "B", "A", "C",
		"D", "C", "A", "C",
		"D", "A", "D", "D",
		"C", "C", "D", "C",
	)

	stats := core.ComputeStats(b)
	if stats.TotalCells != 16 {
		t.Errorf("TotalCells = %d, want 16", stats.TotalCells)
	}
	if stats.Counts["C"] != 6 || stats.Counts["D"] != 5 {
		t.Errorf("Counts = %v, want C:6 D:5", stats.Counts)
	}
	if !stats.Stable || stats.Matches != 0 {
		t.Errorf("board should be stable, got %d matches", stats.Matches)
	}
	if stats.LegalMoves == 0 {
		t.Error("board should have legal moves")
	}
}
