package core_test

import (
	"testing"

	"github.com/vovakirdan/match3/internal/match3/core"
)

func TestFindMatchesStableBoard(t *testing.T) {
	b, _ := core.FromCells(3, 3, []string{
		"A", "B", "A",
		"B", "A", "B",
		"A", "B", "A",
	})

	if matches := core.FindMatches(b); len(matches) != 0 {
		t.Errorf("expected no matches, got %v", matches)
	}
	if !core.IsStable(b) {
		t.Error("board should be stable")
	}
}

func TestFindMatchesMaximalRun(t *testing.T) {
	b, _ := core.FromCells(5, 2, []string{
		"A", "A", "A", "A", "B",
		"C", "D", "C", "D", "C",
	})

	matches := core.FindMatches(b)
	if len(matches) != 1 {
		t.Fatalf("expected 1 match for a run of 4, got %d: %v", len(matches), matches)
	}

	m := matches[0]
	if m.Value != "A" || m.Len() != 4 || !m.Horizontal() {
		t.Errorf("unexpected match %v", m)
	}
	for i, p := range m.Positions {
		if p != core.P(0, i) {
			t.Errorf("position %d = %v, want %v", i, p, core.P(0, i))
		}
	}
}

func TestFindMatchesTwoRunsInOneLine(t *testing.T) {
	b, _ := core.FromCells(7, 1, []string{"A", "A", "A", "B", "C", "C", "C"})

	matches := core.FindMatches(b)
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %v", matches)
	}
	if matches[0].Value != "A" || matches[1].Value != "C" {
		t.Errorf("matches out of order: %v", matches)
	}
	if matches[1].Positions[0] != core.P(0, 4) {
		t.Errorf("second run should start at (0, 4), got %v", matches[1].Positions[0])
	}
}

func TestFindMatchesCrossReportsBoth(t *testing.T) {
	// A plus-shaped run of X shares the centre cell
	b, _ := core.FromCells(3, 3, []string{
		"A", "X", "B",
		"X", "X", "X",
		"C", "X", "D",
	})

	matches := core.FindMatches(b)
	if len(matches) != 2 {
		t.Fatalf("expected horizontal and vertical match, got %v", matches)
	}

	// Rows are scanned before columns
	if !matches[0].Horizontal() {
		t.Errorf("first match should be horizontal: %v", matches[0])
	}
	if matches[1].Horizontal() {
		t.Errorf("second match should be vertical: %v", matches[1])
	}
	if !matches[0].Contains(core.P(1, 1)) || !matches[1].Contains(core.P(1, 1)) {
		t.Error("both matches should contain the centre cell")
	}
}

func TestFindMatchesScanOrder(t *testing.T) {
	b, _ := core.FromCells(4, 4, []string{
		"A", "B", "E", "F",
		"A", "C", "C", "C",
		"A", "D", "G", "H",
		"B", "B", "B", "G",
	})

	matches := core.FindMatches(b)
	want := []struct {
		value string
		start core.Position
	}{
		{"C", core.P(1, 1)}, // row 1
		{"B", core.P(3, 0)}, // row 3
		{"A", core.P(0, 0)}, // column 0
	}

	if len(matches) != len(want) {
		t.Fatalf("expected %d matches, got %v", len(want), matches)
	}
	for i, w := range want {
		if matches[i].Value != w.value || matches[i].Positions[0] != w.start {
			t.Errorf("match %d = %v, want %s starting at %v", i, matches[i], w.value, w.start)
		}
	}
}

func TestFindMatchesShapes(t *testing.T) {
	b, _ := core.FromCells(5, 5, []string{
		"A", "A", "A", "B", "C",
		"D", "E", "B", "B", "C",
		"D", "E", "F", "G", "C",
		"D", "E", "H", "H", "H",
		"I", "J", "K", "L", "M",
	})

	matches := core.FindMatches(b)
	if len(matches) != 5 {
		t.Fatalf("expected 5 matches, got %d: %v", len(matches), matches)
	}
	for _, m := range matches {
		checkMatchShape(t, b, m, true)
	}
}

func TestMatchString(t *testing.T) {
	m := core.Match[string]{
		Value:     "A",
		Positions: []core.Position{core.P(0, 0), core.P(0, 1), core.P(0, 2)},
	}

	want := "[(0, 0), (0, 1), (0, 2)]: A"
	if got := m.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestFindMatchesGenericTiles(t *testing.T) {
	b, _ := core.FromCells(3, 3, []int{
		1, 2, 3,
		1, 3, 2,
		1, 2, 2,
	})

	matches := core.FindMatches(b)
	if len(matches) != 1 || matches[0].Value != 1 || matches[0].Horizontal() {
		t.Errorf("expected one vertical match of 1, got %v", matches)
	}
}
