package core_test

import (
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"testing"

	"github.com/vovakirdan/match3/internal/generators"
	"github.com/vovakirdan/match3/internal/match3/core"
)

// getTestdataPath returns path to testdata/boards.
func getTestdataPath() string {
	_, filename, _, _ := runtime.Caller(0)
	dir := filepath.Dir(filename)
	return filepath.Join(dir, "..", "testdata", "boards")
}

// newQueueBoard fills a board from a scripted queue and returns both,
// so further refill values can be prepared on the same generator.
func newQueueBoard(t *testing.T, width, height int, cells ...string) (*core.Board[string], *generators.Queue[string]) {
	t.Helper()
	gen := generators.NewQueue(cells...)
	b, err := core.New[string](gen, width, height)
	if err != nil {
		t.Fatalf("New(%d, %d) failed: %v", width, height, err)
	}
	return b, gen
}

// requireCells checks every cell of b against a row-major list.
func requireCells(t *testing.T, b *core.Board[string], want ...string) {
	t.Helper()
	for _, p := range b.Positions() {
		got, _ := b.Piece(p)
		if exp := want[p.Row*b.Width()+p.Col]; got != exp {
			t.Errorf("piece at %v = %q, want %q", p, got, exp)
		}
	}
}

// requirePattern checks b against a row-major pattern where "*" marks a
// refilled cell, then checks the refilled values as a multiset.
func requirePattern(t *testing.T, b *core.Board[string], pattern []string, pieces ...string) {
	t.Helper()
	var refilled []string
	for _, p := range b.Positions() {
		got, _ := b.Piece(p)
		exp := pattern[p.Row*b.Width()+p.Col]
		if exp == "*" {
			refilled = append(refilled, got)
			continue
		}
		if got != exp {
			t.Errorf("piece at %v = %q, want %q", p, got, exp)
		}
	}

	sort.Strings(refilled)
	sorted := append([]string(nil), pieces...)
	sort.Strings(sorted)
	if strings.Join(refilled, "") != strings.Join(sorted, "") {
		t.Errorf("refilled pieces = %v, want %v", refilled, sorted)
	}
}

// hasMatch reports whether effects contain a match of value at exactly positions.
func hasMatch(effects []core.Effect[string], value string, positions ...core.Position) bool {
	for _, e := range effects {
		if e.Kind != core.EffectMatch || e.Match.Value != value || len(e.Match.Positions) != len(positions) {
			continue
		}
		same := true
		for i, p := range positions {
			if e.Match.Positions[i] != p {
				same = false
				break
			}
		}
		if same {
			return true
		}
	}
	return false
}

// checkMatchShape verifies the structural invariants of a match.
func checkMatchShape(t *testing.T, b *core.Board[string], m core.Match[string], checkValues bool) {
	t.Helper()
	if m.Len() < core.MinRun {
		t.Errorf("match %v shorter than %d", m, core.MinRun)
	}
	first := m.Positions[0]
	for i, p := range m.Positions {
		if m.Horizontal() {
			if p.Row != first.Row || p.Col != first.Col+i {
				t.Errorf("match %v not contiguous in a row", m)
			}
		} else if p.Col != first.Col || p.Row != first.Row+i {
			t.Errorf("match %v not contiguous in a column", m)
		}
		if checkValues {
			if v, _ := b.Piece(p); v != m.Value {
				t.Errorf("match %v: piece at %v is %q", m, p, v)
			}
		}
	}
}
