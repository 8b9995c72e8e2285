package core

import (
	"fmt"
	"strings"
)

// MinRun is the shortest run of equal tiles that counts as a match.
const MinRun = 3

// Match is a maximal run of equal values in a single row or column.
// Positions are ordered by row, then column.
type Match[T comparable] struct {
	Value     T
	Positions []Position
}

// Len returns the number of matched cells.
func (m Match[T]) Len() int {
	return len(m.Positions)
}

// Horizontal reports whether the run lies in a single row.
func (m Match[T]) Horizontal() bool {
	return len(m.Positions) > 1 && m.Positions[0].Row == m.Positions[len(m.Positions)-1].Row
}

// Contains reports whether p is part of the run.
func (m Match[T]) Contains(p Position) bool {
	for _, q := range m.Positions {
		if q == p {
			return true
		}
	}
	return false
}

// String returns the match as "[(0, 0), (0, 1), (0, 2)]: A".
func (m Match[T]) String() string {
	parts := make([]string, len(m.Positions))
	for i, p := range m.Positions {
		parts[i] = p.String()
	}
	return fmt.Sprintf("[%s]: %v", strings.Join(parts, ", "), m.Value)
}

// FindMatches returns one Match per maximal run of at least MinRun equal values.
// Rows are scanned top to bottom, then columns left to right.
// A cell in both a horizontal and a vertical run appears in both matches.
func FindMatches[T comparable](b *Board[T]) []Match[T] {
	var matches []Match[T]

	for row := 0; row < b.height; row++ {
		matches = scanLine(b, matches, b.width, func(i int) Position { return P(row, i) })
	}
	for col := 0; col < b.width; col++ {
		matches = scanLine(b, matches, b.height, func(i int) Position { return P(i, col) })
	}

	return matches
}

// scanLine appends the maximal runs found along one row or column.
// at maps an offset along the line to a board position.
func scanLine[T comparable](b *Board[T], matches []Match[T], length int, at func(int) Position) []Match[T] {
	start := 0
	for start < length {
		value := b.cells[b.index(at(start))]

		// Extend the run while the next cell holds the same value
		end := start + 1
		for end < length && b.cells[b.index(at(end))] == value {
			end++
		}

		if end-start >= MinRun {
			positions := make([]Position, 0, end-start)
			for i := start; i < end; i++ {
				positions = append(positions, at(i))
			}
			matches = append(matches, Match[T]{Value: value, Positions: positions})
		}

		// Cells consumed by this run are not examined again
		start = end
	}
	return matches
}

// IsStable returns true if the board contains no matches.
func IsStable[T comparable](b *Board[T]) bool {
	return len(FindMatches(b)) == 0
}
