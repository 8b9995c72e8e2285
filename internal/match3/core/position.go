// Package core provides the match-3 board engine.
// This package is UI-agnostic, deterministic and has no external dependencies.
package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Position is a zero-based grid coordinate.
// Row increases downward, Col increases to the right.
type Position struct {
	Row int `yaml:"row" json:"row"`
	Col int `yaml:"col" json:"col"`
}

// P is a convenience constructor for Position.
func P(row, col int) Position {
	return Position{Row: row, Col: col}
}

// String returns the position as "(row, col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Col)
}

// Add returns a new Position offset by (dr, dc).
func (p Position) Add(dr, dc int) Position {
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// Aligned reports whether p and other share a row or a column.
func (p Position) Aligned(other Position) bool {
	return p.Row == other.Row || p.Col == other.Col
}

// Less orders positions by row, then column.
func (p Position) Less(other Position) bool {
	if p.Row != other.Row {
		return p.Row < other.Row
	}
	return p.Col < other.Col
}

// Swap is an unordered pair of positions to exchange.
type Swap struct {
	A Position
	B Position
}

// String returns the swap as "r,c:r,c".
func (s Swap) String() string {
	return fmt.Sprintf("%d,%d:%d,%d", s.A.Row, s.A.Col, s.B.Row, s.B.Col)
}

// ParsePosition parses "row,col".
func ParsePosition(s string) (Position, error) {
	parts := strings.Split(strings.TrimSpace(s), ",")
	if len(parts) != 2 {
		return Position{}, fmt.Errorf("invalid position %q: want row,col", s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Position{}, fmt.Errorf("invalid row in %q: %w", s, err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Position{}, fmt.Errorf("invalid col in %q: %w", s, err)
	}
	return P(row, col), nil
}

// ParseSwap parses "row,col:row,col".
func ParseSwap(s string) (Swap, error) {
	first, second, ok := strings.Cut(s, ":")
	if !ok {
		return Swap{}, fmt.Errorf("invalid swap %q: want row,col:row,col", s)
	}
	a, err := ParsePosition(first)
	if err != nil {
		return Swap{}, err
	}
	b, err := ParsePosition(second)
	if err != nil {
		return Swap{}, err
	}
	return Swap{A: a, B: b}, nil
}
