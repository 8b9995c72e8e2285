package core

import "fmt"

// ValidationError contains details about a rejected board shape.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// ValidateSize checks that both dimensions are positive.
func ValidateSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return ValidationError{
			Code:    "INVALID_SIZE",
			Message: fmt.Sprintf("board size %dx%d must be positive", width, height),
		}
	}
	return nil
}

// validateCellCount checks that a persisted cell list fills the board exactly.
func validateCellCount(width, height, count int) error {
	if count != width*height {
		return ValidationError{
			Code:    "CELL_COUNT",
			Message: fmt.Sprintf("%d cells for a %dx%d board, want %d", count, width, height, width*height),
		}
	}
	return nil
}

// BoardStats summarizes a board.
type BoardStats struct {
	Width      int
	Height     int
	TotalCells int
	Counts     map[string]int
	Matches    int
	LegalMoves int
	Stable     bool
}

// ComputeStats analyzes a board.
// Tile values are keyed by their fmt representation.
func ComputeStats[T comparable](b *Board[T]) BoardStats {
	counts := make(map[string]int)
	for _, v := range b.cells {
		counts[fmt.Sprint(v)]++
	}

	matches := len(FindMatches(b))
	return BoardStats{
		Width:      b.width,
		Height:     b.height,
		TotalCells: len(b.cells),
		Counts:     counts,
		Matches:    matches,
		LegalMoves: len(LegalMoves(b)),
		Stable:     matches == 0,
	}
}
