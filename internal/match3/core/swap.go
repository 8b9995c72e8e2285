package core

// CanMove reports whether exchanging a and c is a legal move.
// Both positions must be on the board, distinct and in the same row or column,
// and the exchange must produce a match that includes a or c in its new place.
// The check runs on a copy; b is never modified.
func (b *Board[T]) CanMove(a, c Position) bool {
	if !b.InBounds(a) || !b.InBounds(c) {
		return false
	}
	if a == c {
		return false
	}
	if !a.Aligned(c) {
		return false
	}

	trial := b.Clone()
	trial.swap(a, c)

	for _, m := range FindMatches(trial) {
		if m.Contains(a) || m.Contains(c) {
			return true
		}
	}
	return false
}

// LegalMoves returns every legal swap on the board.
// Swaps are ordered by their first position in row-major order, each pair listed once.
func LegalMoves[T comparable](b *Board[T]) []Swap {
	var moves []Swap
	for _, a := range b.Positions() {
		// Partners to the right in the same row
		for col := a.Col + 1; col < b.width; col++ {
			if c := P(a.Row, col); b.CanMove(a, c) {
				moves = append(moves, Swap{A: a, B: c})
			}
		}
		// Partners below in the same column
		for row := a.Row + 1; row < b.height; row++ {
			if c := P(row, a.Col); b.CanMove(a, c) {
				moves = append(moves, Swap{A: a, B: c})
			}
		}
	}
	return moves
}

// HasLegalMove returns true if at least one legal swap exists.
func HasLegalMove[T comparable](b *Board[T]) bool {
	for _, a := range b.Positions() {
		for col := a.Col + 1; col < b.width; col++ {
			if b.CanMove(a, P(a.Row, col)) {
				return true
			}
		}
		for row := a.Row + 1; row < b.height; row++ {
			if b.CanMove(a, P(row, a.Col)) {
				return true
			}
		}
	}
	return false
}
