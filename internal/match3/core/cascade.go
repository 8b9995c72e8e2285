package core

import (
	"errors"
	"fmt"
)

// ErrCascadeLimit is returned when a cascade exceeds Resolver.MaxRounds.
var ErrCascadeLimit = errors.New("cascade round limit reached")

// Resolver commits validated swaps and runs the clear/gravity/refill cascade.
//
// Cascades are assumed to terminate: a generator that keeps producing
// matching tiles would loop forever unless MaxRounds is set.
type Resolver[T comparable] struct {
	// MaxRounds caps the number of refill rounds per move (0 = unlimited).
	MaxRounds int
}

// Move performs the swap of a and c on b with the zero Resolver.
func (b *Board[T]) Move(gen Generator[T], a, c Position) (MoveResult[T], error) {
	return Resolver[T]{}.Move(gen, b, a, c)
}

// Move swaps a and c on b and resolves the cascade until the board is stable.
//
// An illegal swap is a no-op: b is unchanged and the effect log is empty.
// Each round is applied to a copy and committed only after every column has
// been refilled, so on error b holds the state of the last completed round
// and the returned effects cover completed rounds only.
func (r Resolver[T]) Move(gen Generator[T], b *Board[T], a, c Position) (MoveResult[T], error) {
	if !b.CanMove(a, c) {
		return MoveResult[T]{Board: b}, nil
	}

	b.swap(a, c)

	var effects []Effect[T]
	rounds := 0
	for {
		matches := FindMatches(b)
		if len(matches) == 0 {
			break
		}

		if r.MaxRounds > 0 && rounds >= r.MaxRounds {
			return MoveResult[T]{Board: b, Effects: effects},
				fmt.Errorf("%w after %d rounds", ErrCascadeLimit, rounds)
		}

		next, err := resolveRound(gen, b, matches)
		if err != nil {
			return MoveResult[T]{Board: b, Effects: effects},
				fmt.Errorf("refill round %d: %w", rounds+1, err)
		}

		// Commit the completed round
		copy(b.cells, next.cells)
		for _, m := range matches {
			effects = append(effects, MatchEffect(m))
		}
		effects = append(effects, RefillEffect[T]())
		rounds++
	}

	return MoveResult[T]{Board: b, Effects: effects}, nil
}

// resolveRound clears matches, applies gravity and refills on a copy of b.
func resolveRound[T comparable](gen Generator[T], b *Board[T], matches []Match[T]) (*Board[T], error) {
	g := newHoleGrid(b)

	for _, m := range matches {
		for _, p := range m.Positions {
			g.clear(p)
		}
	}

	for col := 0; col < b.width; col++ {
		g.shift(col)
	}

	if err := g.refill(gen); err != nil {
		return nil, err
	}

	return g.board, nil
}

// holeGrid is a board copy that may contain empty cells mid-round.
type holeGrid[T comparable] struct {
	board *Board[T]
	empty []bool
}

func newHoleGrid[T comparable](b *Board[T]) *holeGrid[T] {
	return &holeGrid[T]{
		board: b.Clone(),
		empty: make([]bool, len(b.cells)),
	}
}

// clear empties the cell at p. Clearing twice is harmless.
func (g *holeGrid[T]) clear(p Position) {
	var zero T
	i := g.board.index(p)
	g.board.cells[i] = zero
	g.empty[i] = true
}

// shift compacts the filled cells of a column downward, keeping their order.
// Empty cells end up at the top of the column.
func (g *holeGrid[T]) shift(col int) {
	var zero T
	write := g.board.height - 1
	for row := g.board.height - 1; row >= 0; row-- {
		i := g.board.index(P(row, col))
		if g.empty[i] {
			continue
		}
		if row != write {
			j := g.board.index(P(write, col))
			g.board.cells[j] = g.board.cells[i]
			g.empty[j] = false
			g.board.cells[i] = zero
			g.empty[i] = true
		}
		write--
	}
}

// refill drops generated values into the board until no cell is empty.
// Each sweep draws one value for every column whose top cell is empty, left
// to right, then lets the new values fall to the lowest empty cell of their
// column. A column is full after at most height sweeps.
func (g *holeGrid[T]) refill(gen Generator[T]) error {
	for range g.board.height {
		placed := false
		for col := 0; col < g.board.width; col++ {
			top := g.board.index(P(0, col))
			if !g.empty[top] {
				continue
			}
			v, err := next(gen)
			if err != nil {
				return err
			}
			g.board.cells[top] = v
			g.empty[top] = false
			g.shift(col)
			placed = true
		}
		if !placed {
			return nil
		}
	}
	return nil
}
