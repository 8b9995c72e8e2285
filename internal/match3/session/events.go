package session

import "github.com/vovakirdan/match3/internal/match3/core"

// Event is delivered to subscribers when session state changes.
type Event interface {
	sessionEvent()
}

// SelectionChanged is sent after a position is selected or unselected.
type SelectionChanged struct {
	Selection []core.Position
}

func (SelectionChanged) sessionEvent() {}

// Matched is sent for every match cleared by a move, in effect order.
type Matched[T comparable] struct {
	Match  core.Match[T]
	Points int
}

func (Matched[T]) sessionEvent() {}

// Refilled is sent when a cascade round has been committed.
type Refilled struct {
	Round int // 1-indexed within the move
}

func (Refilled) sessionEvent() {}

// ScoreChanged is sent once per scoring move.
type ScoreChanged struct {
	Score int
	Delta int
}

func (ScoreChanged) sessionEvent() {}

// MessageAdded is sent when a message is appended to the log.
type MessageAdded struct {
	Message string
}

func (MessageAdded) sessionEvent() {}

// GameOver is sent once, after the move that ended the game.
type GameOver struct {
	Reason GameOverReason
	Score  int
	Moves  int
}

func (GameOver) sessionEvent() {}

// GameOverReason describes why a session ended.
type GameOverReason int

const (
	GameOverNone           GameOverReason = iota
	GameOverMovesExhausted                // Move limit reached
	GameOverNoLegalMoves                  // Board has no legal swap left
)

func (r GameOverReason) String() string {
	switch r {
	case GameOverMovesExhausted:
		return "No moves left"
	case GameOverNoLegalMoves:
		return "No legal moves on the board"
	default:
		return "Playing"
	}
}
