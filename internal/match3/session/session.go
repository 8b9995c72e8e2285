// Package session layers game policy over the match3 engine: selection,
// scoring, a move limit and a message log. The engine itself stays unaware
// of any of these.
package session

import (
	"errors"
	"fmt"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/match3/internal/logging"
	"github.com/vovakirdan/match3/internal/match3/core"
)

// ErrGameOver is returned by Move once the move limit has been reached.
var ErrGameOver = errors.New("game over")

// CantMove is the message recorded for a rejected swap.
const CantMove = "Can't move"

// Rules is the scoring and move-limit policy.
type Rules struct {
	PointsPerMatch int
	MaxMoves       int // 0 = unlimited
}

// DefaultRules returns the rules used when none are given.
func DefaultRules() Rules {
	return Rules{PointsPerMatch: 10}
}

type options struct {
	id        string
	rules     Rules
	logger    *log.Logger
	maxRounds int
}

// Option configures a Session.
type Option func(*options)

// WithRules sets the scoring and move-limit rules.
func WithRules(r Rules) Option {
	return func(o *options) { o.rules = r }
}

// WithLogger sets the logger. The session adds its ID as a field.
func WithLogger(l *log.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithMaxRounds caps cascade rounds per move.
func WithMaxRounds(n int) Option {
	return func(o *options) { o.maxRounds = n }
}

// WithID overrides the generated session ID.
func WithID(id string) Option {
	return func(o *options) { o.id = id }
}

type subscriber struct {
	id int
	fn func(Event)
}

// Session drives one game on a board.
// A Session is not safe for concurrent use.
type Session[T comparable] struct {
	id       string
	board    *core.Board[T]
	gen      core.Generator[T]
	resolver core.Resolver[T]
	rules    Rules
	logger   *log.Logger

	selected []core.Position
	messages []string
	subs     []subscriber
	nextSub  int

	score int
	moves int
	ended bool
}

// New starts a session on board, refilling from gen.
func New[T comparable](board *core.Board[T], gen core.Generator[T], opts ...Option) *Session[T] {
	o := options{rules: DefaultRules()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.id == "" {
		o.id = uuid.NewString()
	}
	if o.logger == nil {
		o.logger = logging.Discard()
	}

	return &Session[T]{
		id:       o.id,
		board:    board,
		gen:      gen,
		resolver: core.Resolver[T]{MaxRounds: o.maxRounds},
		rules:    o.rules,
		logger:   o.logger.With("session", o.id),
	}
}

// ID returns the session identifier.
func (s *Session[T]) ID() string {
	return s.id
}

// Board returns the live board.
func (s *Session[T]) Board() *core.Board[T] {
	return s.board
}

// Rules returns the active rules.
func (s *Session[T]) Rules() Rules {
	return s.rules
}

// Score returns the accumulated score.
func (s *Session[T]) Score() int {
	return s.score
}

// Moves returns the number of legal moves played.
func (s *Session[T]) Moves() int {
	return s.moves
}

// MovesLeft returns the remaining moves, or -1 without a limit.
func (s *Session[T]) MovesLeft() int {
	if s.rules.MaxMoves <= 0 {
		return -1
	}
	return max(s.rules.MaxMoves-s.moves, 0)
}

// Messages returns a copy of the message log.
func (s *Session[T]) Messages() []string {
	return slices.Clone(s.messages)
}

// Subscribe registers fn for every subsequent event and returns a function
// that removes it again.
func (s *Session[T]) Subscribe(fn func(Event)) (unsubscribe func()) {
	id := s.nextSub
	s.nextSub++
	s.subs = append(s.subs, subscriber{id: id, fn: fn})

	return func() {
		s.subs = slices.DeleteFunc(s.subs, func(sub subscriber) bool {
			return sub.id == id
		})
	}
}

func (s *Session[T]) emit(e Event) {
	for _, sub := range slices.Clone(s.subs) {
		sub.fn(e)
	}
}

// Select adds p to the selection. Off-board and already selected
// positions are ignored.
func (s *Session[T]) Select(p core.Position) {
	if !s.board.InBounds(p) || s.IsSelected(p) {
		return
	}
	s.selected = append(s.selected, p)
	s.emit(SelectionChanged{Selection: s.Selection()})
}

// Unselect removes p from the selection.
func (s *Session[T]) Unselect(p core.Position) {
	if !s.IsSelected(p) {
		return
	}
	s.selected = slices.DeleteFunc(s.selected, func(q core.Position) bool {
		return q == p
	})
	s.emit(SelectionChanged{Selection: s.Selection()})
}

// IsSelected reports whether p is selected.
func (s *Session[T]) IsSelected(p core.Position) bool {
	return slices.Contains(s.selected, p)
}

// Selection returns the selected positions in selection order.
func (s *Session[T]) Selection() []core.Position {
	return slices.Clone(s.selected)
}

// Click toggles p. Selecting a second position attempts the swap of both,
// recording CantMove when it is illegal, and clears the selection either way.
func (s *Session[T]) Click(p core.Position) error {
	if s.IsSelected(p) {
		s.Unselect(p)
		return nil
	}

	s.Select(p)
	if len(s.selected) != 2 {
		return nil
	}

	first, second := s.selected[0], s.selected[1]
	var err error
	if s.board.CanMove(first, second) {
		_, err = s.Move(first, second)
	} else {
		s.AddMessage(CantMove)
	}
	s.Unselect(first)
	s.Unselect(second)
	return err
}

// AddMessage appends a message to the log.
func (s *Session[T]) AddMessage(msg string) {
	s.messages = append(s.messages, msg)
	s.emit(MessageAdded{Message: msg})
}

// Move plays the swap of a and b.
//
// An illegal swap leaves the board untouched, records CantMove and does not
// count as a move. Matches completed before a cascade error are still scored.
func (s *Session[T]) Move(a, b core.Position) (core.MoveResult[T], error) {
	if s.limitReached() {
		return core.MoveResult[T]{Board: s.board}, ErrGameOver
	}

	swap := core.Swap{A: a, B: b}
	res, err := s.resolver.Move(s.gen, s.board, a, b)
	if len(res.Effects) == 0 && err == nil {
		s.logger.Debug("illegal move", "swap", swap)
		s.AddMessage(CantMove)
		return res, nil
	}

	s.moves++
	delta := s.apply(res.Effects)
	if delta > 0 {
		s.score += delta
		s.emit(ScoreChanged{Score: s.score, Delta: delta})
	}

	if err != nil {
		s.logger.Error("move failed", "swap", swap, "rounds", res.Rounds(), "error", err)
		s.checkGameOver()
		return res, fmt.Errorf("move %s: %w", swap, err)
	}

	s.logger.Info("move",
		"swap", swap,
		"matches", len(res.Matches()),
		"rounds", res.Rounds(),
		"score", s.score,
	)
	s.checkGameOver()
	return res, nil
}

// checkGameOver sends GameOver the first time the session is over.
func (s *Session[T]) checkGameOver() {
	reason := s.overReason()
	if reason == GameOverNone || s.ended {
		return
	}
	s.ended = true
	s.logger.Info("game over", "reason", reason, "score", s.score, "moves", s.moves)
	s.emit(GameOver{Reason: reason, Score: s.score, Moves: s.moves})
}

// apply reports effects to subscribers and returns the points earned.
func (s *Session[T]) apply(effects []core.Effect[T]) int {
	points := 0
	round := 0
	for _, e := range effects {
		switch e.Kind {
		case core.EffectMatch:
			s.logger.Debug("match", "value", e.Match.Value, "positions", len(e.Match.Positions))
			points += s.rules.PointsPerMatch
			s.AddMessage(e.Match.String())
			s.emit(Matched[T]{Match: e.Match, Points: s.rules.PointsPerMatch})
		case core.EffectRefill:
			round++
			s.logger.Debug("refill", "round", round)
			s.emit(Refilled{Round: round})
		}
	}
	return points
}

func (s *Session[T]) limitReached() bool {
	return s.rules.MaxMoves > 0 && s.moves >= s.rules.MaxMoves
}

func (s *Session[T]) overReason() GameOverReason {
	switch {
	case s.limitReached():
		return GameOverMovesExhausted
	case !core.HasLegalMove(s.board):
		return GameOverNoLegalMoves
	default:
		return GameOverNone
	}
}

// Over reports whether the game has ended: the move limit is reached or
// no legal swap remains.
func (s *Session[T]) Over() bool {
	return s.overReason() != GameOverNone
}

// Snapshot captures the session state for tests and the CLI.
type Snapshot[T comparable] struct {
	ID        string
	Board     [][]T
	Score     int
	Moves     int
	MovesLeft int // -1 when unlimited
	Selection []core.Position
	Messages  []string
	Over      bool
	Reason    GameOverReason
}

// Snapshot returns a copy of the current state.
func (s *Session[T]) Snapshot() Snapshot[T] {
	reason := s.overReason()
	return Snapshot[T]{
		ID:        s.id,
		Board:     s.board.Rows(),
		Score:     s.score,
		Moves:     s.moves,
		MovesLeft: s.MovesLeft(),
		Selection: s.Selection(),
		Messages:  s.Messages(),
		Over:      reason != GameOverNone,
		Reason:    reason,
	}
}
