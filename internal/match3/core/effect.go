package core

// EffectKind identifies the type of an Effect.
type EffectKind uint8

const (
	EffectMatch EffectKind = iota
	EffectRefill
)

// String returns the string representation of an effect kind.
func (k EffectKind) String() string {
	switch k {
	case EffectMatch:
		return "Match"
	case EffectRefill:
		return "Refill"
	default:
		return "Unknown"
	}
}

// Effect is one observable step of a cascade.
// Match is set only when Kind is EffectMatch.
type Effect[T comparable] struct {
	Kind  EffectKind
	Match Match[T]
}

// MatchEffect returns an effect reporting a cleared match.
func MatchEffect[T comparable](m Match[T]) Effect[T] {
	return Effect[T]{Kind: EffectMatch, Match: m}
}

// RefillEffect returns an effect marking the end of a refill round.
func RefillEffect[T comparable]() Effect[T] {
	return Effect[T]{Kind: EffectRefill}
}

// String returns "Match [...]: v" or "Refill".
func (e Effect[T]) String() string {
	if e.Kind == EffectMatch {
		return "Match " + e.Match.String()
	}
	return e.Kind.String()
}

// MoveResult is the outcome of a move: the board and the ordered effect log.
type MoveResult[T comparable] struct {
	Board   *Board[T]
	Effects []Effect[T]
}

// Matches returns the matches reported in the effect log, in order.
func (r MoveResult[T]) Matches() []Match[T] {
	var matches []Match[T]
	for _, e := range r.Effects {
		if e.Kind == EffectMatch {
			matches = append(matches, e.Match)
		}
	}
	return matches
}

// Rounds returns the number of completed refill rounds.
func (r MoveResult[T]) Rounds() int {
	return CountKind(r.Effects, EffectRefill)
}

// CountKind returns how many effects have the given kind.
func CountKind[T comparable](effects []Effect[T], kind EffectKind) int {
	n := 0
	for _, e := range effects {
		if e.Kind == kind {
			n++
		}
	}
	return n
}
