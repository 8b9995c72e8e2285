package generators

import "errors"

// ErrExhausted is returned by Queue.Next when no values remain.
var ErrExhausted = errors.New("generators: queue exhausted")

// Queue hands out a finite list of scripted values in order.
type Queue[T comparable] struct {
	upcoming []T
}

// NewQueue creates a queue holding values.
func NewQueue[T comparable](values ...T) *Queue[T] {
	q := &Queue[T]{}
	q.Prepare(values...)
	return q
}

// Prepare appends values to the end of the queue.
func (q *Queue[T]) Prepare(values ...T) {
	q.upcoming = append(q.upcoming, values...)
}

// Remaining returns the number of values left.
func (q *Queue[T]) Remaining() int {
	return len(q.upcoming)
}

// Next removes and returns the first value, or ErrExhausted.
func (q *Queue[T]) Next() (T, error) {
	if len(q.upcoming) == 0 {
		var zero T
		return zero, ErrExhausted
	}
	v := q.upcoming[0]
	q.upcoming = q.upcoming[1:]
	return v, nil
}
