// Package generators provides tile generators for the match3 engine.
// Each kind registers a factory with the registry package.
package generators

import (
	"errors"
	"strings"
)

// ErrEmptySequence is returned when a generator is built without values.
var ErrEmptySequence = errors.New("generators: empty sequence")

// Cyclic repeats a fixed sequence forever.
type Cyclic[T comparable] struct {
	values []T
	index  int
}

// NewCyclic creates a generator cycling through values.
func NewCyclic[T comparable](values ...T) (*Cyclic[T], error) {
	if len(values) == 0 {
		return nil, ErrEmptySequence
	}
	v := make([]T, len(values))
	copy(v, values)
	return &Cyclic[T]{values: v}, nil
}

// CyclicString cycles through the characters of s, e.g. "ABC" -> A, B, C, A, ...
func CyclicString(s string) (*Cyclic[string], error) {
	return NewCyclic(strings.Split(s, "")...)
}

// Next returns the next value in the cycle. It never fails.
func (c *Cyclic[T]) Next() (T, error) {
	v := c.values[c.index]
	c.index = (c.index + 1) % len(c.values)
	return v, nil
}
