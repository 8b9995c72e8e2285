package core

import (
	"errors"
	"fmt"
)

// ErrGenerator wraps any failure of a Generator surfaced by the engine.
var ErrGenerator = errors.New("generator failed")

// Generator produces tile values on demand.
// It is stateful and called synchronously; it must not block.
type Generator[T comparable] interface {
	Next() (T, error)
}

// GeneratorFunc adapts a function to the Generator interface.
type GeneratorFunc[T comparable] func() (T, error)

// Next calls f.
func (f GeneratorFunc[T]) Next() (T, error) {
	return f()
}

// next pulls one value and wraps the failure with ErrGenerator.
func next[T comparable](gen Generator[T]) (T, error) {
	v, err := gen.Next()
	if err != nil {
		var zero T
		return zero, fmt.Errorf("%w: %w", ErrGenerator, err)
	}
	return v, nil
}
