package pac

import (
	"errors"
	"sync/atomic"
)

// ErrTaken is returned when a peripheral singleton is taken a second time.
var ErrTaken = errors.New("pac: peripherals already taken")

// Token hands out a value exactly once for the lifetime of the process.
//
// Token is safe for concurrent use.
type Token[T any] struct {
	taken atomic.Bool
	v     T
}

// NewToken returns a Token guarding v.
func NewToken[T any](v T) *Token[T] {
	return &Token[T]{v: v}
}

// Take returns the guarded value the first time it is called and ErrTaken
// on every later call.
func (t *Token[T]) Take() (T, error) {
	if t.taken.Swap(true) {
		var zero T
		return zero, ErrTaken
	}
	return t.v, nil
}

// Steal returns the guarded value regardless of whether it has been taken
// and marks it taken.
//
// The caller is responsible for not aliasing a register block that is owned
// elsewhere. It exists for panic and trap handlers that must reach a
// peripheral no matter what.
func (t *Token[T]) Steal() T {
	t.taken.Store(true)
	return t.v
}

// Taken reports whether the value has been handed out.
func (t *Token[T]) Taken() bool {
	return t.taken.Load()
}
