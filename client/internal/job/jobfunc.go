// Package job adapts plain closures into runnable units for the client's
// asynchronous call helpers.
package job

import (
	"context"
	"errors"
	"fmt"
)

// ErrNilJobFunc is returned when a Func is nil.
var ErrNilJobFunc = errors.New("nil JobFunc")

// Func is a closure producing a value of type T.
type Func[T any] func(context.Context) (T, error)

// Run invokes f, refusing nil closures and cancelled contexts.
func (f Func[T]) Run(ctx context.Context) (T, error) {
	var zero T
	if f == nil {
		return zero, fmt.Errorf("jobfunc: %w", ErrNilJobFunc)
	}
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	return f(ctx)
}

// New creates a Func from a closure.
func New[T any](fn func(context.Context) (T, error)) Func[T] {
	return Func[T](fn)
}
