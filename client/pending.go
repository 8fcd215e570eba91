package client

import (
	"context"

	"github.com/Reksit/Hack4.0/client/internal/job"
)

// Pending is the handle of a call started with Go.
type Pending[T any] struct {
	done chan struct{}
	val  T
	err  error
}

// Go starts fn on its own goroutine and returns immediately. Calls started
// this way are independent: no ordering between them, and one failing has
// no effect on another.
//
//	p := client.Go(ctx, func(ctx context.Context) ([]client.Assessment, error) {
//		return c.Assessments().GetByStudent(ctx, studentID)
//	})
//	list, err := p.Await(ctx)
func Go[T any](ctx context.Context, fn func(context.Context) (T, error)) *Pending[T] {
	p := &Pending[T]{done: make(chan struct{})}
	j := job.New(fn)
	go func() {
		defer close(p.done)
		p.val, p.err = j.Run(ctx)
	}()
	return p
}

// Done is closed once the call has finished.
func (p *Pending[T]) Done() <-chan struct{} { return p.done }

// Await blocks until the call finishes or ctx is done. Giving up on ctx
// does not cancel the call; cancel the context passed to Go for that.
func (p *Pending[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-p.done:
		return p.val, p.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
