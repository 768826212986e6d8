package async

import (
	"context"
	"time"
)

// Future represents the result of an asynchronous computation.
type Future[U any] struct {
	result U
	err    error
	done   chan struct{}
}

// Await blocks until the computation completes or ctx ends, whichever comes first.
// Ending ctx does not stop the computation; it only stops waiting for it.
func (f *Future[U]) Await(ctx context.Context) (U, error) {
	select {
	case <-f.done:
		return f.result, f.err
	case <-ctx.Done():
		var zero U
		return zero, ctx.Err()
	}
}

// AwaitWithTimeout waits for the asynchronous function to complete with a timeout.
// If the timeout occurs before completion, returns ErrTimeout.
func (f *Future[U]) AwaitWithTimeout(timeout time.Duration) (U, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-f.done:
		return f.result, f.err
	case <-timer.C:
		var zero U
		return zero, ErrTimeout
	}
}

// Done returns a channel closed once the computation has completed.
func (f *Future[U]) Done() <-chan struct{} {
	return f.done
}

// IsComplete checks if the asynchronous function is complete without blocking.
func (f *Future[U]) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Then registers fn to run once the computation completes. fn runs on its own
// goroutine and receives the same result and error Await would return.
// The returned channel is closed after fn has returned.
func (f *Future[U]) Then(fn func(U, error)) <-chan struct{} {
	finished := make(chan struct{})
	go func() {
		defer close(finished)
		<-f.done
		fn(f.result, f.err)
	}()
	return finished
}

// Async executes fn asynchronously and returns a Future for its result.
func Async[T any, U any](ctx context.Context, param T, fn func(context.Context, T) (U, error)) *Future[U] {
	f := &Future[U]{done: make(chan struct{})}

	// Pre-cancelled context completes the future without starting the work.
	if err := ctx.Err(); err != nil {
		f.err = err
		close(f.done)
		return f
	}

	go func() {
		defer close(f.done)
		f.result, f.err = fn(ctx, param)
	}()

	return f
}
