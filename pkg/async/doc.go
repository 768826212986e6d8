// Package async runs a single computation in its own goroutine and hands its
// result to whoever consumes it.
//
// Future is the eventual result of one asynchronous operation. Async starts the
// supplied function and returns a *Future immediately. The caller can block
// with Await (bounded by a context), poll with IsComplete, select on Done, or
// register a completion hook with Then.
//
// goodform uses a Future for every remote round trip: the transport call runs
// in the background, and the engine attaches a Then hook that merges the
// settled result into its response map. The hook is the only code path that
// consumes the result.
//
// # Usage
//
//	future := async.Async(ctx, batch, client.Check)
//	future.Then(func(res remote.Results, err error) {
//	    // merge res
//	})
//
//	res, err := future.Await(ctx)
//
// # Error Handling
//
// Await returns the callback error, or ctx.Err() when the waiting context ends
// first. AwaitWithTimeout returns ErrTimeout when the timeout elapses. A
// context that is already cancelled when Async is called completes the Future
// immediately with that context error without running the function.
package async
