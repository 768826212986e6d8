package goodform

import (
	"context"
	"slices"
	"time"

	"github.com/dmitrymomot/goodform/pkg/async"
	"github.com/dmitrymomot/goodform/pkg/logger"
	"github.com/dmitrymomot/goodform/pkg/remote"
)

// Flight is one remote validation round trip.
type Flight struct {
	batch remote.Batch
	done  <-chan struct{}
	err   error
}

// Batch returns what was sent.
func (f *Flight) Batch() remote.Batch {
	return f.batch
}

// Done is closed once the results have been merged, or the failure handled.
func (f *Flight) Done() <-chan struct{} {
	return f.done
}

// Wait blocks until the flight has settled and returns the transport error,
// if any. It returns ctx.Err() when ctx ends first.
func (f *Flight) Wait(ctx context.Context) error {
	select {
	case <-f.done:
		return f.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Flush sends the pending batch and reports whether every field in the
// ResponseMap is valid, which is false while anything is pending.
//
// With a non-empty batch the batch is swapped for an empty one, its fields
// are reported pending together with the other current entries, and one round
// trip starts. Its results are merged when it settles. With an empty batch
// the current entries are reported and no round trip is made.
func (e *Engine) Flush(ctx context.Context, opts ...CallOption) bool {
	valid, _ := e.flush(ctx, newCallOptions(opts).silent)
	return valid
}

func (e *Engine) flush(ctx context.Context, silent bool) (bool, *Flight) {
	e.mu.Lock()
	if e.batch.IsEmpty() {
		statuses := e.responses.snapshot()
		valid := e.responses.allValid()
		e.mu.Unlock()

		if !silent {
			e.report(statuses)
		}
		return valid, nil
	}

	batch := *e.batch
	e.batch = remote.NewBatch()
	for _, field := range batch.Fields {
		e.responses.set(field, Pending())
	}
	statuses := e.responses.snapshot()
	if e.inflight == 0 {
		e.idle = make(chan struct{})
	}
	e.inflight++
	e.mu.Unlock()

	if !silent {
		e.report(statuses)
	}
	return false, e.send(ctx, batch, silent)
}

// send starts the round trip. The merge step runs on the completion
// goroutine and is the only place results enter the ResponseMap.
func (e *Engine) send(ctx context.Context, batch remote.Batch, silent bool) *Flight {
	ctx = logger.WithBatchID(ctx, batch.ID)
	flight := &Flight{batch: batch}
	started := time.Now()

	e.logger.DebugContext(ctx, "remote validation issued",
		logger.BatchID(batch.ID),
		logger.BatchSize(batch.Len()),
		logger.Fields(batch.Fields),
	)

	future := async.Async(ctx, batch, e.check)
	flight.done = future.Then(func(results remote.Results, err error) {
		defer e.flightDone()
		flight.err = err
		e.settle(ctx, batch, results, err, silent, time.Since(started))
	})
	return flight
}

func (e *Engine) check(ctx context.Context, batch remote.Batch) (remote.Results, error) {
	if e.transport == nil {
		return nil, ErrNoTransport
	}
	return e.transport.Check(ctx, batch)
}

// settle merges a completed round trip. Failed round trips leave their fields
// pending. Entries are merged into whatever ResponseMap is current, which may
// belong to a newer validation pass.
func (e *Engine) settle(ctx context.Context, batch remote.Batch, results remote.Results, err error, silent bool, took time.Duration) {
	if err != nil {
		e.logger.WarnContext(ctx, "remote validation failed, fields stay pending",
			logger.BatchID(batch.ID),
			logger.Fields(batch.Fields),
			logger.Duration(took),
			logger.Error(err),
		)
		if e.onFailure != nil {
			e.onFailure(batch, err)
		}
		return
	}

	e.mu.Lock()
	statuses := make([]fieldStatus, 0, len(results))
	for _, field := range resultOrder(batch.Fields, results) {
		st := e.statusFromResult(field, results[field])
		e.responses.set(field, st)
		statuses = append(statuses, fieldStatus{field: field, status: st})
	}
	e.mu.Unlock()

	e.logger.DebugContext(ctx, "remote validation settled",
		logger.BatchID(batch.ID),
		logger.BatchSize(len(statuses)),
		logger.Duration(took),
	)

	if !silent {
		e.report(statuses)
	}
}

// statusFromResult must be called with e.mu held.
func (e *Engine) statusFromResult(field string, r remote.Result) Status {
	if !r.IsValid() {
		return Invalid(r.Errors...)
	}
	if r.Message != "" {
		return Valid(r.Message)
	}
	return Valid(e.validMessageFor(field))
}

// resultOrder lists batch fields present in results first, in batch order,
// then any other result keys sorted.
func resultOrder(batchFields []string, results remote.Results) []string {
	order := make([]string, 0, len(results))
	for _, field := range batchFields {
		if _, ok := results[field]; ok {
			order = append(order, field)
		}
	}
	var extra []string
	for field := range results {
		if !slices.Contains(batchFields, field) {
			extra = append(extra, field)
		}
	}
	slices.Sort(extra)
	return append(order, extra...)
}

// Wait blocks until no round trip is in flight.
func (e *Engine) Wait(ctx context.Context) error {
	e.mu.Lock()
	idle := e.idle
	e.mu.Unlock()
	if idle == nil {
		return nil
	}

	select {
	case <-idle:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (e *Engine) flightDone() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.inflight--
	if e.inflight == 0 {
		close(e.idle)
		e.idle = nil
	}
}
