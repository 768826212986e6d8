package goodform_test

import (
	"context"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/goodform"
	"github.com/dmitrymomot/goodform/pkg/fields"
	"github.com/dmitrymomot/goodform/pkg/presenter"
	"github.com/dmitrymomot/goodform/pkg/remote"
)

// fakeTransport records batches and answers them with respond. Without
// respond every batched field comes back valid.
type fakeTransport struct {
	mu      sync.Mutex
	batches []remote.Batch
	respond func(remote.Batch) (remote.Results, error)
}

func (f *fakeTransport) Check(_ context.Context, b remote.Batch) (remote.Results, error) {
	f.mu.Lock()
	f.batches = append(f.batches, b)
	respond := f.respond
	f.mu.Unlock()

	if respond != nil {
		return respond(b)
	}
	results := make(remote.Results, len(b.Fields))
	for _, field := range b.Fields {
		results[field] = remote.Result{}
	}
	return results, nil
}

func (f *fakeTransport) Batches() []remote.Batch {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.batches)
}

func answer(results remote.Results) func(remote.Batch) (remote.Results, error) {
	return func(remote.Batch) (remote.Results, error) { return results, nil }
}

func newEngine(t *testing.T, src *fields.Source, opts ...goodform.Option) (*goodform.Engine, *presenter.Recorder) {
	t.Helper()
	rec := presenter.NewRecorder()
	opts = append([]goodform.Option{goodform.WithSource(src), goodform.WithPresenter(rec)}, opts...)
	return goodform.New(opts...), rec
}

func wait(t *testing.T, e *goodform.Engine) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, e.Wait(ctx))
}
