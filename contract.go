package goodform

import (
	"context"

	"github.com/dmitrymomot/goodform/pkg/remote"
)

// ValueSource resolves the current values of a field. An empty scope searches
// every scope. ok is false when the field does not exist, which differs from
// a field with no values.
type ValueSource interface {
	Values(scope, field string) (values []string, ok bool)
}

// Transport performs one remote validation round trip. *remote.Client
// implements it.
type Transport interface {
	Check(ctx context.Context, batch remote.Batch) (remote.Results, error)
}

// Presenter renders field statuses. Report may be called from the goroutine
// that settles a round trip, so implementations must be safe for concurrent use.
type Presenter interface {
	Report(field string, status Status)
}

// PresenterFunc adapts a function to Presenter.
type PresenterFunc func(field string, status Status)

func (f PresenterFunc) Report(field string, status Status) { f(field, status) }

// FailureHandler is called when a round trip fails. The batch's fields stay
// pending; the handler may revalidate them or surface the failure.
type FailureHandler func(batch remote.Batch, err error)
