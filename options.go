package goodform

import "log/slog"

// Option configures an Engine.
type Option func(*Engine)

// WithSource sets where field values are read from.
func WithSource(source ValueSource) Option {
	return func(e *Engine) {
		if source != nil {
			e.source = source
		}
	}
}

// WithTransport sets the remote round trip implementation. Remote rules can
// only be registered when a transport is set.
func WithTransport(transport Transport) Option {
	return func(e *Engine) {
		if transport != nil {
			e.transport = transport
		}
	}
}

// WithPresenter sets the renderer that receives field statuses.
func WithPresenter(presenter Presenter) Option {
	return func(e *Engine) {
		e.presenter = presenter
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithValidMessage sets the default message of valid fields.
func WithValidMessage(message string) Option {
	return func(e *Engine) {
		e.validMessage = message
	}
}

// WithFailureHandler registers a callback for failed round trips.
func WithFailureHandler(handler FailureHandler) Option {
	return func(e *Engine) {
		e.onFailure = handler
	}
}

type callOptions struct {
	deferred  bool
	onlyLocal bool
	silent    bool
	scope     string
}

// CallOption tunes a single validation call.
type CallOption func(*callOptions)

// Defer queues the work without flushing and without resetting the
// ResponseMap, so several calls can share one round trip.
func Defer() CallOption {
	return func(o *callOptions) { o.deferred = true }
}

// OnlyLocal skips remote rules.
func OnlyLocal() CallOption {
	return func(o *callOptions) { o.onlyLocal = true }
}

// Silent suppresses Presenter reports.
func Silent() CallOption {
	return func(o *callOptions) { o.silent = true }
}

// InScope reads values from one form or container only.
func InScope(scope string) CallOption {
	return func(o *callOptions) { o.scope = scope }
}

func newCallOptions(opts []CallOption) callOptions {
	var o callOptions
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
