package remote

import (
	"log/slog"
	"net/http"
	"time"
)

// Attempt describes one round trip attempt.
type Attempt struct {
	BatchID    string
	Number     int
	StatusCode int
	Duration   time.Duration
	Err        error
}

// AttemptHook is called after every attempt, including retries.
type AttemptHook func(Attempt)

type clientOptions struct {
	httpClient *http.Client
	timeout    time.Duration
	headers    map[string]string

	maxRetries int
	backoff    BackoffStrategy
	breaker    *CircuitBreaker

	metrics   *Metrics
	logger    *slog.Logger
	onAttempt AttemptHook
}

func defaultClientOptions() *clientOptions {
	return &clientOptions{
		timeout: 10 * time.Second,
		headers: make(map[string]string),
		backoff: DefaultBackoffStrategy(),
	}
}

// ClientOption configures a Client.
type ClientOption func(*clientOptions)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(o *clientOptions) {
		if client != nil {
			o.httpClient = client
		}
	}
}

// WithTimeout bounds each attempt. Default is 10 seconds; zero disables the
// per-attempt timeout, leaving only the caller's context.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(o *clientOptions) {
		if timeout >= 0 {
			o.timeout = timeout
		}
	}
}

// WithHeader adds a header to every request.
func WithHeader(key, value string) ClientOption {
	return func(o *clientOptions) {
		if key != "" && value != "" {
			o.headers[key] = value
		}
	}
}

// WithMaxRetries sets how many times a failed round trip is retried.
// Default is 0.
func WithMaxRetries(n int) ClientOption {
	return func(o *clientOptions) {
		if n >= 0 {
			o.maxRetries = n
		}
	}
}

// WithBackoff sets the delay strategy between retries.
func WithBackoff(strategy BackoffStrategy) ClientOption {
	return func(o *clientOptions) {
		if strategy != nil {
			o.backoff = strategy
		}
	}
}

// WithCircuitBreaker guards the endpoint with cb.
func WithCircuitBreaker(cb *CircuitBreaker) ClientOption {
	return func(o *clientOptions) {
		o.breaker = cb
	}
}

// WithMetrics records round trips on m.
func WithMetrics(m *Metrics) ClientOption {
	return func(o *clientOptions) {
		o.metrics = m
	}
}

// WithLogger logs failed attempts at debug level.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(o *clientOptions) {
		o.logger = logger
	}
}

// WithOnAttempt registers a hook called after every attempt.
func WithOnAttempt(hook AttemptHook) ClientOption {
	return func(o *clientOptions) {
		o.onAttempt = hook
	}
}
