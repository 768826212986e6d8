package remote

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"sync"

	"github.com/dmitrymomot/goodform/pkg/logger"
)

// Checker decides the verdict for one field. values are the field's values
// from the query; query carries every parameter, Include values among them.
type Checker func(ctx context.Context, values []string, query url.Values) Result

// Handler answers remote validation requests. Safe for concurrent use;
// register checkers before serving.
type Handler struct {
	mu       sync.RWMutex
	checkers map[string]Checker
	log      *slog.Logger
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithHandlerLogger logs each answered batch at debug level.
func WithHandlerLogger(log *slog.Logger) HandlerOption {
	return func(h *Handler) {
		if log != nil {
			h.log = log
		}
	}
}

// NewHandler returns a handler with no checkers.
func NewHandler(opts ...HandlerOption) *Handler {
	h := &Handler{
		checkers: make(map[string]Checker),
		log:      logger.Discard(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Handle registers the checker for field, replacing any previous one.
func (h *Handler) Handle(field string, check Checker) {
	if field == "" || check == nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.checkers[field] = check
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	query := r.URL.Query()
	results := h.Check(r.Context(), query)

	h.log.DebugContext(r.Context(), "remote validation answered",
		logger.BatchID(r.Header.Get("X-Batch-ID")),
		logger.BatchSize(len(results)),
	)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(results); err != nil {
		h.log.ErrorContext(r.Context(), "failed to write remote validation response", logger.Error(err))
	}
}

// Check runs the registered checkers for every field present in query.
func (h *Handler) Check(ctx context.Context, query url.Values) Results {
	h.mu.RLock()
	checks := make(map[string]Checker, len(query))
	for field := range query {
		if check, ok := h.checkers[field]; ok {
			checks[field] = check
		}
	}
	h.mu.RUnlock()

	results := make(Results, len(checks))
	for field, check := range checks {
		results[field] = check(ctx, query[field], query)
	}
	return results
}
