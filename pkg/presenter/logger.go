package presenter

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/goodform"
	"github.com/dmitrymomot/goodform/pkg/logger"
)

// Logger writes every report to a slog.Logger. Invalid statuses are logged at
// info level, everything else at debug.
type Logger struct {
	log *slog.Logger
}

// NewLogger creates a logging presenter. A nil logger discards output.
func NewLogger(log *slog.Logger) *Logger {
	if log == nil {
		log = logger.Discard()
	}
	return &Logger{log: log.With(logger.Component("presenter"))}
}

// Report implements goodform.Presenter.
func (l *Logger) Report(field string, status goodform.Status) {
	level := slog.LevelDebug
	if status.IsInvalid() {
		level = slog.LevelInfo
	}

	attrs := []slog.Attr{
		logger.Field(field),
		logger.State(status.State.String()),
	}
	if status.Message != "" {
		attrs = append(attrs, slog.String("message", status.Message))
	}
	if len(status.Errors) > 0 {
		attrs = append(attrs, slog.Any("errors", status.Errors))
	}

	l.log.LogAttrs(context.Background(), level, "field status", attrs...)
}
