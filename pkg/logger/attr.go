package logger

import (
	"log/slog"
	"strconv"
	"time"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error records err under the key "error". A nil err yields an empty Attr,
// so call sites need no nil check.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Field records a form field name under the key "field".
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// Fields records several field names under the key "fields".
func Fields(names []string) slog.Attr {
	return slog.Any("fields", names)
}

// Scope records the form scope. An empty scope yields an empty Attr.
func Scope(scope string) slog.Attr {
	if scope == "" {
		return slog.Attr{}
	}
	return slog.String("scope", scope)
}

// BatchID records the remote batch identifier under the key "batch_id".
// An empty id yields an empty Attr.
func BatchID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("batch_id", id)
}

func BatchSize(n int) slog.Attr {
	return slog.Int("batch_size", n)
}

// State records a validation state name under the key "state".
func State(name string) slog.Attr {
	return slog.String("state", name)
}

func Attempt(n int) slog.Attr {
	return slog.Int("attempt", n)
}
