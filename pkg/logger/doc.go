// Package logger builds the slog loggers used across goodform.
//
// New creates a *slog.Logger from functional options: output format, level,
// static attributes and ContextExtractor callbacks that copy values out of the
// logging context into every record.
//
//	log := logger.New(
//		logger.WithEnvironment("production", "signup-form"),
//		logger.WithContextExtractors(logger.BatchIDExtractor),
//	)
//
//	ctx = logger.WithBatchID(ctx, batch.ID)
//	log.InfoContext(ctx, "remote validation settled", logger.Fields(batch.Fields))
//
// The attribute helpers in attr.go keep key names consistent: Field, Scope,
// BatchID, BatchSize, State, Attempt, Component, Duration. Error and Errors
// return an empty attribute for nil errors so call sites need no nil check.
//
// Components that accept a logger default to Discard.
package logger
