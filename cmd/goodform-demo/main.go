// Command goodform-demo serves a signup form validated live over datastar.
//
// Routes:
//
//	POST /signup/live[/{field}]  streams field status patches (SSE)
//	POST /signup                 validates the whole form, answers JSON
//	GET  /validate               remote check endpoint (goodform wire protocol)
//	GET  /metrics                prometheus metrics
//	GET  /healthz                liveness probe
//
// Configuration comes from the environment and an optional .env file. Without
// GOODFORM_REMOTE_URL the remote checks are answered in-process.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/goodform/pkg/config"
	"github.com/dmitrymomot/goodform/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load[appConfig](config.WithOptionalFiles(".env"))
	if err != nil {
		return err
	}

	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env, "goodform-demo"),
		logger.WithContextExtractors(logger.BatchIDExtractor),
		logger.WithContextValue("request_id", middleware.RequestIDKey),
	}
	if cfg.LogLevel != "" {
		opts = append(opts, logger.WithLevelName(cfg.LogLevel))
	}
	log := logger.New(opts...)
	logger.SetAsDefault(log)

	a, err := newApp(log, cfg.Form)
	if err != nil {
		return err
	}
	return serve(ctx, log, cfg.HTTP, a.routes())
}
