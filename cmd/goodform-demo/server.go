package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/goodform/pkg/logger"
)

var (
	errStart    = errors.New("failed to start HTTP server")
	errShutdown = errors.New("failed to shutdown HTTP server gracefully")
)

// serve runs handler until ctx ends, then drains in-flight requests for at
// most cfg.ShutdownTimeout.
func serve(ctx context.Context, log *slog.Logger, cfg serverConfig, handler http.Handler) error {
	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	log.InfoContext(ctx, "http server started", slog.String("addr", cfg.Addr))

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return errors.Join(errStart, err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.ErrorContext(ctx, "http server shutdown", logger.Error(err))
		return errors.Join(errShutdown, err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Join(errStart, err)
	}

	log.InfoContext(ctx, "http server stopped")
	return nil
}

func healthcheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ALIVE"))
}
