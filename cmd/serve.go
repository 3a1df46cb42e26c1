package main

import (
	"context"
	httpadapter "crowdfund/internal/adapter/http"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

func serveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serveRun(cmd.Context(), fromContext(cmd.Context()))
		},
	}
}

// serveRun starts the HTTP server and shuts it down gracefully on SIGINT
// or SIGTERM. The process exits with 128 plus the signal number.
func serveRun(ctx context.Context, rt *runtime) error {
	a, err := newApp(rt)
	if err != nil {
		return err
	}
	defer a.Close()
	logger := a.logger

	ctx, exitCode, stop := signalContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	journal, err := a.openJournal(ctx)
	if err != nil {
		return err
	}
	svc := a.useCase(journal)

	if health, err := svc.Health(ctx); err != nil {
		logger.Warn("ledger check failed", slog.Any("error", err))
	} else if !health.ModuleDeployed {
		logger.Warn("crowdfunding module not deployed",
			slog.String("address", health.ModuleAddress), slog.String("module", a.builder.ModuleName()))
	}

	var gatherer prometheus.Gatherer
	if a.cfg.Metrics.Enabled {
		gatherer = a.registry
	}
	handler := httpadapter.NewHandler(svc, logger, gatherer)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", a.cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(a.cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err = <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), a.cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
	return &exitError{code: exitCode()}
}

// signalContext returns a context canceled by the first of sigs. exitCode
// reports 128 plus the number of that signal, or 0 when none arrived.
func signalContext(parent context.Context, sigs ...os.Signal) (ctx context.Context, exitCode func() int, stop func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, sigs...)

	ctx, cancel := context.WithCancel(parent)
	var received atomic.Int32
	go func() {
		select {
		case value := <-quit:
			if s, ok := value.(syscall.Signal); ok {
				received.Store(int32(s))
			}
			cancel()
		case <-ctx.Done():
		}
	}()

	exitCode = func() int {
		if n := received.Load(); n != 0 {
			return 128 + int(n)
		}
		return 0
	}
	stop = func() {
		signal.Stop(quit)
		cancel()
	}
	return ctx, exitCode, stop
}
