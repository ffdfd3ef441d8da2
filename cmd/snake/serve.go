package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/snake/api"
	"github.com/lixenwraith/snake/log"
	"github.com/lixenwraith/snake/status"
	"github.com/lixenwraith/snake/store"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run a headless session behind the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, a)
		},
	}
}

func runServe(ctx context.Context, a *app) error {
	logger := setupServiceLogging(a.cfg.Log.Level)

	st, err := store.Open(a.cfg.Store, logger.With().Str(log.FieldComponent, "store").Logger())
	if err != nil {
		return err
	}
	defer st.Close()

	metrics := status.NewRegistry(nil)
	ctrl := newController(a.cfg, st, logger, metrics)
	defer ctrl.Close()

	g, gctx := errgroup.WithContext(ctx)

	srv := &http.Server{
		Addr: a.cfg.HTTP.Addr,
		Handler: api.NewRouter(ctrl, metrics,
			logger.With().Str(log.FieldComponent, "api").Logger(),
			api.WithRateLimit(a.cfg.HTTP.RateLimit, time.Second)),
		ReadHeaderTimeout: 5 * time.Second,
		// Streams end when the group stops
		BaseContext: func(net.Listener) context.Context { return gctx },
	}

	g.Go(func() error { return ctrl.Run(gctx) })

	g.Go(func() error {
		logger.Info().Str("addr", srv.Addr).Msg("http api listening")
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		logger.Info().Msg("shutting down")
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
