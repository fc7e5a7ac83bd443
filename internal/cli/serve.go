package cli

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"sync"
	"syscall"
	"time"
	"tour-booking-service/internal/server"

	"github.com/spf13/cobra"
)

const shutdownTimeout = 30 * time.Second

func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	var noPoller bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the payment poller",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), rootOpts, !noPoller)
		},
	}

	cmd.Flags().BoolVar(&noPoller, "no-poller", false, "do not run the background payment poller")

	return cmd
}

func runServe(ctx context.Context, opts *RootOptions, withPoller bool) error {
	cfg, logger := opts.Config, opts.Logger

	a, err := newApp(cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	var wg sync.WaitGroup
	if withPoller && cfg.Poller.Enabled {
		wg.Add(1)
		go func() {
			defer wg.Done()
			logger.Info("starting payment poller", "interval", cfg.Poller.Interval)
			a.payments.RunPoller(ctx, cfg.Poller.Interval)
		}()
	}

	srv := server.NewServer(a.payments, a.catalog, a.notifications, cfg.Auth.JWTSecret, logger)
	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	errCh := make(chan error, 1)
	logger.Info("starting HTTP server", "addr", serverAddr)
	go func() {
		if err := srv.Start(serverAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("signal received, starting graceful shutdown")
	case err := <-errCh:
		stop()
		wg.Wait()
		return err
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	err = srv.Shutdown(shutdownCtx)
	wg.Wait()
	return err
}
