package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"scribbles/app/routes"
	"scribbles/app/services"
	"scribbles/config"

	"github.com/spf13/cobra"
)

// NewServeCommand creates the serve command.
func NewServeCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the blog HTTP API",
		Long: `Open the configured store, seed it when empty and serve the JSON API
until SIGINT or SIGTERM.

Example:
  scribbles serve
  scribbles serve --driver sqlite --config ./config.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, opts.Config, opts.Logger, nil)
		},
	}
}

// runServe serves until ctx is done. When ready is non-nil it receives the
// bound listener address once the server accepts connections.
func runServe(ctx context.Context, cfg *config.Config, logger *slog.Logger, ready chan<- string) error {
	repo, err := openRepository(cfg, logger)
	if err != nil {
		return err
	}
	defer repo.Close()

	blog := services.NewBlogContext(repo, logger, services.WithSeeding(cfg.Seed.Enabled))
	if err := blog.Init(); err != nil {
		return err
	}

	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      routes.SetupRoutes(blog, logger),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	listener, err := net.Listen("tcp", cfg.Server.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", cfg.Server.Addr, err)
	}
	logger.Info("starting blog service",
		"addr", listener.Addr().String(),
		"driver", cfg.Storage.Driver,
		"namespace", cfg.App.Name,
	)
	if ready != nil {
		ready <- listener.Addr().String()
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Serve(listener)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down blog service")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
