package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-extras/cobraflags"
	"github.com/spf13/cobra"

	"github.com/Lixing-Zhang/product-api/internal/config"
	"github.com/Lixing-Zhang/product-api/internal/server"
	"github.com/Lixing-Zhang/product-api/pkg/logger"
)

func newServeCommand() *cobra.Command {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE:  serveCommand,
	}

	cobraflags.RegisterMap(serveCmd, configFlags)
	return serveCmd
}

func serveCommand(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configFlags[configFlag].GetString())
	if err != nil {
		return err
	}

	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	listener, err := net.Listen("tcp", cfg.Addr())
	if err != nil {
		return fmt.Errorf("listen on %s: %w", cfg.Addr(), err)
	}

	return serve(ctx, cfg, listener, log)
}

// serve runs the API on listener until ctx is cancelled, then shuts down gracefully
func serve(ctx context.Context, cfg *config.Config, listener net.Listener, log *slog.Logger) error {
	log.Info("starting product api server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"log_level", cfg.LogLevel,
	)

	st, err := openStore(ctx, cfg.Database)
	if err != nil {
		_ = listener.Close()
		return fmt.Errorf("open database: %w", err)
	}
	defer func() {
		if err := st.close(); err != nil {
			log.Error("failed to close database", "error", err)
		}
	}()

	srv := &http.Server{
		Handler:      server.NewRouter(st.repo, st.check, log),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", "address", listener.Addr().String())
		errCh <- srv.Serve(listener)
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("server stopped gracefully")
	return nil
}
