package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Veraticus/pockit/internal/api"
	"github.com/Veraticus/pockit/internal/certs"
	"github.com/Veraticus/pockit/internal/handlers"
)

const shutdownTimeout = 30 * time.Second

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP chat API",
		Long: `Serve the chat over HTTP for mobile and web clients.

Sessions live in memory; recorded transactions and milestones are written
to the same database the CLI reads. Metrics are exposed at /metrics.`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}

	cmd.Flags().String("addr", "", "listen address (default from server.addr)")
	cmd.Flags().Bool("tls", false, "serve HTTPS with a self-signed certificate from server.cert_dir")
	cmd.Flags().Int("max-sessions", handlers.DefaultMaxSessions, "maximum concurrent chat sessions")
	cmd.Flags().Duration("session-ttl", handlers.DefaultSessionTTL, "idle time after which a session may be evicted")
	_ = viper.BindPFlag("server.addr", cmd.Flags().Lookup("addr"))
	_ = viper.BindPFlag("server.tls", cmd.Flags().Lookup("tls"))

	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	maxSessions, _ := cmd.Flags().GetInt("max-sessions")
	sessionTTL, _ := cmd.Flags().GetDuration("session-ttl")
	addr := appConfig.Server.Addr

	client, err := createLLMClient()
	if err != nil {
		return err
	}

	store, err := initStorage(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer closeStorage(store)

	logger := slog.Default()
	handlers.Version = version
	h := handlers.NewHandler(store, handlers.NewSessions(maxSessions, sessionTTL), chatFactory(client, store), logger)

	srv := &http.Server{
		Addr:              addr,
		Handler:           api.NewRouter(logger, h),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      appConfig.LLM.Timeout + 15*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	if appConfig.Server.TLS {
		manager := certs.NewFileManager(appConfig.Server.CertDir)
		tlsConfig, err := manager.TLSConfig()
		if err != nil {
			return fmt.Errorf("failed to prepare TLS certificate: %w", err)
		}
		srv.TLSConfig = tlsConfig
		logger.Info("Serving HTTPS with self-signed certificate", "cert", manager.CertFile())
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting pockit API", "addr", addr, "tls", appConfig.Server.TLS, "version", version)
		if err := listen(srv); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	logger.Info("Server stopped")
	return nil
}

func listen(srv *http.Server) error {
	if srv.TLSConfig != nil {
		return srv.ListenAndServeTLS("", "")
	}
	return srv.ListenAndServe()
}
