package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	sqliteadapter "github.com/ericfisherdev/passkeep/internal/adapter/driven/sqlite"
	"github.com/ericfisherdev/passkeep/internal/adapter/driving/web"
	"github.com/ericfisherdev/passkeep/internal/application"
)

func newServeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the web GUI",
		Long: `Serve the password GUI on PASSKEEP_LISTEN_ADDR (default 127.0.0.1:8501) until
interrupted. The database is opened once and closed on shutdown.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.serve(cmd.Context())
		},
	}
}

func (a *app) serve(ctx context.Context) error {
	// 1. Open database and ensure the passwords table exists.
	db, err := sqliteadapter.NewDB(ctx, a.cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open database %s: %w", a.cfg.DBPath, err)
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			a.logger.Error("error closing database", "error", closeErr)
		}
	}()

	credentialStore := sqliteadapter.NewCredentialRepo(db)
	if err := credentialStore.Initialize(ctx); err != nil {
		return err
	}
	a.logger.Info("database opened", "path", db.Path())

	// 2. Wire services and the web handler.
	credentialSvc := application.NewCredentialService(credentialStore, a.logger)
	generator := application.NewPasswordGenerator(nil)

	webHandler := web.NewHandler(generator, credentialSvc, a.cfg.DefaultLength, a.logger)
	mux := http.NewServeMux()
	web.RegisterRoutes(mux, webHandler)

	srv := &http.Server{
		Addr:              a.cfg.ListenAddr,
		Handler:           web.ApplyMiddleware(mux, a.logger),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	// 3. Serve until the context is cancelled or the listener fails.
	serveErr := make(chan error, 1)
	go func() {
		a.logger.Info("http server starting", "addr", a.cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("shutting down")
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
	}

	// 4. Graceful shutdown with 10s timeout.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("http server shutdown error", "error", err)
	}

	a.logger.Info("shutdown complete")
	return nil
}
