// Package cli implements the command-line driving adapter. Every subcommand
// shares the configuration and logger built by the root command's
// PersistentPreRunE.
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	sqliteadapter "github.com/ericfisherdev/passkeep/internal/adapter/driven/sqlite"
	"github.com/ericfisherdev/passkeep/internal/application"
	"github.com/ericfisherdev/passkeep/internal/config"
	"github.com/ericfisherdev/passkeep/internal/domain/port/driven"
)

// app carries state shared by all subcommands.
type app struct {
	configFile string
	dbPath     string

	cfg    *config.Config
	logger *slog.Logger
}

// NewRootCommand builds the passkeep command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "passkeep",
		Short: "Password strength checker, generator, and local password notebook",
		Long: `passkeep scores password strength, generates random passwords, and keeps
site/username/password entries in a local SQLite file.

Saved passwords are stored in plaintext. Run "passkeep serve" for the web GUI.`,
		PersistentPreRunE: a.setup,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	root.PersistentFlags().StringVar(&a.configFile, "config", "", "config file (default ./passkeep.yaml if present)")
	root.PersistentFlags().StringVar(&a.dbPath, "db", "", "path to the password database file (overrides PASSKEEP_DB_PATH)")

	root.AddCommand(
		newCheckCommand(a),
		newGenerateCommand(a),
		newSaveCommand(a),
		newListCommand(a),
		newServeCommand(a),
		newHealthcheckCommand(a),
	)

	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configFile)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	if a.dbPath != "" {
		cfg.DBPath = a.dbPath
	}
	a.cfg = cfg

	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(a.logger)

	a.logger.Debug("config loaded",
		"db_path", cfg.DBPath,
		"listen_addr", cfg.ListenAddr,
		"default_length", cfg.DefaultLength,
	)
	return nil
}

// withCredentials opens the database for the duration of fn and closes it on
// every exit path. The table is created on first use.
func (a *app) withCredentials(ctx context.Context, fn func(svc *application.CredentialService) error) error {
	db, err := sqliteadapter.NewDB(ctx, a.cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open database %s: %w: %w", a.cfg.DBPath, driven.ErrStorageUnavailable, err)
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			a.logger.Error("error closing database", "error", closeErr)
		}
	}()

	repo := sqliteadapter.NewCredentialRepo(db)
	if err := repo.Initialize(ctx); err != nil {
		return err
	}

	return fn(application.NewCredentialService(repo, a.logger))
}
