package main

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	portssvc "github.com/moneypot/moneypot/internal/core/ports/services"
	"github.com/moneypot/moneypot/internal/core/services"
	"github.com/moneypot/moneypot/internal/middleware"
	"github.com/moneypot/moneypot/internal/platform/config"
	"github.com/moneypot/moneypot/internal/repositories/database/pgsql"
	"github.com/moneypot/moneypot/pkg/database"
)

var (
	dbPool       *pgxpool.Pool
	svcContainer *portssvc.ServiceContainer
	cliCtx       context.Context
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:           "moneypot",
	Short:         "Personal multi-currency budgeting ledger",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}

		// Service logs go to stderr; command output owns stdout. Quiet by
		// default so the output stays pipeable.
		handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelWarn})
		if verbose {
			handler = slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug})
		}
		logger := slog.New(handler)

		dbPool, err = database.NewPgxPool(cmd.Context(), cfg.DatabaseURL)
		if err != nil {
			return err
		}

		repos := pgsql.NewRepositoryProvider(dbPool)
		svcContainer = services.NewServiceContainer(cfg, repos)
		cliCtx = middleware.ContextWithLogger(cmd.Context(), logger)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		database.ClosePgxPool(dbPool)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}
