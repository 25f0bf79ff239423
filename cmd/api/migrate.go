package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Raymond9734/linkpager/internal/config"
	"github.com/Raymond9734/linkpager/internal/db"
)

func newMigrateCmd(logger *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the database tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			database, err := db.New(cfg.Database)
			if err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}
			defer database.Close()

			if err := database.Migrate(cmd.Context()); err != nil {
				return err
			}

			logger.Info("schema applied", slog.String("database", cfg.Database.DBName))
			return nil
		},
	}
}
