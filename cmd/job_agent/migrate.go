package main

import (
	"fmt"

	"github.com/jonathan/job-matcher/internal/config"
	"github.com/jonathan/job-matcher/internal/db"
	"github.com/jonathan/job-matcher/internal/store"
	"github.com/spf13/cobra"
)

func newMigrateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the jobs schema to the configured store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			switch cfg.Store.Driver {
			case config.DriverPostgres:
				pg, err := db.Connect(ctx, cfg.Store.DatabaseURL)
				if err != nil {
					return err
				}
				defer pg.Close()
				if err := pg.Migrate(ctx); err != nil {
					return err
				}
			case config.DriverSQLite:
				lite, err := store.Open(cfg.Store.SQLitePath)
				if err != nil {
					return err
				}
				defer func() { _ = lite.Close() }()
				if err := lite.Migrate(ctx); err != nil {
					return err
				}
			default:
				return fmt.Errorf("nothing to migrate for the %s store", cfg.Store.Driver)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Migrated %s store\n", cfg.Store.Driver)
			return nil
		},
	}
}
