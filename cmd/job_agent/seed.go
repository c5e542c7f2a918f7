package main

import (
	"fmt"
	"time"

	"github.com/jonathan/job-matcher/internal/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newSeedCmd(opts *rootOptions) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load a jobs fixture into the configured store",
		Long:  "Validate a YAML or JSON jobs document against the jobs schema and upsert its jobs into the configured postgres or sqlite store.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			jobs, err := readJobsFile(file, time.Now())
			if err != nil {
				return err
			}

			e, err := opts.openEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.Close()

			if e.cfg.Store.Driver == config.DriverMemory {
				return fmt.Errorf("seed requires a persistent store; set store.driver to %s or %s", config.DriverPostgres, config.DriverSQLite)
			}

			n, err := e.store.InsertJobs(cmd.Context(), jobs)
			if err != nil {
				return fmt.Errorf("failed to seed jobs: %w", err)
			}
			e.logger.Info("seeded jobs", zap.String("file", file), zap.Int("count", n))
			fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d jobs into %s store\n", n, e.cfg.Store.Driver)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Path to jobs YAML or JSON (required)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
