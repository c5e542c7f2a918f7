package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jonathan/job-matcher/internal/config"
	"github.com/jonathan/job-matcher/internal/corpus"
	"github.com/jonathan/job-matcher/internal/db"
	"github.com/jonathan/job-matcher/internal/schemas"
	"github.com/jonathan/job-matcher/internal/store"
	"github.com/jonathan/job-matcher/internal/types"
	"go.uber.org/zap"
)

// openStore opens the corpus selected by cfg.Driver. The returned func
// releases it. SQLite databases are migrated on open; PostgreSQL needs an
// explicit migrate.
func openStore(ctx context.Context, cfg config.StoreConfig, log *zap.Logger) (corpus.Store, func(), error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		pg, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		log.Debug("connected to postgres corpus")
		return pg, pg.Close, nil

	case config.DriverSQLite:
		lite, err := store.Open(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		if err := lite.Migrate(ctx); err != nil {
			_ = lite.Close()
			return nil, nil, err
		}
		log.Debug("opened sqlite corpus", zap.String("path", cfg.SQLitePath))
		return lite, func() { _ = lite.Close() }, nil

	default:
		var jobs []types.JobCandidate
		if cfg.JobsFile != "" {
			var err error
			if jobs, err = readJobsFile(cfg.JobsFile, time.Now()); err != nil {
				return nil, nil, err
			}
		}
		log.Debug("loaded memory corpus", zap.Int("jobs", len(jobs)))
		return corpus.NewMemory(jobs), func() {}, nil
	}
}

// readJobsFile reads a jobs fixture, validating it against the jobs schema
// before decoding.
func readJobsFile(path string, now time.Time) ([]types.JobCandidate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read jobs file %s: %w", path, err)
	}
	if err := schemas.ValidateJobsDocument(data); err != nil {
		return nil, fmt.Errorf("jobs file %s: %w", path, err)
	}
	jobs, err := corpus.DecodeJobs(data, now)
	if err != nil {
		return nil, fmt.Errorf("failed to load jobs file %s: %w", path, err)
	}
	return jobs, nil
}
