package main

import (
	"context"
	"fmt"

	"github.com/jonathan/job-matcher/internal/config"
	"github.com/jonathan/job-matcher/internal/corpus"
	"github.com/jonathan/job-matcher/internal/logger"
	"github.com/jonathan/job-matcher/internal/parsing"
	"github.com/jonathan/job-matcher/internal/recommend"
	"github.com/jonathan/job-matcher/internal/search"
	"go.uber.org/zap"
)

// loadConfig reads the config file and environment, applies the persistent
// flags and validates the result.
func (o *rootOptions) loadConfig() (*config.Config, error) {
	loaded, err := config.LoadConfig(o.configPath)
	if err != nil {
		return nil, err
	}
	cfg := loaded.MergeWithDefaults(config.Defaults())

	if o.flags.GetBool("debug") {
		cfg.Log.Debug = true
	}
	if o.flags.GetBool("json") {
		cfg.Log.JSON = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// env is the wiring shared by commands that need a corpus.
type env struct {
	cfg    *config.Config
	logger *zap.Logger
	store  corpus.Store
	close  func()
}

// openEnv loads configuration, builds the logger and opens the configured store.
func (o *rootOptions) openEnv(ctx context.Context) (*env, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, err
	}
	log, err := logger.New(cfg.Log.JSON, cfg.Log.Debug)
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	st, closeStore, err := openStore(ctx, cfg.Store, log)
	if err != nil {
		_ = log.Sync()
		return nil, err
	}
	return &env{cfg: cfg, logger: log, store: st, close: closeStore}, nil
}

func (e *env) Close() {
	e.close()
	_ = e.logger.Sync()
}

func (e *env) searchService() *search.Service {
	return search.NewService(e.store, parsing.NewQueryParser(e.logger), e.logger).
		WithPageSize(e.cfg.Search.PageSize)
}

func (e *env) engine() *recommend.Engine {
	return recommend.NewEngine(e.store, e.logger)
}
