// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. JOB_MATCHER_SERVER_PORT.
const EnvPrefix = "JOB_MATCHER"

// Corpus drivers.
const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config represents the configuration that can be loaded from a JSON or YAML file.
// All fields are optional; missing values use defaults.
type Config struct {
	Server    ServerConfig    `mapstructure:"server" json:"server"`
	Store     StoreConfig     `mapstructure:"store" json:"store"`
	Recommend RecommendConfig `mapstructure:"recommend" json:"recommend"`
	Search    SearchConfig    `mapstructure:"search" json:"search"`
	Trending  TrendingConfig  `mapstructure:"trending" json:"trending"`
	Log       LogConfig       `mapstructure:"log" json:"log"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Port int `mapstructure:"port" json:"port"`
}

// StoreConfig selects and configures the job corpus.
type StoreConfig struct {
	Driver      string `mapstructure:"driver" json:"driver"`             // memory, postgres or sqlite
	DatabaseURL string `mapstructure:"database_url" json:"database_url"` // PostgreSQL connection URL
	SQLitePath  string `mapstructure:"sqlite_path" json:"sqlite_path"`   // SQLite database file
	JobsFile    string `mapstructure:"jobs_file" json:"jobs_file"`       // Fixture loaded into the memory corpus
}

// RecommendConfig bounds recommendation requests.
type RecommendConfig struct {
	DefaultLimit int `mapstructure:"default_limit" json:"default_limit"`
	MaxLimit     int `mapstructure:"max_limit" json:"max_limit"`
}

// SearchConfig configures search paging.
type SearchConfig struct {
	PageSize int `mapstructure:"page_size" json:"page_size"`
}

// TrendingConfig sets the trending defaults.
type TrendingConfig struct {
	TimeframeDays int `mapstructure:"timeframe_days" json:"timeframe_days"`
	Limit         int `mapstructure:"limit" json:"limit"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	JSON  bool `mapstructure:"json" json:"json"`
	Debug bool `mapstructure:"debug" json:"debug"`
}

// Defaults returns the configuration used when nothing overrides it.
func Defaults() Config {
	return Config{
		Server: ServerConfig{Port: 8080},
		Store: StoreConfig{
			Driver:     DriverMemory,
			SQLitePath: "job_matcher.db",
		},
		Recommend: RecommendConfig{DefaultLimit: 20, MaxLimit: 100},
		Search:    SearchConfig{PageSize: 12},
		Trending:  TrendingConfig{TimeframeDays: 7, Limit: 10},
	}
}

// LoadConfig loads configuration from a JSON or YAML file, applying
// JOB_MATCHER_* environment overrides on top. An empty path yields the
// defaults plus environment overrides.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, Defaults())
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if cfg.Store.DatabaseURL == "" {
		cfg.Store.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	return &cfg, nil
}

// setDefaults registers every key so that environment overrides reach Unmarshal.
func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("server.port", d.Server.Port)
	v.SetDefault("store.driver", d.Store.Driver)
	v.SetDefault("store.database_url", d.Store.DatabaseURL)
	v.SetDefault("store.sqlite_path", d.Store.SQLitePath)
	v.SetDefault("store.jobs_file", d.Store.JobsFile)
	v.SetDefault("recommend.default_limit", d.Recommend.DefaultLimit)
	v.SetDefault("recommend.max_limit", d.Recommend.MaxLimit)
	v.SetDefault("search.page_size", d.Search.PageSize)
	v.SetDefault("trending.timeframe_days", d.Trending.TimeframeDays)
	v.SetDefault("trending.limit", d.Trending.Limit)
	v.SetDefault("log.json", d.Log.JSON)
	v.SetDefault("log.debug", d.Log.Debug)
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("config error: 'server.port' must be between 1 and 65535, got %d", c.Server.Port)
	}

	switch c.Store.Driver {
	case DriverMemory:
	case DriverPostgres:
		if c.Store.DatabaseURL == "" {
			return fmt.Errorf("config error: 'store.database_url' is required for the postgres driver")
		}
	case DriverSQLite:
		if c.Store.SQLitePath == "" {
			return fmt.Errorf("config error: 'store.sqlite_path' is required for the sqlite driver")
		}
	default:
		return fmt.Errorf("config error: unknown store driver %q", c.Store.Driver)
	}

	limits := []struct {
		key   string
		value int
	}{
		{"recommend.default_limit", c.Recommend.DefaultLimit},
		{"recommend.max_limit", c.Recommend.MaxLimit},
		{"search.page_size", c.Search.PageSize},
		{"trending.timeframe_days", c.Trending.TimeframeDays},
		{"trending.limit", c.Trending.Limit},
	}
	for _, l := range limits {
		if l.value <= 0 {
			return fmt.Errorf("config error: '%s' must be positive", l.key)
		}
	}
	if c.Recommend.DefaultLimit > c.Recommend.MaxLimit {
		return fmt.Errorf("config error: 'recommend.default_limit' exceeds 'recommend.max_limit'")
	}

	if c.Store.JobsFile != "" {
		if _, err := os.Stat(c.Store.JobsFile); os.IsNotExist(err) {
			return fmt.Errorf("config error: jobs file not found: %s", c.Store.JobsFile)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with zero fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Server.Port == 0 {
		result.Server.Port = defaults.Server.Port
	}

	if result.Store.Driver == "" {
		result.Store.Driver = defaults.Store.Driver
	}
	if result.Store.DatabaseURL == "" {
		result.Store.DatabaseURL = defaults.Store.DatabaseURL
	}
	if result.Store.SQLitePath == "" {
		result.Store.SQLitePath = defaults.Store.SQLitePath
	}
	if result.Store.JobsFile == "" {
		result.Store.JobsFile = defaults.Store.JobsFile
	}

	if result.Recommend.DefaultLimit == 0 {
		result.Recommend.DefaultLimit = defaults.Recommend.DefaultLimit
	}
	if result.Recommend.MaxLimit == 0 {
		result.Recommend.MaxLimit = defaults.Recommend.MaxLimit
	}
	if result.Search.PageSize == 0 {
		result.Search.PageSize = defaults.Search.PageSize
	}
	if result.Trending.TimeframeDays == 0 {
		result.Trending.TimeframeDays = defaults.Trending.TimeframeDays
	}
	if result.Trending.Limit == 0 {
		result.Trending.Limit = defaults.Trending.Limit
	}

	// Bool fields: cannot distinguish unset from false, so CLI flags always win.

	return result
}
