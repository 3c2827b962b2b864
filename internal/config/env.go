package config

import (
	"github.com/kelseyhightower/envconfig"
)

// EnvConfig holds all environment-based configuration.
type EnvConfig struct {
	// DataDir is the data directory path.
	// Env: DATA_DIR
	// Default: ~/.ludolib
	DataDir string `envconfig:"DATA_DIR"`

	// DBURL is the database connection URL.
	// Env: DB_URL
	// Default: sqlite:///{data_dir}/ludolib.db
	DBURL string `envconfig:"DB_URL"`

	// LogLevel is the log verbosity level.
	// Env: LOG_LEVEL (default: INFO)
	LogLevel string `envconfig:"LOG_LEVEL" default:"INFO"`

	// LogFormat is the log output format (pretty or json).
	// Env: LOG_FORMAT (default: pretty)
	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`

	// SearchLimit is the default full-text search result limit.
	// Env: SEARCH_LIMIT (default: 50)
	SearchLimit int `envconfig:"SEARCH_LIMIT" default:"50"`

	// ListWindow is the default page size for seek-paginated listings.
	// Env: LIST_WINDOW (default: 30)
	ListWindow int `envconfig:"LIST_WINDOW" default:"30"`
}

// LoadFromEnv loads configuration from environment variables.
func LoadFromEnv() (EnvConfig, error) {
	var cfg EnvConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return EnvConfig{}, err
	}
	return cfg, nil
}

// ToAppConfig converts environment configuration to an AppConfig.
func (e EnvConfig) ToAppConfig() AppConfig {
	opts := []AppConfigOption{
		WithLogLevel(e.LogLevel),
		WithLogFormat(ParseLogFormat(e.LogFormat)),
		WithSearchLimit(e.SearchLimit),
		WithListWindow(e.ListWindow),
	}
	if e.DataDir != "" {
		opts = append(opts, WithDataDir(e.DataDir))
	}
	if e.DBURL != "" {
		opts = append(opts, WithDBURL(e.DBURL))
	}
	return NewAppConfigWithOptions(opts...)
}
