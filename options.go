package ludolib

import (
	"errors"
	"fmt"
	"log/slog"
)

// ErrNoDatabase indicates that New was called without a database option.
var ErrNoDatabase = errors.New("no database configured")

// clientConfig holds configuration for Client construction.
type clientConfig struct {
	dbURL       string
	logger      *slog.Logger
	skipMigrate bool
}

func newClientConfig() *clientConfig {
	return &clientConfig{}
}

// Option configures the Client.
type Option func(*clientConfig)

// WithSQLite configures SQLite as the database.
func WithSQLite(path string) Option {
	return func(c *clientConfig) {
		c.dbURL = fmt.Sprintf("sqlite:///%s", path)
	}
}

// WithDatabaseURL configures the database from a sqlite:// or postgres://
// URL.
func WithDatabaseURL(url string) Option {
	return func(c *clientConfig) {
		c.dbURL = url
	}
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *clientConfig) {
		c.logger = logger
	}
}

// WithoutMigration skips schema migration on startup, for callers that
// manage the schema themselves.
func WithoutMigration() Option {
	return func(c *clientConfig) {
		c.skipMigrate = true
	}
}
