// Package config provides application configuration.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

// Default configuration values.
const (
	DefaultLogLevel    = "INFO"
	DefaultSearchLimit = 50
	DefaultListWindow  = 30
)

// LogFormat represents the log output format.
type LogFormat string

// LogFormat values.
const (
	LogFormatPretty LogFormat = "pretty"
	LogFormatJSON   LogFormat = "json"
)

// ParseLogFormat converts a string to a LogFormat, defaulting to pretty.
func ParseLogFormat(s string) LogFormat {
	if strings.EqualFold(s, string(LogFormatJSON)) {
		return LogFormatJSON
	}
	return LogFormatPretty
}

// AppConfig holds the main application configuration.
type AppConfig struct {
	dataDir     string
	dbURL       string
	logLevel    string
	logFormat   LogFormat
	searchLimit int
	listWindow  int
}

// DefaultDataDir returns the default data directory.
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".ludolib"
	}
	return filepath.Join(home, ".ludolib")
}

// NewAppConfig creates a new AppConfig with defaults.
func NewAppConfig() AppConfig {
	dataDir := DefaultDataDir()
	return AppConfig{
		dataDir:     dataDir,
		dbURL:       "sqlite:///" + filepath.Join(dataDir, "ludolib.db"),
		logLevel:    DefaultLogLevel,
		logFormat:   LogFormatPretty,
		searchLimit: DefaultSearchLimit,
		listWindow:  DefaultListWindow,
	}
}

// NewAppConfigWithOptions creates an AppConfig with the given options applied.
func NewAppConfigWithOptions(opts ...AppConfigOption) AppConfig {
	c := NewAppConfig()
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// DataDir returns the data directory path.
func (c AppConfig) DataDir() string { return c.dataDir }

// DBURL returns the database connection URL.
func (c AppConfig) DBURL() string { return c.dbURL }

// LogLevel returns the log verbosity level.
func (c AppConfig) LogLevel() string { return c.logLevel }

// LogFormat returns the log output format.
func (c AppConfig) LogFormat() LogFormat { return c.logFormat }

// SearchLimit returns the default full-text search result limit.
func (c AppConfig) SearchLimit() int { return c.searchLimit }

// ListWindow returns the default page size for seek-paginated listings.
func (c AppConfig) ListWindow() int { return c.listWindow }

// EnsureDataDir creates the data directory if it does not exist.
func (c AppConfig) EnsureDataDir() error {
	return os.MkdirAll(c.dataDir, 0o750)
}

// AppConfigOption is a functional option for AppConfig.
type AppConfigOption func(*AppConfig)

// WithDataDir sets the data directory and, when the database URL still points
// at the default location, moves it alongside.
func WithDataDir(dir string) AppConfigOption {
	return func(c *AppConfig) {
		defaultURL := "sqlite:///" + filepath.Join(c.dataDir, "ludolib.db")
		c.dataDir = dir
		if c.dbURL == defaultURL {
			c.dbURL = "sqlite:///" + filepath.Join(dir, "ludolib.db")
		}
	}
}

// WithDBURL sets the database connection URL.
func WithDBURL(url string) AppConfigOption {
	return func(c *AppConfig) { c.dbURL = url }
}

// WithLogLevel sets the log verbosity level.
func WithLogLevel(level string) AppConfigOption {
	return func(c *AppConfig) { c.logLevel = level }
}

// WithLogFormat sets the log output format.
func WithLogFormat(format LogFormat) AppConfigOption {
	return func(c *AppConfig) { c.logFormat = format }
}

// WithSearchLimit sets the default search result limit.
func WithSearchLimit(n int) AppConfigOption {
	return func(c *AppConfig) { c.searchLimit = n }
}

// WithListWindow sets the default seek-pagination window.
func WithListWindow(n int) AppConfigOption {
	return func(c *AppConfig) { c.listWindow = n }
}
