// Package main is the entry point for the ludolib CLI.
package main

import (
	"fmt"
	"os"

	"github.com/ludolib/ludolib"
	"github.com/ludolib/ludolib/internal/config"
	"github.com/ludolib/ludolib/internal/log"
	"github.com/spf13/cobra"
)

// Version information set via ldflags during build.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ludolib",
		Short: "Game project catalog",
		Long:  `Ludolib manages a catalog of game projects: revisioned metadata, packages and releases, images and galleries, users, and moderation flags.`,
	}

	cmd.AddCommand(migrateCmd())
	cmd.AddCommand(seedCmd())
	cmd.AddCommand(adminCmd())
	cmd.AddCommand(versionCmd())

	return cmd
}

// loadConfig loads configuration from a .env file and the environment.
func loadConfig(envFile string) (config.AppConfig, error) {
	cfg, err := config.LoadConfig(envFile)
	if err != nil {
		return config.AppConfig{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// newClient opens a Client against the configured database.
func newClient(cfg config.AppConfig) (*ludolib.Client, error) {
	if err := cfg.EnsureDataDir(); err != nil {
		return nil, fmt.Errorf("data dir: %w", err)
	}

	logger := log.NewLogger(cfg)
	return ludolib.New(
		ludolib.WithDatabaseURL(cfg.DBURL()),
		ludolib.WithLogger(logger.Slog()),
	)
}
