// Package ludolib provides a library for managing a catalog of game
// projects: their revisioned metadata, packages and semver releases,
// images and ordered galleries, users, and moderation flags.
//
// Basic usage:
//
//	client, err := ludolib.New(
//	    ludolib.WithSQLite(".ludolib/data.db"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	// Create a project
//	project, err := client.Catalog.Create(ctx, service.ProjectCreateParams{
//	    OwnerID:   user.ID(),
//	    Name:      "Example Project",
//	    GameTitle: "Example Game",
//	})
//
//	// Search the catalog
//	page, err := client.Catalog.List(ctx, service.ListParams{
//	    Facets: []catalog.Facet{catalog.QueryFacet("example")},
//	    SortBy: catalog.SortByRelevance,
//	    Limit:  30,
//	})
package ludolib

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/ludolib/ludolib/application/service"
	"github.com/ludolib/ludolib/infrastructure/persistence"
	"github.com/ludolib/ludolib/internal/database"
)

// Client is the main entry point for the ludolib library.
//
// Access resources via struct fields:
//
//	client.Catalog.Create(ctx, params)
//	client.Registry.PublishRelease(ctx, params)
//	client.Media.Gallery(ctx, projectID)
type Client struct {
	Catalog     *service.Catalog
	Registry    *service.Registry
	Media       *service.Media
	Identity    *service.Identity
	Moderation  *service.Moderation
	Maintenance *service.Maintenance

	db     database.Database
	logger *slog.Logger
	closed atomic.Bool
}

// New creates a new Client with the given options and migrates the schema.
func New(opts ...Option) (*Client, error) {
	cfg := newClientConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.dbURL == "" {
		return nil, ErrNoDatabase
	}

	logger := cfg.logger
	if logger == nil {
		logger = slog.Default()
	}

	ctx := context.Background()

	db, err := database.NewDatabase(ctx, cfg.dbURL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if !cfg.skipMigrate {
		if err := persistence.Migrate(ctx, db); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migrate: %w", err)
		}
	}

	projects := persistence.NewProjectStore(db)
	tags := persistence.NewTagStore(db)
	users := persistence.NewUserStore(db)
	members := persistence.NewMembershipStore(db)
	packages := persistence.NewPackageStore(db)
	releases := persistence.NewReleaseStore(db)
	files := persistence.NewFileStore(db)
	images := persistence.NewImageStore(db)
	galleries := persistence.NewGalleryStore(db)
	flags := persistence.NewFlagStore(db)
	maint := persistence.NewMaintenanceStore(db)

	return &Client{
		Catalog:     service.NewCatalog(projects, tags, members, logger),
		Registry:    service.NewRegistry(packages, releases, files, projects, logger),
		Media:       service.NewMedia(images, galleries, projects, logger),
		Identity:    service.NewIdentity(users, members, logger),
		Moderation:  service.NewModeration(flags, logger),
		Maintenance: service.NewMaintenance(maint, projects, logger),
		db:          db,
		logger:      logger,
	}, nil
}

// Database returns the underlying database handle.
func (c *Client) Database() database.Database {
	return c.db
}

// Close releases the database connection. Safe to call more than once.
func (c *Client) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return nil
	}
	return c.db.Close()
}
