package service

import (
	"context"
	"log/slog"

	"github.com/ludolib/ludolib/domain/catalog"
)

// MaintenanceStore is the persistence surface for the cross-schema
// administrative procedures.
type MaintenanceStore interface {
	DeleteProject(ctx context.Context, projectID int64) error
	MergeUser(ctx context.Context, srcID, dstID int64) error
}

// Maintenance provides the administrative procedures: destructive,
// cross-cutting operations run outside the normal write paths.
type Maintenance struct {
	store    MaintenanceStore
	projects catalog.ProjectStore
	logger   *slog.Logger
}

// NewMaintenance creates a new Maintenance service.
func NewMaintenance(store MaintenanceStore, projects catalog.ProjectStore, logger *slog.Logger) *Maintenance {
	if logger == nil {
		logger = slog.Default()
	}
	return &Maintenance{store: store, projects: projects, logger: logger}
}

// DeleteProject removes a project and all dependent rows in one
// transaction.
func (s *Maintenance) DeleteProject(ctx context.Context, projectID int64) error {
	if err := s.store.DeleteProject(ctx, projectID); err != nil {
		return err
	}
	s.logger.Info("project deleted", slog.Int64("project_id", projectID))
	return nil
}

// MergeUser repoints every reference to src at dst and deletes src.
func (s *Maintenance) MergeUser(ctx context.Context, srcID, dstID int64) error {
	if err := s.store.MergeUser(ctx, srcID, dstID); err != nil {
		return err
	}
	s.logger.Info("users merged",
		slog.Int64("src_id", srcID),
		slog.Int64("dst_id", dstID))
	return nil
}

// RenameProject changes a project's name, recomputing the normalized name
// and slug. No revision is recorded.
func (s *Maintenance) RenameProject(ctx context.Context, projectID int64, newName string) error {
	if err := s.projects.Rename(ctx, projectID, newName); err != nil {
		return err
	}
	s.logger.Info("project renamed",
		slog.Int64("project_id", projectID),
		slog.String("name", newName))
	return nil
}

// Reindex rebuilds the full-text search index from the current rows.
func (s *Maintenance) Reindex(ctx context.Context) error {
	if err := s.projects.Reindex(ctx); err != nil {
		return err
	}
	s.logger.Info("search index rebuilt")
	return nil
}
