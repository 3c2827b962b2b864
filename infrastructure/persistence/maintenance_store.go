package persistence

import (
	"context"
	"fmt"

	"github.com/ludolib/ludolib/internal/database"
	"gorm.io/gorm"
)

// MaintenanceStore runs the administrative procedures that cut across the
// whole schema. Each runs in one transaction and fails atomically.
type MaintenanceStore struct {
	db     database.Database
	search searchIndex
}

// NewMaintenanceStore creates a new MaintenanceStore.
func NewMaintenanceStore(db database.Database) *MaintenanceStore {
	return &MaintenanceStore{db: db, search: searchIndex{db: db}}
}

// DeleteProject removes a project and everything hanging off it, children
// before parents. Unknown project IDs are an error, not a no-op.
func (s *MaintenanceStore) DeleteProject(ctx context.Context, projectID int64) error {
	return database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		var count int64
		err := tx.Model(&ProjectHistoryModel{}).Where("project_id = ?", projectID).Count(&count).Error
		if err != nil {
			return fmt.Errorf("find project: %w", err)
		}
		if count == 0 {
			return fmt.Errorf("%w: project %d", database.ErrNotFound, projectID)
		}

		packages := "SELECT package_id FROM packages_history WHERE project_id = ?"
		releases := "SELECT release_id FROM releases_history WHERE package_id IN (" + packages + ")"

		steps := []struct {
			desc string
			sql  string
		}{
			{"flags", "DELETE FROM flags WHERE project_id = ?"},
			{"tags", "DELETE FROM tags WHERE project_id = ?"},
			{"files", "DELETE FROM files WHERE release_id IN (" + releases + ")"},
			{"releases", "DELETE FROM releases WHERE package_id IN (" + packages + ")"},
			{"release history", "DELETE FROM releases_history WHERE package_id IN (" + packages + ")"},
			{"package revisions", "DELETE FROM package_revisions WHERE package_id IN (" + packages + ")"},
			{"packages", "DELETE FROM packages WHERE project_id = ?"},
			{"package history", "DELETE FROM packages_history WHERE project_id = ?"},
			{"galleries", "DELETE FROM galleries WHERE project_id = ?"},
			{"gallery history", "DELETE FROM galleries_history WHERE project_id = ?"},
			{"images", "DELETE FROM images WHERE project_id = ?"},
			{"image revisions", "DELETE FROM image_revisions WHERE project_id = ?"},
			{"players", "DELETE FROM players WHERE project_id = ?"},
			{"owners", "DELETE FROM owners WHERE project_id = ?"},
			{"project image", "UPDATE projects SET image = NULL WHERE project_id = ?"},
			{"project revisions", "DELETE FROM projects_revisions WHERE project_id = ?"},
			{"project", "DELETE FROM projects WHERE project_id = ?"},
			{"project snapshots", "DELETE FROM projects_data WHERE project_id = ?"},
			{"project history", "DELETE FROM projects_history WHERE project_id = ?"},
		}
		for _, step := range steps {
			if err := tx.Exec(step.sql, projectID).Error; err != nil {
				return fmt.Errorf("delete %s: %w", step.desc, err)
			}
		}

		return s.search.delete(tx, projectID)
	})
}

// MergeUser repoints every reference to src at dst, then deletes src.
// Membership rows collapse where dst already holds the same project, so
// merging two owners of one project leaves a single ownership row.
func (s *MaintenanceStore) MergeUser(ctx context.Context, srcID, dstID int64) error {
	return database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		for _, id := range []int64{srcID, dstID} {
			var count int64
			if err := tx.Model(&UserModel{}).Where("user_id = ?", id).Count(&count).Error; err != nil {
				return fmt.Errorf("find user: %w", err)
			}
			if count == 0 {
				return fmt.Errorf("%w: user %d", database.ErrNotFound, id)
			}
		}

		// Uniqueness-constrained relations: insert-or-ignore under dst,
		// then drop the src rows.
		for _, table := range []string{"owners", "players"} {
			err := tx.Exec(
				"INSERT INTO "+table+" (user_id, project_id) SELECT ?, project_id FROM "+table+" WHERE user_id = ? ON CONFLICT DO NOTHING",
				dstID, srcID,
			).Error
			if err != nil {
				return fmt.Errorf("merge %s: %w", table, err)
			}
			if err := tx.Exec("DELETE FROM "+table+" WHERE user_id = ?", srcID).Error; err != nil {
				return fmt.Errorf("clear %s: %w", table, err)
			}
		}

		// Plain attribution columns.
		attributions := []struct {
			table  string
			column string
		}{
			{"projects", "modified_by"},
			{"projects_revisions", "modified_by"},
			{"packages_history", "created_by"},
			{"packages_history", "deleted_by"},
			{"packages", "created_by"},
			{"package_revisions", "modified_by"},
			{"releases_history", "published_by"},
			{"releases_history", "deleted_by"},
			{"releases", "published_by"},
			{"files", "published_by"},
			{"image_revisions", "published_by"},
			{"images", "published_by"},
			{"galleries_history", "published_by"},
			{"galleries_history", "removed_by"},
			{"galleries", "published_by"},
			{"flags", "user_id"},
			{"flags", "closed_by"},
		}
		for _, a := range attributions {
			err := tx.Exec(
				fmt.Sprintf("UPDATE %s SET %s = ? WHERE %s = ?", a.table, a.column, a.column),
				dstID, srcID,
			).Error
			if err != nil {
				return fmt.Errorf("merge %s.%s: %w", a.table, a.column, err)
			}
		}

		if err := tx.Exec("DELETE FROM users WHERE user_id = ?", srcID).Error; err != nil {
			return fmt.Errorf("delete user: %w", err)
		}
		return nil
	})
}
