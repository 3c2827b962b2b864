package persistence

import (
	"context"
	"fmt"
	"sort"

	"github.com/ludolib/ludolib/domain/registry"
	"github.com/ludolib/ludolib/internal/database"
	"gorm.io/gorm"
)

// ReleaseStore persists releases using GORM.
type ReleaseStore struct {
	database.Repository[registry.Release, ReleaseModel]
}

// NewReleaseStore creates a new ReleaseStore.
func NewReleaseStore(db database.Database) *ReleaseStore {
	return &ReleaseStore{
		Repository: database.NewRepository(db, database.EntityMapper[registry.Release, ReleaseModel](ReleaseMapper{}), "release"),
	}
}

// Publish writes the history record and its current projection. The unique
// index over the decomposed version rejects duplicates per package,
// soft-deleted releases included.
func (s *ReleaseStore) Publish(ctx context.Context, h registry.ReleaseHistory) (registry.Release, error) {
	if err := h.Validate(); err != nil {
		return registry.Release{}, err
	}

	return database.WithTransactionResult(ctx, s.Database(), func(tx *gorm.DB) (registry.Release, error) {
		histRow := ReleaseHistoryMapper{}.ToModel(h)
		if err := tx.Create(&histRow).Error; err != nil {
			return registry.Release{}, fmt.Errorf("create release history: %w", err)
		}

		release := registry.NewRelease(h.WithID(histRow.ReleaseID))
		current := s.Mapper().ToModel(release)
		if err := tx.Create(&current).Error; err != nil {
			return registry.Release{}, fmt.Errorf("create release: %w", err)
		}
		return release, nil
	})
}

// SoftDelete marks the history record deleted and removes the current
// projection. The version stays taken.
func (s *ReleaseStore) SoftDelete(ctx context.Context, userID, releaseID int64, now int64) error {
	return database.WithTransaction(ctx, s.Database(), func(tx *gorm.DB) error {
		result := tx.Model(&ReleaseHistoryModel{}).
			Where("release_id = ? AND deleted_at IS NULL", releaseID).
			Updates(map[string]any{"deleted_at": now, "deleted_by": userID})
		if result.Error != nil {
			return fmt.Errorf("delete release history: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("%w: release %d", database.ErrNotFound, releaseID)
		}

		if err := tx.Delete(&ReleaseModel{ReleaseID: releaseID}).Error; err != nil {
			return fmt.Errorf("delete release: %w", err)
		}
		return nil
	})
}

// ForPackage returns the live releases of a package in version precedence
// order, newest first. The SQL ordering over the decomposed components is
// refined in memory because a release outranks its own pre-releases.
func (s *ReleaseStore) ForPackage(ctx context.Context, packageID int64) ([]registry.Release, error) {
	var rows []ReleaseModel
	err := s.DB(ctx).
		Where("package_id = ?", packageID).
		Order("version_major DESC, version_minor DESC, version_patch DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list releases: %w", err)
	}

	releases := make([]registry.Release, len(rows))
	for i, row := range rows {
		releases[i] = s.Mapper().ToDomain(row)
	}
	sort.SliceStable(releases, func(i, j int) bool {
		return releases[i].Version().Compare(releases[j].Version()) > 0
	})
	return releases, nil
}

// Latest returns the highest-precedence live release of a package, or
// database.ErrNotFound when the package has none.
func (s *ReleaseStore) Latest(ctx context.Context, packageID int64) (registry.Release, error) {
	releases, err := s.ForPackage(ctx, packageID)
	if err != nil {
		return registry.Release{}, err
	}
	if len(releases) == 0 {
		return registry.Release{}, fmt.Errorf("%w: release for package %d", database.ErrNotFound, packageID)
	}
	return releases[0], nil
}
