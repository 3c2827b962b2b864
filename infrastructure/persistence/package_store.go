package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/ludolib/ludolib/domain/registry"
	"github.com/ludolib/ludolib/internal/database"
	"gorm.io/gorm"
)

// PackageStore persists packages using GORM. The history table is the
// durable record; the packages table carries the live projection.
type PackageStore struct {
	database.Repository[registry.Package, PackageModel]
}

// NewPackageStore creates a new PackageStore.
func NewPackageStore(db database.Database) *PackageStore {
	return &PackageStore{
		Repository: database.NewRepository(db, database.EntityMapper[registry.Package, PackageModel](PackageMapper{}), "package"),
	}
}

// Create assigns the project's next sort key and writes the history record
// plus its current projection. Soft-deleted packages keep their keys, so a
// key is never reused within a project.
func (s *PackageStore) Create(ctx context.Context, h registry.PackageHistory) (registry.Package, error) {
	return database.WithTransactionResult(ctx, s.Database(), func(tx *gorm.DB) (registry.Package, error) {
		var maxKey int64
		err := tx.Model(&PackageHistoryModel{}).
			Where("project_id = ?", h.ProjectID()).
			Select("COALESCE(MAX(sort_key), -1)").
			Scan(&maxKey).Error
		if err != nil {
			return registry.Package{}, fmt.Errorf("next package sort key: %w", err)
		}

		keyed := registry.NewPackageHistory(
			h.ProjectID(), h.Name(), h.Slug(), maxKey+1, h.Description(),
			h.CreatedAt(), h.CreatedBy(),
		)
		if err := keyed.Validate(); err != nil {
			return registry.Package{}, err
		}

		histRow := PackageHistoryMapper{}.ToModel(keyed)
		if err := tx.Create(&histRow).Error; err != nil {
			return registry.Package{}, fmt.Errorf("create package history: %w", err)
		}

		pkg := registry.NewPackage(keyed.WithID(histRow.PackageID))
		current := s.Mapper().ToModel(pkg)
		if err := tx.Create(&current).Error; err != nil {
			return registry.Package{}, fmt.Errorf("create package: %w", err)
		}
		return pkg, nil
	})
}

// Rename records the change in the rename log and moves the history and
// current rows to the new name and slug.
func (s *PackageStore) Rename(ctx context.Context, userID, packageID int64, name, slug string, now int64) error {
	if !registry.ValidPackageName(name) {
		return fmt.Errorf("%w: %q", registry.ErrInvalidPackageName, name)
	}

	return database.WithTransaction(ctx, s.Database(), func(tx *gorm.DB) error {
		revRow := PackageRevisionModel{
			PackageID:  packageID,
			Name:       name,
			Slug:       slug,
			ModifiedAt: now,
			ModifiedBy: userID,
		}
		if err := tx.Create(&revRow).Error; err != nil {
			return fmt.Errorf("create package revision: %w", err)
		}

		updates := map[string]any{"name": name, "slug": slug}
		err := tx.Model(&PackageHistoryModel{}).Where("package_id = ?", packageID).Updates(updates).Error
		if err != nil {
			return fmt.Errorf("rename package history: %w", err)
		}
		err = tx.Model(&PackageModel{}).Where("package_id = ?", packageID).Updates(updates).Error
		if err != nil {
			return fmt.Errorf("rename package: %w", err)
		}
		return nil
	})
}

// SoftDelete marks the history record deleted and removes the current
// projection. Releases and files under the package stay in place.
func (s *PackageStore) SoftDelete(ctx context.Context, userID, packageID int64, now int64) error {
	return database.WithTransaction(ctx, s.Database(), func(tx *gorm.DB) error {
		result := tx.Model(&PackageHistoryModel{}).
			Where("package_id = ? AND deleted_at IS NULL", packageID).
			Updates(map[string]any{"deleted_at": now, "deleted_by": userID})
		if result.Error != nil {
			return fmt.Errorf("delete package history: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("%w: package %d", database.ErrNotFound, packageID)
		}

		if err := tx.Delete(&PackageModel{PackageID: packageID}).Error; err != nil {
			return fmt.Errorf("delete package: %w", err)
		}
		return nil
	})
}

// History returns the history record for a package, deleted or not.
func (s *PackageStore) History(ctx context.Context, packageID int64) (registry.PackageHistory, error) {
	var row PackageHistoryModel
	if err := s.DB(ctx).Where("package_id = ?", packageID).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return registry.PackageHistory{}, fmt.Errorf("%w: package %d", database.ErrNotFound, packageID)
		}
		return registry.PackageHistory{}, fmt.Errorf("find package history: %w", err)
	}
	return PackageHistoryMapper{}.ToDomain(row), nil
}

// Revisions returns the rename log for a package, oldest first.
func (s *PackageStore) Revisions(ctx context.Context, packageID int64) ([]registry.PackageRevision, error) {
	var rows []PackageRevisionModel
	err := s.DB(ctx).Where("package_id = ?", packageID).Order("modified_at").Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list package revisions: %w", err)
	}

	revisions := make([]registry.PackageRevision, len(rows))
	for i, row := range rows {
		revisions[i] = registry.NewPackageRevision(row.PackageID, row.Name, row.Slug, row.ModifiedAt, row.ModifiedBy)
	}
	return revisions, nil
}
