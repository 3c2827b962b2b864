package persistence

import (
	"context"
	"fmt"

	"github.com/ludolib/ludolib/domain/registry"
	"github.com/ludolib/ludolib/internal/database"
)

// FileStore persists release artifacts using GORM.
type FileStore struct {
	database.Repository[registry.File, FileModel]
}

// NewFileStore creates a new FileStore.
func NewFileStore(db database.Database) *FileStore {
	return &FileStore{
		Repository: database.NewRepository(db, database.EntityMapper[registry.File, FileModel](FileMapper{}), "file"),
	}
}

// Add attaches an artifact to a release. Filenames are unique per release.
func (s *FileStore) Add(ctx context.Context, f registry.File) (registry.File, error) {
	if err := f.Validate(); err != nil {
		return registry.File{}, err
	}

	row := s.Mapper().ToModel(f)
	if err := s.DB(ctx).Create(&row).Error; err != nil {
		return registry.File{}, fmt.Errorf("create file: %w", err)
	}
	return s.Mapper().ToDomain(row), nil
}

// ForRelease returns a release's artifacts ordered by filename.
func (s *FileStore) ForRelease(ctx context.Context, releaseID int64) ([]registry.File, error) {
	var rows []FileModel
	err := s.DB(ctx).Where("release_id = ?", releaseID).Order("filename").Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list files: %w", err)
	}

	files := make([]registry.File, len(rows))
	for i, row := range rows {
		files[i] = s.Mapper().ToDomain(row)
	}
	return files, nil
}
