package persistence

import (
	"context"
	"fmt"

	"github.com/ludolib/ludolib/domain/catalog"
	"github.com/ludolib/ludolib/internal/database"
	"gorm.io/gorm/clause"
)

// TagStore persists project tags.
type TagStore struct {
	db database.Database
}

// NewTagStore creates a new TagStore.
func NewTagStore(db database.Database) *TagStore {
	return &TagStore{db: db}
}

// Add attaches a tag to a project. Adding an existing tag is a no-op.
func (s *TagStore) Add(ctx context.Context, tag catalog.Tag) error {
	row := TagModel{ProjectID: tag.ProjectID(), Tag: tag.Tag()}
	err := s.db.Session(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("add tag: %w", err)
	}
	return nil
}

// Remove detaches a tag. Removing an absent tag is a no-op.
func (s *TagStore) Remove(ctx context.Context, tag catalog.Tag) error {
	err := s.db.Session(ctx).Delete(&TagModel{ProjectID: tag.ProjectID(), Tag: tag.Tag()}).Error
	if err != nil {
		return fmt.Errorf("remove tag: %w", err)
	}
	return nil
}

// ForProject returns a project's tags in alphabetic order.
func (s *TagStore) ForProject(ctx context.Context, projectID int64) ([]string, error) {
	var tags []string
	err := s.db.Session(ctx).Model(&TagModel{}).
		Where("project_id = ?", projectID).
		Order("tag").
		Pluck("tag", &tags).Error
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	return tags, nil
}
