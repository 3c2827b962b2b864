package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/ludolib/ludolib/domain/media"
	"github.com/ludolib/ludolib/internal/database"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ImageStore persists project images using GORM. Uploads append to the
// revision log and upsert the current row in the same transaction.
type ImageStore struct {
	database.Repository[media.Image, ImageModel]
}

// NewImageStore creates a new ImageStore.
func NewImageStore(db database.Database) *ImageStore {
	return &ImageStore{
		Repository: database.NewRepository(db, database.EntityMapper[media.Image, ImageModel](ImageMapper{}), "image"),
	}
}

// AddRevision appends an upload record and upserts the current image for
// its (project, filename).
func (s *ImageStore) AddRevision(ctx context.Context, r media.ImageRevision) error {
	return database.WithTransaction(ctx, s.Database(), func(tx *gorm.DB) error {
		logRow := ImageRevisionModel{
			ProjectID:   r.ProjectID(),
			Filename:    r.Filename(),
			URL:         r.URL(),
			ContentType: r.ContentType(),
			PublishedAt: r.PublishedAt(),
			PublishedBy: r.PublishedBy(),
		}
		if err := tx.Create(&logRow).Error; err != nil {
			return fmt.Errorf("create image revision: %w", err)
		}

		current := s.Mapper().ToModel(media.NewImage(r))
		err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "project_id"}, {Name: "filename"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"url", "content_type", "published_at", "published_by",
			}),
		}).Create(&current).Error
		if err != nil {
			return fmt.Errorf("upsert image: %w", err)
		}
		return nil
	})
}

// URL returns the current location of an image.
func (s *ImageStore) URL(ctx context.Context, projectID int64, filename string) (string, error) {
	img, err := s.FindOne(ctx, media.WithProjectID(projectID), media.WithFilename(filename))
	if err != nil {
		return "", err
	}
	return img.URL(), nil
}

// URLAt returns the image location as of the given time: the newest upload
// no later than at.
func (s *ImageStore) URLAt(ctx context.Context, projectID int64, filename string, at int64) (string, error) {
	var row ImageRevisionModel
	err := s.DB(ctx).
		Where("project_id = ? AND filename = ? AND published_at <= ?", projectID, filename, at).
		Order("published_at DESC").
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", fmt.Errorf("%w: image %s", database.ErrNotFound, filename)
		}
		return "", fmt.Errorf("find image revision: %w", err)
	}
	return row.URL, nil
}
