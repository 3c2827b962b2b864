package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ludolib/ludolib/domain/catalog"
	"github.com/ludolib/ludolib/domain/media"
)

// ImageAddParams configures publishing an image under a project.
type ImageAddParams struct {
	ProjectID   int64  `validate:"required"`
	UserID      int64  `validate:"required"`
	Filename    string `validate:"required"`
	URL         string `validate:"required"`
	ContentType string
}

// Media provides image and gallery operations. Every mutation records a
// non-content revision on the owning project.
type Media struct {
	images    media.ImageStore
	galleries media.GalleryStore
	projects  catalog.ProjectStore
	logger    *slog.Logger
}

// NewMedia creates a new Media service.
func NewMedia(
	images media.ImageStore,
	galleries media.GalleryStore,
	projects catalog.ProjectStore,
	logger *slog.Logger,
) *Media {
	if logger == nil {
		logger = slog.Default()
	}
	return &Media{
		images:    images,
		galleries: galleries,
		projects:  projects,
		logger:    logger,
	}
}

// AddImage publishes an image revision and bumps the project revision.
func (s *Media) AddImage(ctx context.Context, params ImageAddParams) error {
	if err := validateParams(params); err != nil {
		return fmt.Errorf("invalid image params: %w", err)
	}

	now := time.Now().UnixNano()
	r := media.NewImageRevision(
		params.ProjectID, params.Filename, params.URL, params.ContentType,
		now, params.UserID,
	)
	return s.projects.InTransaction(ctx, func(ctx context.Context) error {
		if err := s.images.AddRevision(ctx, r); err != nil {
			return err
		}
		return s.projects.BumpRevision(ctx, params.UserID, params.ProjectID)
	})
}

// ImageURL returns the current location of an image.
func (s *Media) ImageURL(ctx context.Context, projectID int64, filename string) (string, error) {
	return s.images.URL(ctx, projectID, filename)
}

// ImageURLAt returns the image location as of the given time.
func (s *Media) ImageURLAt(ctx context.Context, projectID int64, filename string, at int64) (string, error) {
	return s.images.URLAt(ctx, projectID, filename, at)
}

// AddGalleryImage publishes an image and appends it to the end of the
// project's gallery.
func (s *Media) AddGalleryImage(ctx context.Context, params ImageAddParams) (media.GalleryItem, error) {
	if err := validateParams(params); err != nil {
		return media.GalleryItem{}, fmt.Errorf("invalid image params: %w", err)
	}

	now := time.Now().UnixNano()
	r := media.NewImageRevision(
		params.ProjectID, params.Filename, params.URL, params.ContentType,
		now, params.UserID,
	)
	var item media.GalleryItem
	err := s.projects.InTransaction(ctx, func(ctx context.Context) error {
		if err := s.images.AddRevision(ctx, r); err != nil {
			return err
		}

		var err error
		if item, err = s.galleries.Append(ctx, params.ProjectID, params.Filename, params.UserID, now); err != nil {
			return err
		}
		return s.projects.BumpRevision(ctx, params.UserID, params.ProjectID)
	})
	if err != nil {
		return media.GalleryItem{}, err
	}

	s.logger.Info("gallery image added",
		slog.Int64("project_id", params.ProjectID),
		slog.Int64("gallery_id", item.ID()),
		slog.String("filename", params.Filename))
	return item, nil
}

// UpdateGallery applies a batch of gallery edits and bumps the project
// revision. It returns the mapping from replaced entry IDs to their
// replacements.
func (s *Media) UpdateGallery(ctx context.Context, projectID, userID int64, patch media.GalleryPatch) (map[int64]int64, error) {
	now := time.Now().UnixNano()
	var oldToNew map[int64]int64
	err := s.projects.InTransaction(ctx, func(ctx context.Context) error {
		var err error
		if oldToNew, err = s.galleries.Apply(ctx, projectID, userID, patch, now); err != nil {
			return err
		}
		return s.projects.BumpRevision(ctx, userID, projectID)
	})
	if err != nil {
		return nil, err
	}
	return oldToNew, nil
}

// Gallery returns a project's live gallery in display order.
func (s *Media) Gallery(ctx context.Context, projectID int64) ([]media.GalleryItem, error) {
	return s.galleries.Live(ctx, projectID)
}

// GalleryAt returns the gallery as it stood at the given time.
func (s *Media) GalleryAt(ctx context.Context, projectID int64, at int64) ([]media.GalleryItem, error) {
	return s.galleries.LiveAt(ctx, projectID, at)
}
