package media

import (
	"context"

	"github.com/ludolib/ludolib/domain/store"
)

// ImageStore is the sanctioned write path for images: adding a revision
// upserts the current row in the same transaction.
type ImageStore interface {
	store.Finder[Image]

	// AddRevision appends an upload record and upserts the current image.
	AddRevision(ctx context.Context, r ImageRevision) error

	// URL returns the current location of an image, or ErrNotFound.
	URL(ctx context.Context, projectID int64, filename string) (string, error)

	// URLAt returns the image location as of the given time.
	URLAt(ctx context.Context, projectID int64, filename string, at int64) (string, error)
}

// GalleryStore is the sanctioned write path for the gallery.
type GalleryStore interface {
	// Append publishes an image at the end of the gallery, synthesizing
	// the next sort key.
	Append(ctx context.Context, projectID int64, filename string, userID, now int64) (GalleryItem, error)

	// Apply runs a patch: each operation retires the targeted history row
	// and, except for deletes, inserts a replacement. It returns the
	// mapping from retired entry IDs to their replacements.
	Apply(ctx context.Context, projectID, userID int64, patch GalleryPatch, now int64) (map[int64]int64, error)

	// Live returns the gallery's live entries in sort key order.
	Live(ctx context.Context, projectID int64) ([]GalleryItem, error)

	// LiveAt returns the entries that were live at the given time, in sort
	// key order.
	LiveAt(ctx context.Context, projectID int64, at int64) ([]GalleryItem, error)
}

// WithProjectID filters media rows by project ID.
func WithProjectID(projectID int64) store.Option {
	return store.WithCondition("project_id", projectID)
}

// WithFilename filters media rows by filename.
func WithFilename(filename string) store.Option {
	return store.WithCondition("filename", filename)
}
