package media

import (
	"errors"
	"fmt"
)

// Invariant violations reported by Validate.
var (
	ErrEmptySortKey   = errors.New("gallery sort key must not be empty")
	ErrRemovalPair    = errors.New("removed_at and removed_by must both be set or both be null")
	ErrRemovalOrder   = errors.New("removed_at precedes published_at")
	ErrUnknownItem    = errors.New("unknown gallery item")
	ErrEmptyGalleryOp = errors.New("gallery patch contains no operations")
)

// GalleryItem is one entry in a project's gallery history. An item is live
// until it is retired (removed_at/removed_by set); edits and moves retire
// the old row and insert a replacement with a fresh ID.
type GalleryItem struct {
	id          int64
	projectID   int64
	sortKey     []byte
	filename    string
	description string
	publishedAt int64
	publishedBy int64
	removedAt   *int64
	removedBy   *int64
}

// NewGalleryItem creates a live gallery entry.
func NewGalleryItem(projectID int64, sortKey []byte, filename, description string, publishedAt, publishedBy int64) GalleryItem {
	return GalleryItem{
		projectID:   projectID,
		sortKey:     append([]byte(nil), sortKey...),
		filename:    filename,
		description: description,
		publishedAt: publishedAt,
		publishedBy: publishedBy,
	}
}

// NewGalleryItemWithID reconstructs a gallery entry from stored fields.
func NewGalleryItemWithID(
	id, projectID int64,
	sortKey []byte,
	filename, description string,
	publishedAt, publishedBy int64,
	removedAt, removedBy *int64,
) GalleryItem {
	g := NewGalleryItem(projectID, sortKey, filename, description, publishedAt, publishedBy)
	g.id = id
	g.removedAt = removedAt
	g.removedBy = removedBy
	return g
}

// ID returns the gallery entry ID.
func (g GalleryItem) ID() int64 { return g.id }

// ProjectID returns the owning project's ID.
func (g GalleryItem) ProjectID() int64 { return g.projectID }

// SortKey returns a copy of the opaque ordering key.
func (g GalleryItem) SortKey() []byte {
	return append([]byte(nil), g.sortKey...)
}

// Filename returns the displayed image's filename.
func (g GalleryItem) Filename() string { return g.filename }

// Description returns the caption text.
func (g GalleryItem) Description() string { return g.description }

// PublishedAt returns the publication time in nanoseconds since the epoch.
func (g GalleryItem) PublishedAt() int64 { return g.publishedAt }

// PublishedBy returns the publishing user's ID.
func (g GalleryItem) PublishedBy() int64 { return g.publishedBy }

// RemovedAt returns the retirement time, or nil while live.
func (g GalleryItem) RemovedAt() *int64 { return g.removedAt }

// RemovedBy returns the retiring user's ID, or nil while live.
func (g GalleryItem) RemovedBy() *int64 { return g.removedBy }

// Removed reports whether the entry has been retired.
func (g GalleryItem) Removed() bool { return g.removedAt != nil }

// WithID returns a copy with the given ID.
func (g GalleryItem) WithID(id int64) GalleryItem {
	g.id = id
	return g
}

// Validate checks the sort key and retirement invariants.
func (g GalleryItem) Validate() error {
	if len(g.sortKey) == 0 {
		return ErrEmptySortKey
	}
	if (g.removedAt == nil) != (g.removedBy == nil) {
		return ErrRemovalPair
	}
	if g.removedAt != nil && *g.removedAt < g.publishedAt {
		return fmt.Errorf("%w: %d < %d", ErrRemovalOrder, *g.removedAt, g.publishedAt)
	}
	return nil
}

// GalleryOpKind distinguishes the gallery patch operations.
type GalleryOpKind int

// GalleryOpKind values.
const (
	GalleryOpUpdate GalleryOpKind = iota
	GalleryOpDelete
	GalleryOpMove
)

// GalleryOp is one step of a gallery patch. Update replaces an item's
// description. Delete retires an item. Move reorders an item so it precedes
// Next, or moves it to the end when Next is nil. Because edits replace
// entry IDs, later operations in a patch may refer to an item by the ID it
// had before an earlier operation replaced it.
type GalleryOp struct {
	Kind        GalleryOpKind
	ID          int64
	Description string
	Next        *int64
}

// UpdateOp builds a description-update operation.
func UpdateOp(id int64, description string) GalleryOp {
	return GalleryOp{Kind: GalleryOpUpdate, ID: id, Description: description}
}

// DeleteOp builds a retire operation.
func DeleteOp(id int64) GalleryOp {
	return GalleryOp{Kind: GalleryOpDelete, ID: id}
}

// MoveOp builds a reorder operation. Pass nil to move the item to the end.
func MoveOp(id int64, next *int64) GalleryOp {
	return GalleryOp{Kind: GalleryOpMove, ID: id, Next: next}
}

// GalleryPatch is an ordered batch of gallery operations applied in one
// transaction.
type GalleryPatch struct {
	Ops []GalleryOp
}

// Validate rejects empty patches.
func (p GalleryPatch) Validate() error {
	if len(p.Ops) == 0 {
		return ErrEmptyGalleryOp
	}
	return nil
}
