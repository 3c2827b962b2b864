package registry

import (
	"errors"
	"fmt"
)

// ErrDeletionBeforePublish indicates a deleted_at earlier than published_at.
var ErrDeletionBeforePublish = errors.New("deleted_at precedes published_at")

// ReleaseHistory is the durable record of a published release version.
type ReleaseHistory struct {
	id          int64
	packageID   int64
	version     Version
	url         string
	publishedAt int64
	publishedBy int64
	deletedAt   *int64
	deletedBy   *int64
}

// NewReleaseHistory creates a live release record.
func NewReleaseHistory(packageID int64, version Version, url string, publishedAt, publishedBy int64) ReleaseHistory {
	return ReleaseHistory{
		packageID:   packageID,
		version:     version,
		url:         url,
		publishedAt: publishedAt,
		publishedBy: publishedBy,
	}
}

// NewReleaseHistoryWithID reconstructs a release record from stored fields.
func NewReleaseHistoryWithID(
	id, packageID int64,
	version Version,
	url string,
	publishedAt, publishedBy int64,
	deletedAt, deletedBy *int64,
) ReleaseHistory {
	return ReleaseHistory{
		id:          id,
		packageID:   packageID,
		version:     version,
		url:         url,
		publishedAt: publishedAt,
		publishedBy: publishedBy,
		deletedAt:   deletedAt,
		deletedBy:   deletedBy,
	}
}

// ID returns the release ID.
func (r ReleaseHistory) ID() int64 { return r.id }

// PackageID returns the owning package's ID.
func (r ReleaseHistory) PackageID() int64 { return r.packageID }

// Version returns the release version.
func (r ReleaseHistory) Version() Version { return r.version }

// URL returns the release artifact location.
func (r ReleaseHistory) URL() string { return r.url }

// PublishedAt returns the publication time in nanoseconds since the epoch.
func (r ReleaseHistory) PublishedAt() int64 { return r.publishedAt }

// PublishedBy returns the publishing user's ID.
func (r ReleaseHistory) PublishedBy() int64 { return r.publishedBy }

// DeletedAt returns the soft-deletion time, or nil while live.
func (r ReleaseHistory) DeletedAt() *int64 { return r.deletedAt }

// DeletedBy returns the deleting user's ID, or nil while live.
func (r ReleaseHistory) DeletedBy() *int64 { return r.deletedBy }

// Deleted reports whether the release is soft-deleted.
func (r ReleaseHistory) Deleted() bool { return r.deletedAt != nil }

// WithID returns a copy with the given ID.
func (r ReleaseHistory) WithID(id int64) ReleaseHistory {
	r.id = id
	return r
}

// Delete returns a copy marked deleted at the given time by the given user.
func (r ReleaseHistory) Delete(at, by int64) ReleaseHistory {
	r.deletedAt = &at
	r.deletedBy = &by
	return r
}

// Validate checks the soft-deletion invariants.
func (r ReleaseHistory) Validate() error {
	if (r.deletedAt == nil) != (r.deletedBy == nil) {
		return ErrDeletionPair
	}
	if r.deletedAt != nil && *r.deletedAt < r.publishedAt {
		return fmt.Errorf("%w: %d < %d", ErrDeletionBeforePublish, *r.deletedAt, r.publishedAt)
	}
	return nil
}

// Release is the current projection of a live release record.
type Release struct {
	id          int64
	packageID   int64
	version     Version
	url         string
	publishedAt int64
	publishedBy int64
}

// NewRelease projects a history record into its current form.
func NewRelease(h ReleaseHistory) Release {
	return Release{
		id:          h.id,
		packageID:   h.packageID,
		version:     h.version,
		url:         h.url,
		publishedAt: h.publishedAt,
		publishedBy: h.publishedBy,
	}
}

// NewReleaseWithID reconstructs a current release from stored fields.
func NewReleaseWithID(id, packageID int64, version Version, url string, publishedAt, publishedBy int64) Release {
	return Release{
		id:          id,
		packageID:   packageID,
		version:     version,
		url:         url,
		publishedAt: publishedAt,
		publishedBy: publishedBy,
	}
}

// ID returns the release ID.
func (r Release) ID() int64 { return r.id }

// PackageID returns the owning package's ID.
func (r Release) PackageID() int64 { return r.packageID }

// Version returns the release version.
func (r Release) Version() Version { return r.version }

// URL returns the release artifact location.
func (r Release) URL() string { return r.url }

// PublishedAt returns the publication time in nanoseconds since the epoch.
func (r Release) PublishedAt() int64 { return r.publishedAt }

// PublishedBy returns the publishing user's ID.
func (r Release) PublishedBy() int64 { return r.publishedBy }
