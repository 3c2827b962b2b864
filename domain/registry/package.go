package registry

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Invariant violations reported by Validate.
var (
	ErrInvalidPackageName = errors.New("invalid package name")
	ErrDeletionPair       = errors.New("deleted_at and deleted_by must both be set or both be null")
	ErrDeletionOrder      = errors.New("deleted_at precedes creation")
)

const (
	packageNameMaxLength = 128
	descriptionMaxLength = 256
)

// ValidPackageName reports whether a package name is acceptable: non-empty,
// within length bounds, no surrounding or consecutive whitespace.
func ValidPackageName(name string) bool {
	if name == "" || len(name) > packageNameMaxLength {
		return false
	}
	if name != strings.TrimSpace(name) {
		return false
	}
	prevSpace := false
	for _, r := range name {
		if unicode.IsSpace(r) {
			if prevSpace {
				return false
			}
			prevSpace = true
		} else {
			prevSpace = false
		}
	}
	return true
}

// PackageHistory is the durable record of a package. Soft deletion sets
// deleted_at/deleted_by; the row itself is never removed.
type PackageHistory struct {
	id          int64
	projectID   int64
	name        string
	slug        string
	sortKey     int64
	description string
	createdAt   int64
	createdBy   int64
	deletedAt   *int64
	deletedBy   *int64
}

// NewPackageHistory creates a live history record.
func NewPackageHistory(projectID int64, name, slug string, sortKey int64, description string, createdAt, createdBy int64) PackageHistory {
	return PackageHistory{
		projectID:   projectID,
		name:        name,
		slug:        slug,
		sortKey:     sortKey,
		description: description,
		createdAt:   createdAt,
		createdBy:   createdBy,
	}
}

// NewPackageHistoryWithID reconstructs a history record from stored fields.
func NewPackageHistoryWithID(
	id, projectID int64,
	name, slug string,
	sortKey int64,
	description string,
	createdAt, createdBy int64,
	deletedAt, deletedBy *int64,
) PackageHistory {
	return PackageHistory{
		id:          id,
		projectID:   projectID,
		name:        name,
		slug:        slug,
		sortKey:     sortKey,
		description: description,
		createdAt:   createdAt,
		createdBy:   createdBy,
		deletedAt:   deletedAt,
		deletedBy:   deletedBy,
	}
}

// ID returns the package ID.
func (p PackageHistory) ID() int64 { return p.id }

// ProjectID returns the owning project's ID.
func (p PackageHistory) ProjectID() int64 { return p.projectID }

// Name returns the package name.
func (p PackageHistory) Name() string { return p.name }

// Slug returns the URL-safe form of the name.
func (p PackageHistory) Slug() string { return p.slug }

// SortKey returns the per-project display order key, assigned once at
// creation and never reused.
func (p PackageHistory) SortKey() int64 { return p.sortKey }

// Description returns the package description.
func (p PackageHistory) Description() string { return p.description }

// CreatedAt returns the creation time in nanoseconds since the epoch.
func (p PackageHistory) CreatedAt() int64 { return p.createdAt }

// CreatedBy returns the creating user's ID.
func (p PackageHistory) CreatedBy() int64 { return p.createdBy }

// DeletedAt returns the soft-deletion time, or nil while live.
func (p PackageHistory) DeletedAt() *int64 { return p.deletedAt }

// DeletedBy returns the deleting user's ID, or nil while live.
func (p PackageHistory) DeletedBy() *int64 { return p.deletedBy }

// Deleted reports whether the package is soft-deleted.
func (p PackageHistory) Deleted() bool { return p.deletedAt != nil }

// WithID returns a copy with the given ID.
func (p PackageHistory) WithID(id int64) PackageHistory {
	p.id = id
	return p
}

// Delete returns a copy marked deleted at the given time by the given user.
func (p PackageHistory) Delete(at, by int64) PackageHistory {
	p.deletedAt = &at
	p.deletedBy = &by
	return p
}

// Validate checks the name and soft-deletion invariants.
func (p PackageHistory) Validate() error {
	if !ValidPackageName(p.name) {
		return fmt.Errorf("%w: %q", ErrInvalidPackageName, p.name)
	}
	if len(p.description) > descriptionMaxLength {
		return fmt.Errorf("%w: description too long", ErrInvalidPackageName)
	}
	if (p.deletedAt == nil) != (p.deletedBy == nil) {
		return ErrDeletionPair
	}
	if p.deletedAt != nil && *p.deletedAt < p.createdAt {
		return fmt.Errorf("%w: %d < %d", ErrDeletionOrder, *p.deletedAt, p.createdAt)
	}
	return nil
}

// Package is the current projection of a live history record: the business
// fields without the deletion markers. It exists exactly while the history
// record is not deleted.
type Package struct {
	id          int64
	projectID   int64
	name        string
	slug        string
	sortKey     int64
	description string
	createdAt   int64
	createdBy   int64
}

// NewPackage projects a history record into its current form.
func NewPackage(h PackageHistory) Package {
	return Package{
		id:          h.id,
		projectID:   h.projectID,
		name:        h.name,
		slug:        h.slug,
		sortKey:     h.sortKey,
		description: h.description,
		createdAt:   h.createdAt,
		createdBy:   h.createdBy,
	}
}

// NewPackageWithID reconstructs a current package from stored fields.
func NewPackageWithID(id, projectID int64, name, slug string, sortKey int64, description string, createdAt, createdBy int64) Package {
	return Package{
		id:          id,
		projectID:   projectID,
		name:        name,
		slug:        slug,
		sortKey:     sortKey,
		description: description,
		createdAt:   createdAt,
		createdBy:   createdBy,
	}
}

// ID returns the package ID.
func (p Package) ID() int64 { return p.id }

// ProjectID returns the owning project's ID.
func (p Package) ProjectID() int64 { return p.projectID }

// Name returns the package name.
func (p Package) Name() string { return p.name }

// Slug returns the URL-safe form of the name.
func (p Package) Slug() string { return p.slug }

// SortKey returns the per-project display order key.
func (p Package) SortKey() int64 { return p.sortKey }

// Description returns the package description.
func (p Package) Description() string { return p.description }

// CreatedAt returns the creation time in nanoseconds since the epoch.
func (p Package) CreatedAt() int64 { return p.createdAt }

// CreatedBy returns the creating user's ID.
func (p Package) CreatedBy() int64 { return p.createdBy }

// PackageRevision is an append-only record of a rename or slug change.
type PackageRevision struct {
	packageID  int64
	name       string
	slug       string
	modifiedAt int64
	modifiedBy int64
}

// NewPackageRevision creates a rename record.
func NewPackageRevision(packageID int64, name, slug string, modifiedAt, modifiedBy int64) PackageRevision {
	return PackageRevision{
		packageID:  packageID,
		name:       name,
		slug:       slug,
		modifiedAt: modifiedAt,
		modifiedBy: modifiedBy,
	}
}

// PackageID returns the renamed package's ID.
func (r PackageRevision) PackageID() int64 { return r.packageID }

// Name returns the name after the change.
func (r PackageRevision) Name() string { return r.name }

// Slug returns the slug after the change.
func (r PackageRevision) Slug() string { return r.slug }

// ModifiedAt returns the change time in nanoseconds since the epoch.
func (r PackageRevision) ModifiedAt() int64 { return r.modifiedAt }

// ModifiedBy returns the changing user's ID.
func (r PackageRevision) ModifiedBy() int64 { return r.modifiedBy }
