package registry

import (
	"context"

	"github.com/ludolib/ludolib/domain/store"
)

// PackageStore is the only sanctioned write path for packages. Creation
// writes the history record and its current projection in one transaction;
// soft deletion marks the history record and removes the projection.
type PackageStore interface {
	store.Finder[Package]

	// Create assigns the project's next sort key (soft-deleted packages
	// included, so keys are never reused) and writes the history record
	// plus its current projection.
	Create(ctx context.Context, h PackageHistory) (Package, error)

	// Rename records a PackageRevision and updates the history and current
	// rows with the new name and slug.
	Rename(ctx context.Context, userID, packageID int64, name, slug string, now int64) error

	// SoftDelete marks the history record deleted and removes the current
	// projection.
	SoftDelete(ctx context.Context, userID, packageID int64, now int64) error

	// History returns the history record for a package, deleted or not.
	History(ctx context.Context, packageID int64) (PackageHistory, error)

	// Revisions returns the rename log for a package, ascending by time.
	Revisions(ctx context.Context, packageID int64) ([]PackageRevision, error)
}

// ReleaseStore is the sanctioned write path for releases.
type ReleaseStore interface {
	store.Finder[Release]

	// Publish writes the history record and its current projection.
	// Versions are unique per package on all five components.
	Publish(ctx context.Context, h ReleaseHistory) (Release, error)

	// SoftDelete marks the history record deleted and removes the current
	// projection.
	SoftDelete(ctx context.Context, userID, releaseID int64, now int64) error

	// ForPackage returns the live releases of a package in version
	// precedence order, newest first.
	ForPackage(ctx context.Context, packageID int64) ([]Release, error)

	// Latest returns the highest-precedence live release of a package.
	Latest(ctx context.Context, packageID int64) (Release, error)
}

// FileStore defines operations for release artifacts.
type FileStore interface {
	store.Finder[File]
	Add(ctx context.Context, f File) (File, error)
	ForRelease(ctx context.Context, releaseID int64) ([]File, error)
}

// WithProjectID filters packages by project ID.
func WithProjectID(projectID int64) store.Option {
	return store.WithCondition("project_id", projectID)
}

// WithPackageID filters releases by package ID.
func WithPackageID(packageID int64) store.Option {
	return store.WithCondition("package_id", packageID)
}

// WithPackageName filters packages by name.
func WithPackageName(name string) store.Option {
	return store.WithCondition("name", name)
}

// WithReleaseID filters files by release ID.
func WithReleaseID(releaseID int64) store.Option {
	return store.WithCondition("release_id", releaseID)
}

// WithFilename filters files by filename.
func WithFilename(filename string) store.Option {
	return store.WithCondition("filename", filename)
}
