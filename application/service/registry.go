package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ludolib/ludolib/domain/catalog"
	"github.com/ludolib/ludolib/domain/registry"
	"github.com/ludolib/ludolib/domain/store"
	"github.com/ludolib/ludolib/internal/slug"
)

// PackageCreateParams configures creating a package under a project.
type PackageCreateParams struct {
	ProjectID   int64  `validate:"required"`
	UserID      int64  `validate:"required"`
	Name        string `validate:"required"`
	Description string `validate:"max=256"`
}

// ReleasePublishParams configures publishing a release of a package.
type ReleasePublishParams struct {
	PackageID int64  `validate:"required"`
	UserID    int64  `validate:"required"`
	Version   string `validate:"required"`
	URL       string
}

// FileAddParams configures attaching an artifact to a release.
type FileAddParams struct {
	ReleaseID   int64  `validate:"required"`
	UserID      int64  `validate:"required"`
	Filename    string `validate:"required"`
	URL         string
	Size        int64 `validate:"gte=0"`
	Checksum    string
	Requires    string
	ContentType string
}

// Registry provides package, release, and artifact operations. Structural
// changes under a project record a non-content revision on it.
type Registry struct {
	store.Collection[registry.Package]
	packages registry.PackageStore
	releases registry.ReleaseStore
	files    registry.FileStore
	projects catalog.ProjectStore
	logger   *slog.Logger
}

// NewRegistry creates a new Registry service.
func NewRegistry(
	packages registry.PackageStore,
	releases registry.ReleaseStore,
	files registry.FileStore,
	projects catalog.ProjectStore,
	logger *slog.Logger,
) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		Collection: store.NewCollection[registry.Package](packages),
		packages:   packages,
		releases:   releases,
		files:      files,
		projects:   projects,
		logger:     logger,
	}
}

// CreatePackage creates a package and bumps the project revision.
func (s *Registry) CreatePackage(ctx context.Context, params PackageCreateParams) (registry.Package, error) {
	if err := validateParams(params); err != nil {
		return registry.Package{}, fmt.Errorf("invalid package params: %w", err)
	}

	now := time.Now().UnixNano()
	h := registry.NewPackageHistory(
		params.ProjectID, params.Name, slug.Slug(params.Name), 0, params.Description,
		now, params.UserID,
	)
	var pkg registry.Package
	err := s.projects.InTransaction(ctx, func(ctx context.Context) error {
		var err error
		if pkg, err = s.packages.Create(ctx, h); err != nil {
			return err
		}
		return s.projects.BumpRevision(ctx, params.UserID, params.ProjectID)
	})
	if err != nil {
		return registry.Package{}, err
	}

	s.logger.Info("package created",
		slog.Int64("package_id", pkg.ID()),
		slog.Int64("project_id", params.ProjectID),
		slog.String("name", pkg.Name()))
	return pkg, nil
}

// RenamePackage renames a package, logs the change, and bumps the project
// revision.
func (s *Registry) RenamePackage(ctx context.Context, userID, packageID int64, name string) error {
	now := time.Now().UnixNano()
	return s.projects.InTransaction(ctx, func(ctx context.Context) error {
		if err := s.packages.Rename(ctx, userID, packageID, name, slug.Slug(name), now); err != nil {
			return err
		}

		h, err := s.packages.History(ctx, packageID)
		if err != nil {
			return err
		}
		return s.projects.BumpRevision(ctx, userID, h.ProjectID())
	})
}

// DeletePackage soft-deletes a package and bumps the project revision. Its
// sort key stays taken.
func (s *Registry) DeletePackage(ctx context.Context, userID, packageID int64) error {
	h, err := s.packages.History(ctx, packageID)
	if err != nil {
		return err
	}

	now := time.Now().UnixNano()
	err = s.projects.InTransaction(ctx, func(ctx context.Context) error {
		if err := s.packages.SoftDelete(ctx, userID, packageID, now); err != nil {
			return err
		}
		return s.projects.BumpRevision(ctx, userID, h.ProjectID())
	})
	if err != nil {
		return err
	}

	s.logger.Info("package deleted",
		slog.Int64("package_id", packageID),
		slog.Int64("user_id", userID))
	return nil
}

// PublishRelease parses the version strictly, publishes the release, and
// bumps the project revision.
func (s *Registry) PublishRelease(ctx context.Context, params ReleasePublishParams) (registry.Release, error) {
	if err := validateParams(params); err != nil {
		return registry.Release{}, fmt.Errorf("invalid release params: %w", err)
	}

	version, err := registry.ParseVersion(params.Version)
	if err != nil {
		return registry.Release{}, err
	}

	pkg, err := s.packages.History(ctx, params.PackageID)
	if err != nil {
		return registry.Release{}, err
	}

	now := time.Now().UnixNano()
	h := registry.NewReleaseHistory(params.PackageID, version, params.URL, now, params.UserID)
	var release registry.Release
	err = s.projects.InTransaction(ctx, func(ctx context.Context) error {
		var err error
		if release, err = s.releases.Publish(ctx, h); err != nil {
			return err
		}
		return s.projects.BumpRevision(ctx, params.UserID, pkg.ProjectID())
	})
	if err != nil {
		return registry.Release{}, err
	}

	s.logger.Info("release published",
		slog.Int64("release_id", release.ID()),
		slog.Int64("package_id", params.PackageID),
		slog.String("version", version.String()))
	return release, nil
}

// DeleteRelease soft-deletes a release and bumps the project revision. Its
// version stays taken.
func (s *Registry) DeleteRelease(ctx context.Context, userID, releaseID int64) error {
	release, err := s.releases.FindOne(ctx, store.WithCondition("release_id", releaseID))
	if err != nil {
		return err
	}
	pkg, err := s.packages.History(ctx, release.PackageID())
	if err != nil {
		return err
	}

	now := time.Now().UnixNano()
	return s.projects.InTransaction(ctx, func(ctx context.Context) error {
		if err := s.releases.SoftDelete(ctx, userID, releaseID, now); err != nil {
			return err
		}
		return s.projects.BumpRevision(ctx, userID, pkg.ProjectID())
	})
}

// Releases returns a package's live releases, newest first by version
// precedence.
func (s *Registry) Releases(ctx context.Context, packageID int64) ([]registry.Release, error) {
	return s.releases.ForPackage(ctx, packageID)
}

// LatestRelease returns a package's highest-precedence live release.
func (s *Registry) LatestRelease(ctx context.Context, packageID int64) (registry.Release, error) {
	return s.releases.Latest(ctx, packageID)
}

// AddFile attaches an artifact to a release.
func (s *Registry) AddFile(ctx context.Context, params FileAddParams) (registry.File, error) {
	if err := validateParams(params); err != nil {
		return registry.File{}, fmt.Errorf("invalid file params: %w", err)
	}

	now := time.Now().UnixNano()
	f := registry.NewFile(
		params.ReleaseID, params.Filename, params.URL, params.Size,
		params.Checksum, params.Requires, params.ContentType,
		now, params.UserID,
	)
	return s.files.Add(ctx, f)
}

// Files returns a release's artifacts ordered by filename.
func (s *Registry) Files(ctx context.Context, releaseID int64) ([]registry.File, error) {
	return s.files.ForRelease(ctx, releaseID)
}
