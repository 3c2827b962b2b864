package persistence

import (
	"github.com/ludolib/ludolib/domain/catalog"
	"github.com/ludolib/ludolib/domain/identity"
	"github.com/ludolib/ludolib/domain/media"
	"github.com/ludolib/ludolib/domain/moderation"
	"github.com/ludolib/ludolib/domain/registry"
)

// UserMapper converts between identity.User and UserModel.
type UserMapper struct{}

// ToDomain converts a model to a domain user.
func (UserMapper) ToDomain(m UserModel) identity.User {
	return identity.NewUserWithID(m.UserID, m.Username, m.CreatedAt)
}

// ToModel converts a domain user to a model.
func (UserMapper) ToModel(u identity.User) UserModel {
	return UserModel{
		UserID:    u.ID(),
		Username:  u.Username(),
		CreatedAt: u.CreatedAt(),
	}
}

// ProjectMapper converts between catalog.Project and ProjectModel.
type ProjectMapper struct{}

// ToDomain converts a model to a domain project.
func (ProjectMapper) ToDomain(m ProjectModel) catalog.Project {
	game := catalog.NewGameData(
		m.GameTitle, m.GameTitleSort, m.GamePublisher, m.GameYear,
		m.GamePlayersMin, m.GamePlayersMax, m.GameLengthMin, m.GameLengthMax,
	)
	return catalog.NewProject(
		m.ProjectID,
		m.Name, m.NormalizedName, m.Slug, m.Description,
		m.Revision, m.CreatedAt, m.ModifiedAt, m.ModifiedBy,
		game,
		m.Readme,
		m.Image,
	)
}

// ToModel converts a domain project to a model.
func (ProjectMapper) ToModel(p catalog.Project) ProjectModel {
	g := p.Game()
	return ProjectModel{
		ProjectID:      p.ID(),
		Name:           p.Name(),
		NormalizedName: p.NormalizedName(),
		Slug:           p.Slug(),
		CreatedAt:      p.CreatedAt(),
		Description:    p.Description(),
		GameTitle:      g.Title(),
		GameTitleSort:  g.TitleSort(),
		GamePublisher:  g.Publisher(),
		GameYear:       g.Year(),
		GamePlayersMin: g.PlayersMin(),
		GamePlayersMax: g.PlayersMax(),
		GameLengthMin:  g.LengthMin(),
		GameLengthMax:  g.LengthMax(),
		Readme:         p.Readme(),
		Image:          p.Image(),
		ModifiedAt:     p.ModifiedAt(),
		ModifiedBy:     p.ModifiedBy(),
		Revision:       p.Revision(),
	}
}

// ProjectDataMapper converts between catalog.ProjectData and ProjectDataModel.
type ProjectDataMapper struct{}

// ToDomain converts a model to a domain snapshot.
func (ProjectDataMapper) ToDomain(m ProjectDataModel) catalog.ProjectData {
	game := catalog.NewGameData(
		m.GameTitle, m.GameTitleSort, m.GamePublisher, m.GameYear,
		m.GamePlayersMin, m.GamePlayersMax, m.GameLengthMin, m.GameLengthMax,
	)
	return catalog.NewProjectDataWithID(
		m.ProjectDataID, m.ProjectID,
		m.Name, m.Slug, m.Description,
		game,
		m.Readme,
		m.Image,
	)
}

// ToModel converts a domain snapshot to a model.
func (ProjectDataMapper) ToModel(d catalog.ProjectData) ProjectDataModel {
	g := d.Game()
	return ProjectDataModel{
		ProjectDataID:  d.ID(),
		ProjectID:      d.ProjectID(),
		Name:           d.Name(),
		Slug:           d.Slug(),
		Description:    d.Description(),
		GameTitle:      g.Title(),
		GameTitleSort:  g.TitleSort(),
		GamePublisher:  g.Publisher(),
		GameYear:       g.Year(),
		GamePlayersMin: g.PlayersMin(),
		GamePlayersMax: g.PlayersMax(),
		GameLengthMin:  g.LengthMin(),
		GameLengthMax:  g.LengthMax(),
		Readme:         d.Readme(),
		Image:          d.Image(),
	}
}

// PackageMapper converts between registry.Package and PackageModel.
type PackageMapper struct{}

// ToDomain converts a model to a domain package.
func (PackageMapper) ToDomain(m PackageModel) registry.Package {
	return registry.NewPackageWithID(
		m.PackageID, m.ProjectID,
		m.Name, m.Slug, m.SortKey, m.Description,
		m.CreatedAt, m.CreatedBy,
	)
}

// ToModel converts a domain package to a model.
func (PackageMapper) ToModel(p registry.Package) PackageModel {
	return PackageModel{
		PackageID:   p.ID(),
		ProjectID:   p.ProjectID(),
		Name:        p.Name(),
		Slug:        p.Slug(),
		SortKey:     p.SortKey(),
		Description: p.Description(),
		CreatedAt:   p.CreatedAt(),
		CreatedBy:   p.CreatedBy(),
	}
}

// PackageHistoryMapper converts between registry.PackageHistory and PackageHistoryModel.
type PackageHistoryMapper struct{}

// ToDomain converts a model to a domain history record.
func (PackageHistoryMapper) ToDomain(m PackageHistoryModel) registry.PackageHistory {
	return registry.NewPackageHistoryWithID(
		m.PackageID, m.ProjectID,
		m.Name, m.Slug, m.SortKey, m.Description,
		m.CreatedAt, m.CreatedBy,
		m.DeletedAt, m.DeletedBy,
	)
}

// ToModel converts a domain history record to a model.
func (PackageHistoryMapper) ToModel(h registry.PackageHistory) PackageHistoryModel {
	return PackageHistoryModel{
		PackageID:   h.ID(),
		ProjectID:   h.ProjectID(),
		Name:        h.Name(),
		Slug:        h.Slug(),
		SortKey:     h.SortKey(),
		Description: h.Description(),
		CreatedAt:   h.CreatedAt(),
		CreatedBy:   h.CreatedBy(),
		DeletedAt:   h.DeletedAt(),
		DeletedBy:   h.DeletedBy(),
	}
}

// ReleaseMapper converts between registry.Release and ReleaseModel.
type ReleaseMapper struct{}

// ToDomain converts a model to a domain release.
func (ReleaseMapper) ToDomain(m ReleaseModel) registry.Release {
	return registry.NewReleaseWithID(
		m.ReleaseID, m.PackageID,
		registry.NewVersion(m.VersionMajor, m.VersionMinor, m.VersionPatch, m.VersionPre, m.VersionBuild),
		m.URL,
		m.PublishedAt, m.PublishedBy,
	)
}

// ToModel converts a domain release to a model.
func (ReleaseMapper) ToModel(r registry.Release) ReleaseModel {
	v := r.Version()
	return ReleaseModel{
		ReleaseID:    r.ID(),
		PackageID:    r.PackageID(),
		Version:      v.String(),
		VersionMajor: v.Major(),
		VersionMinor: v.Minor(),
		VersionPatch: v.Patch(),
		VersionPre:   v.Pre(),
		VersionBuild: v.Build(),
		URL:          r.URL(),
		PublishedAt:  r.PublishedAt(),
		PublishedBy:  r.PublishedBy(),
	}
}

// ReleaseHistoryMapper converts between registry.ReleaseHistory and ReleaseHistoryModel.
type ReleaseHistoryMapper struct{}

// ToDomain converts a model to a domain history record.
func (ReleaseHistoryMapper) ToDomain(m ReleaseHistoryModel) registry.ReleaseHistory {
	return registry.NewReleaseHistoryWithID(
		m.ReleaseID, m.PackageID,
		registry.NewVersion(m.VersionMajor, m.VersionMinor, m.VersionPatch, m.VersionPre, m.VersionBuild),
		m.URL,
		m.PublishedAt, m.PublishedBy,
		m.DeletedAt, m.DeletedBy,
	)
}

// ToModel converts a domain history record to a model.
func (ReleaseHistoryMapper) ToModel(h registry.ReleaseHistory) ReleaseHistoryModel {
	v := h.Version()
	return ReleaseHistoryModel{
		ReleaseID:    h.ID(),
		PackageID:    h.PackageID(),
		Version:      v.String(),
		VersionMajor: v.Major(),
		VersionMinor: v.Minor(),
		VersionPatch: v.Patch(),
		VersionPre:   v.Pre(),
		VersionBuild: v.Build(),
		URL:          h.URL(),
		PublishedAt:  h.PublishedAt(),
		PublishedBy:  h.PublishedBy(),
		DeletedAt:    h.DeletedAt(),
		DeletedBy:    h.DeletedBy(),
	}
}

// FileMapper converts between registry.File and FileModel.
type FileMapper struct{}

// ToDomain converts a model to a domain file.
func (FileMapper) ToDomain(m FileModel) registry.File {
	return registry.NewFileWithID(
		m.FileID, m.ReleaseID,
		m.Filename, m.URL, m.Size, m.Checksum, m.Requires, m.ContentType,
		m.PublishedAt, m.PublishedBy,
	)
}

// ToModel converts a domain file to a model.
func (FileMapper) ToModel(f registry.File) FileModel {
	return FileModel{
		FileID:      f.ID(),
		ReleaseID:   f.ReleaseID(),
		Filename:    f.Filename(),
		URL:         f.URL(),
		Size:        f.Size(),
		Checksum:    f.Checksum(),
		Requires:    f.Requires(),
		ContentType: f.ContentType(),
		PublishedAt: f.PublishedAt(),
		PublishedBy: f.PublishedBy(),
	}
}

// ImageMapper converts between media.Image and ImageModel.
type ImageMapper struct{}

// ToDomain converts a model to a domain image.
func (ImageMapper) ToDomain(m ImageModel) media.Image {
	return media.NewImage(media.NewImageRevision(
		m.ProjectID, m.Filename, m.URL, m.ContentType, m.PublishedAt, m.PublishedBy,
	))
}

// ToModel converts a domain image to a model.
func (ImageMapper) ToModel(i media.Image) ImageModel {
	return ImageModel{
		ProjectID:   i.ProjectID(),
		Filename:    i.Filename(),
		URL:         i.URL(),
		ContentType: i.ContentType(),
		PublishedAt: i.PublishedAt(),
		PublishedBy: i.PublishedBy(),
	}
}

// GalleryHistoryMapper converts between media.GalleryItem and GalleryHistoryModel.
type GalleryHistoryMapper struct{}

// ToDomain converts a model to a domain gallery item.
func (GalleryHistoryMapper) ToDomain(m GalleryHistoryModel) media.GalleryItem {
	return media.NewGalleryItemWithID(
		m.GalleryID, m.ProjectID,
		m.SortKey,
		m.Filename, m.Description,
		m.PublishedAt, m.PublishedBy,
		m.RemovedAt, m.RemovedBy,
	)
}

// ToModel converts a domain gallery item to a model.
func (GalleryHistoryMapper) ToModel(g media.GalleryItem) GalleryHistoryModel {
	return GalleryHistoryModel{
		GalleryID:   g.ID(),
		ProjectID:   g.ProjectID(),
		SortKey:     g.SortKey(),
		Filename:    g.Filename(),
		Description: g.Description(),
		PublishedAt: g.PublishedAt(),
		PublishedBy: g.PublishedBy(),
		RemovedAt:   g.RemovedAt(),
		RemovedBy:   g.RemovedBy(),
	}
}

// FlagMapper converts between moderation.Flag and FlagModel.
type FlagMapper struct{}

// ToDomain converts a model to a domain flag.
func (FlagMapper) ToDomain(m FlagModel) moderation.Flag {
	return moderation.NewFlagWithID(
		m.FlagID, m.ProjectID, m.UserID,
		moderation.FlagKind(m.Flag),
		m.Message,
		m.FlaggedAt,
		m.ClosedAt, m.ClosedBy,
	)
}

// ToModel converts a domain flag to a model.
func (FlagMapper) ToModel(f moderation.Flag) FlagModel {
	return FlagModel{
		FlagID:    f.ID(),
		ProjectID: f.ProjectID(),
		UserID:    f.FlaggedBy(),
		Flag:      int(f.Kind()),
		Message:   f.Message(),
		FlaggedAt: f.FlaggedAt(),
		ClosedAt:  f.ClosedAt(),
		ClosedBy:  f.ClosedBy(),
	}
}
