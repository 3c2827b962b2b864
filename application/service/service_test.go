package service_test

import (
	"context"
	"testing"

	"github.com/ludolib/ludolib/application/service"
	"github.com/ludolib/ludolib/domain/catalog"
	"github.com/ludolib/ludolib/domain/identity"
	"github.com/ludolib/ludolib/domain/media"
	"github.com/ludolib/ludolib/domain/registry"
	"github.com/ludolib/ludolib/infrastructure/persistence"
	"github.com/ludolib/ludolib/internal/database"
	"github.com/ludolib/ludolib/internal/testdb"
	"github.com/stretchr/testify/require"
)

type services struct {
	catalog     *service.Catalog
	registry    *service.Registry
	media       *service.Media
	identity    *service.Identity
	moderation  *service.Moderation
	maintenance *service.Maintenance
}

func newServices(t *testing.T) services {
	t.Helper()
	return wireServices(testdb.New(t))
}

func wireServices(db database.Database) services {
	projects := persistence.NewProjectStore(db)
	members := persistence.NewMembershipStore(db)
	return services{
		catalog:     service.NewCatalog(projects, persistence.NewTagStore(db), members, nil),
		registry:    service.NewRegistry(persistence.NewPackageStore(db), persistence.NewReleaseStore(db), persistence.NewFileStore(db), projects, nil),
		media:       service.NewMedia(persistence.NewImageStore(db), persistence.NewGalleryStore(db), projects, nil),
		identity:    service.NewIdentity(persistence.NewUserStore(db), members, nil),
		moderation:  service.NewModeration(persistence.NewFlagStore(db), nil),
		maintenance: service.NewMaintenance(persistence.NewMaintenanceStore(db), projects, nil),
	}
}

func register(t *testing.T, svc services, username string) identity.User {
	t.Helper()
	user, err := svc.identity.Register(context.Background(), username)
	require.NoError(t, err)
	return user
}

func createProject(t *testing.T, svc services, ownerID int64, name string) catalog.Project {
	t.Helper()
	project, err := svc.catalog.Create(context.Background(), service.ProjectCreateParams{
		OwnerID:   ownerID,
		Name:      name,
		GameTitle: "Title " + name,
	})
	require.NoError(t, err)
	return project
}

func currentRevision(t *testing.T, svc services, projectID int64) int64 {
	t.Helper()
	project, err := svc.catalog.Get(context.Background(), catalog.WithProjectID(projectID))
	require.NoError(t, err)
	return project.Revision()
}

func TestCatalogCreateValidatesParams(t *testing.T) {
	ctx := context.Background()
	svc := newServices(t)

	_, err := svc.catalog.Create(ctx, service.ProjectCreateParams{OwnerID: 1, Name: "No Title"})
	require.Error(t, err)

	_, err = svc.catalog.Create(ctx, service.ProjectCreateParams{OwnerID: 1, GameTitle: "No Name"})
	require.Error(t, err)
}

func TestRegistryBumpsProjectRevision(t *testing.T) {
	ctx := context.Background()
	svc := newServices(t)
	user := register(t, svc, "alice")
	project := createProject(t, svc, user.ID(), "Test Project")

	pkg, err := svc.registry.CreatePackage(ctx, service.PackageCreateParams{
		ProjectID: project.ID(),
		UserID:    user.ID(),
		Name:      "Base Game",
	})
	require.NoError(t, err)
	require.Equal(t, int64(2), currentRevision(t, svc, project.ID()))

	require.NoError(t, svc.registry.RenamePackage(ctx, user.ID(), pkg.ID(), "Core Set"))
	require.Equal(t, int64(3), currentRevision(t, svc, project.ID()))

	release, err := svc.registry.PublishRelease(ctx, service.ReleasePublishParams{
		PackageID: pkg.ID(),
		UserID:    user.ID(),
		Version:   "1.0.0",
	})
	require.NoError(t, err)
	require.Equal(t, int64(4), currentRevision(t, svc, project.ID()))

	require.NoError(t, svc.registry.DeleteRelease(ctx, user.ID(), release.ID()))
	require.NoError(t, svc.registry.DeletePackage(ctx, user.ID(), pkg.ID()))
	require.Equal(t, int64(6), currentRevision(t, svc, project.ID()))

	// The content snapshot is unchanged across all six revisions.
	first, err := svc.catalog.AtRevision(ctx, project.ID(), 1)
	require.NoError(t, err)
	last, err := svc.catalog.AtRevision(ctx, project.ID(), 6)
	require.NoError(t, err)
	require.Equal(t, first.Game().Title(), last.Game().Title())
}

func TestRegistryPublishRejectsPartialVersion(t *testing.T) {
	ctx := context.Background()
	svc := newServices(t)
	user := register(t, svc, "alice")
	project := createProject(t, svc, user.ID(), "Test Project")

	pkg, err := svc.registry.CreatePackage(ctx, service.PackageCreateParams{
		ProjectID: project.ID(),
		UserID:    user.ID(),
		Name:      "Base Game",
	})
	require.NoError(t, err)

	_, err = svc.registry.PublishRelease(ctx, service.ReleasePublishParams{
		PackageID: pkg.ID(),
		UserID:    user.ID(),
		Version:   "1.0",
	})
	require.ErrorIs(t, err, registry.ErrMalformedVersion)
}

func TestMediaGalleryRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := newServices(t)
	user := register(t, svc, "alice")
	project := createProject(t, svc, user.ID(), "Test Project")

	first, err := svc.media.AddGalleryImage(ctx, service.ImageAddParams{
		ProjectID: project.ID(),
		UserID:    user.ID(),
		Filename:  "a.png",
		URL:       "https://cdn.example.com/a.png",
	})
	require.NoError(t, err)
	second, err := svc.media.AddGalleryImage(ctx, service.ImageAddParams{
		ProjectID: project.ID(),
		UserID:    user.ID(),
		Filename:  "b.png",
		URL:       "https://cdn.example.com/b.png",
	})
	require.NoError(t, err)

	// Move the first image to the end.
	mapping, err := svc.media.UpdateGallery(ctx, project.ID(), user.ID(), media.GalleryPatch{
		Ops: []media.GalleryOp{media.MoveOp(first.ID(), nil)},
	})
	require.NoError(t, err)

	gallery, err := svc.media.Gallery(ctx, project.ID())
	require.NoError(t, err)
	require.Len(t, gallery, 2)
	require.Equal(t, second.ID(), gallery[0].ID())
	require.Equal(t, mapping[first.ID()], gallery[1].ID())

	// Each gallery image also lands in the image log.
	url, err := svc.media.ImageURL(ctx, project.ID(), "a.png")
	require.NoError(t, err)
	require.Equal(t, "https://cdn.example.com/a.png", url)
}

func TestIdentityPlayers(t *testing.T) {
	ctx := context.Background()
	svc := newServices(t)
	user := register(t, svc, "alice")
	project := createProject(t, svc, user.ID(), "Test Project")

	require.NoError(t, svc.identity.AddPlayer(ctx, user.ID(), project.ID()))
	players, err := svc.identity.Players(ctx, project.ID())
	require.NoError(t, err)
	require.Len(t, players, 1)

	require.NoError(t, svc.identity.RemovePlayer(ctx, user.ID(), project.ID()))
	players, err = svc.identity.Players(ctx, project.ID())
	require.NoError(t, err)
	require.Empty(t, players)
}
