package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/ludolib/ludolib/domain/registry"
	"github.com/ludolib/ludolib/internal/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedPackageID creates a package under a fresh project so release rows
// have a real parent to reference.
func seedPackageID(t *testing.T, db database.Database) int64 {
	t.Helper()
	return createPackage(t, NewPackageStore(db), seedProjectID(t, db), 1, "Base Game").ID()
}

func seedReleaseID(t *testing.T, db database.Database) int64 {
	t.Helper()
	return publishRelease(t, NewReleaseStore(db), seedPackageID(t, db), "1.0.0").ID()
}

func publishRelease(t *testing.T, store *ReleaseStore, packageID int64, version string) registry.Release {
	t.Helper()
	v, err := registry.ParseVersion(version)
	require.NoError(t, err)
	release, err := store.Publish(context.Background(), registry.NewReleaseHistory(
		packageID, v, "https://example.com/"+version, time.Now().UnixNano(), 1,
	))
	require.NoError(t, err)
	return release
}

func TestReleaseStorePublish(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	store := NewReleaseStore(db)
	pkg := seedPackageID(t, db)

	release := publishRelease(t, store, pkg, "1.2.3-rc.1+build.5")
	assert.NotZero(t, release.ID())
	assert.Equal(t, "1.2.3-rc.1+build.5", release.Version().String())

	found, err := store.FindOne(ctx, registry.WithPackageID(pkg))
	require.NoError(t, err)
	assert.Equal(t, release.ID(), found.ID())
	assert.Equal(t, "rc.1", found.Version().Pre())
	assert.Equal(t, "build.5", found.Version().Build())
}

func TestReleaseStorePublishDuplicateVersion(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	store := NewReleaseStore(db)
	pkg := seedPackageID(t, db)

	publishRelease(t, store, pkg, "1.0.0")

	v, err := registry.ParseVersion("1.0.0")
	require.NoError(t, err)
	_, err = store.Publish(ctx, registry.NewReleaseHistory(pkg, v, "", time.Now().UnixNano(), 1))
	assert.Error(t, err)

	// The same version under another package is fine.
	publishRelease(t, store, seedPackageID(t, db), "1.0.0")
}

func TestReleaseStorePrecedenceOrder(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	store := NewReleaseStore(db)
	pkg := seedPackageID(t, db)

	for _, version := range []string{"1.0.0", "2.0.0-rc.1", "2.0.0", "1.5.0", "2.0.0-rc.2"} {
		publishRelease(t, store, pkg, version)
	}

	releases, err := store.ForPackage(ctx, pkg)
	require.NoError(t, err)

	got := make([]string, len(releases))
	for i, r := range releases {
		got[i] = r.Version().String()
	}
	// A release outranks its own pre-releases.
	assert.Equal(t, []string{"2.0.0", "2.0.0-rc.2", "2.0.0-rc.1", "1.5.0", "1.0.0"}, got)

	latest, err := store.Latest(ctx, pkg)
	require.NoError(t, err)
	assert.Equal(t, "2.0.0", latest.Version().String())
}

func TestReleaseStoreLatestEmpty(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	store := NewReleaseStore(db)

	_, err := store.Latest(ctx, 1)
	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestReleaseStoreSoftDelete(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	store := NewReleaseStore(db)
	pkg := seedPackageID(t, db)

	release := publishRelease(t, store, pkg, "1.0.0")
	require.NoError(t, store.SoftDelete(ctx, 2, release.ID(), time.Now().UnixNano()))

	releases, err := store.ForPackage(ctx, pkg)
	require.NoError(t, err)
	assert.Empty(t, releases)

	// The version stays taken by the soft-deleted release.
	v, err := registry.ParseVersion("1.0.0")
	require.NoError(t, err)
	_, err = store.Publish(ctx, registry.NewReleaseHistory(pkg, v, "", time.Now().UnixNano(), 1))
	assert.Error(t, err)

	err = store.SoftDelete(ctx, 2, release.ID(), time.Now().UnixNano())
	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestFileStoreAddAndList(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	store := NewFileStore(db)
	rel := seedReleaseID(t, db)

	now := time.Now().UnixNano()
	zip, err := store.Add(ctx, registry.NewFile(rel, "game.zip", "https://example.com/game.zip", 1024, "abc123", "", "application/zip", now, 1))
	require.NoError(t, err)
	assert.NotZero(t, zip.ID())

	_, err = store.Add(ctx, registry.NewFile(rel, "assets.dat", "https://example.com/assets.dat", 2048, "def456", "base >= 1.0.0", "application/octet-stream", now, 1))
	require.NoError(t, err)

	// Filenames are unique per release.
	_, err = store.Add(ctx, registry.NewFile(rel, "game.zip", "", 0, "", "", "", now, 1))
	assert.Error(t, err)

	files, err := store.ForRelease(ctx, rel)
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "assets.dat", files[0].Filename())
	assert.Equal(t, "game.zip", files[1].Filename())
	assert.Equal(t, "base >= 1.0.0", files[0].Requires())
}

func TestFileStoreAddRejectsInvalid(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	store := NewFileStore(db)

	_, err := store.Add(ctx, registry.NewFile(1, "", "", 0, "", "", "", 0, 1))
	assert.ErrorIs(t, err, registry.ErrInvalidFile)
}
