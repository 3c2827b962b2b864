package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/ludolib/ludolib/domain/registry"
	"github.com/ludolib/ludolib/internal/database"
	"github.com/ludolib/ludolib/internal/slug"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createPackage(t *testing.T, store *PackageStore, projectID, userID int64, name string) registry.Package {
	t.Helper()
	pkg, err := store.Create(context.Background(), registry.NewPackageHistory(
		projectID, name, slug.Slug(name), 0, "", time.Now().UnixNano(), userID,
	))
	require.NoError(t, err)
	return pkg
}

func TestPackageStoreCreateAssignsSortKeys(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	store := NewPackageStore(db)
	project := seedProjectID(t, db)

	first := createPackage(t, store, project, 1, "Base Game")
	second := createPackage(t, store, project, 1, "Expansion")
	assert.Equal(t, int64(0), first.SortKey())
	assert.Equal(t, int64(1), second.SortKey())

	// Sort keys are per project.
	other := createPackage(t, store, seedProjectID(t, db), 1, "Base Game")
	assert.Equal(t, int64(0), other.SortKey())

	packages, err := store.Find(ctx, registry.WithProjectID(project))
	require.NoError(t, err)
	assert.Len(t, packages, 2)
}

func TestPackageStoreSortKeysNeverReused(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	store := NewPackageStore(db)
	project := seedProjectID(t, db)

	first := createPackage(t, store, project, 1, "Base Game")
	second := createPackage(t, store, project, 1, "Expansion")

	require.NoError(t, store.SoftDelete(ctx, 1, first.ID(), time.Now().UnixNano()))

	// The deleted package keeps its key, so the next one gets a fresh one.
	third := createPackage(t, store, project, 1, "Promo Pack")
	assert.Equal(t, int64(2), third.SortKey())

	live, err := store.Find(ctx, registry.WithProjectID(project))
	require.NoError(t, err)
	require.Len(t, live, 2)
	keys := []int64{live[0].SortKey(), live[1].SortKey()}
	assert.ElementsMatch(t, []int64{second.SortKey(), third.SortKey()}, keys)
}

func TestPackageStoreCreateRejectsBadName(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	store := NewPackageStore(db)
	project := seedProjectID(t, db)

	for _, name := range []string{"", " padded ", "two  spaces"} {
		_, err := store.Create(ctx, registry.NewPackageHistory(
			project, name, "", 0, "", time.Now().UnixNano(), 1,
		))
		assert.ErrorIs(t, err, registry.ErrInvalidPackageName, "name %q", name)
	}
}

func TestPackageStoreRename(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	store := NewPackageStore(db)
	project := seedProjectID(t, db)
	pkg := createPackage(t, store, project, 1, "Base Game")

	now := time.Now().UnixNano()
	require.NoError(t, store.Rename(ctx, 2, pkg.ID(), "Core Set", "Core-Set", now))

	renamed, err := store.FindOne(ctx, registry.WithPackageName("Core Set"))
	require.NoError(t, err)
	assert.Equal(t, pkg.ID(), renamed.ID())
	assert.Equal(t, "Core-Set", renamed.Slug())
	// The sort key survives renames.
	assert.Equal(t, pkg.SortKey(), renamed.SortKey())

	hist, err := store.History(ctx, pkg.ID())
	require.NoError(t, err)
	assert.Equal(t, "Core Set", hist.Name())

	revisions, err := store.Revisions(ctx, pkg.ID())
	require.NoError(t, err)
	require.Len(t, revisions, 1)
	assert.Equal(t, "Core Set", revisions[0].Name())
	assert.Equal(t, int64(2), revisions[0].ModifiedBy())
	assert.Equal(t, now, revisions[0].ModifiedAt())
}

func TestPackageStoreRenameRejectsBadName(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	store := NewPackageStore(db)
	project := seedProjectID(t, db)
	pkg := createPackage(t, store, project, 1, "Base Game")

	err := store.Rename(ctx, 1, pkg.ID(), " bad ", "bad", time.Now().UnixNano())
	assert.ErrorIs(t, err, registry.ErrInvalidPackageName)
}

func TestPackageStoreSoftDelete(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	store := NewPackageStore(db)
	project := seedProjectID(t, db)
	pkg := createPackage(t, store, project, 1, "Base Game")

	now := time.Now().UnixNano()
	require.NoError(t, store.SoftDelete(ctx, 2, pkg.ID(), now))

	// Gone from the current projection, kept in history with the markers.
	_, err := store.FindOne(ctx, registry.WithPackageID(pkg.ID()))
	assert.ErrorIs(t, err, database.ErrNotFound)

	hist, err := store.History(ctx, pkg.ID())
	require.NoError(t, err)
	require.True(t, hist.Deleted())
	assert.Equal(t, now, *hist.DeletedAt())
	assert.Equal(t, int64(2), *hist.DeletedBy())

	// Deleting twice reports not found.
	err = store.SoftDelete(ctx, 2, pkg.ID(), time.Now().UnixNano())
	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestPackageStoreHistoryUnknown(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	store := NewPackageStore(db)

	_, err := store.History(ctx, 999)
	assert.ErrorIs(t, err, database.ErrNotFound)
}
