package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/ludolib/ludolib/domain/catalog"
	"github.com/ludolib/ludolib/domain/identity"
	"github.com/ludolib/ludolib/domain/media"
	"github.com/ludolib/ludolib/domain/moderation"
	"github.com/ludolib/ludolib/domain/registry"
	"github.com/ludolib/ludolib/internal/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countRows(t *testing.T, db database.Database, table string, query string, args ...any) int64 {
	t.Helper()
	var count int64
	err := db.Session(context.Background()).Table(table).Where(query, args...).Count(&count).Error
	require.NoError(t, err)
	return count
}

// seedFullProject builds a project with a package, release, file, image,
// gallery entry, tag, flag, and player attached.
func seedFullProject(t *testing.T, db database.Database, userID int64, name string) catalog.Project {
	t.Helper()
	ctx := context.Background()
	now := time.Now().UnixNano()

	project := seedProject(t, NewProjectStore(db), userID, name, "Title "+name, "", "about "+name)

	pkg, err := NewPackageStore(db).Create(ctx, registry.NewPackageHistory(
		project.ID(), "Base Game", "Base-Game", 0, "", now, userID,
	))
	require.NoError(t, err)

	version, err := registry.ParseVersion("1.0.0")
	require.NoError(t, err)
	release, err := NewReleaseStore(db).Publish(ctx, registry.NewReleaseHistory(
		pkg.ID(), version, "https://example.com/1.0.0", now, userID,
	))
	require.NoError(t, err)

	_, err = NewFileStore(db).Add(ctx, registry.NewFile(
		release.ID(), "game.zip", "https://example.com/game.zip", 1024, "abc", "", "application/zip", now, userID,
	))
	require.NoError(t, err)

	require.NoError(t, NewImageStore(db).AddRevision(ctx, media.NewImageRevision(
		project.ID(), "cover.png", "https://cdn.example.com/cover.png", "image/png", now, userID,
	)))

	_, err = NewGalleryStore(db).Append(ctx, project.ID(), "cover.png", userID, now)
	require.NoError(t, err)

	require.NoError(t, NewTagStore(db).Add(ctx, catalog.NewTag(project.ID(), "strategy")))

	_, err = NewFlagStore(db).Add(ctx, moderation.NewFlag(project.ID(), userID, moderation.FlagSpam, nil, now))
	require.NoError(t, err)

	require.NoError(t, NewMembershipStore(db).AddPlayer(ctx, identity.NewPlayRecord(userID, project.ID())))

	return project
}

func TestMaintenanceStoreDeleteProject(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	store := NewMaintenanceStore(db)
	user := seedUser(t, db, "alice")

	doomed := seedFullProject(t, db, user.ID(), "doomed")
	kept := seedFullProject(t, db, user.ID(), "kept")

	require.NoError(t, store.DeleteProject(ctx, doomed.ID()))

	for _, table := range []string{
		"projects", "projects_history", "projects_data", "projects_revisions",
		"tags", "owners", "players", "flags",
		"packages", "packages_history",
		"images", "image_revisions", "galleries", "galleries_history",
	} {
		assert.Zero(t, countRows(t, db, table, "project_id = ?", doomed.ID()), "table %s", table)
	}
	// Only kept's release and file rows remain.
	assert.Equal(t, int64(1), countRows(t, db, "releases", "1 = 1"))
	assert.Equal(t, int64(1), countRows(t, db, "releases_history", "1 = 1"))
	assert.Zero(t, countRows(t, db, "projects_fts", "rowid = ?", doomed.ID()))

	// The other project's graph is untouched.
	assert.Equal(t, int64(1), countRows(t, db, "projects", "project_id = ?", kept.ID()))
	assert.Equal(t, int64(1), countRows(t, db, "packages", "project_id = ?", kept.ID()))
	assert.Equal(t, int64(1), countRows(t, db, "files", "1 = 1"))
	assert.Equal(t, int64(1), countRows(t, db, "flags", "project_id = ?", kept.ID()))

	// The users survive.
	assert.Equal(t, int64(1), countRows(t, db, "users", "user_id = ?", user.ID()))
}

func TestMaintenanceStoreDeleteProjectUnknown(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	store := NewMaintenanceStore(db)

	err := store.DeleteProject(ctx, 999)
	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestMaintenanceStoreMergeUser(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	store := NewMaintenanceStore(db)
	members := NewMembershipStore(db)

	src := seedUser(t, db, "duplicate")
	dst := seedUser(t, db, "canonical")

	project := seedFullProject(t, db, src.ID(), "shared")

	// Both users own the project; the merge must collapse to one row.
	require.NoError(t, members.AddOwner(ctx, identity.NewOwnership(dst.ID(), project.ID())))

	require.NoError(t, store.MergeUser(ctx, src.ID(), dst.ID()))

	assert.Zero(t, countRows(t, db, "users", "user_id = ?", src.ID()))
	assert.Equal(t, int64(1), countRows(t, db, "owners", "project_id = ?", project.ID()))
	assert.Equal(t, int64(1), countRows(t, db, "owners", "user_id = ? AND project_id = ?", dst.ID(), project.ID()))
	assert.Equal(t, int64(1), countRows(t, db, "players", "user_id = ? AND project_id = ?", dst.ID(), project.ID()))

	// Attribution columns repoint at the surviving user.
	assert.Zero(t, countRows(t, db, "projects", "modified_by = ?", src.ID()))
	assert.Zero(t, countRows(t, db, "projects_revisions", "modified_by = ?", src.ID()))
	assert.Zero(t, countRows(t, db, "packages_history", "created_by = ?", src.ID()))
	assert.Zero(t, countRows(t, db, "releases_history", "published_by = ?", src.ID()))
	assert.Zero(t, countRows(t, db, "files", "published_by = ?", src.ID()))
	assert.Zero(t, countRows(t, db, "galleries_history", "published_by = ?", src.ID()))
	assert.Zero(t, countRows(t, db, "flags", "user_id = ?", src.ID()))
	assert.Equal(t, int64(1), countRows(t, db, "projects", "modified_by = ?", dst.ID()))
	assert.Equal(t, int64(1), countRows(t, db, "flags", "user_id = ?", dst.ID()))
}

func TestMaintenanceStoreMergeUserUnknown(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	store := NewMaintenanceStore(db)
	user := seedUser(t, db, "alice")

	assert.ErrorIs(t, store.MergeUser(ctx, 999, user.ID()), database.ErrNotFound)
	assert.ErrorIs(t, store.MergeUser(ctx, user.ID(), 999), database.ErrNotFound)
}
