package persistence

import (
	"context"
	"testing"

	"github.com/ludolib/ludolib/domain/catalog"
	"github.com/ludolib/ludolib/internal/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectStoreCreate(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	store := NewProjectStore(db)
	user := seedUser(t, db, "alice")

	min, max := int64(2), int64(4)
	data := catalog.NewProjectData(
		0, "Test Project", "", "A game about testing",
		catalog.NewGameData("A Game of Tests", "Game of Tests, A", "Test Publishing", "2020", &min, &max, nil, nil),
		"# Readme", nil,
	)
	project, err := store.Create(ctx, user.ID(), data)
	require.NoError(t, err)

	assert.NotZero(t, project.ID())
	assert.Equal(t, "Test Project", project.Name())
	assert.Equal(t, "test project", project.NormalizedName())
	assert.Equal(t, "Test-Project", project.Slug())
	assert.Equal(t, int64(1), project.Revision())
	assert.Equal(t, user.ID(), project.ModifiedBy())
	assert.Equal(t, "A Game of Tests", project.Game().Title())

	// The creating user becomes an owner.
	owners, err := NewMembershipStore(db).Owners(ctx, project.ID())
	require.NoError(t, err)
	require.Len(t, owners, 1)
	assert.Equal(t, "alice", owners[0].Username())

	revisions, err := store.Revisions(ctx, project.ID())
	require.NoError(t, err)
	require.Len(t, revisions, 1)
	assert.Equal(t, int64(1), revisions[0].Revision())
}

func TestProjectStoreCreateRejectsInvalid(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	store := NewProjectStore(db)
	user := seedUser(t, db, "alice")

	_, err := store.Create(ctx, user.ID(), catalog.NewProjectData(
		0, "", "", "",
		catalog.NewGameData("Title", "", "", "", nil, nil, nil, nil),
		"", nil,
	))
	assert.ErrorIs(t, err, catalog.ErrInvalidName)

	min, max := int64(5), int64(2)
	_, err = store.Create(ctx, user.ID(), catalog.NewProjectData(
		0, "Bad Bounds", "", "",
		catalog.NewGameData("Title", "", "", "", &min, &max, nil, nil),
		"", nil,
	))
	assert.ErrorIs(t, err, catalog.ErrPlayerBounds)
}

func TestProjectStoreCreateDuplicateName(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	store := NewProjectStore(db)
	user := seedUser(t, db, "alice")

	seedProject(t, store, user.ID(), "Dominion", "Dominion", "", "")

	// Names unique modulo case and punctuation.
	_, err := store.Create(ctx, user.ID(), catalog.NewProjectData(
		0, "DOMINION!", "", "",
		catalog.NewGameData("Dominion", "", "", "", nil, nil, nil, nil),
		"", nil,
	))
	assert.Error(t, err)
}

func TestProjectStoreUpdate(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	store := NewProjectStore(db)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	project := seedProject(t, store, alice.ID(), "Test Project", "A Game of Tests", "Test Publishing", "original text")

	description := "updated text"
	readme := "now with a readme"
	updated, err := store.Update(ctx, bob.ID(), project.ID(), catalog.ProjectPatch{
		Description: &description,
		Readme:      &readme,
		PlayersMin:  catalog.Set(int64(3)),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(2), updated.Revision())
	assert.Equal(t, "updated text", updated.Description())
	assert.Equal(t, "now with a readme", updated.Readme())
	require.NotNil(t, updated.Game().PlayersMin())
	assert.Equal(t, int64(3), *updated.Game().PlayersMin())
	assert.Equal(t, bob.ID(), updated.ModifiedBy())
	// Untouched fields carry over.
	assert.Equal(t, "A Game of Tests", updated.Game().Title())
	assert.Equal(t, project.CreatedAt(), updated.CreatedAt())

	reread, err := store.FindOne(ctx, catalog.WithProjectID(project.ID()))
	require.NoError(t, err)
	assert.Equal(t, "updated text", reread.Description())
	assert.Equal(t, int64(2), reread.Revision())
}

func TestProjectStoreUpdateClearsOptionalField(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	store := NewProjectStore(db)
	user := seedUser(t, db, "alice")
	project := seedProject(t, store, user.ID(), "Test Project", "Title", "", "")

	_, err := store.Update(ctx, user.ID(), project.ID(), catalog.ProjectPatch{
		PlayersMin: catalog.Set(int64(2)),
	})
	require.NoError(t, err)

	cleared, err := store.Update(ctx, user.ID(), project.ID(), catalog.ProjectPatch{
		PlayersMin: catalog.Clear[int64](),
	})
	require.NoError(t, err)
	assert.Nil(t, cleared.Game().PlayersMin())

	reread, err := store.FindOne(ctx, catalog.WithProjectID(project.ID()))
	require.NoError(t, err)
	assert.Nil(t, reread.Game().PlayersMin())
}

func TestProjectStoreUpdateEmptyPatch(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	store := NewProjectStore(db)
	user := seedUser(t, db, "alice")
	project := seedProject(t, store, user.ID(), "Test Project", "Title", "", "")

	_, err := store.Update(ctx, user.ID(), project.ID(), catalog.ProjectPatch{})
	assert.ErrorIs(t, err, catalog.ErrEmptyPatch)
}

func TestProjectStoreUpdateUnknownProject(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	store := NewProjectStore(db)

	description := "text"
	_, err := store.Update(ctx, 1, 999, catalog.ProjectPatch{Description: &description})
	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestProjectStoreRevisionsAreGapless(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	store := NewProjectStore(db)
	user := seedUser(t, db, "alice")
	project := seedProject(t, store, user.ID(), "Test Project", "Title", "", "")

	for i := 0; i < 3; i++ {
		description := "text " + string(rune('a'+i))
		_, err := store.Update(ctx, user.ID(), project.ID(), catalog.ProjectPatch{Description: &description})
		require.NoError(t, err)
	}
	require.NoError(t, store.BumpRevision(ctx, user.ID(), project.ID()))

	revisions, err := store.Revisions(ctx, project.ID())
	require.NoError(t, err)
	require.Len(t, revisions, 5)
	for i, rev := range revisions {
		assert.Equal(t, int64(i+1), rev.Revision())
	}

	current, err := store.FindOne(ctx, catalog.WithProjectID(project.ID()))
	require.NoError(t, err)
	assert.Equal(t, int64(5), current.Revision())
}

func TestProjectStoreBumpRevisionReusesSnapshot(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	store := NewProjectStore(db)
	user := seedUser(t, db, "alice")
	project := seedProject(t, store, user.ID(), "Test Project", "Title", "", "body")

	require.NoError(t, store.BumpRevision(ctx, user.ID(), project.ID()))

	revisions, err := store.Revisions(ctx, project.ID())
	require.NoError(t, err)
	require.Len(t, revisions, 2)
	assert.Equal(t, revisions[0].DataID(), revisions[1].DataID())

	// The bumped revision still resolves to the same content.
	at, err := store.AtRevision(ctx, project.ID(), 2)
	require.NoError(t, err)
	assert.Equal(t, "body", at.Description())
	assert.Equal(t, int64(2), at.Revision())
}

func TestProjectStoreAtRevision(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	store := NewProjectStore(db)
	user := seedUser(t, db, "alice")
	project := seedProject(t, store, user.ID(), "Test Project", "Title", "", "first")

	description := "second"
	_, err := store.Update(ctx, user.ID(), project.ID(), catalog.ProjectPatch{Description: &description})
	require.NoError(t, err)

	old, err := store.AtRevision(ctx, project.ID(), 1)
	require.NoError(t, err)
	assert.Equal(t, "first", old.Description())
	assert.Equal(t, int64(1), old.Revision())

	latest, err := store.AtRevision(ctx, project.ID(), 2)
	require.NoError(t, err)
	assert.Equal(t, "second", latest.Description())

	_, err = store.AtRevision(ctx, project.ID(), 3)
	assert.ErrorIs(t, err, ErrRevisionNotFound)
}

func TestProjectStoreRename(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	store := NewProjectStore(db)
	user := seedUser(t, db, "alice")
	project := seedProject(t, store, user.ID(), "Old Name", "Title", "", "first")

	description := "second"
	_, err := store.Update(ctx, user.ID(), project.ID(), catalog.ProjectPatch{Description: &description})
	require.NoError(t, err)

	require.NoError(t, store.Rename(ctx, project.ID(), "New Name"))

	renamed, err := store.FindOne(ctx, catalog.WithProjectID(project.ID()))
	require.NoError(t, err)
	assert.Equal(t, "New Name", renamed.Name())
	assert.Equal(t, "new name", renamed.NormalizedName())
	assert.Equal(t, "New-Name", renamed.Slug())
	// A rename is not a revision.
	assert.Equal(t, int64(2), renamed.Revision())

	// The current snapshot moves with the rename; older ones keep the
	// name they were written with.
	current, err := store.AtRevision(ctx, project.ID(), 2)
	require.NoError(t, err)
	assert.Equal(t, "New Name", current.Name())

	old, err := store.AtRevision(ctx, project.ID(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Old Name", old.Name())
}

func TestProjectStoreFindByNormalizedName(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	store := NewProjectStore(db)
	user := seedUser(t, db, "alice")
	project := seedProject(t, store, user.ID(), "Café Crawl!", "Café Crawl", "", "")

	found, err := store.FindOne(ctx, catalog.WithNormalizedName("cafe crawl"))
	require.NoError(t, err)
	assert.Equal(t, project.ID(), found.ID())
}
