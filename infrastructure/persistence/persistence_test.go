package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/ludolib/ludolib/domain/catalog"
	"github.com/ludolib/ludolib/domain/identity"
	"github.com/ludolib/ludolib/internal/database"
	"github.com/stretchr/testify/require"
)

// newTestDB creates a migrated in-memory SQLite database for testing.
// Cannot use the testdb package here due to import cycle (testdb imports
// persistence).
func newTestDB(t *testing.T) database.Database {
	t.Helper()
	ctx := context.Background()
	db, err := database.NewDatabase(ctx, "sqlite:///:memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, Migrate(ctx, db))
	return db
}

func seedUser(t *testing.T, db database.Database, username string) identity.User {
	t.Helper()
	user, err := NewUserStore(db).Save(context.Background(), identity.NewUser(username, time.Now().UnixNano()))
	require.NoError(t, err)
	return user
}

// seedProjectID allocates a bare project history row. Child tables carry
// foreign keys to projects_history, so store tests that exercise a single
// child table still need a real parent.
func seedProjectID(t *testing.T, db database.Database) int64 {
	t.Helper()
	row := ProjectHistoryModel{CreatedAt: time.Now().UnixNano()}
	require.NoError(t, db.Session(context.Background()).Create(&row).Error)
	return row.ProjectID
}

func seedProject(t *testing.T, store *ProjectStore, userID int64, name, title, publisher, description string) catalog.Project {
	t.Helper()
	data := catalog.NewProjectData(
		0, name, "", description,
		catalog.NewGameData(title, title, publisher, "2024", nil, nil, nil, nil),
		"", nil,
	)
	project, err := store.Create(context.Background(), userID, data)
	require.NoError(t, err)
	return project
}
