// Package testdb provides a shared test database helper for fast,
// realistic testing against an in-memory SQLite database.
package testdb

import (
	"context"
	"testing"

	"github.com/ludolib/ludolib/infrastructure/persistence"
	"github.com/ludolib/ludolib/internal/database"
)

// New creates an in-memory SQLite database with the full schema applied,
// including the full-text search index. The database is automatically
// closed when the test finishes.
func New(t *testing.T) database.Database {
	t.Helper()
	ctx := context.Background()
	db := NewPlain(t)
	if err := persistence.Migrate(ctx, db); err != nil {
		t.Fatalf("testdb.New: migrate: %v", err)
	}
	return db
}

// NewPlain creates an in-memory SQLite database without running migrations.
// Useful for tests that manage their own schema.
func NewPlain(t *testing.T) database.Database {
	t.Helper()
	ctx := context.Background()
	db, err := database.NewDatabase(ctx, "sqlite:///:memory:")
	if err != nil {
		t.Fatalf("testdb.NewPlain: open database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}
