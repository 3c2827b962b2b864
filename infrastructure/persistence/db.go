package persistence

import (
	"context"
	"fmt"

	"github.com/ludolib/ludolib/internal/database"
)

// DDL for the full-text index over project metadata. SQLite carries the
// canonical FTS5 implementation (mattn/go-sqlite3 needs the sqlite_fts5
// build tag for the fts5 module to exist). Postgres mirrors it with a
// weighted tsvector column: title at weight A, publisher B, description D,
// so the title-dominant ranking survives on both drivers.
var (
	sqliteCreateSearchTable = []string{`
CREATE VIRTUAL TABLE IF NOT EXISTS projects_fts USING fts5(
    game_title,
    game_publisher,
    description
)`}

	postgresCreateSearchTable = []string{`
CREATE TABLE IF NOT EXISTS projects_fts (
    rowid BIGINT PRIMARY KEY,
    game_title TEXT NOT NULL DEFAULT '',
    game_publisher TEXT NOT NULL DEFAULT '',
    description TEXT NOT NULL DEFAULT '',
    tsv tsvector GENERATED ALWAYS AS (
        setweight(to_tsvector('english', coalesce(game_title, '')), 'A') ||
        setweight(to_tsvector('english', coalesce(game_publisher, '')), 'B') ||
        setweight(to_tsvector('english', coalesce(description, '')), 'D')
    ) STORED
)`,
		`CREATE INDEX IF NOT EXISTS idx_projects_fts_tsv ON projects_fts USING GIN (tsv)`,
	}
)

// Migrate runs GORM auto migration for all models and creates the
// full-text search table. Safe to run repeatedly.
func Migrate(ctx context.Context, db database.Database) error {
	gdb := db.GORM().WithContext(ctx)

	// Referenced tables first so foreign keys resolve as each table
	// is created.
	if err := gdb.AutoMigrate(
		&UserModel{},
		&ProjectHistoryModel{},
		&ProjectModel{},
		&ProjectDataModel{},
		&ProjectRevisionModel{},
		&OwnerModel{},
		&PlayerModel{},
		&TagModel{},
		&PackageHistoryModel{},
		&PackageModel{},
		&PackageRevisionModel{},
		&ReleaseHistoryModel{},
		&ReleaseModel{},
		&FileModel{},
		&ImageRevisionModel{},
		&ImageModel{},
		&GalleryHistoryModel{},
		&GalleryModel{},
		&FlagModel{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	ddl := sqliteCreateSearchTable
	if db.IsPostgres() {
		ddl = postgresCreateSearchTable
	}
	for _, stmt := range ddl {
		if err := gdb.Exec(stmt).Error; err != nil {
			return fmt.Errorf("create search table: %w", err)
		}
	}
	return nil
}
