package persistence

import (
	"fmt"
	"strings"

	"github.com/ludolib/ludolib/internal/database"
	"gorm.io/gorm"
)

// Weights for bm25 ranking, in the search table's column order
// (game_title, game_publisher, description). Title matches dominate.
const (
	searchWeightTitle     = 100.0
	searchWeightPublisher = 1.0
	searchWeightBody      = 1.0
)

// quoteMatch wraps user input as an FTS5 string literal so that operators
// and punctuation in the query are matched verbatim instead of parsed.
func quoteMatch(q string) string {
	return `"` + strings.ReplaceAll(q, `"`, `""`) + `"`
}

// postgresRankWeights is the ts_rank weight array in Postgres label order
// {D, C, B, A}. Title carries weight A, publisher B, description D, so the
// title-to-body ratio matches the bm25 weights above.
const postgresRankWeights = `'{0.01, 0.01, 0.01, 1.0}'`

// searchIndex maintains the projects_fts table. On SQLite it is an FTS5
// virtual table keyed by rowid; on Postgres a shadow table with a stored
// weighted tsvector column queried through ts_rank.
type searchIndex struct {
	db database.Database
}

func (s searchIndex) insert(tx *gorm.DB, projectID int64, title, publisher, description string) error {
	err := tx.Exec(
		`INSERT INTO projects_fts (rowid, game_title, game_publisher, description) VALUES (?, ?, ?, ?)`,
		projectID, title, publisher, description,
	).Error
	if err != nil {
		return fmt.Errorf("index project %d: %w", projectID, err)
	}
	return nil
}

func (s searchIndex) delete(tx *gorm.DB, projectID int64) error {
	if err := tx.Exec(`DELETE FROM projects_fts WHERE rowid = ?`, projectID).Error; err != nil {
		return fmt.Errorf("unindex project %d: %w", projectID, err)
	}
	return nil
}

func (s searchIndex) replace(tx *gorm.DB, projectID int64, title, publisher, description string) error {
	if err := s.delete(tx, projectID); err != nil {
		return err
	}
	return s.insert(tx, projectID, title, publisher, description)
}

func (s searchIndex) clear(tx *gorm.DB) error {
	if err := tx.Exec(`DELETE FROM projects_fts`).Error; err != nil {
		return fmt.Errorf("clear search index: %w", err)
	}
	return nil
}

// apply narrows a projects query to full-text matches. On SQLite the rank
// is negated bm25, computed inline where needed; on Postgres the join
// brings in a ranked subquery whose relevance column is a real column of
// the FROM clause, usable in WHERE and ORDER BY alike.
func (s searchIndex) apply(db *gorm.DB, query string) *gorm.DB {
	if s.db.IsPostgres() {
		join := fmt.Sprintf(
			`JOIN (SELECT rowid, ts_rank(%s, tsv, plainto_tsquery('english', ?)) AS relevance
FROM projects_fts WHERE tsv @@ plainto_tsquery('english', ?)) AS fts ON fts.rowid = projects.project_id`,
			postgresRankWeights,
		)
		return db.Joins(join, query, query)
	}
	return db.
		Joins("JOIN projects_fts ON projects_fts.rowid = projects.project_id").
		Where("projects_fts MATCH ?", quoteMatch(query))
}

// relevanceExpr is the SELECT expression for the search rank.
func (s searchIndex) relevanceExpr() string {
	if s.db.IsPostgres() {
		return "fts.relevance AS relevance"
	}
	return fmt.Sprintf(
		"-bm25(projects_fts, %.1f, %.1f, %.1f) AS relevance",
		searchWeightTitle, searchWeightPublisher, searchWeightBody,
	)
}
