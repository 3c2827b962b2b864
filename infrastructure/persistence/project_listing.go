package persistence

import (
	"context"
	"fmt"

	"github.com/ludolib/ludolib/domain/catalog"
	"gorm.io/gorm"
)

// projectSummaryRow is the scan target for listing queries: the current
// project columns minus the readme, plus the computed relevance.
type projectSummaryRow struct {
	Relevance      float64
	ProjectID      int64
	Name           string
	Slug           string
	Description    string
	Revision       int64
	CreatedAt      int64
	ModifiedAt     int64
	GameTitle      string
	GameTitleSort  string
	GamePublisher  string
	GameYear       string
	GamePlayersMin *int64
	GamePlayersMax *int64
	GameLengthMin  *int64
	GameLengthMax  *int64
	Image          *string
}

func (r projectSummaryRow) toSummary() catalog.ProjectSummary {
	return catalog.ProjectSummary{
		Rank:        r.Relevance,
		ID:          r.ProjectID,
		Name:        r.Name,
		Slug:        r.Slug,
		Description: r.Description,
		Revision:    r.Revision,
		CreatedAt:   r.CreatedAt,
		ModifiedAt:  r.ModifiedAt,
		Game: catalog.NewGameData(
			r.GameTitle, r.GameTitleSort, r.GamePublisher, r.GameYear,
			r.GamePlayersMin, r.GamePlayersMax, r.GameLengthMin, r.GameLengthMax,
		),
		Image: r.Image,
	}
}

// List returns one seek-paginated window of project summaries. Ties on the
// sort field break on project ID, which also anchors the window: a window
// relative to (value, 0) starts at the first row carrying that value.
func (s *ProjectStore) List(ctx context.Context, l catalog.Listing) ([]catalog.ProjectSummary, error) {
	db, hasQuery := s.applyFacets(s.DB(ctx).Table("projects"), l.Facets)

	sel := "projects.*, 0.0 AS relevance"
	if hasQuery {
		sel = "projects.*, " + s.search.relevanceExpr()
	}
	db = db.Select(sel)

	column := s.sortColumn(l.SortBy)
	forward := l.Dir == catalog.Ascending
	reversed := false

	switch l.Anchor.Kind() {
	case catalog.AnchorStart:
	case catalog.AnchorEnd:
		forward = !forward
		reversed = true
	case catalog.AnchorAfter:
		db = db.Where(seekClause(column, forward), l.Anchor.Field(), l.Anchor.Field(), l.Anchor.ID())
	case catalog.AnchorBefore:
		forward = !forward
		reversed = true
		db = db.Where(seekClause(column, forward), l.Anchor.Field(), l.Anchor.Field(), l.Anchor.ID())
	}

	db = db.Order(orderClause(column, forward))
	if l.Limit > 0 {
		db = db.Limit(l.Limit)
	}

	var rows []projectSummaryRow
	if err := db.Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	if reversed {
		for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
			rows[i], rows[j] = rows[j], rows[i]
		}
	}

	summaries := make([]catalog.ProjectSummary, len(rows))
	for i, row := range rows {
		summaries[i] = row.toSummary()
	}
	return summaries, nil
}

// CountListed returns the total number of projects matching the facets,
// ignoring pagination.
func (s *ProjectStore) CountListed(ctx context.Context, facets []catalog.Facet) (int64, error) {
	db, _ := s.applyFacets(s.DB(ctx).Table("projects"), facets)

	var count int64
	if err := db.Distinct("projects.project_id").Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count projects: %w", err)
	}
	return count, nil
}

// applyFacets narrows the query with the AND of all facets and reports
// whether a full-text facet is present.
func (s *ProjectStore) applyFacets(db *gorm.DB, facets []catalog.Facet) (*gorm.DB, bool) {
	hasQuery := false
	for _, f := range facets {
		switch f.Kind() {
		case catalog.FacetQuery:
			hasQuery = true
			db = s.search.apply(db, f.Value())
		case catalog.FacetPublisher:
			db = db.Where("projects.game_publisher = ?", f.Value())
		case catalog.FacetYear:
			db = db.Where("projects.game_year = ?", f.Value())
		case catalog.FacetTag:
			db = db.
				Joins("JOIN tags ON tags.project_id = projects.project_id").
				Where("tags.tag = ?", f.Value())
		case catalog.FacetOwner:
			db = db.
				Joins("JOIN owners ON owners.project_id = projects.project_id").
				Joins("JOIN users AS owner_users ON owner_users.user_id = owners.user_id").
				Where("owner_users.username = ?", f.Value())
		case catalog.FacetPlayer:
			db = db.
				Joins("JOIN players ON players.project_id = projects.project_id").
				Joins("JOIN users AS player_users ON player_users.user_id = players.user_id").
				Where("player_users.username = ?", f.Value())
		}
	}
	return db, hasQuery
}

func (s *ProjectStore) sortColumn(sort catalog.SortBy) string {
	collate := " COLLATE NOCASE"
	if s.Database().IsPostgres() {
		collate = ""
	}
	switch sort {
	case catalog.SortByProjectName:
		return "projects.name" + collate
	case catalog.SortByGameTitle:
		return "projects.game_title_sort" + collate
	case catalog.SortByModificationTime:
		return "projects.modified_at"
	case catalog.SortByCreationTime:
		return "projects.created_at"
	case catalog.SortByRelevance:
		// Only meaningful with a query facet. On SQLite the SELECT alias
		// is not visible in WHERE clauses, so seek anchors need the full
		// bm25 expression; on Postgres the ranked join exposes a column.
		if s.Database().IsPostgres() {
			return "fts.relevance"
		}
		return fmt.Sprintf(
			"-bm25(projects_fts, %.1f, %.1f, %.1f)",
			searchWeightTitle, searchWeightPublisher, searchWeightBody,
		)
	default:
		return "projects.name" + collate
	}
}

func seekClause(column string, forward bool) string {
	op := ">"
	if !forward {
		op = "<"
	}
	return fmt.Sprintf("(%s %s ? OR (%s = ? AND projects.project_id %s ?))", column, op, column, op)
}

func orderClause(column string, forward bool) string {
	dir := "ASC"
	if !forward {
		dir = "DESC"
	}
	return fmt.Sprintf("%s %s, projects.project_id %s", column, dir, dir)
}
