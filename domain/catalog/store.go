package catalog

import (
	"context"

	"github.com/ludolib/ludolib/domain/store"
)

// ProjectStore is the only sanctioned write path to the project catalog.
// Every mutation runs the content snapshot, the revision pointer, the
// current row update, and the search index refresh in one transaction.
type ProjectStore interface {
	store.Finder[Project]

	// Create allocates a project, writes revision 1, and records the
	// creating user as an owner.
	Create(ctx context.Context, userID int64, data ProjectData) (Project, error)

	// Update applies a content patch as a new revision.
	Update(ctx context.Context, userID, projectID int64, patch ProjectPatch) (Project, error)

	// BumpRevision records a non-content revision (package, image, or
	// gallery change); the new revision reuses the current snapshot.
	BumpRevision(ctx context.Context, userID, projectID int64) error

	// Rename recomputes the normalized name and slug from newName and
	// updates the current row and its data row atomically.
	Rename(ctx context.Context, projectID int64, newName string) error

	// AtRevision returns the project as of a historical revision.
	AtRevision(ctx context.Context, projectID, revision int64) (Project, error)

	// Revisions returns the revision pointers for a project, ascending.
	Revisions(ctx context.Context, projectID int64) ([]ProjectRevision, error)

	// List returns one seek-paginated window of project summaries.
	List(ctx context.Context, l Listing) ([]ProjectSummary, error)

	// CountListed returns the total number of projects matching the facets.
	CountListed(ctx context.Context, facets []Facet) (int64, error)

	// Reindex rebuilds the full-text search index from the current rows.
	Reindex(ctx context.Context) error

	// InTransaction runs fn inside one database transaction; store calls
	// made with the context passed to fn join it. Used when a structural
	// mutation and its revision bump must commit together.
	InTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// TagStore defines operations for project tags.
type TagStore interface {
	Add(ctx context.Context, tag Tag) error
	Remove(ctx context.Context, tag Tag) error
	ForProject(ctx context.Context, projectID int64) ([]string, error)
}

// WithName filters projects by name.
func WithName(name string) store.Option {
	return store.WithCondition("name", name)
}

// WithNormalizedName filters projects by normalized name.
func WithNormalizedName(name string) store.Option {
	return store.WithCondition("normalized_name", name)
}

// WithProjectID filters rows by project ID.
func WithProjectID(projectID int64) store.Option {
	return store.WithCondition("project_id", projectID)
}
