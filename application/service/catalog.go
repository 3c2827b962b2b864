package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ludolib/ludolib/domain/catalog"
	"github.com/ludolib/ludolib/domain/identity"
	"github.com/ludolib/ludolib/domain/store"
	"github.com/ludolib/ludolib/internal/slug"
)

// ProjectCreateParams configures creating a new project.
type ProjectCreateParams struct {
	OwnerID       int64  `validate:"required"`
	Name          string `validate:"required"`
	Description   string
	GameTitle     string `validate:"required"`
	GameTitleSort string
	GamePublisher string
	GameYear      string
	PlayersMin    *int64
	PlayersMax    *int64
	LengthMin     *int64
	LengthMax     *int64
	Readme        string
}

// ListParams configures one page of a project listing.
type ListParams struct {
	Facets []catalog.Facet
	SortBy catalog.SortBy
	Dir    catalog.Direction
	Anchor catalog.Anchor
	Limit  int `validate:"gte=0"`
}

// Catalog provides project management and query operations.
// Embeds Collection for Find/Get; bespoke methods handle the write paths.
type Catalog struct {
	store.Collection[catalog.Project]
	projects catalog.ProjectStore
	tags     catalog.TagStore
	members  identity.MembershipStore
	logger   *slog.Logger
}

// NewCatalog creates a new Catalog service.
func NewCatalog(
	projects catalog.ProjectStore,
	tags catalog.TagStore,
	members identity.MembershipStore,
	logger *slog.Logger,
) *Catalog {
	if logger == nil {
		logger = slog.Default()
	}
	return &Catalog{
		Collection: store.NewCollection[catalog.Project](projects),
		projects:   projects,
		tags:       tags,
		members:    members,
		logger:     logger,
	}
}

// Create creates a project at revision 1 owned by the creating user.
func (s *Catalog) Create(ctx context.Context, params ProjectCreateParams) (catalog.Project, error) {
	if err := validateParams(params); err != nil {
		return catalog.Project{}, fmt.Errorf("invalid project params: %w", err)
	}

	game := catalog.NewGameData(
		params.GameTitle, params.GameTitleSort, params.GamePublisher, params.GameYear,
		params.PlayersMin, params.PlayersMax, params.LengthMin, params.LengthMax,
	)
	data := catalog.NewProjectData(0, params.Name, "", params.Description, game, params.Readme, nil)

	project, err := s.projects.Create(ctx, params.OwnerID, data)
	if err != nil {
		return catalog.Project{}, err
	}

	s.logger.Info("project created",
		slog.Int64("project_id", project.ID()),
		slog.String("name", project.Name()),
		slog.Int64("owner_id", params.OwnerID))
	return project, nil
}

// Update applies a content patch as the project's next revision.
func (s *Catalog) Update(ctx context.Context, userID, projectID int64, patch catalog.ProjectPatch) (catalog.Project, error) {
	project, err := s.projects.Update(ctx, userID, projectID, patch)
	if err != nil {
		return catalog.Project{}, err
	}

	s.logger.Info("project updated",
		slog.Int64("project_id", projectID),
		slog.Int64("revision", project.Revision()),
		slog.Int64("user_id", userID))
	return project, nil
}

// GetByName looks a project up by the normalized form of its name, so
// lookups tolerate case, punctuation, and accent differences.
func (s *Catalog) GetByName(ctx context.Context, name string) (catalog.Project, error) {
	return s.projects.FindOne(ctx, catalog.WithNormalizedName(slug.Normalize(name)))
}

// AtRevision returns the project as of a historical revision.
func (s *Catalog) AtRevision(ctx context.Context, projectID, revision int64) (catalog.Project, error) {
	return s.projects.AtRevision(ctx, projectID, revision)
}

// Revisions returns a project's revision pointers, oldest first.
func (s *Catalog) Revisions(ctx context.Context, projectID int64) ([]catalog.ProjectRevision, error) {
	return s.projects.Revisions(ctx, projectID)
}

// List returns one seek-paginated window of project summaries.
func (s *Catalog) List(ctx context.Context, params ListParams) ([]catalog.ProjectSummary, error) {
	if err := validateParams(params); err != nil {
		return nil, fmt.Errorf("invalid list params: %w", err)
	}
	return s.projects.List(ctx, catalog.Listing{
		Facets: params.Facets,
		SortBy: params.SortBy,
		Dir:    params.Dir,
		Anchor: params.Anchor,
		Limit:  params.Limit,
	})
}

// CountListed returns the total number of projects matching the facets.
func (s *Catalog) CountListed(ctx context.Context, facets []catalog.Facet) (int64, error) {
	return s.projects.CountListed(ctx, facets)
}

// AddTag attaches a tag to a project.
func (s *Catalog) AddTag(ctx context.Context, projectID int64, tag string) error {
	return s.tags.Add(ctx, catalog.NewTag(projectID, tag))
}

// RemoveTag detaches a tag from a project.
func (s *Catalog) RemoveTag(ctx context.Context, projectID int64, tag string) error {
	return s.tags.Remove(ctx, catalog.NewTag(projectID, tag))
}

// Tags returns a project's tags in alphabetic order.
func (s *Catalog) Tags(ctx context.Context, projectID int64) ([]string, error) {
	return s.tags.ForProject(ctx, projectID)
}

// AddOwner grants a user ownership of a project.
func (s *Catalog) AddOwner(ctx context.Context, userID, projectID int64) error {
	return s.members.AddOwner(ctx, identity.NewOwnership(userID, projectID))
}

// RemoveOwner revokes a user's ownership of a project.
func (s *Catalog) RemoveOwner(ctx context.Context, userID, projectID int64) error {
	return s.members.RemoveOwner(ctx, identity.NewOwnership(userID, projectID))
}

// Owners returns the users owning a project.
func (s *Catalog) Owners(ctx context.Context, projectID int64) ([]identity.User, error) {
	return s.members.Owners(ctx, projectID)
}
