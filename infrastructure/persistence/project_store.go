package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ludolib/ludolib/domain/catalog"
	"github.com/ludolib/ludolib/internal/database"
	"github.com/ludolib/ludolib/internal/slug"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrRevisionNotFound indicates a historical revision that was never written.
var ErrRevisionNotFound = errors.New("revision not found")

// ProjectStore persists the project catalog using GORM. Every mutation
// writes the snapshot, the revision pointer, the current row, and the
// search index in one transaction.
type ProjectStore struct {
	database.Repository[catalog.Project, ProjectModel]
	search searchIndex
}

// NewProjectStore creates a new ProjectStore.
func NewProjectStore(db database.Database) *ProjectStore {
	return &ProjectStore{
		Repository: database.NewRepository(db, database.EntityMapper[catalog.Project, ProjectModel](ProjectMapper{}), "project"),
		search:     searchIndex{db: db},
	}
}

// Create allocates a project ID, writes the first content snapshot and
// revision 1, inserts the current row, records the creating user as an
// owner, and indexes the project for search.
func (s *ProjectStore) Create(ctx context.Context, userID int64, data catalog.ProjectData) (catalog.Project, error) {
	if data.Name() == "" {
		return catalog.Project{}, catalog.ErrInvalidName
	}
	if err := data.Game().Validate(); err != nil {
		return catalog.Project{}, err
	}

	now := time.Now().UnixNano()
	normalized := slug.Normalize(data.Name())
	urlSlug := slug.Slug(data.Name())

	return database.WithTransactionResult(ctx, s.Database(), func(tx *gorm.DB) (catalog.Project, error) {
		hist := ProjectHistoryModel{CreatedAt: now}
		if err := tx.Create(&hist).Error; err != nil {
			return catalog.Project{}, fmt.Errorf("allocate project id: %w", err)
		}

		snapshot := catalog.NewProjectData(
			hist.ProjectID, data.Name(), urlSlug, data.Description(),
			data.Game(), data.Readme(), data.Image(),
		)
		dataRow := ProjectDataMapper{}.ToModel(snapshot)
		if err := tx.Create(&dataRow).Error; err != nil {
			return catalog.Project{}, fmt.Errorf("create project snapshot: %w", err)
		}

		revRow := ProjectRevisionModel{
			ProjectID:     hist.ProjectID,
			Revision:      1,
			ModifiedAt:    now,
			ModifiedBy:    userID,
			ProjectDataID: dataRow.ProjectDataID,
		}
		if err := tx.Create(&revRow).Error; err != nil {
			return catalog.Project{}, fmt.Errorf("create project revision: %w", err)
		}

		project := catalog.NewProject(
			hist.ProjectID,
			data.Name(), normalized, urlSlug, data.Description(),
			1, now, now, userID,
			data.Game(), data.Readme(), data.Image(),
		)
		current := s.Mapper().ToModel(project)
		if err := tx.Create(&current).Error; err != nil {
			return catalog.Project{}, fmt.Errorf("create project: %w", err)
		}

		owner := OwnerModel{UserID: userID, ProjectID: hist.ProjectID}
		if err := tx.Create(&owner).Error; err != nil {
			return catalog.Project{}, fmt.Errorf("create project owner: %w", err)
		}

		g := data.Game()
		if err := s.search.insert(tx, hist.ProjectID, g.Title(), g.Publisher(), data.Description()); err != nil {
			return catalog.Project{}, err
		}

		return project, nil
	})
}

// Update applies a content patch as the project's next revision and
// refreshes the search index.
func (s *ProjectStore) Update(ctx context.Context, userID, projectID int64, patch catalog.ProjectPatch) (catalog.Project, error) {
	if err := patch.Validate(); err != nil {
		return catalog.Project{}, err
	}

	now := time.Now().UnixNano()

	return database.WithTransactionResult(ctx, s.Database(), func(tx *gorm.DB) (catalog.Project, error) {
		current, err := s.currentRow(tx, projectID)
		if err != nil {
			return catalog.Project{}, err
		}

		cur := s.Mapper().ToDomain(current)
		next := patch.Apply(catalog.NewProjectData(
			projectID, cur.Name(), cur.Slug(), cur.Description(),
			cur.Game(), cur.Readme(), cur.Image(),
		))
		if err := next.Game().Validate(); err != nil {
			return catalog.Project{}, err
		}

		dataRow := ProjectDataMapper{}.ToModel(next)
		if err := tx.Create(&dataRow).Error; err != nil {
			return catalog.Project{}, fmt.Errorf("create project snapshot: %w", err)
		}

		revision := current.Revision + 1
		revRow := ProjectRevisionModel{
			ProjectID:     projectID,
			Revision:      revision,
			ModifiedAt:    now,
			ModifiedBy:    userID,
			ProjectDataID: dataRow.ProjectDataID,
		}
		if err := tx.Create(&revRow).Error; err != nil {
			return catalog.Project{}, fmt.Errorf("create project revision: %w", err)
		}

		project := catalog.NewProject(
			projectID,
			cur.Name(), cur.NormalizedName(), cur.Slug(), next.Description(),
			revision, cur.CreatedAt(), now, userID,
			next.Game(), next.Readme(), next.Image(),
		)
		updated := s.Mapper().ToModel(project)
		if err := tx.Save(&updated).Error; err != nil {
			return catalog.Project{}, fmt.Errorf("update project: %w", err)
		}

		g := next.Game()
		if err := s.search.replace(tx, projectID, g.Title(), g.Publisher(), next.Description()); err != nil {
			return catalog.Project{}, err
		}

		return project, nil
	})
}

// BumpRevision records a non-content revision: the new revision pointer
// reuses the current snapshot ID and only the bookkeeping columns move.
func (s *ProjectStore) BumpRevision(ctx context.Context, userID, projectID int64) error {
	now := time.Now().UnixNano()

	return database.WithTransaction(ctx, s.Database(), func(tx *gorm.DB) error {
		current, err := s.currentRow(tx, projectID)
		if err != nil {
			return err
		}

		dataID, err := s.snapshotID(tx, projectID, current.Revision)
		if err != nil {
			return err
		}

		revision := current.Revision + 1
		revRow := ProjectRevisionModel{
			ProjectID:     projectID,
			Revision:      revision,
			ModifiedAt:    now,
			ModifiedBy:    userID,
			ProjectDataID: dataID,
		}
		if err := tx.Create(&revRow).Error; err != nil {
			return fmt.Errorf("create project revision: %w", err)
		}

		err = tx.Model(&ProjectModel{}).Where("project_id = ?", projectID).
			Updates(map[string]any{
				"revision":    revision,
				"modified_at": now,
				"modified_by": userID,
			}).Error
		if err != nil {
			return fmt.Errorf("update project: %w", err)
		}
		return nil
	})
}

// Rename changes a project's name, recomputing the normalized name and
// slug. The current row and the current snapshot move together; historical
// snapshots keep the name they were written with. No revision is recorded.
func (s *ProjectStore) Rename(ctx context.Context, projectID int64, newName string) error {
	if newName == "" {
		return catalog.ErrInvalidName
	}

	normalized := slug.Normalize(newName)
	urlSlug := slug.Slug(newName)

	return database.WithTransaction(ctx, s.Database(), func(tx *gorm.DB) error {
		current, err := s.currentRow(tx, projectID)
		if err != nil {
			return err
		}

		dataID, err := s.snapshotID(tx, projectID, current.Revision)
		if err != nil {
			return err
		}

		err = tx.Model(&ProjectDataModel{}).Where("project_data_id = ?", dataID).
			Updates(map[string]any{"name": newName, "slug": urlSlug}).Error
		if err != nil {
			return fmt.Errorf("rename project snapshot: %w", err)
		}

		err = tx.Model(&ProjectModel{}).Where("project_id = ?", projectID).
			Updates(map[string]any{
				"name":            newName,
				"normalized_name": normalized,
				"slug":            urlSlug,
			}).Error
		if err != nil {
			return fmt.Errorf("rename project: %w", err)
		}
		return nil
	})
}

// AtRevision returns the project as of a historical revision. The
// normalized name is recomputed from the snapshot's name.
func (s *ProjectStore) AtRevision(ctx context.Context, projectID, revision int64) (catalog.Project, error) {
	session := s.DB(ctx)

	var revRow ProjectRevisionModel
	err := session.Where("project_id = ? AND revision = ?", projectID, revision).First(&revRow).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return catalog.Project{}, fmt.Errorf("%w: project %d revision %d", ErrRevisionNotFound, projectID, revision)
		}
		return catalog.Project{}, fmt.Errorf("find revision: %w", err)
	}

	var dataRow ProjectDataModel
	if err := session.Where("project_data_id = ?", revRow.ProjectDataID).First(&dataRow).Error; err != nil {
		return catalog.Project{}, fmt.Errorf("find snapshot: %w", err)
	}

	var histRow ProjectHistoryModel
	if err := session.Where("project_id = ?", projectID).First(&histRow).Error; err != nil {
		return catalog.Project{}, fmt.Errorf("find project history: %w", err)
	}

	data := ProjectDataMapper{}.ToDomain(dataRow)
	return catalog.NewProject(
		projectID,
		data.Name(), slug.Normalize(data.Name()), data.Slug(), data.Description(),
		revision, histRow.CreatedAt, revRow.ModifiedAt, revRow.ModifiedBy,
		data.Game(), data.Readme(), data.Image(),
	), nil
}

// Revisions returns a project's revision pointers in ascending order.
func (s *ProjectStore) Revisions(ctx context.Context, projectID int64) ([]catalog.ProjectRevision, error) {
	var rows []ProjectRevisionModel
	err := s.DB(ctx).Where("project_id = ?", projectID).Order("revision").Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list revisions: %w", err)
	}

	revisions := make([]catalog.ProjectRevision, len(rows))
	for i, row := range rows {
		revisions[i] = catalog.NewProjectRevision(
			row.ProjectID, row.Revision, row.ProjectDataID, row.ModifiedAt, row.ModifiedBy,
		)
	}
	return revisions, nil
}

// Reindex rebuilds the search index from the current project rows.
func (s *ProjectStore) Reindex(ctx context.Context) error {
	return database.WithTransaction(ctx, s.Database(), func(tx *gorm.DB) error {
		if err := s.search.clear(tx); err != nil {
			return err
		}

		var rows []ProjectModel
		if err := tx.Find(&rows).Error; err != nil {
			return fmt.Errorf("load projects: %w", err)
		}
		for _, row := range rows {
			if err := s.search.insert(tx, row.ProjectID, row.GameTitle, row.GamePublisher, row.Description); err != nil {
				return err
			}
		}
		return nil
	})
}

// currentRow reads the current project row for update. Revision assignment
// derives the next revision from this row, so on Postgres it takes a FOR
// UPDATE lock: two concurrent updaters serialize instead of both reading
// revision N. SQLite already serializes writers on the single connection.
func (s *ProjectStore) currentRow(tx *gorm.DB, projectID int64) (ProjectModel, error) {
	if s.Database().IsPostgres() {
		tx = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var row ProjectModel
	if err := tx.Where("project_id = ?", projectID).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ProjectModel{}, fmt.Errorf("%w: project %d", database.ErrNotFound, projectID)
		}
		return ProjectModel{}, fmt.Errorf("find project: %w", err)
	}
	return row, nil
}

func (s *ProjectStore) snapshotID(tx *gorm.DB, projectID, revision int64) (int64, error) {
	var revRow ProjectRevisionModel
	err := tx.Where("project_id = ? AND revision = ?", projectID, revision).First(&revRow).Error
	if err != nil {
		return 0, fmt.Errorf("find current revision: %w", err)
	}
	return revRow.ProjectDataID, nil
}
