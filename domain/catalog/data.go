package catalog

// ProjectData is an immutable content snapshot. One snapshot is written per
// content-bearing revision; non-content revisions reuse the previous
// snapshot's ID.
type ProjectData struct {
	id          int64
	projectID   int64
	name        string
	slug        string
	description string
	game        GameData
	readme      string
	image       *string
}

// NewProjectData creates a content snapshot.
func NewProjectData(projectID int64, name, slug, description string, game GameData, readme string, image *string) ProjectData {
	return ProjectData{
		projectID:   projectID,
		name:        name,
		slug:        slug,
		description: description,
		game:        game,
		readme:      readme,
		image:       image,
	}
}

// NewProjectDataWithID reconstructs a snapshot from stored fields.
func NewProjectDataWithID(id, projectID int64, name, slug, description string, game GameData, readme string, image *string) ProjectData {
	d := NewProjectData(projectID, name, slug, description, game, readme, image)
	d.id = id
	return d
}

// ID returns the snapshot ID.
func (d ProjectData) ID() int64 { return d.id }

// ProjectID returns the owning project's ID.
func (d ProjectData) ProjectID() int64 { return d.projectID }

// Name returns the project name at the time of the snapshot.
func (d ProjectData) Name() string { return d.name }

// Slug returns the slug at the time of the snapshot.
func (d ProjectData) Slug() string { return d.slug }

// Description returns the description text.
func (d ProjectData) Description() string { return d.description }

// Game returns the game metadata.
func (d ProjectData) Game() GameData { return d.game }

// Readme returns the readme text.
func (d ProjectData) Readme() string { return d.readme }

// Image returns the image filename, or nil when unset.
func (d ProjectData) Image() *string { return d.image }

// WithID returns a copy of the snapshot with the given ID.
func (d ProjectData) WithID(id int64) ProjectData {
	d.id = id
	return d
}

// ProjectRevision is an append-only pointer from (project, revision) to a
// content snapshot. For every project the revision numbers are exactly
// 1..current with no gaps.
type ProjectRevision struct {
	projectID  int64
	revision   int64
	dataID     int64
	modifiedAt int64
	modifiedBy int64
}

// NewProjectRevision creates a revision pointer.
func NewProjectRevision(projectID, revision, dataID, modifiedAt, modifiedBy int64) ProjectRevision {
	return ProjectRevision{
		projectID:  projectID,
		revision:   revision,
		dataID:     dataID,
		modifiedAt: modifiedAt,
		modifiedBy: modifiedBy,
	}
}

// ProjectID returns the owning project's ID.
func (r ProjectRevision) ProjectID() int64 { return r.projectID }

// Revision returns the revision number.
func (r ProjectRevision) Revision() int64 { return r.revision }

// DataID returns the referenced snapshot's ID.
func (r ProjectRevision) DataID() int64 { return r.dataID }

// ModifiedAt returns the modification time in nanoseconds since the epoch.
func (r ProjectRevision) ModifiedAt() int64 { return r.modifiedAt }

// ModifiedBy returns the ID of the modifying user.
func (r ProjectRevision) ModifiedBy() int64 { return r.modifiedBy }
