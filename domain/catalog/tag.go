package catalog

// Tag is a free-text label on a project, unique per (project, tag).
type Tag struct {
	projectID int64
	tag       string
}

// NewTag creates a Tag.
func NewTag(projectID int64, tag string) Tag {
	return Tag{projectID: projectID, tag: tag}
}

// ProjectID returns the tagged project's ID.
func (t Tag) ProjectID() int64 { return t.projectID }

// Tag returns the label text.
func (t Tag) Tag() string { return t.tag }
