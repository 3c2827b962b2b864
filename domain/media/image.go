// Package media provides the project media domain types: images with an
// append-only revision log and the ordered gallery of published images.
package media

// ImageRevision is an append-only record of an image upload. The current
// images projection is upserted from the latest revision per
// (project, filename).
type ImageRevision struct {
	id          int64
	projectID   int64
	filename    string
	url         string
	contentType string
	publishedAt int64
	publishedBy int64
}

// NewImageRevision creates an image upload record.
func NewImageRevision(projectID int64, filename, url, contentType string, publishedAt, publishedBy int64) ImageRevision {
	return ImageRevision{
		projectID:   projectID,
		filename:    filename,
		url:         url,
		contentType: contentType,
		publishedAt: publishedAt,
		publishedBy: publishedBy,
	}
}

// NewImageRevisionWithID reconstructs an upload record from stored fields.
func NewImageRevisionWithID(id, projectID int64, filename, url, contentType string, publishedAt, publishedBy int64) ImageRevision {
	r := NewImageRevision(projectID, filename, url, contentType, publishedAt, publishedBy)
	r.id = id
	return r
}

// ID returns the revision ID.
func (r ImageRevision) ID() int64 { return r.id }

// ProjectID returns the owning project's ID.
func (r ImageRevision) ProjectID() int64 { return r.projectID }

// Filename returns the image filename.
func (r ImageRevision) Filename() string { return r.filename }

// URL returns the image location.
func (r ImageRevision) URL() string { return r.url }

// ContentType returns the MIME type.
func (r ImageRevision) ContentType() string { return r.contentType }

// PublishedAt returns the upload time in nanoseconds since the epoch.
func (r ImageRevision) PublishedAt() int64 { return r.publishedAt }

// PublishedBy returns the uploading user's ID.
func (r ImageRevision) PublishedBy() int64 { return r.publishedBy }

// Image is the current image per (project, filename): the latest revision's
// fields.
type Image struct {
	projectID   int64
	filename    string
	url         string
	contentType string
	publishedAt int64
	publishedBy int64
}

// NewImage projects a revision into the current form.
func NewImage(r ImageRevision) Image {
	return Image{
		projectID:   r.projectID,
		filename:    r.filename,
		url:         r.url,
		contentType: r.contentType,
		publishedAt: r.publishedAt,
		publishedBy: r.publishedBy,
	}
}

// ProjectID returns the owning project's ID.
func (i Image) ProjectID() int64 { return i.projectID }

// Filename returns the image filename.
func (i Image) Filename() string { return i.filename }

// URL returns the image location.
func (i Image) URL() string { return i.url }

// ContentType returns the MIME type.
func (i Image) ContentType() string { return i.contentType }

// PublishedAt returns the upload time in nanoseconds since the epoch.
func (i Image) PublishedAt() int64 { return i.publishedAt }

// PublishedBy returns the uploading user's ID.
func (i Image) PublishedBy() int64 { return i.publishedBy }
