package registry

import "errors"

// ErrInvalidFile indicates a file record that fails validation.
var ErrInvalidFile = errors.New("invalid file")

// File is a downloadable artifact attached to a release, unique per
// (release, filename).
type File struct {
	id          int64
	releaseID   int64
	filename    string
	url         string
	size        int64
	checksum    string
	requires    string
	contentType string
	publishedAt int64
	publishedBy int64
}

// NewFile creates a file record. The checksum is the hex SHA-256 digest of
// the artifact; requires is an optional dependency constraint string.
func NewFile(releaseID int64, filename, url string, size int64, checksum, requires, contentType string, publishedAt, publishedBy int64) File {
	return File{
		releaseID:   releaseID,
		filename:    filename,
		url:         url,
		size:        size,
		checksum:    checksum,
		requires:    requires,
		contentType: contentType,
		publishedAt: publishedAt,
		publishedBy: publishedBy,
	}
}

// NewFileWithID reconstructs a file record from stored fields.
func NewFileWithID(id, releaseID int64, filename, url string, size int64, checksum, requires, contentType string, publishedAt, publishedBy int64) File {
	f := NewFile(releaseID, filename, url, size, checksum, requires, contentType, publishedAt, publishedBy)
	f.id = id
	return f
}

// ID returns the file ID.
func (f File) ID() int64 { return f.id }

// ReleaseID returns the owning release's ID.
func (f File) ReleaseID() int64 { return f.releaseID }

// Filename returns the artifact filename.
func (f File) Filename() string { return f.filename }

// URL returns the artifact location.
func (f File) URL() string { return f.url }

// Size returns the artifact size in bytes.
func (f File) Size() int64 { return f.size }

// Checksum returns the hex SHA-256 digest.
func (f File) Checksum() string { return f.checksum }

// Requires returns the dependency constraint string, empty when absent.
func (f File) Requires() string { return f.requires }

// ContentType returns the MIME type.
func (f File) ContentType() string { return f.contentType }

// PublishedAt returns the publication time in nanoseconds since the epoch.
func (f File) PublishedAt() int64 { return f.publishedAt }

// PublishedBy returns the publishing user's ID.
func (f File) PublishedBy() int64 { return f.publishedBy }

// WithID returns a copy with the given ID.
func (f File) WithID(id int64) File {
	f.id = id
	return f
}

// Validate checks the file invariants.
func (f File) Validate() error {
	if f.filename == "" || f.size < 0 {
		return ErrInvalidFile
	}
	return nil
}
