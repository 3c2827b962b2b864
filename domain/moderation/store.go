package moderation

import (
	"context"

	"github.com/ludolib/ludolib/domain/store"
)

// FlagStore defines operations for moderation reports.
type FlagStore interface {
	store.Finder[Flag]

	// Add files a report after validating it.
	Add(ctx context.Context, f Flag) (Flag, error)

	// Close closes an open report.
	Close(ctx context.Context, flagID, userID, now int64) error
}

// WithProjectID filters flags by project ID.
func WithProjectID(projectID int64) store.Option {
	return store.WithCondition("project_id", projectID)
}

// WithOpen filters to flags that have not been closed.
func WithOpen() store.Option {
	return store.WithNull("closed_at")
}
