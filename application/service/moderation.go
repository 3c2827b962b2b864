package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/ludolib/ludolib/domain/moderation"
	"github.com/ludolib/ludolib/domain/store"
)

// Moderation provides flag reporting and triage operations.
type Moderation struct {
	store.Collection[moderation.Flag]
	flags  moderation.FlagStore
	logger *slog.Logger
}

// NewModeration creates a new Moderation service.
func NewModeration(flags moderation.FlagStore, logger *slog.Logger) *Moderation {
	if logger == nil {
		logger = slog.Default()
	}
	return &Moderation{
		Collection: store.NewCollection[moderation.Flag](flags),
		flags:      flags,
		logger:     logger,
	}
}

// FlagProject files a report against a project. Kinds that require a
// message reject a nil one, and kinds that don't reject a non-nil one.
func (s *Moderation) FlagProject(ctx context.Context, projectID, userID int64, kind moderation.FlagKind, message *string) (moderation.Flag, error) {
	now := time.Now().UnixNano()
	flag, err := s.flags.Add(ctx, moderation.NewFlag(projectID, userID, kind, message, now))
	if err != nil {
		return moderation.Flag{}, err
	}

	s.logger.Info("project flagged",
		slog.Int64("project_id", projectID),
		slog.Int64("flag_id", flag.ID()),
		slog.String("kind", kind.String()))
	return flag, nil
}

// CloseFlag closes an open report.
func (s *Moderation) CloseFlag(ctx context.Context, flagID, userID int64) error {
	now := time.Now().UnixNano()
	return s.flags.Close(ctx, flagID, userID, now)
}

// OpenFlags returns a project's open reports, oldest first.
func (s *Moderation) OpenFlags(ctx context.Context, projectID int64) ([]moderation.Flag, error) {
	return s.flags.Find(ctx,
		moderation.WithProjectID(projectID),
		moderation.WithOpen(),
		store.WithOrderAsc("flagged_at"),
	)
}
