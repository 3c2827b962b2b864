package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/ludolib/ludolib/domain/identity"
	"github.com/ludolib/ludolib/domain/store"
)

// Identity provides user account and play record operations.
type Identity struct {
	store.Collection[identity.User]
	users   identity.UserStore
	members identity.MembershipStore
	logger  *slog.Logger
}

// NewIdentity creates a new Identity service.
func NewIdentity(users identity.UserStore, members identity.MembershipStore, logger *slog.Logger) *Identity {
	if logger == nil {
		logger = slog.Default()
	}
	return &Identity{
		Collection: store.NewCollection[identity.User](users),
		users:      users,
		members:    members,
		logger:     logger,
	}
}

// Register creates a user account. Usernames are unique.
func (s *Identity) Register(ctx context.Context, username string) (identity.User, error) {
	now := time.Now().UnixNano()
	user, err := s.users.Save(ctx, identity.NewUser(username, now))
	if err != nil {
		return identity.User{}, err
	}

	s.logger.Info("user registered",
		slog.Int64("user_id", user.ID()),
		slog.String("username", username))
	return user, nil
}

// GetByUsername looks a user up by username.
func (s *Identity) GetByUsername(ctx context.Context, username string) (identity.User, error) {
	return s.users.FindOne(ctx, identity.WithUsername(username))
}

// AddPlayer records a user as a player of a project.
func (s *Identity) AddPlayer(ctx context.Context, userID, projectID int64) error {
	return s.members.AddPlayer(ctx, identity.NewPlayRecord(userID, projectID))
}

// RemovePlayer removes a user's play record for a project.
func (s *Identity) RemovePlayer(ctx context.Context, userID, projectID int64) error {
	return s.members.RemovePlayer(ctx, identity.NewPlayRecord(userID, projectID))
}

// Players returns the users playing a project.
func (s *Identity) Players(ctx context.Context, projectID int64) ([]identity.User, error) {
	return s.members.Players(ctx, projectID)
}
