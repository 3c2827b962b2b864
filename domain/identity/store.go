package identity

import (
	"context"

	"github.com/ludolib/ludolib/domain/store"
)

// UserStore defines operations for persisting and retrieving users.
type UserStore interface {
	store.Finder[User]
	Save(ctx context.Context, user User) (User, error)
	Delete(ctx context.Context, id int64) error
}

// MembershipStore defines operations for project ownership and play records.
type MembershipStore interface {
	AddOwner(ctx context.Context, o Ownership) error
	RemoveOwner(ctx context.Context, o Ownership) error
	Owners(ctx context.Context, projectID int64) ([]User, error)
	IsOwner(ctx context.Context, userID, projectID int64) (bool, error)

	AddPlayer(ctx context.Context, p PlayRecord) error
	RemovePlayer(ctx context.Context, p PlayRecord) error
	Players(ctx context.Context, projectID int64) ([]User, error)
}

// WithUsername filters users by username.
func WithUsername(username string) store.Option {
	return store.WithCondition("username", username)
}

// WithUserID filters membership rows by user ID.
func WithUserID(userID int64) store.Option {
	return store.WithCondition("user_id", userID)
}

// WithProjectID filters membership rows by project ID.
func WithProjectID(projectID int64) store.Option {
	return store.WithCondition("project_id", projectID)
}
