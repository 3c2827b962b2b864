package persistence

import (
	"context"
	"fmt"

	"github.com/ludolib/ludolib/domain/identity"
	"github.com/ludolib/ludolib/internal/database"
)

// UserStore persists users using GORM.
type UserStore struct {
	database.Repository[identity.User, UserModel]
}

// NewUserStore creates a new UserStore.
func NewUserStore(db database.Database) *UserStore {
	return &UserStore{
		Repository: database.NewRepository(db, database.EntityMapper[identity.User, UserModel](UserMapper{}), "user"),
	}
}

// Save inserts or updates a user and returns it with its assigned ID.
func (s *UserStore) Save(ctx context.Context, user identity.User) (identity.User, error) {
	if err := user.Validate(); err != nil {
		return identity.User{}, err
	}
	model := s.Mapper().ToModel(user)
	if err := s.DB(ctx).Save(&model).Error; err != nil {
		return identity.User{}, fmt.Errorf("save user: %w", err)
	}
	return s.Mapper().ToDomain(model), nil
}

// Delete removes a user row.
func (s *UserStore) Delete(ctx context.Context, id int64) error {
	if err := s.DB(ctx).Delete(&UserModel{UserID: id}).Error; err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}
