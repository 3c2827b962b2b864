package persistence

import (
	"context"
	"fmt"

	"github.com/ludolib/ludolib/domain/identity"
	"github.com/ludolib/ludolib/internal/database"
	"gorm.io/gorm/clause"
)

// MembershipStore persists project ownership and play records.
type MembershipStore struct {
	db database.Database
}

// NewMembershipStore creates a new MembershipStore.
func NewMembershipStore(db database.Database) *MembershipStore {
	return &MembershipStore{db: db}
}

// AddOwner records a user as an owner of a project. Adding an existing
// owner is a no-op.
func (s *MembershipStore) AddOwner(ctx context.Context, o identity.Ownership) error {
	row := OwnerModel{UserID: o.UserID(), ProjectID: o.ProjectID()}
	err := s.db.Session(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("add owner: %w", err)
	}
	return nil
}

// RemoveOwner removes an ownership row. Removing a non-owner is a no-op.
func (s *MembershipStore) RemoveOwner(ctx context.Context, o identity.Ownership) error {
	err := s.db.Session(ctx).Delete(&OwnerModel{UserID: o.UserID(), ProjectID: o.ProjectID()}).Error
	if err != nil {
		return fmt.Errorf("remove owner: %w", err)
	}
	return nil
}

// Owners returns the users owning a project, ordered by username.
func (s *MembershipStore) Owners(ctx context.Context, projectID int64) ([]identity.User, error) {
	return s.members(ctx, "owners", projectID)
}

// IsOwner reports whether the user owns the project.
func (s *MembershipStore) IsOwner(ctx context.Context, userID, projectID int64) (bool, error) {
	var count int64
	err := s.db.Session(ctx).Model(&OwnerModel{}).
		Where("user_id = ? AND project_id = ?", userID, projectID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("check owner: %w", err)
	}
	return count > 0, nil
}

// AddPlayer records a user as a player of a project. Adding an existing
// player is a no-op.
func (s *MembershipStore) AddPlayer(ctx context.Context, p identity.PlayRecord) error {
	row := PlayerModel{UserID: p.UserID(), ProjectID: p.ProjectID()}
	err := s.db.Session(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("add player: %w", err)
	}
	return nil
}

// RemovePlayer removes a play record. Removing a non-player is a no-op.
func (s *MembershipStore) RemovePlayer(ctx context.Context, p identity.PlayRecord) error {
	err := s.db.Session(ctx).Delete(&PlayerModel{UserID: p.UserID(), ProjectID: p.ProjectID()}).Error
	if err != nil {
		return fmt.Errorf("remove player: %w", err)
	}
	return nil
}

// Players returns the users playing a project, ordered by username.
func (s *MembershipStore) Players(ctx context.Context, projectID int64) ([]identity.User, error) {
	return s.members(ctx, "players", projectID)
}

func (s *MembershipStore) members(ctx context.Context, table string, projectID int64) ([]identity.User, error) {
	var rows []UserModel
	err := s.db.Session(ctx).Model(&UserModel{}).
		Joins(fmt.Sprintf("JOIN %s ON %s.user_id = users.user_id", table, table)).
		Where(table+".project_id = ?", projectID).
		Order("users.username").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", table, err)
	}

	mapper := UserMapper{}
	users := make([]identity.User, len(rows))
	for i, row := range rows {
		users[i] = mapper.ToDomain(row)
	}
	return users, nil
}
