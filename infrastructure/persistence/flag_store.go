package persistence

import (
	"context"
	"fmt"

	"github.com/ludolib/ludolib/domain/moderation"
	"github.com/ludolib/ludolib/internal/database"
)

// FlagStore persists moderation reports using GORM.
type FlagStore struct {
	database.Repository[moderation.Flag, FlagModel]
}

// NewFlagStore creates a new FlagStore.
func NewFlagStore(db database.Database) *FlagStore {
	return &FlagStore{
		Repository: database.NewRepository(db, database.EntityMapper[moderation.Flag, FlagModel](FlagMapper{}), "flag"),
	}
}

// Add files a report after validating it.
func (s *FlagStore) Add(ctx context.Context, f moderation.Flag) (moderation.Flag, error) {
	if err := f.Validate(); err != nil {
		return moderation.Flag{}, err
	}

	row := s.Mapper().ToModel(f)
	if err := s.DB(ctx).Create(&row).Error; err != nil {
		return moderation.Flag{}, fmt.Errorf("create flag: %w", err)
	}
	return s.Mapper().ToDomain(row), nil
}

// Close closes an open report. Closing a closed or unknown flag reports
// database.ErrNotFound.
func (s *FlagStore) Close(ctx context.Context, flagID, userID, now int64) error {
	result := s.DB(ctx).Model(&FlagModel{}).
		Where("flag_id = ? AND closed_at IS NULL", flagID).
		Updates(map[string]any{"closed_at": now, "closed_by": userID})
	if result.Error != nil {
		return fmt.Errorf("close flag: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: open flag %d", database.ErrNotFound, flagID)
	}
	return nil
}
