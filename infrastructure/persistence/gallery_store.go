package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/ludolib/ludolib/domain/media"
	"github.com/ludolib/ludolib/internal/database"
	"github.com/ludolib/ludolib/internal/sortkey"
	"gorm.io/gorm"
)

// ErrGalleryEntryNotFound indicates a patch op targeting an entry that is
// not live in the gallery.
var ErrGalleryEntryNotFound = errors.New("gallery entry not found")

// GalleryStore persists project galleries using GORM. The history table is
// append-only: edits and moves retire a row and insert a replacement under
// a fresh ID. The galleries table carries the live projection in parallel.
type GalleryStore struct {
	db database.Database
}

// NewGalleryStore creates a new GalleryStore.
func NewGalleryStore(db database.Database) *GalleryStore {
	return &GalleryStore{db: db}
}

// Append publishes an image at the end of the gallery. The first entry
// gets the initial sort key; later entries get a key after the current
// last one.
func (s *GalleryStore) Append(ctx context.Context, projectID int64, filename string, userID, now int64) (media.GalleryItem, error) {
	return database.WithTransactionResult(ctx, s.db, func(tx *gorm.DB) (media.GalleryItem, error) {
		last, err := s.lastKey(tx, projectID)
		if err != nil {
			return media.GalleryItem{}, err
		}

		key := sortkey.Initial()
		if last != nil {
			key = sortkey.After(last)
		}

		item := media.NewGalleryItem(projectID, key, filename, "", now, userID)
		return s.insertLive(tx, item)
	})
}

// Apply runs a gallery patch in one transaction. Update and move retire
// the targeted history row and insert a replacement; delete only retires.
// Later ops in the same patch may reference entries replaced by earlier
// ones, so the returned old-to-new ID mapping is consulted while applying.
func (s *GalleryStore) Apply(ctx context.Context, projectID, userID int64, patch media.GalleryPatch, now int64) (map[int64]int64, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	oldToNew := make(map[int64]int64)

	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		for _, op := range patch.Ops {
			id := op.ID
			if n, ok := oldToNew[id]; ok {
				id = n
			}

			switch op.Kind {
			case media.GalleryOpUpdate:
				newID, err := s.updateItem(tx, projectID, userID, id, op.Description, now)
				if err != nil {
					return err
				}
				oldToNew[id] = newID

			case media.GalleryOpDelete:
				if err := s.deleteItem(tx, projectID, userID, id, now); err != nil {
					return err
				}

			case media.GalleryOpMove:
				next := op.Next
				if next != nil {
					if n, ok := oldToNew[*next]; ok {
						next = &n
					}
				}
				newID, err := s.moveItem(tx, projectID, userID, id, next, now)
				if err != nil {
					return err
				}
				oldToNew[id] = newID
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return oldToNew, nil
}

// Live returns the gallery's live entries in sort key order.
func (s *GalleryStore) Live(ctx context.Context, projectID int64) ([]media.GalleryItem, error) {
	var rows []GalleryModel
	err := s.db.Session(ctx).
		Where("project_id = ?", projectID).
		Order("sort_key").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list gallery: %w", err)
	}

	items := make([]media.GalleryItem, len(rows))
	for i, row := range rows {
		items[i] = media.NewGalleryItemWithID(
			row.GalleryID, row.ProjectID, row.SortKey,
			row.Filename, row.Description,
			row.PublishedAt, row.PublishedBy,
			nil, nil,
		)
	}
	return items, nil
}

// LiveAt returns the entries that were live at the given time, in sort key
// order.
func (s *GalleryStore) LiveAt(ctx context.Context, projectID int64, at int64) ([]media.GalleryItem, error) {
	var rows []GalleryHistoryModel
	err := s.db.Session(ctx).
		Where("project_id = ? AND published_at <= ? AND (removed_at > ? OR removed_at IS NULL)", projectID, at, at).
		Order("sort_key").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list gallery at: %w", err)
	}

	mapper := GalleryHistoryMapper{}
	items := make([]media.GalleryItem, len(rows))
	for i, row := range rows {
		items[i] = mapper.ToDomain(row)
	}
	return items, nil
}

// updateItem replaces an entry's description, retiring the old history row.
func (s *GalleryStore) updateItem(tx *gorm.DB, projectID, userID, galleryID int64, description string, now int64) (int64, error) {
	old, err := s.retire(tx, projectID, userID, galleryID, now)
	if err != nil {
		return 0, err
	}

	item := media.NewGalleryItem(projectID, old.SortKey, old.Filename, description, now, userID)
	inserted, err := s.insertLive(tx, item)
	if err != nil {
		return 0, err
	}
	return inserted.ID(), nil
}

// deleteItem retires an entry without replacement.
func (s *GalleryStore) deleteItem(tx *gorm.DB, projectID, userID, galleryID int64, now int64) error {
	_, err := s.retire(tx, projectID, userID, galleryID, now)
	return err
}

// moveItem repositions an entry before the entry identified by next, or to
// the end of the gallery when next is nil. The entry is retired first, so
// the neighbor lookup never sees it.
func (s *GalleryStore) moveItem(tx *gorm.DB, projectID, userID, galleryID int64, next *int64, now int64) (int64, error) {
	old, err := s.retire(tx, projectID, userID, galleryID, now)
	if err != nil {
		return 0, err
	}

	prevKey, nextKey, err := s.bounds(tx, projectID, next)
	if err != nil {
		return 0, err
	}

	item := media.NewGalleryItem(
		projectID, sortkey.Between(prevKey, nextKey),
		old.Filename, old.Description, now, userID,
	)
	inserted, err := s.insertLive(tx, item)
	if err != nil {
		return 0, err
	}
	return inserted.ID(), nil
}

// bounds returns the sort keys bracketing the target position: the keys of
// the entries before and at the next position, with synthetic bounds at
// the gallery's edges.
func (s *GalleryStore) bounds(tx *gorm.DB, projectID int64, next *int64) ([]byte, []byte, error) {
	if next == nil {
		prevKey, err := s.lastKey(tx, projectID)
		if err != nil {
			return nil, nil, err
		}
		if prevKey == nil {
			prevKey = sortkey.Head()
		}
		return prevKey, sortkey.Tail(prevKey), nil
	}

	var nextRow GalleryModel
	err := tx.Where("project_id = ? AND gallery_id = ?", projectID, *next).First(&nextRow).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, fmt.Errorf("%w: entry %d", ErrGalleryEntryNotFound, *next)
		}
		return nil, nil, fmt.Errorf("find next entry: %w", err)
	}

	var prevKeys [][]byte
	err = tx.Model(&GalleryModel{}).
		Where("project_id = ? AND sort_key < ?", projectID, nextRow.SortKey).
		Order("sort_key DESC").
		Limit(1).
		Pluck("sort_key", &prevKeys).Error
	if err != nil {
		return nil, nil, fmt.Errorf("find previous entry: %w", err)
	}

	prevKey := sortkey.Head()
	if len(prevKeys) > 0 {
		prevKey = prevKeys[0]
	}
	return prevKey, nextRow.SortKey, nil
}

// lastKey returns the largest live sort key, or nil for an empty gallery.
func (s *GalleryStore) lastKey(tx *gorm.DB, projectID int64) ([]byte, error) {
	var keys [][]byte
	err := tx.Model(&GalleryModel{}).
		Where("project_id = ?", projectID).
		Order("sort_key DESC").
		Limit(1).
		Pluck("sort_key", &keys).Error
	if err != nil {
		return nil, fmt.Errorf("find last sort key: %w", err)
	}
	if len(keys) == 0 {
		return nil, nil
	}
	return keys[0], nil
}

// retire marks the live history row removed, drops the projection row, and
// returns the row as it was.
func (s *GalleryStore) retire(tx *gorm.DB, projectID, userID, galleryID int64, now int64) (GalleryHistoryModel, error) {
	var row GalleryHistoryModel
	err := tx.Where("project_id = ? AND gallery_id = ? AND removed_at IS NULL", projectID, galleryID).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return GalleryHistoryModel{}, fmt.Errorf("%w: entry %d", ErrGalleryEntryNotFound, galleryID)
		}
		return GalleryHistoryModel{}, fmt.Errorf("find gallery entry: %w", err)
	}

	err = tx.Model(&GalleryHistoryModel{}).
		Where("gallery_id = ?", galleryID).
		Updates(map[string]any{"removed_at": now, "removed_by": userID}).Error
	if err != nil {
		return GalleryHistoryModel{}, fmt.Errorf("retire gallery entry: %w", err)
	}

	if err := tx.Delete(&GalleryModel{GalleryID: galleryID}).Error; err != nil {
		return GalleryHistoryModel{}, fmt.Errorf("remove gallery projection: %w", err)
	}
	return row, nil
}

// insertLive writes a history row and its projection, returning the item
// with its assigned ID.
func (s *GalleryStore) insertLive(tx *gorm.DB, item media.GalleryItem) (media.GalleryItem, error) {
	if err := item.Validate(); err != nil {
		return media.GalleryItem{}, err
	}

	histRow := GalleryHistoryMapper{}.ToModel(item)
	if err := tx.Create(&histRow).Error; err != nil {
		return media.GalleryItem{}, fmt.Errorf("create gallery history: %w", err)
	}

	current := GalleryModel{
		GalleryID:   histRow.GalleryID,
		ProjectID:   histRow.ProjectID,
		SortKey:     histRow.SortKey,
		Filename:    histRow.Filename,
		Description: histRow.Description,
		PublishedAt: histRow.PublishedAt,
		PublishedBy: histRow.PublishedBy,
	}
	if err := tx.Create(&current).Error; err != nil {
		return media.GalleryItem{}, fmt.Errorf("create gallery projection: %w", err)
	}
	return item.WithID(histRow.GalleryID), nil
}
