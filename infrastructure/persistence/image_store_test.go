package persistence

import (
	"context"
	"testing"

	"github.com/ludolib/ludolib/domain/media"
	"github.com/ludolib/ludolib/internal/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageStoreAddRevisionUpserts(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	store := NewImageStore(db)
	p := seedProjectID(t, db)

	err := store.AddRevision(ctx, media.NewImageRevision(p, "cover.png", "https://cdn.example.com/v1.png", "image/png", 1000, 1))
	require.NoError(t, err)

	url, err := store.URL(ctx, p, "cover.png")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/v1.png", url)

	// A re-upload replaces the current row instead of adding a second one.
	err = store.AddRevision(ctx, media.NewImageRevision(p, "cover.png", "https://cdn.example.com/v2.png", "image/png", 2000, 2))
	require.NoError(t, err)

	url, err = store.URL(ctx, p, "cover.png")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/v2.png", url)

	count, err := store.Count(ctx, media.WithProjectID(p))
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestImageStoreURLUnknown(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	store := NewImageStore(db)
	p := seedProjectID(t, db)

	_, err := store.URL(ctx, p, "missing.png")
	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestImageStoreURLAt(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	store := NewImageStore(db)
	p := seedProjectID(t, db)

	require.NoError(t, store.AddRevision(ctx, media.NewImageRevision(p, "cover.png", "https://cdn.example.com/v1.png", "image/png", 1000, 1)))
	require.NoError(t, store.AddRevision(ctx, media.NewImageRevision(p, "cover.png", "https://cdn.example.com/v2.png", "image/png", 2000, 1)))

	url, err := store.URLAt(ctx, p, "cover.png", 1500)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/v1.png", url)

	url, err = store.URLAt(ctx, p, "cover.png", 2000)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/v2.png", url)

	_, err = store.URLAt(ctx, p, "cover.png", 500)
	assert.ErrorIs(t, err, database.ErrNotFound)
}
