package persistence

import (
	"bytes"
	"context"
	"testing"

	"github.com/ludolib/ludolib/domain/media"
	"github.com/ludolib/ludolib/internal/sortkey"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func galleryFilenames(items []media.GalleryItem) []string {
	names := make([]string, len(items))
	for i, item := range items {
		names[i] = item.Filename()
	}
	return names
}

func TestGalleryStoreAppend(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	store := NewGalleryStore(db)
	p := seedProjectID(t, db)

	first, err := store.Append(ctx, p, "a.png", 1, 1000)
	require.NoError(t, err)
	assert.Equal(t, sortkey.Initial(), first.SortKey())

	second, err := store.Append(ctx, p, "b.png", 1, 2000)
	require.NoError(t, err)
	assert.Equal(t, 1, bytes.Compare(second.SortKey(), first.SortKey()))

	items, err := store.Live(ctx, p)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.png", "b.png"}, galleryFilenames(items))

	// Galleries are independent per project.
	other, err := store.Live(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestGalleryStoreUpdateReplacesEntry(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	store := NewGalleryStore(db)
	p := seedProjectID(t, db)

	item, err := store.Append(ctx, p, "a.png", 1, 1000)
	require.NoError(t, err)

	mapping, err := store.Apply(ctx, p, 2, media.GalleryPatch{
		Ops: []media.GalleryOp{media.UpdateOp(item.ID(), "box cover")},
	}, 2000)
	require.NoError(t, err)

	newID, ok := mapping[item.ID()]
	require.True(t, ok)
	assert.NotEqual(t, item.ID(), newID)

	items, err := store.Live(ctx, p)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, newID, items[0].ID())
	assert.Equal(t, "box cover", items[0].Description())
	// An edit keeps the entry's position.
	assert.Equal(t, item.SortKey(), items[0].SortKey())
}

func TestGalleryStoreDeleteRetiresEntry(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	store := NewGalleryStore(db)
	p := seedProjectID(t, db)

	item, err := store.Append(ctx, p, "a.png", 1, 1000)
	require.NoError(t, err)
	keep, err := store.Append(ctx, p, "b.png", 1, 2000)
	require.NoError(t, err)

	mapping, err := store.Apply(ctx, p, 2, media.GalleryPatch{
		Ops: []media.GalleryOp{media.DeleteOp(item.ID())},
	}, 3000)
	require.NoError(t, err)
	assert.Empty(t, mapping)

	items, err := store.Live(ctx, p)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, keep.ID(), items[0].ID())
}

func TestGalleryStoreMoveBeforeEntry(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	store := NewGalleryStore(db)
	p := seedProjectID(t, db)

	a, err := store.Append(ctx, p, "a.png", 1, 1000)
	require.NoError(t, err)
	b, err := store.Append(ctx, p, "b.png", 1, 2000)
	require.NoError(t, err)
	c, err := store.Append(ctx, p, "c.png", 1, 3000)
	require.NoError(t, err)

	// Move a between b and c.
	next := c.ID()
	mapping, err := store.Apply(ctx, p, 1, media.GalleryPatch{
		Ops: []media.GalleryOp{media.MoveOp(a.ID(), &next)},
	}, 4000)
	require.NoError(t, err)

	items, err := store.Live(ctx, p)
	require.NoError(t, err)
	assert.Equal(t, []string{"b.png", "a.png", "c.png"}, galleryFilenames(items))

	moved := items[1]
	assert.Equal(t, mapping[a.ID()], moved.ID())
	assert.Equal(t, 1, bytes.Compare(moved.SortKey(), b.SortKey()))
	assert.Equal(t, -1, bytes.Compare(moved.SortKey(), c.SortKey()))
}

func TestGalleryStoreMoveToEnd(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	store := NewGalleryStore(db)
	p := seedProjectID(t, db)

	a, err := store.Append(ctx, p, "a.png", 1, 1000)
	require.NoError(t, err)
	_, err = store.Append(ctx, p, "b.png", 1, 2000)
	require.NoError(t, err)

	_, err = store.Apply(ctx, p, 1, media.GalleryPatch{
		Ops: []media.GalleryOp{media.MoveOp(a.ID(), nil)},
	}, 3000)
	require.NoError(t, err)

	items, err := store.Live(ctx, p)
	require.NoError(t, err)
	assert.Equal(t, []string{"b.png", "a.png"}, galleryFilenames(items))
}

func TestGalleryStoreChainedOps(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	store := NewGalleryStore(db)
	p := seedProjectID(t, db)

	a, err := store.Append(ctx, p, "a.png", 1, 1000)
	require.NoError(t, err)
	_, err = store.Append(ctx, p, "b.png", 1, 2000)
	require.NoError(t, err)

	// The move references a by the ID it had before the update replaced it.
	mapping, err := store.Apply(ctx, p, 1, media.GalleryPatch{
		Ops: []media.GalleryOp{
			media.UpdateOp(a.ID(), "box cover"),
			media.MoveOp(a.ID(), nil),
		},
	}, 3000)
	require.NoError(t, err)

	items, err := store.Live(ctx, p)
	require.NoError(t, err)
	require.Equal(t, []string{"b.png", "a.png"}, galleryFilenames(items))
	assert.Equal(t, "box cover", items[1].Description())

	// The mapping chains through the intermediate ID.
	intermediate, ok := mapping[a.ID()]
	require.True(t, ok)
	final, ok := mapping[intermediate]
	require.True(t, ok)
	assert.Equal(t, final, items[1].ID())
}

func TestGalleryStoreApplyUnknownEntry(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	store := NewGalleryStore(db)
	p := seedProjectID(t, db)

	_, err := store.Apply(ctx, p, 1, media.GalleryPatch{
		Ops: []media.GalleryOp{media.DeleteOp(999)},
	}, 1000)
	assert.ErrorIs(t, err, ErrGalleryEntryNotFound)
}

func TestGalleryStoreApplyEmptyPatch(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	store := NewGalleryStore(db)
	p := seedProjectID(t, db)

	_, err := store.Apply(ctx, p, 1, media.GalleryPatch{}, 1000)
	assert.ErrorIs(t, err, media.ErrEmptyGalleryOp)
}

func TestGalleryStoreLiveAt(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	store := NewGalleryStore(db)
	p := seedProjectID(t, db)

	a, err := store.Append(ctx, p, "a.png", 1, 1000)
	require.NoError(t, err)
	_, err = store.Append(ctx, p, "b.png", 1, 2000)
	require.NoError(t, err)

	_, err = store.Apply(ctx, p, 1, media.GalleryPatch{
		Ops: []media.GalleryOp{media.DeleteOp(a.ID())},
	}, 3000)
	require.NoError(t, err)

	cases := []struct {
		at   int64
		want []string
	}{
		{1500, []string{"a.png"}},
		{2500, []string{"a.png", "b.png"}},
		{3500, []string{"b.png"}},
		{500, []string{}},
	}
	for _, tc := range cases {
		items, err := store.LiveAt(ctx, p, tc.at)
		require.NoError(t, err)
		assert.Equal(t, tc.want, galleryFilenames(items), "at %d", tc.at)
	}
}
