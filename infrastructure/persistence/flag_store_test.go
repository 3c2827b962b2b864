package persistence

import (
	"context"
	"testing"

	"github.com/ludolib/ludolib/domain/moderation"
	"github.com/ludolib/ludolib/domain/store"
	"github.com/ludolib/ludolib/internal/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlagStoreAdd(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	flags := NewFlagStore(db)
	p := seedProjectID(t, db)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	spam, err := flags.Add(ctx, moderation.NewFlag(p, alice.ID(), moderation.FlagSpam, nil, 1000))
	require.NoError(t, err)
	assert.NotZero(t, spam.ID())
	assert.True(t, spam.Open())

	message := "links to pirated rulebooks"
	illegal, err := flags.Add(ctx, moderation.NewFlag(p, bob.ID(), moderation.FlagIllegal, &message, 2000))
	require.NoError(t, err)
	require.NotNil(t, illegal.Message())
	assert.Equal(t, message, *illegal.Message())
}

func TestFlagStoreAddRejectsInvalid(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	flags := NewFlagStore(db)

	// Illegal and other require an explanation.
	_, err := flags.Add(ctx, moderation.NewFlag(1, 2, moderation.FlagIllegal, nil, 1000))
	assert.ErrorIs(t, err, moderation.ErrMessageRequired)

	// Inappropriate and spam refuse one.
	message := "because"
	_, err = flags.Add(ctx, moderation.NewFlag(1, 2, moderation.FlagSpam, &message, 1000))
	assert.ErrorIs(t, err, moderation.ErrMessageForbidden)
}

func TestFlagStoreClose(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	flags := NewFlagStore(db)
	p := seedProjectID(t, db)
	alice := seedUser(t, db, "alice")

	flag, err := flags.Add(ctx, moderation.NewFlag(p, alice.ID(), moderation.FlagSpam, nil, 1000))
	require.NoError(t, err)

	require.NoError(t, flags.Close(ctx, flag.ID(), 9, 2000))

	closed, err := flags.FindOne(ctx, store.WithCondition("flag_id", flag.ID()))
	require.NoError(t, err)
	assert.False(t, closed.Open())
	require.NotNil(t, closed.ClosedAt())
	assert.Equal(t, int64(2000), *closed.ClosedAt())
	assert.Equal(t, int64(9), *closed.ClosedBy())

	// Closing an already-closed or unknown flag reports not found.
	assert.ErrorIs(t, flags.Close(ctx, flag.ID(), 9, 3000), database.ErrNotFound)
	assert.ErrorIs(t, flags.Close(ctx, 999, 9, 3000), database.ErrNotFound)
}

func TestFlagStoreOpenFilter(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	flags := NewFlagStore(db)
	p := seedProjectID(t, db)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	first, err := flags.Add(ctx, moderation.NewFlag(p, alice.ID(), moderation.FlagSpam, nil, 1000))
	require.NoError(t, err)
	_, err = flags.Add(ctx, moderation.NewFlag(p, bob.ID(), moderation.FlagInappropriate, nil, 2000))
	require.NoError(t, err)

	require.NoError(t, flags.Close(ctx, first.ID(), 9, 3000))

	open, err := flags.Find(ctx, moderation.WithProjectID(p), moderation.WithOpen())
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, moderation.FlagInappropriate, open[0].Kind())
}
