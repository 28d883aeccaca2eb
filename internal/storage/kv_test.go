package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func openTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := Open(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewStore(db)
}

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	require.NoError(t, store.Save(ctx, KeyGame, payload{Name: "slappy", Count: 3}))

	var got payload
	found, err := store.Load(ctx, KeyGame, &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, payload{Name: "slappy", Count: 3}, got)
}

func TestStoreMissingKey(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	got := payload{Name: "defaults"}
	found, err := store.Load(ctx, "never-saved", &got)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, "defaults", got.Name, "load must not touch v when the key is missing")
}

func TestStoreOverwrite(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	require.NoError(t, store.Save(ctx, KeyQuests, payload{Count: 1}))
	require.NoError(t, store.Save(ctx, KeyQuests, payload{Count: 2}))

	var got payload
	found, err := store.Load(ctx, KeyQuests, &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 2, got.Count)
}

func TestStoreDelete(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	require.NoError(t, store.Save(ctx, KeyInventory, payload{Count: 1}))
	require.NoError(t, store.Delete(ctx, KeyInventory))

	var got payload
	found, err := store.Load(ctx, KeyInventory, &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestStoreKeysAreIndependent(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	require.NoError(t, store.Save(ctx, KeyGame, payload{Count: 1}))
	require.NoError(t, store.Save(ctx, KeyCheckIn, payload{Count: 2}))

	var game, checkin payload
	_, err := store.Load(ctx, KeyGame, &game)
	require.NoError(t, err)
	_, err = store.Load(ctx, KeyCheckIn, &checkin)
	require.NoError(t, err)
	assert.Equal(t, 1, game.Count)
	assert.Equal(t, 2, checkin.Count)
}
