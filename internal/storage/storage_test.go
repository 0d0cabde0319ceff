package storage_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/storage"
)

func newUpload(name, content string) *storage.Upload {
	return &storage.Upload{
		Filename:    name,
		ContentType: "image/png",
		Size:        int64(len(content)),
		Reader:      strings.NewReader(content),
	}
}

func TestDiskStore(t *testing.T) {
	store, err := storage.NewDiskStore(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()

	path, err := store.Store(ctx, "projects", newUpload("shot.PNG", "fake image bytes"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(path, "projects/"), "path %q should live under its namespace", path)
	assert.True(t, strings.HasSuffix(path, ".png"), "path %q should keep a lowercased extension", path)

	// a second store of the same filename gets its own object name
	other, err := store.Store(ctx, "projects", newUpload("shot.PNG", "different bytes"))
	require.NoError(t, err)
	assert.NotEqual(t, path, other)

	require.NoError(t, store.Delete(ctx, path))

	// deleting an absent path is a no-op
	assert.NoError(t, store.Delete(ctx, path))
	assert.NoError(t, store.Delete(ctx, ""))
}

func TestDiskStoreRejectsBadInput(t *testing.T) {
	store, err := storage.NewDiskStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Store(context.Background(), "", newUpload("a.png", "x"))
	assert.ErrorIs(t, err, storage.ErrEmptyNamespace)

	_, err = store.Store(context.Background(), "projects", nil)
	assert.ErrorIs(t, err, storage.ErrEmptyUpload)
}

func TestMemoryStore(t *testing.T) {
	store := storage.NewMemoryStore()
	ctx := context.Background()

	path, err := store.Store(ctx, "profile", newUpload("avatar.jpg", "jpeg bytes"))
	require.NoError(t, err)
	assert.True(t, store.Has(path))
	assert.Equal(t, 1, store.Len())

	require.NoError(t, store.Delete(ctx, path))
	assert.False(t, store.Has(path))

	assert.NoError(t, store.Delete(ctx, "profile/never-stored.jpg"))
}
