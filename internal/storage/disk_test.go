package storage_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campushub/infras/otel/mocks"
	"campushub/internal/storage"
)

func setupDisk(t *testing.T) storage.Storage {
	t.Helper()

	return storage.NewDisk(t.TempDir(), mocks.NewOtel())
}

func TestDiskStorage_Put(t *testing.T) {
	disk := setupDisk(t)
	ctx := context.Background()

	res, err := disk.Put(ctx, strings.NewReader("fake jpeg bytes"), "campus day.jpg", "image/jpeg")
	require.NoError(t, err)

	assert.NotEmpty(t, res.Key)
	assert.True(t, strings.HasSuffix(res.Key, ".jpg"), "key should keep the original extension, got %s", res.Key)
	assert.Equal(t, "/uploads/"+res.Key, res.Src)
	assert.Equal(t, int64(len("fake jpeg bytes")), res.Size)
	assert.Equal(t, "image/jpeg", res.ContentType)
	assert.NotContains(t, res.Key, " ", "caller supplied name must not leak into the key")
}

func TestDiskStorage_PutGeneratesUniqueKeys(t *testing.T) {
	disk := setupDisk(t)
	ctx := context.Background()

	seen := make(map[string]bool)

	for range 50 {
		res, err := disk.Put(ctx, strings.NewReader("x"), "same-name.png", "image/png")
		require.NoError(t, err)
		require.False(t, seen[res.Key], "duplicate key %s", res.Key)
		seen[res.Key] = true
	}
}

func TestDiskStorage_List(t *testing.T) {
	disk := setupDisk(t)
	ctx := context.Background()

	first, err := disk.Put(ctx, strings.NewReader("one"), "a.jpg", "image/jpeg")
	require.NoError(t, err)
	second, err := disk.Put(ctx, strings.NewReader("two"), "b.png", "image/png")
	require.NoError(t, err)

	blobs, err := disk.List(ctx)
	require.NoError(t, err)
	require.Len(t, blobs, 2)

	keys := []string{blobs[0].Key, blobs[1].Key}
	assert.Contains(t, keys, first.Key)
	assert.Contains(t, keys, second.Key)
}

func TestDiskStorage_DeleteIsIdempotent(t *testing.T) {
	disk := setupDisk(t)
	ctx := context.Background()

	res, err := disk.Put(ctx, strings.NewReader("bytes"), "c.jpg", "image/jpeg")
	require.NoError(t, err)

	require.NoError(t, disk.Delete(ctx, res.Key))

	// Second delete of the same key must not be an error.
	require.NoError(t, disk.Delete(ctx, res.Key))

	blobs, err := disk.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, blobs)
}

func TestDiskStorage_Capabilities(t *testing.T) {
	disk := setupDisk(t)

	caps := disk.Capabilities()
	assert.True(t, caps.List)
	assert.True(t, caps.Delete)
}
