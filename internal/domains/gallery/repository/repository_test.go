package repository_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	otelMocks "campushub/infras/otel/mocks"
	"campushub/internal/domains/gallery/model"
	"campushub/internal/domains/gallery/repository"
	"campushub/shared/constant"
)

func seedItems() []model.GalleryItem {
	return []model.GalleryItem{
		{ID: 1, Type: model.TypeImage, Title: "Commencement", Date: "May 10, 2024", Src: "https://images.example.com/commencement.jpg", Category: model.CategoryEvents},
		{ID: 2, Type: model.TypeImage, Title: "Robotics Lab", Date: "April 2, 2024", Src: "https://images.example.com/robotics.jpg", Category: model.CategoryAcademic},
	}
}

func TestFileStore_SeedsWhenFileMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gallery-data.json")

	store, err := repository.NewFileStore(path, seedItems(), otelMocks.NewOtel())
	require.NoError(t, err)

	items, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 2)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var persisted []model.GalleryItem
	require.NoError(t, json.Unmarshal(raw, &persisted))
	assert.Equal(t, items, persisted)
}

func TestFileStore_LoadsExistingFileInsteadOfSeeding(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gallery-data.json")

	existing := []model.GalleryItem{
		{ID: 42, Type: model.TypeImage, Title: "Archive", Date: "January 1, 2020", Src: "/uploads/archive.jpg", Category: model.CategoryCampus},
	}
	raw, err := json.Marshal(existing)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, raw, 0o644))

	store, err := repository.NewFileStore(path, seedItems(), otelMocks.NewOtel())
	require.NoError(t, err)

	items, err := store.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, int64(42), items[0].ID)
	assert.Equal(t, "Archive", items[0].Title)
}

func TestFileStore_AppendPersistsAcrossReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gallery-data.json")

	store, err := repository.NewFileStore(path, nil, otelMocks.NewOtel())
	require.NoError(t, err)

	item := model.GalleryItem{
		ID:       store.NextID(),
		Type:     model.TypeImage,
		Title:    "Open Day",
		Date:     "March 15, 2023",
		Src:      "/uploads/open-day.jpg",
		Category: constant.CategoryUserUploads,
		Filename: "open-day.jpg",
	}
	require.NoError(t, store.Append(context.Background(), item))

	reloaded, err := repository.NewFileStore(path, nil, otelMocks.NewOtel())
	require.NoError(t, err)

	items, err := reloaded.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, item, items[0])
}

func TestFileStore_RemoveUnknownIDReturnsNotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gallery-data.json")

	store, err := repository.NewFileStore(path, seedItems(), otelMocks.NewOtel())
	require.NoError(t, err)

	_, err = store.Remove(context.Background(), 999)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestFileStore_RemoveTwiceReturnsNotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gallery-data.json")

	store, err := repository.NewFileStore(path, seedItems(), otelMocks.NewOtel())
	require.NoError(t, err)

	removed, err := store.Remove(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Commencement", removed.Title)

	_, err = store.Remove(context.Background(), 1)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	items, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestMemoryStore_AppendAndRemove(t *testing.T) {
	store := repository.NewMemoryStore(seedItems(), otelMocks.NewOtel())

	item := model.GalleryItem{
		ID:       store.NextID(),
		Type:     model.TypeImage,
		Title:    "Science Fair",
		Date:     "March 15, 2023",
		Src:      "data:image/png;base64,aGVsbG8=",
		Category: constant.CategoryUserUploads,
	}
	require.NoError(t, store.Append(context.Background(), item))

	items, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 3)
	assert.Equal(t, item, items[2])

	removed, err := store.Remove(context.Background(), item.ID)
	require.NoError(t, err)
	assert.Equal(t, item, removed)

	_, err = store.Remove(context.Background(), item.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestNextID_StrictlyIncreasing(t *testing.T) {
	store := repository.NewMemoryStore(nil, otelMocks.NewOtel())

	seen := make(map[int64]struct{})
	prev := int64(0)

	for range 100 {
		id := store.NextID()
		assert.Greater(t, id, prev)

		_, duplicate := seen[id]
		assert.False(t, duplicate)

		seen[id] = struct{}{}
		prev = id
	}
}

func TestList_ReturnsCopy(t *testing.T) {
	store := repository.NewMemoryStore(seedItems(), otelMocks.NewOtel())

	items, err := store.List(context.Background())
	require.NoError(t, err)

	items[0].Title = "mutated"

	fresh, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Commencement", fresh[0].Title)
}
