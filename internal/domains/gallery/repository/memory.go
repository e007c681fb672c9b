package repository

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"campushub/infras/otel"
	"campushub/internal/domains/gallery/model"
	"campushub/shared/constant"
)

// memoryStore keeps the collection in process memory only. Used by backends
// without a writable filesystem, where records live and die with the process.
type memoryStore struct {
	mu     sync.Mutex
	items  []model.GalleryItem
	lastID int64
	otel   otel.Otel
}

func NewMemoryStore(seed []model.GalleryItem, otl otel.Otel) Gallery {
	store := &memoryStore{
		items: slices.Clone(seed),
		otel:  otl,
	}

	for _, item := range store.items {
		store.lastID = max(store.lastID, item.ID)
	}

	return store
}

func (repo *memoryStore) Append(ctx context.Context, item model.GalleryItem) error {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.gallery.append", constant.OtelRepositoryScopeName))
	defer scope.End()

	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.items = append(repo.items, item)
	repo.lastID = max(repo.lastID, item.ID)

	return nil
}

func (repo *memoryStore) Remove(ctx context.Context, id int64) (model.GalleryItem, error) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.gallery.remove", constant.OtelRepositoryScopeName))
	defer scope.End()

	repo.mu.Lock()
	defer repo.mu.Unlock()

	index := slices.IndexFunc(repo.items, func(item model.GalleryItem) bool {
		return item.ID == id
	})
	if index < 0 {
		return model.GalleryItem{}, ErrNotFound
	}

	removed := repo.items[index]
	repo.items = slices.Delete(repo.items, index, index+1)

	return removed, nil
}

func (repo *memoryStore) List(ctx context.Context) ([]model.GalleryItem, error) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.gallery.list", constant.OtelRepositoryScopeName))
	defer scope.End()

	repo.mu.Lock()
	defer repo.mu.Unlock()

	return slices.Clone(repo.items), nil
}

func (repo *memoryStore) NextID() int64 {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.lastID = max(time.Now().UnixMilli(), repo.lastID+1)

	return repo.lastID
}
