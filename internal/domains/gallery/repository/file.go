package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/pkg/errors"

	"campushub/infras/otel"
	"campushub/internal/domains/gallery/model"
	"campushub/shared/constant"
)

type fileStore struct {
	mu     sync.Mutex
	path   string
	items  []model.GalleryItem
	lastID int64
	otel   otel.Otel
}

// NewFileStore loads the item collection from a JSON file and persists every
// mutation by rewriting the whole file. A missing or empty file starts the
// collection from seed.
func NewFileStore(path string, seed []model.GalleryItem, otl otel.Otel) (Gallery, error) {
	store := &fileStore{
		path: path,
		otel: otl,
	}

	if err := store.load(seed); err != nil {
		return nil, err
	}

	return store, nil
}

func (repo *fileStore) load(seed []model.GalleryItem) error {
	raw, err := os.ReadFile(repo.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return errors.Wrap(err, "reading gallery data file")
		}

		repo.items = slices.Clone(seed)
		repo.syncLastID()

		return repo.persist()
	}

	if len(raw) == 0 {
		repo.items = slices.Clone(seed)
		repo.syncLastID()

		return repo.persist()
	}

	if err := json.Unmarshal(raw, &repo.items); err != nil {
		return errors.Wrap(err, "decoding gallery data file")
	}

	repo.syncLastID()

	return nil
}

func (repo *fileStore) syncLastID() {
	for _, item := range repo.items {
		repo.lastID = max(repo.lastID, item.ID)
	}
}

// persist rewrites the whole file through a temp file so a crash mid-write
// never leaves a truncated collection behind. Callers must hold the mutex.
func (repo *fileStore) persist() error {
	raw, err := json.MarshalIndent(repo.items, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encoding gallery data file")
	}

	dir := filepath.Dir(repo.path)

	tmp, err := os.CreateTemp(dir, fmt.Sprintf(".%s-*", filepath.Base(repo.path)))
	if err != nil {
		return errors.Wrap(err, "creating gallery temp file")
	}

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())

		return errors.Wrap(err, "writing gallery temp file")
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())

		return errors.Wrap(err, "closing gallery temp file")
	}

	if err := os.Rename(tmp.Name(), repo.path); err != nil {
		os.Remove(tmp.Name())

		return errors.Wrap(err, "replacing gallery data file")
	}

	return nil
}

func (repo *fileStore) Append(ctx context.Context, item model.GalleryItem) error {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.gallery.append", constant.OtelRepositoryScopeName))
	defer scope.End()

	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.items = append(repo.items, item)
	repo.lastID = max(repo.lastID, item.ID)

	if err := repo.persist(); err != nil {
		repo.items = repo.items[:len(repo.items)-1]
		scope.TraceError(err)

		return err
	}

	return nil
}

func (repo *fileStore) Remove(ctx context.Context, id int64) (model.GalleryItem, error) {
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

	if err := repo.persist(); err != nil {
		repo.items = slices.Insert(repo.items, index, removed)
		scope.TraceError(err)

		return model.GalleryItem{}, err
	}

	return removed, nil
}

func (repo *fileStore) List(ctx context.Context) ([]model.GalleryItem, error) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.gallery.list", constant.OtelRepositoryScopeName))
	defer scope.End()

	repo.mu.Lock()
	defer repo.mu.Unlock()

	return slices.Clone(repo.items), nil
}

func (repo *fileStore) NextID() int64 {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.lastID = max(time.Now().UnixMilli(), repo.lastID+1)

	return repo.lastID
}
