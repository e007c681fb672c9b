package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"campushub/config"
	"campushub/infras/otel"
	"campushub/internal/domains/gallery/model"
	"campushub/shared/constant"
)

// ErrNotFound is returned when a remove targets an id that is not in the store.
var ErrNotFound = errors.New("gallery item not found")

// Gallery is the metadata store: the ordered collection of gallery item
// records, separate from the bytes themselves. All mutations are serialized
// internally so concurrent uploads cannot lose records.
type Gallery interface {
	// Append adds an item at the end of the collection.
	Append(ctx context.Context, item model.GalleryItem) error
	// Remove deletes an item by id, returning the removed record so the
	// caller can release the underlying blob.
	Remove(ctx context.Context, id int64) (model.GalleryItem, error)
	// List returns every item in insertion order.
	List(ctx context.Context) ([]model.GalleryItem, error)
	// NextID reserves a unique, monotonically increasing item id.
	NextID() int64
}

// New picks the persistence strategy for the deployment: a flat JSON file for
// backends with a writable filesystem, process memory for the rest.
func New(cfg *config.Config, ot otel.Otel) Gallery {
	var seed []model.GalleryItem
	if cfg.Gallery.SeedDefaults {
		seed = model.DefaultItems()
	}

	switch cfg.Gallery.Backend {
	case constant.StorageBackendMemory, constant.StorageBackendEphemeral:
		return NewMemoryStore(seed, ot)
	default:
		store, err := NewFileStore(cfg.Gallery.DataFile, seed, ot)
		if err != nil {
			log.Fatal().Err(err).Str("file", cfg.Gallery.DataFile).Msg("Failed to load gallery data file")
		}

		return store
	}
}
