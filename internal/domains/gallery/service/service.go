package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Gallery=MockGalleryService

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"campushub/config"
	"campushub/infras/otel"
	"campushub/internal/domains/gallery/model"
	"campushub/internal/domains/gallery/model/dto"
	"campushub/internal/domains/gallery/repository"
	"campushub/internal/storage"
	"campushub/shared"
	"campushub/shared/cache"
	"campushub/shared/constant"
	"campushub/shared/failure"
	"campushub/shared/validator"
)

const (
	cacheGetAllGallery = "gallery:get_all"
)

const msgImageNotFound = "Image not found"

type Gallery interface {
	List(ctx context.Context) ([]model.GalleryItem, error)
	Upload(ctx context.Context, req dto.UploadImageRequest) (model.GalleryItem, error)
	Delete(ctx context.Context, id int64) error
}

type serviceImpl struct {
	repo    repository.Gallery
	cfg     *config.Config
	cache   cache.RedisCache
	otel    otel.Otel
	storage storage.Storage
}

func New(repo repository.Gallery, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, storage storage.Storage) Gallery {
	return &serviceImpl{
		repo:    repo,
		cfg:     cfg,
		cache:   cache,
		otel:    otel,
		storage: storage,
	}
}

func (s *serviceImpl) List(ctx context.Context) (items []model.GalleryItem, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".List")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheGetAllGallery, &items)
	if err == nil {
		log.Info().Str("cacheKey", cacheGetAllGallery).Msg("cache hit for gallery items")

		return items, nil
	}

	items, err = s.repo.List(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list gallery items")

		return nil, err
	}

	// The collection marshals as a JSON array even when empty.
	if items == nil {
		items = []model.GalleryItem{}
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheGetAllGallery, items, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save gallery items to cache")
		}
	}()

	return items, nil
}

// Upload validates and stores one image, then records it in the gallery
// index. The size check runs before any bytes reach the backend so an
// oversized upload never leaves a blob behind.
func (s *serviceImpl) Upload(ctx context.Context, req dto.UploadImageRequest) (item model.GalleryItem, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Upload")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return item, err
	}

	if req.Image.Size > s.cfg.MaxUploadBytes() {
		return item, failure.BadRequestFromString(fmt.Sprintf("image exceeds the %d MB upload limit", s.cfg.Gallery.MaxUploadMB))
	}

	blob, err := s.storage.Put(ctx, req.ImageFile, req.Image.Filename, req.Image.Header.Get(constant.RequestHeaderContentType))
	if err != nil {
		log.Error().Err(err).Msg("failed to store uploaded image")

		return item, fmt.Errorf("failed to store uploaded image: %w", err)
	}

	item = req.ToItem(s.repo.NextID(), blob)

	if err = s.repo.Append(ctx, item); err != nil {
		log.Error().Err(err).Int64("id", item.ID).Msg("failed to record gallery item")
		s.releaseBlob(context.WithoutCancel(ctx), blob.Key)

		return model.GalleryItem{}, failure.InternalErrorFromString("image stored but gallery index update failed")
	}

	go func() {
		shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cacheGetAllGallery)
	}()

	return item, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	removed, err := s.repo.Remove(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return failure.NotFound(msgImageNotFound)
		}

		log.Error().Err(err).Int64("id", id).Msg("failed to remove gallery item")

		return fmt.Errorf("failed to remove gallery item: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllGallery)

		// Blob removal is best effort: the record is already gone, and
		// seeded or client-local items have no blob to release.
		if removed.Filename != constant.Empty {
			s.releaseBlob(c, removed.Filename)
		}
	}()

	return nil
}

func (s *serviceImpl) releaseBlob(ctx context.Context, key string) {
	if !s.storage.Capabilities().Delete {
		return
	}

	if err := s.storage.Delete(ctx, key); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to delete stored image")
	}
}
