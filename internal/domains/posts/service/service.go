package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Posts=MockPostsService

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"campushub/config"
	"campushub/infras/otel"
	"campushub/internal/domains/posts/model"
	"campushub/internal/domains/posts/model/dto"
	"campushub/internal/domains/posts/repository"
	"campushub/internal/storage"
	"campushub/shared/constant"
	"campushub/shared/failure"
	"campushub/shared/validator"
)

const msgPostNotFound = "Post not found"

type Posts interface {
	Create(ctx context.Context, req dto.CreatePostRequest) (dto.CreatePostResponse, error)
	List(ctx context.Context) ([]model.Post, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type serviceImpl struct {
	repo    repository.Posts
	cfg     *config.Config
	otel    otel.Otel
	storage storage.Storage
}

func New(repo repository.Posts, cfg *config.Config, otel otel.Otel, storage storage.Storage) Posts {
	return &serviceImpl{
		repo:    repo,
		cfg:     cfg,
		otel:    otel,
		storage: storage,
	}
}

// Create stores the post's media files and records the post. A file that
// fails to store is reported in the response; attachments stored before the
// failure are kept, so a multi-file post degrades instead of vanishing.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreatePostRequest) (res dto.CreatePostResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreatePost")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	for _, header := range req.Media {
		if header.Size > s.cfg.MaxUploadBytes() {
			return res, failure.BadRequestFromString(fmt.Sprintf("%s exceeds the %d MB upload limit", header.Filename, s.cfg.Gallery.MaxUploadMB))
		}
	}

	var (
		attachments []model.Attachment
		failed      []string
	)

	for i, header := range req.Media {
		blob, putErr := s.storage.Put(ctx, req.MediaFiles[i], header.Filename, header.Header.Get(constant.RequestHeaderContentType))
		if putErr != nil {
			log.Error().Err(putErr).Str("filename", header.Filename).Msg("failed to store post media")
			failed = append(failed, header.Filename)

			continue
		}

		attachments = append(attachments, dto.ToAttachment(blob))
	}

	post := req.ToPost(attachments)

	if err = s.repo.Insert(ctx, post); err != nil {
		log.Error().Err(err).Msg("failed to record post")
		s.releaseBlobs(context.WithoutCancel(ctx), post.Attachments)

		return res, failure.InternalErrorFromString("media stored but post could not be recorded")
	}

	res.Post = post
	res.Failed = failed

	return res, nil
}

func (s *serviceImpl) List(ctx context.Context) (posts []model.Post, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListPosts")
	defer scope.End()
	defer scope.TraceIfError(err)

	posts, err = s.repo.List(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list posts")

		return nil, err
	}

	if posts == nil {
		posts = []model.Post{}
	}

	return posts, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id uuid.UUID) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeletePost")
	defer scope.End()
	defer scope.TraceIfError(err)

	removed, err := s.repo.Remove(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return failure.NotFound(msgPostNotFound)
		}

		log.Error().Err(err).Str("id", id.String()).Msg("failed to remove post")

		return fmt.Errorf("failed to remove post: %w", err)
	}

	go s.releaseBlobs(context.WithoutCancel(ctx), removed.Attachments)

	return nil
}

func (s *serviceImpl) releaseBlobs(ctx context.Context, attachments []model.Attachment) {
	if !s.storage.Capabilities().Delete {
		return
	}

	for _, attachment := range attachments {
		if attachment.Filename == constant.Empty {
			continue
		}

		if err := s.storage.Delete(ctx, attachment.Filename); err != nil {
			log.Error().Err(err).Str("key", attachment.Filename).Msg("failed to delete post media")
		}
	}
}
