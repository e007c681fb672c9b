//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"campushub/config"
	"campushub/infras/otel"
	"campushub/infras/redis"
	"campushub/infras/s3"
	"campushub/internal/storage"
	"campushub/shared/cache"
	"campushub/transport/http"
	"campushub/transport/http/middleware"
	"campushub/transport/http/router"

	galleryRepository "campushub/internal/domains/gallery/repository"
	galleryService "campushub/internal/domains/gallery/service"
	galleryHandler "campushub/internal/handlers/gallery"

	postsRepository "campushub/internal/domains/posts/repository"
	postsService "campushub/internal/domains/posts/service"
	postsHandler "campushub/internal/handlers/posts"

	contentService "campushub/internal/domains/content/service"
	contentHandler "campushub/internal/handlers/content"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	redis.New,
	s3.New,
	storage.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var galleryDomain = wire.NewSet(
	galleryRepository.New,
	galleryService.New,
)

var postsDomain = wire.NewSet(
	postsRepository.New,
	postsService.New,
)

var contentDomain = wire.NewSet(
	contentService.New,
)

var domains = wire.NewSet(
	galleryDomain,
	postsDomain,
	contentDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	galleryHandler.New,
	postsHandler.New,
	contentHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
