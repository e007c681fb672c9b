package posts

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"campushub/config"
	"campushub/infras/otel"
	"campushub/internal/domains/posts/model/dto"
	"campushub/internal/domains/posts/service"
	"campushub/shared/constant"
	"campushub/shared/failure"
	"campushub/transport/http/response"
)

// maxMediaPerPost is how many full size media files a single post body may
// carry; each file is still limited individually by the service.
const maxMediaPerPost = 4

type Handler struct {
	service service.Posts
	config  *config.Config
	otel    otel.Otel
}

func New(service service.Posts, config *config.Config, otel otel.Otel) Handler {
	return Handler{
		service: service,
		config:  config,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/posts", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetPosts)
		routerGroup.Post("/", handler.CreatePost)
		routerGroup.Delete("/{id}", handler.DeletePost)
	})
}

// GetPosts returns the campus wall, newest first.
func (handler *Handler) GetPosts(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPosts")
	defer scope.End()

	posts, err := handler.service.List(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get posts")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, posts)
}

// CreatePost accepts a multipart form with content, author and optional
// repeated media files.
func (handler *Handler) CreatePost(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreatePost")
	defer scope.End()

	// Cap the body before parsing so an oversized upload is aborted while
	// streaming instead of being spooled to disk in full.
	limit := handler.config.MaxUploadBytes()*maxMediaPerPost + constant.RequestFormOverhead
	r.Body = http.MaxBytesReader(w, r.Body, limit)

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			response.WithError(w, failure.BadRequestFromString(fmt.Sprintf("request exceeds the %d MB upload limit", limit>>20)))

			return
		}

		response.WithError(w, failure.BadRequest(err))

		return
	}

	req := dto.CreatePostRequest{
		Author:  r.FormValue(constant.FormFieldAuthor),
		Content: r.FormValue(constant.FormFieldContent),
	}

	if r.MultipartForm != nil {
		for _, header := range r.MultipartForm.File[constant.FormFieldMedia] {
			file, err := header.Open()
			if err != nil {
				scope.TraceError(err)
				log.Error().Err(err).Str("filename", header.Filename).Msg("failed to open media file")

				response.WithError(w, failure.BadRequest(err))

				return
			}
			defer file.Close()

			req.Media = append(req.Media, header)
			req.MediaFiles = append(req.MediaFiles, file)
		}
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create post")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Post created successfully")

	response.WithJSON(w, http.StatusCreated, res)
}

// DeletePost removes a wall post by id.
func (handler *Handler) DeletePost(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeletePost")
	defer scope.End()

	id, err := uuid.Parse(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, failure.NotFound("Post not found"))

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id.String()).Msg("failed to delete post")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Post deleted successfully")

	response.WithMessage(w, http.StatusOK, "Post deleted successfully")
}
