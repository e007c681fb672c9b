package gallery

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"campushub/config"
	"campushub/infras/otel"
	"campushub/internal/domains/gallery/model/dto"
	"campushub/internal/domains/gallery/service"
	"campushub/shared/constant"
	"campushub/shared/failure"
	"campushub/transport/http/response"
)

type Handler struct {
	service service.Gallery
	config  *config.Config
	otel    otel.Otel
}

func New(service service.Gallery, config *config.Config, otel otel.Otel) Handler {
	return Handler{
		service: service,
		config:  config,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/gallery", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetItems)
		routerGroup.Post("/upload", handler.UploadImage)
		routerGroup.Delete("/{id}", handler.DeleteImage)
	})
}

// GetItems returns every gallery item as a bare JSON array.
func (handler *Handler) GetItems(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetItems")
	defer scope.End()

	items, err := handler.service.List(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get gallery items")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, items)
}

// UploadImage accepts a multipart form with an image file and a title.
func (handler *Handler) UploadImage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadImage")
	defer scope.End()

	// Cap the body before parsing so an oversized upload is aborted while
	// streaming instead of being spooled to disk in full.
	r.Body = http.MaxBytesReader(w, r.Body, handler.config.MaxUploadBytes()+constant.RequestFormOverhead)

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			response.WithError(w, failure.BadRequestFromString(fmt.Sprintf("image exceeds the %d MB upload limit", handler.config.Gallery.MaxUploadMB)))

			return
		}

		response.WithError(w, failure.BadRequest(err))

		return
	}

	file, fileHeader, err := r.FormFile(constant.FormFieldImage)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get image from form")

		response.WithError(w, failure.BadRequestFromString("image is required"))

		return
	}
	defer file.Close()

	req := dto.UploadImageRequest{
		Title:     r.FormValue(constant.FormFieldTitle),
		Image:     fileHeader,
		ImageFile: file,
	}

	item, err := handler.service.Upload(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload image")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Image uploaded successfully")

	response.WithJSON(w, http.StatusCreated, item)
}

// DeleteImage removes a gallery item by id.
func (handler *Handler) DeleteImage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteImage")
	defer scope.End()

	id, err := strconv.ParseInt(chi.URLParam(r, constant.RequestParamID), 10, 64)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, failure.NotFound("Image not found"))

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to delete image")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Image deleted successfully")

	response.WithMessage(w, http.StatusOK, "Image deleted successfully")
}
