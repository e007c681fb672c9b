package dto

import (
	"mime/multipart"

	"campushub/internal/domains/gallery/model"
	"campushub/internal/storage"
	"campushub/shared/constant"
	"campushub/shared/timezone"
)

// UploadImageRequest carries one multipart gallery upload. The client side
// pre-check is a UX nicety only; these tags plus the service size check are
// the authoritative validation.
type UploadImageRequest struct {
	Title     string                `json:"title"                validate:"required"`
	Image     *multipart.FileHeader `json:"image"                validate:"required,mediatype=image"`
	ImageFile multipart.File        `json:"-"`
}

// ToItem builds the gallery item for a stored blob. The id is assigned by the
// metadata store, which owns monotonicity.
func (r *UploadImageRequest) ToItem(id int64, blob storage.PutResult) model.GalleryItem {
	return model.GalleryItem{
		ID:       id,
		Type:     model.TypeImage,
		Title:    r.Title,
		Date:     timezone.Format(timezone.Now(), constant.DisplayDateFormat),
		Src:      blob.Src,
		Category: constant.CategoryUserUploads,
		Filename: blob.Key,
	}
}

// DeleteImageResponse is the body returned after a successful delete.
type DeleteImageResponse struct {
	Message string `json:"message"`
}
