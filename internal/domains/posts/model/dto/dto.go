package dto

import (
	"mime/multipart"
	"strings"

	"github.com/google/uuid"

	"campushub/internal/domains/posts/model"
	"campushub/internal/storage"
	"campushub/shared/constant"
	"campushub/shared/timezone"
)

// CreatePostRequest carries one campus wall submission. Media files are
// optional; a post can be text only.
type CreatePostRequest struct {
	Author     string                  `json:"author"  validate:"required"`
	Content    string                  `json:"content" validate:"required"`
	Media      []*multipart.FileHeader `json:"media"   validate:"omitempty,dive,required,mediatype=image video"`
	MediaFiles []multipart.File        `json:"-"`
}

// ToPost builds the wall post for the stored attachments.
func (r *CreatePostRequest) ToPost(attachments []model.Attachment) model.Post {
	if attachments == nil {
		attachments = []model.Attachment{}
	}

	return model.Post{
		ID:          uuid.New(),
		Author:      r.Author,
		Content:     r.Content,
		Attachments: attachments,
		CreatedAt:   timezone.Now(),
	}
}

// ToAttachment builds the attachment record for a stored media blob.
func ToAttachment(blob storage.PutResult) model.Attachment {
	mediaType := constant.MediaTypeImage
	if strings.HasPrefix(blob.ContentType, constant.MediaTypeVideo) {
		mediaType = constant.MediaTypeVideo
	}

	return model.Attachment{
		Type:        mediaType,
		Src:         blob.Src,
		Filename:    blob.Key,
		ContentType: blob.ContentType,
	}
}

// CreatePostResponse reports the created post plus any media files that could
// not be stored. Successfully stored attachments are kept even when a later
// file fails.
type CreatePostResponse struct {
	Post   model.Post `json:"post"`
	Failed []string   `json:"failed,omitempty"`
}

// DeletePostResponse is the body returned after a successful delete.
type DeletePostResponse struct {
	Message string `json:"message"`
}
