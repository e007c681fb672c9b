package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	EntityName = "post"
)

// Attachment is one media file stored alongside a post.
type Attachment struct {
	Type        string `json:"type"`
	Src         string `json:"src"`
	Filename    string `json:"filename,omitempty"`
	ContentType string `json:"contentType"`
}

// Post is one entry on the campus wall. The wall is session scoped: posts
// live in process memory and disappear on restart.
type Post struct {
	ID          uuid.UUID    `json:"id"`
	Author      string       `json:"author"`
	Content     string       `json:"content"`
	Attachments []Attachment `json:"attachments"`
	CreatedAt   time.Time    `json:"createdAt"`
}
