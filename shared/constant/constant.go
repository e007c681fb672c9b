package constant

import (
	"time"
)

const (
	RequestParamID   = "id"
	RequestMaxMemory = 10 << 20 // 10 MB
	// RequestFormOverhead is the body allowance for multipart framing and
	// non-file form fields on top of the file size limit.
	RequestFormOverhead = 1 << 20 // 1 MB
)

const (
	FormFieldImage   = "image"
	FormFieldTitle   = "title"
	FormFieldMedia   = "media"
	FormFieldContent = "content"
	FormFieldAuthor  = "author"
)

const (
	MediaTypeImage = "image"
	MediaTypeVideo = "video"
)

const (
	CategoryUserUploads = "user-uploads"
)

const (
	DateFormat = time.RFC3339
	// DisplayDateFormat is the human readable format shown in the gallery grid,
	// e.g. "March 15, 2023".
	DisplayDateFormat = "January 2, 2006"
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelStorageScopeName    = "storage"
	OtelHandlerScopeName    = "handler"
	OtelS3ScopeName         = "s3"
)

const (
	RequestHeaderAuthorization      = "Authorization"
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderRequestID          = "X-Request-ID"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
)

const (
	ContentTypeJSON              = "application/json"
	ContentTypeMultipartFormData = "multipart/form-data"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy            = "SERVER UNHEALTHY"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	StorageBackendDisk      = "disk"
	StorageBackendMemory    = "memory"
	StorageBackendS3        = "s3"
	StorageBackendEphemeral = "ephemeral"
)

const (
	UploadsURLPrefix = "/uploads"
)

const (
	Asterix = "*"
	Empty   = ""
)
