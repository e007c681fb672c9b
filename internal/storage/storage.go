// Package storage holds the blob storage backends behind a single contract.
// Uploaded bytes are owned by whichever backend stored them; the gallery
// metadata store only ever keeps the key and the addressable src returned
// from Put.
package storage

//go:generate go run go.uber.org/mock/mockgen -source=./storage.go -destination=./mocks/storage_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"path"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"campushub/config"
	"campushub/infras/otel"
	"campushub/infras/s3"
	"campushub/shared/constant"
)

// ErrUnsupported is returned by backends that cannot perform an operation,
// e.g. listing blobs on the memory backend where nothing is durably tracked.
var ErrUnsupported = errors.New("operation not supported by storage backend")

// PutResult describes a stored blob.
type PutResult struct {
	// Key is the backend assigned storage key, used for later deletes.
	Key string
	// Src is the displayable address of the blob: a relative path for the
	// disk backend, an absolute URL for s3, a data URI for memory/ephemeral.
	Src         string
	Size        int64
	ContentType string
}

// Capabilities advertises which of the optional operations a backend
// actually supports, so callers never have to guess from the backend name.
type Capabilities struct {
	List   bool
	Delete bool
}

type Storage interface {
	// Put persists the bytes under a newly generated key. The suggested name
	// only contributes its extension; the key itself never depends on it, so
	// concurrent uploads with colliding names cannot clash.
	Put(ctx context.Context, r io.Reader, suggestedName, contentType string) (PutResult, error)
	// List enumerates stored blobs in no particular order.
	List(ctx context.Context) ([]PutResult, error)
	// Delete removes a blob by key. Deleting a key that does not exist is
	// not an error.
	Delete(ctx context.Context, key string) error
	Capabilities() Capabilities
}

// NewKey builds a storage key as <unix-ms>-<random><ext>. The random suffix
// keeps keys unique even when two uploads land on the same millisecond.
func NewKey(suggestedName string) string {
	ext := strings.ToLower(path.Ext(suggestedName))

	return fmt.Sprintf("%d-%d%s", time.Now().UnixMilli(), rand.IntN(1_000_000_000), ext)
}

// New selects the backend named by the deployment configuration.
func New(cfg *config.Config, ot otel.Otel, s3Client s3.S3) Storage {
	backend := cfg.Gallery.Backend

	switch backend {
	case constant.StorageBackendDisk:
		return NewDisk(cfg.Gallery.UploadsDir, ot)
	case constant.StorageBackendMemory:
		return NewMemory(ot)
	case constant.StorageBackendS3:
		return NewS3(cfg, ot, s3Client)
	case constant.StorageBackendEphemeral:
		return NewEphemeral(ot)
	default:
		log.Warn().Str("backend", backend).Msg("Unknown storage backend, falling back to disk")

		return NewDisk(cfg.Gallery.UploadsDir, ot)
	}
}
